package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
	"Backend-SurveyHub/src/services"
	"Backend-SurveyHub/src/utils"
)

type AuthController struct {
	store *repositories.Store
}

func NewAuthController(store *repositories.Store) *AuthController {
	return &AuthController{store: store}
}

// Login godoc
// @Summary      Authenticate an admin
// @Description  Checks credentials and returns a tenant-scoped JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	admin, err := services.AuthenticateAdmin(c.Context(), ctrl.store, req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.TenantID.Hex(), admin.Email, admin.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(admin.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"admin":        admin,
	})
}
