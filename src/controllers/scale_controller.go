package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	scaleSvc "Backend-SurveyHub/src/services/scales"
	"Backend-SurveyHub/src/utils"
)

type ScaleController struct {
	svc *scaleSvc.Service
}

func NewScaleController(svc *scaleSvc.Service) *ScaleController {
	return &ScaleController{svc: svc}
}

// CreateScale godoc
// @Summary      Create a scale
// @Description  Creates a reusable answer scale with ordered choices
// @Tags         scales
// @Accept       json
// @Produce      json
// @Param        body body models.CreateScaleRequest true "Scale"
// @Success      201  {object}  models.Scale
// @Failure      400  {object}  models.ErrorResponse
// @Router       /scales [post]
func (ctrl *ScaleController) CreateScale(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}

	var req models.CreateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	scale, err := ctrl.svc.Create(c.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateChoiceSequence) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create scale")
	}
	return c.Status(fiber.StatusCreated).JSON(scale)
}

// GetScales godoc
// @Summary      List scales
// @Tags         scales
// @Produce      json
// @Success      200  {array}  models.Scale
// @Router       /scales [get]
func (ctrl *ScaleController) GetScales(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}

	scales, err := ctrl.svc.GetAll(c.Context(), tenantID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list scales")
	}
	return c.JSON(scales)
}

// GetScaleByID godoc
// @Summary      Get a scale by ID
// @Tags         scales
// @Produce      json
// @Param        id   path  string  true  "Scale ID"
// @Success      200  {object}  models.Scale
// @Failure      404  {object}  models.ErrorResponse
// @Router       /scales/{id} [get]
func (ctrl *ScaleController) GetScaleByID(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	scaleID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid scale ID")
	}

	scale, err := ctrl.svc.GetByID(c.Context(), tenantID, scaleID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Scale not found")
	}
	return c.JSON(scale)
}

// UpdateScale godoc
// @Summary      Update a scale
// @Tags         scales
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Scale ID"
// @Param        body body models.CreateScaleRequest true "Scale"
// @Success      200  {object}  models.Scale
// @Failure      404  {object}  models.ErrorResponse
// @Router       /scales/{id} [put]
func (ctrl *ScaleController) UpdateScale(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	scaleID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid scale ID")
	}

	var req models.CreateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	scale, err := ctrl.svc.Update(c.Context(), tenantID, scaleID, &req)
	switch {
	case err == nil:
		return c.JSON(scale)
	case errors.Is(err, models.ErrScaleNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Scale not found")
	case errors.Is(err, models.ErrDuplicateChoiceSequence):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update scale")
	}
}

// DeleteScale godoc
// @Summary      Delete a scale
// @Description  Fails while any question still references the scale
// @Tags         scales
// @Param        id   path  string  true  "Scale ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /scales/{id} [delete]
func (ctrl *ScaleController) DeleteScale(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	scaleID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid scale ID")
	}

	err = ctrl.svc.Delete(c.Context(), tenantID, scaleID)
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, models.ErrScaleNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Scale not found")
	case errors.Is(err, models.ErrScaleInUse):
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete scale")
	}
}
