package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	respondentSvc "Backend-SurveyHub/src/services/respondents"
	"Backend-SurveyHub/src/utils"
)

type RespondentController struct {
	svc *respondentSvc.Service
}

func NewRespondentController(svc *respondentSvc.Service) *RespondentController {
	return &RespondentController{svc: svc}
}

// GetRespondentByID godoc
// @Summary      Get a respondent from the directory
// @Tags         respondents
// @Produce      json
// @Param        id   path  string  true  "Respondent ID"
// @Success      200  {object}  models.Respondent
// @Failure      404  {object}  models.ErrorResponse
// @Router       /respondents/{id} [get]
func (ctrl *RespondentController) GetRespondentByID(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	respondentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid respondent ID")
	}

	respondent, err := ctrl.svc.GetByID(c.Context(), tenantID, respondentID)
	if err != nil {
		if errors.Is(err, models.ErrRespondentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Respondent not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load respondent")
	}
	return c.JSON(respondent)
}

// CountEligibleRespondents godoc
// @Summary      Count active respondents of the tenant
// @Description  The count is the denominator of publication response rates.
// @Tags         respondents
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /respondents/count [get]
func (ctrl *RespondentController) CountEligibleRespondents(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}

	count, err := ctrl.svc.CountEligible(c.Context(), tenantID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to count respondents")
	}
	return c.JSON(fiber.Map{"count": count})
}
