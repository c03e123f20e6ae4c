package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	surveySvc "Backend-SurveyHub/src/services/surveys"
	"Backend-SurveyHub/src/utils"
)

type SurveyController struct {
	svc *surveySvc.Service
}

func NewSurveyController(svc *surveySvc.Service) *SurveyController {
	return &SurveyController{svc: svc}
}

// CreateSurvey godoc
// @Summary      Create a draft survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSurveyRequest true "Survey with questions"
// @Success      201  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Router       /surveys [post]
func (ctrl *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}

	var req models.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	survey, err := ctrl.svc.Create(c.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, models.ErrScaleNotFound) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create survey")
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// GetSurveys godoc
// @Summary      List surveys
// @Tags         surveys
// @Produce      json
// @Success      200  {array}  models.Survey
// @Router       /surveys [get]
func (ctrl *SurveyController) GetSurveys(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}

	surveys, err := ctrl.svc.GetAll(c.Context(), tenantID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list surveys")
	}
	return c.JSON(surveys)
}

// GetSurveyByID godoc
// @Summary      Get a survey with its questions
// @Tags         surveys
// @Produce      json
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [get]
func (ctrl *SurveyController) GetSurveyByID(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	survey, err := ctrl.svc.GetByID(c.Context(), tenantID, surveyID)
	if err != nil {
		if errors.Is(err, models.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Survey not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load survey")
	}
	return c.JSON(survey)
}

// UpdateSurvey godoc
// @Summary      Update a draft survey
// @Description  Replaces metadata and the question set. Published surveys are frozen.
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Survey ID"
// @Param        body body models.CreateSurveyRequest true "Survey with questions"
// @Success      200  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [put]
func (ctrl *SurveyController) UpdateSurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	var req models.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	survey, err := ctrl.svc.Update(c.Context(), tenantID, surveyID, &req)
	switch {
	case err == nil:
		return c.JSON(survey)
	case errors.Is(err, models.ErrSurveyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Survey not found")
	case errors.Is(err, models.ErrSurveyNotDraft), errors.Is(err, models.ErrScaleNotFound):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update survey")
	}
}

// ArchiveSurvey godoc
// @Summary      Archive a survey
// @Tags         surveys
// @Param        id   path  string  true  "Survey ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/archive [post]
func (ctrl *SurveyController) ArchiveSurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	if err := ctrl.svc.Archive(c.Context(), tenantID, surveyID); err != nil {
		if errors.Is(err, models.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Survey not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to archive survey")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSurvey godoc
// @Summary      Delete a draft survey
// @Tags         surveys
// @Param        id   path  string  true  "Survey ID"
// @Success      204
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [delete]
func (ctrl *SurveyController) DeleteSurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	err = ctrl.svc.Delete(c.Context(), tenantID, surveyID)
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, models.ErrSurveyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Survey not found")
	case errors.Is(err, models.ErrSurveyNotDraft):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete survey")
	}
}
