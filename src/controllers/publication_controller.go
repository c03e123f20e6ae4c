package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	publicationSvc "Backend-SurveyHub/src/services/publications"
	"Backend-SurveyHub/src/utils"
)

type PublicationController struct {
	svc *publicationSvc.Service
}

func NewPublicationController(svc *publicationSvc.Service) *PublicationController {
	return &PublicationController{svc: svc}
}

// PublishSurvey godoc
// @Summary      Publish a survey
// @Description  Opens a publication window with a fresh access code. An optional closeAt schedules automatic closing.
// @Tags         publications
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Survey ID"
// @Param        body body models.PublishSurveyRequest true "Publish options"
// @Success      201  {object}  models.Publication
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/publish [post]
func (ctrl *PublicationController) PublishSurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	var req models.PublishSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	pub, err := ctrl.svc.Publish(c.Context(), tenantID, surveyID, &req)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(pub)
	case errors.Is(err, models.ErrSurveyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Survey not found")
	case errors.Is(err, models.ErrSurveyHasNoQuestions), errors.Is(err, models.ErrSurveyNotPublishable):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to publish survey")
	}
}

// ClosePublication godoc
// @Summary      Close a publication
// @Description  Closing an already closed publication is rejected. The first close wins.
// @Tags         publications
// @Param        id   path  string  true  "Publication ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /publications/{id}/close [post]
func (ctrl *PublicationController) ClosePublication(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}

	err = ctrl.svc.Close(c.Context(), tenantID, publicationID)
	switch {
	case err == nil:
		// The cached aggregation predates the close.
		if pub, err := ctrl.svc.GetByID(c.Context(), tenantID, publicationID); err == nil {
			utils.InvalidateSurveyStatistics(tenantID.Hex(), pub.SurveyID.Hex(), publicationID.Hex())
		}
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, models.ErrPublicationNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
	case errors.Is(err, models.ErrPublicationAlreadyClosed):
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to close publication")
	}
}

// GetPublicationByID godoc
// @Summary      Get a publication
// @Tags         publications
// @Produce      json
// @Param        id   path  string  true  "Publication ID"
// @Success      200  {object}  models.Publication
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id} [get]
func (ctrl *PublicationController) GetPublicationByID(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}

	pub, err := ctrl.svc.GetByID(c.Context(), tenantID, publicationID)
	if err != nil {
		if errors.Is(err, models.ErrPublicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load publication")
	}
	return c.JSON(pub)
}

// GetPublicationByAccessCode godoc
// @Summary      Look up a publication by access code
// @Description  Public endpoint used by respondents to reach an open survey.
// @Tags         publications
// @Produce      json
// @Param        code path  string  true  "Access code"
// @Success      200  {object}  models.Publication
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/code/{code} [get]
func (ctrl *PublicationController) GetPublicationByAccessCode(c *fiber.Ctx) error {
	pub, err := ctrl.svc.GetByAccessCode(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, models.ErrPublicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load publication")
	}
	return c.JSON(pub)
}

// GetPublicationsBySurvey godoc
// @Summary      List publications of a survey
// @Tags         publications
// @Produce      json
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {array}  models.Publication
// @Router       /surveys/{id}/publications [get]
func (ctrl *PublicationController) GetPublicationsBySurvey(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	pubs, err := ctrl.svc.GetBySurvey(c.Context(), tenantID, surveyID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list publications")
	}
	return c.JSON(pubs)
}
