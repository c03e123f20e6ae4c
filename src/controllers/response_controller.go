package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	publicationSvc "Backend-SurveyHub/src/services/publications"
	responseSvc "Backend-SurveyHub/src/services/responses"
	"Backend-SurveyHub/src/utils"
)

type ResponseController struct {
	svc    *responseSvc.Service
	pubSvc *publicationSvc.Service
}

func NewResponseController(svc *responseSvc.Service, pubSvc *publicationSvc.Service) *ResponseController {
	return &ResponseController{svc: svc, pubSvc: pubSvc}
}

// SubmitResponses godoc
// @Summary      Submit answers to an open publication
// @Description  Validates every answer before writing. Resubmitting a question overwrites the earlier answer.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Publication ID"
// @Param        body body models.SubmitResponsesRequest true "Respondent and answers"
// @Success      200  {object}  models.SubmissionResult
// @Failure      400  {object}  models.SubmissionResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id}/responses [post]
func (ctrl *ResponseController) SubmitResponses(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}

	pub, err := ctrl.pubSvc.GetByID(c.Context(), tenantID, publicationID)
	if err != nil {
		if errors.Is(err, models.ErrPublicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load publication")
	}

	return ctrl.handleSubmit(c, pub)
}

// SubmitResponsesByAccessCode godoc
// @Summary      Submit answers via an access code
// @Description  Public respondent path. The publication's access code stands in for authentication and scopes the write to the owning tenant.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        code path  string  true  "Access code"
// @Param        body body models.SubmitResponsesRequest true "Respondent and answers"
// @Success      200  {object}  models.SubmissionResult
// @Failure      400  {object}  models.SubmissionResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/code/{code}/responses [post]
func (ctrl *ResponseController) SubmitResponsesByAccessCode(c *fiber.Ctx) error {
	pub, err := ctrl.pubSvc.GetByAccessCode(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, models.ErrPublicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load publication")
	}

	return ctrl.handleSubmit(c, pub)
}

func (ctrl *ResponseController) handleSubmit(c *fiber.Ctx, pub *models.Publication) error {
	var req models.SubmitResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	respondentID, err := primitive.ObjectIDFromHex(req.RespondentID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid respondent ID")
	}

	result, err := ctrl.svc.Submit(c.Context(), pub.TenantID, pub.ID, respondentID, req.Answers)
	switch {
	case err == nil:
		// Valid answers may have landed even when the batch was rejected,
		// so the cached aggregation is stale either way.
		utils.InvalidateSurveyStatistics(pub.TenantID.Hex(), pub.SurveyID.Hex(), pub.ID.Hex())
		if !result.Accepted {
			return c.Status(fiber.StatusBadRequest).JSON(result)
		}
		return c.JSON(result)
	case errors.Is(err, models.ErrRespondentNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Respondent not found")
	case errors.Is(err, models.ErrPublicationClosed):
		return c.Status(fiber.StatusBadRequest).JSON(models.SubmissionResult{
			Accepted: false,
			Errors:   []string{err.Error()},
		})
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit responses")
	}
}
