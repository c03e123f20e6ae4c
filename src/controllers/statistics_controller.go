package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	statisticsSvc "Backend-SurveyHub/src/services/statistics"
	"Backend-SurveyHub/src/utils"
)

const surveyStatsCacheTTL = 30 * time.Second

type StatisticsController struct {
	svc *statisticsSvc.Service
}

func NewStatisticsController(svc *statisticsSvc.Service) *StatisticsController {
	return &StatisticsController{svc: svc}
}

// GetQuestionStatistics godoc
// @Summary      Aggregate one question over a publication
// @Description  Returns counts, percentages and the mode for choice questions, raw texts for free-text questions.
// @Tags         statistics
// @Produce      json
// @Param        id          path  string  true  "Publication ID"
// @Param        questionId  path  string  true  "Question ID"
// @Success      200  {object}  models.QuestionStatistics
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id}/statistics/questions/{questionId} [get]
func (ctrl *StatisticsController) GetQuestionStatistics(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}
	questionID, err := primitive.ObjectIDFromHex(c.Params("questionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	stats, err := ctrl.svc.QuestionStatistics(c.Context(), tenantID, questionID, publicationID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to aggregate question")
	}
	if stats == nil {
		return utils.HandleError(c, fiber.StatusNotFound, "No statistics available")
	}
	return c.JSON(stats)
}

// GetSurveyStatistics godoc
// @Summary      Aggregate a whole survey over a publication
// @Description  Cached for a short window so dashboard polling stays cheap.
// @Tags         statistics
// @Produce      json
// @Param        surveyId  path  string  true  "Survey ID"
// @Param        id        path  string  true  "Publication ID"
// @Success      200  {object}  models.SurveyStatistics
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{surveyId}/publications/{id}/statistics [get]
func (ctrl *StatisticsController) GetSurveyStatistics(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	surveyID, err := primitive.ObjectIDFromHex(c.Params("surveyId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}

	if cached := utils.GetCachedSurveyStatistics(tenantID.Hex(), surveyID.Hex(), publicationID.Hex()); cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	stats, err := ctrl.svc.SurveyStatistics(c.Context(), tenantID, surveyID, publicationID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to aggregate survey")
	}
	if stats == nil {
		return utils.HandleError(c, fiber.StatusNotFound, "No statistics available")
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = utils.CacheSurveyStatistics(tenantID.Hex(), surveyID.Hex(), publicationID.Hex(), payload, surveyStatsCacheTTL)
	}
	return c.JSON(stats)
}
