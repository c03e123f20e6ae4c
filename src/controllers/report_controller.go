package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	exportSvc "Backend-SurveyHub/src/services/exports"
	reportSvc "Backend-SurveyHub/src/services/reports"
	"Backend-SurveyHub/src/utils"
)

type ReportController struct {
	reports *reportSvc.Service
	exports *exportSvc.Service
}

func NewReportController(reports *reportSvc.Service, exports *exportSvc.Service) *ReportController {
	return &ReportController{reports: reports, exports: exports}
}

// GetProgress godoc
// @Summary      Progress of one respondent in a publication
// @Tags         reports
// @Produce      json
// @Param        id            path  string  true  "Publication ID"
// @Param        respondentId  path  string  true  "Respondent ID"
// @Success      200  {object}  models.Progress
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id}/respondents/{respondentId}/progress [get]
func (ctrl *ReportController) GetProgress(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}
	respondentID, err := primitive.ObjectIDFromHex(c.Params("respondentId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid respondent ID")
	}

	progress, err := ctrl.reports.Progress(c.Context(), tenantID, respondentID, publicationID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to compute progress")
	}
	if progress == nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
	}
	return c.JSON(progress)
}

// GetReport godoc
// @Summary      Full per-respondent answer report
// @Tags         reports
// @Produce      json
// @Param        id            path  string  true  "Publication ID"
// @Param        respondentId  path  string  true  "Respondent ID"
// @Success      200  {object}  models.Report
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id}/respondents/{respondentId}/report [get]
func (ctrl *ReportController) GetReport(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}
	respondentID, err := primitive.ObjectIDFromHex(c.Params("respondentId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid respondent ID")
	}

	report, err := ctrl.reports.Report(c.Context(), tenantID, respondentID, publicationID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	if report == nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
	}
	return c.JSON(report)
}

// ExportPublicationCSV godoc
// @Summary      Export all answers of a publication as CSV
// @Tags         reports
// @Produce      text/csv
// @Param        id   path  string  true  "Publication ID"
// @Success      200  {string}  string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /publications/{id}/export [get]
func (ctrl *ReportController) ExportPublicationCSV(c *fiber.Ctx) error {
	tenantID, err := tenantFromCtx(c)
	if err != nil {
		return err
	}
	publicationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid publication ID")
	}

	csvData, err := ctrl.exports.ExportPublicationCSV(c.Context(), tenantID, publicationID)
	if err != nil {
		if errors.Is(err, models.ErrPublicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Publication not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to export responses")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="responses_%s.csv"`, publicationID.Hex()))
	return c.SendString(csvData)
}
