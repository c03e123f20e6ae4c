package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/controllers"
	"Backend-SurveyHub/src/middleware"
	"Backend-SurveyHub/src/repositories"
	exportService "Backend-SurveyHub/src/services/exports"
	publicationService "Backend-SurveyHub/src/services/publications"
	reportService "Backend-SurveyHub/src/services/reports"
	responseService "Backend-SurveyHub/src/services/responses"
	statisticsService "Backend-SurveyHub/src/services/statistics"
)

func PublicationRoutes(router fiber.Router, store *repositories.Store) {
	pubSvc := publicationService.NewService(store, nil)
	pubCtrl := controllers.NewPublicationController(pubSvc)
	respCtrl := controllers.NewResponseController(responseService.NewService(store), pubSvc)
	statsCtrl := controllers.NewStatisticsController(statisticsService.NewService(store))
	reportCtrl := controllers.NewReportController(
		reportService.NewService(store),
		exportService.NewService(store),
	)

	// The access-code routes are public so respondents can reach a survey
	// from a shared link and submit without logging in.
	router.Get("/publications/code/:code", pubCtrl.GetPublicationByAccessCode)
	router.Post("/publications/code/:code/responses", respCtrl.SubmitResponsesByAccessCode)

	publications := router.Group("/publications", middleware.AuthJWT)

	publications.Get("/:id", pubCtrl.GetPublicationByID)
	publications.Post("/:id/close", pubCtrl.ClosePublication)

	publications.Post("/:id/responses", respCtrl.SubmitResponses)

	publications.Get("/:id/statistics/questions/:questionId", statsCtrl.GetQuestionStatistics)

	publications.Get("/:id/respondents/:respondentId/progress", reportCtrl.GetProgress)
	publications.Get("/:id/respondents/:respondentId/report", reportCtrl.GetReport)
	publications.Get("/:id/export", reportCtrl.ExportPublicationCSV)
}
