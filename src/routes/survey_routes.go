package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/controllers"
	"Backend-SurveyHub/src/jobs"
	"Backend-SurveyHub/src/middleware"
	"Backend-SurveyHub/src/repositories"
	publicationService "Backend-SurveyHub/src/services/publications"
	statisticsService "Backend-SurveyHub/src/services/statistics"
	surveyService "Backend-SurveyHub/src/services/surveys"
)

func SurveyRoutes(router fiber.Router, store *repositories.Store, scheduler *jobs.Scheduler) {
	svc := surveyService.NewService(store)
	ctrl := controllers.NewSurveyController(svc)

	var closeScheduler publicationService.CloseScheduler
	if scheduler != nil {
		closeScheduler = scheduler
	}
	pubSvc := publicationService.NewService(store, closeScheduler)
	pubCtrl := controllers.NewPublicationController(pubSvc)

	statsCtrl := controllers.NewStatisticsController(statisticsService.NewService(store))

	surveys := router.Group("/surveys", middleware.AuthJWT)

	surveys.Post("/", ctrl.CreateSurvey)
	surveys.Get("/", ctrl.GetSurveys)
	surveys.Get("/:id", ctrl.GetSurveyByID)
	surveys.Put("/:id", ctrl.UpdateSurvey)
	surveys.Post("/:id/archive", ctrl.ArchiveSurvey)
	surveys.Delete("/:id", ctrl.DeleteSurvey)

	surveys.Post("/:id/publish", pubCtrl.PublishSurvey)
	surveys.Get("/:id/publications", pubCtrl.GetPublicationsBySurvey)
	surveys.Get("/:surveyId/publications/:id/statistics", statsCtrl.GetSurveyStatistics)
}
