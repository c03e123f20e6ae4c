package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/controllers"
	"Backend-SurveyHub/src/middleware"
	"Backend-SurveyHub/src/repositories"
	respondentService "Backend-SurveyHub/src/services/respondents"
)

func RespondentRoutes(router fiber.Router, store *repositories.Store) {
	svc := respondentService.NewService(store)
	ctrl := controllers.NewRespondentController(svc)

	respondents := router.Group("/respondents", middleware.AuthJWT)

	respondents.Get("/count", ctrl.CountEligibleRespondents)
	respondents.Get("/:id", ctrl.GetRespondentByID)
}
