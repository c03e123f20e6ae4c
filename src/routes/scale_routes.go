package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/controllers"
	"Backend-SurveyHub/src/middleware"
	"Backend-SurveyHub/src/repositories"
	scaleService "Backend-SurveyHub/src/services/scales"
)

func ScaleRoutes(router fiber.Router, store *repositories.Store) {
	svc := scaleService.NewService(store)
	ctrl := controllers.NewScaleController(svc)

	scales := router.Group("/scales", middleware.AuthJWT)

	scales.Post("/", ctrl.CreateScale)
	scales.Get("/", ctrl.GetScales)
	scales.Get("/:id", ctrl.GetScaleByID)
	scales.Put("/:id", ctrl.UpdateScale)
	scales.Delete("/:id", ctrl.DeleteScale)
}
