package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/controllers"
	"Backend-SurveyHub/src/repositories"
)

func AuthRoutes(router fiber.Router, store *repositories.Store) {
	ctrl := controllers.NewAuthController(store)

	auth := router.Group("/auth")

	auth.Post("/login", ctrl.Login)
}
