package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyHub/src/jobs"
	"Backend-SurveyHub/src/repositories"
)

// InitRoutes wires every route group onto the app. Everything except
// login and the access-code lookup sits behind JWT auth.
func InitRoutes(app *fiber.App, store *repositories.Store, scheduler *jobs.Scheduler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	api := app.Group("/api")

	AuthRoutes(api, store)
	ScaleRoutes(api, store)
	SurveyRoutes(api, store, scheduler)
	PublicationRoutes(api, store)
	RespondentRoutes(api, store)
}
