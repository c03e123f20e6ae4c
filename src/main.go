package main

import (
	_ "Backend-SurveyHub/docs"
	"Backend-SurveyHub/src/database"
	"Backend-SurveyHub/src/jobs"
	"Backend-SurveyHub/src/repositories"
	"Backend-SurveyHub/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis is optional. Without it the refresh-token store and the
	// statistics cache degrade to no-ops and scheduled closes are off.
	database.InitRedis()
	database.InitAsynq()

	store := repositories.NewMongoStore(database.Client(), database.GetDatabase())

	scheduler := jobs.NewScheduler()
	if scheduler != nil {
		go func() {
			if err := jobs.StartWorker(store); err != nil {
				log.Printf("asynq worker stopped: %v", err)
			}
		}()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, store, scheduler)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}
}
