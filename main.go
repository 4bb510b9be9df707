package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/locallink/local-link/cron"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/redis"
	"github.com/locallink/local-link/routes"
	"github.com/locallink/local-link/utils"
)

func main() {
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	cron.StartCronJobs()

	app := fiber.New(fiber.Config{
		AppName:   "LocalLink",
		BodyLimit: utils.MaxUploadSize,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to LocalLink",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupStudentRoutes(app)
	routes.SetupGuideRoutes(app)

	if err := app.Listen(":8000"); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
