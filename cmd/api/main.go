package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/kokushiworks/exam_bank/configs"
	"github.com/kokushiworks/exam_bank/database"
	"github.com/kokushiworks/exam_bank/handlers"
	"github.com/kokushiworks/exam_bank/jobs"
	"github.com/kokushiworks/exam_bank/routes"
	"github.com/kokushiworks/exam_bank/store"
	"github.com/kokushiworks/exam_bank/websocket"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	handlers.Init(store.New(database.DB))

	if config.Config("CLOUDINARY_URL") != "" && config.Config("ASSET_FOLDER") != "" {
		c := cron.New()
		schedule := config.ConfigOr("ASSET_SYNC_CRON", "@every 30m")
		if _, err := c.AddFunc(schedule, func() {
			jobs.SyncAssetLinks(handlers.AssetSvc())
		}); err != nil {
			log.Fatalf("🔥 Invalid ASSET_SYNC_CRON %q: %v", schedule, err)
		}
		go c.Start()
		log.Println("✅ Cron job for asset-link sync scheduled successfully.")
	}

	app := fiber.New(fiber.Config{
		AppName:       "Exam Bank",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Exam Bank API",
		})
	})

	routes.ExamRoutes(app)
	routes.AssetRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
