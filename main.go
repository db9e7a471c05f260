package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"centralcelular_backend/internals/configs"
	database "centralcelular_backend/internals/databases"
	waScheduler "centralcelular_backend/internals/features/notifications/whatsapp/scheduler"
	authScheduler "centralcelular_backend/internals/features/users/auth/scheduler"
	"centralcelular_backend/internals/middlewares"
	"centralcelular_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:      "Central Celular API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		},
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	route.SetupRoutes(app, database.DB)

	authScheduler.StartTokenCleanup(database.DB)
	waScheduler.StartBirthdayReminders(database.DB)

	go func() {
		port := configs.GetEnv("PORT", "8080")
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[FATAL] server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("[INFO] Bye.")
}
