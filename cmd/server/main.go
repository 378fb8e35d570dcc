package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/aevtikheev/dvmn-support-bot/internal/config"
	"github.com/aevtikheev/dvmn-support-bot/internal/dialogflow"
	"github.com/aevtikheev/dvmn-support-bot/internal/logger"
	"github.com/aevtikheev/dvmn-support-bot/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)

	responder := dialogflow.NewResponder(cfg.GoogleAppCredsFile, logg)
	handler := webhook.NewHandler(responder, cfg.DefaultLanguageCode, logg)

	app := fiber.New()
	webhook.RegisterRoutes(app, handler)

	logg.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logg.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
