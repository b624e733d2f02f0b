package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"web-chatter/internal/app"
	"web-chatter/internal/config"
	"web-chatter/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if cfg.TelegramBotToken == "" {
		log.Fatalf("TELEGRAM_BOT_TOKEN is required")
	}

	engine, err := app.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("failed to build assistant: %v", err)
	}

	bot, err := telegram.New(cfg.TelegramBotToken, engine, cfg.AllowedUsers)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}
