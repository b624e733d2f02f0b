package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"web-chatter/internal/app"
	"web-chatter/internal/config"
	"web-chatter/internal/httpapi"
	"web-chatter/internal/session"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	engine, err := app.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("failed to build assistant: %v", err)
	}

	sessions := session.NewManager()

	janitor := session.NewJanitor(sessions, cfg.SessionMaxIdle)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start session janitor: %v", err)
	}
	defer janitor.Stop()

	srv := httpapi.NewServer(engine, sessions, cfg.Port)
	log.Printf("starting web-chatter API on :%d", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
