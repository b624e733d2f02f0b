package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"web-chatter/internal/app"
	"web-chatter/internal/config"
	"web-chatter/internal/mcpserver"
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

	srv := mcpserver.New(engine, session.NewManager())
	log.Printf("starting web-chatter MCP server on stdin/stdout")
	if err := srv.Run(context.Background()); err != nil {
		log.Fatalf("MCP server failed: %v", err)
	}
}
