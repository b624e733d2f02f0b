package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"web-chatter/internal/app"
	"web-chatter/internal/config"
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

	// One session for the whole interactive run.
	sess := session.New()
	ctx := context.Background()

	fmt.Println("Web chatbot ready! Type 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			fmt.Println("Chatbot: Goodbye!")
			return
		}

		answer, err := engine.Ask(ctx, sess, input)
		if err != nil {
			log.Printf("turn failed: %v", err)
			fmt.Println("Chatbot: Sorry, something went wrong.")
			continue
		}
		fmt.Printf("Chatbot: %s\n\n", answer)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin read failed: %v", err)
	}
}
