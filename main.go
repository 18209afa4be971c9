package main

import (
	"log"

	"github.com/joho/godotenv"
	"pdftools/cmd"
	"pdftools/internal/config"
	"pdftools/internal/logger"
)

func main() {
	// Environment overrides are optional; a missing .env file is not an error.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute(cfg)
}
