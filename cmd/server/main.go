package main

import (
	"context"
	"log"

	"voice_cloning/config"
	"voice_cloning/internal/server"

	_ "voice_cloning/cmd/server/docs"
)

// @title           Voice Cloning API
// @version         1.0
// @description     Web UI and API for cloning a voice from a short sample and synthesizing speech in it.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	ctx := context.Background()
	s := server.NewServer(cfg)
	s.Run(ctx, cfg)
}
