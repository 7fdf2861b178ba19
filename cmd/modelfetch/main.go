package main

import (
	"context"
	"flag"
	"log"

	"voice_cloning/config"
	"voice_cloning/internal/model"
	"voice_cloning/internal/storage/s3repo"
	"voice_cloning/pkg/logger"
)

func main() {
	publish := flag.Bool("publish", false, "pack the local model dir and upload it to the mirror")
	flag.Parse()

	// Configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	l := logger.New(cfg.Log.Level)

	storage, err := s3repo.NewS3Repository(cfg.S3)
	if err != nil {
		l.Fatal(err)
	}

	fetcher := model.NewFetcher(cfg, storage, l)

	ctx := context.Background()

	if *publish {
		if err := fetcher.Publish(ctx); err != nil {
			l.Fatal(err)
		}

		return
	}

	if err := fetcher.Fetch(ctx); err != nil {
		l.Fatal(err)
	}
}
