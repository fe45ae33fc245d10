package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"vacancy-match/internal/app"
	"vacancy-match/internal/config"
	"vacancy-match/internal/infrastructure/headhunter"
	"vacancy-match/internal/usecase"
)

// One-shot ingestion run: pull recent postings for every business role from
// the job board and upsert them, then exit. Meant to run on a schedule.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	client := headhunter.NewClient(cfg.HeadHunter, container.Logger)
	source := headhunter.NewSource(client)
	ingestor := usecase.NewIngestor(source, container.Postings, container.Cache, container.Logger)

	if err := ingestor.Run(ctx, usecase.DefaultRoleQueries()); err != nil {
		log.Fatalf("ingest finished with errors: %v", err)
	}
}
