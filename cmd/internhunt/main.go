package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"internhunt/internal/config"
	"internhunt/internal/export"
	"internhunt/internal/scrape"
	"internhunt/internal/store"
)

func main() {
	// optional .env next to the binary, e.g. INTERNHUNT_DATA_DIR
	_ = godotenv.Load()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	dataDir := os.Getenv("INTERNHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logger.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		logger.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		logger.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		logger.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			logger.Printf("[config] error: %s", e)
		}
		logger.Fatalf("config invalid (%s)", userCfgPath)
	}

	repo := store.NewRepository()

	added, err := scrape.RunOnce(context.Background(), cfg, repo, logger)
	if err != nil {
		logger.Fatalf("scrape failed: %v", err)
	}
	logger.Printf("[main] run finished: %d new jobs, %d in storage", added, repo.Len())

	outPath := cfg.App.Output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dataDir, outPath)
	}
	if err := export.Markdown(outPath, repo.AllJobs(), time.Now()); err != nil {
		logger.Fatalf("markdown export failed: %v", err)
	}
	logger.Printf("[main] wrote %s with %d jobs", outPath, repo.Len())
}
