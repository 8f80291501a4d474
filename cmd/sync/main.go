package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/evepupil/notion-friends-sync/pkg/config"
	"github.com/evepupil/notion-friends-sync/pkg/logger"
	"github.com/evepupil/notion-friends-sync/pkg/notion"
	"github.com/evepupil/notion-friends-sync/pkg/store"
	"github.com/evepupil/notion-friends-sync/pkg/sync"
)

func main() {
	// Parse command-line flags
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	dryRun := flag.Bool("dry-run", false, "Query and map, but print the document instead of writing it")
	help := flag.Bool("help", false, "Display help information")
	flag.Parse()

	// Display help if requested
	if *help {
		displayUsage()
		os.Exit(0)
	}

	// Create logger
	log := logger.New()
	log.SetLevel(*logLevel)

	// Load environment from a local .env if present
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Sync is optional infrastructure: deployments without a database
	// ID skip it and still succeed.
	if !cfg.SyncConfigured() {
		log.Info("NOTION_DATABASE_ID is not configured, skipping friends link sync")
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		log.Errorf("Configuration error: %v", err)
		os.Exit(1)
	}

	// Handle interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := notion.NewClient(cfg.Token, log)
	st := store.NewFileStore(cfg.OutputPath, log)

	syncer := sync.New(cfg, client, st, log)
	syncer.DryRun = *dryRun

	if err := syncer.Start(ctx); err != nil {
		log.Errorf("Sync failed: %v", err)
		switch {
		case notion.IsNotFound(err):
			log.Error("Check that NOTION_DATABASE_ID is correct and the database is shared with your integration")
		case notion.IsUnauthorized(err):
			log.Error("Check that NOTION_TOKEN is a valid integration token")
		default:
			log.Errorf("Details: %+v", err)
		}
		os.Exit(1)
	}
}

// displayUsage displays usage information
func displayUsage() {
	fmt.Println("\nNotion Friends Link Sync")
	fmt.Println("========================")
	fmt.Println("Usage: sync [options]")
	fmt.Println("Options:")
	fmt.Println("  -log-level string")
	fmt.Println("        Log level: debug, info, warn, error (default \"info\")")
	fmt.Println("  -dry-run")
	fmt.Println("        Query and map, but print the document instead of writing it")
	fmt.Println("  -help")
	fmt.Println("        Display this help information")
	fmt.Println("Environment:")
	fmt.Println("  NOTION_TOKEN          Notion integration token (required)")
	fmt.Println("  NOTION_DATABASE_ID    Submissions database ID (sync is skipped when unset)")
	fmt.Println("  FRIENDS_OUTPUT_PATH   Output file (default \"src/data/friends.json\")")
}
