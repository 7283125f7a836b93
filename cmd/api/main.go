package main

import (
	"log"
	"os"

	"github.com/finresearch/bigdata-agent/internal/api"
	"github.com/finresearch/bigdata-agent/internal/bigdata"
	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/finresearch/bigdata-agent/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Create the provider session manager
	sessions := bigdata.NewManager(cfg)

	// Build the search service, with watchlists when configured
	var opts []search.ServiceOption
	if path := cfg.Get("WATCHLIST_PATH"); path != "" {
		watchlists, err := search.LoadWatchlists(path)
		if err != nil {
			log.Fatalf("[API-MAIN]: Failed to load watchlists: %v", err)
		}
		opts = append(opts, search.WithWatchlists(watchlists))
	}
	svc := search.NewService(sessions, opts...)

	// Start
	api.Start(cfg, svc)
}
