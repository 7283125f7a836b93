package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/finresearch/bigdata-agent/internal/agents/research"
	"github.com/finresearch/bigdata-agent/internal/bigdata"
	"github.com/finresearch/bigdata-agent/internal/search"
	"github.com/finresearch/bigdata-agent/pkg/agent"
	"github.com/finresearch/bigdata-agent/pkg/utils"
	"github.com/nlpodyssey/openai-agents-go/agents"
)

// Orchestrator wires the provider session into the research agent
type Orchestrator struct {
	sessions *bigdata.Manager
	search   *search.Service
	research agent.CustomAgent
}

var orchestrator *Orchestrator

func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Create the provider session manager. Login happens on the first search,
	// so a misconfigured environment surfaces as an authentication error there
	sessions := bigdata.NewManager(cfg)

	// Build the search service, with watchlists when configured
	var opts []search.ServiceOption
	if path := cfg.Get("WATCHLIST_PATH"); path != "" {
		watchlists, err := search.LoadWatchlists(path)
		if err != nil {
			log.Fatalf("[MAIN]: Failed to load watchlists: %v", err)
		}
		opts = append(opts, search.WithWatchlists(watchlists))
	}
	svc := search.NewService(sessions, opts...)

	// Create research agent
	researchAgent, err := research.NewResearchAgent(svc, cfg)
	if err != nil {
		log.Fatalf("[MAIN]: Failed to initialize research agent: %v", err)
	}

	orchestrator = &Orchestrator{
		sessions: sessions,
		search:   svc,
		research: researchAgent,
	}

	// Start interactive session
	ctx := context.Background()
	if err := startInteractiveSession(ctx); err != nil {
		log.Fatalf("Failed to start interactive session: %v", err)
	}
}

// startInteractiveSession initializes the command line interface for the research assistant
func startInteractiveSession(ctx context.Context) error {
	fmt.Println("Financial Research Assistant started. Type 'exit' to quit.")

	// Create scanner for reading user input
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "exit" {
			break
		}

		if input == "" {
			continue
		}

		response, err := executeAgentCall(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Assistant: %s\n", response)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func executeAgentCall(ctx context.Context, input string) (string, error) {
	// Execute agent call
	response, err := agents.Run(ctx, orchestrator.research.Agent(), input)
	if err != nil {
		return "", fmt.Errorf("agent execution failed: %w", err)
	}

	// Convert response to string for display
	responseStr := fmt.Sprintf("%v", response.FinalOutput)
	return responseStr, nil
}
