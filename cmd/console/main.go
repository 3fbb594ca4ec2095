package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/state"
)

type ConsoleConfig struct {
	APIBaseURL   string
	Timeout      time.Duration
	Preview      bool
	TurnMinutes  int64 // world time that passes per submitted action
	HistoryLimit int
}

func main() {
	cfg := &ConsoleConfig{Timeout: 30 * time.Second}

	file := flag.String("file", "", "game state JSON file to preview")
	id := flag.String("id", "", "game state ID to load from the API")
	flag.StringVar(&cfg.APIBaseURL, "api", getEnv("API_BASE_URL", "http://localhost:8080"), "API base URL")
	flag.BoolVar(&cfg.Preview, "preview", true, "show placeholders for untriggered sections")
	flag.Int64Var(&cfg.TurnMinutes, "turn-minutes", 30, "in-world minutes that pass per turn")
	flag.IntVar(&cfg.HistoryLimit, "history", 20, "chat messages included in built prompts")
	flag.Parse()

	var (
		gs  *state.GameState
		err error
	)
	switch {
	case *file != "":
		gs, err = loadGameStateFile(*file)
	case *id != "":
		gs, err = loadFromAPI(cfg, *id)
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s -file <gamestate.json> | -id <gamestate id>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load game state: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(cfg, gs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadFromAPI(cfg *ConsoleConfig, idStr string) (*state.GameState, error) {
	gameStateID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid game state ID: %w", err)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	if !testConnection(client, cfg.APIBaseURL) {
		return nil, fmt.Errorf("could not connect to API at %s", cfg.APIBaseURL)
	}
	return getGameState(client, cfg.APIBaseURL, gameStateID)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
