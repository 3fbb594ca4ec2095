package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jwebster45206/story-directives/pkg/storage"
)

// Options configures the API routes.
type Options struct {
	HistoryLimit int  // chat messages included in prompts
	PreviewMode  bool // default preview flag for directive requests
}

// NewRouter registers every API route on a new ServeMux.
func NewRouter(store storage.Storage, opts Options, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", NewHealthHandler(store, logger))

	gameStateHandler := NewGameStateHandler(store, logger)
	mux.Handle("/v1/gamestate", gameStateHandler)
	mux.Handle("/v1/gamestate/", gameStateHandler)

	mux.Handle("GET /v1/gamestate/{id}/directives", NewDirectivesHandler(store, opts.PreviewMode, logger))
	mux.Handle("POST /v1/gamestate/{id}/prompt", NewPromptHandler(store, opts.HistoryLimit, logger))

	return mux
}
