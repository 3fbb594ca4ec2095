package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/state"
)

// Storage defines gamestate persistence.
// LoadGameState returns (nil, nil) when no gamestate exists for the id.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// GameState operations
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}
