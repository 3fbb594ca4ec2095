package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/state"
)

func TestMockStorage_SaveAndLoadGameState(t *testing.T) {
	mockStorage := NewMockStorage()
	ctx := context.Background()

	gs := state.NewGameState(state.WorldConfig{Genre: "fantasy", Difficulty: state.DifficultyHard})
	gs.UserCustomRules = []string{"No magic"}

	if err := mockStorage.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Failed to save gamestate: %v", err)
	}

	// Mutating the caller's copy must not change what was saved
	gs.UserCustomRules[0] = "changed"

	loaded, err := mockStorage.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Failed to load gamestate: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected non-nil gamestate")
	}
	if loaded.ID != gs.ID {
		t.Errorf("Expected ID %v, got %v", gs.ID, loaded.ID)
	}
	if loaded.UserCustomRules[0] != "No magic" {
		t.Errorf("Expected saved rule to be unchanged, got %q", loaded.UserCustomRules[0])
	}
}

func TestMockStorage_LoadNonExistentGameState(t *testing.T) {
	loaded, err := NewMockStorage().LoadGameState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error for non-existent gamestate, got: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for non-existent gamestate")
	}
}

func TestMockStorage_DeleteGameState(t *testing.T) {
	mockStorage := NewMockStorage()
	ctx := context.Background()

	gs := state.NewGameState(state.WorldConfig{})
	if err := mockStorage.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Failed to save gamestate: %v", err)
	}
	if err := mockStorage.DeleteGameState(ctx, gs.ID); err != nil {
		t.Fatalf("Failed to delete gamestate: %v", err)
	}
	loaded, _ := mockStorage.LoadGameState(ctx, gs.ID)
	if loaded != nil {
		t.Error("Expected gamestate to be deleted")
	}
}

func TestMockStorage_Errors(t *testing.T) {
	mockStorage := NewMockStorage()
	ctx := context.Background()

	if err := mockStorage.SaveGameState(ctx, uuid.New(), nil); err == nil {
		t.Error("Expected error saving nil gamestate")
	}

	pingErr := errors.New("connection refused")
	mockStorage.SetPingError(pingErr)
	if err := mockStorage.Ping(ctx); !errors.Is(err, pingErr) {
		t.Errorf("Expected ping error, got %v", err)
	}

	saveErr := errors.New("disk full")
	mockStorage.SetSaveError(saveErr)
	gs := state.NewGameState(state.WorldConfig{})
	if err := mockStorage.SaveGameState(ctx, gs.ID, gs); !errors.Is(err, saveErr) {
		t.Errorf("Expected save error, got %v", err)
	}
}
