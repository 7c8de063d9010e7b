package dao

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tanya/tanya/sources/sqlitedb/models"
)

func setupTestDAO(t *testing.T) *TurnDAO {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Turn{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewTurnDAO(db)
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	turns := setupTestDAO(t)
	ctx := context.Background()

	first, err := turns.Append(ctx, "S1", "user", "halo")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	second, err := turns.Append(ctx, "S1", "assistant", "halo juga")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if first.ID == 0 || second.ID <= first.ID {
		t.Errorf("ids must be strictly increasing, got %d then %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Errorf("expected a store-assigned timestamp")
	}
}

func TestHistoryMatchesAppendOrder(t *testing.T) {
	turns := setupTestDAO(t)
	ctx := context.Background()

	contents := []string{"a", "b", "c", "d", "e"}
	for i, content := range contents {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		if _, err := turns.Append(ctx, "S1", role, content); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	history, err := turns.HistoryBySession(ctx, "S1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != len(contents) {
		t.Fatalf("expected %d turns, got %d", len(contents), len(history))
	}
	for i, msg := range history {
		if msg.Content != contents[i] {
			t.Errorf("turn %d: expected %q, got %q", i, contents[i], msg.Content)
		}
	}
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	turns := setupTestDAO(t)

	history, err := turns.HistoryBySession(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("unknown session must not be an error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d turns", len(history))
	}
}

func TestHistoryIsolatedPerSession(t *testing.T) {
	turns := setupTestDAO(t)
	ctx := context.Background()

	if _, err := turns.Append(ctx, "S1", "user", "untuk S1"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, err := turns.Append(ctx, "S2", "user", "untuk S2"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	history, err := turns.HistoryBySession(ctx, "S2")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 || history[0].Content != "untuk S2" {
		t.Errorf("expected only S2's turn, got %+v", history)
	}
}
