package memory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	chatModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/chat"
)

func TestRecentKeepsTrailingWindow(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		turn := chatModel.Turn{Role: chatModel.RoleUser, Content: fmt.Sprintf("message %d", i)}
		if err := store.Append(ctx, "s1", turn); err != nil {
			t.Fatalf("Append err: %v", err)
		}
	}

	turns, err := store.Recent(ctx, "s1", ContextWindowSize)
	if err != nil {
		t.Fatalf("Recent err: %v", err)
	}
	if len(turns) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(turns))
	}
	if turns[0].Content != "message 3" || turns[4].Content != "message 7" {
		t.Fatalf("window not oldest-first: %v", turns)
	}
}

func TestRecentEmptySession(t *testing.T) {
	store := NewMemoryStore()
	turns, err := store.Recent(context.Background(), "missing", ContextWindowSize)
	if err != nil {
		t.Fatalf("Recent err: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected no turns, got %d", len(turns))
	}
}

func TestContextWindowFormat(t *testing.T) {
	got := ContextWindow([]chatModel.Turn{
		{Role: chatModel.RoleUser, Content: "hello"},
		{Role: chatModel.RoleBot, Content: "hi there"},
	})
	want := "user: hello\nbot: hi there"
	if got != want {
		t.Fatalf("unexpected context window:\n%s", got)
	}
}

func TestAppendIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Append(ctx, "a", chatModel.Turn{Role: chatModel.RoleUser, Content: "from a"})
	_ = store.Append(ctx, "b", chatModel.Turn{Role: chatModel.RoleUser, Content: "from b"})

	turns, _ := store.Recent(ctx, "a", ContextWindowSize)
	if len(turns) != 1 || !strings.Contains(turns[0].Content, "from a") {
		t.Fatalf("session a polluted: %v", turns)
	}
}
