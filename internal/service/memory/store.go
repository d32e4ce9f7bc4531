package memory

import (
	"context"
	"strings"
	"sync"

	chatModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/chat"
)

// ContextWindowSize is the number of trailing turns primed into the model.
const ContextWindowSize = 5

// Store keeps per-session ordered turn logs. Appends are serialized per
// store; turns are never reordered or mutated.
type Store interface {
	Append(ctx context.Context, sessionID string, turn chatModel.Turn) error
	Recent(ctx context.Context, sessionID string, n int) ([]chatModel.Turn, error)
}

// MemoryStore implements Store with a mutex-guarded map, suitable for a
// single-process deployment.
type MemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]chatModel.Turn
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{turns: make(map[string][]chatModel.Turn)}
}

// Append adds a turn to the session log, creating the session on first use.
func (s *MemoryStore) Append(_ context.Context, sessionID string, turn chatModel.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionID] = append(s.turns[sessionID], turn)
	return nil
}

// Recent returns a copy of the last n turns, oldest-first.
func (s *MemoryStore) Recent(_ context.Context, sessionID string, n int) ([]chatModel.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[sessionID]
	start := 0
	if len(turns) > n {
		start = len(turns) - n
	}

	copied := make([]chatModel.Turn, len(turns)-start)
	copy(copied, turns[start:])
	return copied, nil
}

// ContextWindow joins turns as "role: content" lines, oldest-first.
func ContextWindow(turns []chatModel.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, string(turn.Role)+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}
