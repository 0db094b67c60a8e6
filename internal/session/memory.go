package session

import (
	"context"
	"sync"
	"time"

	"github.com/kapu/celestia-ai-go/internal/domain"
	"go.uber.org/zap"
)

type memoryEntry struct {
	state     domain.ViewState
	expiresAt time.Time
}

// MemoryStore is the default single-process store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func NewMemoryStore(ttl time.Duration, logger *zap.Logger) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*domain.ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok || !m.now().Before(entry.expiresAt) {
		delete(m.entries, id)
		return domain.NewViewState(), nil
	}

	// Copy out so callers never mutate stored state without Save.
	state := entry.state
	if entry.state.Reading != nil {
		reading := *entry.state.Reading
		state.Reading = &reading
	}
	return &state, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, state *domain.ViewState) error {
	if state == nil {
		return nil
	}

	stored := *state
	if state.Reading != nil {
		reading := *state.Reading
		stored.Reading = &reading
	}

	m.mu.Lock()
	m.entries[id] = memoryEntry{state: stored, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.Sweep(); removed > 0 {
				m.logger.Debug("Expired sessions swept", zap.Int("removed", removed))
			}
		}
	}
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryStore) Close() error {
	return nil
}
