package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kapu/celestia-ai-go/internal/domain"
)

// Store keeps per-visitor view state. Load on an unknown id returns a fresh idle state.
type Store interface {
	Load(ctx context.Context, id string) (*domain.ViewState, error)
	Save(ctx context.Context, id string, state *domain.ViewState) error
	Delete(ctx context.Context, id string) error
	Close() error
}

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute
)

// NewID returns an opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one NewID could have produced.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
