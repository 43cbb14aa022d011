package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"grantflow/internal/models"
	"grantflow/internal/util"
)

// ApplicationStore is an append-only log of applications. There is no update or delete.
type ApplicationStore interface {
	List(ctx context.Context) ([]models.Application, error)
	Append(ctx context.Context, app models.Application) error
	Count(ctx context.Context) (int, error)
}

// MemoryStore keeps applications for the lifetime of the process. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	apps []models.Application
	ids  map[string]struct{}
}

func NewMemoryStore(seed ...models.Application) (*MemoryStore, error) {
	s := &MemoryStore{ids: make(map[string]struct{}, len(seed))}
	for _, app := range seed {
		if err := s.append(app); err != nil {
			return nil, fmt.Errorf("seed application %q: %w", app.ID, err)
		}
	}
	return s, nil
}

// List returns a copy in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]models.Application, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.apps))
	copy(out, s.apps)
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, app models.Application) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(app)
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps), nil
}

func (s *MemoryStore) append(app models.Application) error {
	id := strings.TrimSpace(app.ID)
	if id == "" {
		return util.ErrMissingID
	}
	if _, exists := s.ids[id]; exists {
		return fmt.Errorf("%s: %w", id, util.ErrDuplicateID)
	}
	s.ids[id] = struct{}{}
	s.apps = append(s.apps, app)
	return nil
}
