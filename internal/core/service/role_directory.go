package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// RoleDirectory resolves role names to role ids. Positive results are cached
// for the life of the process; roles are seeded out of band and never change.
type RoleDirectory struct {
	repo ports.RoleRepository

	mu    sync.RWMutex
	cache map[string]string
}

func NewRoleDirectory(repo ports.RoleRepository) *RoleDirectory {
	return &RoleDirectory{repo: repo, cache: make(map[string]string)}
}

// ResolveRoleID returns the id of the role named exactly name.
func (d *RoleDirectory) ResolveRoleID(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", domain.ErrRoleNotFound
	}

	d.mu.RLock()
	id, ok := d.cache[name]
	d.mu.RUnlock()
	if ok {
		return id, nil
	}

	id, err := d.repo.FindIDByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolve role %q: %w", name, err)
	}

	d.mu.Lock()
	d.cache[name] = id
	d.mu.Unlock()
	return id, nil
}
