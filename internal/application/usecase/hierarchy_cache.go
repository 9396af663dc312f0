package usecase

import (
	"sync"

	"github.com/ep-bau/ep-system/internal/domain/authz"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// HierarchyCache hält den vorberechneten Sichtbarkeitsindex. Er wird lazy
// gebaut und bei jeder Änderung am Benutzerbestand invalidiert, nicht pro
// Abfrage neu berechnet.
type HierarchyCache struct {
	repo repository.BenutzerRepository

	mu    sync.Mutex
	index *authz.Hierarchy
}

func NewHierarchyCache(repo repository.BenutzerRepository) *HierarchyCache {
	return &HierarchyCache{repo: repo}
}

// Get liefert den aktuellen Index und baut ihn bei Bedarf neu.
func (c *HierarchyCache) Get() (*authz.Hierarchy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index != nil {
		return c.index, nil
	}
	benutzer, err := c.repo.ListAll()
	if err != nil {
		return nil, err
	}
	c.index = authz.BuildHierarchy(benutzer)
	return c.index, nil
}

// Invalidate verwirft den Index; der nächste Get baut ihn neu.
func (c *HierarchyCache) Invalidate() {
	c.mu.Lock()
	c.index = nil
	c.mu.Unlock()
}
