package domain

import (
	"context"
	"time"
)

// CatalogPlay is a play registered under a stable key such as "hamlet".
type CatalogPlay struct {
	ID        string
	Play      Play
	CreatedAt time.Time
}

type PlayRepository interface {
	Create(ctx context.Context, play *CatalogPlay) error
	GetByID(ctx context.Context, id string) (*CatalogPlay, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*CatalogPlay, error)
	GetAll(ctx context.Context) ([]*CatalogPlay, error)
}
