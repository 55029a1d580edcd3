package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CachedPlayRepository keeps catalog lookups in Redis in front of another
// PlayRepository. Redis failures are logged and the lookup falls through to
// the wrapped repository.
type CachedPlayRepository struct {
	next   domain.PlayRepository
	redis  redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

type cachedPlay struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lines     int       `json:"lines"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCachedPlayRepository(
	next domain.PlayRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger) *CachedPlayRepository {

	return &CachedPlayRepository{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func playCacheKey(id string) string {
	return fmt.Sprintf("play:%s", id)
}

func (c *CachedPlayRepository) Create(ctx context.Context, play *domain.CatalogPlay) error {
	err := c.next.Create(ctx, play)
	if err != nil {
		return err
	}

	c.store(ctx, play)

	return nil
}

func (c *CachedPlayRepository) GetByID(ctx context.Context, id string) (*domain.CatalogPlay, error) {
	data, err := c.redis.Get(ctx, playCacheKey(id)).Result()
	switch {
	case err == nil:
		play, decodeErr := decodeCachedPlay(data)
		if decodeErr == nil {
			return play, nil
		}

		c.logger.Warn("discarding unreadable cached play", "play_id", id, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("play cache lookup failed", "play_id", id, "error", err)
	}

	play, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, play)

	return play, nil
}

func (c *CachedPlayRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.CatalogPlay, error) {
	plays := make(map[string]*domain.CatalogPlay, len(ids))
	if len(ids) == 0 {
		return plays, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playCacheKey(id)
	}

	missing := ids

	values, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("play cache batch lookup failed", "error", err)
	} else {
		missing = nil

		for i, v := range values {
			data, ok := v.(string)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}

			play, err := decodeCachedPlay(data)
			if err != nil {
				c.logger.Warn("discarding unreadable cached play", "play_id", ids[i], "error", err)
				missing = append(missing, ids[i])
				continue
			}

			plays[play.ID] = play
		}
	}

	if len(missing) == 0 {
		return plays, nil
	}

	found, err := c.next.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	for id, play := range found {
		plays[id] = play
		c.store(ctx, play)
	}

	return plays, nil
}

func (c *CachedPlayRepository) GetAll(ctx context.Context) ([]*domain.CatalogPlay, error) {
	return c.next.GetAll(ctx)
}

func (c *CachedPlayRepository) store(ctx context.Context, play *domain.CatalogPlay) {
	data, err := json.Marshal(cachedPlay{
		ID:        play.ID,
		Name:      play.Play.Name(),
		Lines:     play.Play.Lines(),
		Genre:     play.Play.Genre().String(),
		CreatedAt: play.CreatedAt,
	})
	if err != nil {
		c.logger.Error("failed to encode play for cache", "play_id", play.ID, "error", err)
		return
	}

	err = c.redis.Set(ctx, playCacheKey(play.ID), data, c.ttl).Err()
	if err != nil {
		c.logger.Warn("failed to cache play", "play_id", play.ID, "error", err)
	}
}

func decodeCachedPlay(data string) (*domain.CatalogPlay, error) {
	var cp cachedPlay

	err := json.Unmarshal([]byte(data), &cp)
	if err != nil {
		return nil, err
	}

	play, err := domain.NewPlay(cp.Name, cp.Lines, domain.Genre(cp.Genre))
	if err != nil {
		return nil, err
	}

	return &domain.CatalogPlay{
		ID:        cp.ID,
		Play:      play,
		CreatedAt: cp.CreatedAt,
	}, nil
}
