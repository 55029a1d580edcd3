package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatrical-statements/internal/app"
	"github.com/redis/go-redis/v9"
)

// TestApp is the service handler plus direct connections used to seed and
// inspect the backing stores.
type TestApp struct {
	Handler http.Handler
	DB      *pgxpool.Pool
	Redis   *redis.Client

	closeHandler func()
}

func newTestApp(dbDSN, redisURL string) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	handler, closeHandler, err := app.NewHandler("test", dbDSN, redisURL, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), dbDSN)
	if err != nil {
		closeHandler()
		return nil, err
	}

	return &TestApp{
		Handler:      handler,
		DB:           db,
		Redis:        redis.NewClient(&redis.Options{Addr: redisURL}),
		closeHandler: closeHandler,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
	a.closeHandler()
}
