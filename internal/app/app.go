package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatrical-statements/api"
	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/metinatakli/theatrical-statements/internal/repository"
	"github.com/metinatakli/theatrical-statements/internal/statement"
	appvalidator "github.com/metinatakli/theatrical-statements/internal/validator"
	"github.com/metinatakli/theatrical-statements/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/otel"
)

const serviceName = "theatrical-statements"

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	printer   *statement.Printer
	telemetry *telemetry

	playRepo domain.PlayRepository
}

type config struct {
	port             int
	env              string
	otelCollectorUrl string
	playCacheTTL     time.Duration
	db               struct {
		dsn          string
		maxOpenConns int
		maxIdleTime  time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
}

func defaultConfig() config {
	var cfg config

	cfg.port = 3000
	cfg.env = "dev"
	cfg.playCacheTTL = time.Hour
	cfg.db.maxOpenConns = 25
	cfg.db.maxIdleTime = 15 * time.Minute
	cfg.redis.maxOpenConns = 25
	cfg.redis.maxIdleConns = 10
	cfg.redis.maxIdleTime = 2 * time.Minute

	return cfg
}

func Run() error {
	cfg := defaultConfig()

	flag.IntVar(&cfg.port, "port", cfg.port, "server port")
	flag.StringVar(&cfg.env, "env", cfg.env, "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")
	flag.DurationVar(&cfg.playCacheTTL, "play-cache-ttl", cfg.playCacheTTL, "How long catalog plays stay cached in Redis")

	flag.StringVar(&cfg.db.dsn, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", cfg.db.maxOpenConns, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", cfg.db.maxIdleTime, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.redis.url, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", cfg.redis.maxOpenConns, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", cfg.redis.maxIdleConns, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", cfg.redis.maxIdleTime, "Redis max idle time for connections")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	logger, shutdownTelemetry, err := setupTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	app, closeConns, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer closeConns()

	return app.run()
}

// NewHandler connects to PostgreSQL and Redis and returns the service routes
// together with a function that releases both connections.
func NewHandler(env, dbDSN, redisURL string, logger *slog.Logger) (http.Handler, func(), error) {
	cfg := defaultConfig()
	cfg.env = env
	cfg.db.dsn = dbDSN
	cfg.redis.url = redisURL

	app, closeConns, err := connect(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return app.routes(), closeConns, nil
}

func connect(cfg config, logger *slog.Logger) (*application, func(), error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	closeConns := func() {
		redisClient.Close()
		db.Close()
	}

	playRepo := repository.NewCachedPlayRepository(
		repository.NewPostgresPlayRepository(db),
		redisClient,
		cfg.playCacheTTL,
		logger,
	)

	app, err := newApp(cfg, logger, db, redisClient, appvalidator.NewValidator(), playRepo)
	if err != nil {
		closeConns()
		return nil, nil, err
	}

	return app, closeConns, nil
}

func newApp(
	cfg config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	playRepo domain.PlayRepository) (*application, error) {

	t, err := newTelemetry(otel.GetMeterProvider(), otel.GetTracerProvider())
	if err != nil {
		return nil, err
	}

	return &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		validator: validator,
		printer:   statement.NewPrinter(),
		telemetry: t,
		playRepo:  playRepo,
	}, nil
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConnIdleTime = cfg.db.maxIdleTime
	poolConfig.MaxConns = int32(cfg.db.maxOpenConns)
	poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	return api.HandlerFromMux(app, r)
}
