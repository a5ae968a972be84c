package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/api"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/app"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/notify"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/session"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/store"
)

func main() {
	// .env is optional; plain env vars still apply.
	_ = godotenv.Load()

	port := getenv("PORT", "8080")
	backend := getenv("SESSION_BACKEND", "postgres")
	sessionKey := getenv("SESSION_KEY", session.DefaultKey)

	migDir := flag.String("migrations", "./migrations", "migrations directory")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Fatal("failed to sync logger", zap.Error(err))
		}
	}(logger)
	sugar := logger.Sugar()

	sess, cleanup, err := buildSessionStore(backend, sessionKey, *migDir, logger, sugar)
	if err != nil {
		sugar.Fatalf("session store init failed: %v", err)
	}
	defer cleanup()
	sugar.Infof("session store ready (backend=%s)", backend)

	repos := store.NewRepositories(logger)
	repos.Seed(store.DefaultSeed())

	emitter := notify.NewEmitter(logger)
	container := app.New(repos, sess, emitter, logger)
	container.RestoreSession(context.Background())

	h := api.NewHandler(container, logger)

	r := chi.NewRouter()
	r.Use(api.RequestIDMiddleware, api.LoggerMiddleware(logger), api.Recoverer(logger))
	api.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	sugar.Infof("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalf("server forced to shutdown: %v", err)
	}
	sugar.Info("server stopped")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func buildSessionStore(backend, key, migDir string, logger *zap.Logger, sugar *zap.SugaredLogger) (session.Store, func(), error) {
	switch backend {
	case "postgres":
		dsn := getenv("DATABASE_URL", "postgres://pguser:pgpass@db:5432/citizendb?sslmode=disable")
		db, err := connectDBWithRetry(dsn, 15, 2*time.Second, sugar)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := runMigrations(dsn, migDir, sugar); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		sugar.Info("migrations applied")
		cleanup := func() {
			if err := db.Close(); err != nil {
				sugar.Errorf("failed to close db: %v", err)
			}
		}
		return session.NewPostgresStore(db, key, logger), cleanup, nil
	case "redis":
		addr := getenv("REDIS_ADDR", "localhost:6379")
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		cleanup := func() {
			if err := rdb.Close(); err != nil {
				sugar.Errorf("failed to close redis: %v", err)
			}
		}
		return session.NewRedisStore(rdb, key, logger), cleanup, nil
	case "memory":
		sugar.Warn("memory session backend: logged-in user will not survive a restart")
		return session.NewMemoryStore(logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q", backend)
	}
}

func connectDBWithRetry(dsn string, attempts int, delay time.Duration, sugar *zap.SugaredLogger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < attempts; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				return db, nil
			}
		}
		sugar.Warnf("db ping error: %v (attempt %d/%d)", err, i+1, attempts)
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("db connect failed: %w", err)
}

func runMigrations(dsn, migrationsDir string, sugar *zap.SugaredLogger) error {
	sugar.Infof("running migrations from %s", migrationsDir)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("migration open db: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsDir,
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		sugar.Info("no new migrations — already up to date")
	}

	return nil
}
