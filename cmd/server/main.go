package main

// @title           Bookshelf API
// @version         1.0
// @description     In-memory bookshelf: add, list, read, update and delete books.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:9000
// @BasePath  /

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/config"
	"github.com/snnyvrz/bookshelf-api/internal/db"
	"github.com/snnyvrz/bookshelf-api/internal/logging"
	"github.com/snnyvrz/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	"github.com/snnyvrz/bookshelf-api/internal/server"
)

const appVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	gin.SetMode(cfg.GinMode)

	books, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx.Done())
	}

	router := server.NewRouter(server.RouterDeps{
		Config:      cfg,
		Logger:      logger,
		Books:       books,
		RateLimiter: limiter,
		StartTime:   startTime,
		Version:     appVersion,
	})

	logger.Info("bookshelf api configured",
		"version", appVersion,
		"env", cfg.AppEnv,
		"store", cfg.StoreDriver,
		"address", cfg.Addr(),
	)

	return server.Serve(ctx, cfg.Addr(), router, logger)
}

func openStore(cfg *config.Config, logger *slog.Logger) (repository.BookRepository, func(), error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return repository.NewMemoryBookRepository(), func() {}, nil
	}

	database, err := db.OpenSQLite(db.MemoryDSN(), logger)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := db.Close(database); err != nil {
			logger.Error("close sqlite store", "error", err)
		}
	}

	return repository.NewGormBookRepository(database), closeFn, nil
}
