package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// MemoryDSN returns a DSN for a private, shared-cache in-memory SQLite
// database. The database disappears when its last connection closes.
func MemoryDSN() string {
	return "file:bookshelf_" + uuid.NewString() + "?mode=memory&cache=shared"
}

// OpenSQLite opens the SQLite database at dsn and migrates the book table.
// The pool is pinned to a single connection: an in-memory database lives
// only as long as a connection to it, and SQLite serializes writers anyway.
func OpenSQLite(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate books: %w", err)
	}

	logger.Info("sqlite store ready", "dsn", dsn)

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
