package sqlite

import (
	"fmt"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/logger"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options configures the SQLite connection.
type Options struct {
	URL           string        // File path or DSN, e.g. "reminders.db" or "file::memory:"
	SlowThreshold time.Duration // Queries slower than this are logged as warnings
	MaxOpenConns  int           // 0 keeps the driver default; in-memory databases need 1
}

// NewDB opens the SQLite database through GORM and migrates the schema.
func NewDB(opts Options, log logger.Logger) (*gorm.DB, error) {
	if opts.URL == "" {
		opts.URL = "reminders.db"
		log.Warn("database URL not set, defaulting to 'reminders.db'")
	}

	gormLog := gormlogger.New(
		logger.Printf{Log: log},
		gormlogger.Config{
			SlowThreshold:             opts.SlowThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(opts.URL), &gorm.Config{
		Logger:  gormLog,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	log.Info(fmt.Sprintf("Successfully connected to database: %s", opts.URL))

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database schema migration completed.")
	return db, nil
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Reminder{},
	)
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

// CloseDB closes the database connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
