package database

import (
	"fmt"
	"strings"

	"auction-house/internal/config"
	model "auction-house/internal/models"
	"auction-house/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the store described by cfg and migrates the schema.
// The returned handle is shared by every repository; its pool is safe for concurrent use.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(withForeignKeys(cfg.GetDSN()))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// a memory database lives only as long as its single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLife > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLife)
		}
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	utils.Info("database connection established", map[string]any{"driver": cfg.Driver})
	return db, nil
}

// OpenInMemory opens a private sqlite memory database with the full schema
func OpenInMemory() (*gorm.DB, error) {
	return Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID()),
	})
}

// AutoMigrate creates or updates the tables of every model, parents first
func AutoMigrate(db *gorm.DB) error {
	for _, m := range []any{&model.User{}, &model.Event{}, &model.Auction{}, &model.Bid{}} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}

// Close releases the pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withForeignKeys makes sqlite enforce foreign keys on every connection
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
