package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/smallbiznis/invoicepilot/internal/config"
	invoicedomain "github.com/smallbiznis/invoicepilot/internal/invoice/domain"
	issuerdomain "github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database. Postgres is the production
// target; with no DSN configured a local sqlite file is used so the
// service runs without external services.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	dsn := strings.TrimSpace(cfg.DatabaseDSN)
	switch {
	case dsn == "":
		log.Warn("DATABASE_DSN not set, falling back to local sqlite")
		dialector = sqlite.Open("invoicepilot.db?_pragma=foreign_keys(1)")
	case strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db"):
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Info("database connected")
	return conn, nil
}

// Migrate applies the schema.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&issuerdomain.Profile{},
		&invoicedomain.Client{},
		&invoicedomain.Invoice{},
		&invoicedomain.LineItem{},
	)
}

var Module = fx.Module("db",
	fx.Provide(Open),
)
