package database

import (
	"context"
	"fmt"
	"time"

	"rangeiq/internal/config"
	"rangeiq/internal/logger"

	_ "github.com/godror/godror" // Oracle driver (OCI), db.driver=godror
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go), db.driver=oracle
	"go.uber.org/zap"
)

// NewSQLXOracleDB connects with the configured Oracle driver and verifies the connection.
func NewSQLXOracleDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
	)
	return db, nil
}
