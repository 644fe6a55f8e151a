package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	dbschema "rangeiq/database"
	"rangeiq/internal/config"
	"rangeiq/internal/database"
	"rangeiq/internal/logger"

	"go.uber.org/zap"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, dbschema.Migrations())
	if err != nil {
		l.Fatal("Failed to load migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			l.Fatal("Migration failed", zap.Strings("applied", applied), zap.Error(err))
		}
		if len(applied) == 0 {
			l.Info("Schema is up to date")
			return
		}
		l.Info("Migrations applied", zap.Strings("versions", applied))
	case "down":
		version, err := migrator.Down(ctx)
		if err != nil {
			l.Fatal("Rollback failed", zap.Error(err))
		}
		if version == "" {
			l.Info("Nothing to roll back")
			return
		}
		l.Info("Migration reverted", zap.String("version", version))
	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		if version == "" {
			version = "none"
		}
		fmt.Println(version)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
