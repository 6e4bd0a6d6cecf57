package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/config"
	"github.com/gemveer/inventory/internal/logger"
	"github.com/gemveer/inventory/internal/store"
	"github.com/gemveer/inventory/internal/store/schema"
)

// seed bootstraps the first admin account. There is no default password and
// no auto-repair on login; operators run this once per environment.
var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	username   = flag.String("username", "admin", "Admin display name")
	email      = flag.String("email", "", "Admin login email (required)")
	password   = flag.String("password", "", "Admin login password (required)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSeedConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "inventory-seed",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if *email == "" || *password == "" {
		logger.Fatal("Both -email and -password are required")
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	existing, err := dataStore.GetCredentialByEmail(ctx, *email)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to check existing credential", zap.Error(err))
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Admin already exists, nothing to do", zap.String("email", *email))
		return
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to hash password", zap.Error(err))
	}

	admin, err := dataStore.CreateAdmin(ctx, schema.Admin{
		Username: *username,
		Email:    *email,
	}, hash)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create admin", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Admin created",
		zap.String("id", admin.ID.String()),
		zap.String("email", admin.Email))
}
