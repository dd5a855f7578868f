// Package main seeds the initial admin account.
//
// Idempotent: an existing admin email is left untouched. The admin password
// comes from SEED_ADMIN_PASSWORD; there is no insecure default.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/password"
	"modgoviya.io/modgoviya/internal/config"
	"modgoviya.io/modgoviya/internal/infrastructure"
	"modgoviya.io/modgoviya/internal/pkg/logger"
	"modgoviya.io/modgoviya/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return seedAdmin(ctx, db.EntClient, cfg)
}

func seedAdmin(ctx context.Context, client *ent.Client, cfg *config.Config) error {
	email := service.NormalizeEmail(os.Getenv("SEED_ADMIN_EMAIL"))
	if email == "" {
		email = "admin@modgoviya.lk"
	}

	exists, err := client.User.Query().Where(user.EmailEQ(email)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if exists {
		logger.Info("Admin account already present, nothing to do",
			zap.String("email", email),
		)
		return nil
	}

	plaintext := os.Getenv("SEED_ADMIN_PASSWORD")
	if plaintext == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required to create the admin account")
	}
	if err := password.Validate(plaintext); err != nil {
		return fmt.Errorf("admin password rejected: %w", err)
	}

	hash, err := password.NewHasher(cfg.Auth.BcryptCost).Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate admin id: %w", err)
	}

	u, err := client.User.Create().
		SetID(id.String()).
		SetEmail(email).
		SetFullName("Platform Administrator").
		SetPasswordHash(hash).
		SetAuthProvider(user.AuthProviderLocal).
		SetRole(user.RoleAdmin).
		SetIsVerified(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	logger.Info("Admin account created",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)
	return nil
}
