// Package app is the composition root; bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"modgoviya.io/modgoviya/internal/api/handlers"
	"modgoviya.io/modgoviya/internal/auth/facebook"
	"modgoviya.io/modgoviya/internal/auth/lockout"
	"modgoviya.io/modgoviya/internal/auth/oidc"
	"modgoviya.io/modgoviya/internal/auth/password"
	"modgoviya.io/modgoviya/internal/auth/token"
	"modgoviya.io/modgoviya/internal/config"
	"modgoviya.io/modgoviya/internal/infrastructure"
	"modgoviya.io/modgoviya/internal/notification"
	"modgoviya.io/modgoviya/internal/pkg/worker"
	"modgoviya.io/modgoviya/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Auth   *service.AuthService
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		CryptoPoolSize:  cfg.Worker.CryptoPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	issuer := token.NewIssuer(token.Config{
		SigningKey: []byte(cfg.Auth.TokenSecret),
		Issuer:     cfg.Auth.TokenIssuer,
		TTL:        cfg.Auth.TokenTTL,
	})

	var google service.GoogleVerifier
	if cfg.Google.Enabled {
		verifier, err := oidc.NewVerifier(oidc.Config{
			ClientID:             cfg.Google.ClientID,
			JWKSURL:              cfg.Google.JWKSURL,
			ClockTolerance:       cfg.Google.ClockTolerance,
			MaxTokenAge:          cfg.Google.MaxTokenAge,
			RequireVerifiedEmail: cfg.Google.RequireVerifiedEmail,
			AllowedDomains:       cfg.Google.AllowedDomains,
		})
		if err != nil {
			pools.Shutdown()
			db.Close()
			return nil, fmt.Errorf("init google verifier: %w", err)
		}
		google = verifier
	}

	var fb service.FacebookClient
	if cfg.Facebook.Enabled {
		fb = facebook.NewClient(facebook.Config{
			GraphURL:  cfg.Facebook.GraphURL,
			AppID:     cfg.Facebook.AppID,
			AppSecret: cfg.Facebook.AppSecret,
		})
	}

	auth := service.NewAuthService(db.EntClient, service.Options{
		Hasher: password.NewHasher(cfg.Auth.BcryptCost),
		Policy: lockout.Policy{
			MaxAttempts:  cfg.Auth.MaxLoginAttempts,
			LockDuration: cfg.Auth.LockDuration,
		},
		Issuer:               issuer,
		Google:               google,
		Facebook:             fb,
		Pools:                pools,
		ResetTokenTTL:        cfg.Auth.ResetTokenTTL,
		VerificationTokenTTL: cfg.Auth.VerificationTokenTTL,
	})

	server := handlers.NewServer(handlers.ServerDeps{
		Auth:   auth,
		Mailer: notification.LogMailer{},
		Pool:   db.Pool,
		Pools:  pools,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, issuer, auth),
		DB:     db,
		Pools:  pools,
		Auth:   auth,
	}, nil
}

// Shutdown releases application resources in reverse dependency order.
func (a *Application) Shutdown() {
	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
