// Package infrastructure provides database and connection pool setup.
//
// Ent runs over a *sql.DB bridged from the shared pgxpool, so the ORM and
// any direct pgx usage draw from one connection pool.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	entmigrate "modgoviya.io/modgoviya/ent/migrate"
	"modgoviya.io/modgoviya/internal/config"
	"modgoviya.io/modgoviya/internal/pkg/logger"
)

// DatabaseClients contains all database-related clients backed by a single
// shared connection pool.
type DatabaseClients struct {
	// Pool is the shared pgx connection pool.
	Pool *pgxpool.Pool

	// DB is the *sql.DB wrapper around Pool for the Ent ORM, created via
	// stdlib.OpenDBFromPool so Ent reuses the pooled connections.
	DB *sql.DB

	// EntClient is the Ent ORM client backed by the shared pool.
	EntClient *ent.Client
}

// NewDatabaseClients creates database clients with a shared connection pool.
func NewDatabaseClients(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseClients, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// Timestamps compare against lock_until and token expiries; keep every
	// session in UTC.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET timezone = 'UTC'")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))

	logger.Info("Database connection pool created",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)

	return &DatabaseClients{
		Pool:      pool,
		DB:        db,
		EntClient: entClient,
	}, nil
}

// AutoMigrate runs Ent schema migration. Development convenience only;
// production uses managed migrations.
func (c *DatabaseClients) AutoMigrate(ctx context.Context) error {
	logger.Info("Running Ent auto-migration...")
	if err := c.EntClient.Schema.Create(ctx,
		entmigrate.WithDropIndex(true),
		entmigrate.WithDropColumn(true),
	); err != nil {
		return fmt.Errorf("ent auto-migrate: %w", err)
	}
	logger.Info("Ent auto-migration completed")
	return nil
}

// Close releases all database resources.
func (c *DatabaseClients) Close() {
	if c.EntClient != nil {
		if err := c.EntClient.Close(); err != nil {
			logger.Warn("Ent client close failed", zap.Error(err))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
