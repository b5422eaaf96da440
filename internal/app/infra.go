package app

import (
	"context"
	"database/sql"
	"errors"

	"portfolio/internal/auth/credentials"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/logger"
	"portfolio/internal/redis"
	"portfolio/internal/session"

	_ "github.com/lib/pq"
)

type Infra struct {
	Directory    credentials.Directory
	SessionStore session.Store

	sqlDB *sql.DB
}

// setupInfra selects the backing services from config: a Postgres user
// directory when DATABASE_DSN is set (in-memory, seeded from OWNER_*
// otherwise) and a Redis session store when REDIS_ADDR is set.
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		if cfg.OwnerEmail != "" && cfg.OwnerPassword != "" {
			hash, err := credentials.HashPassword(cfg.OwnerPassword)
			if err != nil {
				return nil, err
			}
			if err := db.SeedOwner(ctx, sqlDB, cfg.OwnerEmail, cfg.OwnerName, hash); err != nil {
				return nil, err
			}
		}

		logger.Info("database ready", nil)

		infra.sqlDB = sqlDB
		infra.Directory = credentials.NewPostgresDirectory(sqlDB)
	} else {
		if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
			return nil, errors.New("no DATABASE_DSN: OWNER_EMAIL and OWNER_PASSWORD are required")
		}
		directory, err := credentials.SeedOwner(cfg.OwnerEmail, cfg.OwnerName, cfg.OwnerPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("in-memory user directory ready", map[string]any{
			"owner": cfg.OwnerEmail,
		})

		infra.Directory = directory
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("redis ready", nil)

		infra.SessionStore = session.NewRedisStore(redisClient.Client)
	} else {
		infra.SessionStore = session.NewMemoryStore()
	}

	return infra, nil
}

func (i *Infra) Close() error {
	if i.sqlDB != nil {
		return i.sqlDB.Close()
	}
	return nil
}
