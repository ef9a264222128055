package main

import (
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/internal/docstore/dynamo"
	"github.com/nikmy/menuseed/internal/docstore/filestore"
	"github.com/nikmy/menuseed/internal/docstore/mongo"
	"github.com/nikmy/menuseed/internal/docstore/postgres"
	"github.com/nikmy/menuseed/internal/docstore/redis"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

const (
	backendMongo    = "mongo"
	backendDynamo   = "dynamodb"
	backendRedis    = "redis"
	backendPostgres = "postgres"
	backendFile     = "file"
)

func dialer(cfg *Config, log logger.Logger) (docstore.Dialer, error) {
	switch cfg.Store.Backend {
	case backendMongo:
		return mongo.Dialer(cfg.Mongo, log), nil
	case backendDynamo:
		return dynamo.Dialer(cfg.Dynamo, log), nil
	case backendRedis:
		return redis.Dialer(cfg.Redis, log), nil
	case backendPostgres:
		return postgres.Dialer(cfg.Postgres, log), nil
	case backendFile:
		return filestore.Dialer(cfg.File, log), nil
	default:
		return nil, errors.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
