// Package redis stores every document as a JSON string under
// <prefix><collection>:<key>.
package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

type Config struct {
	Addr      string `yaml:"addr"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"keyPrefix"`
}

type secrets struct {
	Addr     string `json:"addr"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       *int   `json:"db"`
}

func Dialer(cfg Config, log logger.Logger) docstore.Dialer {
	return func(ctx context.Context, creds credentials.Credentials) (docstore.Store, error) {
		var s secrets
		err := creds.Decode(&s)
		if err != nil {
			return nil, err
		}

		client := redis.NewClient(clientOptions(cfg, s))
		if _, err := client.Ping(ctx).Result(); err != nil {
			_ = client.Close()
			return nil, errors.WrapFail(err, "ping redis")
		}

		return &redisStore{
			client: client,
			prefix: cfg.KeyPrefix,
			log:    log.With("redis_store"),
		}, nil
	}
}

func clientOptions(cfg Config, s secrets) *redis.Options {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Username: s.Username,
		Password: s.Password,
	}
	if s.Addr != "" {
		opts.Addr = s.Addr
	}
	if s.DB != nil {
		opts.DB = *s.DB
	}
	return opts
}

func documentKey(prefix string, collection string, key string) string {
	return prefix + collection + ":" + key
}

type redisStore struct {
	client *redis.Client
	prefix string
	log    logger.Logger
}

func (r *redisStore) Set(ctx context.Context, collection string, key string, doc docstore.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return errors.WrapFail(err, "marshal document")
	}

	k := documentKey(r.prefix, collection, key)
	err = r.client.Set(ctx, k, payload, 0).Err()
	if err != nil {
		return errors.WrapFailf(err, "set %s", k)
	}

	r.log.Debugf("set %s", k)
	return nil
}

func (r *redisStore) Get(ctx context.Context, collection string, key string) (docstore.Document, error) {
	k := documentKey(r.prefix, collection, key)

	payload, err := r.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "get %s", k)
	}

	var doc docstore.Document
	err = json.Unmarshal(payload, &doc)
	if err != nil {
		return nil, errors.WrapFailf(err, "unmarshal %s", k)
	}
	return doc, nil
}

func (r *redisStore) Close(context.Context) error {
	return errors.WrapFail(r.client.Close(), "close redis client")
}
