// Package mongo stores documents in MongoDB, one collection per
// docstore collection, keyed by _id.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
	"github.com/nikmy/menuseed/pkg/mongotools"
)

func Dialer(cfg Config, log logger.Logger) docstore.Dialer {
	return func(ctx context.Context, creds credentials.Credentials) (docstore.Store, error) {
		var s secrets
		err := creds.Decode(&s)
		if err != nil {
			return nil, err
		}
		return newMongo(ctx, cfg, s, log)
	}
}

func clientOptions(cfg Config, s secrets) *options.ClientOptions {
	url := cfg.URL
	if s.URL != "" {
		url = s.URL
	}

	opts := options.Client().ApplyURI(url)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}
	if s.Username != "" {
		opts.SetAuth(options.Credential{
			AuthSource: s.AuthSource,
			Username:   s.Username,
			Password:   s.Password,
		})
	}

	return opts
}

func newMongo(ctx context.Context, cfg Config, s secrets, log logger.Logger) (*mongoStore, error) {
	database := cfg.Database
	if s.Database != "" {
		database = s.Database
	}
	if database == "" {
		return nil, errors.Error("no mongo database configured")
	}

	client, err := mongo.Connect(ctx, clientOptions(cfg, s))
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	return &mongoStore{
		db:  client.Database(database),
		log: log.With("mongo_store"),
	}, nil
}

type mongoStore struct {
	db  *mongo.Database
	log logger.Logger
}

func (m *mongoStore) Set(ctx context.Context, collection string, key string, doc docstore.Document) error {
	_, err := m.db.Collection(collection).ReplaceOne(
		ctx,
		mongotools.FilterByID(key),
		mongotools.WithID(doc, key),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.WrapFailf(err, "replace %s/%s", collection, key)
	}

	m.log.Debugf("replaced %s/%s", collection, key)
	return nil
}

func (m *mongoStore) Get(ctx context.Context, collection string, key string) (docstore.Document, error) {
	result := m.db.Collection(collection).FindOne(ctx, mongotools.FilterByID(key))
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, docstore.ErrNotFound
	}
	if result.Err() != nil {
		return nil, errors.WrapFailf(result.Err(), "find %s/%s", collection, key)
	}

	var raw bson.M
	err := result.Decode(&raw)
	if err != nil {
		return nil, errors.WrapFail(err, "decode document")
	}

	return mongotools.Plain(raw), nil
}

func (m *mongoStore) Close(ctx context.Context) error {
	err := m.db.Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
