// Package postgres keeps each collection in its own table of
// (id text primary key, body jsonb) rows.
package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

type Config struct {
	DSN         string `yaml:"dsn"`
	Schema      string `yaml:"schema"`
	TablePrefix string `yaml:"tablePrefix"`
}

type secrets struct {
	DSN string `json:"dsn"`
}

func Dialer(cfg Config, log logger.Logger) docstore.Dialer {
	return func(ctx context.Context, creds credentials.Credentials) (docstore.Store, error) {
		var s secrets
		err := creds.Decode(&s)
		if err != nil {
			return nil, err
		}

		dsn := cfg.DSN
		if s.DSN != "" {
			dsn = s.DSN
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, errors.WrapFail(err, "create postgres pool")
		}

		err = pool.Ping(ctx)
		if err != nil {
			pool.Close()
			return nil, errors.WrapFail(err, "ping postgres")
		}

		return &pgStore{
			pool:   pool,
			schema: cfg.Schema,
			prefix: cfg.TablePrefix,
			log:    log.With("postgres_store"),
		}, nil
	}
}

type pgStore struct {
	pool   *pgxpool.Pool
	schema string
	prefix string
	log    logger.Logger

	mu      sync.Mutex
	created map[string]bool
}

func tableName(schema string, prefix string, collection string) string {
	if schema == "" {
		return pgx.Identifier{prefix + collection}.Sanitize()
	}
	return pgx.Identifier{schema, prefix + collection}.Sanitize()
}

func createQuery(table string) string {
	return fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
	id         text PRIMARY KEY,
	body       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`, table)
}

func upsertQuery(table string) string {
	return fmt.Sprintf(
		`INSERT INTO %s (id, body) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`, table)
}

func selectQuery(table string) string {
	return fmt.Sprintf(`SELECT body FROM %s WHERE id = $1`, table)
}

func (p *pgStore) ensureTable(ctx context.Context, table string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.created[table] {
		return nil
	}

	_, err := p.pool.Exec(ctx, createQuery(table))
	if err != nil {
		return errors.WrapFailf(err, "create table %s", table)
	}

	if p.created == nil {
		p.created = make(map[string]bool)
	}
	p.created[table] = true
	return nil
}

func (p *pgStore) Set(ctx context.Context, collection string, key string, doc docstore.Document) error {
	table := tableName(p.schema, p.prefix, collection)

	err := p.ensureTable(ctx, table)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx, upsertQuery(table), key, doc)
	if err != nil {
		return errors.WrapFailf(err, "upsert %s/%s", collection, key)
	}

	p.log.Debugf("upserted %s/%s", collection, key)
	return nil
}

func (p *pgStore) Get(ctx context.Context, collection string, key string) (docstore.Document, error) {
	table := tableName(p.schema, p.prefix, collection)

	err := p.ensureTable(ctx, table)
	if err != nil {
		return nil, err
	}

	var doc docstore.Document
	err = p.pool.QueryRow(ctx, selectQuery(table), key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "select %s/%s", collection, key)
	}

	return doc, nil
}

func (p *pgStore) Close(context.Context) error {
	p.pool.Close()
	return nil
}
