// Package docstore describes a document database addressed by
// collection name and string key, and the session that owns it.
package docstore

import (
	"context"

	"github.com/nikmy/menuseed/pkg/errors"
)

var ErrNotFound = errors.Error("document not found")

type Document = map[string]any

type Store interface {
	// Set replaces the document stored under key in collection,
	// creating it when absent.
	Set(ctx context.Context, collection string, key string, doc Document) error

	// Get returns the document stored under key or ErrNotFound.
	Get(ctx context.Context, collection string, key string) (Document, error)

	Close(ctx context.Context) error
}
