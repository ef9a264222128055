package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/internal/jsonfile"
	"github.com/nikmy/menuseed/pkg/logger"
)

func TestFileStorage_SetGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	s := New(path, logger.NewStub())

	_, err := s.Get(ctx, "outlets", "down-south")
	require.ErrorIs(t, err, docstore.ErrNotFound)

	doc := docstore.Document{"name": "Down South", "tables": float64(12)}
	require.NoError(t, s.Set(ctx, "outlets", "down-south", doc))

	got, err := s.Get(ctx, "outlets", "down-south")
	require.NoError(t, err)
	require.Equal(t, doc, got)

	replacement := docstore.Document{"name": "Down South"}
	require.NoError(t, s.Set(ctx, "outlets", "down-south", replacement))

	got, err = s.Get(ctx, "outlets", "down-south")
	require.NoError(t, err)
	require.Equal(t, replacement, got)

	_, err = s.Get(ctx, "other", "down-south")
	require.ErrorIs(t, err, docstore.ErrNotFound)

	require.NoError(t, s.Close(ctx))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	err := New(path, logger.NewStub()).Set(context.Background(), "outlets", "x", docstore.Document{})
	require.ErrorIs(t, err, jsonfile.ErrMalformed)
}

func TestDialer(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	_, err := Dialer(Config{}, logger.NewStub())(ctx, credentials.Credentials{})
	require.Error(t, err)

	override := filepath.Join(dir, "override.json")
	s, err := Dialer(Config{Path: filepath.Join(dir, "cfg.json")}, logger.NewStub())(
		ctx, credentials.Credentials{"path": override},
	)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "outlets", "k", docstore.Document{"name": "K"}))
	require.True(t, jsonfile.Exists(override))
	require.False(t, jsonfile.Exists(filepath.Join(dir, "cfg.json")))
}
