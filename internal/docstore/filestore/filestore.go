// Package filestore keeps collections in a single JSON file on local
// disk. It backs dry runs and local development.
package filestore

import (
	"context"
	"sync"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/internal/jsonfile"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

type Config struct {
	Path string `yaml:"path"`
}

type data map[string]map[string]docstore.Document

// Dialer builds a docstore.Dialer. A "path" credential overrides cfg.Path.
func Dialer(cfg Config, log logger.Logger) docstore.Dialer {
	return func(_ context.Context, creds credentials.Credentials) (docstore.Store, error) {
		path := cfg.Path
		if p := creds.String("path"); p != "" {
			path = p
		}
		if path == "" {
			return nil, errors.Error("no file path configured")
		}
		return New(path, log), nil
	}
}

func New(fileName string, log logger.Logger) *fileStorage {
	return &fileStorage{
		fileName: fileName,
		log:      log.With("file_store"),
	}
}

type fileStorage struct {
	fileName string
	log      logger.Logger

	mu sync.Mutex
}

func (s *fileStorage) Set(_ context.Context, collection string, key string, doc docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.getData()
	if err != nil {
		return err
	}

	if all[collection] == nil {
		all[collection] = make(map[string]docstore.Document)
	}
	all[collection][key] = doc

	s.log.Debugf("saving %s/%s to %s", collection, key, s.fileName)
	return errors.WrapFail(jsonfile.Write(s.fileName, all), "save data")
}

func (s *fileStorage) Get(_ context.Context, collection string, key string) (docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.getData()
	if err != nil {
		return nil, err
	}

	doc, ok := all[collection][key]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return doc, nil
}

func (s *fileStorage) Close(context.Context) error {
	return nil
}

func (s *fileStorage) getData() (data, error) {
	var all data

	err := jsonfile.Read(s.fileName, &all)
	if errors.Is(err, jsonfile.ErrNotExist) {
		return make(data), nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "read data")
	}

	if all == nil {
		all = make(data)
	}
	return all, nil
}
