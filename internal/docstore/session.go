package docstore

import (
	"context"
	"sync"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

// Dialer connects to a concrete backend.
type Dialer func(ctx context.Context, creds credentials.Credentials) (Store, error)

func NewSession(log logger.Logger, backend string, dial Dialer) *Session {
	return &Session{
		backend: backend,
		dial:    dial,
		log:     log.With("session"),
	}
}

// Session dials its backend at most once. It is created by the caller
// and passed to whoever needs the store.
type Session struct {
	backend string
	dial    Dialer
	log     logger.Logger

	mu    sync.Mutex
	store Store
}

// Open returns the session's store, dialing on the first successful call.
// A failed dial leaves the session closed so a later call may retry.
func (s *Session) Open(ctx context.Context, creds credentials.Credentials) (Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		s.log.Debugf("reusing %s session", s.backend)
		return s.store, nil
	}

	store, err := s.dial(ctx, creds)
	if err != nil {
		return nil, errors.WrapFailf(err, "open %s session", s.backend)
	}

	s.log.Infof("opened %s session", s.backend)
	s.store = store
	return store, nil
}

func (s *Session) Backend() string {
	return s.backend
}

func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil
	}

	err := s.store.Close(ctx)
	s.store = nil
	return errors.WrapFailf(err, "close %s session", s.backend)
}
