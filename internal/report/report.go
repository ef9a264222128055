// Package report forwards failed runs to Sentry.
package report

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/nikmy/menuseed/pkg/environment"
	"github.com/nikmy/menuseed/pkg/errors"
)

type Config struct {
	DSN          string        `yaml:"dsn"`
	Release      string        `yaml:"release"`
	FlushTimeout time.Duration `yaml:"flushTimeout"`
}

type Reporter interface {
	Capture(err error, tags map[string]string)
	Flush()
}

// New returns a reporter that does nothing when no DSN is configured.
func New(cfg Config, env environment.Env) (Reporter, error) {
	if cfg.DSN == "" {
		return nop{}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Release:     cfg.Release,
		Environment: env.String(),
		Transport: &sentry.HTTPSyncTransport{
			Timeout: 3 * time.Second,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "init sentry client")
	}

	timeout := cfg.FlushTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &sentryReporter{
		hub:     sentry.NewHub(client, sentry.NewScope()),
		timeout: timeout,
	}, nil
}

type sentryReporter struct {
	hub     *sentry.Hub
	timeout time.Duration
}

func (r *sentryReporter) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

func (r *sentryReporter) Flush() {
	r.hub.Flush(r.timeout)
}

type nop struct{}

func (nop) Capture(error, map[string]string) {}
func (nop) Flush()                          {}
