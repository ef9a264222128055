package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/menuseed/internal/docstore/dynamo"
	"github.com/nikmy/menuseed/internal/docstore/filestore"
	"github.com/nikmy/menuseed/internal/docstore/mongo"
	"github.com/nikmy/menuseed/internal/docstore/postgres"
	"github.com/nikmy/menuseed/internal/docstore/redis"
	"github.com/nikmy/menuseed/internal/report"
	"github.com/nikmy/menuseed/internal/upload"
	"github.com/nikmy/menuseed/pkg/environment"
	"github.com/nikmy/menuseed/pkg/errors"
)

const (
	defaultConfigFile      = "config.yaml"
	defaultCredentialsFile = "serviceAccountKey.json"
	defaultMenuFile        = "menu.json"
	envPrefix              = "MENUSEED_"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`

	Paths struct {
		Credentials string `yaml:"credentials"`
		Menu        string `yaml:"menu"`
	} `yaml:"paths"`

	Store StoreConfig `yaml:"store"`

	Mongo    mongo.Config     `yaml:"mongo"`
	Dynamo   dynamo.Config    `yaml:"dynamo"`
	Redis    redis.Config     `yaml:"redis"`
	Postgres postgres.Config  `yaml:"postgres"`
	File     filestore.Config `yaml:"file"`

	Sentry report.Config `yaml:"sentry"`
}

type StoreConfig struct {
	Backend    string        `yaml:"backend"`
	Collection string        `yaml:"collection"`
	OnConflict string        `yaml:"onConflict"`
	Timeout    time.Duration `yaml:"timeout"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Environment = environment.Development
	cfg.Paths.Credentials = defaultCredentialsFile
	cfg.Paths.Menu = defaultMenuFile
	cfg.Store = StoreConfig{
		Backend:    backendMongo,
		Collection: upload.DefaultCollection,
		Timeout:    30 * time.Second,
	}
	cfg.Mongo.URL = "mongodb://localhost:27017"
	cfg.Mongo.Database = "menus"
	return cfg
}

// flags holds command line values; empty strings are left unset.
type flags struct {
	config      string
	env         string
	credentials string
	menu        string
	backend     string
	collection  string
	onConflict  string
}

// baseDir is the directory relative paths are resolved against:
// the one holding the executable.
func baseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.WrapFail(err, "locate executable")
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func resolve(dir string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func loadConfig(dir string, f flags) (*Config, error) {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WrapFail(err, "load .env")
	}

	cfg := defaultConfig()

	path := f.config
	if path == "" {
		path = defaultConfigFile
	}
	path = resolve(dir, path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse %s", path)
		}
	case errors.Is(err, os.ErrNotExist) && f.config == "":
		// running on defaults
	default:
		return nil, errors.WrapFailf(err, "read %s", path)
	}

	applyEnv(&cfg)
	applyFlags(&cfg, f)

	cfg.Paths.Credentials = resolve(dir, cfg.Paths.Credentials)
	cfg.Paths.Menu = resolve(dir, cfg.Paths.Menu)
	cfg.File.Path = resolve(dir, cfg.File.Path)

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	var env string
	set(envPrefix+"ENV", &env)
	if env != "" {
		cfg.Environment = environment.FromString(env)
	}

	set(envPrefix+"CREDENTIALS", &cfg.Paths.Credentials)
	set(envPrefix+"MENU", &cfg.Paths.Menu)
	set(envPrefix+"BACKEND", &cfg.Store.Backend)
	set(envPrefix+"COLLECTION", &cfg.Store.Collection)
	set("SENTRY_DSN", &cfg.Sentry.DSN)
}

func applyFlags(cfg *Config, f flags) {
	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}
	if f.credentials != "" {
		cfg.Paths.Credentials = f.credentials
	}
	if f.menu != "" {
		cfg.Paths.Menu = f.menu
	}
	if f.backend != "" {
		cfg.Store.Backend = f.backend
	}
	if f.collection != "" {
		cfg.Store.Collection = f.collection
	}
	if f.onConflict != "" {
		cfg.Store.OnConflict = f.onConflict
	}
}

func (c *Config) uploadOptions() (upload.Options, error) {
	policy, err := upload.ParseConflictPolicy(c.Store.OnConflict)
	if err != nil {
		return upload.Options{}, err
	}

	return upload.Options{
		CredentialsPath: c.Paths.Credentials,
		MenuPath:        c.Paths.Menu,
		Collection:      c.Store.Collection,
		OnConflict:      policy,
		Timeout:         c.Store.Timeout,
	}, nil
}
