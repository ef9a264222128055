package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"

	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/internal/report"
	"github.com/nikmy/menuseed/internal/upload"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

func main() {
	code, err := execute(os.Args[1:])
	if err != nil {
		stdlog.Println(err)
		os.Exit(1)
	}
	os.Exit(code)
}

// execute runs the command line and returns the process exit code.
// A non-nil error means the upload was never attempted.
func execute(args []string) (int, error) {
	var (
		f    flags
		code int
	)

	cmd := &cobra.Command{
		Use:   "menuseed",
		Short: "Upload an outlet menu to the document store",
		Long: `menuseed reads a menu JSON file and stores it as a single document
keyed by the slug of its "name" field. Paths are relative to the
directory holding the executable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := baseDir()
			if err != nil {
				return err
			}

			code, err = run(cmd.Context(), dir, f)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "config file (default "+defaultConfigFile+")")
	fl.StringVar(&f.env, "env", "", "environment (dev, prod)")
	fl.StringVar(&f.credentials, "credentials", "", "credentials JSON file")
	fl.StringVarP(&f.menu, "menu", "m", "", "menu JSON file")
	fl.StringVarP(&f.backend, "backend", "b", "", "store backend (mongo, dynamodb, redis, postgres, file)")
	fl.StringVar(&f.collection, "collection", "", "target collection (default "+upload.DefaultCollection+")")
	fl.StringVar(&f.onConflict, "on-conflict", "", "what to do when the outlet id is taken (overwrite, reject)")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return code, err
}

func run(ctx context.Context, dir string, f flags) (int, error) {
	cfg, err := loadConfig(dir, f)
	if err != nil {
		return 1, errors.WrapFail(err, "load config")
	}

	opts, err := cfg.uploadOptions()
	if err != nil {
		return 1, errors.WrapFail(err, "build upload options")
	}

	base, err := logger.New(cfg.Environment)
	if err != nil {
		return 1, err
	}

	runID := uuid.Must(uuid.NewV4()).String()
	log := base.With("menuseed").With(runID)

	reporter, err := report.New(cfg.Sentry, cfg.Environment)
	if err != nil {
		return 1, err
	}
	defer reporter.Flush()

	dial, err := dialer(cfg, log)
	if err != nil {
		return 1, err
	}

	session := docstore.NewSession(log, cfg.Store.Backend, dial)
	defer func() {
		err := session.Close(context.Background())
		if err != nil {
			log.Warn(err)
		}
	}()

	log.Infof("uploading menu with %s backend", session.Backend())
	res := upload.New(log, session).Run(ctx, opts)

	if !res.OK() {
		reporter.Capture(res.Err, map[string]string{
			"run_id":  runID,
			"outcome": res.Outcome.String(),
			"backend": session.Backend(),
			"outlet":  res.OutletID,
		})
		log.Errorf("finished: %s", res.Outcome)
	} else {
		log.Infof("finished: %s %s/%s", res.Outcome, res.Collection, res.OutletID)
	}

	return res.ExitCode(), nil
}
