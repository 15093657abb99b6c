package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/travellog/internal/config"
	"github.com/Makepad-fr/travellog/internal/logging"
	"github.com/Makepad-fr/travellog/internal/store/jsonstore"
	"github.com/Makepad-fr/travellog/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, a...)}
}

func failure(op string, err error) error {
	return &exitError{code: exitFailure, err: fmt.Errorf("%s: %w", op, err)}
}

type flags struct {
	configFile string
	dataFile   string
	theme      string
	user       string
	noColor    bool
	verbose    bool
}

// env is what every subcommand works against, filled in by PersistentPreRunE.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *jsonstore.Store
	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the travellog command tree writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	e := &env{out: stdout, errOut: stderr, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "travellog",
		Short:         "travellog - a trip checklist for the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, f)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return &exitError{code: exitUsage}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (default ./travellog.yaml or ~/.travellog/travellog.yaml)")
	pf.StringVar(&f.dataFile, "data", "", "checklist file (default ./"+jsonstore.DefaultFileName+")")
	pf.StringVar(&f.theme, "theme", "", "classic, neon or mono")
	pf.StringVar(&f.user, "user", "", "name shown on the travel log page")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colors")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(e),
		newAddCmd(e),
		newDoneCmd(e),
		newRemoveCmd(e),
		newRenameCmd(e),
		newExportCmd(e),
		newImportCmd(e),
		newTUICmd(e),
	)
	return root
}

func (e *env) setup(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return failure("config", err)
	}
	if f.dataFile != "" {
		cfg.DataFile = f.dataFile
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.user != "" {
		cfg.User = f.user
	}
	e.cfg = cfg

	ui.SetColorForcing(false, f.noColor)
	ui.SetTheme(cfg.Theme)

	build := logging.New
	if cmd.Name() == "tui" {
		build = logging.ForTUI
	}
	if e.logger, err = build(cfg.Log, f.verbose); err != nil {
		return failure("logger", err)
	}

	if e.store, err = jsonstore.New(cfg.DataFile); err != nil {
		return failure("store", err)
	}
	e.logger.Debug("ready", zap.String("data_file", e.store.Path()), zap.String("theme", cfg.Theme))
	return nil
}

// Execute runs the command tree and maps the outcome to an exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			ui.Fail(stderr, ee.Error())
		}
		return ee.code
	}
	// cobra's own argument and flag errors
	ui.Fail(stderr, err.Error())
	return exitUsage
}
