package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar"
	"github.com/aretw0/cellar/internal/config"
	"github.com/aretw0/cellar/internal/platform"
	"github.com/aretw0/cellar/pkg/adapters/gemini"
	"github.com/aretw0/cellar/pkg/core"
)

// app carries state shared by all subcommands.
type app struct {
	configPath  string
	journalPath string
	adapter     string
	verbose     bool

	cfg    *config.Config
	logger *slog.Logger
	stdin  io.Reader

	// gateway replaces the configured Gemini gateway when set.
	gateway core.Gateway
}

func newApp() *app {
	return &app{stdin: os.Stdin}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cellar",
		Short: "A personal wine-tasting journal",
		Long: `Cellar keeps a journal of the wines you taste.
Notes are created from a label photo or a text search (identified by Gemini),
or entered by hand, and stored as JSON in a local directory or SQLite.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: $CELLAR_CONFIG or ./cellar.yaml)")
	flags.StringVar(&a.journalPath, "path", "", "Journal directory (overrides journal.path)")
	flags.StringVar(&a.adapter, "adapter", "", "Storage adapter: fs or sqlite (overrides journal.adapter)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newScanCmd(a),
		newResearchCmd(a),
		newAddCmd(a),
		newImportCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newWatchCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and installs the default logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	var root string
	if path == "" && os.Getenv("CELLAR_CONFIG") == "" {
		// A relative journal path is anchored at the nearest root, marked by
		// cellar.yaml or a bare .cellar directory.
		if wd, err := os.Getwd(); err == nil {
			if r, err := platform.FindRoot(wd); err == nil {
				root = r
				if fileExists(filepath.Join(r, config.DefaultFile)) {
					path = filepath.Join(r, config.DefaultFile)
				}
			}
		}
	}

	cfg, err := config.Read(path)
	if err != nil {
		return err
	}
	if root != "" && !filepath.IsAbs(cfg.Journal.Path) {
		cfg.Journal.Path = filepath.Join(root, cfg.Journal.Path)
	}
	if a.journalPath != "" {
		cfg.Journal.Path = a.journalPath
	}
	if a.adapter != "" {
		cfg.Journal.Adapter = a.adapter
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.Log.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)
	return nil
}

// open builds the journal service from the loaded configuration.
func (a *app) open(ctx context.Context) (*core.Service, error) {
	cfg := a.cfg
	opts := []cellar.Option{
		cellar.WithLogger(a.logger),
		cellar.WithAdapter(cfg.Journal.Adapter),
		cellar.WithKey(cfg.Journal.Key),
		cellar.WithLocale(cfg.Journal.Locale),
		cellar.WithReadOnly(cfg.Journal.ReadOnly),
		cellar.WithDevSafety(!cfg.Journal.Unsafe),
		cellar.WithGemini(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout,
		}),
	}
	if a.gateway != nil {
		opts = append(opts, cellar.WithGateway(a.gateway))
	}

	svc, err := cellar.New(ctx, cfg.Journal.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if loadErr := svc.Store().LoadError(); loadErr != nil {
		a.logger.Warn("saved journal could not be read; starting empty", "error", loadErr)
	}
	return svc, nil
}

// explain turns gateway failures into user-facing notices.
func explain(err error) error {
	switch {
	case errors.Is(err, core.ErrConfiguration):
		return fmt.Errorf("configuration error: set GEMINI_API_KEY (or gemini.api_key in cellar.yaml) and try again: %w", err)
	case errors.Is(err, core.ErrGateway):
		return fmt.Errorf("analysis failed, please try again later: %w", err)
	case errors.Is(err, core.ErrBusy):
		return fmt.Errorf("another analysis is still running: %w", err)
	}
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
