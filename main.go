// Package main provides termspin, a CLI that shows off terminal spinners and
// runs commands under one.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termspin/internal/config"
	"termspin/internal/logging"
	"termspin/pkg/spinner"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// exitCodeError carries a child process exit code out of RunE.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	glyphFile  string

	cfg     *config.Config
	log     *zap.Logger
	catalog *spinner.Catalog
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "termspin",
		Short:         "Terminal spinners for long-running work",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the configuration file (defaults to "+config.DefaultConfigPath+" when present)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level for output (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.glyphFile, "glyphs", "", "YAML or TOML file of extra glyph sets")

	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newDemoCommand(a))
	cmd.AddCommand(newExecCommand(a))
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the
// logger and glyph catalog.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.glyphFile != "" {
		cfg.GlyphFile = a.glyphFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.GlyphFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.catalog = catalog
	log.Debug("configuration loaded",
		zap.String("spinner", cfg.Spinner.Name),
		zap.String("glyph_file", cfg.GlyphFile),
		zap.Int("glyph_sets", len(catalog.Names())))
	return nil
}

func loadCatalog(path string) (*spinner.Catalog, error) {
	if path == "" {
		return spinner.BuiltinCatalog()
	}
	return spinner.LoadCatalog(path)
}

// spinnerConfig turns the loaded configuration into a spinner configuration
// writing to w.
func (a *app) spinnerConfig(w io.Writer) (spinner.Config, error) {
	sc := a.cfg.Spinner

	def, err := a.catalog.Lookup(sc.Name)
	if err != nil {
		return spinner.Config{}, err
	}
	if sc.IntervalMS > 0 {
		def = spinner.NewDefinition(def.Frames, sc.IntervalMS)
	}

	return spinner.Config{
		Definition: def,
		Text:       sc.Text,
		Color:      sc.Color,
		Highlight:  sc.Highlight,
		Attrs:      sc.Attrs,
		Side:       spinner.Side(sc.Side),
		Reversal:   sc.Reversal,
		Timer:      sc.Timer,
		Ellipsis:   sc.Ellipsis,
		Writer:     w,
		Logger:     a.log,
		Catalog:    a.catalog,
	}, nil
}
