// Package cli provides the cobra command line for zuc.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myanmartools/zuc-cli/internal/bootstrap"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	configDir string
	dataDir   string
	verbose   bool
)

// Backend is what commands need from the composition root.
type Backend interface {
	Converter(provenance domain.Provenance) driving.Converter
	Settings() driving.SettingsService
	RuleTables() driven.RuleTableStore
	LoadedRules() []domain.RuleName
	RecentEvents() driven.EventHistory
	EventLog(n int) ([]domain.AnalyticsEvent, error)
	LogPath() string
	NewSession(ctx context.Context, opts bootstrap.SessionOptions) (*bootstrap.Session, error)
	Close() error
}

// openBackend builds the backend once flags are parsed.
var openBackend = func(opts bootstrap.Options) (Backend, error) {
	b, err := bootstrap.New(opts)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// backend is opened on first use by a command and closed after it runs.
var backend Backend

var rootCmd = &cobra.Command{
	Use:   "zuc",
	Short: "Zawgyi/Unicode converter for Myanmar text",
	Long: `zuc converts Myanmar text between the Zawgyi and Unicode encodings.

Run 'zuc tui' for the interactive converter, or use 'zuc convert' and
'zuc detect' in scripts and pipes.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeBackend()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.zuc)")
	flags.StringVar(&dataDir, "data-dir", "", "data directory (default ~/.zuc/data)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command and the app.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Warn("closing backend: %v", err)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func requireBackend() (Backend, error) {
	if backend != nil {
		return backend, nil
	}
	b, err := openBackend(bootstrap.Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Version:   version,
	})
	if err != nil {
		return nil, fmt.Errorf("initialising: %w", err)
	}
	backend = b
	return b, nil
}

func closeBackend() error {
	if backend == nil {
		return nil
	}
	err := backend.Close()
	backend = nil
	return err
}
