// Package bootstrap assembles the adapters and services behind the
// command line from the user's configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/analytics"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/config/file"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/detector/heuristic"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/platform/terminal"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/translit/rules"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/translit/rules/tables"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
	"github.com/myanmartools/zuc-cli/internal/core/services"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

const (
	eventLogFile = "events.jsonl"
	logFile      = "zuc.log"
	rulesDir     = "rules"

	configReloadDelay = 100 * time.Millisecond
)

// Options selects where configuration and data live.
// Empty directories default to ~/.zuc and ~/.zuc/data.
type Options struct {
	ConfigDir string
	DataDir   string
	Version   string
}

// Backend owns the long-lived adapters: the config store, the database,
// analytics sinks and the conversion engines.
type Backend struct {
	opts     Options
	config   *file.ConfigStore
	settings *services.SettingsService
	store    *sqlite.Store

	detector driven.Detector
	engine   *rules.Engine
	rules    driven.RuleTableStore
	sink     driven.AnalyticsSink
	recent   *analytics.Ring

	closers []func() error
}

// New opens the configuration and database and builds the engines.
func New(opts Options) (*Backend, error) {
	dirs, err := resolveDirs(opts)
	if err != nil {
		return nil, err
	}
	opts = dirs

	cfgStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsSvc := services.NewSettingsService(cfgStore, opts.Version)

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := logger.SetLevel(settings.LogLevel); err != nil {
		logger.Warn("ignoring log level %q: %v", settings.LogLevel, err)
	}

	b := &Backend{
		opts:     opts,
		config:   cfgStore,
		settings: settingsSvc,
		detector: heuristic.New(),
		recent:   analytics.NewRing(analytics.DefaultRingSize),
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	b.store = store
	b.closers = append(b.closers, store.Close)

	if b.engine, b.rules, err = newEngine(settings.Rules, opts.ConfigDir); err != nil {
		_ = b.Close()
		return nil, err
	}
	if b.sink, err = b.newSink(settings.Analytics); err != nil {
		_ = b.Close()
		return nil, err
	}

	logger.Debug("backend ready: config=%s data=%s", cfgStore.Path(), opts.DataDir)
	return b, nil
}

func resolveDirs(opts Options) (Options, error) {
	if opts.ConfigDir != "" && opts.DataDir != "" {
		return opts, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return opts, fmt.Errorf("getting home directory: %w", err)
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = filepath.Join(home, ".zuc")
	}
	if opts.DataDir == "" {
		opts.DataDir = filepath.Join(home, ".zuc", "data")
	}
	return opts, nil
}

func newEngine(cfg domain.RulesSettings, configDir string) (*rules.Engine, driven.RuleTableStore, error) {
	if !cfg.Custom {
		engine, err := rules.New()
		if err != nil {
			return nil, nil, fmt.Errorf("load built-in rules: %w", err)
		}
		return engine, tables.Embedded{}, nil
	}

	ruleStore, err := file.NewRuleTableStore(filepath.Join(configDir, rulesDir))
	if err != nil {
		return nil, nil, fmt.Errorf("open rule tables: %w", err)
	}
	engine, err := rules.NewFromStore(ruleStore)
	if err != nil {
		return nil, nil, fmt.Errorf("load custom rules: %w", err)
	}
	return engine, ruleStore, nil
}

func (b *Backend) newSink(cfg domain.AnalyticsSettings) (driven.AnalyticsSink, error) {
	if !cfg.Enabled {
		return analytics.NopSink{}, nil
	}

	f, err := os.OpenFile(filepath.Join(b.opts.DataDir, eventLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	jsonl := analytics.NewJSONLSink(f, analytics.Options{})
	jsonl.SetRing(b.recent)
	b.closers = append(b.closers, f.Close, jsonl.Close)

	if !cfg.Persist {
		return jsonl, nil
	}

	stored := analytics.NewStoreSink(b.store.EventStore(), analytics.Options{SessionID: jsonl.SessionID()})
	b.closers = append(b.closers, stored.Close)
	return analytics.NewMultiSink(jsonl, stored), nil
}

// Converter returns a one-shot converter reporting conversions with
// the given provenance.
func (b *Backend) Converter(provenance domain.Provenance) driving.Converter {
	return services.NewConverter(b.detector, b.engine, b.sink, provenance)
}

// RuleTables returns the store the active rule tables were loaded from.
func (b *Backend) RuleTables() driven.RuleTableStore {
	return b.rules
}

// LoadedRules lists the rule tables the engine compiled.
func (b *Backend) LoadedRules() []domain.RuleName {
	return b.engine.Rules()
}

// RecentEvents returns the events tracked since the backend opened.
func (b *Backend) RecentEvents() driven.EventHistory {
	return b.recent
}

// EventLog reads up to n of the newest events from the event log file.
// A torn final line is logged and skipped.
func (b *Backend) EventLog(n int) ([]domain.AnalyticsEvent, error) {
	f, err := os.Open(filepath.Join(b.opts.DataDir, eventLogFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	events, err := analytics.DecodeJSONL(f)
	if err != nil {
		logger.Warn("event log %s: %v", f.Name(), err)
	}
	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events, nil
}

// Settings returns the settings service.
func (b *Backend) Settings() driving.SettingsService {
	return b.settings
}

// LogPath returns the log file used while the TUI owns the terminal.
func (b *Backend) LogPath() string {
	return filepath.Join(b.opts.DataDir, logFile)
}

// Close flushes analytics and releases files and the database.
// Resources are released in reverse order of acquisition.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// SessionOptions carries what the terminal hands to the interactive UI.
type SessionOptions struct {
	// Text is handed off to the converter as if shared by another app.
	Text string

	// Links are routed as dynamic links once the shell is ready.
	Links []string
}

// Session is one interactive run: a live pipeline, the shell driving
// it and a config watcher.
type Session struct {
	Ports    *tui.Ports
	pipeline *services.Pipeline
	watcher  *file.Watcher
}

// NewSession builds the pipeline and shell for an interactive run.
// The pipeline stops when ctx is done or Close is called.
func (b *Backend) NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	settings, err := b.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	pipeline := services.NewPipeline(ctx, b.detector, b.engine, b.sink, services.PipelineConfig{
		DebounceInterval: settings.Pipeline.DebounceInterval,
	})

	bridge := tui.NewBridge()
	platform := terminal.New()
	share := terminal.NewClipboardShare()
	rate := terminal.NewRatePrompter(b.store.CounterStore(), b.opts.Version)
	rate.SetNotifier(bridge)

	shell, err := services.NewShell(services.ShellPorts{
		Platform:      platform,
		Modals:        bridge,
		Menu:          bridge,
		Notifier:      bridge,
		Flags:         b.store.FlagStore(),
		Analytics:     b.sink,
		ThemeDetector: terminal.NewEnvThemeDetector(),
		ColorScheme:   terminal.NewBackgroundQuery(),
		ShareSheet:    share,
		RatePrompter:  rate,
		Intents:       terminal.NewTextIntent(opts.Text),
		Links:         terminal.NewStaticLinks(opts.Links...),
		Exiter:        bridge,
		Converter:     pipeline,
	}, services.ShellConfig{
		App:       b.settings.AppConfig(),
		ThemeMode: settings.Theme,
	})
	if err != nil {
		_ = pipeline.Close()
		return nil, fmt.Errorf("create shell: %w", err)
	}

	ports := tui.NewPorts(pipeline, shell, bridge)
	ports.Lifecycle = platform
	ports.Copy = share.Copy

	watcher := file.NewWatcher(b.config, configReloadDelay)
	watcher.OnChange(func() {
		b.reloaded(shell, bridge)
	})

	return &Session{Ports: ports, pipeline: pipeline, watcher: watcher}, nil
}

// reloaded applies settings that can change while the TUI runs.
func (b *Backend) reloaded(shell driving.ShellService, bridge *tui.Bridge) {
	settings, err := b.settings.Get()
	if err != nil {
		logger.Warn("reload settings: %v", err)
		return
	}
	if err := logger.SetLevel(settings.LogLevel); err != nil {
		logger.Warn("ignoring log level %q: %v", settings.LogLevel, err)
	}

	theme := shell.Theme()
	switch settings.Theme {
	case domain.ThemeModeDark:
		theme = domain.ThemeDark
	case domain.ThemeModeLight:
		theme = domain.ThemeLight
	}
	logger.Info("config reloaded, theme %s", theme)
	bridge.Send(messages.ThemeChanged{Theme: theme})
}

// Watch reloads configuration until ctx is done.
func (s *Session) Watch(ctx context.Context) error {
	return s.watcher.Run(ctx)
}

// Close stops the pipeline.
func (s *Session) Close() error {
	return s.pipeline.Close()
}
