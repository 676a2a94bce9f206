package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/analytics"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/config/file"
	"github.com/myanmartools/zuc-cli/internal/adapters/driven/translit/rules/tables"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

const (
	zgMetta  = "\u1031\u1019\u1010\u1071\u102C"
	uniMetta = "\u1019\u1031\u1010\u1039\u1010\u102C"
)

func newBackend(t *testing.T, config map[string]any) *Backend {
	t.Helper()
	configDir := t.TempDir()
	if len(config) > 0 {
		store, err := file.NewConfigStore(configDir)
		require.NoError(t, err)
		for k, v := range config {
			require.NoError(t, store.Set(k, v))
		}
	}

	b, err := New(Options{ConfigDir: configDir, DataDir: t.TempDir(), Version: "1.0.0"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestNew_Defaults(t *testing.T) {
	b := newBackend(t, nil)

	assert.IsType(t, analytics.MultiSink{}, b.sink)
	assert.FileExists(t, filepath.Join(b.opts.DataDir, eventLogFile))
	assert.Equal(t, filepath.Join(b.opts.DataDir, logFile), b.LogPath())
	assert.NotNil(t, b.Settings())
}

func TestNew_AnalyticsSettings(t *testing.T) {
	disabled := newBackend(t, map[string]any{"analytics.enabled": false})
	assert.Equal(t, analytics.NopSink{}, disabled.sink)

	logOnly := newBackend(t, map[string]any{"analytics.persist": false})
	assert.IsType(t, &analytics.Sink{}, logOnly.sink)
}

func TestNew_CustomRules(t *testing.T) {
	b := newBackend(t, map[string]any{"rules.custom": true})

	// Custom tables are seeded from the built-in ones on first use.
	res, err := b.Converter(domain.ProvenanceCLI).Convert(context.Background(), "abc", domain.EncodingZawgyi)
	require.NoError(t, err)
	assert.Equal(t, "abc", res.OutputText)
	assert.DirExists(t, filepath.Join(b.opts.ConfigDir, rulesDir))
}

func TestBackend_RuleTables(t *testing.T) {
	builtin := newBackend(t, nil)
	assert.Equal(t, tables.Embedded{}, builtin.RuleTables())
	data, err := builtin.RuleTables().Load(domain.RuleZawgyiToUnicode)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	custom := newBackend(t, map[string]any{"rules.custom": true})
	assert.IsType(t, &file.RuleTableStore{}, custom.RuleTables())
	data, err = custom.RuleTables().Load(domain.RuleUnicodeToZawgyi)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBackend_LoadedRules(t *testing.T) {
	b := newBackend(t, nil)

	assert.Equal(t, []domain.RuleName{domain.RuleUnicodeToZawgyi, domain.RuleZawgyiToUnicode}, b.LoadedRules())
}

func TestBackend_RecentEventsAndEventLog(t *testing.T) {
	b := newBackend(t, nil)
	ctx := context.Background()

	_, err := b.Converter(domain.ProvenanceMCP).Convert(ctx, zgMetta, domain.EncodingZawgyi)
	require.NoError(t, err)
	_, err = b.Converter(domain.ProvenanceMCP).Convert(ctx, uniMetta, domain.EncodingUnicode)
	require.NoError(t, err)
	b.sink.Flush()

	recent := b.RecentEvents().Last(10)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.EventConvert, recent[0].Name)
	assert.Equal(t, "zg2uni", recent[0].Properties[domain.PropMethod])
	assert.Equal(t, "mcp", recent[1].Properties[domain.PropSource])

	logged, err := b.EventLog(1)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, recent[1].ID, logged[0].ID)
}

func TestBackend_EventLogTornLine(t *testing.T) {
	b := newBackend(t, map[string]any{"analytics.enabled": false})
	path := filepath.Join(b.opts.DataDir, eventLogFile)
	line := `{"id":"a","session_id":"s","name":"convert","time":"2026-01-01T00:00:00Z"}`
	require.NoError(t, os.WriteFile(path, []byte(line+"\n{\"id\":\"b\""), 0o600))

	events, err := b.EventLog(10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a", events[0].ID)
}

func TestBackend_EventLogMissing(t *testing.T) {
	b := newBackend(t, map[string]any{"analytics.enabled": false})

	events, err := b.EventLog(10)
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestBackend_ConverterPassesThroughBlankText(t *testing.T) {
	b := newBackend(t, nil)

	res, err := b.Converter(domain.ProvenanceMCP).Convert(context.Background(), "   ", domain.EncodingAuto)

	require.NoError(t, err)
	assert.Equal(t, "   ", res.OutputText)
}

func TestBackend_CloseFlushesEvents(t *testing.T) {
	configDir, dataDir := t.TempDir(), t.TempDir()
	b, err := New(Options{ConfigDir: configDir, DataDir: dataDir, Version: "1.0.0"})
	require.NoError(t, err)

	b.sink.TrackEvent("test_event", map[string]any{"k": "v"})
	require.NoError(t, b.Close())

	data, err := os.ReadFile(filepath.Join(dataDir, eventLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test_event")
}

func TestResolveDirs_KeepsExplicitDirs(t *testing.T) {
	opts, err := resolveDirs(Options{ConfigDir: "/c", DataDir: "/d"})

	require.NoError(t, err)
	assert.Equal(t, "/c", opts.ConfigDir)
	assert.Equal(t, "/d", opts.DataDir)
}

func TestNewSession(t *testing.T) {
	b := newBackend(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := b.NewSession(ctx, SessionOptions{Text: "shared"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ports.Validate())
	assert.NotNil(t, s.Ports.Copy)
	assert.NotNil(t, s.Ports.Lifecycle)
	assert.Equal(t, domain.DefaultAppConfig().AppName, s.Ports.Shell.AppConfig().AppName)
}

func TestSession_ReloadSendsTheme(t *testing.T) {
	b := newBackend(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, err := b.NewSession(ctx, SessionOptions{})
	require.NoError(t, err)
	defer s.Close()

	var (
		mu   sync.Mutex
		sent []tea.Msg
	)
	s.Ports.Bridge.Attach(func(msg tea.Msg) {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, msg)
	})

	require.NoError(t, b.Settings().SetValue("theme.mode", "dark"))
	b.reloaded(s.Ports.Shell, s.Ports.Bridge)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []tea.Msg{messages.ThemeChanged{Theme: domain.ThemeDark}}, sent)
}
