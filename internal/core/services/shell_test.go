package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/storage/memory"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// --- Mock implementations for shell testing ---

type fakePlatform struct {
	name      string
	height    int
	readyErr  error
	lifecycle chan driven.LifecycleEvent
}

func newFakePlatform(name string) *fakePlatform {
	return &fakePlatform{name: name, height: 700, lifecycle: make(chan driven.LifecycleEvent, 4)}
}

func (p *fakePlatform) Name() string                            { return p.name }
func (p *fakePlatform) Is(name string) bool                     { return p.name == name }
func (p *fakePlatform) Height() int                             { return p.height }
func (p *fakePlatform) Ready(context.Context) error             { return p.readyErr }
func (p *fakePlatform) Lifecycle() <-chan driven.LifecycleEvent { return p.lifecycle }

type fakeModals struct {
	mu        sync.Mutex
	stack     []driven.ModalKind
	dismissed []chan struct{}
	presented []driven.ModalKind
	err       error
}

func (m *fakeModals) Present(_ context.Context, kind driven.ModalKind) (<-chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan struct{})
	m.stack = append(m.stack, kind)
	m.dismissed = append(m.dismissed, ch)
	m.presented = append(m.presented, kind)
	return ch, nil
}

func (m *fakeModals) Top(context.Context) (driven.ModalKind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.stack) == 0 {
		return driven.ModalNone, nil
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *fakeModals) Dismiss(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.stack)
	if n == 0 {
		return nil
	}
	close(m.dismissed[n-1])
	m.stack = m.stack[:n-1]
	m.dismissed = m.dismissed[:n-1]
	return nil
}

func (m *fakeModals) Presented() []driven.ModalKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driven.ModalKind(nil), m.presented...)
}

type fakeMenu struct {
	mu   sync.Mutex
	open bool
}

func (m *fakeMenu) IsOpen(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open, nil
}

func (m *fakeMenu) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

func (m *fakeMenu) Toggle(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	toasts []domain.Toast
}

func (n *fakeNotifier) Toast(_ context.Context, t domain.Toast) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, t)
	return nil
}

func (n *fakeNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, t.Message)
	}
	return out
}

type fakeExiter struct {
	mu    sync.Mutex
	exits int
}

func (e *fakeExiter) Exit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exits++
}

func (e *fakeExiter) Exits() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exits
}

type fakeThemeDetector struct {
	available    bool
	availableErr error
	dark         bool
	darkErr      error
}

func (d fakeThemeDetector) IsAvailable(context.Context) (bool, error) {
	return d.available, d.availableErr
}

func (d fakeThemeDetector) IsDarkModeEnabled(context.Context) (bool, error) {
	return d.dark, d.darkErr
}

type fakeColorScheme bool

func (f fakeColorScheme) PrefersDark() bool { return bool(f) }

type fakeShareSheet struct {
	err    error
	shared []domain.SocialSharing
}

func (s *fakeShareSheet) Share(_ context.Context, sharing domain.SocialSharing) error {
	if s.err != nil {
		return s.err
	}
	s.shared = append(s.shared, sharing)
	return nil
}

type fakeRatePrompter struct {
	mu      sync.Mutex
	prefs   domain.RatePreferences
	prompts []bool
}

func (r *fakeRatePrompter) SetPreferences(p domain.RatePreferences) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = p
}

func (r *fakeRatePrompter) Prompt(_ context.Context, immediately bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, immediately)
	return nil
}

type fakeIntents struct {
	mu           sync.Mutex
	intent       *domain.Intent
	err          error
	registered   int
	unregistered int
}

func (f *fakeIntents) GetIntent(context.Context) (*domain.Intent, error) {
	return f.intent, f.err
}

func (f *fakeIntents) RegisterReceiver([]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered++
	return nil
}

func (f *fakeIntents) UnregisterReceiver() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistered++
	return nil
}

func (f *fakeIntents) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered, f.unregistered
}

type fakeLinks struct {
	links chan domain.DeepLink
	errs  chan error
}

func (f *fakeLinks) Links(context.Context) (<-chan domain.DeepLink, <-chan error) {
	return f.links, f.errs
}

type fakeChrome struct {
	calls []string
}

func (c *fakeChrome) StyleLightContent() error           { c.calls = append(c.calls, "style"); return nil }
func (c *fakeChrome) SetStatusBarColor(hex string) error { c.calls = append(c.calls, "color "+hex); return nil }
func (c *fakeChrome) TintHeader(hex string) error        { c.calls = append(c.calls, "tint "+hex); return nil }
func (c *fakeChrome) HideSplash() error                  { c.calls = append(c.calls, "splash"); return nil }

type failingFlags struct{}

func (failingFlags) GetFlag(context.Context, string) (bool, bool, error) {
	return false, false, errors.New("storage offline")
}

func (failingFlags) SetFlag(context.Context, string, bool) error {
	return errors.New("storage offline")
}

type recordingConverter struct {
	mu    sync.Mutex
	texts []string
	provs []domain.Provenance
}

func (c *recordingConverter) Submit(domain.ConversionRequest) error { return nil }
func (c *recordingConverter) SetEncoding(domain.EncodingMode) error { return nil }
func (c *recordingConverter) Snapshot() domain.Snapshot             { return domain.Snapshot{} }
func (c *recordingConverter) Updates() <-chan domain.Snapshot       { return nil }
func (c *recordingConverter) Close() error                          { return nil }
func (c *recordingConverter) SetText(text string, p domain.Provenance) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = append(c.texts, text)
	c.provs = append(c.provs, p)
	return nil
}

// --- Harness ---

type shellHarness struct {
	shell    *Shell
	platform *fakePlatform
	modals   *fakeModals
	menu     *fakeMenu
	notifier *fakeNotifier
	flags    *memory.FlagStore
	sink     *memory.RecordingSink
	exiter   *fakeExiter
	clock    *fakeClock
	ports    ShellPorts
}

func newShellHarness(t *testing.T, platform string, customize func(*ShellPorts)) *shellHarness {
	t.Helper()
	h := &shellHarness{
		platform: newFakePlatform(platform),
		modals:   &fakeModals{},
		menu:     &fakeMenu{},
		notifier: &fakeNotifier{},
		flags:    memory.NewFlagStore(),
		sink:     memory.NewRecordingSink(),
		exiter:   &fakeExiter{},
		clock:    newFakeClock(),
	}
	h.ports = ShellPorts{
		Platform:  h.platform,
		Modals:    h.modals,
		Menu:      h.menu,
		Notifier:  h.notifier,
		Flags:     h.flags,
		Analytics: h.sink,
		Exiter:    h.exiter,
	}
	if customize != nil {
		customize(&h.ports)
	}

	app := domain.DefaultAppConfig()
	app.AppVersion = "1.0.0"
	shell, err := NewShell(h.ports, ShellConfig{App: app, Clock: h.clock})
	require.NoError(t, err)
	h.shell = shell
	return h
}

func screenViews(sink *memory.RecordingSink) []any {
	var out []any
	for _, e := range sink.Named(domain.EventScreenView) {
		out = append(out, e.Properties[domain.PropScreenName])
	}
	return out
}

// --- Tests ---

func TestShellPorts_Validate(t *testing.T) {
	_, err := NewShell(ShellPorts{}, ShellConfig{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShell_Ready_FirstRunShowsWelcome(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	require.NoError(t, h.shell.Ready(ctx))

	assert.Equal(t, []driven.ModalKind{driven.ModalAbout}, h.modals.Presented())
	shown, found, err := h.flags.GetFlag(ctx, "is-shown-welcome-screen-v1.0.0")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, shown)
	assert.Equal(t, []any{domain.ScreenAbout}, screenViews(h.sink))

	require.NoError(t, h.shell.Back(ctx))
	require.Eventually(t, func() bool {
		return len(screenViews(h.sink)) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []any{domain.ScreenAbout, domain.ScreenHome}, screenViews(h.sink))
}

func TestShell_Ready_SecondRunTracksHome(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()
	require.NoError(t, h.flags.SetFlag(ctx, "is-shown-welcome-screen-v1.0.0", true))

	require.NoError(t, h.shell.Ready(ctx))

	assert.Empty(t, h.modals.Presented())
	assert.Equal(t, []any{domain.ScreenHome}, screenViews(h.sink))
}

func TestShell_Ready_StorageErrorShowsWelcome(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) {
		p.Flags = failingFlags{}
	})

	require.NoError(t, h.shell.Ready(context.Background()))

	assert.Equal(t, []driven.ModalKind{driven.ModalAbout}, h.modals.Presented())
	assert.Equal(t, []any{domain.ScreenAbout}, screenViews(h.sink))
}

func TestShell_Ready_PlatformError(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	h.platform.readyErr = errors.New("no tty")

	assert.Error(t, h.shell.Ready(context.Background()))
}

func TestShell_ThemeDetection(t *testing.T) {
	tests := []struct {
		name     string
		detector driven.ThemeDetector
		fallback bool
		mode     domain.ThemeMode
		want     domain.Theme
	}{
		{"native dark", fakeThemeDetector{available: true, dark: true}, false, "", domain.ThemeDark},
		{"native light", fakeThemeDetector{available: true}, true, "", domain.ThemeLight},
		{"availability error falls back", fakeThemeDetector{availableErr: errors.New("x")}, true, "", domain.ThemeDark},
		{"dark mode error falls back", fakeThemeDetector{available: true, darkErr: errors.New("x")}, true, "", domain.ThemeDark},
		{"unavailable keeps default", fakeThemeDetector{}, true, "", domain.ThemeLight},
		{"no detector falls back", nil, true, "", domain.ThemeDark},
		{"forced light", fakeThemeDetector{available: true, dark: true}, true, domain.ThemeModeLight, domain.ThemeLight},
		{"forced dark", nil, false, domain.ThemeModeDark, domain.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := ShellPorts{
				Platform:      newFakePlatform(domain.PlatformTerminal),
				Modals:        &fakeModals{},
				Menu:          &fakeMenu{},
				Notifier:      &fakeNotifier{},
				Flags:         memory.NewFlagStore(),
				Analytics:     memory.NewRecordingSink(),
				ThemeDetector: tt.detector,
				ColorScheme:   fakeColorScheme(tt.fallback),
			}
			shell, err := NewShell(ports, ShellConfig{App: domain.DefaultAppConfig(), ThemeMode: tt.mode})
			require.NoError(t, err)

			require.NoError(t, shell.Ready(context.Background()))
			assert.Equal(t, tt.want, shell.Theme())
		})
	}
}

func TestShell_Back_DismissesModalFirst(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()
	require.NoError(t, h.shell.ShowSupport(ctx))
	h.menu.open = true

	require.NoError(t, h.shell.Back(ctx))

	top, _ := h.modals.Top(ctx)
	assert.Equal(t, driven.ModalNone, top)
	assert.True(t, h.menu.open)
	assert.Empty(t, h.notifier.Messages())
}

func TestShell_Back_ClosesMenu(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	h.menu.open = true

	require.NoError(t, h.shell.Back(context.Background()))

	assert.False(t, h.menu.open)
	events := h.sink.Named(domain.EventToggleDrawerMenu)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActionClose, events[0].Properties[domain.PropAction])
	assert.Zero(t, h.exiter.Exits())
}

func TestShell_Back_DoublePressExits(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	require.NoError(t, h.shell.Back(ctx))
	assert.Equal(t, []string{domain.ToastPressBackExit}, h.notifier.Messages())
	assert.Zero(t, h.exiter.Exits())

	h.clock.Advance(1500 * time.Millisecond)
	require.NoError(t, h.shell.Back(ctx))

	assert.Equal(t, 1, h.exiter.Exits())
	assert.Equal(t, 1, h.sink.Flushes())
}

func TestShell_Back_SlowSecondPressWarnsAgain(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	require.NoError(t, h.shell.Back(ctx))
	h.clock.Advance(2500 * time.Millisecond)
	require.NoError(t, h.shell.Back(ctx))

	assert.Zero(t, h.exiter.Exits())
	assert.Len(t, h.notifier.Messages(), 2)

	h.clock.Advance(100 * time.Millisecond)
	require.NoError(t, h.shell.Back(ctx))
	assert.Equal(t, 1, h.exiter.Exits())
}

func TestShell_ToggleMenu(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	require.NoError(t, h.shell.ToggleMenu(ctx))
	require.NoError(t, h.shell.ToggleMenu(ctx))

	events := h.sink.Named(domain.EventToggleDrawerMenu)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionOpen, events[0].Properties[domain.PropAction])
	assert.Equal(t, domain.ActionClose, events[1].Properties[domain.PropAction])
}

func TestShell_CloseMenu(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	// Closed already: nothing to report.
	require.NoError(t, h.shell.CloseMenu(ctx))
	assert.Empty(t, h.sink.Named(domain.EventToggleDrawerMenu))

	h.menu.open = true
	require.NoError(t, h.shell.CloseMenu(ctx))

	open, _ := h.menu.IsOpen(ctx)
	assert.False(t, open)
	events := h.sink.Named(domain.EventToggleDrawerMenu)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActionClose, events[0].Properties[domain.PropAction])
}

func TestShell_Share(t *testing.T) {
	sheet := &fakeShareSheet{}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) { p.ShareSheet = sheet })

	require.NoError(t, h.shell.Share(context.Background()))

	require.Len(t, sheet.shared, 1)
	assert.Equal(t, h.shell.AppConfig().SocialSharing, sheet.shared[0])
	assert.Equal(t, []string{domain.ToastShareThanks}, h.notifier.Messages())
	assert.Len(t, h.sink.Named(domain.EventShare), 1)
}

func TestShell_Share_FailureIsLogged(t *testing.T) {
	sheet := &fakeShareSheet{err: errors.New("no clipboard")}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) { p.ShareSheet = sheet })

	require.NoError(t, h.shell.Share(context.Background()))

	assert.Empty(t, h.notifier.Messages())
	assert.Empty(t, h.sink.Named(domain.EventShare))
}

func TestShell_Share_Unsupported(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)

	assert.ErrorIs(t, h.shell.Share(context.Background()), domain.ErrNotSupported)
}

func TestShell_Rating(t *testing.T) {
	rater := &fakeRatePrompter{}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) { p.RatePrompter = rater })
	ctx := context.Background()

	require.NoError(t, h.shell.Ready(ctx))
	require.NoError(t, h.shell.PromptForRating(ctx))

	assert.Equal(t, []bool{false, true}, rater.prompts)
	assert.Equal(t, 3, rater.prefs.UsesUntilPrompt)
	assert.Equal(t, h.shell.AppConfig().AppName, rater.prefs.DisplayAppName)
	assert.Len(t, h.sink.Named(domain.EventRate), 1)
}

func TestShell_LaunchIntentFeedsPipeline(t *testing.T) {
	conv := &recordingConverter{}
	intents := &fakeIntents{intent: &domain.Intent{Extras: map[string]string{domain.IntentExtraText: "shared text"}}}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) {
		p.Intents = intents
		p.Converter = conv
	})

	require.NoError(t, h.shell.Ready(context.Background()))

	assert.Equal(t, []string{"shared text"}, conv.texts)
	assert.Equal(t, []domain.Provenance{domain.ProvenanceWebIntent}, conv.provs)
}

func TestShell_LaunchIntentIgnoresEmpty(t *testing.T) {
	conv := &recordingConverter{}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) {
		p.Intents = &fakeIntents{intent: &domain.Intent{}}
		p.Converter = conv
	})

	require.NoError(t, h.shell.Ready(context.Background()))
	require.NoError(t, h.shell.HandleIntent(context.Background(), nil))

	assert.Empty(t, conv.texts)
}

func TestShell_DeepLinks(t *testing.T) {
	links := &fakeLinks{links: make(chan domain.DeepLink, 2), errs: make(chan error, 1)}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) { p.Links = links })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, h.flags.SetFlag(ctx, "is-shown-welcome-screen-v1.0.0", true))

	require.NoError(t, h.shell.Ready(ctx))
	links.errs <- errors.New("bad link")
	links.links <- domain.DeepLink{URL: domain.DeepLinkSupport}
	links.links <- domain.DeepLink{URL: domain.DeepLinkBase + "/unknown"}

	require.Eventually(t, func() bool {
		return len(h.modals.Presented()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []driven.ModalKind{driven.ModalSupport}, h.modals.Presented())
}

func TestShell_AboutLinkSetsWelcomeFlag(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	ctx := context.Background()

	require.NoError(t, h.shell.HandleDeepLink(ctx, domain.DeepLink{URL: domain.DeepLinkAbout + "?ref=x"}))

	assert.Equal(t, []driven.ModalKind{driven.ModalAbout}, h.modals.Presented())
	shown, _, _ := h.flags.GetFlag(ctx, "is-shown-welcome-screen-v1.0.0")
	assert.True(t, shown)
}

func TestShell_AndroidChromeAndReceiver(t *testing.T) {
	chrome := &fakeChrome{}
	intents := &fakeIntents{}
	h := newShellHarness(t, domain.PlatformAndroid, func(p *ShellPorts) {
		p.Chrome = chrome
		p.Intents = intents
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, h.shell.Ready(ctx))

	app := h.shell.AppConfig()
	assert.Equal(t, []string{"style", "color " + app.ThemeColorARGB(), "tint " + app.AppThemeColor, "splash"}, chrome.calls)

	h.platform.lifecycle <- driven.LifecyclePause
	h.platform.lifecycle <- driven.LifecycleResume
	require.Eventually(t, func() bool {
		reg, unreg := intents.counts()
		return reg == 2 && unreg == 1
	}, time.Second, 5*time.Millisecond)
}

func TestShell_TerminalSkipsNativeChrome(t *testing.T) {
	chrome := &fakeChrome{}
	intents := &fakeIntents{}
	h := newShellHarness(t, domain.PlatformTerminal, func(p *ShellPorts) {
		p.Chrome = chrome
		p.Intents = intents
	})

	require.NoError(t, h.shell.Ready(context.Background()))

	assert.Empty(t, chrome.calls)
	reg, _ := intents.counts()
	assert.Zero(t, reg)
}

func TestShell_TextAreaMinRows(t *testing.T) {
	h := newShellHarness(t, domain.PlatformTerminal, nil)
	h.platform.height = 900

	assert.Equal(t, 10, h.shell.TextAreaMinRows())
}
