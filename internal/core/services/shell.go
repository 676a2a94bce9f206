package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

// Ensure Shell implements the interface.
var _ driving.ShellService = (*Shell)(nil)

// ShellPorts holds the collaborators of the application shell.
// Platform, Modals, Menu, Notifier, Flags and Analytics are required.
// A nil optional capability is skipped.
type ShellPorts struct {
	Platform  driven.Platform
	Modals    driven.ModalController
	Menu      driven.MenuController
	Notifier  driven.Notifier
	Flags     driven.FlagStore
	Analytics driven.AnalyticsSink

	ThemeDetector driven.ThemeDetector
	ColorScheme   driven.ColorSchemeQuery
	Chrome        driven.SystemChrome
	ShareSheet    driven.ShareSheet
	RatePrompter  driven.RatePrompter
	Intents       driven.IntentSource
	Links         driven.DynamicLinks
	Exiter        driven.Exiter
	Converter     driving.ConverterService
}

// Validate checks that required ports are present.
func (p ShellPorts) Validate() error {
	switch {
	case p.Platform == nil:
		return fmt.Errorf("%w: platform is required", domain.ErrInvalidInput)
	case p.Modals == nil:
		return fmt.Errorf("%w: modal controller is required", domain.ErrInvalidInput)
	case p.Menu == nil:
		return fmt.Errorf("%w: menu controller is required", domain.ErrInvalidInput)
	case p.Notifier == nil:
		return fmt.Errorf("%w: notifier is required", domain.ErrInvalidInput)
	case p.Flags == nil:
		return fmt.Errorf("%w: flag store is required", domain.ErrInvalidInput)
	case p.Analytics == nil:
		return fmt.Errorf("%w: analytics sink is required", domain.ErrInvalidInput)
	}
	return nil
}

// ShellConfig configures the shell.
type ShellConfig struct {
	App       domain.AppConfig
	ThemeMode domain.ThemeMode

	// BackWindow defaults to domain.DefaultBackPressWindow.
	BackWindow time.Duration

	// Clock defaults to the system clock.
	Clock Clock
}

// Shell wires platform lifecycle, modals, the drawer menu, sharing,
// rating, hand-off intents and the back-button policy.
type Shell struct {
	ports ShellPorts
	cfg   ShellConfig
	clock Clock

	mu       sync.Mutex
	theme    domain.Theme
	lastBack time.Time
}

// NewShell creates the application shell.
func NewShell(ports ShellPorts, cfg ShellConfig) (*Shell, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}
	if cfg.BackWindow <= 0 {
		cfg.BackWindow = domain.DefaultBackPressWindow
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.ThemeMode == "" {
		cfg.ThemeMode = domain.ThemeModeAuto
	}
	return &Shell{
		ports: ports,
		cfg:   cfg,
		clock: cfg.Clock,
		theme: domain.ThemeLight,
	}, nil
}

// AppConfig returns the application metadata.
func (s *Shell) AppConfig() domain.AppConfig {
	return s.cfg.App
}

// Theme returns the resolved theme.
func (s *Shell) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Shell) setTheme(t domain.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

// TextAreaMinRows returns the minimum text area rows for the screen.
func (s *Shell) TextAreaMinRows() int {
	return domain.TextAreaMinRows(s.ports.Platform.Height())
}

// Ready runs the platform-ready flow.
func (s *Shell) Ready(ctx context.Context) error {
	if err := s.ports.Platform.Ready(ctx); err != nil {
		return fmt.Errorf("platform not ready: %w", err)
	}
	logger.Section("Platform ready")

	s.detectTheme(ctx)
	s.styleChrome()

	if s.isNative() {
		s.registerReceiver()
	}

	go s.watchLifecycle(ctx)

	s.handlePlatformReady(ctx)
	return nil
}

func (s *Shell) isNative() bool {
	p := s.ports.Platform
	return p.Is(domain.PlatformAndroid) || p.Is(domain.PlatformIOS)
}

func (s *Shell) detectTheme(ctx context.Context) {
	switch s.cfg.ThemeMode {
	case domain.ThemeModeDark:
		s.setTheme(domain.ThemeDark)
		return
	case domain.ThemeModeLight:
		s.setTheme(domain.ThemeLight)
		return
	}

	td := s.ports.ThemeDetector
	if td == nil {
		s.fallbackTheme()
		return
	}
	available, err := td.IsAvailable(ctx)
	if err != nil {
		s.fallbackTheme()
		return
	}
	// Unavailable without an error keeps the current theme.
	if !available {
		return
	}
	dark, err := td.IsDarkModeEnabled(ctx)
	if err != nil {
		s.fallbackTheme()
		return
	}
	s.setTheme(themeFor(dark))
}

func (s *Shell) fallbackTheme() {
	if s.ports.ColorScheme == nil {
		return
	}
	s.setTheme(themeFor(s.ports.ColorScheme.PrefersDark()))
}

func themeFor(dark bool) domain.Theme {
	if dark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (s *Shell) styleChrome() {
	chrome := s.ports.Chrome
	if chrome == nil || !s.isNative() {
		return
	}
	p := s.ports.Platform

	if err := chrome.StyleLightContent(); err != nil {
		logger.Debug("status bar style: %v", err)
	}
	if p.Is(domain.PlatformAndroid) {
		if err := chrome.SetStatusBarColor(s.cfg.App.ThemeColorARGB()); err != nil {
			logger.Debug("status bar colour: %v", err)
		}
		if err := chrome.TintHeader(s.cfg.App.AppThemeColor); err != nil {
			logger.Debug("header tint: %v", err)
		}
	}
	if err := chrome.HideSplash(); err != nil {
		logger.Debug("splash screen: %v", err)
	}
}

func (s *Shell) registerReceiver() {
	if s.ports.Intents == nil || !s.ports.Platform.Is(domain.PlatformAndroid) {
		return
	}
	if err := s.ports.Intents.RegisterReceiver([]string{domain.IntentBroadcastAction}); err != nil {
		logger.Warn("An error occurs while registering the broadcast receiver: %v", err)
	}
}

func (s *Shell) unregisterReceiver() {
	if s.ports.Intents == nil || !s.ports.Platform.Is(domain.PlatformAndroid) {
		return
	}
	if err := s.ports.Intents.UnregisterReceiver(); err != nil {
		logger.Warn("An error occurs while unregistering the broadcast receiver: %v", err)
	}
}

func (s *Shell) watchLifecycle(ctx context.Context) {
	events := s.ports.Platform.Lifecycle()
	if events == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			logger.Debug("lifecycle: %s", ev)
			switch ev {
			case driven.LifecyclePause:
				s.unregisterReceiver()
			case driven.LifecycleResume:
				s.registerReceiver()
			}
		}
	}
}

func (s *Shell) handlePlatformReady(ctx context.Context) {
	key := s.cfg.App.WelcomeScreenKey()

	// A read error counts as not yet shown.
	shown, _, err := s.ports.Flags.GetFlag(ctx, key)
	if err != nil {
		logger.Error("An error occurs while reading the welcome screen flag: %v", err)
		shown = false
	}

	if !shown {
		if err := s.ShowAbout(ctx); err != nil {
			logger.Error("An error occurs while showing the welcome screen: %v", err)
		} else if err := s.ports.Flags.SetFlag(ctx, key, true); err != nil {
			logger.Error("An error occurs while saving the welcome screen flag: %v", err)
		}
	} else {
		s.trackScreen(domain.ScreenHome)
	}

	s.handleLaunchIntent(ctx)
	s.watchDynamicLinks(ctx)
	s.promptForRatingWhenDue(ctx)
}

func (s *Shell) handleLaunchIntent(ctx context.Context) {
	if s.ports.Intents == nil {
		return
	}
	intent, err := s.ports.Intents.GetIntent(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotSupported) {
			logger.Error("An error occurs while reading the launch intent: %v", err)
		}
		return
	}
	if err := s.HandleIntent(ctx, intent); err != nil {
		logger.Error("An error occurs while handling the launch intent: %v", err)
	}
}

// HandleIntent submits shared text to the pipeline tagged as web_intent.
func (s *Shell) HandleIntent(_ context.Context, intent *domain.Intent) error {
	text := intent.Text()
	if text == "" {
		return nil
	}
	if s.ports.Converter == nil {
		return domain.ErrServiceUnavailable
	}

	return s.ports.Converter.SetText(text, domain.ProvenanceWebIntent)
}

func (s *Shell) watchDynamicLinks(ctx context.Context) {
	if s.ports.Links == nil {
		return
	}
	links, errs := s.ports.Links.Links(ctx)
	go func() {
		for links != nil || errs != nil {
			select {
			case <-ctx.Done():
				return
			case link, ok := <-links:
				if !ok {
					links = nil
					continue
				}
				if err := s.HandleDeepLink(ctx, link); err != nil {
					logger.Error("An error occurs while opening a dynamic link: %v", err)
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Error("An error occurs on receiving dynamic link: %v", err)
			}
		}
	}()
}

// HandleDeepLink routes About and Support links. Other links are ignored.
func (s *Shell) HandleDeepLink(ctx context.Context, link domain.DeepLink) error {
	switch {
	case strings.HasPrefix(link.URL, domain.DeepLinkAbout):
		if err := s.ShowAbout(ctx); err != nil {
			return err
		}
		if err := s.ports.Flags.SetFlag(ctx, s.cfg.App.WelcomeScreenKey(), true); err != nil {
			logger.Error("An error occurs while saving the welcome screen flag: %v", err)
		}
		return nil
	case strings.HasPrefix(link.URL, domain.DeepLinkSupport):
		return s.ShowSupport(ctx)
	default:
		logger.Debug("ignoring dynamic link %q", link.URL)
		return nil
	}
}

func (s *Shell) promptForRatingWhenDue(ctx context.Context) {
	if s.ports.RatePrompter == nil {
		return
	}
	s.ports.RatePrompter.SetPreferences(domain.DefaultRatePreferences(s.cfg.App))
	if err := s.ports.RatePrompter.Prompt(ctx, false); err != nil {
		logger.Warn("An error occurs while prompting for rating: %v", err)
	}
}

// PromptForRating shows the rating prompt now.
func (s *Shell) PromptForRating(ctx context.Context) error {
	if s.ports.RatePrompter == nil {
		return domain.ErrNotSupported
	}
	if err := s.ports.RatePrompter.Prompt(ctx, true); err != nil {
		logger.Warn("An error occurs while prompting for rating: %v", err)
	}
	s.track(domain.EventRate, map[string]any{domain.PropMethod: domain.RateMethodNative})
	return nil
}

// Share shares the app. Failures are logged, not returned.
func (s *Shell) Share(ctx context.Context) error {
	if s.ports.ShareSheet == nil {
		return domain.ErrNotSupported
	}
	if err := s.ports.ShareSheet.Share(ctx, s.cfg.App.SocialSharing); err != nil {
		logger.Error("An error occurs when sharing the app: %v", err)
		return nil
	}

	s.toast(ctx, domain.ToastShareThanks)
	s.track(domain.EventShare, map[string]any{domain.PropMethod: domain.ShareMethodNative})
	return nil
}

// ToggleMenu opens or closes the drawer menu.
func (s *Shell) ToggleMenu(ctx context.Context) error {
	open, err := s.ports.Menu.Toggle(ctx)
	if err != nil {
		return fmt.Errorf("toggle menu: %w", err)
	}
	action := domain.ActionClose
	if open {
		action = domain.ActionOpen
	}
	s.track(domain.EventToggleDrawerMenu, map[string]any{domain.PropAction: action})
	return nil
}

// CloseMenu closes the drawer menu when it is open.
func (s *Shell) CloseMenu(ctx context.Context) error {
	open, err := s.ports.Menu.IsOpen(ctx)
	if err != nil {
		return fmt.Errorf("menu state: %w", err)
	}
	if !open {
		return nil
	}
	if err := s.ports.Menu.Close(ctx); err != nil {
		return fmt.Errorf("close menu: %w", err)
	}
	s.track(domain.EventToggleDrawerMenu, map[string]any{domain.PropAction: domain.ActionClose})
	return nil
}

// ShowAbout presents the About modal.
func (s *Shell) ShowAbout(ctx context.Context) error {
	return s.showModal(ctx, driven.ModalAbout, domain.ScreenAbout)
}

// ShowSupport presents the Support modal.
func (s *Shell) ShowSupport(ctx context.Context) error {
	return s.showModal(ctx, driven.ModalSupport, domain.ScreenSupport)
}

func (s *Shell) showModal(ctx context.Context, kind driven.ModalKind, screen string) error {
	dismissed, err := s.ports.Modals.Present(ctx, kind)
	if err != nil {
		return fmt.Errorf("present %s: %w", kind, err)
	}
	s.trackScreen(screen)

	go func() {
		select {
		case <-dismissed:
			s.trackScreen(domain.ScreenHome)
		case <-ctx.Done():
		}
	}()
	return nil
}

// Back applies the back-button policy: dismiss the top modal, else
// close an open menu, else exit when pressed twice within the window,
// else show a notice and remember the press.
func (s *Shell) Back(ctx context.Context) error {
	if top, err := s.ports.Modals.Top(ctx); err == nil && top != driven.ModalNone {
		if err := s.ports.Modals.Dismiss(ctx); err != nil {
			logger.Debug("dismiss modal: %v", err)
		}
		return nil
	}

	if open, err := s.ports.Menu.IsOpen(ctx); err == nil && open {
		if err := s.CloseMenu(ctx); err != nil {
			logger.Debug("%v", err)
		}
		return nil
	}

	now := s.clock.Now()
	s.mu.Lock()
	last := s.lastBack
	exit := !last.IsZero() && now.Sub(last) < s.cfg.BackWindow
	if !exit {
		s.lastBack = now
	}
	s.mu.Unlock()

	if exit {
		s.ports.Analytics.Flush()
		if s.ports.Exiter != nil {
			s.ports.Exiter.Exit()
		}
		return nil
	}

	s.toast(ctx, domain.ToastPressBackExit)
	return nil
}

func (s *Shell) toast(ctx context.Context, msg string) {
	t := domain.Toast{Message: msg, Duration: 2 * time.Second}
	if err := s.ports.Notifier.Toast(ctx, t); err != nil {
		logger.Debug("toast: %v", err)
	}
}

func (s *Shell) trackScreen(name string) {
	s.track(domain.EventScreenView, map[string]any{domain.PropScreenName: name})
}

func (s *Shell) track(name string, props map[string]any) {
	s.ports.Analytics.TrackEvent(name, props)
}
