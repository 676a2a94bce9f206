package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/components/status"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/keymap"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/views/home"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/views/menu"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/views/modal"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

// Toast durations for notices raised by the TUI itself.
const (
	defaultToastDuration = 2 * time.Second
	linkToastDuration    = 4 * time.Second
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	homeView  *home.View
	menuView  *menu.View
	modalView *modal.View
	statusBar *status.Bar

	// currentView mirrors the chrome the shell last asked for.
	currentView messages.ViewType
	menuOpen    bool

	// toastSeq identifies the notice on screen so stale expiries are ignored.
	toastSeq uint64

	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	cfg := ports.Shell.AppConfig()
	s := styles.ForTheme(ports.Shell.Theme())
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		homeView:    home.NewView(s, ports.Converter, cfg, ports.Copy),
		menuView:    menu.NewView(s, cfg),
		modalView:   modal.NewView(s, cfg),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewHome,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts listening for snapshots and runs the platform-ready flow.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(a.ports.Shell.AppConfig().AppName),
		a.homeView.Init(),
		waitForSnapshot(a.ports.Converter.Updates()),
		a.readyCmd(),
	)
}

func waitForSnapshot(updates <-chan domain.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return messages.UpdatesClosed{}
		}
		return messages.SnapshotUpdated{Snapshot: snap}
	}
}

func (a *App) readyCmd() tea.Cmd {
	ctx, shell := a.ctx, a.ports.Shell
	return func() tea.Msg {
		return messages.ShellReady{Err: shell.Ready(ctx)}
	}
}

// shellCmd runs a shell call off the update loop. The shell reports
// back through the bridge, which sends into the running program.
func (a *App) shellCmd(call func(context.Context) error) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		if err := call(ctx); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.FocusMsg:
		if a.ports.Lifecycle != nil {
			a.ports.Lifecycle.Resume()
		}
		return a, nil

	case tea.BlurMsg:
		if a.ports.Lifecycle != nil {
			a.ports.Lifecycle.Pause()
		}
		return a, nil

	case messages.SnapshotUpdated:
		a.applySnapshot(msg.Snapshot)
		return a, waitForSnapshot(a.ports.Converter.Updates())

	case messages.UpdatesClosed:
		logger.Debug("snapshot updates closed")
		return a, nil

	case messages.ShellReady:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.applyTheme(a.ports.Shell.Theme())
		a.homeView.SetMinRows(a.ports.Shell.TextAreaMinRows())
		return a, a.syncChrome()

	case messages.ChromeChanged:
		return a, a.syncChrome()

	case messages.MenuSelected:
		return a, a.menuCmd(msg)

	case messages.ToastShown:
		return a, a.showToast(msg.Toast)

	case messages.ToastExpired:
		if msg.ID == a.toastSeq && a.statusBar.State() == status.StateToast {
			a.statusBar.Clear()
		}
		return a, nil

	case messages.ThemeChanged:
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.Copied:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		return a, a.showToast(domain.Toast{Message: "Copied to clipboard"})

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other component messages go to the home screen.
	a.homeView, cmd = a.homeView.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case keymap.Matches(msg.String(), a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(msg.String(), a.keymap.Back):
		return a, a.shellCmd(a.ports.Shell.Back)
	case keymap.Matches(msg.String(), a.keymap.Menu):
		return a, a.shellCmd(a.ports.Shell.ToggleMenu)
	}

	switch {
	case a.modalView.Kind() != driven.ModalNone:
		a.modalView, cmd = a.modalView.Update(msg)
	case a.menuOpen:
		a.menuView, cmd = a.menuView.Update(msg)
	default:
		a.homeView, cmd = a.homeView.Update(msg)
	}
	return a, cmd
}

// syncChrome reads modal and menu state from the bridge and updates
// focus, hints and the current view to match.
func (a *App) syncChrome() tea.Cmd {
	bridge := a.ports.Bridge

	kind := bridge.TopModal()
	if kind != a.modalView.Kind() {
		a.modalView.SetKind(kind)
	}

	open := bridge.MenuOpen()
	if open && !a.menuOpen {
		a.menuView.Reset()
	}
	a.menuOpen = open

	switch {
	case kind == driven.ModalAbout:
		a.currentView = messages.ViewAbout
		a.statusBar.SetHints(status.HintsModal)
	case kind == driven.ModalSupport:
		a.currentView = messages.ViewSupport
		a.statusBar.SetHints(status.HintsModal)
	case open:
		a.currentView = messages.ViewMenu
		a.statusBar.SetHints(status.HintsMenu)
	default:
		a.currentView = messages.ViewHome
		a.statusBar.SetHints(status.HintsHome)
	}

	a.layout()

	if a.currentView == messages.ViewHome {
		return a.homeView.Focus()
	}
	a.homeView.Blur()
	return nil
}

func (a *App) menuCmd(sel messages.MenuSelected) tea.Cmd {
	ctx := a.ctx
	shell := a.ports.Shell
	bridge := a.ports.Bridge
	copyFn := a.ports.Copy

	return func() tea.Msg {
		if err := shell.CloseMenu(ctx); err != nil {
			logger.Debug("%v", err)
		}

		var err error
		switch sel.Action {
		case messages.MenuAbout:
			err = shell.ShowAbout(ctx)
		case messages.MenuSupport:
			err = shell.ShowSupport(ctx)
		case messages.MenuShare:
			err = shell.Share(ctx)
		case messages.MenuRate:
			err = shell.PromptForRating(ctx)
		case messages.MenuLink:
			err = showLink(ctx, bridge, copyFn, sel.URL)
		case messages.MenuQuit:
			return tea.QuitMsg{}
		}
		if err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// showLink copies url to the clipboard when possible and shows it.
func showLink(ctx context.Context, n driven.Notifier, copyFn func(string) error, url string) error {
	text := url
	if copyFn != nil {
		if err := copyFn(url); err != nil {
			logger.Debug("copy link: %v", err)
		} else {
			text = "Link copied: " + url
		}
	}
	return n.Toast(ctx, domain.Toast{Message: text, Duration: linkToastDuration})
}

func (a *App) showToast(t domain.Toast) tea.Cmd {
	a.toastSeq++
	id := a.toastSeq

	a.statusBar.SetState(status.StateToast)
	a.statusBar.SetMessage(t.Message)

	d := t.Duration
	if d <= 0 {
		d = defaultToastDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return messages.ToastExpired{ID: id}
	})
}

func (a *App) applySnapshot(snap domain.Snapshot) {
	a.homeView.ApplySnapshot(snap)

	if snap.State.Detected.IsNone() {
		a.statusBar.SetDirection("", "", 0)
	} else {
		a.statusBar.SetDirection(
			domain.EncodingLabel(snap.State.Detected),
			domain.EncodingLabel(snap.State.Detected.Opposite()),
			snap.LastDuration,
		)
	}

	switch state := a.statusBar.State(); {
	case snap.Converting && state == status.StateReady:
		a.statusBar.SetState(status.StateConverting)
	case !snap.Converting && state == status.StateConverting:
		a.statusBar.SetState(status.StateReady)
	}
}

func (a *App) setError(err error) {
	a.err = err
	logger.Debug("tui error: %v", err)
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

func (a *App) applyTheme(t domain.Theme) {
	if a.styles.Theme().Name == t {
		return
	}
	a.styles = styles.ForTheme(t)
	a.homeView.SetStyles(a.styles)
	a.menuView.SetStyles(a.styles)
	a.modalView.SetStyles(a.styles)
	a.statusBar.SetStyles(a.styles)
}

// layout sizes every view. The status bar takes the last line.
func (a *App) layout() {
	bodyHeight := a.height - 1
	a.statusBar.SetWidth(a.width)
	a.menuView.SetDimensions(a.width, bodyHeight)
	a.modalView.SetDimensions(a.width, bodyHeight)

	homeWidth := a.width
	if a.menuOpen {
		homeWidth -= lipgloss.Width(a.menuView.View()) + 1
	}
	a.homeView.SetDimensions(homeWidth, bodyHeight)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewAbout, messages.ViewSupport:
		body = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, a.modalView.View())
	case messages.ViewMenu:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.menuView.View(), " ", a.homeView.View())
	default:
		body = a.homeView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

// Run starts the TUI and blocks until it exits or ctx is done.
// opts are appended to the default program options.
func (a *App) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	a.ctx = ctx

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(a, opts...)
	a.ports.Bridge.Attach(p.Send)
	defer func() {
		a.ports.Bridge.Attach(nil)
		a.ports.Bridge.DismissAll()
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// MenuOpen reports whether the drawer is shown.
func (a *App) MenuOpen() bool {
	return a.menuOpen
}

// Home returns the converter screen.
func (a *App) Home() *home.View {
	return a.homeView
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Styles returns the active styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
