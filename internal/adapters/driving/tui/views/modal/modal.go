// Package modal provides the About and Support modal views for the TUI.
package modal

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// View renders one modal at a time.
type View struct {
	styles *styles.Styles
	cfg    domain.AppConfig

	kind         driven.ModalKind
	scrollOffset int
	width        int
	height       int
}

// NewView creates a modal view for cfg.
func NewView(s *styles.Styles, cfg domain.AppConfig) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		cfg:    cfg,
		width:  80,
		height: 24,
	}
}

// SetKind selects the modal to render and resets scrolling.
func (v *View) SetKind(kind driven.ModalKind) {
	if kind != v.kind {
		v.scrollOffset = 0
	}
	v.kind = kind
}

// Kind returns the modal being rendered.
func (v *View) Kind() driven.ModalKind {
	return v.kind
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update scrolls the modal body.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < v.maxScrollOffset() {
				v.scrollOffset++
			}
		}
	}
	return v, nil
}

// visibleLines returns the number of body lines that fit.
func (v *View) visibleLines() int {
	// Reserve lines for border, padding, title and help
	available := v.height - 8
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	n := len(v.buildContent()) - v.visibleLines()
	if n < 0 {
		return 0
	}
	return n
}

// Title returns the heading of the current modal.
func (v *View) Title() string {
	switch v.kind {
	case driven.ModalAbout:
		return "About " + v.cfg.AppName
	case driven.ModalSupport:
		return "Support"
	default:
		return ""
	}
}

func (v *View) buildContent() []string {
	switch v.kind {
	case driven.ModalAbout:
		lines := []string{
			v.cfg.AppDescription,
			"",
			fmt.Sprintf("Version:  %s", v.cfg.AppVersion),
			fmt.Sprintf("Website:  %s", domain.DeepLinkBase),
		}
		if v.cfg.PrivacyURL != "" {
			lines = append(lines, fmt.Sprintf("Privacy:  %s", v.cfg.PrivacyURL))
		}
		return append(lines,
			"",
			"Type or paste Zawgyi or Unicode text. The encoding is detected",
			"automatically; press tab to choose it yourself.",
		)

	case driven.ModalSupport:
		lines := []string{
			"Found a conversion error or have a suggestion?",
			"",
			fmt.Sprintf("Support:  %s", domain.DeepLinkSupport),
		}
		for _, l := range v.cfg.NavLinks {
			lines = append(lines, fmt.Sprintf("%-9s %s", l.Label+":", l.URL))
		}
		return lines

	default:
		return nil
	}
}

// View renders the modal box.
func (v *View) View() string {
	lines := v.buildContent()
	end := v.scrollOffset + v.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	start := v.scrollOffset
	if start > end {
		start = end
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.Title()))
	b.WriteString("\n\n")
	for _, line := range lines[start:end] {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] close"))

	return v.styles.Modal.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// SetStyles restyles the modal after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	if s != nil {
		v.styles = s
	}
}

// SetAppConfig replaces the metadata shown in the modals.
func (v *View) SetAppConfig(cfg domain.AppConfig) {
	v.cfg = cfg
}

// ScrollOffset returns the current scroll position.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
