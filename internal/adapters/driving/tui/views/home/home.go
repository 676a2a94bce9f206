// Package home provides the converter screen: source text, encoding
// selector and converted output.
package home

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/components/input"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// ErrNothingToCopy is returned when the output area is empty.
var ErrNothingToCopy = errors.New("nothing to copy")

// Default area headings when no encoding is known.
const (
	sourceHeading = "INPUT"
	outputHeading = "OUTPUT"
)

// View is the converter screen.
type View struct {
	styles    *styles.Styles
	converter driving.ConverterService
	copyText  func(string) error
	title     string

	source *input.Area
	output *input.Area

	snapshot domain.Snapshot
	mode     domain.EncodingMode

	// pending holds source texts typed here that no snapshot has caught
	// up with yet. A snapshot carrying any other text came from elsewhere.
	pending map[string]struct{}

	minRows int
	width   int
	height  int
}

// NewView creates the converter screen. copyText may be nil.
func NewView(s *styles.Styles, converter driving.ConverterService, cfg domain.AppConfig, copyText func(string) error) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:    s,
		converter: converter,
		copyText:  copyText,
		title:     cfg.AppName,
		source:    input.NewArea(s, sourceHeading, false),
		output:    input.NewArea(s, outputHeading, true),
		mode:      domain.EncodingAuto,
		pending:   make(map[string]struct{}),
		minRows:   domain.TextAreaMinRows(0),
		width:     80,
		height:    24,
	}
	v.ApplySnapshot(domain.Snapshot{Mode: domain.EncodingAuto, Labels: domain.AutoLabels()})
	v.layout()
	return v
}

// Init focuses the source area.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.source.Focus(), v.source.Init())
}

// Update handles keys for the converter screen. Edits are handed to the
// pipeline synchronously so they reach it in typing order.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.source, cmd = v.source.Update(msg)
		return v, cmd
	}

	switch km.String() {
	case "tab":
		v.mode = v.mode.Next()
		return v, v.errCmd(v.converter.SetEncoding(v.mode))

	case "ctrl+l":
		v.source.Reset()
		return v, v.submit()

	case "ctrl+y":
		return v, v.copyOutput()
	}

	before := v.source.Value()
	var cmd tea.Cmd
	v.source, cmd = v.source.Update(msg)
	if v.source.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.submit())
}

func (v *View) submit() tea.Cmd {
	text := v.source.Value()
	v.pending[text] = struct{}{}
	return v.errCmd(v.converter.SetText(text, domain.ProvenanceDirect))
}

func (v *View) copyOutput() tea.Cmd {
	out := v.output.Value()
	copyFn := v.copyText
	return func() tea.Msg {
		if copyFn == nil {
			return messages.Copied{Err: domain.ErrNotSupported}
		}
		if out == "" {
			return messages.Copied{Err: ErrNothingToCopy}
		}
		return messages.Copied{Err: copyFn(out)}
	}
}

func (v *View) errCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
}

// ApplySnapshot shows pipeline state: output, labels and placeholders.
// Source text handed off from elsewhere replaces the source area.
func (v *View) ApplySnapshot(snap domain.Snapshot) {
	v.snapshot = snap
	if snap.Mode.IsValid() {
		v.mode = snap.Mode
	}

	current := v.source.Value()
	if snap.SourceText == current {
		clear(v.pending)
	} else if _, ours := v.pending[snap.SourceText]; !ours {
		v.source.SetValue(snap.SourceText)
		clear(v.pending)
	}

	v.output.SetValue(snap.OutputText)
	v.source.SetPlaceholder(snap.SourcePlaceholder())
	v.output.SetPlaceholder(snap.TargetPlaceholder())
	v.source.SetLabel(headingOr(snap.SourceEncLabel(), sourceHeading))
	v.output.SetLabel(headingOr(snap.TargetEncLabel(), outputHeading))
}

func headingOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// View renders the header, both areas and the selector.
func (v *View) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Title.Render(v.title),
		"  ",
		v.styles.Selector.Render("[ "+v.Selector()+" ]"),
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(v.source.View())
	b.WriteString("\n")
	b.WriteString(v.output.View())
	return b.String()
}

// Selector returns the encoding selector text.
func (v *View) Selector() string {
	return v.snapshot.FontEncSelected()
}

// Mode returns the requested encoding mode.
func (v *View) Mode() domain.EncodingMode {
	return v.mode
}

// Source returns the source text.
func (v *View) Source() string {
	return v.source.Value()
}

// Output returns the converted text.
func (v *View) Output() string {
	return v.output.Value()
}

// SourceArea exposes the source area for inspection.
func (v *View) SourceArea() *input.Area {
	return v.source
}

// OutputArea exposes the output area for inspection.
func (v *View) OutputArea() *input.Area {
	return v.output
}

// Focus focuses the source area.
func (v *View) Focus() tea.Cmd {
	return v.source.Focus()
}

// Blur removes focus from the source area.
func (v *View) Blur() {
	v.source.Blur()
}

// SetMinRows sets the minimum text rows per area.
func (v *View) SetMinRows(rows int) {
	v.minRows = rows
	v.layout()
}

// SetDimensions sets the available size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.layout()
}

// layout sizes both areas to minRows, shrinking to fit short terminals.
func (v *View) layout() {
	rows := v.minRows
	// Header, labels, borders and the status bar take ten lines.
	if avail := (v.height - 10) / 2; avail >= 1 && rows > avail {
		rows = avail
	}
	v.source.SetSize(v.width, rows)
	v.output.SetSize(v.width, rows)
}

// SetStyles restyles the screen after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	if s == nil {
		return
	}
	v.styles = s
	v.source.SetStyles(s)
	v.output.SetStyles(s)
}
