package terminal

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure Platform implements the interface.
var _ driven.Platform = (*Platform)(nil)

// PixelsPerRow approximates one terminal row in device-independent pixels.
const PixelsPerRow = 20

// defaultRows is used when the terminal size cannot be read.
const defaultRows = 24

// Platform is the terminal host.
type Platform struct {
	fd        int
	size      func(fd int) (width, height int, err error)
	lifecycle chan driven.LifecycleEvent
}

// New creates a terminal platform reading its size from stdout.
func New() *Platform {
	return &Platform{
		fd:        int(os.Stdout.Fd()),
		size:      term.GetSize,
		lifecycle: make(chan driven.LifecycleEvent, 4),
	}
}

// Name returns "terminal".
func (p *Platform) Name() string {
	return domain.PlatformTerminal
}

// Is reports whether name is "terminal".
func (p *Platform) Is(name string) bool {
	return name == domain.PlatformTerminal
}

// Height returns the terminal height scaled to pixels.
func (p *Platform) Height() int {
	return p.Rows() * PixelsPerRow
}

// Rows returns the terminal height in rows.
func (p *Platform) Rows() int {
	_, rows, err := p.size(p.fd)
	if err != nil || rows <= 0 {
		return defaultRows
	}
	return rows
}

// Ready returns immediately; a terminal needs no warm-up.
func (p *Platform) Ready(ctx context.Context) error {
	return ctx.Err()
}

// Lifecycle returns pause/resume signals fed by Pause and Resume.
func (p *Platform) Lifecycle() <-chan driven.LifecycleEvent {
	return p.lifecycle
}

// Pause signals that the terminal lost focus.
func (p *Platform) Pause() {
	p.send(driven.LifecyclePause)
}

// Resume signals that the terminal regained focus.
func (p *Platform) Resume() {
	p.send(driven.LifecycleResume)
}

// send drops the event when nobody is listening.
func (p *Platform) send(ev driven.LifecycleEvent) {
	select {
	case p.lifecycle <- ev:
	default:
	}
}
