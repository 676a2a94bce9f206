package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

var (
	_ driven.ModalController = (*Bridge)(nil)
	_ driven.MenuController  = (*Bridge)(nil)
	_ driven.Notifier        = (*Bridge)(nil)
	_ driven.Exiter          = (*Bridge)(nil)
)

type modalEntry struct {
	kind      driven.ModalKind
	dismissed chan struct{}
}

// Bridge holds the modal stack, drawer state and notices the shell
// drives, and forwards every change to the running program. The shell
// calls it from its own goroutines; the App only reads it.
type Bridge struct {
	mu       sync.Mutex
	send     func(tea.Msg)
	modals   []modalEntry
	menuOpen bool
	toastSeq uint64
}

// NewBridge creates a bridge with nothing attached.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the function used to deliver messages, normally
// (*tea.Program).Send. Messages sent before Attach are dropped.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Send delivers msg to the program, if one is attached.
// It must not be called from the program's Update.
func (b *Bridge) Send(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// Present pushes a modal. The returned channel is closed on dismissal.
func (b *Bridge) Present(ctx context.Context, kind driven.ModalKind) (<-chan struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kind == driven.ModalNone {
		return nil, fmt.Errorf("%w: modal kind is required", domain.ErrInvalidInput)
	}

	b.mu.Lock()
	entry := modalEntry{kind: kind, dismissed: make(chan struct{})}
	b.modals = append(b.modals, entry)
	b.mu.Unlock()

	b.Send(messages.ChromeChanged{})
	return entry.dismissed, nil
}

// Top returns the topmost modal, or ModalNone.
func (b *Bridge) Top(_ context.Context) (driven.ModalKind, error) {
	return b.TopModal(), nil
}

// TopModal is Top without a context, for rendering.
func (b *Bridge) TopModal() driven.ModalKind {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.modals) == 0 {
		return driven.ModalNone
	}
	return b.modals[len(b.modals)-1].kind
}

// Dismiss closes the topmost modal. It is a no-op when none is open.
func (b *Bridge) Dismiss(_ context.Context) error {
	b.mu.Lock()
	if len(b.modals) == 0 {
		b.mu.Unlock()
		return nil
	}
	top := b.modals[len(b.modals)-1]
	b.modals = b.modals[:len(b.modals)-1]
	b.mu.Unlock()

	close(top.dismissed)
	b.Send(messages.ChromeChanged{})
	return nil
}

// DismissAll closes every modal without notifying the program.
// Used on shutdown so waiters are released.
func (b *Bridge) DismissAll() {
	b.mu.Lock()
	modals := b.modals
	b.modals = nil
	b.mu.Unlock()

	for i := len(modals) - 1; i >= 0; i-- {
		close(modals[i].dismissed)
	}
}

// IsOpen reports whether the drawer menu is open.
func (b *Bridge) IsOpen(_ context.Context) (bool, error) {
	return b.MenuOpen(), nil
}

// MenuOpen is IsOpen without a context, for rendering.
func (b *Bridge) MenuOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.menuOpen
}

// Close closes the drawer menu.
func (b *Bridge) Close(_ context.Context) error {
	b.mu.Lock()
	changed := b.menuOpen
	b.menuOpen = false
	b.mu.Unlock()

	if changed {
		b.Send(messages.ChromeChanged{})
	}
	return nil
}

// Toggle opens or closes the drawer menu.
func (b *Bridge) Toggle(_ context.Context) (bool, error) {
	b.mu.Lock()
	b.menuOpen = !b.menuOpen
	open := b.menuOpen
	b.mu.Unlock()

	b.Send(messages.ChromeChanged{})
	return open, nil
}

// Toast shows a notice in the status bar.
func (b *Bridge) Toast(ctx context.Context, t domain.Toast) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	b.toastSeq++
	id := b.toastSeq
	b.mu.Unlock()

	b.Send(messages.ToastShown{ID: id, Toast: t})
	return nil
}

// Exit asks the program to quit.
func (b *Bridge) Exit() {
	b.Send(tea.QuitMsg{})
}
