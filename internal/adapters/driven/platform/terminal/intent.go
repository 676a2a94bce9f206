package terminal

import (
	"context"
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure TextIntent implements the interface.
var _ driven.IntentSource = (*TextIntent)(nil)

// IntentActionSend is the action of text handed off from the command line.
const IntentActionSend = "android.intent.action.SEND"

// TextIntent hands text passed on the command line (or piped on stdin)
// to the shell as a launch intent. The intent is delivered once.
type TextIntent struct {
	mu         sync.Mutex
	text       string
	consumed   bool
	registered []string
}

// NewTextIntent creates an intent source for text. Empty text yields no intent.
func NewTextIntent(text string) *TextIntent {
	return &TextIntent{text: text}
}

// GetIntent returns the launch intent the first time it is called.
func (t *TextIntent) GetIntent(ctx context.Context) (*domain.Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.consumed || t.text == "" {
		return nil, nil
	}
	t.consumed = true
	return &domain.Intent{
		Action: IntentActionSend,
		Extras: map[string]string{domain.IntentExtraText: t.text},
	}, nil
}

// RegisterReceiver records the actions. Terminals have no broadcasts.
func (t *TextIntent) RegisterReceiver(actions []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.registered = append([]string(nil), actions...)
	return nil
}

// UnregisterReceiver clears the registered actions.
func (t *TextIntent) UnregisterReceiver() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.registered = nil
	return nil
}

// Registered returns the currently registered actions.
func (t *TextIntent) Registered() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.registered...)
}
