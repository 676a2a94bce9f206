package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure ClipboardShare implements the interface.
var _ driven.ShareSheet = (*ClipboardShare)(nil)

// ClipboardShare "shares" by copying the share message to the clipboard.
type ClipboardShare struct {
	write       func(string) error
	unsupported bool
}

// NewClipboardShare creates a share sheet backed by the system clipboard.
func NewClipboardShare() *ClipboardShare {
	return &ClipboardShare{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// ShareText formats the share message.
func ShareText(s domain.SocialSharing) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Subject, s.Message, s.LinkURL} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// Share copies the message to the clipboard.
func (c *ClipboardShare) Share(ctx context.Context, s domain.SocialSharing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return domain.ErrNotSupported
	}
	text := ShareText(s)
	if text == "" {
		return fmt.Errorf("%w: empty share message", domain.ErrInvalidInput)
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Copy writes text to the clipboard as is.
func (c *ClipboardShare) Copy(text string) error {
	if c.unsupported {
		return domain.ErrNotSupported
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
