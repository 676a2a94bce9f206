package driving

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// ShellService is the application shell: lifecycle wiring, modals,
// drawer menu, sharing, rating and the back-button policy.
type ShellService interface {
	// Ready runs the platform-ready flow. It returns after the welcome
	// screen and launch intent have been handled; link and lifecycle
	// subscriptions keep running until ctx is done.
	Ready(ctx context.Context) error

	// Theme returns the theme resolved during Ready.
	Theme() domain.Theme

	// AppConfig returns the application metadata.
	AppConfig() domain.AppConfig

	// TextAreaMinRows returns the minimum source/output rows for the screen.
	TextAreaMinRows() int

	// Back applies the hardware back-button policy.
	Back(ctx context.Context) error

	// ToggleMenu opens or closes the drawer menu.
	ToggleMenu(ctx context.Context) error

	// CloseMenu closes the drawer menu if it is open.
	CloseMenu(ctx context.Context) error

	// ShowAbout presents the About modal.
	ShowAbout(ctx context.Context) error

	// ShowSupport presents the Support modal.
	ShowSupport(ctx context.Context) error

	// Share shares the app through the platform share facility.
	Share(ctx context.Context) error

	// PromptForRating shows the rating prompt immediately.
	PromptForRating(ctx context.Context) error

	// HandleIntent feeds text handed off by another app into the pipeline.
	HandleIntent(ctx context.Context, intent *domain.Intent) error

	// HandleDeepLink routes a dynamic link.
	HandleDeepLink(ctx context.Context, link domain.DeepLink) error
}
