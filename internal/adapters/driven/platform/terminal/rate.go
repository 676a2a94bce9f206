package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure RatePrompter implements the interface.
var _ driven.RatePrompter = (*RatePrompter)(nil)

// Counter keys used by RatePrompter.
const (
	rateUsesKey     = "rate.uses"
	ratePromptedKey = "rate.prompted"
)

// RatePromptDuration is how long the rating notice stays visible.
const RatePromptDuration = 6 * time.Second

// RatePrompter shows the rating prompt as a notice pointing at the store
// page. Launches are counted in a CounterStore; the deferred prompt is
// shown once UsesUntilPrompt launches have been seen.
type RatePrompter struct {
	counters driven.CounterStore
	version  string

	mu       sync.Mutex
	prefs    domain.RatePreferences
	notifier driven.Notifier
}

// NewRatePrompter creates a prompter. version scopes the "already
// prompted" marker when PromptAgainForEachNewVersion is set.
func NewRatePrompter(counters driven.CounterStore, version string) *RatePrompter {
	return &RatePrompter{counters: counters, version: version}
}

// SetNotifier sets where the prompt is shown. The TUI sets itself once
// it is running.
func (r *RatePrompter) SetNotifier(n driven.Notifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifier = n
}

// SetPreferences stores the prompt preferences.
func (r *RatePrompter) SetPreferences(prefs domain.RatePreferences) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = prefs
}

// Prompt shows the prompt now, or when immediately is false, only if
// enough launches were counted and it was not shown before.
func (r *RatePrompter) Prompt(ctx context.Context, immediately bool) error {
	r.mu.Lock()
	prefs := r.prefs
	notifier := r.notifier
	r.mu.Unlock()

	if !immediately {
		due, err := r.due(ctx, prefs)
		if err != nil || !due {
			return err
		}
	}

	if notifier == nil {
		return domain.ErrNotSupported
	}
	if err := notifier.Toast(ctx, domain.Toast{
		Message:  RateMessage(prefs),
		Duration: RatePromptDuration,
	}); err != nil {
		return err
	}

	if r.counters == nil {
		return nil
	}
	_, err := r.counters.Increment(ctx, r.promptedKey(prefs))
	return err
}

func (r *RatePrompter) due(ctx context.Context, prefs domain.RatePreferences) (bool, error) {
	if r.counters == nil {
		return false, nil
	}
	prompted, err := r.counters.Count(ctx, r.promptedKey(prefs))
	if err != nil || prompted > 0 {
		return false, err
	}
	uses, err := r.counters.Increment(ctx, rateUsesKey)
	if err != nil {
		return false, err
	}
	return uses >= prefs.UsesUntilPrompt, nil
}

func (r *RatePrompter) promptedKey(prefs domain.RatePreferences) string {
	if prefs.PromptAgainForEachNewVersion && r.version != "" {
		return ratePromptedKey + ".v" + r.version
	}
	return ratePromptedKey
}

// RateMessage formats the prompt text with the first known store URL.
func RateMessage(prefs domain.RatePreferences) string {
	msg := prefs.Locale.Title
	if msg == "" {
		msg = "Enjoying " + prefs.DisplayAppName + "?"
	}
	for _, url := range []string{prefs.StoreAppURL.Android, prefs.StoreAppURL.IOS, prefs.StoreAppURL.Windows} {
		if url != "" {
			return msg + " " + prefs.Locale.RateButtonLabel + ": " + url
		}
	}
	return msg
}
