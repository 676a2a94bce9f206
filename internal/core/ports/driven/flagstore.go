package driven

import "context"

// FlagStore is a small persistent key-value store of booleans.
type FlagStore interface {
	// GetFlag returns the flag value and whether it exists.
	GetFlag(ctx context.Context, key string) (value bool, found bool, err error)

	// SetFlag stores a flag value.
	SetFlag(ctx context.Context, key string, value bool) error
}

// CounterStore keeps persistent usage counters.
type CounterStore interface {
	// Increment adds one to the counter and returns the new value.
	Increment(ctx context.Context, key string) (int, error)

	// Count returns the counter value, zero if it was never incremented.
	Count(ctx context.Context, key string) (int, error)

	// Reset sets the counter back to zero.
	Reset(ctx context.Context, key string) error
}
