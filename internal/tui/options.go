package tui

import (
	"time"

	"github.com/pablasso/taskapp/internal/store"
	"github.com/rs/zerolog"
)

// DefaultToastDuration is used when Options.ToastDuration is zero.
const DefaultToastDuration = 5 * time.Second

// Options configures TUI startup behavior.
type Options struct {
	// Client performs every store call. Required.
	Client store.API

	// Log receives UI-level events. The alt-screen owns the terminal, so it
	// should point at a file or io.Discard.
	Log zerolog.Logger

	// ToastDuration is how long notifications stay visible.
	ToastDuration time.Duration
}
