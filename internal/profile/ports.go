package profile

import (
	"context"

	"lynq/internal/core"
)

// Ports for user-data providers.
type (
	// Reader serves the raw profile document.
	Reader interface {
		ReadProfile(ctx context.Context) (core.Profile, error)
	}

	// Writer replaces the stored profile document. Read-only providers
	// (e.g. spreadsheets) do not implement it.
	Writer interface {
		WriteProfile(ctx context.Context, p core.Profile) error
	}
)
