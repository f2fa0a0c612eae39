package config

import "context"

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads all documents from the given paths (files or directories),
	// translates them into the format-agnostic model, and merges host groups
	// that appear in both the blueprint and the topology document.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
