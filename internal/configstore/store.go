package configstore

import (
	"context"
	"fmt"
)

// Store reads and writes the configuration blobs.
//
// Get never fails for a missing key — it signals absence via the bool so the
// caller can fall back to a default. Set is last-write-wins with no
// versioning. Storage and network errors propagate as errors.
type Store interface {
	// Get returns the stored value for key. The bool is false when no
	// value has been stored, which is not an error.
	Get(ctx context.Context, key Key) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key Key, value string) error

	// Close releases driver resources.
	Close() error
}

// EffectiveConfig is the configuration actually used for a request, after
// merging stored overrides with the compiled-in defaults.
type EffectiveConfig struct {
	KnowledgeBase      string
	SystemInstructions string
}

// Resolve derives the effective configuration: the stored override when
// present and non-empty, else the compiled-in default. It is called fresh
// per request — nothing is cached, so an admin write is observed by the
// next chat request.
func Resolve(ctx context.Context, store Store) (EffectiveConfig, error) {
	kb, err := resolveKey(ctx, store, KeyKnowledgeBase)
	if err != nil {
		return EffectiveConfig{}, err
	}

	instructions, err := resolveKey(ctx, store, KeySystemInstructions)
	if err != nil {
		return EffectiveConfig{}, err
	}

	return EffectiveConfig{
		KnowledgeBase:      kb,
		SystemInstructions: instructions,
	}, nil
}

// ResolveKey returns the effective value for a single key.
func ResolveKey(ctx context.Context, store Store, key Key) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return resolveKey(ctx, store, key)
}

func resolveKey(ctx context.Context, store Store, key Key) (string, error) {
	value, ok, err := store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", key, err)
	}
	if !ok || value == "" {
		return key.Default(), nil
	}
	return value, nil
}
