package configstore

import (
	_ "embed"
)

// Namespace is the logical partition holding the configuration blobs.
// Drivers prefix or scope their storage with it.
const Namespace = "admin-config"

// Key identifies one of the two configuration blobs.
type Key string

// The two configuration keys. Their string values are the store keys.
const (
	KeyKnowledgeBase      Key = "knowledge_base"
	KeySystemInstructions Key = "system_instructions"
)

// Keys lists all known configuration keys.
func Keys() []Key {
	return []Key{KeyKnowledgeBase, KeySystemInstructions}
}

// Valid reports whether k is a known configuration key.
func (k Key) Valid() bool {
	return k == KeyKnowledgeBase || k == KeySystemInstructions
}

// Compiled-in default values, embedded at build time.
var (
	//go:embed defaults/knowledge_base.md
	defaultKnowledgeBase string

	//go:embed defaults/system_instructions.md
	defaultSystemInstructions string
)

// Default returns the compiled-in default value for k.
// Unknown keys default to the empty string.
func (k Key) Default() string {
	switch k {
	case KeyKnowledgeBase:
		return defaultKnowledgeBase
	case KeySystemInstructions:
		return defaultSystemInstructions
	default:
		return ""
	}
}
