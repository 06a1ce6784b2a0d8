// Package configstore persists the admin-editable configuration blobs:
// the knowledge base and the system instructions.
//
// Both blobs live under a single namespace. A missing blob is the default
// state — Get signals absence instead of failing, and Resolve falls back to
// the compiled-in defaults. Writes are last-write-wins; two concurrent admin
// saves race and the later completion wins, which is accepted.
//
// Three drivers implement the Store interface: memory (tests and local dev),
// redis, and postgres. Resolve is called fresh on every chat request, so an
// admin edit takes effect on the very next message without invalidation
// machinery.
package configstore
