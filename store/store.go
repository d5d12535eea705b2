// Package store persists the serialized documents the toggle service
// edits.
//
// Rendered-mode toggles read the whole document, compute the replacement
// in memory, and overwrite the document wholesale. Store is that
// contract. FileStore backs it with the OS file system, Memory keeps
// documents in memory for tests and embedding hosts, and Watcher reports
// external writes so embedders can invalidate memoized toggles and
// re-render.
package store

import "context"

// Store reads and replaces whole serialized documents.
type Store interface {
	// Read returns the full document text.
	Read(ctx context.Context, name string) (string, error)

	// Overwrite replaces the full document text.
	Overwrite(ctx context.Context, name string, text string) error
}
