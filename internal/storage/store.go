// Package storage holds the receipt blob backends. A stored file is
// addressed by a collision-resistant key and exposed through a stable
// public URL; the database row only keeps that reference.
package storage

import (
	"context"
	"io"
)

// ReceiptStore is durable blob storage for uploaded receipt files.
type ReceiptStore interface {
	// Save writes the blob under key. Keys are expected to be unique;
	// an existing object under the same key is overwritten.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PublicURL returns the stable retrieval reference for a stored key.
	PublicURL(key string) string
}
