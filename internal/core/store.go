package core

import (
	"context"
	"io"
)

// Store persists vendors and documents.
// Implementations return an error wrapping ErrVendorNotFound from GetVendor
// when no row matches.
type Store interface {
	CreateVendor(ctx context.Context, v *Vendor) error
	GetVendor(ctx context.Context, id string) (*Vendor, error)
	// UpdateVendorScore writes only the score column.
	UpdateVendorScore(ctx context.Context, id string, score int) error
	// UpdateVendorStatus writes paid, score and verified together.
	UpdateVendorStatus(ctx context.Context, v *Vendor) error

	CreateDocument(ctx context.Context, d *Document) error
	ListDocuments(ctx context.Context, vendorID string) ([]Document, error)

	Ping(ctx context.Context) error
	Close() error
}

// FileStore writes uploaded document bytes somewhere durable and returns the
// path recorded on the Document row. The same inputs must yield the same path.
type FileStore interface {
	Save(ctx context.Context, vendorID string, kind DocumentKind, filename string, r io.Reader) (string, error)
}
