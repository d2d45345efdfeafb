// Package files stores uploaded vendor documents on the local filesystem.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/onboard/internal/core"
)

// Disk writes documents into a single directory.
type Disk struct {
	dir string
}

// NewDisk creates dir if needed and returns a Disk rooted there.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Dir returns the root directory.
func (d *Disk) Dir() string { return d.dir }

// Name returns the stored file name for a document:
// {vendor_id}_{kind}_{filename}, with the vendor id and filename sanitised.
func Name(vendorID string, kind core.DocumentKind, filename string) string {
	return core.SafeName(vendorID, "vendor") + "_" + string(kind) + "_" + core.SafeName(filename, "file")
}

// Save copies r to the document's deterministic path, replacing any earlier
// file at that path, and returns the path.
func (d *Disk) Save(ctx context.Context, vendorID string, kind core.DocumentKind, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest := filepath.Join(d.dir, Name(vendorID, kind, filename))
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", dest, err)
	}
	return dest, nil
}
