package core

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/onboard/internal/logging"
	"github.com/google/uuid"
)

// UploadedFile is one file part of the upload form.
type UploadedFile struct {
	Kind     DocumentKind
	Filename string
	Content  io.Reader
}

// UploadDocuments stores each file and records a Document per stored file.
// Parts with an empty filename are skipped, so submitting nothing is valid.
// Every file is written before any Document row is recorded, so a failed
// part leaves no rows for the request.
func (s *Service) UploadDocuments(ctx context.Context, vendorID string, files []UploadedFile) ([]Document, error) {
	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	log := logging.ForVendor(ctx, vendorID)
	var pending []Document

	for _, f := range files {
		if f.Filename == "" || f.Content == nil {
			continue
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("upload %q: %w", f.Kind, ErrInvalidKind)
		}

		path, err := s.saveFile(ctx, vendorID, f)
		if err != nil {
			return nil, err
		}
		log.Info("document stored", "kind", f.Kind, "path", path)
		pending = append(pending, Document{
			ID:         uuid.NewString(),
			VendorID:   vendorID,
			Kind:       f.Kind,
			Path:       path,
			UploadedAt: s.now().UTC(),
		})
	}

	for i := range pending {
		if err := s.store.CreateDocument(ctx, &pending[i]); err != nil {
			return pending[:i], fmt.Errorf("record %s document: %w", pending[i].Kind, err)
		}
	}

	log.Info("upload complete", "stored", len(pending))
	return pending, nil
}

func (s *Service) saveFile(ctx context.Context, vendorID string, f UploadedFile) (string, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return "", err
	}
	path, err := s.files.Save(ctx, vendorID, f.Kind, f.Filename, f.Content)
	s.limiter.Release()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrStorage, f.Kind, err)
	}
	return path, nil
}
