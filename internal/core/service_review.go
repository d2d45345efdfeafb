package core

import (
	"context"
	"fmt"
)

// Review is the read-only summary shown before payment.
type Review struct {
	Vendor    *Vendor
	Documents []Document
	Score     int
	Price     int
	Tier      string
}

// Review aggregates a vendor, its documents, the computed score and price.
// Nothing is written.
func (s *Service) Review(ctx context.Context, vendorID string) (*Review, error) {
	v, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.ListDocuments(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	kinds := make([]DocumentKind, len(docs))
	for i, d := range docs {
		kinds[i] = d.Kind
	}

	return &Review{
		Vendor:    v,
		Documents: docs,
		Score:     ComputeScore(kinds),
		Price:     Price(v),
		Tier:      Tier(v),
	}, nil
}

// Verification is what the public verification page shows.
type Verification struct {
	Vendor *Vendor
	Tier   string
}

// Verify recomputes the vendor's score and persists it. Verified is left as
// stored: only MarkPaid re-derives it, so a vendor who completes documents
// after payment stays unverified until an admin confirms again.
func (s *Service) Verify(ctx context.Context, vendorID string) (*Verification, error) {
	v, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	score, err := s.Score(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("compute score: %w", err)
	}
	if err := s.store.UpdateVendorScore(ctx, v.ID, score); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}
	v.Score = score

	return &Verification{Vendor: v, Tier: Tier(v)}, nil
}
