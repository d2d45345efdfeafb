package core

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/JonMunkholm/onboard/internal/cert"
	"github.com/JonMunkholm/onboard/internal/logging"
)

// CheckAdminKey compares key with secret in constant time and returns
// ErrUnauthorized on mismatch. An empty secret never matches.
func CheckAdminKey(key, secret string) error {
	if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// MarkPaid confirms payment: it sets Paid, recomputes the score and derives
// Verified as Paid && Score == 100. Callers must have checked the admin secret.
func (s *Service) MarkPaid(ctx context.Context, vendorID string) (*Vendor, error) {
	v, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	score, err := s.Score(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("compute score: %w", err)
	}

	v.Paid = true
	v.Score = score
	v.Verified = v.Paid && v.Score == 100

	if err := s.store.UpdateVendorStatus(ctx, v); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	logging.ForVendor(ctx, v.ID).Info("vendor marked paid",
		"score", v.Score,
		"verified", v.Verified,
		"ip", IPAddressFromContext(ctx),
		"user_agent", UserAgentFromContext(ctx),
	)
	return v, nil
}

// IssuedCertificate is a rendered certificate ready for download.
type IssuedCertificate struct {
	Filename string
	PDF      []byte
}

// IssueCertificate renders the certificate for a verified vendor. The issue
// date is the render date. Unverified vendors get ErrNotVerified.
func (s *Service) IssueCertificate(ctx context.Context, vendorID string) (*IssuedCertificate, error) {
	v, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !v.Verified {
		return nil, fmt.Errorf("certificate for %s: %w", v.ID, ErrNotVerified)
	}

	var buf bytes.Buffer
	err = cert.Render(&buf, cert.Certificate{
		VendorName: v.LegalName,
		Email:      v.Email,
		Tier:       Tier(v),
		Score:      v.Score,
		IssuedAt:   s.now(),
	})
	if err != nil {
		return nil, err
	}

	return &IssuedCertificate{
		Filename: "cybercore_cert_" + SafeName(v.LegalName, "vendor") + ".pdf",
		PDF:      buf.Bytes(),
	}, nil
}
