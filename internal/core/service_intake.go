package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// IntakeRequest is the raw intake form.
type IntakeRequest struct {
	LegalName  string `validate:"required"`
	Email      string `validate:"required"`
	Phone      string
	Category   string
	City       string
	State      string
	VendorType string
	// KYBKYC is the form choice; only "yes" opts in.
	KYBKYC string
}

// normalize trims every free-text field.
func (r IntakeRequest) normalize() IntakeRequest {
	r.LegalName = strings.TrimSpace(r.LegalName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Category = strings.TrimSpace(r.Category)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	return r
}

// Intake validates the form and creates a new, unpaid, unverified vendor.
// Empty legal name or email yields ErrMissingRequired and nothing is stored.
func (s *Service) Intake(ctx context.Context, req IntakeRequest) (*Vendor, error) {
	req = req.normalize()

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fe.Field()
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("validate intake: %w", err)
	}

	v := &Vendor{
		ID:         uuid.NewString(),
		LegalName:  req.LegalName,
		Email:      req.Email,
		Phone:      req.Phone,
		Category:   req.Category,
		City:       req.City,
		State:      req.State,
		VendorType: ParseVendorType(req.VendorType),
		KYBKYC:     req.KYBKYC == "yes",
		CreatedAt:  s.now().UTC(),
	}

	if err := s.store.CreateVendor(ctx, v); err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return v, nil
}
