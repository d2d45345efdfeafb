package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides every onboarding operation. It holds no global state; all
// dependencies are passed to NewService.
type Service struct {
	store   Store
	files   FileStore
	limiter *UploadLimiter
	now     func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps and certificate dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithUploadLimiter bounds concurrent document writes.
func WithUploadLimiter(l *UploadLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// NewService creates a Service backed by store for records and files for document bytes.
func NewService(store Store, files FileStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		files: files,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limiter == nil {
		s.limiter = NewUploadLimiter(DefaultMaxConcurrentUploads, DefaultMaxWaitTime)
	}
	return s
}

// GetVendor loads a vendor by id. Malformed ids are reported as not found.
func (s *Service) GetVendor(ctx context.Context, id string) (*Vendor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("vendor %q: %w", id, ErrVendorNotFound)
	}
	v, err := s.store.GetVendor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	return v, nil
}

// Ping checks the datastore.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// UploadLimiterStatus reports document write slot usage.
func (s *Service) UploadLimiterStatus() UploadLimiterStatus {
	return s.limiter.Status()
}

// WaitForUploads blocks until in-flight document writes finish or ctx ends.
func (s *Service) WaitForUploads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
