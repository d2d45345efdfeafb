package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "wrapped vendor not found",
			err:         fmt.Errorf("load vendor: %w", ErrVendorNotFound),
			wantCode:    "VND001",
			wantMessage: "Vendor not found",
		},
		{
			name:        "missing required field",
			err:         fmt.Errorf("%w: LegalName", ErrMissingRequired),
			wantCode:    "VAL003",
			wantMessage: "Legal name and email are required",
		},
		{
			name:        "invalid kind",
			err:         fmt.Errorf("upload %q: %w", "passport", ErrInvalidKind),
			wantCode:    "VAL006",
			wantMessage: "Unknown document type",
		},
		{
			name:        "unauthorized",
			err:         ErrUnauthorized,
			wantCode:    "AUTH001",
			wantMessage: "unauthorized",
		},
		{
			name:        "not verified",
			err:         fmt.Errorf("certificate: %w", ErrNotVerified),
			wantCode:    "CERT001",
			wantMessage: "Not verified yet",
		},
		{
			name:     "upload limiter saturated",
			err:      ErrTooManyUploads,
			wantCode: "UPL002",
		},
		{
			name:     "storage failure",
			err:      fmt.Errorf("%w: w9: disk full", ErrStorage),
			wantCode: "FILE003",
		},
		{
			name:        "body too large",
			err:         errors.New("http: request body too large"),
			wantCode:    "FILE001",
			wantMessage: "Upload exceeds the maximum size",
		},
		{
			name:     "bad multipart",
			err:      errors.New("multipart: NextPart: EOF"),
			wantCode: "FILE002",
		},
		{
			name:        "connection refused",
			err:         errors.New("dial tcp: connection refused"),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "deadline exceeded",
			err:         context.DeadlineExceeded,
			wantCode:    "DB006",
			wantMessage: "Request timed out",
		},
		{
			name:        "generic timeout",
			err:         errors.New("i/o timeout"),
			wantCode:    "DB006",
			wantMessage: "Operation timed out",
		},
		{
			name:     "cancelled",
			err:      context.Canceled,
			wantCode: "UPL004",
		},
		{
			name:     "rate limit",
			err:      errors.New("Rate limit exceeded"),
			wantCode: "RATE001",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("something strange"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() Code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.wantMessage != "" && got.Message != tt.wantMessage {
				t.Errorf("MapError() Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapError_SentinelBeatsPattern(t *testing.T) {
	// Text mentions a timeout, but the wrapped sentinel decides.
	err := fmt.Errorf("lookup timeout: %w", ErrVendorNotFound)
	if got := MapError(err).Code; got != "VND001" {
		t.Errorf("MapError() Code = %q, want VND001", got)
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(ErrVendorNotFound)
	if !strings.Contains(got, "Vendor not found") || !strings.Contains(got, "(Code: VND001)") {
		t.Errorf("FormatUserError() = %q", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{ErrNotVerified, true},
		{errors.New("connection refused"), true},
	}
	for _, tt := range tests {
		if got := IsUserFacing(tt.err); got != tt.want {
			t.Errorf("IsUserFacing(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
