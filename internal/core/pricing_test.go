package core

import (
	"errors"
	"testing"
)

func TestPriceAndTier(t *testing.T) {
	tests := []struct {
		vendorType VendorType
		kybkyc     bool
		wantPrice  int
		wantTier   string
	}{
		{VendorLocal, false, 1000, "City-Ready"},
		{VendorLocal, true, 1000, "City-Ready"},
		{VendorSub, false, 1000, "City-Ready"},
		{VendorSub, true, 1500, "Prime-Ready (KYC/KYB)"},
		{VendorPrime, false, 1000, "City-Ready"},
		{VendorPrime, true, 1500, "Prime-Ready (KYC/KYB)"},
	}

	for _, tt := range tests {
		v := &Vendor{VendorType: tt.vendorType, KYBKYC: tt.kybkyc}
		if got := Price(v); got != tt.wantPrice {
			t.Errorf("Price(%s, kybkyc=%v) = %d, want %d", tt.vendorType, tt.kybkyc, got, tt.wantPrice)
		}
		if got := Tier(v); got != tt.wantTier {
			t.Errorf("Tier(%s, kybkyc=%v) = %q, want %q", tt.vendorType, tt.kybkyc, got, tt.wantTier)
		}
	}
}

func TestParseVendorType(t *testing.T) {
	tests := map[string]VendorType{
		"local":    VendorLocal,
		"sub":      VendorSub,
		"prime":    VendorPrime,
		" Prime ":  VendorLocal,
		"SUB":      VendorLocal,
		"Prime":    VendorLocal,
		"":         VendorLocal,
		"supplier": VendorLocal,
	}
	for in, want := range tests {
		if got := ParseVendorType(in); got != want {
			t.Errorf("ParseVendorType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDollars(t *testing.T) {
	tests := map[int]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1,000",
		1500:    "$1,500",
		1234567: "$1,234,567",
		-2500:   "-$2,500",
	}
	for in, want := range tests {
		if got := Dollars(in); got != want {
			t.Errorf("Dollars(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckAdminKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		secret  string
		wantErr bool
	}{
		{"match", "s3cret", "s3cret", false},
		{"wrong", "guess", "s3cret", true},
		{"missing", "", "s3cret", true},
		{"prefix", "s3cre", "s3cret", true},
		{"empty secret", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdminKey(tt.key, tt.secret)
			if tt.wantErr && !errors.Is(err, ErrUnauthorized) {
				t.Errorf("CheckAdminKey() error = %v, want ErrUnauthorized", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckAdminKey() error = %v", err)
			}
		})
	}
}
