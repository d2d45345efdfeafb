package core

import "time"

// VendorType classifies a vendor's contracting role.
type VendorType string

const (
	VendorLocal VendorType = "local"
	VendorSub   VendorType = "sub"
	VendorPrime VendorType = "prime"
)

// ParseVendorType maps a form value to a VendorType. Only the exact
// lowercase values are recognised; anything else is VendorLocal.
func ParseVendorType(s string) VendorType {
	switch VendorType(s) {
	case VendorSub:
		return VendorSub
	case VendorPrime:
		return VendorPrime
	default:
		return VendorLocal
	}
}

// DocumentKind is one of the four document categories required for verification.
type DocumentKind string

const (
	KindInsurance DocumentKind = "insurance"
	KindLicense   DocumentKind = "license"
	KindW9        DocumentKind = "w9"
	KindPolicy    DocumentKind = "policy"
)

// RequiredKinds lists every document kind in upload-form order.
var RequiredKinds = []DocumentKind{KindInsurance, KindLicense, KindW9, KindPolicy}

// Valid reports whether k is one of RequiredKinds.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindInsurance, KindLicense, KindW9, KindPolicy:
		return true
	}
	return false
}

// Vendor is an entity going through onboarding.
type Vendor struct {
	ID         string     `json:"id"`
	LegalName  string     `json:"legal_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Category   string     `json:"category"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	VendorType VendorType `json:"vendor_type"`
	KYBKYC     bool       `json:"kybkyc"`
	Paid       bool       `json:"paid"`
	Score      int        `json:"score"`
	// Verified is only re-derived by MarkPaid; see Service.Verify.
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Document records one stored upload. VendorID is a plain reference with no
// storage-level constraint.
type Document struct {
	ID         string       `json:"id"`
	VendorID   string       `json:"vendor_id"`
	Kind       DocumentKind `json:"kind"`
	Path       string       `json:"path"`
	UploadedAt time.Time    `json:"uploaded_at"`
}
