package cert

import (
	"bytes"
	"testing"
	"time"
)

func sample() Certificate {
	return Certificate{
		VendorName: "Acme LLC",
		Email:      "a@x.com",
		Tier:       "Prime-Ready (KYC/KYB)",
		Score:      100,
		IssuedAt:   time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC),
	}
}

func TestLines(t *testing.T) {
	want := []string{
		"Vendor: Acme LLC",
		"Email: a@x.com",
		"Tier: Prime-Ready (KYC/KYB)",
		"Score: 100/100",
		"Status: VERIFIED",
		"Issued: 2026-10-15",
	}

	got := sample().Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLines_IssuedDateIsUTC(t *testing.T) {
	c := sample()
	c.IssuedAt = time.Date(2026, 10, 15, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))

	if got := c.Lines()[5]; got != "Issued: 2026-10-16" {
		t.Errorf("issued line = %q, want UTC date 2026-10-16", got)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sample()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}

	// Text operands are PDF literal strings, so parentheses are escaped.
	for _, want := range []string{
		Title,
		"Vendor: Acme LLC",
		`Tier: Prime-Ready \(KYC/KYB\)`,
		"Score: 100/100",
		"Issued: 2026-10-15",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("PDF does not contain %q", want)
		}
	}
}
