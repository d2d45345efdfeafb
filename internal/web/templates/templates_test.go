package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/onboard/internal/core"
)

func TestUploadPage_EscapesVendorName(t *testing.T) {
	v := &core.Vendor{ID: "v1", LegalName: `<script>alert("x")</script>`}

	var b strings.Builder
	if err := UploadPage(v, 1000, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	if strings.Contains(out, "<script>") {
		t.Error("vendor name rendered unescaped")
	}
	for _, k := range core.RequiredKinds {
		if !strings.Contains(out, `name="`+string(k)+`" type="file"`) {
			t.Errorf("missing file input for %s", k)
		}
	}
}

func TestLayout_RendersFlashes(t *testing.T) {
	var b strings.Builder
	flashes := []Flash{{Category: "danger", Message: "Legal name and email are required"}}
	if err := IntakePage(flashes).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, `data-category="danger"`) || !strings.Contains(out, "Legal name and email are required") {
		t.Errorf("flash not rendered: %s", out)
	}
	if !strings.HasSuffix(out, "</body></html>") {
		t.Error("layout not closed")
	}
}

func TestVerifyPage_CertificateLinkOnlyWhenVerified(t *testing.T) {
	v := &core.Vendor{ID: "v1", LegalName: "Acme", Score: 100, CreatedAt: time.Now()}

	var unverified strings.Builder
	if err := VerifyPage(&core.Verification{Vendor: v, Tier: core.TierCityReady}, nil).Render(context.Background(), &unverified); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(unverified.String(), "/cert/v1.pdf") {
		t.Error("certificate link shown for unverified vendor")
	}

	v.Verified = true
	var verified strings.Builder
	if err := VerifyPage(&core.Verification{Vendor: v, Tier: core.TierCityReady}, nil).Render(context.Background(), &verified); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(verified.String(), "/cert/v1.pdf") {
		t.Error("certificate link missing for verified vendor")
	}
}

func TestErrorAlert(t *testing.T) {
	var b strings.Builder
	if err := ErrorAlert("Vendor not found", "Check the link & try again.", "VND001").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"<title>Error | CyberCore Vendor Onboarding</title>",
		"<h1>Vendor not found</h1>",
		"Check the link &amp; try again.",
		"Error code: VND001",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}
	if !strings.HasSuffix(out, "</body></html>") {
		t.Error("error page rendered outside the layout")
	}
}

func TestReviewPage(t *testing.T) {
	v := &core.Vendor{ID: "v1", LegalName: "Acme", VendorType: core.VendorPrime, KYBKYC: true}
	rev := &core.Review{
		Vendor: v,
		Documents: []core.Document{
			{Kind: core.KindW9, UploadedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)},
		},
		Score: 25,
		Price: core.Price(v),
		Tier:  core.Tier(v),
	}

	var b strings.Builder
	if err := ReviewPage(rev, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"<strong>25/100</strong>",
		"<strong>$1,500</strong>",
		"Prime-Ready (KYC/KYB)",
		"<td>W-9</td><td>2026-10-15 09:30 UTC</td>",
		`href="/upload/v1"`,
		`href="/verify/v1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}
	if strings.Contains(out, "No documents uploaded yet.") {
		t.Error("empty-state text shown alongside documents")
	}
}

func TestIntakePage_RequiredFields(t *testing.T) {
	var b strings.Builder
	if err := IntakePage(nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	for _, want := range []string{
		`<input id="legal_name" name="legal_name" type="text" required>`,
		`<input id="email" name="email" type="email" required>`,
		`<input id="phone" name="phone" type="tel">`,
		`<form method="post" action="/intake">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}
