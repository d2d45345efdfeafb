// Package cert renders the verified-vendor certificate as a one-page PDF.
package cert

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Title is printed at the top of every certificate.
const Title = "CyberCore Verified Vendor Certificate"

// Layout, in points from the bottom-left corner of a US Letter page.
const (
	marginLeft  = 72.0
	titleY      = 730.0
	firstLineY  = 700.0
	lineSpacing = 20.0
)

// Certificate holds the values printed on the page.
type Certificate struct {
	VendorName string
	Email      string
	Tier       string
	Score      int
	IssuedAt   time.Time
}

// Lines returns the body lines in print order.
func (c Certificate) Lines() []string {
	return []string{
		"Vendor: " + c.VendorName,
		"Email: " + c.Email,
		"Tier: " + c.Tier,
		fmt.Sprintf("Score: %d/100", c.Score),
		"Status: VERIFIED",
		"Issued: " + c.IssuedAt.UTC().Format("2006-01-02"),
	}
}

// Render writes the certificate PDF to w. Content streams are left
// uncompressed so the text stays searchable.
func Render(w io.Writer, c Certificate) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetTitle(Title, true)
	pdf.SetCreationDate(c.IssuedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()
	// Core fonts are cp1252; translate so accented vendor names print correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginLeft, pageHeight-titleY, Title)

	pdf.SetFont("Helvetica", "", 12)
	y := firstLineY
	for _, line := range c.Lines() {
		pdf.Text(marginLeft, pageHeight-y, tr(line))
		y -= lineSpacing
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return nil
}
