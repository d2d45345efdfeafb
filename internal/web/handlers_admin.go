package web

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/go-chi/chi/v5"
)

// MarkPaidResponse is returned by the admin payment confirmation route.
type MarkPaidResponse struct {
	OK        bool   `json:"ok"`
	VendorID  string `json:"vendor_id"`
	Paid      bool   `json:"paid"`
	Score     int    `json:"score"`
	Verified  bool   `json:"verified"`
	VerifyURL string `json:"verify_url"`
	CertURL   string `json:"cert_url"`
}

// handleMarkPaid confirms payment. The admin key was checked by middleware.
func (s *Server) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx := WithRequestMetadata(r.Context(), r)

	v, err := s.service.MarkPaid(ctx, chi.URLParam(r, "vendorID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	base := s.baseURL(r)
	writeJSON(w, MarkPaidResponse{
		OK:        true,
		VendorID:  v.ID,
		Paid:      v.Paid,
		Score:     v.Score,
		Verified:  v.Verified,
		VerifyURL: base + "/verify/" + v.ID,
		CertURL:   base + "/cert/" + v.ID + ".pdf",
	})
}

// baseURL is PUBLIC_BASE_URL when set, otherwise the scheme and host the
// request arrived on.
func (s *Server) baseURL(r *http.Request) string {
	if base := s.cfg.Security.PublicBaseURL; base != "" {
		return strings.TrimRight(base, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// handleCertificate streams the PDF certificate for a verified vendor.
func (s *Server) handleCertificate(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := strings.CutSuffix(chi.URLParam(r, "certFile"), ".pdf")
	if !ok {
		http.NotFound(w, r)
		return
	}

	issued, err := s.service.IssueCertificate(r.Context(), vendorID)
	if errors.Is(err, core.ErrNotVerified) {
		respondPlain(w, http.StatusBadRequest, core.MapError(err).Message)
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": issued.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(issued.PDF)))
	_, _ = w.Write(issued.PDF)
}
