package web

import (
	"net/http"

	"github.com/JonMunkholm/onboard/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// handleReview shows the payment summary. Nothing is written.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	rev, err := s.service.Review(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render(w, r, templates.ReviewPage(rev, popFlashes(w, r)))
}

// handleVerify is the public verification page. Viewing it refreshes the
// stored score.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	ver, err := s.service.Verify(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render(w, r, templates.VerifyPage(ver, popFlashes(w, r)))
}
