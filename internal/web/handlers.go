package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/JonMunkholm/onboard/internal/web/templates"
	"github.com/a-h/templ"
)

// render writes an HTML component with status 200.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
	}
}

// handleIndex serves the intake form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.IntakePage(popFlashes(w, r)))
}

// maxIntakeBody bounds the intake form; it has no file parts.
const maxIntakeBody = 1 << 20

// handleIntake creates a vendor and sends the browser to the upload step.
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIntakeBody)
	if err := r.ParseForm(); err != nil {
		s.respondErrorStatus(w, r, err, http.StatusBadRequest)
		return
	}

	v, err := s.service.Intake(r.Context(), core.IntakeRequest{
		LegalName:  r.PostForm.Get("legal_name"),
		Email:      r.PostForm.Get("email"),
		Phone:      r.PostForm.Get("phone"),
		Category:   r.PostForm.Get("category"),
		City:       r.PostForm.Get("city"),
		State:      r.PostForm.Get("state"),
		VendorType: r.PostForm.Get("vendor_type"),
		KYBKYC:     r.PostForm.Get("kybkyc"),
	})
	if errors.Is(err, core.ErrMissingRequired) {
		setFlash(w, "danger", core.MapError(err).Message)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	http.Redirect(w, r, "/upload/"+v.ID, http.StatusSeeOther)
}

const healthTimeout = 2 * time.Second

// handleHealth reports liveness plus datastore reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.service.Ping(ctx); err != nil {
		slog.Warn("health check failed", "error", err)
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"error":  core.MapError(err).Message,
		})
		return
	}

	writeJSON(w, map[string]any{
		"status":  "ok",
		"uploads": s.service.UploadLimiterStatus(),
	})
}
