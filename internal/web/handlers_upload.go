package web

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/JonMunkholm/onboard/internal/logging"
	"github.com/JonMunkholm/onboard/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is how much of the form is buffered in memory before parts
// spill to temporary files.
const multipartMemory = 8 << 20

// handleUploadForm shows the document form with the vendor's price.
func (s *Server) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	v, err := s.service.GetVendor(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render(w, r, templates.UploadPage(v, core.Price(v), popFlashes(w, r)))
}

// handleUpload stores whichever of the four document parts were sent.
// A form with no files is accepted and simply moves on to review.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")
	if _, err := s.service.GetVendor(r.Context(), vendorID); err != nil {
		s.respondError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)
	err := r.ParseMultipartForm(multipartMemory)
	switch {
	case errors.Is(err, http.ErrNotMultipart):
		// Plain form post: nothing to store.
	case err != nil:
		s.respondErrorStatus(w, r, err, uploadParseStatus(err))
		return
	default:
		defer r.MultipartForm.RemoveAll()
	}

	files, closeAll, err := collectFiles(r)
	defer closeAll()
	if err != nil {
		s.respondErrorStatus(w, r, err, http.StatusBadRequest)
		return
	}

	docs, err := s.service.UploadDocuments(r.Context(), vendorID, files)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.ForVendor(r.Context(), vendorID).Debug("upload form processed", "parts", len(files), "stored", len(docs))
	setFlash(w, "success", "Documents uploaded (or skipped).")
	http.Redirect(w, r, "/review/"+vendorID, http.StatusSeeOther)
}

// collectFiles opens the file part for each required kind, in form order.
// The returned func closes everything that was opened.
func collectFiles(r *http.Request) ([]core.UploadedFile, func(), error) {
	var (
		files  []core.UploadedFile
		opened []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	if r.MultipartForm == nil {
		return nil, closeAll, nil
	}

	for _, kind := range core.RequiredKinds {
		f, hdr, err := r.FormFile(string(kind))
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		files = append(files, core.UploadedFile{
			Kind:     kind,
			Filename: hdr.Filename,
			Content:  f,
		})
	}
	return files, closeAll, nil
}

func uploadParseStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
