package server

import (
	"log"
	"net/http"
	"path"

	"github.com/umputun/confdesk/pkg/domain"
)

// fileHandler serves stored article files by signed url, no session is needed
func (s *Server) fileHandler(w http.ResponseWriter, r *http.Request) {
	objPath := r.PathValue("path")
	if err := s.Files.Verify(objPath, r.URL.Query().Get("expires"), r.URL.Query().Get("sig")); err != nil {
		log.Printf("[DEBUG] rejected file request %s: %v", objPath, err)
		RenderError(w, r, domain.ErrForbidden, http.StatusForbidden)
		return
	}
	fh, err := s.Files.Open(objPath)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, path.Base(objPath), st.ModTime(), fh)
}
