package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/export"
)

// exportCSVHandler exports the organizer article list, scope is all (default), accepted or rejected
func (s *Server) exportCSVHandler(w http.ResponseWriter, r *http.Request) {
	scope := export.Scope(query(r, "scope"))
	if scope == "" {
		scope = export.ScopeAll
	}
	if !scope.Valid() {
		renderFailure(w, r, fmt.Errorf("unknown export scope %q: %w", scope, domain.ErrValidation))
		return
	}
	items, err := s.Workflows.AllArticles(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}

	var buf bytes.Buffer
	rows := export.SelectArticles(items, articleFilter(r), scope)
	if err := export.WriteArticlesCSV(&buf, rows, s.prefs(r).Formatter(r.Context())); err != nil {
		renderFailure(w, r, err)
		return
	}
	s.download(w, export.CSVContentType, scope.FileName(), buf.Bytes())
}

// proceedingsHandler builds the proceedings document of a selection
func (s *Server) proceedingsHandler(w http.ResponseWriter, r *http.Request) {
	var req export.ProceedingsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	items, err := s.Workflows.AllArticles(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}

	f := s.prefs(r).Formatter(r.Context())
	selected, err := export.SelectProceedings(items, req, f.Location())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	now := s.Now()
	var buf bytes.Buffer
	if err := export.WriteProceedings(&buf, selected, f, now); err != nil {
		renderFailure(w, r, err)
		return
	}
	name := export.ProceedingsFileName(req, selected[0].ConferenceTitle, len(selected), now)
	s.download(w, export.ProceedingsContentType, name, buf.Bytes())
}

// participationHandler returns the caller's participations and issued certificates
func (s *Server) participationHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Participation.Record(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, rec)
}

// issueCertificateHandler issues the caller's certificate of a finished conference, repeated calls return the same one
func (s *Server) issueCertificateHandler(w http.ResponseWriter, r *http.Request) {
	cert, err := s.Participation.Issue(r.Context(), caller(r).ID, r.PathValue("conference"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, cert)
}

// certificatePDFHandler renders an issued certificate
func (s *Server) certificatePDFHandler(w http.ResponseWriter, r *http.Request) {
	cert, err := s.Participation.Certificate(r.Context(), caller(r).ID, r.PathValue("conference"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCertificate(&buf, cert, s.prefs(r).Formatter(r.Context())); err != nil {
		renderFailure(w, r, err)
		return
	}
	s.download(w, export.CertificateContentType, export.CertificateFileName(cert), buf.Bytes())
}

func (s *Server) download(w http.ResponseWriter, contentType, name string, data []byte) {
	attachment(w, contentType, name)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] can't send %s: %v", name, err)
	}
}
