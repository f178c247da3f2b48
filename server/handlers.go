package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/service"
)

// meHandler returns the caller's profile
func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, caller(r))
}

func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req service.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	profile, err := s.Workflows.UpdateProfile(r.Context(), caller(r).ID, req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, profile)
}

func (s *Server) notificationsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.Notifications(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

func (s *Server) unreadNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.Workflows.UnreadNotifications(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int{"unread": n})
}

func (s *Server) markReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Workflows.MarkNotificationRead(r.Context(), caller(r).ID, r.PathValue("id")); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markAllReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Workflows.MarkAllNotificationsRead(r.Context(), caller(r).ID); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) publicConferencesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.PublicConferences(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// articleDetailsHandler returns the article with its reviews, history and, for organizers, assignments
func (s *Server) articleDetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.Workflows.ArticleDetails(r.Context(), caller(r), r.PathValue("id"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, details)
}

// articleFileHandler issues a fresh signed url of the article file
func (s *Server) articleFileHandler(w http.ResponseWriter, r *http.Request) {
	u, err := s.Workflows.ArticleFileURL(r.Context(), caller(r), r.PathValue("id"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	RenderJSON(w, r, http.StatusOK, map[string]string{"url": u})
}

func (s *Server) authorArticlesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.AuthorArticles(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

func (s *Server) authorReviewsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.AuthorReviews(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// submitArticleHandler accepts a multipart form with the article fields and the "file" part
func (s *Server) submitArticleHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		renderFailure(w, r, fmt.Errorf("bad multipart form: %v: %w", err, domain.ErrValidation))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Printf("[WARN] can't remove multipart temp files: %v", err)
		}
	}()

	req := service.SubmitArticleRequest{
		Title:        r.FormValue("title"),
		Abstract:     r.FormValue("abstract"),
		Keywords:     r.FormValue("keywords"),
		ConferenceID: r.FormValue("conference_id"),
		SectionID:    r.FormValue("section_id"),
		Language:     r.FormValue("language"),
	}
	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// left to the workflow, it reports the missing file with the other fields
	case err != nil:
		renderFailure(w, r, fmt.Errorf("bad file part: %v: %w", err, domain.ErrValidation))
		return
	default:
		defer file.Close()
		req.File, req.FileName, req.FileSize = file, header.Filename, header.Size
		req.ContentType = header.Header.Get("Content-Type")
	}

	article, err := s.Workflows.SubmitArticle(r.Context(), caller(r).ID, req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, article)
}

func (s *Server) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	review, err := s.Workflows.SubmitReview(r.Context(), caller(r).ID, req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, review)
}

func (s *Server) reviewersHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.Reviewers(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

func (s *Server) conferenceDetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.Workflows.ConferenceDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, details)
}

func (s *Server) createConferenceHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateConferenceRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	conf, err := s.Workflows.CreateConference(r.Context(), caller(r).ID, req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, conf)
}

func (s *Server) createSectionHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	section, err := s.Workflows.CreateSection(r.Context(), r.PathValue("id"), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, section)
}

func (s *Server) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req service.StatusChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	article, err := s.Workflows.UpdateArticleStatus(r.Context(), caller(r).ID, r.PathValue("id"), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

func (s *Server) assignReviewerHandler(w http.ResponseWriter, r *http.Request) {
	var req service.AssignRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	assignment, err := s.Workflows.AssignReviewer(r.Context(), caller(r).ID, r.PathValue("id"), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	s.triggerReminders()
	RenderJSON(w, r, http.StatusOK, assignment)
}

func (s *Server) deleteAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Workflows.DeleteAssignment(r.Context(), r.PathValue("id")); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) saveScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req service.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	article, err := s.Workflows.SaveSchedule(r.Context(), r.PathValue("id"), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

func (s *Server) setRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role domain.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := s.Workflows.SetRole(r.Context(), caller(r).ID, r.PathValue("id"), req.Role); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// triggerReminders asks for an overdue check, a changed deadline may already be in the past
func (s *Server) triggerReminders() {
	if s.Reminders != nil {
		s.Reminders.Trigger()
	}
}
