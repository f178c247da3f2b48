// Package server exposes the conference desk as a JSON API. An upstream proxy authenticates users
// and passes their identity in X-User-* headers; the server keeps profiles and role gates.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/listview"
	"github.com/umputun/confdesk/pkg/metrics"
	"github.com/umputun/confdesk/pkg/preferences"
	"github.com/umputun/confdesk/pkg/service"
)

//go:generate moq -out mocks/workflows.go -pkg mocks -skip-ensure -fmt goimports . Workflows
//go:generate moq -out mocks/participation.go -pkg mocks -skip-ensure -fmt goimports . Participation
//go:generate moq -out mocks/files.go -pkg mocks -skip-ensure -fmt goimports . Files
//go:generate moq -out mocks/reminders.go -pkg mocks -skip-ensure -fmt goimports . Reminders

// Server represents HTTP server instance
type Server struct {
	Params
	lists   *listview.State
	limiter *userLimiter

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params of the server, Metrics, Gatherer and Reminders are optional
type Params struct {
	Workflows     Workflows
	Participation Participation
	Files         Files
	Reminders     Reminders
	Preferences   *preferences.Store
	Broadcaster   *preferences.Broadcaster
	Metrics       *metrics.Collector
	Gatherer      prometheus.Gatherer

	Listen        string
	Timeout       time.Duration
	MaxUploadSize int64
	RateLimit     float64 // mutations per second of one user, 0 disables
	RateBurst     int
	Organizers    []string // emails promoted to organizer on first sign-in
	Version       string
	Debug         bool
	Now           func() time.Time
}

// Workflows are the role workflows served by the api
type Workflows interface {
	EnsureProfile(ctx context.Context, id service.Identity, organizers []string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req service.ProfileRequest) (domain.Profile, error)
	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadNotifications(ctx context.Context, userID string) (int, error)
	MarkNotificationRead(ctx context.Context, userID, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	SubmitArticle(ctx context.Context, authorID string, req service.SubmitArticleRequest) (domain.Article, error)
	AuthorArticles(ctx context.Context, authorID string) ([]domain.Article, error)
	AuthorReviews(ctx context.Context, authorID string) ([]domain.Review, error)
	PublicConferences(ctx context.Context) ([]domain.Conference, error)
	ArticleDetails(ctx context.Context, caller domain.Profile, articleID string) (service.ArticleDetails, error)
	ArticleFileURL(ctx context.Context, caller domain.Profile, articleID string) (string, error)

	AvailableArticles(ctx context.Context, reviewerID string) ([]domain.ReviewerArticle, error)
	ReviewerReviews(ctx context.Context, reviewerID string) ([]domain.Review, error)
	SubmitReview(ctx context.Context, reviewerID string, req service.SubmitReviewRequest) (domain.Review, error)

	AllArticles(ctx context.Context) ([]domain.Article, error)
	SubmittedReviews(ctx context.Context) ([]domain.Review, error)
	Conferences(ctx context.Context) ([]domain.Conference, error)
	Reviewers(ctx context.Context) ([]domain.Profile, error)
	Profiles(ctx context.Context) ([]domain.Profile, error)
	ConferenceDetails(ctx context.Context, conferenceID string) (domain.ConferenceDetails, error)
	CreateConference(ctx context.Context, organizerID string, req service.CreateConferenceRequest) (domain.Conference, error)
	CreateSection(ctx context.Context, conferenceID string, req service.CreateSectionRequest) (domain.ConferenceSection, error)
	UpdateArticleStatus(ctx context.Context, organizerID, articleID string, req service.StatusChangeRequest) (domain.Article, error)
	AssignReviewer(ctx context.Context, organizerID, articleID string, req service.AssignRequest) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
	SaveSchedule(ctx context.Context, articleID string, req service.ScheduleRequest) (domain.Article, error)
	SetRole(ctx context.Context, callerID, targetID string, role domain.Role) error
}

// Participation serves author participations and certificates
type Participation interface {
	Record(ctx context.Context, authorID string) (domain.ParticipationRecord, error)
	Issue(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error)
	Certificate(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error)
}

// Files verifies signed urls and opens stored objects
type Files interface {
	Verify(objPath, expires, sig string) error
	Open(objPath string) (*os.File, error)
}

// Reminders is asked for an overdue check after deadlines change
type Reminders interface {
	Trigger()
}

// New initializes a new server instance
func New(p Params) *Server {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	if p.MaxUploadSize == 0 {
		p.MaxUploadSize = 11 << 20
	}
	s := &Server{
		Params:  p,
		lists:   listview.NewState(),
		limiter: newUserLimiter(p.RateLimit, p.RateBurst),
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.Timeout,
		ReadTimeout:       s.Timeout,
		// no WriteTimeout, preference event streams are long-lived
		IdleTimeout: s.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("confdesk", "umputun", s.Version))
	s.router.Use(rest.Ping)
	s.router.Use(rest.RealIP)

	if s.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(s.Metrics.Middleware)
	s.router.Use(throttle(maxInFlight, preferenceEventsPath))
	s.router.Use(rest.SizeLimit(s.MaxUploadSize))
}

// maxInFlight limits concurrent requests, long-lived event streams are not counted
const maxInFlight = 100

const preferenceEventsPath = "/api/v1/preferences/events"

// throttle is rest.Throttle skipping the streaming paths
func throttle(limit int64, streams ...string) func(http.Handler) http.Handler {
	limited := rest.Throttle(limit)
	return func(next http.Handler) http.Handler {
		th := limited(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range streams {
				if r.URL.Path == p {
					next.ServeHTTP(w, r)
					return
				}
			}
			th.ServeHTTP(w, r)
		})
	}
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	if s.Gatherer != nil {
		s.router.Handle("GET /metrics", metrics.Handler(s.Gatherer))
	}
	s.router.HandleFunc("GET /files/{path...}", s.fileHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.Group().Route(func(api *routegroup.Bundle) {
			api.Use(s.authMiddleware, s.rateLimitMiddleware)

			api.HandleFunc("GET /me", s.meHandler)
			api.HandleFunc("PUT /me", s.updateProfileHandler)
			api.HandleFunc("GET /preferences", s.getPreferencesHandler)
			api.HandleFunc("PATCH /preferences", s.patchPreferencesHandler)
			api.HandleFunc("GET "+strings.TrimPrefix(preferenceEventsPath, "/api/v1"), s.preferenceEventsHandler)
			api.HandleFunc("GET /notifications", s.notificationsHandler)
			api.HandleFunc("GET /notifications/unread", s.unreadNotificationsHandler)
			api.HandleFunc("POST /notifications/read", s.markAllReadHandler)
			api.HandleFunc("POST /notifications/{id}/read", s.markReadHandler)
			api.HandleFunc("GET /conferences/public", s.publicConferencesHandler)
			api.HandleFunc("GET /articles/{id}", s.articleDetailsHandler)
			api.HandleFunc("GET /articles/{id}/file", s.articleFileHandler)

			api.Group().Route(func(author *routegroup.Bundle) {
				author.Use(requireRole(domain.RoleAuthor))
				author.HandleFunc("GET /author/articles", s.authorArticlesHandler)
				author.HandleFunc("POST /author/articles", s.submitArticleHandler)
				author.HandleFunc("GET /author/reviews", s.authorReviewsHandler)
				author.HandleFunc("GET /author/participation", s.participationHandler)
				author.HandleFunc("POST /author/certificates/{conference}", s.issueCertificateHandler)
				author.HandleFunc("GET /author/certificates/{conference}/pdf", s.certificatePDFHandler)
			})

			api.Group().Route(func(reviewer *routegroup.Bundle) {
				reviewer.Use(requireRole(domain.RoleReviewer))
				reviewer.HandleFunc("GET /reviewer/articles", s.reviewerArticlesHandler)
				reviewer.HandleFunc("GET /reviewer/reviews", s.reviewerReviewsHandler)
				reviewer.HandleFunc("POST /reviewer/reviews", s.submitReviewHandler)
			})

			api.Group().Route(func(org *routegroup.Bundle) {
				org.Use(requireRole(domain.RoleOrganizer))
				org.HandleFunc("GET /organizer/articles", s.organizerArticlesHandler)
				org.HandleFunc("GET /organizer/articles/export", s.exportCSVHandler)
				org.HandleFunc("PUT /organizer/articles/{id}/status", s.updateStatusHandler)
				org.HandleFunc("POST /organizer/articles/{id}/assignments", s.assignReviewerHandler)
				org.HandleFunc("PUT /organizer/articles/{id}/schedule", s.saveScheduleHandler)
				org.HandleFunc("DELETE /organizer/assignments/{id}", s.deleteAssignmentHandler)
				org.HandleFunc("POST /organizer/proceedings", s.proceedingsHandler)
				org.HandleFunc("GET /organizer/reviews", s.organizerReviewsHandler)
				org.HandleFunc("GET /organizer/conferences", s.organizerConferencesHandler)
				org.HandleFunc("POST /organizer/conferences", s.createConferenceHandler)
				org.HandleFunc("GET /organizer/conferences/{id}", s.conferenceDetailsHandler)
				org.HandleFunc("POST /organizer/conferences/{id}/sections", s.createSectionHandler)
				org.HandleFunc("GET /organizer/reviewers", s.reviewersHandler)
				org.HandleFunc("GET /organizer/users", s.usersHandler)
				org.HandleFunc("PUT /organizer/users/{id}/role", s.setRoleHandler)
			})
		})
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.Version,
		"time":    s.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderFailure maps domain errors to status codes. Internal errors are logged and hidden.
func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	if code == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		RenderError(w, r, errors.New("internal error"), code)
		return
	}
	RenderError(w, r, err, code)
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads the request body into v, a malformed body is a validation error
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("bad request body: %v: %w", err, domain.ErrValidation)
	}
	return nil
}

// attachment sets the headers of a downloaded document, non-ascii names go to filename*
func attachment(w http.ResponseWriter, contentType, fileName string) {
	fallback := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r == '"' || r == '\\' || !unicode.IsPrint(r) {
			return '_'
		}
		return r
	}, fileName)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s",
		fallback, url.PathEscape(fileName)))
}
