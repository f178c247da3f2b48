package server

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/preferences"
	"github.com/umputun/confdesk/pkg/service"
)

// identity headers set by the authenticating proxy
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
)

type ctxKey struct{}

// authMiddleware resolves the caller's profile, creating it on first sign-in
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := service.Identity{
			UserID: strings.TrimSpace(r.Header.Get(headerUserID)),
			Email:  strings.TrimSpace(r.Header.Get(headerUserEmail)),
			Name:   strings.TrimSpace(r.Header.Get(headerUserName)),
		}
		if id.UserID == "" {
			RenderError(w, r, errors.New("authentication required"), http.StatusUnauthorized)
			return
		}
		profile, err := s.Workflows.EnsureProfile(r.Context(), id, s.Organizers)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				RenderError(w, r, errors.New("unknown user"), http.StatusUnauthorized)
				return
			}
			renderFailure(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, profile)))
	})
}

// requireRole lets through callers with one of the roles
func requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, caller(r).Role) {
				RenderError(w, r, domain.ErrForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// caller returns the authenticated profile, zero outside of the auth middleware
func caller(r *http.Request) domain.Profile {
	p, _ := r.Context().Value(ctxKey{}).(domain.Profile)
	return p
}

// prefs returns the caller's preference store
func (s *Server) prefs(r *http.Request) *preferences.Store {
	return s.Preferences.For(caller(r).ID)
}

// rateLimitMiddleware limits mutations of every user, reads are not limited
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || s.limiter.allow(caller(r).ID) {
			next.ServeHTTP(w, r)
			return
		}
		log.Printf("[WARN] rate limit exceeded for user %s, %s %s", caller(r).ID, r.Method, r.URL.Path)
		w.Header().Set("Retry-After", strconv.Itoa(s.limiter.retryAfter()))
		RenderError(w, r, errors.New("too many requests"), http.StatusTooManyRequests)
	})
}

// userLimiter keeps a token bucket per user. Buckets idle for longer than idleTTL are dropped.
type userLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	users     map[string]*limiterEntry
	lastPrune time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

const limiterIdleTTL = 10 * time.Minute

func newUserLimiter(perSecond float64, burst int) *userLimiter {
	if burst < 1 {
		burst = 1
	}
	return &userLimiter{limit: rate.Limit(perSecond), burst: burst, users: map[string]*limiterEntry{}, lastPrune: time.Now()}
}

func (l *userLimiter) allow(userID string) bool {
	if l.limit <= 0 {
		return true
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > limiterIdleTTL {
		for id, e := range l.users {
			if now.Sub(e.lastAccess) > limiterIdleTTL {
				delete(l.users, id)
			}
		}
		l.lastPrune = now
	}

	e, ok := l.users[userID]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.users[userID] = e
	}
	e.lastAccess = now
	return e.limiter.AllowN(now, 1)
}

// retryAfter is the time to refill one token, in whole seconds
func (l *userLimiter) retryAfter() int {
	if l.limit <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(l.limit))))
}
