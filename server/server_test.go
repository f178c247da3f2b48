package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/export"
	"github.com/umputun/confdesk/pkg/listview"
	"github.com/umputun/confdesk/pkg/metrics"
	"github.com/umputun/confdesk/pkg/preferences"
	"github.com/umputun/confdesk/pkg/service"
	"github.com/umputun/confdesk/server/mocks"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

var testProfiles = map[string]domain.Profile{
	"org":    {ID: "org", Email: "org@example.com", FullName: "Olena Organizer", Role: domain.RoleOrganizer},
	"author": {ID: "author", Email: "author@example.com", FullName: "Andrii Author", Role: domain.RoleAuthor},
	"rev":    {ID: "rev", Email: "rev@example.com", FullName: "Roman Reviewer", Role: domain.RoleReviewer},
}

// memKV is an in-memory settings substrate
type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memKV) GetSetting(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memKV) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

type testEnv struct {
	srv *Server
	wf  *mocks.WorkflowsMock
	kv  *memKV
}

// newTestEnv makes a server with known profiles, in-memory preferences and the given overrides
func newTestEnv(t *testing.T, mod ...func(p *Params)) *testEnv {
	t.Helper()
	wf := &mocks.WorkflowsMock{
		EnsureProfileFunc: func(ctx context.Context, id service.Identity, organizers []string) (domain.Profile, error) {
			if p, ok := testProfiles[id.UserID]; ok {
				return p, nil
			}
			return domain.Profile{}, fmt.Errorf("profile %s: %w", id.UserID, domain.ErrNotFound)
		},
	}
	kv := &memKV{data: map[string]string{}}
	hub := preferences.NewBroadcaster()
	p := Params{
		Workflows:   wf,
		Preferences: preferences.New(kv, hub, preferences.WithDefault(preferences.TimezoneKey, "UTC")),
		Broadcaster: hub,
		Version:     "test",
		Now:         func() time.Time { return testNow },
	}
	for _, m := range mod {
		m(&p)
	}
	return &testEnv{srv: New(p), wf: wf, kv: kv}
}

func (e *testEnv) do(t *testing.T, method, target, user string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if user != "" {
		req.Header.Set("X-User-Id", user)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.srv.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["error"]
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	env := newTestEnv(t, func(p *Params) { p.Listen = fmt.Sprintf("127.0.0.1:%d", port) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "confdesk", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_Status(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, "GET", "/api/v1/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
}

func TestServer_Auth(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AllArticlesFunc = func(ctx context.Context) ([]domain.Article, error) { return nil, nil }

	t.Run("no identity", func(t *testing.T) {
		w := env.do(t, "GET", "/api/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "authentication required", errorOf(t, w))
	})

	t.Run("unknown user without email", func(t *testing.T) {
		w := env.do(t, "GET", "/api/v1/me", "ghost", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile", func(t *testing.T) {
		w := env.do(t, "GET", "/api/v1/me", "author", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.RoleAuthor, decode[domain.Profile](t, w).Role)
	})

	t.Run("identity headers and organizers passed through", func(t *testing.T) {
		env := newTestEnv(t, func(p *Params) { p.Organizers = []string{"chair@example.com"} })
		req := httptest.NewRequest("GET", "/api/v1/me", http.NoBody)
		req.Header.Set("X-User-Id", " org ")
		req.Header.Set("X-User-Email", "org@example.com")
		req.Header.Set("X-User-Name", "Olena")
		w := httptest.NewRecorder()
		env.srv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		calls := env.wf.EnsureProfileCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, service.Identity{UserID: "org", Email: "org@example.com", Name: "Olena"}, calls[0].Id)
		assert.Equal(t, []string{"chair@example.com"}, calls[0].Organizers)
	})

	t.Run("role gates", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, env.do(t, "GET", "/api/v1/organizer/articles", "author", nil).Code)
		assert.Equal(t, http.StatusForbidden, env.do(t, "GET", "/api/v1/reviewer/articles", "org", nil).Code)
		assert.Equal(t, http.StatusForbidden, env.do(t, "GET", "/api/v1/author/articles", "rev", nil).Code)
		assert.Equal(t, http.StatusOK, env.do(t, "GET", "/api/v1/organizer/articles", "org", nil).Code)
	})
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("title is required: %w", domain.ErrValidation), http.StatusBadRequest, "title is required: validation failed"},
		{fmt.Errorf("not your article: %w", domain.ErrForbidden), http.StatusForbidden, "not your article: forbidden"},
		{fmt.Errorf("article x: %w", domain.ErrNotFound), http.StatusNotFound, "article x: not found"},
		{fmt.Errorf("already reviewed: %w", domain.ErrConflict), http.StatusConflict, "already reviewed: conflict"},
		{errors.New("database is locked"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			env := newTestEnv(t)
			env.wf.ArticleDetailsFunc = func(ctx context.Context, caller domain.Profile, articleID string) (service.ArticleDetails, error) {
				return service.ArticleDetails{}, tt.err
			}
			w := env.do(t, "GET", "/api/v1/articles/a1", "author", nil)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.msg, errorOf(t, w))
		})
	}
}

func reviewerArticles(n int) []domain.ReviewerArticle {
	res := make([]domain.ReviewerArticle, n)
	for i := range n {
		due := testNow.Add(time.Duration(i-2) * 24 * time.Hour) // first two are overdue
		res[i] = domain.ReviewerArticle{
			Article: domain.Article{
				ID:          fmt.Sprintf("a%02d", i),
				Title:       fmt.Sprintf("Paper %c", 'A'+rune(n-1-i)),
				Status:      domain.StatusSubmitted,
				SubmittedAt: testNow.Add(-time.Duration(i) * time.Hour),
			},
			AssignmentDueAt: &due,
		}
	}
	return res
}

func TestServer_ReviewerArticlesList(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AvailableArticlesFunc = func(ctx context.Context, reviewerID string) ([]domain.ReviewerArticle, error) {
		assert.Equal(t, "rev", reviewerID)
		return reviewerArticles(10), nil
	}
	type resp = listResponse[domain.ReviewerArticle]

	w := env.do(t, "GET", "/api/v1/reviewer/articles", "rev", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[resp](t, w)
	assert.Equal(t, listview.DateDesc, page.Sort)
	assert.Equal(t, 1, page.Page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 8)
	assert.Equal(t, "a00", page.Items[0].ID, "newest submission first")

	// explicit sort is remembered as the list preference
	w = env.do(t, "GET", "/api/v1/reviewer/articles?sort=title_asc&page=2", "rev", nil)
	page = decode[resp](t, w)
	assert.Equal(t, listview.TitleAsc, page.Sort)
	assert.Equal(t, 1, page.Page.Page, "sort change resets the page")
	assert.Equal(t, "title_asc", env.kv.get("user.rev.app.list_sort.reviewer.articles"))

	w = env.do(t, "GET", "/api/v1/reviewer/articles?page=2", "rev", nil)
	page = decode[resp](t, w)
	assert.Equal(t, listview.TitleAsc, page.Sort)
	assert.Equal(t, 2, page.Page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Paper I", page.Items[0].Title)

	// without a page the remembered one is shown, a page beyond the end is clamped
	page = decode[resp](t, env.do(t, "GET", "/api/v1/reviewer/articles", "rev", nil))
	assert.Equal(t, 2, page.Page.Page)
	page = decode[resp](t, env.do(t, "GET", "/api/v1/reviewer/articles?page=9", "rev", nil))
	assert.Equal(t, 2, page.Page.Page)

	// a filter change goes back to page 1
	page = decode[resp](t, env.do(t, "GET", "/api/v1/reviewer/articles?deadline=overdue&page=2", "rev", nil))
	assert.Equal(t, 1, page.Page.Page)
	assert.Equal(t, 2, page.Total)

	// unknown sort is ignored
	page = decode[resp](t, env.do(t, "GET", "/api/v1/reviewer/articles?sort=rating_desc", "rev", nil))
	assert.Equal(t, listview.TitleAsc, page.Sort)
}

func TestServer_OrganizerLists(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AllArticlesFunc = func(ctx context.Context) ([]domain.Article, error) {
		return []domain.Article{
			{ID: "1", Title: "Neural nets", Status: domain.StatusAccepted, SubmittedAt: testNow},
			{ID: "2", Title: "Graphs", Abstract: "no NEURAL here", Status: domain.StatusRejected, SubmittedAt: testNow},
			{ID: "3", Title: "Compilers", Status: domain.StatusSubmitted, SubmittedAt: testNow},
		}, nil
	}
	env.wf.SubmittedReviewsFunc = func(ctx context.Context) ([]domain.Review, error) {
		return []domain.Review{
			{ID: "r1", Rating: 2, SubmittedAt: &testNow, CreatedAt: testNow},
			{ID: "r2", Rating: 5, CreatedAt: testNow.Add(-time.Hour)},
		}, nil
	}
	env.wf.ConferencesFunc = func(ctx context.Context) ([]domain.Conference, error) {
		return []domain.Conference{{ID: "c1", Title: "Public", IsPublic: true}, {ID: "c2", Title: "Private"}}, nil
	}
	env.wf.ProfilesFunc = func(ctx context.Context) ([]domain.Profile, error) {
		return []domain.Profile{testProfiles["author"], testProfiles["rev"]}, nil
	}

	articles := decode[listResponse[domain.Article]](t, env.do(t, "GET", "/api/v1/organizer/articles?q=neural", "org", nil))
	assert.Equal(t, 2, articles.Total)
	articles = decode[listResponse[domain.Article]](t, env.do(t, "GET", "/api/v1/organizer/articles?q=neural&status=rejected", "org", nil))
	require.Len(t, articles.Items, 1)
	assert.Equal(t, "2", articles.Items[0].ID)

	reviews := decode[listResponse[domain.Review]](t, env.do(t, "GET", "/api/v1/organizer/reviews?sort=rating_desc", "org", nil))
	require.Len(t, reviews.Items, 2)
	assert.Equal(t, "r2", reviews.Items[0].ID)

	confs := decode[listResponse[domain.Conference]](t, env.do(t, "GET", "/api/v1/organizer/conferences?visibility=public", "org", nil))
	require.Len(t, confs.Items, 1)
	assert.Equal(t, "c1", confs.Items[0].ID)

	users := decode[listResponse[domain.Profile]](t, env.do(t, "GET", "/api/v1/organizer/users?q=roman", "org", nil))
	require.Len(t, users.Items, 1)
	assert.Equal(t, "rev", users.Items[0].ID)
}

func TestServer_ListUsesPageSizePreference(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AvailableArticlesFunc = func(ctx context.Context, reviewerID string) ([]domain.ReviewerArticle, error) {
		return reviewerArticles(30), nil
	}
	w := env.do(t, "PATCH", "/api/v1/preferences", "rev", strings.NewReader(`{"page_size":12}`))
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[listResponse[domain.ReviewerArticle]](t, env.do(t, "GET", "/api/v1/reviewer/articles", "rev", nil))
	assert.Equal(t, 12, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func multipartBody(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) (body *bytes.Buffer, ct string) {
	t.Helper()
	body = &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestServer_SubmitArticle(t *testing.T) {
	env := newTestEnv(t)
	var got service.SubmitArticleRequest
	var content []byte
	env.wf.SubmitArticleFunc = func(ctx context.Context, authorID string, req service.SubmitArticleRequest) (domain.Article, error) {
		assert.Equal(t, "author", authorID)
		got = req
		if req.File != nil {
			var err error
			content, err = io.ReadAll(req.File)
			require.NoError(t, err)
		}
		return domain.Article{ID: "new", Title: req.Title, Status: domain.StatusSubmitted}, nil
	}

	body, ct := multipartBody(t, map[string]string{"title": "Paper", "abstract": "Abs", "keywords": "a, b",
		"conference_id": "c1", "section_id": "s1", "language": "uk"}, "paper.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest("POST", "/api/v1/author/articles", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-User-Id", "author")
	w := httptest.NewRecorder()
	env.srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "new", decode[domain.Article](t, w).ID)
	assert.Equal(t, "Paper", got.Title)
	assert.Equal(t, "Abs", got.Abstract)
	assert.Equal(t, "a, b", got.Keywords)
	assert.Equal(t, "c1", got.ConferenceID)
	assert.Equal(t, "s1", got.SectionID)
	assert.Equal(t, "uk", got.Language)
	assert.Equal(t, "paper.pdf", got.FileName)
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.Equal(t, int64(8), got.FileSize)
	assert.Equal(t, "%PDF-1.4", string(content))

	t.Run("missing file is left to the workflow", func(t *testing.T) {
		env.wf.SubmitArticleFunc = func(ctx context.Context, authorID string, req service.SubmitArticleRequest) (domain.Article, error) {
			assert.Nil(t, req.File)
			return domain.Article{}, fmt.Errorf("file is required: %w", domain.ErrValidation)
		}
		body, ct := multipartBody(t, map[string]string{"title": "Paper"}, "", "", nil)
		req := httptest.NewRequest("POST", "/api/v1/author/articles", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set("X-User-Id", "author")
		w := httptest.NewRecorder()
		env.srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "file is required: validation failed", errorOf(t, w))
	})

	t.Run("not multipart", func(t *testing.T) {
		w := env.do(t, "POST", "/api/v1/author/articles", "author", strings.NewReader(`{}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_JSONMutations(t *testing.T) {
	env := newTestEnv(t)
	reminders := &mocks.RemindersMock{TriggerFunc: func() {}}
	env.srv.Reminders = reminders

	env.wf.SubmitReviewFunc = func(ctx context.Context, reviewerID string, req service.SubmitReviewRequest) (domain.Review, error) {
		return domain.Review{ID: "r1", ArticleID: req.ArticleID, Rating: req.Rating, Recommendation: req.Recommendation}, nil
	}
	env.wf.AssignReviewerFunc = func(ctx context.Context, organizerID, articleID string, req service.AssignRequest) (domain.Assignment, error) {
		return domain.Assignment{ID: "as1", ArticleID: articleID, ReviewerID: req.ReviewerID, AssignedBy: organizerID, DueAt: req.DueAt}, nil
	}
	env.wf.UpdateArticleStatusFunc = func(ctx context.Context, organizerID, articleID string, req service.StatusChangeRequest) (domain.Article, error) {
		return domain.Article{ID: articleID, Status: req.Status}, nil
	}
	env.wf.SetRoleFunc = func(ctx context.Context, callerID, targetID string, role domain.Role) error {
		if callerID == targetID {
			return fmt.Errorf("can't change own role: %w", domain.ErrForbidden)
		}
		return nil
	}
	env.wf.DeleteAssignmentFunc = func(ctx context.Context, assignmentID string) error { return nil }

	t.Run("submit review", func(t *testing.T) {
		w := env.do(t, "POST", "/api/v1/reviewer/reviews", "rev",
			strings.NewReader(`{"article_id":"a1","content":"fine","rating":4,"recommendation":"accept"}`))
		require.Equal(t, http.StatusCreated, w.Code)
		review := decode[domain.Review](t, w)
		assert.Equal(t, 4, review.Rating)
		assert.Equal(t, domain.RecommendAccept, review.Recommendation)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := env.do(t, "POST", "/api/v1/reviewer/reviews", "rev", strings.NewReader(`{"rating":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorOf(t, w), "bad request body")
		assert.Empty(t, env.wf.SubmitReviewCalls()[1:])
	})

	t.Run("assign reviewer triggers reminders", func(t *testing.T) {
		w := env.do(t, "POST", "/api/v1/organizer/articles/a1/assignments", "org",
			strings.NewReader(`{"reviewer_id":"rev","due_at":"2025-06-01T12:00:00Z"}`))
		require.Equal(t, http.StatusOK, w.Code)
		as := decode[domain.Assignment](t, w)
		assert.Equal(t, "a1", as.ArticleID)
		assert.Equal(t, "org", as.AssignedBy)
		require.NotNil(t, as.DueAt)
		assert.Len(t, reminders.TriggerCalls(), 1)
	})

	t.Run("status change", func(t *testing.T) {
		w := env.do(t, "PUT", "/api/v1/organizer/articles/a1/status", "org", strings.NewReader(`{"status":"accepted"}`))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.StatusAccepted, decode[domain.Article](t, w).Status)
	})

	t.Run("set role", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent,
			env.do(t, "PUT", "/api/v1/organizer/users/rev/role", "org", strings.NewReader(`{"role":"author"}`)).Code)
		assert.Equal(t, http.StatusForbidden,
			env.do(t, "PUT", "/api/v1/organizer/users/org/role", "org", strings.NewReader(`{"role":"author"}`)).Code)
	})

	t.Run("delete assignment", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, env.do(t, "DELETE", "/api/v1/organizer/assignments/as1", "org", nil).Code)
		require.Len(t, env.wf.DeleteAssignmentCalls(), 1)
		assert.Equal(t, "as1", env.wf.DeleteAssignmentCalls()[0].AssignmentID)
	})
}

func TestServer_RateLimit(t *testing.T) {
	env := newTestEnv(t, func(p *Params) { p.RateLimit, p.RateBurst = 0.5, 1 })
	env.wf.MarkAllNotificationsReadFunc = func(ctx context.Context, userID string) error { return nil }
	env.wf.NotificationsFunc = func(ctx context.Context, userID string) ([]domain.Notification, error) { return nil, nil }

	assert.Equal(t, http.StatusNoContent, env.do(t, "POST", "/api/v1/notifications/read", "rev", nil).Code)
	w := env.do(t, "POST", "/api/v1/notifications/read", "rev", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, env.do(t, "GET", "/api/v1/notifications", "rev", nil).Code, "reads are not limited")
	assert.Equal(t, http.StatusNoContent, env.do(t, "POST", "/api/v1/notifications/read", "author", nil).Code, "other users have own buckets")
}

func TestServer_ExportCSV(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AllArticlesFunc = func(ctx context.Context) ([]domain.Article, error) {
		return []domain.Article{
			{ID: "1", Title: "Accepted", Status: domain.StatusAccepted, SubmittedAt: testNow},
			{ID: "2", Title: "Rejected", Status: domain.StatusRejected, SubmittedAt: testNow},
		}, nil
	}

	w := env.do(t, "GET", "/api/v1/organizer/articles/export?scope=accepted", "org", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.CSVContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="articles_accepted.csv"; filename*=UTF-8''articles_accepted.csv`,
		w.Header().Get("Content-Disposition"))
	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `"Id","Title"`))
	assert.Contains(t, lines[1], `"2025-06-10 09:00"`)

	w = env.do(t, "GET", "/api/v1/organizer/articles/export?status=rejected", "org", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, strings.Split(w.Body.String(), "\n"), 2)

	w = env.do(t, "GET", "/api/v1/organizer/articles/export?scope=pending", "org", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Proceedings(t *testing.T) {
	env := newTestEnv(t)
	env.wf.AllArticlesFunc = func(ctx context.Context) ([]domain.Article, error) {
		return []domain.Article{
			{ID: "1", Title: "Second <b>", ConferenceID: "c1", ConferenceTitle: "Конференція", Status: domain.StatusAccepted,
				SubmittedAt: testNow},
			{ID: "2", Title: "First", ConferenceID: "c1", ConferenceTitle: "Конференція", Status: domain.StatusAcceptedWithComments,
				SubmittedAt: testNow.Add(-time.Hour)},
			{ID: "3", Title: "Other", ConferenceID: "c2", Status: domain.StatusAccepted, SubmittedAt: testNow},
		}, nil
	}

	w := env.do(t, "POST", "/api/v1/organizer/proceedings", "org", strings.NewReader(`{"mode":"conference","conference_id":"c1"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, export.ProceedingsContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="proceedings_conference_`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "filename*=UTF-8''proceedings_conference_%D0%BA")
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	assert.Less(t, strings.Index(body, "First"), strings.Index(body, "Second"))
	assert.Contains(t, body, "Second &lt;b&gt;")
	assert.NotContains(t, body, "Other")

	w = env.do(t, "POST", "/api/v1/organizer/proceedings", "org", strings.NewReader(`{"mode":"manual"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Participation(t *testing.T) {
	cert := domain.Certificate{ID: "cert1", ConferenceID: "c1", CertificateNumber: "CERT-2024-000001",
		SnapshotAuthorName: "Andrii Author", SnapshotConferenceTitle: "Conf", SnapshotConferenceStartDate: "2024-05-01",
		SnapshotConferenceEndDate: "2024-05-03", SnapshotArticleTitle: "Paper", SnapshotArticleStatus: domain.StatusAccepted,
		IssuedAt: testNow}
	part := &mocks.ParticipationMock{
		RecordFunc: func(ctx context.Context, authorID string) (domain.ParticipationRecord, error) {
			return domain.ParticipationRecord{
				Participations:           []domain.Participation{{ConferenceID: "c1", ConferenceTitle: "Conf"}},
				CertificatesByConference: map[string]domain.Certificate{},
			}, nil
		},
		IssueFunc: func(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
			if conferenceID != "c1" {
				return domain.Certificate{}, fmt.Errorf("no accepted article: %w", domain.ErrForbidden)
			}
			return cert, nil
		},
		CertificateFunc: func(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
			if conferenceID != "c1" {
				return domain.Certificate{}, fmt.Errorf("certificate: %w", domain.ErrNotFound)
			}
			return cert, nil
		},
	}
	env := newTestEnv(t, func(p *Params) { p.Participation = part })

	w := env.do(t, "GET", "/api/v1/author/participation", "author", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[domain.ParticipationRecord](t, w).Participations, 1)

	w = env.do(t, "POST", "/api/v1/author/certificates/c1", "author", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CERT-2024-000001", decode[domain.Certificate](t, w).CertificateNumber)
	assert.Equal(t, http.StatusForbidden, env.do(t, "POST", "/api/v1/author/certificates/c2", "author", nil).Code)

	w = env.do(t, "GET", "/api/v1/author/certificates/c1/pdf", "author", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.CertificateContentType, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "certificate_conf_CERT-2024-000001.pdf")
	assert.Equal(t, http.StatusNotFound, env.do(t, "GET", "/api/v1/author/certificates/c2/pdf", "author", nil).Code)
}

func TestServer_Files(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "paper.pdf")
	require.NoError(t, os.WriteFile(objPath, []byte("%PDF-1.4 body"), 0o600))

	files := &mocks.FilesMock{
		VerifyFunc: func(p, expires, sig string) error {
			if sig != "good" {
				return errors.New("bad signature")
			}
			return nil
		},
		OpenFunc: func(p string) (*os.File, error) {
			if p != "author/1_paper.pdf" {
				return nil, fmt.Errorf("object %s: %w", p, domain.ErrNotFound)
			}
			return os.Open(objPath) //nolint:gosec // test file
		},
	}
	env := newTestEnv(t, func(p *Params) { p.Files = files })

	w := env.do(t, "GET", "/files/author/1_paper.pdf?expires=1&sig=good", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 body", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "author/1_paper.pdf", files.VerifyCalls()[0].ObjPath)

	assert.Equal(t, http.StatusForbidden, env.do(t, "GET", "/files/author/1_paper.pdf?expires=1&sig=bad", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, "GET", "/files/author/missing.pdf?expires=1&sig=good", "", nil).Code)
}

func TestServer_ArticleFileURL(t *testing.T) {
	env := newTestEnv(t)
	env.wf.ArticleFileURLFunc = func(ctx context.Context, caller domain.Profile, articleID string) (string, error) {
		assert.Equal(t, "rev", caller.ID)
		return "http://localhost:8080/files/author/1_paper.pdf?expires=1&sig=x", nil
	}
	w := env.do(t, "GET", "/api/v1/articles/a1/file", "rev", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "http://localhost:8080/files/author/1_paper.pdf?expires=1&sig=x", decode[map[string]string](t, w)["url"])
}

func TestServer_Preferences(t *testing.T) {
	env := newTestEnv(t)

	prefs := decode[preferences.Preferences](t, env.do(t, "GET", "/api/v1/preferences", "author", nil))
	assert.Equal(t, preferences.ThemeSystem, prefs.Theme)
	assert.Equal(t, 8, prefs.PageSize)
	assert.Equal(t, listview.DateDesc, prefs.ListSort[listview.ListReviewerArticles])

	w := env.do(t, "PATCH", "/api/v1/preferences", "author", strings.NewReader(`{"theme":"dark","timezone":"Europe/Kyiv"}`))
	require.Equal(t, http.StatusOK, w.Code)
	prefs = decode[preferences.Preferences](t, w)
	assert.Equal(t, preferences.ThemeDark, prefs.Theme)
	assert.Equal(t, "Europe/Kyiv", prefs.Timezone)
	assert.Equal(t, "dark", env.kv.get("user.author.app.theme"))

	w = env.do(t, "PATCH", "/api/v1/preferences", "author", strings.NewReader(`{"theme":"light","page_size":7}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "dark", env.kv.get("user.author.app.theme"), "nothing stored from an invalid patch")
}

func TestServer_PreferenceEvents(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.srv.router)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", ts.URL+"/api/v1/preferences/events", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("X-User-Id", "author")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// other users' changes are not streamed
	w := env.do(t, "PATCH", "/api/v1/preferences", "rev", strings.NewReader(`{"theme":"light"}`))
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, "PATCH", "/api/v1/preferences", "author", strings.NewReader(`{"theme":"dark"}`))
	require.Equal(t, http.StatusOK, w.Code)

	rd := bufio.NewReader(resp.Body)
	line, err := rd.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: preference\n", line)
	line, err = rd.ReadString('\n')
	require.NoError(t, err)
	var change preferences.Change
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &change))
	assert.Equal(t, preferences.Change{Owner: "author", Key: "app.theme", Value: "dark"}, change)
}

func TestServer_PreferenceEventsNotThrottled(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.srv.router)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for range maxInFlight {
		req, err := http.NewRequestWithContext(ctx, "GET", ts.URL+"/api/v1/preferences/events", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-User-Id", "author")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "open event streams don't take throttle slots")
}

func TestThrottle(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	h := throttle(1, "/stream")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/slow", http.NoBody))
	}()
	<-started

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/other", http.NoBody))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	go h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/stream", http.NoBody))
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("stream path was throttled")
	}

	close(release)
	<-done
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/other", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	env := newTestEnv(t, func(p *Params) {
		p.Metrics = metrics.NewCollector(reg)
		p.Gatherer = reg
	})
	require.Equal(t, http.StatusOK, env.do(t, "GET", "/api/v1/status", "", nil).Code)

	w := env.do(t, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `confdesk_http_requests_total{method="GET",status_code="200"}`)
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	attachment(w, "text/plain", `збірка "1".doc`)
	assert.Equal(t, `attachment; filename="______ _1_.doc"; filename*=UTF-8''%D0%B7%D0%B1%D1%96%D1%80%D0%BA%D0%B0%20%221%22.doc`,
		w.Header().Get("Content-Disposition"))
}

func TestUserLimiter(t *testing.T) {
	l := newUserLimiter(0, 0)
	for range 100 {
		assert.True(t, l.allow("u"), "zero limit disables limiting")
	}

	l = newUserLimiter(1, 2)
	assert.True(t, l.allow("u"))
	assert.True(t, l.allow("u"))
	assert.False(t, l.allow("u"))
	assert.Equal(t, 1, l.retryAfter())

	l.mu.Lock()
	l.users["u"].lastAccess = time.Now().Add(-time.Hour)
	l.lastPrune = time.Now().Add(-time.Hour)
	l.mu.Unlock()
	assert.True(t, l.allow("other"))
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.users, "u", "idle buckets are dropped")
}
