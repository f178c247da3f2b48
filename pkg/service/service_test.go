package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/repository"
	"github.com/umputun/confdesk/pkg/service/mocks"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	repos *repository.Repositories
	files *mocks.FileStoreMock

	organizer, author, reviewer domain.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	repos.SetClock(func() time.Time { return testNow })

	files := &mocks.FileStoreMock{
		UploadFunc: func(ctx context.Context, objPath string, r io.Reader) error {
			_, err := io.Copy(io.Discard, r)
			return err
		},
		SignedURLFunc: func(ctx context.Context, objPath string) (string, error) {
			return "http://localhost/files/" + objPath + "?sig=x", nil
		},
	}
	f := &fixture{svc: New(Params{Repos: repos, Files: files, Now: func() time.Time { return testNow }}), repos: repos, files: files}
	f.organizer = f.profile(t, "org", "Olena Organizer", domain.RoleOrganizer)
	f.author = f.profile(t, "author", "Anna Author", domain.RoleAuthor)
	f.reviewer = f.profile(t, "rev", "Bohdan Reviewer", domain.RoleReviewer)
	return f
}

func (f *fixture) profile(t *testing.T, id, name string, role domain.Role) domain.Profile {
	t.Helper()
	p := domain.Profile{ID: id, Email: id + "@example.com", FullName: name, Role: role}
	require.NoError(t, f.repos.Profile.Create(context.Background(), &p))
	return p
}

func (f *fixture) conference(t *testing.T, title string, public bool) domain.Conference {
	t.Helper()
	c, err := f.svc.CreateConference(context.Background(), f.organizer.ID, CreateConferenceRequest{
		Title: title, StartDate: "2025-05-01", EndDate: "2025-05-03", IsPublic: public})
	require.NoError(t, err)
	return c
}

func articleRequest(conferenceID string) SubmitArticleRequest {
	return SubmitArticleRequest{
		Title:        "Neural <b>networks</b>",
		Abstract:     "About networks",
		Keywords:     " ml, , networks ",
		ConferenceID: conferenceID,
		FileName:     "my paper.pdf",
		ContentType:  "application/pdf",
		FileSize:     1024,
		File:         strings.NewReader("%PDF-1.4"),
	}
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitKeywords(" a ,, b c ,"))
	assert.Empty(t, SplitKeywords(" , "))
}

func TestService_SubmitArticle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "Neural networks", article.Title)
	assert.Equal(t, []string{"ml", "networks"}, article.Keywords)
	assert.Equal(t, "author/1749546000000_my paper.pdf", article.FileURL)
	assert.Equal(t, "my paper.pdf", article.FileName)
	assert.Equal(t, domain.StatusSubmitted, article.Status)
	assert.Equal(t, "Anna Author", article.AuthorName)
	require.Len(t, f.files.UploadCalls(), 1)
	assert.Equal(t, article.FileURL, f.files.UploadCalls()[0].ObjPath)
}

func TestService_SubmitArticle_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	public := f.conference(t, "Public", true)
	other := f.conference(t, "Other", false)
	sec, err := f.svc.CreateSection(ctx, other.ID, CreateSectionRequest{Title: "Section"})
	require.NoError(t, err)

	tbl := []struct {
		name   string
		modify func(r *SubmitArticleRequest)
		errMsg string
	}{
		{"empty title", func(r *SubmitArticleRequest) { r.Title = "  " }, "title is a required field"},
		{"markup only title", func(r *SubmitArticleRequest) { r.Title = "<i></i>" }, "title is a required field"},
		{"no keywords", func(r *SubmitArticleRequest) { r.Keywords = " , " }, "at least one keyword is required"},
		{"no file", func(r *SubmitArticleRequest) { r.File, r.FileName = nil, "" }, "article file is required"},
		{"bad type", func(r *SubmitArticleRequest) { r.FileName, r.ContentType = "paper.exe", "application/x-msdownload" }, "file"},
		{"too big", func(r *SubmitArticleRequest) { r.FileSize = 11 << 20 }, "10MB"},
		{"conference required", func(r *SubmitArticleRequest) { r.ConferenceID = "" }, "conference is required"},
		{"unknown conference", func(r *SubmitArticleRequest) { r.ConferenceID = "nope" }, "unknown conference nope"},
		{"foreign section", func(r *SubmitArticleRequest) { r.SectionID = sec.ID }, "is not part of the conference"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			req := articleRequest(public.ID)
			tt.modify(&req)
			_, err := f.svc.SubmitArticle(ctx, f.author.ID, req)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
	assert.Empty(t, f.files.UploadCalls(), "nothing uploaded on validation failure")

	req := articleRequest(other.ID)
	req.SectionID = sec.ID
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, req)
	require.NoError(t, err)
	assert.Equal(t, sec.ID, article.SectionID)
	assert.Equal(t, "Other", article.ConferenceTitle)
}

func TestService_SubmitArticle_UploadFails(t *testing.T) {
	f := newFixture(t)
	f.files.UploadFunc = func(ctx context.Context, objPath string, r io.Reader) error { return errors.New("disk full") }

	_, err := f.svc.SubmitArticle(context.Background(), f.author.ID, articleRequest(""))
	require.EqualError(t, err, "upload article file: disk full")

	list, err := f.svc.AuthorArticles(context.Background(), f.author.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_SubmitReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)
	_, err = f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{ReviewerID: f.reviewer.ID})
	require.NoError(t, err)

	available, err := f.svc.AvailableArticles(ctx, f.reviewer.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)

	t.Run("invalid", func(t *testing.T) {
		_, err := f.svc.SubmitReview(ctx, f.reviewer.ID, SubmitReviewRequest{ArticleID: article.ID, Content: "x",
			Rating: 6, Recommendation: domain.RecommendAccept})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "rating must be at most 5")

		_, err = f.svc.SubmitReview(ctx, f.reviewer.ID, SubmitReviewRequest{ArticleID: article.ID, Content: "x",
			Rating: 3, Recommendation: "maybe"})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("own article", func(t *testing.T) {
		_, err := f.svc.SubmitReview(ctx, f.author.ID, SubmitReviewRequest{ArticleID: article.ID, Content: "great",
			Rating: 5, Recommendation: domain.RecommendAccept})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("submit", func(t *testing.T) {
		review, err := f.svc.SubmitReview(ctx, f.reviewer.ID, SubmitReviewRequest{ArticleID: article.ID,
			Content: "solid work", Rating: 4, Recommendation: domain.RecommendAcceptWithComments})
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewSubmitted, review.Status)

		a, err := f.repos.Article.Get(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnderReview, a.Status)

		assignments, err := f.repos.Assignment.ListForArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.NotNil(t, assignments[0].CompletedAt)

		available, err := f.svc.AvailableArticles(ctx, f.reviewer.ID)
		require.NoError(t, err)
		assert.Empty(t, available)

		reviews, err := f.svc.AuthorReviews(ctx, f.author.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Bohdan Reviewer", reviews[0].ReviewerName)
	})

	t.Run("second review conflicts", func(t *testing.T) {
		_, err := f.svc.SubmitReview(ctx, f.reviewer.ID, SubmitReviewRequest{ArticleID: article.ID,
			Content: "again", Rating: 4, Recommendation: domain.RecommendAccept})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("decided article conflicts", func(t *testing.T) {
		second := f.profile(t, "rev2", "Second Reviewer", domain.RoleReviewer)
		_, err := f.svc.UpdateArticleStatus(ctx, f.organizer.ID, article.ID, StatusChangeRequest{Status: domain.StatusRejected})
		require.NoError(t, err)
		_, err = f.svc.SubmitReview(ctx, second.ID, SubmitReviewRequest{ArticleID: article.ID,
			Content: "late", Rating: 1, Recommendation: domain.RecommendReject})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("missing article", func(t *testing.T) {
		_, err := f.svc.SubmitReview(ctx, f.reviewer.ID, SubmitReviewRequest{ArticleID: "nope",
			Content: "x", Rating: 1, Recommendation: domain.RecommendReject})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_CreateConference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	later := testNow.Add(24 * time.Hour)

	tbl := []struct {
		name   string
		req    CreateConferenceRequest
		errMsg string
	}{
		{"blank title", CreateConferenceRequest{Title: "  ", StartDate: "2025-01-01", EndDate: "2025-01-02"}, "title is a required field"},
		{"bad date", CreateConferenceRequest{Title: "t", StartDate: "01.01.2025", EndDate: "2025-01-02"}, "start_date"},
		{"end before start", CreateConferenceRequest{Title: "t", StartDate: "2025-01-02", EndDate: "2025-01-01"},
			"end_date must not be before start_date"},
		{"submission window", CreateConferenceRequest{Title: "t", StartDate: "2025-01-01", EndDate: "2025-01-01",
			SubmissionStartAt: &later, SubmissionEndAt: &testNow}, "submission_end_at must not be before submission_start_at"},
		{"bad timezone", CreateConferenceRequest{Title: "t", StartDate: "2025-01-01", EndDate: "2025-01-01", Timezone: "Mars/Base"},
			"timezone must be a known timezone"},
		{"bad status", CreateConferenceRequest{Title: "t", StartDate: "2025-01-01", EndDate: "2025-01-01", Status: "open"}, "status"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateConference(ctx, f.organizer.ID, tt.req)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	c, err := f.svc.CreateConference(ctx, f.organizer.ID, CreateConferenceRequest{Title: " Summit ", StartDate: "2025-01-01",
		EndDate: "2025-01-01", Location: " ", Status: domain.ConferenceAnnounced})
	require.NoError(t, err)
	assert.Equal(t, "Summit", c.Title)
	assert.Equal(t, domain.DefaultConferenceTimezone, c.Timezone)
	assert.Empty(t, c.Location)
	assert.Equal(t, domain.ConferenceAnnounced, c.Status)
}

func TestService_ConferenceDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.conference(t, "Details", true)
	_, err := f.svc.CreateSection(ctx, c.ID, CreateSectionRequest{Title: "Main"})
	require.NoError(t, err)
	_, err = f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(c.ID))
	require.NoError(t, err)

	details, err := f.svc.ConferenceDetails(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Details", details.Conference.Title)
	require.Len(t, details.Sections, 1)
	require.Len(t, details.Articles, 1)
	assert.Equal(t, "Anna Author", details.Articles[0].AuthorName)

	_, err = f.svc.ConferenceDetails(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.CreateSection(ctx, "missing", CreateSectionRequest{Title: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ArticleDetailsVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)
	stranger := f.profile(t, "stranger", "Stranger", domain.RoleAuthor)

	_, err = f.svc.ArticleDetails(ctx, f.reviewer, article.ID)
	require.ErrorIs(t, err, domain.ErrForbidden, "reviewer without assignment")
	_, err = f.svc.ArticleDetails(ctx, stranger, article.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{ReviewerID: f.reviewer.ID})
	require.NoError(t, err)
	_, err = f.svc.UpdateArticleStatus(ctx, f.organizer.ID, article.ID, StatusChangeRequest{Status: domain.StatusUnderReview,
		Comments: "assigned"})
	require.NoError(t, err)

	own, err := f.svc.ArticleDetails(ctx, f.author, article.ID)
	require.NoError(t, err)
	assert.Nil(t, own.Assignments)
	require.Len(t, own.History, 1)
	assert.Equal(t, "assigned", own.History[0].Comments)

	asReviewer, err := f.svc.ArticleDetails(ctx, f.reviewer, article.ID)
	require.NoError(t, err)
	assert.Nil(t, asReviewer.Assignments)

	asOrganizer, err := f.svc.ArticleDetails(ctx, f.organizer, article.ID)
	require.NoError(t, err)
	require.Len(t, asOrganizer.Assignments, 1)
	assert.Equal(t, "rev@example.com", asOrganizer.Assignments[0].ReviewerEmail)
}

func TestService_ArticleFileURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)

	url, err := f.svc.ArticleFileURL(ctx, f.author, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/files/"+article.FileURL+"?sig=x", url)
	require.Len(t, f.files.SignedURLCalls(), 1)
	assert.Equal(t, article.FileURL, f.files.SignedURLCalls()[0].ObjPath)

	_, err = f.svc.ArticleFileURL(ctx, f.reviewer, article.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	f.files.SignedURLFunc = func(ctx context.Context, objPath string) (string, error) { return "", domain.ErrNotFound }
	_, err = f.svc.ArticleFileURL(ctx, f.organizer, article.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AssignReviewer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)

	_, err = f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{ReviewerID: f.author.ID})
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{})
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{ReviewerID: "ghost"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	due := testNow.Add(72 * time.Hour)
	a, err := f.svc.AssignReviewer(ctx, f.organizer.ID, article.ID, AssignRequest{ReviewerID: f.reviewer.ID, DueAt: &due})
	require.NoError(t, err)
	assert.Equal(t, f.organizer.ID, a.AssignedBy)
	require.NoError(t, f.svc.DeleteAssignment(ctx, a.ID))
	require.ErrorIs(t, f.svc.DeleteAssignment(ctx, a.ID), domain.ErrNotFound)
}

func TestService_SaveSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	article, err := f.svc.SubmitArticle(ctx, f.author.ID, articleRequest(""))
	require.NoError(t, err)

	starts := testNow.Add(48 * time.Hour)
	updated, err := f.svc.SaveSchedule(ctx, article.ID, ScheduleRequest{PresentationStartsAt: &starts,
		PresentationLocation: "Room <b>101</b>"})
	require.NoError(t, err)
	require.NotNil(t, updated.PresentationStartsAt)
	assert.True(t, updated.PresentationStartsAt.Equal(starts))
	assert.Equal(t, "Room 101", updated.PresentationLocation)

	_, err = f.svc.SaveSchedule(ctx, "missing", ScheduleRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateArticleStatus_Invalid(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateArticleStatus(context.Background(), f.organizer.ID, "any", StatusChangeRequest{Status: "published"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_EnsureProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	organizers := []string{"Boss@Example.com"}

	existing, err := f.svc.EnsureProfile(ctx, Identity{UserID: f.author.ID}, organizers)
	require.NoError(t, err)
	assert.Equal(t, f.author.Email, existing.Email)

	created, err := f.svc.EnsureProfile(ctx, Identity{UserID: "u-new", Email: "New@Example.com", Name: "New User"}, organizers)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAuthor, created.Role)
	assert.Equal(t, "new@example.com", created.Email)

	boss, err := f.svc.EnsureProfile(ctx, Identity{UserID: "u-boss", Email: "boss@example.com"}, organizers)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOrganizer, boss.Role)

	_, err = f.svc.EnsureProfile(ctx, Identity{UserID: "u-anon"}, organizers)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ProfileAndNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateProfile(ctx, f.author.ID, ProfileRequest{FullName: " "})
	require.ErrorIs(t, err, domain.ErrValidation)
	p, err := f.svc.UpdateProfile(ctx, f.author.ID, ProfileRequest{FullName: "Anna Renamed", Institution: "KPI"})
	require.NoError(t, err)
	assert.Equal(t, "Anna Renamed", p.FullName)

	require.NoError(t, f.repos.Notification.Create(ctx, &domain.Notification{UserID: f.author.ID, Title: "t", Message: "m"}))
	list, err := f.svc.Notifications(ctx, f.author.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	n, err := f.svc.UnreadNotifications(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, f.svc.MarkNotificationRead(ctx, f.author.ID, list[0].ID))
	require.NoError(t, f.svc.MarkAllNotificationsRead(ctx, f.author.ID))
	n, err = f.svc.UnreadNotifications(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_SetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.SetRole(ctx, f.organizer.ID, f.author.ID, domain.RoleReviewer))
	reviewers, err := f.svc.Reviewers(ctx)
	require.NoError(t, err)
	assert.Len(t, reviewers, 2)
	require.ErrorIs(t, f.svc.SetRole(ctx, f.author.ID, f.reviewer.ID, domain.RoleAuthor), domain.ErrForbidden)
}
