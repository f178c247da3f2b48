package listview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/confdesk/pkg/domain"
)

var baseTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func makeArticles(n int) []domain.Article {
	res := make([]domain.Article, n)
	for i := range res {
		res[i] = domain.Article{
			ID:          fmt.Sprintf("a%02d", i+1),
			Title:       fmt.Sprintf("Article %02d", n-i), // reverse of id order
			Abstract:    "plain abstract",
			Status:      domain.StatusSubmitted,
			SubmittedAt: baseTime.Add(time.Duration(i) * time.Hour),
		}
	}
	return res
}

func titles(items []domain.Article) []string {
	res := make([]string, len(items))
	for i, a := range items {
		res[i] = a.Title
	}
	return res
}

func TestOrganizerArticles_TitleAscPages(t *testing.T) {
	items := makeArticles(23)

	page1 := OrganizerArticles(items, ArticleFilter{}, View{Sort: TitleAsc, Page: 1, PageSize: 8})
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 23, page1.Total)
	require.Len(t, page1.Items, 8)
	assert.Equal(t, []string{"Article 01", "Article 02", "Article 03", "Article 04",
		"Article 05", "Article 06", "Article 07", "Article 08"}, titles(page1.Items))

	page3 := OrganizerArticles(items, ArticleFilter{}, View{Sort: TitleAsc, Page: 3, PageSize: 8})
	require.Len(t, page3.Items, 7)
	assert.Equal(t, "Article 17", page3.Items[0].Title)
	assert.Equal(t, "Article 23", page3.Items[6].Title)
}

func TestOrganizerArticles_DateOrdersAreReversed(t *testing.T) {
	items := makeArticles(12)
	desc := Apply(items, nil, ArticleOrder(DateDesc, "en"))
	asc := Apply(items, nil, ArticleOrder(DateAsc, "en"))
	require.Len(t, desc, 12)
	for i := range desc {
		assert.Equal(t, desc[i].ID, asc[len(asc)-1-i].ID)
	}
	assert.Equal(t, "a12", desc[0].ID)

	// unknown option sorts like the default
	def := Apply(items, nil, ArticleOrder("bogus", "en"))
	assert.Equal(t, desc, def)
}

func TestOrganizerArticles_Search(t *testing.T) {
	items := makeArticles(50)
	items[3].Title = "Neural networks for parsing"
	items[10].Abstract = "We apply NEURAL methods"
	items[20].Title = "Deep NeUrAl nets"
	items[30].AuthorName = "Neuralink Fan" // author name is searched too

	res := OrganizerArticles(items, ArticleFilter{Search: "  neural "}, View{Sort: DateAsc, Page: 1, PageSize: 8})
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	ids := []string{}
	for _, a := range res.Items {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a04", "a11", "a21", "a31"}, ids)

	none := OrganizerArticles(items, ArticleFilter{Search: "quantum"}, View{Page: 5, PageSize: 8})
	assert.Empty(t, none.Items)
	assert.Equal(t, 1, none.Page)
	assert.Equal(t, 1, none.TotalPages)
}

func TestOrganizerArticles_Filters(t *testing.T) {
	items := []domain.Article{
		{ID: "1", Title: "A", Status: domain.StatusAccepted, ConferenceID: "c1", ConferenceTitle: "GoCon"},
		{ID: "2", Title: "B", Status: domain.StatusRejected, ConferenceID: "c1", ConferenceTitle: "GoCon"},
		{ID: "3", Title: "C", Status: domain.StatusAccepted, ConferenceID: "c2", ConferenceTitle: "RustConf"},
	}

	t.Run("status", func(t *testing.T) {
		res := Apply(items, ArticleFilter{Status: domain.StatusAccepted}.Keep(), nil)
		assert.Len(t, res, 2)
	})
	t.Run("conference", func(t *testing.T) {
		res := Apply(items, ArticleFilter{ConferenceID: "c1"}.Keep(), nil)
		assert.Len(t, res, 2)
	})
	t.Run("all means unset", func(t *testing.T) {
		res := Apply(items, ArticleFilter{Status: "all", ConferenceID: "all"}.Keep(), nil)
		assert.Len(t, res, 3)
	})
	t.Run("conference title search", func(t *testing.T) {
		res := Apply(items, ArticleFilter{Search: "rust"}.Keep(), nil)
		require.Len(t, res, 1)
		assert.Equal(t, "3", res[0].ID)
	})
	t.Run("search conference ignores status", func(t *testing.T) {
		f := ArticleFilter{Status: domain.StatusAccepted, ConferenceID: "c1"}
		assert.Len(t, Apply(items, f.SearchConference(), nil), 2)
		assert.Len(t, Apply(items, f.Keep(), nil), 1)
	})
}

func TestReviewerArticles_Deadline(t *testing.T) {
	now := baseTime
	past, future := now.Add(-time.Hour), now.Add(time.Hour)
	items := []domain.ReviewerArticle{
		{Article: domain.Article{ID: "late", Title: "Late", SubmittedAt: now}, AssignmentDueAt: &past},
		{Article: domain.Article{ID: "soon", Title: "Soon", SubmittedAt: now}, AssignmentDueAt: &future},
		{Article: domain.Article{ID: "open", Title: "Open", SubmittedAt: now}},
	}

	tbl := []struct {
		deadline string
		want     []string
	}{
		{DeadlineAll, []string{"late", "open", "soon"}},
		{"", []string{"late", "open", "soon"}},
		{DeadlineOverdue, []string{"late"}},
		{DeadlineUpcoming, []string{"open", "soon"}},
	}
	for _, tt := range tbl {
		t.Run(tt.deadline, func(t *testing.T) {
			res := ReviewerArticles(items, ReviewerArticleFilter{Deadline: tt.deadline, Now: now},
				View{Sort: TitleAsc, Page: 1, PageSize: 8})
			ids := []string{}
			for _, a := range res.Items {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestReviews_RatingAndDateFallback(t *testing.T) {
	early := baseTime.Add(-48 * time.Hour)
	late := baseTime
	items := []domain.Review{
		{ID: "low", Rating: 2, SubmittedAt: &late, ArticleTitle: "beta"},
		{ID: "high", Rating: 5, SubmittedAt: &early, ArticleTitle: "Alpha"},
		{ID: "draft", Rating: 3, CreatedAt: baseTime.Add(24 * time.Hour), ArticleTitle: "gamma"},
	}

	t.Run("rating desc ignores dates", func(t *testing.T) {
		res := Reviews(items, ReviewFilter{}, View{Sort: RatingDesc, Page: 1, PageSize: 8})
		assert.Equal(t, "high", res.Items[0].ID)
		assert.Equal(t, "draft", res.Items[1].ID)
		assert.Equal(t, "low", res.Items[2].ID)
	})
	t.Run("date desc falls back to created_at", func(t *testing.T) {
		res := Reviews(items, ReviewFilter{}, View{Sort: DateDesc, Page: 1, PageSize: 8})
		assert.Equal(t, []string{"draft", "low", "high"}, []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})
	})
	t.Run("title asc uses article title case-insensitively", func(t *testing.T) {
		res := Reviews(items, ReviewFilter{}, View{Sort: TitleAsc, Page: 1, PageSize: 8})
		assert.Equal(t, []string{"high", "low", "draft"}, []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})
	})
}

func TestReviews_Filters(t *testing.T) {
	items := []domain.Review{
		{ID: "1", Content: "solid work", Recommendation: domain.RecommendAccept, ArticleConferenceID: "c1",
			ReviewerName: "Rita Reviewer", ArticleAuthorName: "Andy Author"},
		{ID: "2", Content: "needs work", Recommendation: domain.RecommendReject, ArticleConferenceID: "c2",
			ReviewerName: "Rob Reviewer", ArticleAuthorName: "Anna Author"},
	}

	assert.Len(t, Apply(items, ReviewFilter{Recommendation: domain.RecommendReject}.Keep(), nil), 1)
	assert.Len(t, Apply(items, ReviewFilter{ConferenceID: "c1"}.Keep(), nil), 1)
	assert.Len(t, Apply(items, ReviewFilter{Search: "WORK"}.Keep(), nil), 2)

	// organizer searches reviewer names, reviewer searches author names
	assert.Len(t, Apply(items, ReviewFilter{Search: "rita"}.Keep(), nil), 1)
	assert.Empty(t, Apply(items, ReviewFilter{Search: "anna"}.Keep(), nil))
	assert.Len(t, Apply(items, ReviewFilter{Search: "anna", Scope: ReviewScopeReviewer}.Keep(), nil), 1)
}

func TestConferences(t *testing.T) {
	items := []domain.Conference{
		{ID: "1", Title: "zeta summit", StartDate: "2025-05-01", Location: "Kyiv", IsPublic: true, Status: domain.ConferenceDraft},
		{ID: "2", Title: "Alpha Forum", StartDate: "2024-01-10", Location: "Lviv", IsPublic: false, Status: domain.ConferenceClosed},
		{ID: "3", Title: "Écoles", StartDate: "2026-02-02", Location: "Paris", IsPublic: true, Status: domain.ConferenceAnnounced},
	}

	ids := func(p Page[domain.Conference]) []string {
		res := []string{}
		for _, c := range p.Items {
			res = append(res, c.ID)
		}
		return res
	}

	assert.Equal(t, []string{"3", "1", "2"}, ids(Conferences(items, ConferenceFilter{}, View{Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"2", "1", "3"}, ids(Conferences(items, ConferenceFilter{}, View{Sort: StartAsc, Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"2", "3", "1"}, ids(Conferences(items, ConferenceFilter{}, View{Sort: TitleAsc, Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"1", "3", "2"}, ids(Conferences(items, ConferenceFilter{}, View{Sort: TitleDesc, Page: 1, PageSize: 8})))

	assert.Equal(t, []string{"3", "1"}, ids(Conferences(items, ConferenceFilter{Visibility: VisibilityPublic}, View{Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"2"}, ids(Conferences(items, ConferenceFilter{Visibility: VisibilityPrivate}, View{Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"2"}, ids(Conferences(items, ConferenceFilter{Search: "lviv"}, View{Page: 1, PageSize: 8})))
	assert.Equal(t, []string{"1"}, ids(Conferences(items, ConferenceFilter{Status: domain.ConferenceDraft}, View{Page: 1, PageSize: 8})))
}

func TestUsers(t *testing.T) {
	items := []domain.Profile{
		{ID: "1", FullName: "bob Smith", Email: "bob@example.com", CreatedAt: baseTime},
		{ID: "2", FullName: "Alice Jones", Email: "alice@uni.edu", Institution: "KPI", CreatedAt: baseTime.Add(time.Hour)},
		{ID: "3", FullName: "Carol", Email: "carol@example.com", CreatedAt: baseTime.Add(-time.Hour)},
	}

	res := Users(items, UserFilter{}, View{Page: 1, PageSize: 8})
	assert.Equal(t, "2", res.Items[0].ID)

	res = Users(items, UserFilter{}, View{Sort: NameAsc, Page: 1, PageSize: 8})
	assert.Equal(t, []string{"2", "1", "3"}, []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})

	res = Users(items, UserFilter{Search: "kpi"}, View{Page: 1, PageSize: 8})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2", res.Items[0].ID)

	res = Users(items, UserFilter{Search: "EXAMPLE.COM"}, View{Page: 1, PageSize: 8})
	assert.Len(t, res.Items, 2)
}

func TestApply_StableForTies(t *testing.T) {
	items := []domain.Review{{ID: "1", Rating: 4}, {ID: "2", Rating: 4}, {ID: "3", Rating: 4}}
	res := Apply(items, nil, ReviewOrder(RatingDesc, "en"))
	assert.Equal(t, "1", res[0].ID)
	assert.Equal(t, "3", res[2].ID)
}

func TestApply_UkrainianCollation(t *testing.T) {
	items := []domain.Article{{ID: "1", Title: "яблуко"}, {ID: "2", Title: "Абетка"}, {ID: "3", Title: "їжак"}}
	res := Apply(items, nil, ArticleOrder(TitleAsc, "uk"))
	assert.Equal(t, []string{"2", "3", "1"}, []string{res[0].ID, res[1].ID, res[2].ID})
}
