package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/listview"
	"github.com/umputun/confdesk/pkg/preferences"
)

// listResponse is a page of a dashboard list with the sort it was ordered by
type listResponse[T any] struct {
	listview.Page[T]
	Sort listview.SortOption `json:"sort"`
}

// listView resolves sort, page size, locale and page of a list request. A sort passed in the query
// is remembered as the list's preference. Any change of filters, sort or page size sends the list
// back to page 1. The returned settle records the page actually shown.
func (s *Server) listView(r *http.Request, listKey string, filters ...any) (view listview.View, settle func(page int)) {
	ctx := r.Context()
	st := s.prefs(r)

	sortOpt := st.ListSort(ctx, listKey)
	if raw := r.URL.Query().Get("sort"); raw != "" {
		set, _ := listview.SortSetFor(listKey)
		if opt := listview.SortOption(raw); set.Contains(opt) && opt != sortOpt {
			if err := st.SetListSort(ctx, listKey, opt); err != nil {
				log.Printf("[WARN] can't store sort of %s for %s: %v", listKey, st.Owner(), err)
			}
			sortOpt = opt
		}
	}
	pageSize := preferences.Get(ctx, st, preferences.PageSizeKey)
	requested, _ := strconv.Atoi(r.URL.Query().Get("page"))

	key := st.Owner() + "/" + listKey
	fp := listview.Fingerprint(append(filters, sortOpt, pageSize)...)
	view = listview.View{
		Sort:     sortOpt,
		Page:     s.lists.Page(key, fp, requested),
		PageSize: pageSize,
		Locale:   preferences.Get(ctx, st, preferences.LanguageKey),
	}
	return view, func(page int) { s.lists.Settle(key, fp, page) }
}

func query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// reviewerArticlesHandler lists articles waiting for the caller's review
func (s *Server) reviewerArticlesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.AvailableArticles(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	f := listview.ReviewerArticleFilter{Search: query(r, "q"), Deadline: query(r, "deadline"), ConferenceID: query(r, "conference")}
	view, settle := s.listView(r, listview.ListReviewerArticles, f)
	f.Now = s.Now()
	page := listview.ReviewerArticles(items, f, view)
	settle(page.Page)
	RenderJSON(w, r, http.StatusOK, listResponse[domain.ReviewerArticle]{Page: page, Sort: view.Sort})
}

// reviewerReviewsHandler lists the caller's own reviews
func (s *Server) reviewerReviewsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.ReviewerReviews(r.Context(), caller(r).ID)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	s.renderReviews(w, r, items, listview.ListReviewerReviews, listview.ReviewScopeReviewer)
}

// organizerReviewsHandler lists all submitted reviews
func (s *Server) organizerReviewsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.SubmittedReviews(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	s.renderReviews(w, r, items, listview.ListOrganizerReviews, listview.ReviewScopeOrganizer)
}

func (s *Server) renderReviews(w http.ResponseWriter, r *http.Request, items []domain.Review, listKey string, scope listview.ReviewScope) {
	f := listview.ReviewFilter{
		Search:         query(r, "q"),
		Recommendation: domain.Recommendation(query(r, "recommendation")),
		ConferenceID:   query(r, "conference"),
		Scope:          scope,
	}
	view, settle := s.listView(r, listKey, f)
	page := listview.Reviews(items, f, view)
	settle(page.Page)
	RenderJSON(w, r, http.StatusOK, listResponse[domain.Review]{Page: page, Sort: view.Sort})
}

// organizerArticlesHandler lists all articles
func (s *Server) organizerArticlesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.AllArticles(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	f := articleFilter(r)
	view, settle := s.listView(r, listview.ListOrganizerArticles, f)
	page := listview.OrganizerArticles(items, f, view)
	settle(page.Page)
	RenderJSON(w, r, http.StatusOK, listResponse[domain.Article]{Page: page, Sort: view.Sort})
}

func articleFilter(r *http.Request) listview.ArticleFilter {
	return listview.ArticleFilter{
		Search:       query(r, "q"),
		Status:       domain.ArticleStatus(query(r, "status")),
		ConferenceID: query(r, "conference"),
	}
}

// organizerConferencesHandler lists all conferences
func (s *Server) organizerConferencesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.Conferences(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	f := listview.ConferenceFilter{
		Search:     query(r, "q"),
		Status:     domain.ConferenceStatus(query(r, "status")),
		Visibility: query(r, "visibility"),
	}
	view, settle := s.listView(r, listview.ListOrganizerConfs, f)
	page := listview.Conferences(items, f, view)
	settle(page.Page)
	RenderJSON(w, r, http.StatusOK, listResponse[domain.Conference]{Page: page, Sort: view.Sort})
}

// usersHandler is the role management list
func (s *Server) usersHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.Workflows.Profiles(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	f := listview.UserFilter{Search: query(r, "q")}
	view, settle := s.listView(r, listview.ListRoleManagementUser, f)
	page := listview.Users(items, f, view)
	settle(page.Page)
	RenderJSON(w, r, http.StatusOK, listResponse[domain.Profile]{Page: page, Sort: view.Sort})
}
