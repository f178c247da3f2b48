package listview

import (
	"time"

	"github.com/umputun/confdesk/pkg/domain"
)

// ArticleFilter is the organizer article list filter
type ArticleFilter struct {
	Search       string               // title, abstract, author name, conference title
	Status       domain.ArticleStatus // empty or "all" for any status
	ConferenceID string               // empty or "all" for any conference
}

// Deadline filter values for reviewer lists
const (
	DeadlineAll      = "all"
	DeadlineOverdue  = "overdue"
	DeadlineUpcoming = "upcoming"
)

// ReviewerArticleFilter is the reviewer's available articles filter
type ReviewerArticleFilter struct {
	Search       string // title, abstract, author name
	Deadline     string // all, overdue or upcoming; upcoming includes articles without a deadline
	ConferenceID string
	Now          time.Time // instant deadlines are compared against
}

// SearchConference keeps articles matching the search text and conference,
// ignoring the status filter. CSV export of accepted and rejected articles starts here.
func (f ArticleFilter) SearchConference() func(domain.Article) bool {
	m := newMatcher(f.Search)
	return func(a domain.Article) bool {
		if !isAll(f.ConferenceID) && a.ConferenceID != f.ConferenceID {
			return false
		}
		return m.match(a.Title, a.Abstract, a.AuthorName, a.ConferenceTitle)
	}
}

// Keep returns the full predicate including the status filter
func (f ArticleFilter) Keep() func(domain.Article) bool {
	base := f.SearchConference()
	return func(a domain.Article) bool {
		if !isAll(string(f.Status)) && a.Status != f.Status {
			return false
		}
		return base(a)
	}
}

// Keep returns the reviewer predicate
func (f ReviewerArticleFilter) Keep() func(domain.ReviewerArticle) bool {
	m := newMatcher(f.Search)
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	return func(a domain.ReviewerArticle) bool {
		if !isAll(f.ConferenceID) && a.ConferenceID != f.ConferenceID {
			return false
		}
		switch f.Deadline {
		case DeadlineOverdue:
			if !a.Overdue(now) {
				return false
			}
		case DeadlineUpcoming:
			if a.Overdue(now) {
				return false
			}
		}
		return m.match(a.Title, a.Abstract, a.AuthorName)
	}
}

// ArticleOrder returns the comparator for an article sort option, unknown options sort by date_desc
func ArticleOrder(sort SortOption, locale string) func(a, b domain.Article) int {
	col := newCollator(locale)
	byDate := func(a, b domain.Article) int { return compareTime(a.SubmittedAt, b.SubmittedAt) }
	byTitle := func(a, b domain.Article) int { return col.compare(a.Title, b.Title) }

	switch ArticleSorts.Resolve(string(sort)) {
	case DateAsc:
		return byDate
	case TitleAsc:
		return byTitle
	case TitleDesc:
		return direction(byTitle, true)
	default:
		return direction(byDate, true)
	}
}

// OrganizerArticles runs the organizer article pipeline
func OrganizerArticles(items []domain.Article, f ArticleFilter, v View) Page[domain.Article] {
	return Run(items, f.Keep(), ArticleOrder(v.Sort, v.Locale), v.Page, v.PageSize)
}

// ReviewerArticles runs the reviewer article pipeline
func ReviewerArticles(items []domain.ReviewerArticle, f ReviewerArticleFilter, v View) Page[domain.ReviewerArticle] {
	order := ArticleOrder(v.Sort, v.Locale)
	less := func(a, b domain.ReviewerArticle) int { return order(a.Article, b.Article) }
	return Run(items, f.Keep(), less, v.Page, v.PageSize)
}
