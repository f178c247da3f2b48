package listview

import "github.com/umputun/confdesk/pkg/domain"

// ReviewScope selects which person's name the review search looks at
type ReviewScope int

// review scopes
const (
	// ReviewScopeOrganizer searches the reviewer name
	ReviewScopeOrganizer ReviewScope = iota
	// ReviewScopeReviewer searches the article author name
	ReviewScopeReviewer
)

// ReviewFilter is the review list filter
type ReviewFilter struct {
	Search         string
	Recommendation domain.Recommendation // empty or "all" for any
	ConferenceID   string                // matched against the reviewed article's conference
	Scope          ReviewScope
}

// Keep returns the review predicate
func (f ReviewFilter) Keep() func(domain.Review) bool {
	m := newMatcher(f.Search)
	return func(r domain.Review) bool {
		if !isAll(string(f.Recommendation)) && r.Recommendation != f.Recommendation {
			return false
		}
		if !isAll(f.ConferenceID) && r.ArticleConferenceID != f.ConferenceID {
			return false
		}
		person := r.ReviewerName
		if f.Scope == ReviewScopeReviewer {
			person = r.ArticleAuthorName
		}
		return m.match(r.Content, r.ArticleTitle, person)
	}
}

// ReviewOrder returns the review comparator. Dates fall back to the creation time
// for reviews without a submission time, titles are the reviewed article's title.
func ReviewOrder(sort SortOption, locale string) func(a, b domain.Review) int {
	col := newCollator(locale)
	byDate := func(a, b domain.Review) int { return compareTime(a.ReviewedAt(), b.ReviewedAt()) }
	byTitle := func(a, b domain.Review) int { return col.compare(a.ArticleTitle, b.ArticleTitle) }
	byRating := func(a, b domain.Review) int { return compareInt(a.Rating, b.Rating) }

	switch ReviewSorts.Resolve(string(sort)) {
	case DateAsc:
		return byDate
	case TitleAsc:
		return byTitle
	case TitleDesc:
		return direction(byTitle, true)
	case RatingAsc:
		return byRating
	case RatingDesc:
		return direction(byRating, true)
	default:
		return direction(byDate, true)
	}
}

// Reviews runs the review pipeline
func Reviews(items []domain.Review, f ReviewFilter, v View) Page[domain.Review] {
	return Run(items, f.Keep(), ReviewOrder(v.Sort, v.Locale), v.Page, v.PageSize)
}
