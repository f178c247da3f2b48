package listview

import "github.com/umputun/confdesk/pkg/domain"

// visibility filter values
const (
	VisibilityAll     = "all"
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// ConferenceFilter is the organizer conference list filter
type ConferenceFilter struct {
	Search     string // title and location
	Status     domain.ConferenceStatus
	Visibility string // all, public or private
}

// Keep returns the conference predicate
func (f ConferenceFilter) Keep() func(domain.Conference) bool {
	m := newMatcher(f.Search)
	return func(c domain.Conference) bool {
		if !isAll(string(f.Status)) && c.Status != f.Status {
			return false
		}
		switch f.Visibility {
		case VisibilityPublic:
			if !c.IsPublic {
				return false
			}
		case VisibilityPrivate:
			if c.IsPublic {
				return false
			}
		}
		return m.match(c.Title, c.Location)
	}
}

// ConferenceOrder returns the conference comparator, start_desc by default
func ConferenceOrder(sort SortOption, locale string) func(a, b domain.Conference) int {
	col := newCollator(locale)
	byStart := func(a, b domain.Conference) int { return compareTime(a.StartsAt(), b.StartsAt()) }
	byTitle := func(a, b domain.Conference) int { return col.compare(a.Title, b.Title) }

	switch ConferenceSorts.Resolve(string(sort)) {
	case StartAsc:
		return byStart
	case TitleAsc:
		return byTitle
	case TitleDesc:
		return direction(byTitle, true)
	default:
		return direction(byStart, true)
	}
}

// Conferences runs the conference pipeline
func Conferences(items []domain.Conference, f ConferenceFilter, v View) Page[domain.Conference] {
	return Run(items, f.Keep(), ConferenceOrder(v.Sort, v.Locale), v.Page, v.PageSize)
}
