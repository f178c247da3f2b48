package listview

import "github.com/umputun/confdesk/pkg/domain"

// UserFilter is the role management list filter
type UserFilter struct {
	Search string // full name, email and institution
}

// Keep returns the profile predicate
func (f UserFilter) Keep() func(domain.Profile) bool {
	m := newMatcher(f.Search)
	return func(p domain.Profile) bool {
		return m.match(p.FullName, p.Email, p.Institution)
	}
}

// UserOrder returns the profile comparator, newest registrations first by default
func UserOrder(sort SortOption, locale string) func(a, b domain.Profile) int {
	col := newCollator(locale)
	byDate := func(a, b domain.Profile) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	byName := func(a, b domain.Profile) int { return col.compare(a.FullName, b.FullName) }

	switch UserSorts.Resolve(string(sort)) {
	case DateAsc:
		return byDate
	case NameAsc:
		return byName
	case NameDesc:
		return direction(byName, true)
	default:
		return direction(byDate, true)
	}
}

// Users runs the role management pipeline
func Users(items []domain.Profile, f UserFilter, v View) Page[domain.Profile] {
	return Run(items, f.Keep(), UserOrder(v.Sort, v.Locale), v.Page, v.PageSize)
}
