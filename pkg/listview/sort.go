package listview

import "slices"

// SortOption is one ordering a list can be shown in
type SortOption string

// sort options, each list accepts a subset
const (
	DateDesc   SortOption = "date_desc"
	DateAsc    SortOption = "date_asc"
	TitleAsc   SortOption = "title_asc"
	TitleDesc  SortOption = "title_desc"
	RatingDesc SortOption = "rating_desc"
	RatingAsc  SortOption = "rating_asc"
	StartDesc  SortOption = "start_desc"
	StartAsc   SortOption = "start_asc"
	NameAsc    SortOption = "name_asc"
	NameDesc   SortOption = "name_desc"
)

// SortSet is the closed set of options accepted by a list and the option used when none is valid
type SortSet struct {
	Options []SortOption
	Default SortOption
}

// Contains reports whether o belongs to the set
func (s SortSet) Contains(o SortOption) bool {
	return slices.Contains(s.Options, o)
}

// Resolve maps a raw stored or requested value to a member of the set, falling back to the default
func (s SortSet) Resolve(raw string) SortOption {
	if o := SortOption(raw); s.Contains(o) {
		return o
	}
	return s.Default
}

// sort sets of the dashboard lists
var (
	ArticleSorts    = SortSet{Options: []SortOption{DateDesc, DateAsc, TitleAsc, TitleDesc}, Default: DateDesc}
	ReviewSorts     = SortSet{Options: []SortOption{DateDesc, DateAsc, TitleAsc, TitleDesc, RatingDesc, RatingAsc}, Default: DateDesc}
	ConferenceSorts = SortSet{Options: []SortOption{StartDesc, StartAsc, TitleAsc, TitleDesc}, Default: StartDesc}
	UserSorts       = SortSet{Options: []SortOption{DateDesc, DateAsc, NameAsc, NameDesc}, Default: DateDesc}
)

// list keys, used to store the per-list sort preference
const (
	ListReviewerArticles   = "reviewer.articles"
	ListReviewerReviews    = "reviewer.reviews"
	ListOrganizerArticles  = "organizer.articles"
	ListOrganizerReviews   = "organizer.reviews"
	ListOrganizerConfs     = "organizer.conferences"
	ListRoleManagementUser = "role_management.users"
)

var listSorts = map[string]SortSet{
	ListReviewerArticles:   ArticleSorts,
	ListReviewerReviews:    ReviewSorts,
	ListOrganizerArticles:  ArticleSorts,
	ListOrganizerReviews:   ReviewSorts,
	ListOrganizerConfs:     ConferenceSorts,
	ListRoleManagementUser: UserSorts,
}

// SortSetFor returns the sort set of a known list key
func SortSetFor(listKey string) (SortSet, bool) {
	s, ok := listSorts[listKey]
	return s, ok
}

// ListKeys returns all known list keys
func ListKeys() []string {
	keys := make([]string, 0, len(listSorts))
	for k := range listSorts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
