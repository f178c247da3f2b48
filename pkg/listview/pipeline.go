package listview

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// View is the sort and page part of a list request
type View struct {
	Sort     SortOption
	Page     int
	PageSize int
	Locale   string // BCP 47 tag used for text collation, "en" if empty or unknown
}

// Apply filters and orders items without paginating. The input slice is not modified.
func Apply[T any](items []T, keep func(T) bool, less func(a, b T) int) []T {
	res := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			res = append(res, it)
		}
	}
	if less != nil {
		slices.SortStableFunc(res, less)
	}
	return res
}

// Run is Apply followed by Paginate
func Run[T any](items []T, keep func(T) bool, less func(a, b T) int, page, pageSize int) Page[T] {
	return Paginate(Apply(items, keep, less), page, pageSize)
}

// collator compares text with locale rules at base sensitivity, ignoring case and accents.
// Not safe for concurrent use, one is made per pipeline run.
type collator struct {
	c *collate.Collator
}

func newCollator(locale string) *collator {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return &collator{c: collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics)}
}

func (c *collator) compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// matcher does case-insensitive substring search over a declared set of fields
type matcher struct {
	needle string
	fold   cases.Caser
}

// newMatcher returns nil for a blank query, meaning "match everything"
func newMatcher(query string) *matcher {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	fold := cases.Fold()
	return &matcher{needle: fold.String(query), fold: fold}
}

func (m *matcher) match(fields ...string) bool {
	if m == nil {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(m.fold.String(f), m.needle) {
			return true
		}
	}
	return false
}

// isAll reports an unset categorical filter
func isAll(v string) bool {
	return v == "" || v == "all"
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// direction turns an ascending comparison into the requested direction
func direction[T any](asc func(a, b T) int, desc bool) func(a, b T) int {
	if !desc {
		return asc
	}
	return func(a, b T) int { return asc(b, a) }
}

func compareInt(a, b int) int {
	return cmp.Compare(a, b)
}
