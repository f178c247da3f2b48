package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/listview"
	"github.com/umputun/confdesk/pkg/preferences"
)

// Scope selects the articles of a CSV export
type Scope string

// export scopes
const (
	ScopeAll      Scope = "all"
	ScopeAccepted Scope = "accepted"
	ScopeRejected Scope = "rejected"
)

// CSVContentType of article exports
const CSVContentType = "text/csv;charset=utf-8"

// Valid reports whether s is a known scope
func (s Scope) Valid() bool {
	return s == ScopeAll || s == ScopeAccepted || s == ScopeRejected
}

// FileName of the export
func (s Scope) FileName() string {
	switch s {
	case ScopeAccepted:
		return "articles_accepted.csv"
	case ScopeRejected:
		return "articles_rejected.csv"
	default:
		return "articles.csv"
	}
}

// SelectArticles picks export rows from the organizer article list, keeping the fetched order.
// "all" honours every filter; accepted and rejected use search and conference, then their own status rule.
func SelectArticles(items []domain.Article, f listview.ArticleFilter, scope Scope) []domain.Article {
	keep := f.Keep()
	if scope != ScopeAll {
		base := f.SearchConference()
		keep = func(a domain.Article) bool {
			if !base(a) {
				return false
			}
			if scope == ScopeAccepted {
				return a.Status.IsAccepted()
			}
			return a.Status == domain.StatusRejected
		}
	}
	return listview.Apply(items, keep, nil)
}

var csvHeaders = []string{
	"Id", "Title", "Author", "Institution", "Conference", "ConferenceId", "SectionId", "Language",
	"StatusCode", "StatusLabel", "SubmittedAt", "ReviewDueAt", "PresentationStartsAt",
	"PresentationLocation", "FileName",
}

// WriteArticlesCSV writes a header line and one line per article. Every field is quoted and
// lines are separated by "\n" without a trailing newline. Instants use the formatter's zone.
func WriteArticlesCSV(w io.Writer, items []domain.Article, f preferences.Formatter) error {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, csvLine(csvHeaders))
	for _, a := range items {
		lines = append(lines, csvLine([]string{
			a.ID, a.Title, a.AuthorName, a.AuthorInstitution, a.ConferenceTitle, a.ConferenceID,
			a.SectionID, a.Language, string(a.Status), a.Status.Label(), f.DateTime(a.SubmittedAt),
			f.DateTimePtr(a.ReviewDueAt), f.DateTimePtr(a.PresentationStartsAt), a.PresentationLocation, a.FileName,
		}))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, v := range fields {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
