package export

import (
	"fmt"
	"html/template"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/preferences"
)

// ProceedingsMode selects the articles of a proceedings document
type ProceedingsMode string

// proceedings modes
const (
	ModeConference ProceedingsMode = "conference" // accepted articles of one conference
	ModeAll        ProceedingsMode = "all"        // all accepted articles
	ModeDate       ProceedingsMode = "date"       // submitted within a date range
	ModeManual     ProceedingsMode = "manual"     // explicitly picked articles
)

// ProceedingsContentType is what Word opens as a document
const ProceedingsContentType = "application/msword;charset=utf-8"

// ProceedingsRequest describes a proceedings selection
type ProceedingsRequest struct {
	Mode               ProceedingsMode `json:"mode"`
	ConferenceID       string          `json:"conference_id,omitempty"`
	From               string          `json:"from,omitempty"` // YYYY-MM-DD, inclusive
	To                 string          `json:"to,omitempty"`   // YYYY-MM-DD, inclusive
	IncludeAllStatuses bool            `json:"include_all_statuses,omitempty"`
	ArticleIDs         []string        `json:"article_ids,omitempty"`
}

// SelectProceedings picks and orders (oldest submission first) the articles of a request.
// Date bounds are whole days in loc. An empty selection is a validation error.
func SelectProceedings(articles []domain.Article, req ProceedingsRequest, loc *time.Location) ([]domain.Article, error) {
	if loc == nil {
		loc = time.Local
	}
	var keep func(domain.Article) bool
	switch req.Mode {
	case ModeConference:
		if req.ConferenceID == "" {
			return nil, fmt.Errorf("conference is required: %w", domain.ErrValidation)
		}
		keep = func(a domain.Article) bool { return a.Status.IsAccepted() && a.ConferenceID == req.ConferenceID }
	case ModeAll:
		keep = func(a domain.Article) bool { return a.Status.IsAccepted() }
	case ModeManual:
		keep = func(a domain.Article) bool { return slices.Contains(req.ArticleIDs, a.ID) }
	case ModeDate:
		from, to, err := dateBounds(req.From, req.To, loc)
		if err != nil {
			return nil, err
		}
		keep = func(a domain.Article) bool {
			if !req.IncludeAllStatuses && !a.Status.IsAccepted() {
				return false
			}
			if !from.IsZero() && a.SubmittedAt.Before(from) {
				return false
			}
			return to.IsZero() || !a.SubmittedAt.After(to)
		}
	default:
		return nil, fmt.Errorf("unknown proceedings mode %q: %w", req.Mode, domain.ErrValidation)
	}

	res := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if keep(a) {
			res = append(res, a)
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no articles match the proceedings selection: %w", domain.ErrValidation)
	}
	slices.SortStableFunc(res, func(a, b domain.Article) int { return a.SubmittedAt.Compare(b.SubmittedAt) })
	return res, nil
}

func dateBounds(from, to string, loc *time.Location) (start, end time.Time, err error) {
	if from != "" {
		if start, err = time.ParseInLocation(domain.DateLayout, from, loc); err != nil {
			return start, end, fmt.Errorf("bad from date %q: %w", from, domain.ErrValidation)
		}
	}
	if to != "" {
		d, err := time.ParseInLocation(domain.DateLayout, to, loc)
		if err != nil {
			return start, end, fmt.Errorf("bad to date %q: %w", to, domain.ErrValidation)
		}
		end = d.Add(24*time.Hour - time.Millisecond)
	}
	return start, end, nil
}

// ProceedingsFileName names the document by mode and the current date
func ProceedingsFileName(req ProceedingsRequest, conferenceTitle string, selected int, now time.Time) string {
	date := now.UTC().Format(domain.DateLayout)
	switch req.Mode {
	case ModeConference:
		return fmt.Sprintf("proceedings_conference_%s_%s.doc", FilenameSegment(conferenceTitle, "conference"), date)
	case ModeDate:
		from, to, status := req.From, req.To, "accepted"
		if from == "" {
			from = "start"
		}
		if to == "" {
			to = "end"
		}
		if req.IncludeAllStatuses {
			status = "all_statuses"
		}
		return fmt.Sprintf("proceedings_date_%s_to_%s_%s_%s.doc", from, to, status, date)
	case ModeManual:
		return "proceedings_manual_" + strconv.Itoa(selected) + "_articles_" + date + ".doc"
	default:
		return "proceedings_all_accepted_" + date + ".doc"
	}
}

var proceedingsTmpl = template.Must(template.New("proceedings").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>Conference proceedings</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 12pt; line-height: 1.5; color: #111; }
h1 { font-size: 22pt; margin: 0 0 8pt; }
h2 { font-size: 16pt; margin: 16pt 0 8pt; }
h3 { font-size: 13pt; margin: 12pt 0 6pt; }
p { margin: 4pt 0; }
.meta { color: #333; margin-bottom: 16pt; }
.page-break { page-break-before: always; }
</style>
</head>
<body>
<h1>Conference proceedings</h1>
<p class="meta">Generated at: {{.GeneratedAt}}</p>
<p class="meta">Articles included: {{len .Articles}}</p>
{{range $i, $a := .Articles}}
<div class="article-block{{if $i}} page-break{{end}}">
<h2>{{$a.Number}}. {{$a.Title}}</h2>
<p><strong>Full name:</strong> {{or $a.AuthorName "No data"}}</p>
<p><strong>Institution:</strong> {{or $a.Institution "No data"}}</p>
<p><strong>Status:</strong> {{$a.Status}}</p>
<p><strong>Submitted on:</strong> {{$a.SubmittedAt}}</p>
<p><strong>Keywords:</strong> {{or $a.Keywords "No data"}}</p>
<h3>Abstract</h3>
<p>{{$a.Abstract}}</p>
<p><strong>Article file:</strong> {{or $a.FileName "No data"}}</p>
</div>
{{end}}
</body>
</html>
`))

type proceedingsArticle struct {
	Number      int
	Title       string
	AuthorName  string
	Institution string
	Status      string
	SubmittedAt string
	Keywords    string
	Abstract    string
	FileName    string
}

// WriteProceedings renders the Word-compatible HTML document, prefixed with a UTF-8 byte order mark
func WriteProceedings(w io.Writer, items []domain.Article, f preferences.Formatter, now time.Time) error {
	data := struct {
		GeneratedAt string
		Articles    []proceedingsArticle
	}{GeneratedAt: f.DateTime(now)}
	for i, a := range items {
		data.Articles = append(data.Articles, proceedingsArticle{
			Number:      i + 1,
			Title:       a.Title,
			AuthorName:  a.AuthorName,
			Institution: a.AuthorInstitution,
			Status:      a.Status.Label(),
			SubmittedAt: f.Date(a.SubmittedAt),
			Keywords:    strings.Join(a.Keywords, ", "),
			Abstract:    a.Abstract,
			FileName:    a.FileName,
		})
	}
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	if err := proceedingsTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render proceedings: %w", err)
	}
	return nil
}
