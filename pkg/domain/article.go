package domain

import "time"

// ArticleStatus is the review lifecycle state of an article
type ArticleStatus string

// article statuses
const (
	StatusSubmitted            ArticleStatus = "submitted"
	StatusUnderReview          ArticleStatus = "under_review"
	StatusAccepted             ArticleStatus = "accepted"
	StatusAcceptedWithComments ArticleStatus = "accepted_with_comments"
	StatusRejected             ArticleStatus = "rejected"
)

var articleStatusLabels = map[ArticleStatus]string{
	StatusSubmitted:            "Submitted",
	StatusUnderReview:          "Under review",
	StatusAccepted:             "Accepted",
	StatusAcceptedWithComments: "Accepted with comments",
	StatusRejected:             "Rejected",
}

// Valid reports whether s is a known status
func (s ArticleStatus) Valid() bool {
	_, ok := articleStatusLabels[s]
	return ok
}

// IsAccepted is true for both accepted variants
func (s ArticleStatus) IsAccepted() bool {
	return s == StatusAccepted || s == StatusAcceptedWithComments
}

// Label returns a human readable status name
func (s ArticleStatus) Label() string {
	if l, ok := articleStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Article represents a submitted paper with joined author and conference data
type Article struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Abstract             string        `json:"abstract"`
	Keywords             []string      `json:"keywords"`
	FileURL              string        `json:"file_url,omitempty"`
	FileName             string        `json:"file_name,omitempty"`
	AuthorID             string        `json:"author_id"`
	ConferenceID         string        `json:"conference_id,omitempty"`
	SectionID            string        `json:"section_id,omitempty"`
	Language             string        `json:"language,omitempty"`
	Status               ArticleStatus `json:"status"`
	ReviewDueAt          *time.Time    `json:"review_due_at,omitempty"`
	PresentationStartsAt *time.Time    `json:"presentation_starts_at,omitempty"`
	PresentationLocation string        `json:"presentation_location,omitempty"`
	SubmittedAt          time.Time     `json:"submitted_at"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`

	AuthorName        string `json:"author_name,omitempty"`
	AuthorInstitution string `json:"author_institution,omitempty"`
	ConferenceTitle   string `json:"conference_title,omitempty"`
}

// ReviewerArticle is an article offered to a reviewer together with the assignment deadline
type ReviewerArticle struct {
	Article
	AssignmentDueAt *time.Time `json:"assignment_due_at,omitempty"`
}

// Overdue reports whether the assignment deadline is before now
func (a ReviewerArticle) Overdue(now time.Time) bool {
	return a.AssignmentDueAt != nil && a.AssignmentDueAt.Before(now)
}

// ArticleSchedule holds organizer-managed scheduling fields of an article
type ArticleSchedule struct {
	ReviewDueAt          *time.Time
	PresentationStartsAt *time.Time
	PresentationLocation string
}

// StatusHistory is one recorded status transition
type StatusHistory struct {
	ID            string        `json:"id"`
	ArticleID     string        `json:"article_id"`
	OldStatus     ArticleStatus `json:"old_status,omitempty"`
	NewStatus     ArticleStatus `json:"new_status"`
	ChangedBy     string        `json:"changed_by"`
	ChangedByName string        `json:"changed_by_name,omitempty"`
	Comments      string        `json:"comments,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
