package domain

import "time"

// ConferenceStatus is the lifecycle state of a conference
type ConferenceStatus string

// conference statuses
const (
	ConferenceDraft          ConferenceStatus = "draft"
	ConferenceAnnounced      ConferenceStatus = "announced"
	ConferenceSubmissionOpen ConferenceStatus = "submission_open"
	ConferenceReviewing      ConferenceStatus = "reviewing"
	ConferenceClosed         ConferenceStatus = "closed"
	ConferenceArchived       ConferenceStatus = "archived"
)

// Valid reports whether s is a known conference status
func (s ConferenceStatus) Valid() bool {
	switch s {
	case ConferenceDraft, ConferenceAnnounced, ConferenceSubmissionOpen,
		ConferenceReviewing, ConferenceClosed, ConferenceArchived:
		return true
	}
	return false
}

// DefaultConferenceTimezone used when the organizer leaves the timezone empty
const DefaultConferenceTimezone = "Europe/Kyiv"

// DateLayout is the calendar date format of conference start and end dates
const DateLayout = "2006-01-02"

// Conference is an event articles are submitted to
type Conference struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	ThesisRequirements string           `json:"thesis_requirements,omitempty"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	SubmissionStartAt  *time.Time       `json:"submission_start_at,omitempty"`
	SubmissionEndAt    *time.Time       `json:"submission_end_at,omitempty"`
	Timezone           string           `json:"timezone"`
	Location           string           `json:"location,omitempty"`
	Status             ConferenceStatus `json:"status"`
	IsPublic           bool             `json:"is_public"`
	OrganizerID        string           `json:"organizer_id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// StartsAt parses the start date, zero time if unset or malformed
func (c Conference) StartsAt() time.Time {
	t, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EndedBefore reports whether the last day of the conference (until 23:59:59 in loc) is over at now.
// Malformed end dates never count as ended.
func (c Conference) EndedBefore(now time.Time, loc *time.Location) bool {
	return ConferenceEnded(c.EndDate, now, loc)
}

// ConferenceEnded checks a calendar end date against now, treating the whole end day as running
func ConferenceEnded(endDate string, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, endDate, loc)
	if err != nil {
		return false
	}
	endAt := d.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return !endAt.After(now)
}

// ConferenceSection groups articles inside a conference
type ConferenceSection struct {
	ID           string    `json:"id"`
	ConferenceID string    `json:"conference_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConferenceArticleSummary is a short article row shown on conference details
type ConferenceArticleSummary struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Status      ArticleStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
	AuthorName  string        `json:"author_name,omitempty"`
}

// ConferenceDetails bundles a conference with its sections and articles
type ConferenceDetails struct {
	Conference Conference                 `json:"conference"`
	Sections   []ConferenceSection        `json:"sections"`
	Articles   []ConferenceArticleSummary `json:"articles"`
}
