package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// ConferenceRepository handles conferences and their sections
type ConferenceRepository struct {
	db *sqlx.DB
	clock
}

type conferenceSQL struct {
	ID                 string       `db:"id"`
	Title              string       `db:"title"`
	Description        string       `db:"description"`
	ThesisRequirements string       `db:"thesis_requirements"`
	StartDate          string       `db:"start_date"`
	EndDate            string       `db:"end_date"`
	SubmissionStartAt  sql.NullTime `db:"submission_start_at"`
	SubmissionEndAt    sql.NullTime `db:"submission_end_at"`
	Timezone           string       `db:"timezone"`
	Location           string       `db:"location"`
	Status             string       `db:"status"`
	IsPublic           bool         `db:"is_public"`
	OrganizerID        string       `db:"organizer_id"`
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
}

const conferenceColumns = `id, title, COALESCE(description, '') AS description,
	COALESCE(thesis_requirements, '') AS thesis_requirements, start_date, end_date,
	submission_start_at, submission_end_at, timezone, COALESCE(location, '') AS location,
	status, is_public, organizer_id, created_at, updated_at`

func (c conferenceSQL) toDomain() domain.Conference {
	return domain.Conference{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		ThesisRequirements: c.ThesisRequirements,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		SubmissionStartAt:  timePtr(c.SubmissionStartAt),
		SubmissionEndAt:    timePtr(c.SubmissionEndAt),
		Timezone:           c.Timezone,
		Location:           c.Location,
		Status:             domain.ConferenceStatus(c.Status),
		IsPublic:           c.IsPublic,
		OrganizerID:        c.OrganizerID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// Create inserts a conference. Empty optional strings are stored as NULL.
func (r *ConferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	if c.ID == "" {
		c.ID = newID()
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = domain.DefaultConferenceTimezone
	}
	if c.Status == "" {
		c.Status = domain.ConferenceDraft
	}
	now := r.ts()
	c.CreatedAt, c.UpdatedAt = now, now
	query := `INSERT INTO conferences (id, title, description, thesis_requirements, start_date, end_date,
			submission_start_at, submission_end_at, timezone, location, status, is_public, organizer_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withRetry(ctx, "create conference", func() error {
		_, err := r.db.ExecContext(ctx, query, c.ID, c.Title, nullString(c.Description), nullString(c.ThesisRequirements),
			c.StartDate, c.EndDate, nullTime(c.SubmissionStartAt), nullTime(c.SubmissionEndAt), c.Timezone,
			nullString(c.Location), string(c.Status), c.IsPublic, c.OrganizerID, now, now)
		return err
	})
}

// Get returns a conference by id
func (r *ConferenceRepository) Get(ctx context.Context, id string) (domain.Conference, error) {
	var c conferenceSQL
	if err := r.db.GetContext(ctx, &c, "SELECT "+conferenceColumns+" FROM conferences WHERE id = ?", id); err != nil {
		return domain.Conference{}, notFound(err, "get conference %s", id)
	}
	return c.toDomain(), nil
}

// List returns all conferences, latest start date first
func (r *ConferenceRepository) List(ctx context.Context) ([]domain.Conference, error) {
	return r.selectConferences(ctx, "SELECT "+conferenceColumns+" FROM conferences ORDER BY start_date DESC")
}

// ListPublic returns public conferences, latest start date first
func (r *ConferenceRepository) ListPublic(ctx context.Context) ([]domain.Conference, error) {
	return r.selectConferences(ctx,
		"SELECT "+conferenceColumns+" FROM conferences WHERE is_public = 1 ORDER BY start_date DESC")
}

func (r *ConferenceRepository) selectConferences(ctx context.Context, query string, args ...any) ([]domain.Conference, error) {
	var rows []conferenceSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conferences: %w", err)
	}
	res := make([]domain.Conference, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

type sectionSQL struct {
	ID           string    `db:"id"`
	ConferenceID string    `db:"conference_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// CreateSection adds a section to a conference
func (r *ConferenceRepository) CreateSection(ctx context.Context, s *domain.ConferenceSection) error {
	if s.ID == "" {
		s.ID = newID()
	}
	s.CreatedAt = r.ts()
	query := `INSERT INTO conference_sections (id, conference_id, title, description, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	return withRetry(ctx, "create section", func() error {
		_, err := r.db.ExecContext(ctx, query, s.ID, s.ConferenceID, s.Title, nullString(s.Description), s.SortOrder, s.CreatedAt)
		return err
	})
}

// Sections returns the sections of a conference in display order
func (r *ConferenceRepository) Sections(ctx context.Context, conferenceID string) ([]domain.ConferenceSection, error) {
	var rows []sectionSQL
	query := `SELECT id, conference_id, title, COALESCE(description, '') AS description, sort_order, created_at
		FROM conference_sections WHERE conference_id = ? ORDER BY sort_order ASC, created_at ASC`
	if err := r.db.SelectContext(ctx, &rows, query, conferenceID); err != nil {
		return nil, fmt.Errorf("get sections of %s: %w", conferenceID, err)
	}
	res := make([]domain.ConferenceSection, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ConferenceSection(row))
	}
	return res, nil
}

type articleSummarySQL struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Status      string    `db:"status"`
	SubmittedAt time.Time `db:"submitted_at"`
	AuthorName  string    `db:"author_name"`
}

// ArticleSummaries returns short rows of the articles submitted to a conference
func (r *ConferenceRepository) ArticleSummaries(ctx context.Context, conferenceID string) ([]domain.ConferenceArticleSummary, error) {
	var rows []articleSummarySQL
	query := `SELECT a.id, a.title, a.status, a.submitted_at, COALESCE(p.full_name, '') AS author_name
		FROM articles a LEFT JOIN profiles p ON p.id = a.author_id
		WHERE a.conference_id = ? ORDER BY a.submitted_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, conferenceID); err != nil {
		return nil, fmt.Errorf("get articles of %s: %w", conferenceID, err)
	}
	res := make([]domain.ConferenceArticleSummary, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ConferenceArticleSummary{ID: row.ID, Title: row.Title, Status: domain.ArticleStatus(row.Status),
			SubmittedAt: row.SubmittedAt, AuthorName: row.AuthorName})
	}
	return res, nil
}

// CountPublic returns the number of public conferences
func (r *ConferenceRepository) CountPublic(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM conferences WHERE is_public = 1"); err != nil {
		return 0, fmt.Errorf("count public conferences: %w", err)
	}
	return n, nil
}
