package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// ArticleRepository handles articles, their status history and schedule
type ArticleRepository struct {
	db *sqlx.DB
	clock
}

// keywordsSQL is a string list stored as a json array
type keywordsSQL []string

// Value implements driver.Valuer
func (k keywordsSQL) Value() (driver.Value, error) {
	if k == nil {
		return "[]", nil
	}
	b, err := json.Marshal(k)
	if err != nil {
		return nil, fmt.Errorf("marshal keywords: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (k *keywordsSQL) Scan(value any) error {
	if value == nil {
		*k = keywordsSQL{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into keywords", value)
	}
	return json.Unmarshal(data, k)
}

type articleSQL struct {
	ID                   string       `db:"id"`
	Title                string       `db:"title"`
	Abstract             string       `db:"abstract"`
	Keywords             keywordsSQL  `db:"keywords"`
	FileURL              string       `db:"file_url"`
	FileName             string       `db:"file_name"`
	AuthorID             string       `db:"author_id"`
	ConferenceID         string       `db:"conference_id"`
	SectionID            string       `db:"section_id"`
	Language             string       `db:"language"`
	Status               string       `db:"status"`
	ReviewDueAt          sql.NullTime `db:"review_due_at"`
	PresentationStartsAt sql.NullTime `db:"presentation_starts_at"`
	PresentationLocation string       `db:"presentation_location"`
	SubmittedAt          time.Time    `db:"submitted_at"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            time.Time    `db:"updated_at"`
	AuthorName           string       `db:"author_name"`
	AuthorInstitution    string       `db:"author_institution"`
	ConferenceTitle      string       `db:"conference_title"`
}

// articleColumns and articleFrom join author and conference data, callers append WHERE/ORDER BY
const articleColumns = `a.id, a.title, a.abstract, a.keywords,
		COALESCE(a.file_url, '') AS file_url, COALESCE(a.file_name, '') AS file_name, a.author_id,
		COALESCE(a.conference_id, '') AS conference_id, COALESCE(a.section_id, '') AS section_id,
		COALESCE(a.language, '') AS language, a.status, a.review_due_at, a.presentation_starts_at,
		COALESCE(a.presentation_location, '') AS presentation_location,
		a.submitted_at, a.created_at, a.updated_at,
		COALESCE(p.full_name, '') AS author_name, COALESCE(p.institution, '') AS author_institution,
		COALESCE(c.title, '') AS conference_title`

const articleFrom = ` FROM articles a
	LEFT JOIN profiles p ON p.id = a.author_id
	LEFT JOIN conferences c ON c.id = a.conference_id`

const articleSelect = "SELECT " + articleColumns + articleFrom

func (a articleSQL) toDomain() domain.Article {
	keywords := []string(a.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return domain.Article{
		ID:                   a.ID,
		Title:                a.Title,
		Abstract:             a.Abstract,
		Keywords:             keywords,
		FileURL:              a.FileURL,
		FileName:             a.FileName,
		AuthorID:             a.AuthorID,
		ConferenceID:         a.ConferenceID,
		SectionID:            a.SectionID,
		Language:             a.Language,
		Status:               domain.ArticleStatus(a.Status),
		ReviewDueAt:          timePtr(a.ReviewDueAt),
		PresentationStartsAt: timePtr(a.PresentationStartsAt),
		PresentationLocation: a.PresentationLocation,
		SubmittedAt:          a.SubmittedAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
		AuthorName:           a.AuthorName,
		AuthorInstitution:    a.AuthorInstitution,
		ConferenceTitle:      a.ConferenceTitle,
	}
}

// Create inserts a new article in the submitted status
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	if a.ID == "" {
		a.ID = newID()
	}
	now := r.ts()
	a.Status = domain.StatusSubmitted
	a.SubmittedAt, a.CreatedAt, a.UpdatedAt = now, now, now
	query := `INSERT INTO articles (id, title, abstract, keywords, file_url, file_name, author_id, conference_id,
			section_id, language, status, submitted_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withRetry(ctx, "create article", func() error {
		_, err := r.db.ExecContext(ctx, query, a.ID, a.Title, a.Abstract, keywordsSQL(a.Keywords),
			nullString(a.FileURL), nullString(a.FileName), a.AuthorID, nullString(a.ConferenceID),
			nullString(a.SectionID), nullString(a.Language), string(a.Status), now, now, now)
		return err
	})
}

// Get returns the joined article by id
func (r *ArticleRepository) Get(ctx context.Context, id string) (domain.Article, error) {
	var row articleSQL
	if err := r.db.GetContext(ctx, &row, articleSelect+" WHERE a.id = ?", id); err != nil {
		return domain.Article{}, notFound(err, "get article %s", id)
	}
	return row.toDomain(), nil
}

// ListByAuthor returns the author's own articles, newest first
func (r *ArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	return r.selectArticles(ctx, articleSelect+" WHERE a.author_id = ? ORDER BY a.created_at DESC", authorID)
}

// List returns every article, latest submission first
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	return r.selectArticles(ctx, articleSelect+" ORDER BY a.submitted_at DESC")
}

func (r *ArticleRepository) selectArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	res := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

type reviewerArticleSQL struct {
	articleSQL
	AssignmentDueAt sql.NullTime `db:"assignment_due_at"`
}

// AvailableForReviewer returns articles with an open assignment to the reviewer that the reviewer
// did not write and has not reviewed yet, still waiting for a decision, oldest submission first.
func (r *ArticleRepository) AvailableForReviewer(ctx context.Context, reviewerID string) ([]domain.ReviewerArticle, error) {
	query := "SELECT " + articleColumns + ", ra.due_at AS assignment_due_at" + articleFrom + `
		JOIN article_review_assignments ra ON ra.article_id = a.id AND ra.reviewer_id = ? AND ra.completed_at IS NULL
		WHERE a.author_id != ? AND a.status IN ('submitted', 'under_review')
			AND NOT EXISTS (SELECT 1 FROM reviews rv WHERE rv.article_id = a.id AND rv.reviewer_id = ?)
		ORDER BY a.submitted_at ASC`
	var rows []reviewerArticleSQL
	if err := r.db.SelectContext(ctx, &rows, query, reviewerID, reviewerID, reviewerID); err != nil {
		return nil, fmt.Errorf("get articles for reviewer %s: %w", reviewerID, err)
	}
	res := make([]domain.ReviewerArticle, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ReviewerArticle{Article: row.toDomain(), AssignmentDueAt: timePtr(row.AssignmentDueAt)})
	}
	return res, nil
}

// UpdateStatus records the transition in the history and then sets the new status
func (r *ArticleRepository) UpdateStatus(ctx context.Context, articleID string, status domain.ArticleStatus,
	changedBy, comments string) error {
	return inTx(ctx, r.db, "update article status", func(tx *sqlx.Tx) error {
		var old string
		if err := tx.GetContext(ctx, &old, "SELECT status FROM articles WHERE id = ?", articleID); err != nil {
			return notFound(err, "get article %s", articleID)
		}
		now := r.ts()
		_, err := tx.ExecContext(ctx, `INSERT INTO article_status_history
				(id, article_id, old_status, new_status, changed_by, comments, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			newID(), articleID, nullString(old), string(status), changedBy, nullString(comments), now)
		if err != nil {
			return fmt.Errorf("insert status history: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "UPDATE articles SET status = ?, updated_at = ? WHERE id = ?",
			string(status), now, articleID); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		return nil
	})
}

// SetStatus changes the status without recording a history row, used by the review workflow
func (r *ArticleRepository) SetStatus(ctx context.Context, articleID string, status domain.ArticleStatus) error {
	return r.exec(ctx, "set article status", "UPDATE articles SET status = ?, updated_at = ? WHERE id = ?",
		string(status), r.ts(), articleID)
}

// SaveSchedule stores the organizer-managed scheduling fields
func (r *ArticleRepository) SaveSchedule(ctx context.Context, articleID string, s domain.ArticleSchedule) error {
	return r.exec(ctx, "save article schedule", `UPDATE articles
		SET review_due_at = ?, presentation_starts_at = ?, presentation_location = ?, updated_at = ?
		WHERE id = ?`,
		nullTime(s.ReviewDueAt), nullTime(s.PresentationStartsAt), nullString(s.PresentationLocation), r.ts(), articleID)
}

// exec runs an update expected to touch exactly one row
func (r *ArticleRepository) exec(ctx context.Context, op, query string, args ...any) error {
	var affected int64
	err := withRetry(ctx, op, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

type historySQL struct {
	ID            string    `db:"id"`
	ArticleID     string    `db:"article_id"`
	OldStatus     string    `db:"old_status"`
	NewStatus     string    `db:"new_status"`
	ChangedBy     string    `db:"changed_by"`
	ChangedByName string    `db:"changed_by_name"`
	Comments      string    `db:"comments"`
	CreatedAt     time.Time `db:"created_at"`
}

// History returns the status transitions of an article, newest first
func (r *ArticleRepository) History(ctx context.Context, articleID string) ([]domain.StatusHistory, error) {
	query := `SELECT h.id, h.article_id, COALESCE(h.old_status, '') AS old_status, h.new_status, h.changed_by,
			COALESCE(p.full_name, '') AS changed_by_name, COALESCE(h.comments, '') AS comments, h.created_at
		FROM article_status_history h LEFT JOIN profiles p ON p.id = h.changed_by
		WHERE h.article_id = ? ORDER BY h.created_at DESC`
	var rows []historySQL
	if err := r.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("get status history of %s: %w", articleID, err)
	}
	res := make([]domain.StatusHistory, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.StatusHistory{ID: row.ID, ArticleID: row.ArticleID, OldStatus: domain.ArticleStatus(row.OldStatus),
			NewStatus: domain.ArticleStatus(row.NewStatus), ChangedBy: row.ChangedBy, ChangedByName: row.ChangedByName,
			Comments: row.Comments, CreatedAt: row.CreatedAt})
	}
	return res, nil
}

type participationSQL struct {
	ConferenceID        string `db:"conference_id"`
	ConferenceTitle     string `db:"conference_title"`
	ConferenceStartDate string `db:"conference_start_date"`
	ConferenceEndDate   string `db:"conference_end_date"`
	ConferenceTimezone  string `db:"conference_timezone"`
	ArticleID           string `db:"article_id"`
	ArticleTitle        string `db:"article_title"`
	ArticleStatus       string `db:"article_status"`
}

// AcceptedParticipations returns the author's accepted articles with their conference, latest conference first.
// An author may have several accepted articles per conference; the earliest submitted comes first.
func (r *ArticleRepository) AcceptedParticipations(ctx context.Context, authorID string) ([]domain.Participation, error) {
	query := `SELECT c.id AS conference_id, c.title AS conference_title, c.start_date AS conference_start_date,
			c.end_date AS conference_end_date, c.timezone AS conference_timezone, a.id AS article_id, a.title AS article_title, a.status AS article_status
		FROM articles a JOIN conferences c ON c.id = a.conference_id
		WHERE a.author_id = ? AND a.status IN ('accepted', 'accepted_with_comments')
		ORDER BY c.start_date DESC, a.submitted_at ASC`
	var rows []participationSQL
	if err := r.db.SelectContext(ctx, &rows, query, authorID); err != nil {
		return nil, fmt.Errorf("get participations of %s: %w", authorID, err)
	}
	res := make([]domain.Participation, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Participation{ConferenceID: row.ConferenceID, ConferenceTitle: row.ConferenceTitle,
			ConferenceStartDate: row.ConferenceStartDate, ConferenceEndDate: row.ConferenceEndDate,
			ConferenceTimezone: row.ConferenceTimezone, ArticleID: row.ArticleID, ArticleTitle: row.ArticleTitle, ArticleStatus: domain.ArticleStatus(row.ArticleStatus)})
	}
	return res, nil
}
