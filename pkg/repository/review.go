package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// ReviewRepository handles reviews with joined article and reviewer data
type ReviewRepository struct {
	db *sqlx.DB
	clock
}

type reviewSQL struct {
	ID                  string       `db:"id"`
	ArticleID           string       `db:"article_id"`
	ReviewerID          string       `db:"reviewer_id"`
	Content             string       `db:"content"`
	Rating              int          `db:"rating"`
	Recommendation      string       `db:"recommendation"`
	Status              string       `db:"status"`
	SubmittedAt         sql.NullTime `db:"submitted_at"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
	ArticleTitle        string       `db:"article_title"`
	ArticleConferenceID string       `db:"article_conference_id"`
	ArticleAuthorName   string       `db:"article_author_name"`
	ReviewerName        string       `db:"reviewer_name"`
}

const reviewSelect = `SELECT r.id, r.article_id, r.reviewer_id, r.content, r.rating, r.recommendation, r.status,
		r.submitted_at, r.created_at, r.updated_at,
		COALESCE(a.title, '') AS article_title, COALESCE(a.conference_id, '') AS article_conference_id,
		COALESCE(ap.full_name, '') AS article_author_name, COALESCE(rp.full_name, '') AS reviewer_name
	FROM reviews r
	LEFT JOIN articles a ON a.id = r.article_id
	LEFT JOIN profiles ap ON ap.id = a.author_id
	LEFT JOIN profiles rp ON rp.id = r.reviewer_id`

func (r reviewSQL) toDomain() domain.Review {
	return domain.Review{
		ID:                  r.ID,
		ArticleID:           r.ArticleID,
		ReviewerID:          r.ReviewerID,
		Content:             r.Content,
		Rating:              r.Rating,
		Recommendation:      domain.Recommendation(r.Recommendation),
		Status:              domain.ReviewStatus(r.Status),
		SubmittedAt:         timePtr(r.SubmittedAt),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		ArticleTitle:        r.ArticleTitle,
		ArticleConferenceID: r.ArticleConferenceID,
		ArticleAuthorName:   r.ArticleAuthorName,
		ReviewerName:        r.ReviewerName,
	}
}

// Create inserts a submitted review stamped with the current time
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = newID()
	}
	now := r.ts()
	rv.Status = domain.ReviewSubmitted
	rv.SubmittedAt = &now
	rv.CreatedAt, rv.UpdatedAt = now, now
	query := `INSERT INTO reviews (id, article_id, reviewer_id, content, rating, recommendation, status,
			submitted_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withRetry(ctx, "create review", func() error {
		_, err := r.db.ExecContext(ctx, query, rv.ID, rv.ArticleID, rv.ReviewerID, rv.Content, rv.Rating,
			string(rv.Recommendation), string(rv.Status), now, now, now)
		return err
	})
}

// ListByReviewer returns the reviewer's own reviews, newest first
func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID string) ([]domain.Review, error) {
	return r.selectReviews(ctx, reviewSelect+" WHERE r.reviewer_id = ? ORDER BY r.created_at DESC", reviewerID)
}

// ListSubmitted returns all submitted reviews, latest submission first
func (r *ReviewRepository) ListSubmitted(ctx context.Context) ([]domain.Review, error) {
	return r.selectReviews(ctx, reviewSelect+" WHERE r.status = 'submitted' ORDER BY r.submitted_at DESC")
}

// ListForArticle returns the submitted reviews of an article, latest first
func (r *ReviewRepository) ListForArticle(ctx context.Context, articleID string) ([]domain.Review, error) {
	return r.selectReviews(ctx,
		reviewSelect+" WHERE r.article_id = ? AND r.status = 'submitted' ORDER BY r.submitted_at DESC", articleID)
}

// ListForAuthor returns submitted reviews of the author's articles, latest first
func (r *ReviewRepository) ListForAuthor(ctx context.Context, authorID string) ([]domain.Review, error) {
	return r.selectReviews(ctx,
		reviewSelect+" WHERE a.author_id = ? AND r.status = 'submitted' ORDER BY r.submitted_at DESC", authorID)
}

func (r *ReviewRepository) selectReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	var rows []reviewSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	res := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// HasReviewed reports whether the reviewer already reviewed the article
func (r *ReviewRepository) HasReviewed(ctx context.Context, articleID, reviewerID string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM reviews WHERE article_id = ? AND reviewer_id = ?", articleID, reviewerID)
	if err != nil {
		return false, fmt.Errorf("check review of %s: %w", articleID, err)
	}
	return n > 0, nil
}
