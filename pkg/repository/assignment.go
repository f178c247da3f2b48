package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// AssignmentRepository handles reviewer assignments and their overdue reminders
type AssignmentRepository struct {
	db *sqlx.DB
	clock
}

type assignmentSQL struct {
	ID                  string       `db:"id"`
	ArticleID           string       `db:"article_id"`
	ReviewerID          string       `db:"reviewer_id"`
	AssignedBy          string       `db:"assigned_by"`
	DueAt               sql.NullTime `db:"due_at"`
	CompletedAt         sql.NullTime `db:"completed_at"`
	OverdueNotifiedAt   sql.NullTime `db:"overdue_notified_at"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
	ReviewerName        string       `db:"reviewer_name"`
	ReviewerEmail       string       `db:"reviewer_email"`
	ReviewerInstitution string       `db:"reviewer_institution"`
	ArticleTitle        string       `db:"article_title"`
}

const assignmentSelect = `SELECT ra.id, ra.article_id, ra.reviewer_id, ra.assigned_by, ra.due_at, ra.completed_at,
		ra.overdue_notified_at, ra.created_at, ra.updated_at,
		COALESCE(p.full_name, '') AS reviewer_name, COALESCE(p.email, '') AS reviewer_email,
		COALESCE(p.institution, '') AS reviewer_institution, COALESCE(a.title, '') AS article_title
	FROM article_review_assignments ra
	LEFT JOIN profiles p ON p.id = ra.reviewer_id
	LEFT JOIN articles a ON a.id = ra.article_id`

func (a assignmentSQL) toDomain() domain.Assignment {
	return domain.Assignment{
		ID:                  a.ID,
		ArticleID:           a.ArticleID,
		ReviewerID:          a.ReviewerID,
		AssignedBy:          a.AssignedBy,
		DueAt:               timePtr(a.DueAt),
		CompletedAt:         timePtr(a.CompletedAt),
		OverdueNotifiedAt:   timePtr(a.OverdueNotifiedAt),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		ReviewerName:        a.ReviewerName,
		ReviewerEmail:       a.ReviewerEmail,
		ReviewerInstitution: a.ReviewerInstitution,
		ArticleTitle:        a.ArticleTitle,
	}
}

// Upsert assigns a reviewer to an article. An existing (article, reviewer) pair gets the new
// assigner and deadline, and its overdue reminder is re-armed.
func (r *AssignmentRepository) Upsert(ctx context.Context, articleID, reviewerID, assignedBy string, dueAt *time.Time) (domain.Assignment, error) {
	now := r.ts()
	query := `INSERT INTO article_review_assignments (id, article_id, reviewer_id, assigned_by, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(article_id, reviewer_id) DO UPDATE SET
			assigned_by = excluded.assigned_by,
			due_at = excluded.due_at,
			overdue_notified_at = NULL,
			updated_at = excluded.updated_at`
	err := withRetry(ctx, "upsert assignment", func() error {
		_, err := r.db.ExecContext(ctx, query, newID(), articleID, reviewerID, assignedBy, nullTime(dueAt), now, now)
		return err
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	var row assignmentSQL
	if err := r.db.GetContext(ctx, &row, assignmentSelect+" WHERE ra.article_id = ? AND ra.reviewer_id = ?",
		articleID, reviewerID); err != nil {
		return domain.Assignment{}, notFound(err, "get assignment of %s", articleID)
	}
	return row.toDomain(), nil
}

// ListForArticle returns assignments of an article with reviewer details, oldest first
func (r *AssignmentRepository) ListForArticle(ctx context.Context, articleID string) ([]domain.Assignment, error) {
	return r.selectAssignments(ctx, assignmentSelect+" WHERE ra.article_id = ? ORDER BY ra.created_at ASC", articleID)
}

// Delete removes an assignment by id
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := withRetry(ctx, "delete assignment", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM article_review_assignments WHERE id = ?", id)
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
		return fmt.Errorf("delete assignment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Complete marks the reviewer's open assignment on the article as done. Missing assignments are not an error.
func (r *AssignmentRepository) Complete(ctx context.Context, articleID, reviewerID string) error {
	now := r.ts()
	return withRetry(ctx, "complete assignment", func() error {
		_, err := r.db.ExecContext(ctx, `UPDATE article_review_assignments SET completed_at = ?, updated_at = ?
			WHERE article_id = ? AND reviewer_id = ? AND completed_at IS NULL`, now, now, articleID, reviewerID)
		return err
	})
}

// Overdue returns open assignments past their deadline that were not reminded yet
func (r *AssignmentRepository) Overdue(ctx context.Context, now time.Time, limit int) ([]domain.Assignment, error) {
	return r.selectAssignments(ctx, assignmentSelect+`
		WHERE ra.completed_at IS NULL AND ra.overdue_notified_at IS NULL AND ra.due_at IS NOT NULL AND ra.due_at < ?
		ORDER BY ra.due_at ASC LIMIT ?`, now.UTC(), limit)
}

// NotifyOverdue stores the reminder for the reviewer and stamps the assignment in one transaction.
// An assignment completed or already reminded in the meantime is skipped and reported as false.
func (r *AssignmentRepository) NotifyOverdue(ctx context.Context, assignmentID string, n domain.Notification) (bool, error) {
	var stamped bool
	err := inTx(ctx, r.db, "notify overdue assignment", func(tx *sqlx.Tx) error {
		now := r.ts()
		res, err := tx.ExecContext(ctx, `UPDATE article_review_assignments SET overdue_notified_at = ?, updated_at = ?
			WHERE id = ? AND completed_at IS NULL AND overdue_notified_at IS NULL`, now, now, assignmentID)
		if err != nil {
			return fmt.Errorf("stamp assignment: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("stamp assignment: %w", err)
		}
		stamped = affected > 0
		if !stamped {
			return nil
		}
		if n.ID == "" {
			n.ID = newID()
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO notifications (id, user_id, title, message, type, read, created_at)
			VALUES (?, ?, ?, ?, ?, 0, ?)`, n.ID, n.UserID, n.Title, n.Message, n.Type, now)
		if err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
		return nil
	})
	return stamped, err
}

func (r *AssignmentRepository) selectAssignments(ctx context.Context, query string, args ...any) ([]domain.Assignment, error) {
	var rows []assignmentSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select assignments: %w", err)
	}
	res := make([]domain.Assignment, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}
