package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// ProfileRepository handles user profiles and the role change procedure
type ProfileRepository struct {
	db *sqlx.DB
	clock
}

type profileSQL struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	FullName    string    `db:"full_name"`
	Role        string    `db:"role"`
	Institution string    `db:"institution"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const profileColumns = `id, email, full_name, role, COALESCE(institution, '') AS institution, created_at, updated_at`

func (p profileSQL) toDomain() domain.Profile {
	return domain.Profile{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		Role:        domain.Role(p.Role),
		Institution: p.Institution,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Create inserts a profile, generating the id when empty
func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.Role == "" {
		p.Role = domain.RoleAuthor
	}
	now := r.ts()
	p.CreatedAt, p.UpdatedAt = now, now
	query := `INSERT INTO profiles (id, email, full_name, role, institution, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	err := withRetry(ctx, "create profile", func() error {
		_, err := r.db.ExecContext(ctx, query, p.ID, p.Email, p.FullName, string(p.Role),
			nullString(p.Institution), now, now)
		return err
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("create profile %s: %w", p.Email, domain.ErrConflict)
	}
	return err
}

// Get returns the profile by id
func (r *ProfileRepository) Get(ctx context.Context, id string) (domain.Profile, error) {
	var p profileSQL
	err := r.db.GetContext(ctx, &p, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id)
	if err != nil {
		return domain.Profile{}, notFound(err, "get profile %s", id)
	}
	return p.toDomain(), nil
}

// List returns all profiles, newest first
func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	return r.selectProfiles(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY created_at DESC")
}

// ListByRole returns profiles with the given role ordered by name
func (r *ProfileRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	return r.selectProfiles(ctx, "SELECT "+profileColumns+" FROM profiles WHERE role = ? ORDER BY full_name ASC",
		string(role))
}

func (r *ProfileRepository) selectProfiles(ctx context.Context, query string, args ...any) ([]domain.Profile, error) {
	var rows []profileSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	res := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// Update changes the editable fields of a profile
func (r *ProfileRepository) Update(ctx context.Context, id, fullName, institution string) (domain.Profile, error) {
	var affected int64
	err := withRetry(ctx, "update profile", func() error {
		res, err := r.db.ExecContext(ctx, `UPDATE profiles SET full_name = ?, institution = ?, updated_at = ? WHERE id = ?`,
			fullName, nullString(institution), r.ts(), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return domain.Profile{}, err
	}
	if affected == 0 {
		return domain.Profile{}, fmt.Errorf("update profile %s: %w", id, domain.ErrNotFound)
	}
	return r.Get(ctx, id)
}

// SetRole changes another user's role. The caller must be an organizer, may not target itself,
// the target may not be an organizer and the new role is limited to author or reviewer.
func (r *ProfileRepository) SetRole(ctx context.Context, callerID, targetID string, role domain.Role) error {
	if role != domain.RoleAuthor && role != domain.RoleReviewer {
		return fmt.Errorf("set role %q: %w", role, domain.ErrValidation)
	}
	if callerID == targetID {
		return fmt.Errorf("set own role: %w", domain.ErrForbidden)
	}
	return inTx(ctx, r.db, "set role", func(tx *sqlx.Tx) error {
		var callerRole string
		if err := tx.GetContext(ctx, &callerRole, "SELECT role FROM profiles WHERE id = ?", callerID); err != nil {
			return notFound(err, "get caller %s", callerID)
		}
		if domain.Role(callerRole) != domain.RoleOrganizer {
			return fmt.Errorf("caller is not an organizer: %w", domain.ErrForbidden)
		}
		var targetRole string
		if err := tx.GetContext(ctx, &targetRole, "SELECT role FROM profiles WHERE id = ?", targetID); err != nil {
			return notFound(err, "get target %s", targetID)
		}
		if domain.Role(targetRole) == domain.RoleOrganizer {
			return fmt.Errorf("target is an organizer: %w", domain.ErrForbidden)
		}
		_, err := tx.ExecContext(ctx, "UPDATE profiles SET role = ?, updated_at = ? WHERE id = ?", string(role), r.ts(), targetID)
		return err
	})
}
