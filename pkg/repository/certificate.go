package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// CertificateRepository handles participation certificates and the issuing procedure
type CertificateRepository struct {
	db *sqlx.DB
	clock
}

type certificateSQL struct {
	ID                          string    `db:"id"`
	AuthorID                    string    `db:"author_id"`
	ConferenceID                string    `db:"conference_id"`
	ArticleID                   string    `db:"article_id"`
	CertificateNumber           string    `db:"certificate_number"`
	SnapshotAuthorName          string    `db:"snapshot_author_name"`
	SnapshotInstitution         string    `db:"snapshot_institution"`
	SnapshotConferenceTitle     string    `db:"snapshot_conference_title"`
	SnapshotConferenceStartDate string    `db:"snapshot_conference_start_date"`
	SnapshotConferenceEndDate   string    `db:"snapshot_conference_end_date"`
	SnapshotArticleTitle        string    `db:"snapshot_article_title"`
	SnapshotArticleStatus       string    `db:"snapshot_article_status"`
	IssuedAt                    time.Time `db:"issued_at"`
	CreatedAt                   time.Time `db:"created_at"`
	UpdatedAt                   time.Time `db:"updated_at"`
}

const certificateSelect = `SELECT id, author_id, conference_id, article_id, certificate_number, snapshot_author_name,
		COALESCE(snapshot_institution, '') AS snapshot_institution, snapshot_conference_title,
		snapshot_conference_start_date, snapshot_conference_end_date, snapshot_article_title,
		snapshot_article_status, issued_at, created_at, updated_at
	FROM author_conference_certificates`

func (c certificateSQL) toDomain() domain.Certificate {
	return domain.Certificate{
		ID:                          c.ID,
		AuthorID:                    c.AuthorID,
		ConferenceID:                c.ConferenceID,
		ArticleID:                   c.ArticleID,
		CertificateNumber:           c.CertificateNumber,
		SnapshotAuthorName:          c.SnapshotAuthorName,
		SnapshotInstitution:         c.SnapshotInstitution,
		SnapshotConferenceTitle:     c.SnapshotConferenceTitle,
		SnapshotConferenceStartDate: c.SnapshotConferenceStartDate,
		SnapshotConferenceEndDate:   c.SnapshotConferenceEndDate,
		SnapshotArticleTitle:        c.SnapshotArticleTitle,
		SnapshotArticleStatus:       domain.ArticleStatus(c.SnapshotArticleStatus),
		IssuedAt:                    c.IssuedAt,
		CreatedAt:                   c.CreatedAt,
		UpdatedAt:                   c.UpdatedAt,
	}
}

// ByAuthor returns all certificates issued to the author
func (r *CertificateRepository) ByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error) {
	var rows []certificateSQL
	if err := r.db.SelectContext(ctx, &rows, certificateSelect+" WHERE author_id = ? ORDER BY issued_at DESC", authorID); err != nil {
		return nil, fmt.Errorf("get certificates of %s: %w", authorID, err)
	}
	res := make([]domain.Certificate, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

type issueSourceSQL struct {
	ArticleID       string `db:"article_id"`
	ArticleTitle    string `db:"article_title"`
	ArticleStatus   string `db:"article_status"`
	ConferenceTitle string `db:"conference_title"`
	StartDate       string `db:"start_date"`
	EndDate         string `db:"end_date"`
	Timezone        string `db:"timezone"`
	AuthorName      string `db:"author_name"`
	AuthorEmail     string `db:"author_email"`
	Institution     string `db:"institution"`
}

// Issue returns the author's certificate for the conference, creating it on first call.
// The author needs an accepted article in the conference and the conference must be over in its own
// timezone. Numbers are CERT-<start year>-<global sequence>, snapshot fields freeze the current data.
func (r *CertificateRepository) Issue(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
	var cert domain.Certificate
	err := inTx(ctx, r.db, "issue certificate", func(tx *sqlx.Tx) error {
		var existing certificateSQL
		err := tx.GetContext(ctx, &existing, certificateSelect+" WHERE author_id = ? AND conference_id = ?", authorID, conferenceID)
		if err == nil {
			cert = existing.toDomain()
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("get certificate: %w", err)
		}

		var src issueSourceSQL
		err = tx.GetContext(ctx, &src, `SELECT a.id AS article_id, a.title AS article_title, a.status AS article_status,
				c.title AS conference_title, c.start_date, c.end_date, c.timezone,
				p.full_name AS author_name, p.email AS author_email, COALESCE(p.institution, '') AS institution
			FROM articles a
			JOIN conferences c ON c.id = a.conference_id
			JOIN profiles p ON p.id = a.author_id
			WHERE a.author_id = ? AND a.conference_id = ? AND a.status IN ('accepted', 'accepted_with_comments')
			ORDER BY a.submitted_at ASC LIMIT 1`, authorID, conferenceID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no accepted article in conference %s: %w", conferenceID, domain.ErrForbidden)
		}
		if err != nil {
			return fmt.Errorf("get participation: %w", err)
		}

		now := r.ts()
		if !domain.ConferenceEnded(src.EndDate, now, conferenceLocation(src.Timezone)) {
			return fmt.Errorf("conference %s has not ended: %w", conferenceID, domain.ErrForbidden)
		}

		var seq int
		if err := tx.GetContext(ctx, &seq, "SELECT COALESCE(MAX(seq), 0) + 1 FROM author_conference_certificates"); err != nil {
			return fmt.Errorf("next certificate sequence: %w", err)
		}

		name := strings.TrimSpace(src.AuthorName)
		if name == "" {
			name = src.AuthorEmail
		}
		row := certificateSQL{
			ID:                          newID(),
			AuthorID:                    authorID,
			ConferenceID:                conferenceID,
			ArticleID:                   src.ArticleID,
			CertificateNumber:           certificateNumber(src.StartDate, seq, now),
			SnapshotAuthorName:          name,
			SnapshotInstitution:         src.Institution,
			SnapshotConferenceTitle:     src.ConferenceTitle,
			SnapshotConferenceStartDate: src.StartDate,
			SnapshotConferenceEndDate:   src.EndDate,
			SnapshotArticleTitle:        src.ArticleTitle,
			SnapshotArticleStatus:       src.ArticleStatus,
			IssuedAt:                    now,
			CreatedAt:                   now,
			UpdatedAt:                   now,
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO author_conference_certificates (id, author_id, conference_id, article_id,
				seq, certificate_number, snapshot_author_name, snapshot_institution, snapshot_conference_title,
				snapshot_conference_start_date, snapshot_conference_end_date, snapshot_article_title,
				snapshot_article_status, issued_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.AuthorID, row.ConferenceID, row.ArticleID, seq, row.CertificateNumber, row.SnapshotAuthorName,
			nullString(row.SnapshotInstitution), row.SnapshotConferenceTitle, row.SnapshotConferenceStartDate,
			row.SnapshotConferenceEndDate, row.SnapshotArticleTitle, row.SnapshotArticleStatus, now, now, now)
		if err != nil {
			return fmt.Errorf("insert certificate: %w", err)
		}
		cert = row.toDomain()
		return nil
	})
	if err != nil {
		return domain.Certificate{}, err
	}
	return cert, nil
}

// certificateNumber uses the conference start year, falling back to the issue year
func certificateNumber(startDate string, seq int, issued time.Time) string {
	year := issued.Year()
	if t, err := time.Parse(domain.DateLayout, startDate); err == nil {
		year = t.Year()
	}
	return fmt.Sprintf("CERT-%d-%06d", year, seq)
}

// conferenceLocation loads the conference timezone, the default zone for empty or unknown names
func conferenceLocation(tz string) *time.Location {
	if tz == "" {
		tz = domain.DefaultConferenceTimezone
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(domain.DefaultConferenceTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// AcceptedParticipations lists the author's accepted articles with their conferences
func (r *Repositories) AcceptedParticipations(ctx context.Context, authorID string) ([]domain.Participation, error) {
	return r.Article.AcceptedParticipations(ctx, authorID)
}

// CertificatesByAuthor lists certificates issued to the author
func (r *Repositories) CertificatesByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error) {
	return r.Certificate.ByAuthor(ctx, authorID)
}

// IssueCertificate runs the issuing procedure for the author and conference
func (r *Repositories) IssueCertificate(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
	return r.Certificate.Issue(ctx, authorID, conferenceID)
}
