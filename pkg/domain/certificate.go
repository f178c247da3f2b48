package domain

import "time"

// Participation is a conference the author took part in with an accepted article
type Participation struct {
	ConferenceID        string        `json:"conference_id"`
	ConferenceTitle     string        `json:"conference_title"`
	ConferenceStartDate string        `json:"conference_start_date"`
	ConferenceEndDate   string        `json:"conference_end_date"`
	ConferenceTimezone  string        `json:"conference_timezone,omitempty"`
	ArticleID           string        `json:"article_id"`
	ArticleTitle        string        `json:"article_title"`
	ArticleStatus       ArticleStatus `json:"article_status"`
}

// Certificate is an issued participation certificate. Snapshot fields freeze
// the data at issue time so later edits don't change the document.
type Certificate struct {
	ID                          string        `json:"id"`
	AuthorID                    string        `json:"author_id"`
	ConferenceID                string        `json:"conference_id"`
	ArticleID                   string        `json:"article_id"`
	CertificateNumber           string        `json:"certificate_number"`
	SnapshotAuthorName          string        `json:"snapshot_author_name"`
	SnapshotInstitution         string        `json:"snapshot_institution,omitempty"`
	SnapshotConferenceTitle     string        `json:"snapshot_conference_title"`
	SnapshotConferenceStartDate string        `json:"snapshot_conference_start_date"`
	SnapshotConferenceEndDate   string        `json:"snapshot_conference_end_date"`
	SnapshotArticleTitle        string        `json:"snapshot_article_title"`
	SnapshotArticleStatus       ArticleStatus `json:"snapshot_article_status"`
	IssuedAt                    time.Time     `json:"issued_at"`
	CreatedAt                   time.Time     `json:"created_at"`
	UpdatedAt                   time.Time     `json:"updated_at"`
}

// ParticipationRecord is the cached view of an author's participations and issued certificates
type ParticipationRecord struct {
	Participations           []Participation        `json:"participations"`
	CertificatesByConference map[string]Certificate `json:"certificates_by_conference"`
}
