package domain

import "time"

// Recommendation is the reviewer's verdict
type Recommendation string

// recommendations
const (
	RecommendAccept             Recommendation = "accept"
	RecommendAcceptWithComments Recommendation = "accept_with_comments"
	RecommendReject             Recommendation = "reject"
)

// Valid reports whether r is a known recommendation
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendAccept, RecommendAcceptWithComments, RecommendReject:
		return true
	}
	return false
}

// ReviewStatus is the state of a review
type ReviewStatus string

// review statuses
const (
	ReviewDraft     ReviewStatus = "draft"
	ReviewSubmitted ReviewStatus = "submitted"
)

// Review is a reviewer's evaluation of an article with joined names
type Review struct {
	ID             string         `json:"id"`
	ArticleID      string         `json:"article_id"`
	ReviewerID     string         `json:"reviewer_id"`
	Content        string         `json:"content"`
	Rating         int            `json:"rating"`
	Recommendation Recommendation `json:"recommendation"`
	Status         ReviewStatus   `json:"status"`
	SubmittedAt    *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	ArticleTitle        string `json:"article_title,omitempty"`
	ArticleConferenceID string `json:"article_conference_id,omitempty"`
	ArticleAuthorName   string `json:"article_author_name,omitempty"`
	ReviewerName        string `json:"reviewer_name,omitempty"`
}

// ReviewedAt is the submission time, or the creation time for reviews never submitted
func (r Review) ReviewedAt() time.Time {
	if r.SubmittedAt != nil && !r.SubmittedAt.IsZero() {
		return *r.SubmittedAt
	}
	return r.CreatedAt
}
