package domain

import "time"

// AssignmentState is the derived progress state of a review assignment
type AssignmentState string

// assignment states
const (
	AssignmentActive    AssignmentState = "active"
	AssignmentOverdue   AssignmentState = "overdue"
	AssignmentCompleted AssignmentState = "completed"
)

// Assignment links a reviewer to an article, unique per (article, reviewer)
type Assignment struct {
	ID                  string     `json:"id"`
	ArticleID           string     `json:"article_id"`
	ReviewerID          string     `json:"reviewer_id"`
	AssignedBy          string     `json:"assigned_by"`
	DueAt               *time.Time `json:"due_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	OverdueNotifiedAt   *time.Time `json:"overdue_notified_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ReviewerName        string     `json:"reviewer_name,omitempty"`
	ReviewerEmail       string     `json:"reviewer_email,omitempty"`
	ReviewerInstitution string     `json:"reviewer_institution,omitempty"`
	ArticleTitle        string     `json:"article_title,omitempty"`
}

// State derives completed/overdue/active at the given instant
func (a Assignment) State(now time.Time) AssignmentState {
	if a.CompletedAt != nil {
		return AssignmentCompleted
	}
	if a.DueAt != nil && a.DueAt.Before(now) {
		return AssignmentOverdue
	}
	return AssignmentActive
}
