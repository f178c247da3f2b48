package domain

import "time"

// NotificationReviewOverdue is the type of reminders sent for late reviews
const NotificationReviewOverdue = "review_overdue"

// Notification is a message addressed to one user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
