package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
)

// Identity is the authenticated user as passed by the upstream proxy
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// EnsureProfile returns the profile of the identity, creating it on first sign-in. New profiles are
// authors, except emails listed in organizers.
func (s *Service) EnsureProfile(ctx context.Context, id Identity, organizers []string) (domain.Profile, error) {
	p, err := s.repos.Profile.Get(ctx, id.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Profile{}, err
	}
	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		return domain.Profile{}, fmt.Errorf("unknown user %s: %w", id.UserID, domain.ErrNotFound)
	}
	p = domain.Profile{ID: id.UserID, Email: email, FullName: s.clean(id.Name), Role: domain.RoleAuthor}
	if slices.ContainsFunc(organizers, func(o string) bool { return strings.EqualFold(strings.TrimSpace(o), email) }) {
		p.Role = domain.RoleOrganizer
	}
	if err := s.repos.Profile.Create(ctx, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	lgr.Printf("[INFO] profile %s created for %s with role %s", p.ID, p.Email, p.Role)
	return p, nil
}

// ProfileRequest holds the editable profile fields
type ProfileRequest struct {
	FullName    string `json:"full_name" validate:"required,max=200"`
	Institution string `json:"institution" validate:"max=200"`
}

// UpdateProfile changes the caller's own name and institution
func (s *Service) UpdateProfile(ctx context.Context, userID string, req ProfileRequest) (domain.Profile, error) {
	req.FullName, req.Institution = s.clean(req.FullName), s.clean(req.Institution)
	if err := validateStruct(req); err != nil {
		return domain.Profile{}, err
	}
	return s.repos.Profile.Update(ctx, userID, req.FullName, req.Institution)
}

// Notifications returns the user's notifications, newest first
func (s *Service) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repos.Notification.ListByUser(ctx, userID)
}

// UnreadNotifications returns the number of unread notifications
func (s *Service) UnreadNotifications(ctx context.Context, userID string) (int, error) {
	return s.repos.Notification.UnreadCount(ctx, userID)
}

// MarkNotificationRead marks one of the user's notifications as read
func (s *Service) MarkNotificationRead(ctx context.Context, userID, id string) error {
	return s.repos.Notification.MarkRead(ctx, userID, id)
}

// MarkAllNotificationsRead marks all the user's notifications as read
func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return s.repos.Notification.MarkAllRead(ctx, userID)
}
