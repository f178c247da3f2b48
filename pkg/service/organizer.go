package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/confdesk/pkg/domain"
)

// AllArticles returns every article, latest submission first
func (s *Service) AllArticles(ctx context.Context) ([]domain.Article, error) {
	return s.repos.Article.List(ctx)
}

// SubmittedReviews returns all submitted reviews, latest first
func (s *Service) SubmittedReviews(ctx context.Context) ([]domain.Review, error) {
	return s.repos.Review.ListSubmitted(ctx)
}

// Conferences returns all conferences, latest start date first
func (s *Service) Conferences(ctx context.Context) ([]domain.Conference, error) {
	return s.repos.Conference.List(ctx)
}

// Reviewers returns reviewer profiles ordered by name
func (s *Service) Reviewers(ctx context.Context) ([]domain.Profile, error) {
	return s.repos.Profile.ListByRole(ctx, domain.RoleReviewer)
}

// Profiles returns every profile, newest first
func (s *Service) Profiles(ctx context.Context) ([]domain.Profile, error) {
	return s.repos.Profile.List(ctx)
}

// ConferenceDetails fetches the conference, its sections and articles concurrently; any failure fails the call
func (s *Service) ConferenceDetails(ctx context.Context, conferenceID string) (domain.ConferenceDetails, error) {
	var res domain.ConferenceDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Conference, err = s.repos.Conference.Get(gctx, conferenceID)
		return err
	})
	g.Go(func() (err error) {
		res.Sections, err = s.repos.Conference.Sections(gctx, conferenceID)
		return err
	})
	g.Go(func() (err error) {
		res.Articles, err = s.repos.Conference.ArticleSummaries(gctx, conferenceID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ConferenceDetails{}, fmt.Errorf("conference details: %w", err)
	}
	return res, nil
}

// CreateConferenceRequest is the conference form
type CreateConferenceRequest struct {
	Title              string                  `json:"title" validate:"required"`
	Description        string                  `json:"description"`
	ThesisRequirements string                  `json:"thesis_requirements"`
	StartDate          string                  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string                  `json:"end_date" validate:"required,datetime=2006-01-02"`
	SubmissionStartAt  *time.Time              `json:"submission_start_at"`
	SubmissionEndAt    *time.Time              `json:"submission_end_at"`
	Timezone           string                  `json:"timezone" validate:"omitempty,timezone"`
	Location           string                  `json:"location"`
	Status             domain.ConferenceStatus `json:"status" validate:"omitempty,oneof=draft announced submission_open reviewing closed archived"`
	IsPublic           bool                    `json:"is_public"`
}

// CreateConference validates and stores a conference owned by the organizer
func (s *Service) CreateConference(ctx context.Context, organizerID string, req CreateConferenceRequest) (domain.Conference, error) {
	req.Title = s.clean(req.Title)
	req.StartDate, req.EndDate = strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate)
	req.Timezone = strings.TrimSpace(req.Timezone)
	if err := validateStruct(req); err != nil {
		return domain.Conference{}, err
	}
	// layout is fixed, lexical order is date order
	if req.EndDate < req.StartDate {
		return domain.Conference{}, invalid("end_date must not be before start_date")
	}
	if req.SubmissionStartAt != nil && req.SubmissionEndAt != nil && req.SubmissionEndAt.Before(*req.SubmissionStartAt) {
		return domain.Conference{}, invalid("submission_end_at must not be before submission_start_at")
	}

	c := domain.Conference{
		Title:              req.Title,
		Description:        s.clean(req.Description),
		ThesisRequirements: s.clean(req.ThesisRequirements),
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SubmissionStartAt:  req.SubmissionStartAt,
		SubmissionEndAt:    req.SubmissionEndAt,
		Timezone:           req.Timezone,
		Location:           s.clean(req.Location),
		Status:             req.Status,
		IsPublic:           req.IsPublic,
		OrganizerID:        organizerID,
	}
	if err := s.repos.Conference.Create(ctx, &c); err != nil {
		return domain.Conference{}, fmt.Errorf("save conference: %w", err)
	}
	lgr.Printf("[INFO] conference %q created by %s", c.Title, organizerID)
	return c, nil
}

// CreateSectionRequest is the conference section form
type CreateSectionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
}

// CreateSection adds a section to an existing conference
func (s *Service) CreateSection(ctx context.Context, conferenceID string, req CreateSectionRequest) (domain.ConferenceSection, error) {
	req.Title = s.clean(req.Title)
	if err := validateStruct(req); err != nil {
		return domain.ConferenceSection{}, err
	}
	if _, err := s.repos.Conference.Get(ctx, conferenceID); err != nil {
		return domain.ConferenceSection{}, err
	}
	sec := domain.ConferenceSection{ConferenceID: conferenceID, Title: req.Title,
		Description: s.clean(req.Description), SortOrder: req.SortOrder}
	if err := s.repos.Conference.CreateSection(ctx, &sec); err != nil {
		return domain.ConferenceSection{}, fmt.Errorf("save section: %w", err)
	}
	return sec, nil
}

// StatusChangeRequest is the organizer's decision on an article
type StatusChangeRequest struct {
	Status   domain.ArticleStatus `json:"status" validate:"required,oneof=submitted under_review accepted accepted_with_comments rejected"`
	Comments string               `json:"comments"`
}

// UpdateArticleStatus records the transition in the history and sets the new status
func (s *Service) UpdateArticleStatus(ctx context.Context, organizerID, articleID string, req StatusChangeRequest) (domain.Article, error) {
	if err := validateStruct(req); err != nil {
		return domain.Article{}, err
	}
	if err := s.repos.Article.UpdateStatus(ctx, articleID, req.Status, organizerID, s.clean(req.Comments)); err != nil {
		return domain.Article{}, err
	}
	lgr.Printf("[INFO] article %s status set to %s by %s", articleID, req.Status, organizerID)
	return s.repos.Article.Get(ctx, articleID)
}

// AssignRequest assigns a reviewer with an optional deadline
type AssignRequest struct {
	ReviewerID string     `json:"reviewer_id" validate:"required"`
	DueAt      *time.Time `json:"due_at"`
}

// AssignReviewer creates or updates the assignment of a reviewer to an article
func (s *Service) AssignReviewer(ctx context.Context, organizerID, articleID string, req AssignRequest) (domain.Assignment, error) {
	if err := validateStruct(req); err != nil {
		return domain.Assignment{}, err
	}
	article, err := s.repos.Article.Get(ctx, articleID)
	if err != nil {
		return domain.Assignment{}, err
	}
	reviewer, err := s.repos.Profile.Get(ctx, req.ReviewerID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if reviewer.Role != domain.RoleReviewer {
		return domain.Assignment{}, invalid("%s is not a reviewer", reviewer.Email)
	}
	if article.AuthorID == reviewer.ID {
		return domain.Assignment{}, invalid("author can't review own article")
	}
	a, err := s.repos.Assignment.Upsert(ctx, articleID, req.ReviewerID, organizerID, req.DueAt)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("save assignment: %w", err)
	}
	return a, nil
}

// DeleteAssignment removes an assignment
func (s *Service) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return s.repos.Assignment.Delete(ctx, assignmentID)
}

// ScheduleRequest holds the scheduling fields of an article
type ScheduleRequest struct {
	ReviewDueAt          *time.Time `json:"review_due_at"`
	PresentationStartsAt *time.Time `json:"presentation_starts_at"`
	PresentationLocation string     `json:"presentation_location"`
}

// SaveSchedule stores the review deadline and presentation slot, empty values clear them
func (s *Service) SaveSchedule(ctx context.Context, articleID string, req ScheduleRequest) (domain.Article, error) {
	err := s.repos.Article.SaveSchedule(ctx, articleID, domain.ArticleSchedule{
		ReviewDueAt:          req.ReviewDueAt,
		PresentationStartsAt: req.PresentationStartsAt,
		PresentationLocation: s.clean(req.PresentationLocation),
	})
	if err != nil {
		return domain.Article{}, err
	}
	return s.repos.Article.Get(ctx, articleID)
}

// SetRole changes another user's role, rules are enforced by the repository procedure
func (s *Service) SetRole(ctx context.Context, callerID, targetID string, role domain.Role) error {
	if err := s.repos.Profile.SetRole(ctx, callerID, targetID, role); err != nil {
		return err
	}
	lgr.Printf("[INFO] role of %s set to %s by %s", targetID, role, callerID)
	return nil
}
