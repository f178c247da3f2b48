package service

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
)

// SubmitReviewRequest is the review form
type SubmitReviewRequest struct {
	ArticleID      string                `json:"article_id" validate:"required"`
	Content        string                `json:"content" validate:"required"`
	Rating         int                   `json:"rating" validate:"min=1,max=5"`
	Recommendation domain.Recommendation `json:"recommendation" validate:"oneof=accept accept_with_comments reject"`
}

// AvailableArticles returns articles waiting for the reviewer's evaluation with assignment deadlines
func (s *Service) AvailableArticles(ctx context.Context, reviewerID string) ([]domain.ReviewerArticle, error) {
	return s.repos.Article.AvailableForReviewer(ctx, reviewerID)
}

// ReviewerReviews returns the reviewer's own reviews, newest first
func (s *Service) ReviewerReviews(ctx context.Context, reviewerID string) ([]domain.Review, error) {
	return s.repos.Review.ListByReviewer(ctx, reviewerID)
}

// SubmitReview stores the review, moves the article to under_review and completes the reviewer's
// assignment. Steps run in this order and the first failure stops the chain.
func (s *Service) SubmitReview(ctx context.Context, reviewerID string, req SubmitReviewRequest) (domain.Review, error) {
	req.Content = s.clean(req.Content)
	if err := validateStruct(req); err != nil {
		return domain.Review{}, err
	}

	article, err := s.repos.Article.Get(ctx, req.ArticleID)
	if err != nil {
		return domain.Review{}, err
	}
	if article.AuthorID == reviewerID {
		return domain.Review{}, fmt.Errorf("review own article: %w", domain.ErrForbidden)
	}
	if article.Status != domain.StatusSubmitted && article.Status != domain.StatusUnderReview {
		return domain.Review{}, fmt.Errorf("article is %s: %w", article.Status, domain.ErrConflict)
	}
	done, err := s.repos.Review.HasReviewed(ctx, req.ArticleID, reviewerID)
	if err != nil {
		return domain.Review{}, err
	}
	if done {
		return domain.Review{}, fmt.Errorf("article already reviewed: %w", domain.ErrConflict)
	}

	review := domain.Review{ArticleID: req.ArticleID, ReviewerID: reviewerID, Content: req.Content,
		Rating: req.Rating, Recommendation: req.Recommendation}
	if err := s.repos.Review.Create(ctx, &review); err != nil {
		return domain.Review{}, fmt.Errorf("save review: %w", err)
	}
	if err := s.repos.Article.SetStatus(ctx, req.ArticleID, domain.StatusUnderReview); err != nil {
		return domain.Review{}, fmt.Errorf("mark article under review: %w", err)
	}
	if err := s.repos.Assignment.Complete(ctx, req.ArticleID, reviewerID); err != nil {
		return domain.Review{}, fmt.Errorf("complete assignment: %w", err)
	}
	lgr.Printf("[INFO] review %s of article %s submitted by %s", review.ID, req.ArticleID, reviewerID)
	return review, nil
}
