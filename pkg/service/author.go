package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/storage"
)

// SubmitArticleRequest is the article form with the attached file
type SubmitArticleRequest struct {
	Title        string `json:"title" validate:"required"`
	Abstract     string `json:"abstract" validate:"required"`
	Keywords     string `json:"keywords" validate:"required"` // comma separated
	ConferenceID string `json:"conference_id"`
	SectionID    string `json:"section_id"`
	Language     string `json:"language" validate:"omitempty,max=16"`

	FileName    string    `json:"-"`
	ContentType string    `json:"-"`
	FileSize    int64     `json:"-"`
	File        io.Reader `json:"-"`
}

// SplitKeywords splits a comma separated list, dropping empty entries
func SplitKeywords(s string) []string {
	res := []string{}
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}

// SubmitArticle validates the form, uploads the file under the author's prefix and stores the article.
// Nothing is written when validation fails.
func (s *Service) SubmitArticle(ctx context.Context, authorID string, req SubmitArticleRequest) (domain.Article, error) {
	req.Title, req.Abstract = s.clean(req.Title), s.clean(req.Abstract)
	req.ConferenceID, req.SectionID = strings.TrimSpace(req.ConferenceID), strings.TrimSpace(req.SectionID)
	if err := validateStruct(req); err != nil {
		return domain.Article{}, err
	}
	keywords := SplitKeywords(s.clean(req.Keywords))
	if len(keywords) == 0 {
		return domain.Article{}, invalid("at least one keyword is required")
	}
	if req.File == nil || req.FileName == "" {
		return domain.Article{}, invalid("article file is required")
	}
	if err := storage.ValidateArticleFile(req.FileName, req.ContentType, req.FileSize); err != nil {
		return domain.Article{}, err
	}
	if err := s.checkConferenceChoice(ctx, req.ConferenceID, req.SectionID); err != nil {
		return domain.Article{}, err
	}

	objPath := storage.ArticleObjectPath(authorID, req.FileName, s.now())
	if err := s.files.Upload(ctx, objPath, req.File); err != nil {
		return domain.Article{}, fmt.Errorf("upload article file: %w", err)
	}

	article := domain.Article{
		Title:        req.Title,
		Abstract:     req.Abstract,
		Keywords:     keywords,
		FileURL:      objPath,
		FileName:     req.FileName,
		AuthorID:     authorID,
		ConferenceID: req.ConferenceID,
		SectionID:    req.SectionID,
		Language:     strings.TrimSpace(req.Language),
	}
	if err := s.repos.Article.Create(ctx, &article); err != nil {
		lgr.Printf("[WARN] article file %s uploaded but article not saved", objPath)
		return domain.Article{}, fmt.Errorf("save article: %w", err)
	}
	lgr.Printf("[INFO] article %s submitted by %s", article.ID, authorID)
	return s.repos.Article.Get(ctx, article.ID)
}

// checkConferenceChoice requires a conference whenever public conferences exist, and a section of that conference
func (s *Service) checkConferenceChoice(ctx context.Context, conferenceID, sectionID string) error {
	if conferenceID == "" {
		n, err := s.repos.Conference.CountPublic(ctx)
		if err != nil {
			return fmt.Errorf("check conferences: %w", err)
		}
		if n > 0 {
			return invalid("conference is required")
		}
		if sectionID != "" {
			return invalid("section requires a conference")
		}
		return nil
	}
	if _, err := s.repos.Conference.Get(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invalid("unknown conference %s", conferenceID)
		}
		return fmt.Errorf("check conference: %w", err)
	}
	if sectionID == "" {
		return nil
	}
	sections, err := s.repos.Conference.Sections(ctx, conferenceID)
	if err != nil {
		return fmt.Errorf("check section: %w", err)
	}
	if !slices.ContainsFunc(sections, func(sec domain.ConferenceSection) bool { return sec.ID == sectionID }) {
		return invalid("section %s is not part of the conference", sectionID)
	}
	return nil
}

// AuthorArticles returns the author's own articles, newest first
func (s *Service) AuthorArticles(ctx context.Context, authorID string) ([]domain.Article, error) {
	return s.repos.Article.ListByAuthor(ctx, authorID)
}

// AuthorReviews returns submitted reviews of the author's articles
func (s *Service) AuthorReviews(ctx context.Context, authorID string) ([]domain.Review, error) {
	return s.repos.Review.ListForAuthor(ctx, authorID)
}

// PublicConferences returns conferences offered on the submission form
func (s *Service) PublicConferences(ctx context.Context) ([]domain.Conference, error) {
	return s.repos.Conference.ListPublic(ctx)
}

// ArticleDetails is an article with its reviews, history and, for organizers, assignments
type ArticleDetails struct {
	Article     domain.Article         `json:"article"`
	Reviews     []domain.Review        `json:"reviews"`
	History     []domain.StatusHistory `json:"history"`
	Assignments []domain.Assignment    `json:"assignments,omitempty"`
}

// ArticleDetails loads an article visible to the caller: its author, an organizer or an assigned reviewer
func (s *Service) ArticleDetails(ctx context.Context, caller domain.Profile, articleID string) (ArticleDetails, error) {
	article, assignments, err := s.visibleArticle(ctx, caller, articleID)
	if err != nil {
		return ArticleDetails{}, err
	}
	res := ArticleDetails{Article: article}
	if res.Reviews, err = s.repos.Review.ListForArticle(ctx, articleID); err != nil {
		return ArticleDetails{}, fmt.Errorf("get reviews: %w", err)
	}
	if res.History, err = s.repos.Article.History(ctx, articleID); err != nil {
		return ArticleDetails{}, fmt.Errorf("get status history: %w", err)
	}
	if caller.Role == domain.RoleOrganizer {
		res.Assignments = assignments
	}
	return res, nil
}

// ArticleFileURL returns a fresh signed URL of the article file
func (s *Service) ArticleFileURL(ctx context.Context, caller domain.Profile, articleID string) (string, error) {
	article, _, err := s.visibleArticle(ctx, caller, articleID)
	if err != nil {
		return "", err
	}
	if article.FileURL == "" {
		return "", fmt.Errorf("article %s has no file: %w", articleID, domain.ErrNotFound)
	}
	objPath, ok := storage.StoragePathFromFileURL(article.FileURL)
	if !ok {
		return article.FileURL, nil // external url, served as is
	}
	url, err := s.files.SignedURL(ctx, objPath)
	if err != nil {
		return "", fmt.Errorf("sign article file: %w", err)
	}
	return url, nil
}

func (s *Service) visibleArticle(ctx context.Context, caller domain.Profile, articleID string) (domain.Article, []domain.Assignment, error) {
	article, err := s.repos.Article.Get(ctx, articleID)
	if err != nil {
		return domain.Article{}, nil, err
	}
	assignments, err := s.repos.Assignment.ListForArticle(ctx, articleID)
	if err != nil {
		return domain.Article{}, nil, fmt.Errorf("get assignments: %w", err)
	}
	switch {
	case caller.Role == domain.RoleOrganizer, article.AuthorID == caller.ID:
		return article, assignments, nil
	case caller.Role == domain.RoleReviewer &&
		slices.ContainsFunc(assignments, func(a domain.Assignment) bool { return a.ReviewerID == caller.ID }):
		return article, assignments, nil
	}
	return domain.Article{}, nil, fmt.Errorf("article %s: %w", articleID, domain.ErrForbidden)
}
