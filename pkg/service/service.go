// Package service implements the role workflows of the conference desk on top of the repositories:
// what authors, reviewers and organizers read and which mutations they dispatch, with the
// validation done before any write and the write order of each multi-step action.
package service

import (
	"context"
	"html"
	"io"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/confdesk/pkg/repository"
)

//go:generate moq -out mocks/file_store.go -pkg mocks -skip-ensure -fmt goimports . FileStore

// FileStore is the object storage of article files
type FileStore interface {
	Upload(ctx context.Context, objPath string, r io.Reader) error
	SignedURL(ctx context.Context, objPath string) (string, error)
}

// Params of the Service
type Params struct {
	Repos *repository.Repositories
	Files FileStore
	Now   func() time.Time
}

// Service runs the workflows of all roles
type Service struct {
	repos  *repository.Repositories
	files  FileStore
	now    func() time.Time
	policy *bluemonday.Policy
}

// New makes a Service
func New(p Params) *Service {
	s := &Service{repos: p.Repos, files: p.Files, now: p.Now, policy: bluemonday.StrictPolicy()}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// clean strips markup from user entered text and trims it. Entities are decoded back,
// stored values are plain text and escaped on output.
func (s *Service) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}
