package participation

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides participation rows and certificates of an author
type Store interface {
	// AcceptedParticipations returns the author's accepted articles attached to a conference, latest conference first
	AcceptedParticipations(ctx context.Context, authorID string) ([]domain.Participation, error)
	CertificatesByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error)
	IssueCertificate(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error)
}

// Params of the Service
type Params struct {
	Store    Store
	TTL      time.Duration
	Now      func() time.Time
	Location *time.Location // zone of conference end dates without own timezone, time.Local if nil
	Events   EventRecorder
}

// Service serves participation records through the cache and issues certificates
type Service struct {
	store Store
	now   func() time.Time
	loc   *time.Location
	cache *Cache[string, domain.ParticipationRecord]
}

// NewService makes a service with its own cache, Close stops it
func NewService(p Params) *Service {
	s := &Service{store: p.Store, now: p.Now, loc: p.Location}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	s.cache = NewCache(s.load, CacheOpts{Name: "participation", TTL: p.TTL, Now: s.now, Events: p.Events})
	return s
}

// Record returns the author's participations and issued certificates
func (s *Service) Record(ctx context.Context, authorID string) (domain.ParticipationRecord, error) {
	return s.cache.Get(ctx, authorID)
}

// Issue issues (or returns the already issued) certificate for a conference and updates the cached record
func (s *Service) Issue(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
	cert, err := s.store.IssueCertificate(ctx, authorID, conferenceID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("issue certificate: %w", err)
	}
	updated := s.cache.Update(authorID, func(rec domain.ParticipationRecord) domain.ParticipationRecord {
		certs := make(map[string]domain.Certificate, len(rec.CertificatesByConference)+1)
		maps.Copy(certs, rec.CertificatesByConference)
		certs[cert.ConferenceID] = cert
		rec.CertificatesByConference = certs
		return rec
	})
	if !updated {
		lgr.Printf("[DEBUG] certificate %s issued for uncached author %s", cert.CertificateNumber, authorID)
	}
	return cert, nil
}

// Certificate returns an issued certificate of the author for a conference
func (s *Service) Certificate(ctx context.Context, authorID, conferenceID string) (domain.Certificate, error) {
	rec, err := s.Record(ctx, authorID)
	if err != nil {
		return domain.Certificate{}, err
	}
	cert, ok := rec.CertificatesByConference[conferenceID]
	if !ok {
		return domain.Certificate{}, fmt.Errorf("certificate for conference %s: %w", conferenceID, domain.ErrNotFound)
	}
	return cert, nil
}

// Close stops background refreshes
func (s *Service) Close() {
	s.cache.Close()
}

// load builds the record: one participation per finished conference, the first row wins.
// A conference ends at the end of its last day in its own timezone.
func (s *Service) load(ctx context.Context, authorID string) (domain.ParticipationRecord, error) {
	rows, err := s.store.AcceptedParticipations(ctx, authorID)
	if err != nil {
		return domain.ParticipationRecord{}, fmt.Errorf("get participations: %w", err)
	}

	now := s.now()
	seen := map[string]bool{}
	res := domain.ParticipationRecord{Participations: []domain.Participation{}, CertificatesByConference: map[string]domain.Certificate{}}
	for _, p := range rows {
		if p.ConferenceID == "" || seen[p.ConferenceID] {
			continue
		}
		if !domain.ConferenceEnded(p.ConferenceEndDate, now, s.location(p.ConferenceTimezone)) {
			continue
		}
		seen[p.ConferenceID] = true
		res.Participations = append(res.Participations, p)
	}
	if len(res.Participations) == 0 {
		return res, nil
	}

	certs, err := s.store.CertificatesByAuthor(ctx, authorID)
	if err != nil {
		return domain.ParticipationRecord{}, fmt.Errorf("get certificates: %w", err)
	}
	for _, c := range certs {
		res.CertificatesByConference[c.ConferenceID] = c
	}
	return res, nil
}

func (s *Service) location(tz string) *time.Location {
	if tz == "" {
		return s.loc
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		lgr.Printf("[DEBUG] unknown conference timezone %q, using %s", tz, s.loc)
		return s.loc
	}
	return loc
}
