// Package scheduler runs the background jobs of the conference desk. The only job today reminds
// reviewers about assignments past their deadline.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
)

//go:generate moq -out mocks/assignment_store.go -pkg mocks -skip-ensure -fmt goimports . AssignmentStore

// JobOverdueReminders is the job name reported to the recorder
const JobOverdueReminders = "overdue_reminders"

// AssignmentStore finds overdue assignments and records reminders
type AssignmentStore interface {
	Overdue(ctx context.Context, now time.Time, limit int) ([]domain.Assignment, error)
	// NotifyOverdue stores the notification and stamps the assignment, false if it was completed or reminded meanwhile
	NotifyOverdue(ctx context.Context, assignmentID string, n domain.Notification) (bool, error)
}

// Recorder receives job outcomes, usually the metrics collector
type Recorder interface {
	RecordJobRun(job string, err error)
	RecordOverdueNotices(n int)
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration // between overdue checks
	Debounce   time.Duration // delay of a triggered check
	BatchSize  int
	MaxWorkers int
	Now        func() time.Time
}

// Scheduler manages periodic overdue checks
type Scheduler struct {
	store    AssignmentStore
	recorder Recorder
	cfg      Config
	triggerC chan struct{}
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	dbMutex  sync.Mutex // serialize database writes
}

// NewScheduler creates a new scheduler instance, recorder may be nil
func NewScheduler(store AssignmentStore, recorder Recorder, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = 5 * time.Second
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Scheduler{store: store, recorder: recorder, cfg: cfg, triggerC: make(chan struct{}, 1)}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.overdueWorker(ctx)

	s.wg.Add(1)
	go s.triggerWorker(ctx)

	lgr.Printf("[INFO] scheduler started with overdue check interval %v", s.cfg.Interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Trigger asks for an overdue check soon, used after deadlines change. Bursts collapse into one check.
func (s *Scheduler) Trigger() {
	select {
	case s.triggerC <- struct{}{}:
	default:
	}
}

// overdueWorker runs the check on start and then periodically
func (s *Scheduler) overdueWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.runJob(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runJob(ctx)
		}
	}
}

// triggerWorker debounces triggers, the check runs once the triggers stop for the debounce period
func (s *Scheduler) triggerWorker(ctx context.Context) {
	defer s.wg.Done()

	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.triggerC:
			debounceTimer.Stop()
			debounceTimer.Reset(s.cfg.Debounce)
		case <-debounceTimer.C:
			lgr.Printf("[DEBUG] processing triggered overdue check")
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	n, err := s.NotifyOverdue(ctx)
	if s.recorder != nil {
		s.recorder.RecordJobRun(JobOverdueReminders, err)
		s.recorder.RecordOverdueNotices(n)
	}
	if err != nil {
		lgr.Printf("[WARN] overdue check failed after %d reminders, will retry next time: %v", n, err)
	}
}

// NotifyOverdue reminds reviewers of every open assignment past its deadline and returns the number
// of reminders stored. Failed reminders stay unstamped and are picked up by the next run.
func (s *Scheduler) NotifyOverdue(ctx context.Context) (int, error) {
	var total atomic.Int64
	failedIDs := map[string]bool{} // stay overdue, skipped by later batches of this run
	for {
		limit := s.cfg.BatchSize + len(failedIDs)
		items, err := s.store.Overdue(ctx, s.cfg.Now(), limit)
		if err != nil {
			return int(total.Load()), fmt.Errorf("get overdue assignments: %w", err)
		}
		batch := make([]domain.Assignment, 0, len(items))
		for _, a := range items {
			if !failedIDs[a.ID] {
				batch = append(batch, a)
			}
		}
		if len(batch) == 0 {
			break
		}

		// use worker pool to store reminders concurrently
		sem := make(chan struct{}, s.cfg.MaxWorkers)
		var wg sync.WaitGroup
		var mu sync.Mutex
		for _, a := range batch {
			wg.Add(1)
			go func(a domain.Assignment) {
				defer wg.Done()
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					return
				}
				ok, err := s.remind(ctx, a)
				switch {
				case err != nil:
					lgr.Printf("[WARN] failed to remind reviewer %s about article %s: %v", a.ReviewerID, a.ArticleID, err)
					mu.Lock()
					failedIDs[a.ID] = true
					mu.Unlock()
				case ok:
					total.Add(1)
				}
			}(a)
		}
		wg.Wait()

		if ctx.Err() != nil {
			return int(total.Load()), ctx.Err()
		}
		if len(items) < limit {
			break
		}
	}

	if n := total.Load(); n > 0 {
		lgr.Printf("[INFO] sent %d overdue review reminders", n)
	}
	if len(failedIDs) > 0 {
		return int(total.Load()), fmt.Errorf("%d reminders failed", len(failedIDs))
	}
	return int(total.Load()), nil
}

func (s *Scheduler) remind(ctx context.Context, a domain.Assignment) (bool, error) {
	n := domain.Notification{
		UserID:  a.ReviewerID,
		Title:   "Review overdue",
		Message: reminderMessage(a),
		Type:    domain.NotificationReviewOverdue,
	}
	s.dbMutex.Lock()
	defer s.dbMutex.Unlock()
	return s.store.NotifyOverdue(ctx, a.ID, n)
}

func reminderMessage(a domain.Assignment) string {
	title := a.ArticleTitle
	if title == "" {
		title = a.ArticleID
	}
	if a.DueAt == nil {
		return fmt.Sprintf("The review of %q is overdue.", title)
	}
	return fmt.Sprintf("The review of %q was due %s UTC.", title, a.DueAt.UTC().Format("2006-01-02 15:04"))
}
