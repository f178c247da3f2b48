// Package preferences keeps per-user display settings in a key-value substrate.
// Reads never fail: missing, unreadable or invalid values degrade to the key's default.
package preferences

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/listview"
)

//go:generate moq -out mocks/kv.go -pkg mocks -skip-ensure -fmt goimports . KV

// KV is the string key/value persistence substrate
type KV interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Store reads and writes preferences of one owner
type Store struct {
	kv       KV
	hub      *Broadcaster
	owner    string
	prefix   string
	defaults map[string]string // raw overrides of key defaults
}

// Option configures a Store
type Option func(*Store)

// WithDefault overrides the default of a key, values the key rejects are ignored
func WithDefault[T any](k Key[T], v T) Option {
	return func(s *Store) {
		if !k.Valid(v) {
			lgr.Printf("[WARN] ignore invalid default %v for %s", v, k.Name)
			return
		}
		s.defaults[k.Name] = k.format(v)
	}
}

// New makes the root store. hub may be nil if nobody listens for changes.
func New(kv KV, hub *Broadcaster, opts ...Option) *Store {
	s := &Store{kv: kv, hub: hub, defaults: map[string]string{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// For returns a store scoped to a user, keys are stored as "user.<id>.<name>"
func (s *Store) For(userID string) *Store {
	return &Store{kv: s.kv, hub: s.hub, owner: userID, prefix: "user." + userID + ".", defaults: s.defaults}
}

// Owner is the user id the store is scoped to, empty for the root store
func (s *Store) Owner() string {
	return s.owner
}

// Get reads a preference, falling back to the key's default
func Get[T any](ctx context.Context, s *Store, k Key[T]) T {
	raw, err := s.kv.GetSetting(ctx, s.prefix+k.Name)
	if err != nil {
		lgr.Printf("[WARN] can't read preference %s%s: %v", s.prefix, k.Name, err)
		return defaultOf(s, k)
	}
	if raw == "" {
		return defaultOf(s, k)
	}
	v, ok := k.parse(raw)
	if !ok {
		lgr.Printf("[DEBUG] ignore invalid preference %s%s=%q", s.prefix, k.Name, raw)
		return defaultOf(s, k)
	}
	return v
}

func defaultOf[T any](s *Store, k Key[T]) T {
	if raw, ok := s.defaults[k.Name]; ok {
		if v, ok := k.parse(raw); ok {
			return v
		}
	}
	return k.Default
}

// Set validates, persists and broadcasts a preference
func Set[T any](ctx context.Context, s *Store, k Key[T], v T) error {
	if !k.Valid(v) {
		return fmt.Errorf("invalid value %v for %s: %w", v, k.Name, domain.ErrValidation)
	}
	raw := k.format(v)
	if err := s.kv.SetSetting(ctx, s.prefix+k.Name, raw); err != nil {
		return fmt.Errorf("save preference %s: %w", k.Name, err)
	}
	s.hub.publish(Change{Owner: s.owner, Key: k.Name, Value: raw})
	return nil
}

// Preferences is the full set of display settings of a user
type Preferences struct {
	Theme              Theme                          `json:"theme"`
	Timezone           string                         `json:"timezone"`
	PageSize           int                            `json:"page_size"`
	EmailNotifications bool                           `json:"email_notifications"`
	CompactMode        bool                           `json:"compact_mode"`
	Language           string                         `json:"language"`
	ListSort           map[string]listview.SortOption `json:"list_sort"`
}

// Load reads every preference
func (s *Store) Load(ctx context.Context) Preferences {
	p := Preferences{
		Theme:              Get(ctx, s, ThemeKey),
		Timezone:           Get(ctx, s, TimezoneKey),
		PageSize:           Get(ctx, s, PageSizeKey),
		EmailNotifications: Get(ctx, s, EmailNotificationsKey),
		CompactMode:        Get(ctx, s, CompactModeKey),
		Language:           Get(ctx, s, LanguageKey),
		ListSort:           map[string]listview.SortOption{},
	}
	for _, lk := range listview.ListKeys() {
		set, _ := listview.SortSetFor(lk)
		p.ListSort[lk] = Get(ctx, s, ListSortKey(lk, set))
	}
	return p
}

// ListSort reads the sort preference of a known list, the list default for unknown keys
func (s *Store) ListSort(ctx context.Context, listKey string) listview.SortOption {
	set, ok := listview.SortSetFor(listKey)
	if !ok {
		return ""
	}
	return Get(ctx, s, ListSortKey(listKey, set))
}

// SetListSort stores the sort preference of a list
func (s *Store) SetListSort(ctx context.Context, listKey string, opt listview.SortOption) error {
	set, ok := listview.SortSetFor(listKey)
	if !ok {
		return fmt.Errorf("unknown list %q: %w", listKey, domain.ErrValidation)
	}
	return Set(ctx, s, ListSortKey(listKey, set), opt)
}

// Patch is a partial update, nil fields are left untouched
type Patch struct {
	Theme              *Theme            `json:"theme,omitempty"`
	Timezone           *string           `json:"timezone,omitempty"`
	PageSize           *int              `json:"page_size,omitempty"`
	EmailNotifications *bool             `json:"email_notifications,omitempty"`
	CompactMode        *bool             `json:"compact_mode,omitempty"`
	Language           *string           `json:"language,omitempty"`
	ListSort           map[string]string `json:"list_sort,omitempty"`
}

// Apply validates the whole patch before writing anything, then writes field by field
func (s *Store) Apply(ctx context.Context, p Patch) error {
	var errs []string
	check := func(ok bool, name string) {
		if !ok {
			errs = append(errs, name)
		}
	}
	if p.Theme != nil {
		check(ThemeKey.Valid(*p.Theme), ThemeKey.Name)
	}
	if p.Timezone != nil {
		check(TimezoneKey.Valid(*p.Timezone), TimezoneKey.Name)
	}
	if p.PageSize != nil {
		check(PageSizeKey.Valid(*p.PageSize), PageSizeKey.Name)
	}
	if p.Language != nil {
		check(LanguageKey.Valid(*p.Language), LanguageKey.Name)
	}
	for lk, opt := range p.ListSort {
		set, ok := listview.SortSetFor(lk)
		check(ok && set.Contains(listview.SortOption(opt)), "app.list_sort."+lk)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid preferences %v: %w", errs, domain.ErrValidation)
	}

	var err error
	setIf := func(f func() error) {
		if err == nil {
			err = f()
		}
	}
	if p.Theme != nil {
		setIf(func() error { return Set(ctx, s, ThemeKey, *p.Theme) })
	}
	if p.Timezone != nil {
		setIf(func() error { return Set(ctx, s, TimezoneKey, *p.Timezone) })
	}
	if p.PageSize != nil {
		setIf(func() error { return Set(ctx, s, PageSizeKey, *p.PageSize) })
	}
	if p.EmailNotifications != nil {
		setIf(func() error { return Set(ctx, s, EmailNotificationsKey, *p.EmailNotifications) })
	}
	if p.CompactMode != nil {
		setIf(func() error { return Set(ctx, s, CompactModeKey, *p.CompactMode) })
	}
	if p.Language != nil {
		setIf(func() error { return Set(ctx, s, LanguageKey, *p.Language) })
	}
	for lk, opt := range p.ListSort {
		setIf(func() error { return s.SetListSort(ctx, lk, listview.SortOption(opt)) })
	}
	return err
}
