package preferences

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/listview"
	"github.com/umputun/confdesk/pkg/preferences/mocks"
)

// memKV makes a map backed KV mock
func memKV() *mocks.KVMock {
	var mu sync.Mutex
	data := map[string]string{}
	return &mocks.KVMock{
		GetSettingFunc: func(_ context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return data[key], nil
		},
		SetSettingFunc: func(_ context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
	}
}

func TestStore_Defaults(t *testing.T) {
	s := New(memKV(), nil).For("u1")
	p := s.Load(context.Background())
	assert.Equal(t, ThemeSystem, p.Theme)
	assert.Equal(t, TimezoneSystem, p.Timezone)
	assert.Equal(t, 8, p.PageSize)
	assert.True(t, p.EmailNotifications)
	assert.False(t, p.CompactMode)
	assert.Equal(t, "en", p.Language)
	assert.Len(t, p.ListSort, len(listview.ListKeys()))
	assert.Equal(t, listview.DateDesc, p.ListSort[listview.ListOrganizerArticles])
	assert.Equal(t, listview.StartDesc, p.ListSort[listview.ListOrganizerConfs])
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	kv := memKV()
	s := New(kv, nil).For("u1")

	require.NoError(t, Set(ctx, s, ThemeKey, ThemeDark))
	require.NoError(t, Set(ctx, s, PageSizeKey, 20))
	require.NoError(t, Set(ctx, s, EmailNotificationsKey, false))
	require.NoError(t, Set(ctx, s, TimezoneKey, "Europe/Kyiv"))
	require.NoError(t, s.SetListSort(ctx, listview.ListReviewerReviews, listview.RatingAsc))

	assert.Equal(t, ThemeDark, Get(ctx, s, ThemeKey))
	assert.Equal(t, 20, Get(ctx, s, PageSizeKey))
	assert.False(t, Get(ctx, s, EmailNotificationsKey))
	assert.Equal(t, "Europe/Kyiv", Get(ctx, s, TimezoneKey))
	assert.Equal(t, listview.RatingAsc, s.ListSort(ctx, listview.ListReviewerReviews))

	keys := make([]string, 0, len(kv.SetSettingCalls()))
	for _, c := range kv.SetSettingCalls() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{
		"user.u1.app.theme", "user.u1.app.page_size", "user.u1.app.settings.email_notifications",
		"user.u1.app.timezone", "user.u1.app.list_sort.reviewer.reviews",
	}, keys)

	// other users are unaffected
	assert.Equal(t, ThemeSystem, Get(ctx, New(kv, nil).For("u2"), ThemeKey))
}

func TestStore_SetRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	kv := memKV()
	s := New(kv, nil).For("u1")

	tbl := []struct {
		name string
		set  func() error
	}{
		{"theme", func() error { return Set(ctx, s, ThemeKey, Theme("neon")) }},
		{"page size", func() error { return Set(ctx, s, PageSizeKey, 10) }},
		{"timezone", func() error { return Set(ctx, s, TimezoneKey, "Mars/Olympus") }},
		{"empty timezone", func() error { return Set(ctx, s, TimezoneKey, "") }},
		{"language", func() error { return Set(ctx, s, LanguageKey, "de") }},
		{"sort outside list", func() error { return s.SetListSort(ctx, listview.ListOrganizerConfs, listview.RatingAsc) }},
		{"unknown list", func() error { return s.SetListSort(ctx, "nope", listview.DateAsc) }},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Empty(t, kv.SetSettingCalls())
}

func TestStore_GetFallsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid stored value", func(t *testing.T) {
		kv := &mocks.KVMock{GetSettingFunc: func(context.Context, string) (string, error) { return "13", nil }}
		assert.Equal(t, 8, Get(ctx, New(kv, nil), PageSizeKey))
	})
	t.Run("storage error", func(t *testing.T) {
		kv := &mocks.KVMock{GetSettingFunc: func(context.Context, string) (string, error) { return "", errors.New("locked") }}
		assert.True(t, Get(ctx, New(kv, nil), EmailNotificationsKey))
		assert.Equal(t, ThemeSystem, Get(ctx, New(kv, nil), ThemeKey))
	})
	t.Run("garbage bool", func(t *testing.T) {
		kv := &mocks.KVMock{GetSettingFunc: func(context.Context, string) (string, error) { return "yes", nil }}
		assert.False(t, Get(ctx, New(kv, nil), CompactModeKey))
	})
}

func TestStore_SetStorageError(t *testing.T) {
	kv := &mocks.KVMock{SetSettingFunc: func(context.Context, string, string) error { return errors.New("disk full") }}
	hub := NewBroadcaster()
	ch, cancel := hub.Subscribe("")
	defer cancel()

	err := Set(context.Background(), New(kv, hub).For("u1"), ThemeKey, ThemeLight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	select {
	case c := <-ch:
		t.Fatalf("unexpected change %+v", c)
	default:
	}
}

func TestStore_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("valid patch", func(t *testing.T) {
		s := New(memKV(), nil).For("u1")
		theme, size, compact := ThemeDark, 50, true
		err := s.Apply(ctx, Patch{Theme: &theme, PageSize: &size, CompactMode: &compact,
			ListSort: map[string]string{listview.ListOrganizerArticles: "title_asc"}})
		require.NoError(t, err)
		p := s.Load(ctx)
		assert.Equal(t, ThemeDark, p.Theme)
		assert.Equal(t, 50, p.PageSize)
		assert.True(t, p.CompactMode)
		assert.Equal(t, listview.TitleAsc, p.ListSort[listview.ListOrganizerArticles])
	})

	t.Run("invalid field blocks the whole patch", func(t *testing.T) {
		kv := memKV()
		s := New(kv, nil).For("u1")
		theme, size := ThemeDark, 7
		err := s.Apply(ctx, Patch{Theme: &theme, PageSize: &size})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "app.page_size")
		assert.Empty(t, kv.SetSettingCalls())
	})

	t.Run("unknown list key", func(t *testing.T) {
		kv := memKV()
		err := New(kv, nil).For("u1").Apply(ctx, Patch{ListSort: map[string]string{"bogus": "date_desc"}})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, kv.SetSettingCalls())
	})
}

func TestBroadcaster(t *testing.T) {
	ctx := context.Background()
	hub := NewBroadcaster()
	root := New(memKV(), hub)

	all, cancelAll := hub.Subscribe("")
	defer cancelAll()
	mine, cancelMine := hub.Subscribe("u1")

	require.NoError(t, Set(ctx, root.For("u2"), ThemeKey, ThemeDark))
	require.NoError(t, Set(ctx, root.For("u1"), PageSizeKey, 12))

	assert.Equal(t, Change{Owner: "u2", Key: "app.theme", Value: "dark"}, <-all)
	assert.Equal(t, Change{Owner: "u1", Key: "app.page_size", Value: "12"}, <-all)
	assert.Equal(t, Change{Owner: "u1", Key: "app.page_size", Value: "12"}, <-mine)

	cancelMine()
	cancelMine() // second cancel is a no-op
	_, open := <-mine
	assert.False(t, open)

	require.NoError(t, Set(ctx, root.For("u1"), ThemeKey, ThemeLight))
	assert.Equal(t, "light", (<-all).Value)
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewBroadcaster()
	_, cancel := hub.Subscribe("")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.publish(Change{Owner: "u1", Key: "app.theme", Value: "dark"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestFormatter(t *testing.T) {
	ts := time.Date(2025, 3, 31, 22, 30, 0, 0, time.UTC)

	kyiv := NewFormatter("Europe/Kyiv")
	assert.Equal(t, "2025-04-01", kyiv.Date(ts))
	assert.Equal(t, "2025-04-01 01:30", kyiv.DateTime(ts))

	utc := NewFormatter("UTC")
	assert.Equal(t, "2025-03-31", utc.Date(ts))
	assert.Equal(t, "2025-03-31 22:30", utc.DateTimePtr(&ts))
	assert.Empty(t, utc.DateTimePtr(nil))
	assert.Empty(t, utc.Date(time.Time{}))

	assert.Equal(t, time.Local, NewFormatter(TimezoneSystem).Location())
	assert.Equal(t, time.Local, NewFormatter("Nowhere/City").Location())
	assert.Equal(t, time.Local, Formatter{}.Location())

	s := New(memKV(), nil).For("u1")
	require.NoError(t, Set(context.Background(), s, TimezoneKey, "UTC"))
	assert.Equal(t, "UTC", s.Formatter(context.Background()).Location().String())
}

func TestStore_WithDefault(t *testing.T) {
	ctx := context.Background()
	kv := memKV()
	s := New(kv, nil, WithDefault(PageSizeKey, 20), WithDefault(LanguageKey, "uk"), WithDefault(PageSizeKey, 9)).For("u1")

	assert.Equal(t, 20, Get(ctx, s, PageSizeKey), "invalid override ignored, earlier one kept")
	assert.Equal(t, "uk", Get(ctx, s, LanguageKey))
	assert.Equal(t, ThemeSystem, Get(ctx, s, ThemeKey))

	require.NoError(t, kv.SetSetting(ctx, "user.u1.app.page_size", "999"))
	assert.Equal(t, 20, Get(ctx, s, PageSizeKey), "invalid stored value falls back to the override")

	require.NoError(t, Set(ctx, s, PageSizeKey, 50))
	assert.Equal(t, 50, Get(ctx, s, PageSizeKey))
}
