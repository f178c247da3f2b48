package preferences

import (
	"slices"
	"strconv"
	"time"

	"github.com/umputun/confdesk/pkg/listview"
)

// Key describes one typed preference: its storage name, default and string codec.
// Values failing to parse are treated as absent.
type Key[T any] struct {
	Name    string
	Default T
	parse   func(string) (T, bool)
	format  func(T) string
}

// Valid reports whether v survives a round trip through the key's codec
func (k Key[T]) Valid(v T) bool {
	_, ok := k.parse(k.format(v))
	return ok
}

// Theme is the colour scheme preference
type Theme string

// themes
const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// TimezoneSystem means "use the server's local zone"
const TimezoneSystem = "system"

// PageSizeOptions are the page sizes a user can choose from
var PageSizeOptions = []int{8, 12, 20, 50}

// Languages supported by the UI
var Languages = []string{"en", "uk"}

// preference keys
var (
	ThemeKey              = enumKey("app.theme", ThemeSystem, ThemeSystem, ThemeLight, ThemeDark)
	TimezoneKey           = Key[string]{Name: "app.timezone", Default: TimezoneSystem, parse: parseTimezone, format: identity}
	PageSizeKey           = Key[int]{Name: "app.page_size", Default: listview.DefaultPageSize, parse: parsePageSize, format: strconv.Itoa}
	EmailNotificationsKey = boolKey("app.settings.email_notifications", true)
	CompactModeKey        = boolKey("app.settings.compact_mode", false)
	LanguageKey           = enumKey("app.language", "en", Languages...)
)

// ListSortKey is the per-list sort preference, limited to the list's own options
func ListSortKey(listKey string, set listview.SortSet) Key[listview.SortOption] {
	return enumKey("app.list_sort."+listKey, set.Default, set.Options...)
}

func enumKey[T ~string](name string, def T, allowed ...T) Key[T] {
	return Key[T]{
		Name:    name,
		Default: def,
		parse: func(s string) (T, bool) {
			v := T(s)
			return v, slices.Contains(allowed, v)
		},
		format: func(v T) string { return string(v) },
	}
}

func boolKey(name string, def bool) Key[bool] {
	return Key[bool]{
		Name:    name,
		Default: def,
		parse: func(s string) (bool, bool) {
			switch s {
			case "true":
				return true, true
			case "false":
				return false, true
			}
			return false, false
		},
		format: strconv.FormatBool,
	}
}

func identity(s string) string { return s }

func parsePageSize(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || !slices.Contains(PageSizeOptions, n) {
		return 0, false
	}
	return n, true
}

// parseTimezone accepts "system" or any IANA zone name known to the runtime
func parseTimezone(s string) (string, bool) {
	if s == TimezoneSystem {
		return s, true
	}
	if s == "" || s == "Local" {
		return "", false
	}
	if _, err := time.LoadLocation(s); err != nil {
		return "", false
	}
	return s, true
}
