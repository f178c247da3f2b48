// Package storage keeps article files: upload rules, storage path derivation and
// a local object store handing out signed download URLs.
package storage

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/confdesk/pkg/domain"
)

// MaxArticleFileSize is the upload limit of article files
const MaxArticleFileSize = 10 << 20

// accepted article files, either extension or mime type is enough
var (
	AllowedExtensions = []string{".pdf", ".doc", ".docx"}
	AllowedMIMETypes  = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

var urlMarkers = []string{
	"/storage/v1/object/public/articles/",
	"/storage/v1/object/sign/articles/",
	"/storage/v1/object/authenticated/articles/",
}

// IsSupportedArticleFile checks the name extension or the declared mime type.
// Some clients send no mime type for local documents, so a known extension is sufficient.
func IsSupportedArticleFile(name, contentType string) bool {
	lower := strings.ToLower(name)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return slices.Contains(AllowedMIMETypes, contentType)
}

// ValidateArticleFile applies the type and size rules of article uploads
func ValidateArticleFile(name, contentType string, size int64) error {
	if name == "" {
		return fmt.Errorf("file is required: %w", domain.ErrValidation)
	}
	if !IsSupportedArticleFile(name, contentType) {
		return fmt.Errorf("unsupported file type, use pdf, doc or docx: %w", domain.ErrValidation)
	}
	if size > MaxArticleFileSize {
		return fmt.Errorf("file is larger than 10MB: %w", domain.ErrValidation)
	}
	return nil
}

// StoragePathFromFileURL derives the object path of a stored file reference. Values that are not
// http(s) URLs are already paths. URLs without a known storage marker report false.
func StoragePathFromFileURL(fileURL string) (string, bool) {
	if fileURL == "" {
		return "", false
	}
	if !strings.HasPrefix(fileURL, "http://") && !strings.HasPrefix(fileURL, "https://") {
		return fileURL, true
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", false
	}
	for _, m := range urlMarkers {
		if idx := strings.Index(u.EscapedPath(), m); idx >= 0 {
			p, err := url.PathUnescape(u.EscapedPath()[idx+len(m):])
			if err != nil {
				return "", false
			}
			return p, true
		}
	}
	return "", false
}

var (
	unsafeNameRe = regexp.MustCompile(`[\\/:*?"<>|]`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// SanitizeFilename replaces characters not allowed in file names with "_" and collapses whitespace
func SanitizeFilename(name string) string {
	name = unsafeNameRe.ReplaceAllString(name, "_")
	return strings.TrimSpace(spacesRe.ReplaceAllString(name, " "))
}

// ArticleObjectPath is the upload path of an article file, <userID>/<unix millis>_<name>
func ArticleObjectPath(userID, name string, now time.Time) string {
	return userID + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + SanitizeFilename(name)
}
