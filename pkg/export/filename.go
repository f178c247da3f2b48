// Package export renders organizer and author documents: article CSV, the proceedings
// bundle and participation certificates.
package export

import (
	"regexp"
	"strings"
)

const maxSegmentLen = 60

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// FilenameSegment turns free text into a file name part: lowercased, runs of anything but
// letters and digits replaced by "_", trimmed of "_" and cut to 60 runes. Empty results use fallback.
func FilenameSegment(s, fallback string) string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = fallback
	}
	if r := []rune(cleaned); len(r) > maxSegmentLen {
		cleaned = string(r[:maxSegmentLen])
	}
	return cleaned
}
