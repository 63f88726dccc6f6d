package export

import (
	"regexp"
	"strings"
)

const (
	maxFilenameLen  = 100
	defaultBasename = "proposal"
)

var (
	separatorRe = regexp.MustCompile(`[/\\|]`)
	forbiddenRe = regexp.MustCompile(`[<>:"?*]`)
	collapseRe  = regexp.MustCompile(`[\s_]+`)
)

// SanitizeFilename derives a download base name from a document name.
// Path separators become underscores so adjacent words stay apart, the
// remaining filesystem-unsafe characters are dropped, whitespace runs
// collapse to a single underscore, and the result is capped at 100
// characters. An empty name falls back to "proposal".
func SanitizeFilename(name string) string {
	s := separatorRe.ReplaceAllString(name, "_")
	s = forbiddenRe.ReplaceAllString(s, "")
	s = collapseRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if runes := []rune(s); len(runes) > maxFilenameLen {
		s = string(runes[:maxFilenameLen])
	}
	if s == "" {
		return defaultBasename
	}
	return s
}
