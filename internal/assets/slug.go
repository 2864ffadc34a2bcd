package assets

import (
	"regexp"
	"strings"
)

// FallbackSlug is used when the name hint is empty or slugifies to nothing.
const FallbackSlug = "unknown"

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	nonWord       = regexp.MustCompile(`[^\w\-]+`)
	hyphenRun     = regexp.MustCompile(`\-\-+`)
)

// Slugify 轉成小寫、以單一連字號連接的 URL 安全字串
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackSlug
	}
	return s
}
