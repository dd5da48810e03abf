package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reScript = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	stripAll = bluemonday.StripTagsPolicy()
)

// SanitizeHTML strips HTML tags, script/style content, and decodes entities
func SanitizeHTML(s string) string {
	// Decode entities first so escaped tags are recognized
	s = html.UnescapeString(s)

	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")

	s = stripAll.Sanitize(s)

	// bluemonday escapes what it keeps; we want plain text
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}

// Snippet returns the plain-text form of an upstream response body, cut to at
// most max runes. Used to keep HTML error pages out of logs.
func Snippet(body []byte, max int) string {
	s := SanitizeHTML(strings.ToValidUTF8(string(body), ""))
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "…"
}
