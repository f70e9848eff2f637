package helpers

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxTagLength = 100

var (
	// Characters that survive tag munging, besides spaces which become dashes.
	tagDisallowed = regexp.MustCompile(`[^a-z0-9\- ]`)
	dashRuns      = regexp.MustCompile(`-+`)

	// Decompose, strip combining marks, recompose. Folds "Lärm" to "Larm".
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// MungeTag normalizes a free-text keyword into the URL-safe tag form used by
// the catalog: diacritics folded to ASCII, lowercased, anything outside
// [a-z0-9- ] dropped, spaces turned into dashes.
func MungeTag(tag string) string {
	folded, _, err := transform.String(asciiFold, tag)
	if err != nil {
		folded = tag
	}
	tag = strings.ToLower(strings.TrimSpace(folded))
	tag = tagDisallowed.ReplaceAllString(tag, "")
	tag = strings.ReplaceAll(tag, " ", "-")
	tag = dashRuns.ReplaceAllString(tag, "-")
	tag = strings.Trim(tag, "-")
	if len(tag) > maxTagLength {
		tag = tag[:maxTagLength]
	}
	return tag
}
