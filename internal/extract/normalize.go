package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	camelBreakRE = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Normalize collapses a raw text-layer stream into a single-space-joined
// string suitable for pattern matching. Casing and punctuation are left
// untouched so labeled phrases like "GST 10%" keep their meaning.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(raw, " "))
}

// CollapseSpaced reconstructs a phrase whose characters were scattered by the
// source layout engine (e.g. "P i c k u p"). All internal whitespace is
// removed first, then readable spacing is reinserted at lower-to-upper case
// transitions, after "!" and around "/".
func CollapseSpaced(s string) string {
	collapsed := whitespaceRE.ReplaceAllString(s, "")
	spaced := camelBreakRE.ReplaceAllString(collapsed, "$1 $2")
	spaced = strings.ReplaceAll(spaced, "!", "! ")
	spaced = strings.ReplaceAll(spaced, "/", " / ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(spaced, " "))
}

// SpacedPattern builds a regex fragment matching a phrase with arbitrary
// whitespace between every character, which is how some PDF text layers
// emit label text. Whitespace in the input phrase is ignored; every other
// character is quoted literally.
func SpacedPattern(phrase string) string {
	var parts []string
	for _, r := range phrase {
		if strings.ContainsRune(" \t\n", r) {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return strings.Join(parts, `\s*`)
}
