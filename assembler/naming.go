package assembler

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
var titleCaser = cases.Title(language.English)

// humanizeTitle turns a type name into a display title.
// Example: "ServiceStats" -> "Service Stats", "configUpdate" -> "Config Update"
func humanizeTitle(name string) string {
	var sb strings.Builder
	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return titleCaser.String(strings.ToLower(sb.String()))
}
