package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer zerlegt in NFD, entfernt kombinierende Zeichen und setzt wieder zu NFC zusammen.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold normalisiert einen Suchbegriff: Kleinschreibung und diakritische Zeichen entfernt,
// ß wird zu ss. "Schraubendreher Größe 3" und "schraubendreher grosse 3" matchen damit gleich.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ß", "ss")
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// ContainsFold prüft diakritik- und großschreibungsunabhängig auf Teilstring.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
