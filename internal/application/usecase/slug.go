package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify genera el ID de producto a partir del nombre: minúsculas, sin
// acentos, solo [a-z0-9] y guiones ("Corona Chica Fúnebre" → "corona-chica-funebre").
func slugify(nombre string) string {
	s, _, err := transform.String(deaccent, strings.ToLower(nombre))
	if err != nil {
		s = strings.ToLower(nombre)
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
