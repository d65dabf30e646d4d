package club

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Club is static reference data; rows are read-only within a request.
type Club struct {
	ID           string
	NameOfficial string
	NameShort    string
}

// DisplayName prefers the short name the way the dashboard labels clubs.
func (c Club) DisplayName() string {
	if strings.TrimSpace(c.NameShort) != "" {
		return c.NameShort
	}
	return c.NameOfficial
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey folds a club display name into a comparison key: trimmed,
// inner whitespace collapsed, lowercased, combining marks removed. "São Paulo",
// "sao   paulo" and "SÃO PAULO" all produce "sao paulo".
func NormalizeKey(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	lowered := strings.ToLower(collapsed)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
