package domain

import (
	"sort"
	"strings"
)

/********** cuisine alias registry (single source of truth) **********/

// cuisineAliases maps each canonical cuisine to its known surface forms.
// The canonical value is always listed as its own alias.
var cuisineAliases = map[string][]string{
	"אסייתי":  {"אסייתי", "אסיאתי", "אסייתית"},
	"בשרים":   {"בשרים", "בשרי", "בשרית", "על האש", "גריל"},
	"המבורגר": {"המבורגר", "בורגר"},
	"מזרחי":   {"מזרחי", "מזרחית"},
	"איטלקי":  {"איטלקי", "איטלקית"},
}

var typeCanonical = func() map[string]string {
	m := make(map[string]string, 32)
	for canon, aliases := range cuisineAliases {
		m[canon] = canon
		for _, a := range aliases {
			m[a] = canon
		}
	}
	return m
}()

// NormalizeType maps a raw cuisine label to its canonical category. Input is
// trimmed; unknown labels come back trimmed but otherwise unchanged.
func NormalizeType(raw string) string {
	s := strings.TrimSpace(raw)
	if c, ok := typeCanonical[s]; ok {
		return c
	}
	return s
}

// SameType reports whether two labels normalize to the same category.
func SameType(a, b string) bool { return NormalizeType(a) == NormalizeType(b) }

// CanonicalTypes lists the canonical categories in sorted order.
func CanonicalTypes() []string {
	out := make([]string, 0, len(cuisineAliases))
	for c := range cuisineAliases {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
