package logic

import "unicode"

// DefaultAffix is the prefix and suffix used when none is configured.
// Wrapping the search text in "*" lets it match anywhere in a candidate.
const DefaultAffix = "*"

// Pattern is the glob built from the live search text
type Pattern struct {
	Glob          string
	CaseSensitive bool

	prefix, search, suffix string
}

// BuildPattern wraps the search text in prefix and suffix and decides the case policy.
// Matching is case-insensitive unless the search text holds an uppercase letter.
func BuildPattern(prefix, search, suffix string) Pattern {
	return Pattern{
		Glob:          prefix + search + suffix,
		CaseSensitive: HasUpper(search),
		prefix:        prefix,
		search:        search,
		suffix:        suffix,
	}
}

// HasUpper reports whether s contains at least one uppercase letter
func HasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
