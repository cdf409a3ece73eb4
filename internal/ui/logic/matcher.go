package logic

import (
	"errors"
	"log"
	"strings"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
)

// compiledCacheSize bounds how many compiled patterns the matcher keeps around.
// Backspacing over a few characters reuses recent entries.
const compiledCacheSize = 128

// MatchSet is the ordered subset of candidates that satisfy a pattern
type MatchSet []string

type cacheKey struct {
	glob                   string
	prefix, search, suffix string
	fold                   bool
}

// compiled wraps a glob; a nil glob matches nothing.
type compiled struct {
	g glob.Glob
}

// Matcher applies shell-glob patterns to the candidate list.
// It caches compiled patterns only, never match results.
type Matcher struct {
	cache *lru.Cache[cacheKey, compiled]
}

// NewMatcher creates a new matcher
func NewMatcher() *Matcher {
	cache, err := lru.New[cacheKey, compiled](compiledCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(err)
	}
	return &Matcher{cache: cache}
}

// Match returns the candidates whose whole text matches the pattern, in original order
func (m *Matcher) Match(p Pattern, candidates []string) MatchSet {
	fold := !p.CaseSensitive
	c := m.compile(p, fold)
	if c.g == nil {
		return MatchSet{}
	}

	matches := make(MatchSet, 0, len(candidates))
	for _, candidate := range candidates {
		subject := candidate
		if fold {
			subject = strings.ToLower(subject)
		}
		if c.g.Match(subject) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func (m *Matcher) compile(p Pattern, fold bool) compiled {
	key := cacheKey{glob: p.Glob, prefix: p.prefix, search: p.search, suffix: p.suffix, fold: fold}
	if c, ok := m.cache.Get(key); ok {
		return c
	}

	source := p.Glob
	if fold {
		source = strings.ToLower(source)
	}
	g, err := compileGlob(source, fold)
	if err != nil && !errors.Is(err, errNeverMatches) {
		// A malformed search is taken literally inside the affixes
		literal := p.prefix + glob.QuoteMeta(p.search) + p.suffix
		if fold {
			literal = strings.ToLower(literal)
		}
		g, err = compileGlob(literal, fold)
	}
	if err != nil {
		if !errors.Is(err, errNeverMatches) {
			log.Printf("pattern %q does not compile: %v", p.Glob, err)
		}
		g = nil
	}

	c := compiled{g: g}
	m.cache.Add(key, c)
	return c
}

func compileGlob(pattern string, fold bool) (glob.Glob, error) {
	translated, err := translateGlob(pattern, fold)
	if err != nil {
		return nil, err
	}
	return glob.Compile(translated)
}

// translateGlob rewrites fnmatch syntax into the dialect understood by gobwas/glob.
// Braces are escaped since fnmatch has no alternation. A trailing backslash
// stands for itself, as does an unterminated '['.
func translateGlob(pattern string, fold bool) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern) + 4)

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 == len(runes) {
				b.WriteString(`\\`)
				continue
			}
			i++
			b.WriteRune('\\')
			b.WriteRune(runes[i])
		case '[':
			class, end, err := parseClass(runes, i+1, fold)
			if errors.Is(err, errUnterminated) {
				b.WriteString(`\[`)
				continue
			}
			if err != nil {
				return "", err
			}
			if err := class.writeTo(&b); err != nil {
				return "", err
			}
			i = end
		case '{', '}':
			b.WriteRune('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
