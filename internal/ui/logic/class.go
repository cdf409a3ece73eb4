package logic

import (
	"errors"
	"slices"
	"strings"
)

// maxClassRunes bounds how many runes a bracket expression is expanded into.
// gobwas/glob accepts either one range or a plain rune list per bracket, so
// mixed sets are written out rune by rune.
const maxClassRunes = 4096

var (
	// errNeverMatches marks a pattern no candidate can satisfy
	errNeverMatches = errors.New("pattern can never match")

	errUnterminated = errors.New("unterminated bracket expression")
)

type runeRange struct {
	lo, hi rune
}

// namedClasses are the POSIX character classes of the C locale
var namedClasses = map[string][]runeRange{
	"alnum":  {{'0', '9'}, {'A', 'Z'}, {'a', 'z'}},
	"alpha":  {{'A', 'Z'}, {'a', 'z'}},
	"blank":  {{'\t', '\t'}, {' ', ' '}},
	"cntrl":  {{0, 0x1f}, {0x7f, 0x7f}},
	"digit":  {{'0', '9'}},
	"graph":  {{'!', '~'}},
	"lower":  {{'a', 'z'}},
	"print":  {{' ', '~'}},
	"punct":  {{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}},
	"space":  {{'\t', '\r'}, {' ', ' '}},
	"upper":  {{'A', 'Z'}},
	"xdigit": {{'0', '9'}, {'A', 'F'}, {'a', 'f'}},
}

// charClass is a parsed bracket expression
type charClass struct {
	negated bool
	ranges  []runeRange
}

// parseClass parses the bracket expression whose body starts at runes[i],
// just past the '['. It returns the index of the closing ']'.
// A ']' first in the body is a member, not the end of the expression.
func parseClass(runes []rune, i int, fold bool) (charClass, int, error) {
	var c charClass
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		c.negated = true
		i++
	}

	for first := true; i < len(runes); first = false {
		if runes[i] == ']' && !first {
			return c, i, nil
		}

		if runes[i] == '[' && i+1 < len(runes) && runes[i+1] == ':' {
			if name, end, ok := className(runes, i+2); ok {
				ranges, known := namedClasses[name]
				if !known {
					return charClass{}, 0, errNeverMatches
				}
				if fold && name == "upper" {
					// candidates are lowercased before matching
					ranges = namedClasses["lower"]
				}
				c.ranges = append(c.ranges, ranges...)
				i = end + 1
				continue
			}
		}

		lo, next, ok := classRune(runes, i)
		if !ok {
			break
		}
		i = next

		if i+1 < len(runes) && runes[i] == '-' && runes[i+1] != ']' {
			hi, next, ok := classRune(runes, i+1)
			if !ok {
				break
			}
			i = next
			// a reversed range is empty
			if lo <= hi {
				c.ranges = append(c.ranges, runeRange{lo, hi})
			}
			continue
		}
		c.ranges = append(c.ranges, runeRange{lo, lo})
	}

	return charClass{}, 0, errUnterminated
}

// classRune reads one, possibly escaped, member rune
func classRune(runes []rune, i int) (rune, int, bool) {
	if runes[i] != '\\' {
		return runes[i], i + 1, true
	}
	if i+1 >= len(runes) {
		return 0, 0, false
	}
	return runes[i+1], i + 2, true
}

// className reads the name of a "[:name:]" class starting after "[:" and
// returns the index of its closing ']'
func className(runes []rune, i int) (string, int, bool) {
	for j := i; j+1 < len(runes); j++ {
		r := runes[j]
		if r == ':' && runes[j+1] == ']' {
			return string(runes[i:j]), j + 1, true
		}
		if r < 'a' || r > 'z' {
			return "", 0, false
		}
	}
	return "", 0, false
}

// writeTo writes the class in gobwas/glob syntax
func (c charClass) writeTo(b *strings.Builder) error {
	ranges := splitBang(c.ranges)

	switch {
	case len(ranges) == 0:
		if !c.negated {
			return errNeverMatches
		}
		b.WriteByte('?')
		return nil

	case len(ranges) == 1 && ranges[0].lo != ranges[0].hi:
		writeRange(b, c.negated, ranges[0])
		return nil
	}

	var size int
	for _, r := range ranges {
		size += int(r.hi-r.lo) + 1
	}
	if size > maxClassRunes && !c.negated {
		// large sets become an alternation of ranges
		b.WriteByte('{')
		for i, r := range ranges {
			if i > 0 {
				b.WriteByte(',')
			}
			if r.lo == r.hi {
				writeEscaped(b, r.lo)
			} else {
				writeRange(b, false, r)
			}
		}
		b.WriteByte('}')
		return nil
	}

	members := make([]rune, 0, size)
	for _, r := range ranges {
		for m := r.lo; m <= r.hi; m++ {
			members = append(members, m)
		}
	}
	writeList(b, c.negated, members)
	return nil
}

// splitBang keeps '!' from opening a range, where gobwas/glob would read it
// as negation
func splitBang(ranges []runeRange) []runeRange {
	out := ranges[:0:0]
	for _, r := range ranges {
		if r.lo == '!' && r.hi > '!' {
			out = append(out, runeRange{'!', '!'}, runeRange{'"', r.hi})
			continue
		}
		out = append(out, r)
	}
	return out
}

func writeRange(b *strings.Builder, negated bool, r runeRange) {
	b.WriteByte('[')
	if negated {
		b.WriteByte('!')
	}
	b.WriteRune(r.lo)
	b.WriteByte('-')
	b.WriteRune(r.hi)
	b.WriteByte(']')
}

// writeList writes a rune list. A '-' goes first so that it is never read as
// a range, and the rest are escaped where gobwas/glob gives them meaning.
func writeList(b *strings.Builder, negated bool, members []rune) {
	slices.Sort(members)
	members = slices.Compact(members)

	if len(members) == 1 && !negated {
		writeEscaped(b, members[0])
		return
	}

	b.WriteByte('[')
	if negated {
		b.WriteByte('!')
	}
	if i := slices.Index(members, '-'); i >= 0 {
		b.WriteByte('-')
		members = slices.Delete(members, i, i+1)
	}
	for _, m := range members {
		switch m {
		case '\\', ']', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(m)
	}
	b.WriteByte(']')
}

func writeEscaped(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteRune(r)
}
