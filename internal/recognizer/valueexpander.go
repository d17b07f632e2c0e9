package recognizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// connectorSplit matches the separators between list items: commas,
// semicolons, or one of the connector words и/или/либо as whole words.
var connectorSplit = regexp2.MustCompile(`\s*,\s*|\s*;\s*|\s+(?:и|или|либо)\s+`, regexp2.IgnoreCase)

// cyrillicRangeAlphabet is а...я with ё inserted immediately after е; the
// Unicode block а...я does not contain ё, so range expansion must not rely
// on code-point contiguity across it.
var cyrillicRangeAlphabet = buildCyrillicAlphabet()

func buildCyrillicAlphabet() []rune {
	var out []rune
	for r := 'а'; r <= 'я'; r++ {
		out = append(out, r)
		if r == 'е' {
			out = append(out, 'ё')
		}
	}
	return out
}

// expandValues parses a captured value-list fragment into the pointer list
// crossProduct iterates: a blank fragment yields a single nil (the axis is
// absent), otherwise each produced value is a non-nil pointer.
func expandValues(raw string, expandHyphens bool) []*string {
	values := ExpandValue(raw, expandHyphens)
	if len(values) == 0 {
		return []*string{nil}
	}
	out := make([]*string, len(values))
	for i, v := range values {
		out[i] = strPtr(v)
	}
	return out
}

// ExpandValue splits a captured fragment by its connectors, expands
// hyphenated ranges when expandHyphens is set, and deduplicates the result
// while preserving first-seen order.
func ExpandValue(fragment string, expandHyphens bool) []string {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return nil
	}

	if isSingleLetter(trimmed) {
		return []string{trimmed}
	}

	pieces := splitConnectors(trimmed)

	var out []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if expandHyphens && strings.Contains(piece, "-") {
			for _, v := range expandHyphenRange(piece) {
				add(v)
			}
			continue
		}
		add(piece)
	}

	return out
}

func isSingleLetter(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}

func splitConnectors(s string) []string {
	var pieces []string
	last := 0

	m, err := connectorSplit.FindStringMatch(s)
	for err == nil && m != nil {
		start := m.Index
		end := m.Index + m.Length
		pieces = append(pieces, s[last:start])
		last = end
		m, err = connectorSplit.FindNextMatch(m)
	}
	pieces = append(pieces, s[last:])

	return pieces
}

// expandHyphenRange expands a single "a-b" piece per the letter/numeric
// range rules; unrecognized shapes degrade to the two endpoints verbatim.
func expandHyphenRange(piece string) []string {
	idx := strings.Index(piece, "-")
	if idx < 0 {
		return []string{piece}
	}
	a := strings.TrimSpace(piece[:idx])
	b := strings.TrimSpace(piece[idx+1:])
	if a == "" || b == "" {
		return []string{piece}
	}

	if letters, ok := expandLetterRange(a, b); ok {
		return letters
	}
	if nums, ok := expandNumericRange(a, b); ok {
		return nums
	}
	return []string{a, b}
}

func expandLetterRange(a, b string) ([]string, bool) {
	ra, ok1 := singleRune(a)
	rb, ok2 := singleRune(b)
	if !ok1 || !ok2 {
		return nil, false
	}

	if isLatinLetter(ra) && isLatinLetter(rb) {
		return expandLatinRange(ra, rb), true
	}
	if isCyrillicLetter(ra) && isCyrillicLetter(rb) {
		return expandCyrillicRange(ra, rb)
	}
	return nil, false
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return 0, false
	}
	return runes[0], true
}

func isLatinLetter(r rune) bool {
	return unicode.Is(unicode.Latin, r) && unicode.IsLetter(r)
}

func isCyrillicLetter(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r)
}

func expandLatinRange(a, b rune) []string {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var out []string
	for r := lo; r <= hi; r++ {
		out = append(out, string(r))
	}
	return out
}

func expandCyrillicRange(a, b rune) ([]string, bool) {
	ai := indexInAlphabet(unicode.ToLower(a))
	bi := indexInAlphabet(unicode.ToLower(b))
	if ai < 0 || bi < 0 {
		return nil, false
	}
	if ai > bi {
		ai, bi = bi, ai
	}

	upper := unicode.IsUpper(a)
	var out []string
	for i := ai; i <= bi; i++ {
		r := cyrillicRangeAlphabet[i]
		if upper {
			r = unicode.ToUpper(r)
		}
		out = append(out, string(r))
	}
	return out, true
}

func indexInAlphabet(r rune) int {
	for i, c := range cyrillicRangeAlphabet {
		if c == r {
			return i
		}
	}
	return -1
}

// expandNumericRange covers the three dotted/bare sub-cases from the value
// grammar: "43.2-6" (left dotted, right bare), "1-3" (both bare), and
// "3.4.1-3.4.5" (both dotted, same prefix).
func expandNumericRange(a, b string) ([]string, bool) {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	if len(aParts) == 1 && len(bParts) == 1 {
		lo, ok1 := toInt(aParts[0])
		hi, ok2 := toInt(bParts[0])
		if !ok1 || !ok2 {
			return nil, false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		var out []string
		for n := lo; n <= hi; n++ {
			out = append(out, strconv.Itoa(n))
		}
		return out, true
	}

	if len(aParts) > 1 && len(bParts) == 1 {
		prefix := aParts[:len(aParts)-1]
		lo, ok1 := toInt(aParts[len(aParts)-1])
		hi, ok2 := toInt(bParts[0])
		if !ok1 || !ok2 {
			return nil, false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		var out []string
		for n := lo; n <= hi; n++ {
			out = append(out, strings.Join(append(append([]string{}, prefix...), strconv.Itoa(n)), "."))
		}
		return out, true
	}

	if len(aParts) > 1 && len(aParts) == len(bParts) {
		for i := 0; i < len(aParts)-1; i++ {
			if aParts[i] != bParts[i] {
				return nil, false
			}
		}
		prefix := aParts[:len(aParts)-1]
		lo, ok1 := toInt(aParts[len(aParts)-1])
		hi, ok2 := toInt(bParts[len(bParts)-1])
		if !ok1 || !ok2 {
			return nil, false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		var out []string
		for n := lo; n <= hi; n++ {
			out = append(out, strings.Join(append(append([]string{}, prefix...), strconv.Itoa(n)), "."))
		}
		return out, true
	}

	return nil, false
}

func toInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
