// Package citenorm folds typographic variants of quotes, dashes and
// whitespace runs to a canonical form ahead of citation recognition.
package citenorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var quoteReplacer = strings.NewReplacer(
	"«", `"`, // «
	"»", `"`, // »
	"“", `"`, // "
	"”", `"`, // "
	"„", `"`, // „
	"‟", `"`, // ‟
	"‚", `"`, // ‚
	"′", "'", // ′
)

var dashReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
)

// whitespace to squeeze: ASCII space and tab only. Newlines are left alone.
const squeezable = " \t"

// Normalize folds quotes and dashes to their ASCII/canonical form and
// squeezes runs of two-or-more spaces/tabs into a single space. Folding and
// squeezing never lengthen the text; the NFC pass that runs first does
// lengthen the few characters that NFC decomposes (composition exclusions
// such as U+0958), so for such input the result can be longer.
//
// Normalization is purely typographic: it does not map Latin look-alikes to
// Cyrillic (that happens only inside alias-key comparison and the compiled
// recognizer) and it does not lowercase, strip diacritics, or touch
// newlines.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	text = norm.NFC.String(text)
	text = quoteReplacer.Replace(text)
	text = dashReplacer.Replace(text)
	return squeezeWhitespace(text)
}

func squeezeWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		if !strings.ContainsRune(squeezable, r) {
			b.WriteRune(r)
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && strings.ContainsRune(squeezable, runes[j]) {
			j++
		}
		if j-i >= 2 {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
		i = j
	}
	return b.String()
}
