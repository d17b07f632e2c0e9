package recognizer

import (
	"github.com/MuratKramin/nlp-hw1/internal/citenorm"
)

// Recognize extracts structured legal citations from text. It never returns
// an error: an empty or unrecognizable input yields an empty slice.
func Recognize(text string, cr *CompiledRecognizer) []ParsedRef {
	if text == "" || cr == nil {
		return nil
	}

	normalized := citenorm.Normalize(text)

	matches := matchAll(cr, normalized)

	var items []rawItem
	for _, m := range matches {
		items = append(items, crossProduct(m)...)
	}

	items = pruneSpecificity(items)
	return dedup(items)
}
