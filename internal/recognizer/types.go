// Package recognizer compiles the composite citation grammar against an
// alias-derived law-name pattern and extracts structured legal citations
// from free-form Russian text.
package recognizer

// ParsedRef is a final, deduplicated citation.
type ParsedRef struct {
	LawID    int
	Article  *string
	Point    *string
	Subpoint *string
}

// rawItem is one Cartesian expansion of a rawMatch, still carrying the span
// it was produced from so the pruner can test overlap.
type rawItem struct {
	lawID    int
	article  *string
	point    *string
	subpoint *string
	start    int
	end      int
}

func (r rawItem) overlaps(o rawItem) bool {
	return r.start < o.end && o.start < r.end
}

func strPtr(s string) *string { return &s }

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
