package recognizer

// dedup removes exact duplicate (law_id, article, point, subpoint) tuples
// while preserving first-seen order.
func dedup(items []rawItem) []ParsedRef {
	type key struct {
		lawID   int
		article string
		point   string
		subp    string
	}

	seen := make(map[key]bool, len(items))
	out := make([]ParsedRef, 0, len(items))

	for _, it := range items {
		k := key{
			lawID:   it.lawID,
			article: derefOr(it.article),
			point:   derefOr(it.point),
			subp:    derefOr(it.subpoint),
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, ParsedRef{
			LawID:    it.lawID,
			Article:  it.article,
			Point:    it.point,
			Subpoint: it.subpoint,
		})
	}

	return out
}
