package recognizer

// pruneSpecificity groups items by (law_id, article, point) and drops a
// null-subpoint item whenever a non-null-subpoint item in the same group
// overlaps its span: the coarser record is a redundant abstraction once a
// more specific one covers the same text.
func pruneSpecificity(items []rawItem) []rawItem {
	type key struct {
		lawID   int
		article string
		point   string
	}
	groupKey := func(it rawItem) key {
		return key{lawID: it.lawID, article: derefOr(it.article), point: derefOr(it.point)}
	}

	groups := make(map[key][]rawItem, len(items))
	for _, it := range items {
		k := groupKey(it)
		groups[k] = append(groups[k], it)
	}

	out := make([]rawItem, 0, len(items))
	for _, it := range items {
		if it.subpoint != nil {
			out = append(out, it)
			continue
		}

		overlapsSpecific := false
		for _, other := range groups[groupKey(it)] {
			if other.subpoint != nil && it.overlaps(other) {
				overlapsSpecific = true
				break
			}
		}
		if !overlapsSpecific {
			out = append(out, it)
		}
	}

	return out
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
