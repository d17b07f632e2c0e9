package recognizer

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// rawMatch is a single hit from one of the three compiled patterns, still
// holding its raw captured fragments.
type rawMatch struct {
	start, end int
	lawID      int
	articleRaw string
	pointRaw   string
	subpRaw    string
}

// scan runs re over text and returns every non-overlapping match it finds,
// resolving each match's law_id from whichever LID_ group participated.
func scan(re *regexp2.Regexp, text string, groupToLawID map[string]int) []rawMatch {
	var out []rawMatch

	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		if rm, ok := toRawMatch(m, groupToLawID); ok {
			out = append(out, rm)
		}
		m, err = re.FindNextMatch(m)
	}

	return out
}

func toRawMatch(m *regexp2.Match, groupToLawID map[string]int) (rawMatch, bool) {
	lawID, ok := resolveLawID(m, groupToLawID)
	if !ok {
		return rawMatch{}, false
	}

	return rawMatch{
		start:      m.Index,
		end:        m.Index + m.Length,
		lawID:      lawID,
		articleRaw: groupText(m, "article_vals"),
		pointRaw:   groupText(m, "point_vals"),
		subpRaw:    groupText(m, "subp_vals"),
	}, true
}

// resolveLawID scans the capture dictionary for the first non-empty group
// whose name begins with LID_.
func resolveLawID(m *regexp2.Match, groupToLawID map[string]int) (int, bool) {
	for name, id := range groupToLawID {
		if !strings.HasPrefix(name, "LID_") {
			continue
		}
		g := m.GroupByName(name)
		if g != nil && g.Length > 0 {
			return id, true
		}
	}
	return 0, false
}

func groupText(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || g.Length == 0 {
		return ""
	}
	return g.String()
}

// matchAll runs all three top-level patterns over text and returns every
// match sorted by (start, end), the order the matcher promises downstream.
func matchAll(cr *CompiledRecognizer, text string) []rawMatch {
	var all []rawMatch
	all = append(all, scan(cr.after, text, cr.groupToLawID)...)
	all = append(all, scan(cr.before, text, cr.groupToLawID)...)
	all = append(all, scan(cr.mid, text, cr.groupToLawID)...)

	sortMatches(all)
	return all
}

func sortMatches(matches []rawMatch) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0; j-- {
			a, b := matches[j-1], matches[j]
			if a.start < b.start || (a.start == b.start && a.end <= b.end) {
				break
			}
			matches[j-1], matches[j] = matches[j], matches[j-1]
		}
	}
}

// crossProduct expands one rawMatch's value fragments into the Cartesian
// product of article x point x subpoint, substituting a nil pointer for an
// absent axis.
func crossProduct(rm rawMatch) []rawItem {
	articles := expandValues(rm.articleRaw, false)
	points := expandValues(rm.pointRaw, true)
	subpoints := expandValues(rm.subpRaw, true)

	var items []rawItem
	for _, a := range articles {
		for _, p := range points {
			for _, s := range subpoints {
				items = append(items, rawItem{
					lawID:    rm.lawID,
					article:  a,
					point:    p,
					subpoint: s,
					start:    rm.start,
					end:      rm.end,
				})
			}
		}
	}
	return items
}
