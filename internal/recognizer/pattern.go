package recognizer

import "fmt"

func valueGroup(name string) string {
	return fmt.Sprintf(`(?<%s>%s)`, name, valueList)
}

// sep joins two grammar components: prose commonly strings citation
// components together with a comma ("ст. 145, п. 2, подп. б"), so the
// boundary between one component and the next tolerates an optional comma
// in addition to whitespace.
const sep = `\s*,?\s*`

// patternSource builds the three top-level citation patterns against a
// compiled law-name fragment. Only the named form is needed: none of the
// three patterns embeds the law reference inside a look-ahead, so the
// non-capturing twin alias.Compiled produces has no consumer here.
type patternSource struct {
	lawNamed string
}

// afterPattern is P_AFTER (law at end): optional subpoint, optional
// point/part, required article, required law.
func (p patternSource) afterPattern() string {
	return fmt.Sprintf(
		`(?:%s%s\s*%s%s)?(?:%s%s\s*%s%s)?%s%s\s*%s%s%s`,
		prep, kwSubp, valueGroup("subp_vals"), sep,
		prep, kwPntOrPart, valueGroup("point_vals"), sep,
		prep, kwArt, valueGroup("article_vals"), sep,
		p.lawNamed,
	)
}

// beforePattern is P_BEFORE (law at start): law, required article, then
// optional point/part, then optional subpoint.
func (p patternSource) beforePattern() string {
	return fmt.Sprintf(
		`%s%s%s%s\s*%s(?:%s%s%s\s*%s)?(?:%s%s%s\s*%s)?`,
		p.lawNamed, sep,
		prep, kwArt, valueGroup("article_vals"),
		sep, prep, kwPntOrPart, valueGroup("point_vals"),
		sep, prep, kwSubp, valueGroup("subp_vals"),
	)
}

// midPattern is P_MID: required point/part, then article, then law (used
// when a subpoint is absent).
func (p patternSource) midPattern() string {
	return fmt.Sprintf(
		`%s%s\s*%s%s%s%s\s*%s%s%s`,
		prep, kwPntOrPart, valueGroup("point_vals"), sep,
		prep, kwArt, valueGroup("article_vals"), sep,
		p.lawNamed,
	)
}
