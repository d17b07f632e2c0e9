package recognizer

// Keyword fragments for the composite citation grammar. KW_PART is folded
// into the same capture role as KW_PNT: "часть" and "пункт" address the
// same subdivision level for this recognizer's purposes.
const (
	kwArt  = `(?:ст\.|стать(?:я|и|ей|е|ю)[а-яё]*)`
	kwPnt  = `(?:(?<![а-яёА-ЯЁ])п\.|пункт[а-яё]*)`
	kwPart = `(?:(?<![а-яёА-ЯЁ])ч\.|част[а-яё]*)`
	kwSubp = `(?:подп\.|подпп\.|пп\.|подпункт[а-яё]*)`

	// kwPntOrPart matches either a point or a part keyword; the grammar
	// treats them identically.
	kwPntOrPart = `(?:` + kwPnt + `|` + kwPart + `)`

	// prep is the optional preposition that may precede a structural
	// keyword ("в соответствии со ст. 5 ...").
	prep = `(?:(?:в|во|на|к|ко|по|об|обо|о|от|со|с|для)\s+)?`
)

// numPart is one dot-separated integer component, e.g. "43" or "3.4.1".
const numPart = `[0-9]+(?:\.[0-9]+)*`

// numItem is a numeric identifier optionally extended by a hyphenated
// range: "43", "1-3", "43.2-6", "3.4.1-3.4.5".
const numItem = numPart + `(?:-` + numPart + `)?`

// letterItem is a single letter, optionally extended by a hyphenated
// letter range ("б", "а-в"), guarded so it never swallows the first letter
// of a longer word. The lookahead also forbids a trailing ".", since a
// single Cyrillic letter immediately followed by a period is a structural
// keyword abbreviation ("п.", "ч.") rather than an article/point value.
const letterItem = `[а-яёА-ЯЁA-Za-z](?:-[а-яёА-ЯЁA-Za-z])?(?![а-яёА-ЯЁa-zA-Z.])`

// item is one atomic value-list element: a numeric identifier (with
// optional range) or a single letter (with optional range).
const item = `(?:` + numItem + `|` + letterItem + `)`

// connector joins list items: a comma, a semicolon, or one of и/или/либо
// as a whole word.
const connector = `(?:\s*,\s*|\s*;\s*|\s+(?:и|или|либо)\s+)`

// valueList is the full grammar for a captured value fragment: one item,
// then zero or more (connector, item) pairs.
const valueList = item + `(?:` + connector + item + `)*`
