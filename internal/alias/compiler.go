package alias

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// adjectival suffixes that admit an unbounded declension tail once stripped.
var adjectivalSuffixes = []string{"ый", "ий", "ой"}

// Compiled holds the regex fragments produced from an AliasDict: LawNamed
// tags each law's alternatives with a named group LID_<id>, LawNonCap is
// its non-capturing twin for use inside look-ahead contexts, and GroupToLawID
// maps each LID_<id> group name back to the integer law_id.
type Compiled struct {
	LawNamed     string
	LawNonCap    string
	GroupToLawID map[string]int
}

// BuildFailureError signals that an alias produced an invalid pattern
// fragment. Fatal at startup, alongside LoadFailureError.
type BuildFailureError struct {
	LawID int
	Alias string
	Err   error
}

func (e *BuildFailureError) Error() string {
	return fmt.Sprintf("alias pattern build failed for law_id %d, alias %q: %v", e.LawID, e.Alias, e.Err)
}

func (e *BuildFailureError) Unwrap() error { return e.Err }

// Compile turns an AliasDict into the LAW_NAMED/LAW_NONCAP fragments and the
// group->law_id resolution table.
func Compile(dict Dict) (*Compiled, error) {
	ids := dict.LawIDs()

	namedAlts := make([]string, 0, len(ids))
	nonCapAlts := make([]string, 0, len(ids))
	groupToLawID := make(map[string]int, len(ids))

	for _, id := range ids {
		aliases := append([]string(nil), dict[id]...)
		sort.Slice(aliases, func(i, j int) bool { return len(aliases[i]) > len(aliases[j]) })

		bodies := make([]string, 0, len(aliases))
		for _, a := range aliases {
			body, err := buildAliasBody(a)
			if err != nil {
				return nil, &BuildFailureError{LawID: id, Alias: a, Err: err}
			}
			bodies = append(bodies, body)
		}

		group := fmt.Sprintf("LID_%d", id)
		groupToLawID[group] = id

		joined := strings.Join(bodies, "|")
		namedAlts = append(namedAlts, fmt.Sprintf("(?<%s>%s)", group, joined))
		nonCapAlts = append(nonCapAlts, fmt.Sprintf("(?:%s)", joined))
	}

	return &Compiled{
		LawNamed:     strings.Join(namedAlts, "|"),
		LawNonCap:    strings.Join(nonCapAlts, "|"),
		GroupToLawID: groupToLawID,
	}, nil
}

// buildAliasBody compiles one alias string into a regex fragment, bounded
// by negative look-behind/look-ahead word guards.
func buildAliasBody(alias string) (string, error) {
	if strings.TrimSpace(alias) == "" {
		return "", fmt.Errorf("empty alias")
	}

	var b strings.Builder
	for _, tok := range tokenize(alias) {
		b.WriteString(tok.pattern())
	}

	return fmt.Sprintf("(?<!%s)%s(?!%s)", wordCharClass, b.String(), wordCharClass), nil
}

type tokenKind int

const (
	tokenWhitespace tokenKind = iota
	tokenWord
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits an alias into whitespace runs and non-whitespace runs,
// preserving order so whitespace between words becomes \s+ in the pattern.
func tokenize(alias string) []token {
	var tokens []token
	runes := []rune(alias)
	i := 0
	for i < len(runes) {
		start := i
		isSpace := unicode.IsSpace(runes[i])
		for i < len(runes) && unicode.IsSpace(runes[i]) == isSpace {
			i++
		}
		kind := tokenWord
		if isSpace {
			kind = tokenWhitespace
		}
		tokens = append(tokens, token{kind: kind, text: string(runes[start:i])})
	}
	return tokens
}

func (t token) pattern() string {
	if t.kind == tokenWhitespace {
		return `\s+`
	}
	return wordPattern(t.text)
}

// wordPattern implements the AliasCompiler per-token classification: РФ and
// short uppercase abbreviations get look-alike classes with no tail,
// adjectival stems get a mandatory declension tail, everything else gets an
// optional one, and anything not all-Cyrillic is escaped literally.
func wordPattern(word string) string {
	runes := []rune(word)

	if len(runes) >= 2 && isAllCyrillic(runes) {
		switch {
		case word == "РФ":
			return lookalikeClasses(runes)
		case isShortUppercaseAbbrev(runes):
			return lookalikeClasses(runes)
		default:
			if stem, ok := stripAdjectivalSuffix(word); ok {
				return lookalikeClasses([]rune(stem)) + `[а-яё]+`
			}
			return lookalikeClasses(runes) + `[а-яё]*`
		}
	}

	return escapeLiteral(word)
}

func isAllCyrillic(runes []rune) bool {
	for _, r := range runes {
		if !unicode.Is(unicode.Cyrillic, r) || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isShortUppercaseAbbrev(runes []rune) bool {
	if len(runes) < 2 || len(runes) > 5 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func stripAdjectivalSuffix(word string) (string, bool) {
	lower := strings.ToLower(word)
	runes := []rune(lower)
	if len(runes) < 3 {
		return "", false
	}
	tail := string(runes[len(runes)-2:])
	for _, suf := range adjectivalSuffixes {
		if tail == suf {
			orig := []rune(word)
			return string(orig[:len(orig)-2]), true
		}
	}
	return "", false
}

// lookalikeClasses renders each rune as a [original,latin] character class
// where a look-alike exists, or the escaped rune itself otherwise.
func lookalikeClasses(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if latin, ok := lookalike[r]; ok {
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteRune(latin)
			b.WriteByte(']')
			continue
		}
		b.WriteString(escapeRune(r))
	}
	return b.String()
}

const regexMeta = `.^$*+?()[]{}|\`

func escapeRune(r rune) string {
	if strings.ContainsRune(regexMeta, r) {
		return `\` + string(r)
	}
	return string(r)
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(escapeRune(r))
	}
	return b.String()
}
