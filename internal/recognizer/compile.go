package recognizer

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/MuratKramin/nlp-hw1/internal/alias"
)

// CompiledRecognizer is built once from an AliasDict and shared read-only by
// every recognition call.
type CompiledRecognizer struct {
	after        *regexp2.Regexp
	before       *regexp2.Regexp
	mid          *regexp2.Regexp
	groupToLawID map[string]int
}

// BuildFailureError wraps a malformed alias that produced an invalid
// compiled pattern. Fatal at startup.
type BuildFailureError struct {
	Err error
}

func (e *BuildFailureError) Error() string { return fmt.Sprintf("recognizer build failed: %v", e.Err) }
func (e *BuildFailureError) Unwrap() error { return e.Err }

// Compile builds the three top-level citation patterns from dict.
func Compile(dict alias.Dict) (*CompiledRecognizer, error) {
	compiledAlias, err := alias.Compile(dict)
	if err != nil {
		return nil, &BuildFailureError{Err: err}
	}

	src := patternSource{lawNamed: compiledAlias.LawNamed}

	after, err := regexp2.Compile(src.afterPattern(), regexp2.IgnoreCase)
	if err != nil {
		return nil, &BuildFailureError{Err: fmt.Errorf("P_AFTER: %w", err)}
	}
	before, err := regexp2.Compile(src.beforePattern(), regexp2.IgnoreCase)
	if err != nil {
		return nil, &BuildFailureError{Err: fmt.Errorf("P_BEFORE: %w", err)}
	}
	mid, err := regexp2.Compile(src.midPattern(), regexp2.IgnoreCase)
	if err != nil {
		return nil, &BuildFailureError{Err: fmt.Errorf("P_MID: %w", err)}
	}

	return &CompiledRecognizer{
		after:        after,
		before:       before,
		mid:          mid,
		groupToLawID: compiledAlias.GroupToLawID,
	}, nil
}
