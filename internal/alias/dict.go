// Package alias loads the codex alias dictionary that maps a law_id to its
// human-readable display names.
package alias

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Dict maps a law_id to its known display aliases, e.g. 15 -> ["Налоговый
// кодекс РФ", "НК РФ", "НК"]. It is loaded once at startup and treated as
// immutable afterwards.
type Dict map[int][]string

// LoadFailureError signals that the alias dictionary is missing, unreadable,
// or not a well-formed id->alias mapping. It is fatal at startup.
type LoadFailureError struct {
	Path string
	Err  error
}

func (e *LoadFailureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("alias dictionary load failed (%s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("alias dictionary load failed: %v", e.Err)
}

func (e *LoadFailureError) Unwrap() error { return e.Err }

// Load reads the alias dictionary from r. The wire format is a JSON object
// whose keys are decimal-string law_ids and whose values are arrays of
// display aliases, e.g. {"15": ["Налоговый кодекс РФ", "НК РФ", "НК"]}.
func Load(r io.Reader) (Dict, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadFailureError{Err: err}
	}

	var wire map[string][]string
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &LoadFailureError{Err: fmt.Errorf("not a well-formed id->alias mapping: %w", err)}
	}

	dict := make(Dict, len(wire))
	for key, aliases := range wire {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, &LoadFailureError{Err: fmt.Errorf("law_id key %q is not an integer: %w", key, err)}
		}
		if len(aliases) == 0 {
			return nil, &LoadFailureError{Err: fmt.Errorf("law_id %d has no aliases", id)}
		}
		dict[id] = aliases
	}

	if len(dict) == 0 {
		return nil, &LoadFailureError{Err: fmt.Errorf("alias dictionary is empty")}
	}

	return dict, nil
}

// LoadFile opens path and loads the alias dictionary from it.
func LoadFile(path string) (Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadFailureError{Path: path, Err: err}
	}
	defer f.Close()

	dict, err := Load(f)
	if err != nil {
		if lf, ok := err.(*LoadFailureError); ok {
			lf.Path = path
			return nil, lf
		}
		return nil, &LoadFailureError{Path: path, Err: err}
	}
	return dict, nil
}

// LawIDs returns the dictionary's law_ids in ascending order. Useful for
// deterministic iteration in tests and logging.
func (d Dict) LawIDs() []int {
	ids := make([]int, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
