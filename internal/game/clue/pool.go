package clue

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// Pool is the fixed list of candidate clues a library can reveal.
type Pool struct {
	clues []string
}

// NewPool builds a Pool from clues.
//
// Precondition: clues must be non-empty, contain no empty strings and no duplicates.
// Postcondition: Returns a Pool or a non-nil error.
func NewPool(clues []string) (*Pool, error) {
	if len(clues) == 0 {
		return nil, errors.New("clue: pool must not be empty")
	}
	seen := make(map[string]bool, len(clues))
	for i, c := range clues {
		if c == "" {
			return nil, fmt.Errorf("clue: entry %d is empty", i)
		}
		if seen[c] {
			return nil, fmt.Errorf("clue: duplicate clue %q", c)
		}
		seen[c] = true
	}
	out := make([]string, len(clues))
	copy(out, clues)
	return &Pool{clues: out}, nil
}

// Len returns the number of candidate clues.
func (p *Pool) Len() int {
	return len(p.clues)
}

// Clues returns a copy of the candidate clues.
func (p *Pool) Clues() []string {
	out := make([]string, len(p.clues))
	copy(out, p.clues)
	return out
}

// Sample draws k distinct clues without replacement.
//
// Precondition: 0 <= k <= Len().
// Postcondition: len(result) == k and no clue repeats.
func (p *Pool) Sample(r *dice.Roller, k int) ([]string, error) {
	idx, err := r.Sample(len(p.clues), k)
	if err != nil {
		return nil, fmt.Errorf("clue: sampling pool: %w", err)
	}
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = p.clues[j]
	}
	return out, nil
}

// yamlClueFile is the top-level YAML structure for clue files.
type yamlClueFile struct {
	Clues []string `yaml:"clues"`
}

// LoadPoolFromFile reads a clue YAML file and builds a Pool.
//
// Postcondition: Returns a Pool or a non-nil error.
func LoadPoolFromFile(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading clue file %s: %w", path, err)
	}
	return LoadPoolFromBytes(data)
}

// LoadPoolFromBytes parses clue YAML and builds a Pool.
//
// Postcondition: Returns a Pool or a non-nil error.
func LoadPoolFromBytes(data []byte) (*Pool, error) {
	var file yamlClueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing clue YAML: %w", err)
	}
	return NewPool(file.Clues)
}
