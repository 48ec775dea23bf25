// Package corpus reads line-oriented text resources (name and occupation
// lists) and draws random tokens from them.
//
// A corpus is never cached: every Sample call re-reads its resource.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrResourceNotFound is returned when a corpus resource does not exist.
	ErrResourceNotFound = errors.New("corpus resource not found")

	// ErrNoCandidates is returned when a resource yields no matching tokens.
	ErrNoCandidates = errors.New("corpus has no candidates")
)

// patterns used by the generator
var (
	NamePattern       = regexp.MustCompile(`[a-zA-Z]+`)
	OccupationPattern = regexp.MustCompile(`^[a-zA-Z\s-]+`)
)

// Transform rewrites a matched token before it joins the population.
type Transform func(string) string

// Source is anything a corpus can be read from. zfilesystem file systems
// satisfy it directly; FromFS adapts any fs.FS.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// Rand is the random source used for draws. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Reader extracts tokens from resources in a Source.
type Reader struct {
	src Source
	rng Rand
}

// NewReader creates a reader over src drawing from rng.
func NewReader(src Source, rng Rand) *Reader {
	return &Reader{src: src, rng: rng}
}

// Candidates reads path and returns every transformed match, one per line.
// Duplicates are kept, so repeated lines raise a token's odds.
func (r *Reader) Candidates(path string, pattern *regexp.Regexp, transform Transform) ([]string, error) {
	data, err := r.src.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var tokens []string
	for line := range bytes.Lines(data) {
		m := strings.TrimSpace(pattern.FindString(string(line)))
		if m == "" {
			continue
		}
		if transform != nil {
			m = transform(m)
		}
		tokens = append(tokens, m)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, ErrNoCandidates)
	}
	return tokens, nil
}

// Sample returns one token drawn uniformly from the candidates in path.
func (r *Reader) Sample(path string, pattern *regexp.Regexp, transform Transform) (string, error) {
	tokens, err := r.Candidates(path, pattern, transform)
	if err != nil {
		return "", err
	}
	return tokens[r.rng.IntN(len(tokens))], nil
}

// Capitalize upper-cases the first letter and lower-cases the rest:
// "JAMES" becomes "James".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Title capitalizes every word: "software engineer" becomes "Software Engineer".
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
