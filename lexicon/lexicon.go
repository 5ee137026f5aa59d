// Package lexicon is the word dictionary collaborator. The engine only
// queries it; loading and populating the word list happens outside the
// turn controller.
package lexicon

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon answers word validity queries, case-insensitively. Ready
// reports whether the word list has been populated; querying an unready
// lexicon must be treated as "not ready" by the caller, never as a
// silently failed word.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
	Ready() bool
}

var upper = cases.Upper(language.Und)

// Set is a Lexicon backed by a pre-loaded set of valid words.
type Set struct {
	name  string
	words map[string]struct{}
}

// NewSet creates an empty, unready Set.
func NewSet(name string) *Set {
	return &Set{name: name}
}

// NewSetFromWords creates a populated Set.
func NewSetFromWords(name string, words []string) *Set {
	s := NewSet(name)
	s.Populate(words)
	return s
}

// ScanSet reads one word per line from r and returns a populated Set.
func ScanSet(name string, r io.Reader) (*Set, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	s := NewSet(name)
	s.Populate(words)
	return s, nil
}

// Populate loads the word list. It may be called once, after which the
// Set is ready.
func (s *Set) Populate(words []string) {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[upper.String(w)] = struct{}{}
	}
	s.words = m
	log.Debug().Str("lexicon", s.name).Int("words", len(m)).Msg("lexicon-populated")
}

func (s *Set) Name() string {
	return s.name
}

func (s *Set) Ready() bool {
	return s.words != nil
}

func (s *Set) HasWord(word string) bool {
	_, ok := s.words[upper.String(word)]
	return ok
}

// AcceptAll considers every word valid. Free-play internals and tests use
// it where no dictionary applies.
type AcceptAll struct{}

func (AcceptAll) Name() string          { return "AcceptAll" }
func (AcceptAll) Ready() bool           { return true }
func (AcceptAll) HasWord(_ string) bool { return true }
