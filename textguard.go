// Package textguard provides a high-throughput, multi-strategy text
// matching engine: SimpleMatcher's single shared Aho-Corasick automaton,
// layered under regex, similar-char, acrostic and Levenshtein strategies,
// orchestrated by a table-aware Matcher with per-table exemptions.
//
// Basic usage:
//
//	cfg, err := config.Decode(configBytes, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := textguard.NewMatcher(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok, _ := m.IsMatch("some input text"); ok {
//	    fmt.Println("blocked")
//	}
package textguard

import (
	"encoding/json"

	"github.com/coregx/textguard/matcher"
	"github.com/coregx/textguard/simple"
	"github.com/coregx/textguard/table"
	"github.com/coregx/textguard/textguarderr"
)

// Matcher is the orchestrator described in §4.4: it owns every configured
// MatchTable and answers is_match/word_match/batch_word_match queries.
type Matcher struct {
	inner *matcher.Matcher
}

// NewMatcher compiles cfg into a ready-to-query Matcher. Construction is
// all-or-nothing: a bad table anywhere in cfg fails the whole build with
// ErrInvalidConfig, naming every offending table_id.
func NewMatcher(cfg table.MatchTableMap) (*Matcher, error) {
	inner, err := matcher.Build(cfg)
	if err != nil {
		return nil, err
	}
	return &Matcher{inner: inner}, nil
}

// IsMatch reports whether text matches any table, short-circuiting on the
// first non-exempted hit.
func (m *Matcher) IsMatch(text string) (bool, error) {
	return m.inner.IsMatch(text)
}

// WordMatch returns every non-exempted MatchResult, grouped by table_id.
func (m *Matcher) WordMatch(text string) (map[uint32][]table.MatchResult, error) {
	return m.inner.WordMatch(text)
}

// BatchWordMatch applies WordMatch to every text in texts, independently
// and in parallel.
func (m *Matcher) BatchWordMatch(texts []string) ([]map[uint32][]table.MatchResult, error) {
	return m.inner.BatchWordMatch(texts)
}

// WordMatchAsJSON renders WordMatch's result as JSON, for hosts without a
// native decoder for this process's in-memory representation.
func (m *Matcher) WordMatchAsJSON(text string) (string, error) {
	results, err := m.WordMatch(text)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(results)
	if err != nil {
		return "", &textguarderr.InternalError{Op: "WordMatchAsJSON", Err: err}
	}
	return string(out), nil
}

// NewSimpleMatcher compiles cfg into a standalone SimpleMatcher, for
// callers who only need literal/homophone matching without the table
// orchestration layer.
func NewSimpleMatcher(cfg simple.Config) (*simple.Matcher, error) {
	return simple.Build(cfg)
}
