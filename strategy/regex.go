// Package strategy implements the strategy-specific matchers layered on
// top of SimpleMatcher: regex, similar-char, acrostic and Levenshtein
// similarity. Every regex-shaped strategy compiles against
// github.com/coregx/coregex instead of the standard library's regexp
// package.
package strategy

import (
	"github.com/coregx/coregex"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
	"github.com/coregx/textguard/transform"
)

// Hit is one strategy-level match, ready to become a table's
// MatchResult.Word: the original pattern text that matched, except for
// SimilarChar, which reports the matched substring of the input.
type Hit struct {
	Word string
}

// Regex is the §4.3.1 Regex strategy: each word_list entry is compiled
// directly as a regular expression and matched against the process_type
// transform of the input.
type Regex struct {
	processType process.Type
	compiled    []*coregex.Regex
	words       []string
}

// NewRegex compiles every pattern in words under coregex's Perl-compatible
// syntax. A compile failure for any entry fails construction with
// ErrInvalidConfig, naming the offending pattern.
func NewRegex(pt process.Type, words []string) (*Regex, error) {
	r := &Regex{processType: pt}
	for _, w := range words {
		if w == "" {
			continue
		}
		re, err := coregex.Compile(w)
		if err != nil {
			return nil, &textguarderr.ConfigError{Field: "word_list:" + w, Err: err}
		}
		r.compiled = append(r.compiled, re)
		r.words = append(r.words, w)
	}
	return r, nil
}

// Match transforms text under the strategy's process_type and reports
// every word_list entry whose compiled regex matches, deduplicated (at
// most one Hit per entry, per the MatchTable invariant).
func (r *Regex) Match(text string) ([]Hit, error) {
	v, err := transform.First(r.processType, text)
	if err != nil {
		return nil, err
	}
	var hits []Hit
	for i, re := range r.compiled {
		if re.MatchString(v.Text) {
			hits = append(hits, Hit{Word: r.words[i]})
		}
	}
	return hits, nil
}
