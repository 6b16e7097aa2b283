package strategy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
	"github.com/coregx/textguard/transform"
)

// sentenceDelims is the fixed delimiter set sentences are split on: it is
// a deliberately small, pre-compiled set rather than full Unicode
// sentence-break rules, per §4.3.3.
var sentenceDelims = map[rune]bool{
	',': true, '.': true, '!': true, '?': true, ';': true,
	'。': true, '，': true, '！': true, '？': true, '；': true,
	'\n': true, '\r': true,
}

// splitSentences splits text on sentenceDelims, dropping empty segments
// (e.g. a trailing delimiter produces no trailing empty sentence).
func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder
	for _, r := range text {
		if sentenceDelims[r] {
			if cur.Len() > 0 {
				sentences = append(sentences, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		sentences = append(sentences, cur.String())
	}
	return sentences
}

// Acrostic is the §4.3.3 Acrostic strategy: each word_list entry is a
// comma-separated sequence "c1,c2,...,ck" that matches iff the input
// splits into at least k sentences whose first non-whitespace character
// equals c1,c2,...,ck respectively, in order. The comparison is
// case-insensitive (both sides are lowered with unicode.ToLower).
type Acrostic struct {
	processType process.Type
	rows        [][]rune
	original    []string
}

// NewAcrostic parses every row's comma-separated sequence, taking the
// first rune of each comma-separated element as that slot's target
// character. A row with no elements fails construction.
func NewAcrostic(pt process.Type, rows []string) (*Acrostic, error) {
	a := &Acrostic{processType: pt}
	for _, row := range rows {
		parts := strings.Split(row, ",")
		seq := make([]rune, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, &textguarderr.ConfigError{Field: "word_list:" + row, Err: textguarderr.ErrInvalidConfig}
			}
			r, _ := utf8.DecodeRuneInString(p)
			seq = append(seq, unicode.ToLower(r))
		}
		if len(seq) == 0 {
			return nil, &textguarderr.ConfigError{Field: "word_list:" + row, Err: textguarderr.ErrInvalidConfig}
		}
		a.rows = append(a.rows, seq)
		a.original = append(a.original, row)
	}
	return a, nil
}

// Match reports one Hit per row whose full acrostic sequence is satisfied
// by text's sentences, with Word set to the row's original
// comma-joined pattern string.
func (a *Acrostic) Match(text string) ([]Hit, error) {
	v, err := transform.First(a.processType, text)
	if err != nil {
		return nil, err
	}
	sentences := splitSentences(v.Text)

	var hits []Hit
	for i, seq := range a.rows {
		if len(sentences) < len(seq) {
			continue
		}
		matched := true
		for k, want := range seq {
			s := strings.TrimSpace(sentences[k])
			if s == "" {
				matched = false
				break
			}
			first, _ := utf8.DecodeRuneInString(s)
			if unicode.ToLower(first) != want {
				matched = false
				break
			}
		}
		if matched {
			hits = append(hits, Hit{Word: a.original[i]})
		}
	}
	return hits, nil
}
