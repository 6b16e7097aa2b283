package strategy

import (
	"regexp"
	"strings"

	"github.com/coregx/coregex"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
	"github.com/coregx/textguard/transform"
)

// SimilarChar is the §4.3.2 SimilarChar strategy. Each word_list entry is
// one "slot": a comma-separated list of interchangeable alternatives
// (e.g. "hello,hi,H,你好"). The table's whole word_list, not each entry
// in isolation, concatenates its slots in order into a single composite
// pattern "(slot1)(slot2)...", so "hello,hi,H,你好" followed by
// "world,word,🌍,世界" requires one alternative from the first slot
// immediately followed by one alternative from the second, equivalent to
// the regex (hello|hi|H|你好)(world|word|🌍|世界).
type SimilarChar struct {
	processType process.Type
	compiled    *coregex.Regex
}

// NewSimilarChar builds the composite pattern from every row in rows, in
// order. An empty rows list or a row with no comma-separated alternatives
// fails construction with ErrInvalidConfig.
func NewSimilarChar(pt process.Type, rows []string) (*SimilarChar, error) {
	if len(rows) == 0 {
		return nil, &textguarderr.ConfigError{Field: "word_list", Err: textguarderr.ErrInvalidConfig}
	}
	var b strings.Builder
	for _, row := range rows {
		alts := strings.Split(row, ",")
		if row == "" {
			return nil, &textguarderr.ConfigError{Field: "word_list:" + row, Err: textguarderr.ErrInvalidConfig}
		}
		b.WriteByte('(')
		for i, alt := range alts {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(regexp.QuoteMeta(alt))
		}
		b.WriteByte(')')
	}
	re, err := coregex.Compile(b.String())
	if err != nil {
		return nil, &textguarderr.ConfigError{Field: "word_list", Err: err}
	}
	return &SimilarChar{processType: pt, compiled: re}, nil
}

// Match reports at most one Hit: the composite pattern's leftmost match
// against the process_type transform of text, with Word set to the
// matched substring (the concrete instantiation of the slot sequence)
// rather than the source pattern text.
func (s *SimilarChar) Match(text string) ([]Hit, error) {
	v, err := transform.First(s.processType, text)
	if err != nil {
		return nil, err
	}
	if m := s.compiled.FindString(v.Text); m != "" {
		return []Hit{{Word: m}}, nil
	}
	return nil, nil
}
