package strategy

import (
	"math"

	"github.com/antzucaro/matchr"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
	"github.com/coregx/textguard/transform"
)

// Levenshtein is the §4.3.4 Levenshtein strategy: each word_list entry
// matches if some contiguous span of the (process_type-transformed) input,
// windowed to a length close to the pattern's own length, has a similarity
// ratio at or above the table's threshold.
type Levenshtein struct {
	processType process.Type
	patterns    []string
	lens        []int
	threshold   float64
}

// NewLevenshtein builds a Levenshtein matcher. threshold must be in (0, 1];
// an out-of-range threshold fails construction. Empty entries in words are
// skipped, and an empty words list builds a matcher that never hits.
func NewLevenshtein(pt process.Type, words []string, threshold float64) (*Levenshtein, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, &textguarderr.ConfigError{Field: "threshold", Err: textguarderr.ErrInvalidConfig}
	}
	l := &Levenshtein{processType: pt, threshold: threshold}
	for _, w := range words {
		if w == "" {
			continue
		}
		l.patterns = append(l.patterns, w)
		l.lens = append(l.lens, len([]rune(w)))
	}
	return l, nil
}

// ratio converts an edit distance between two strings of the given rune
// lengths into a similarity score in [0, 1].
func ratio(dist, aLen, bLen int) float64 {
	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(maxLen)
}

// Match windows text's runes around each pattern's own length, wide enough
// that a span could still clear the similarity threshold, and reports the
// pattern as a Hit the first time any window meets threshold.
func (l *Levenshtein) Match(text string) ([]Hit, error) {
	v, err := transform.First(l.processType, text)
	if err != nil {
		return nil, err
	}
	runes := []rune(v.Text)

	var hits []Hit
	for i, pat := range l.patterns {
		patLen := l.lens[i]
		slack := int(math.Ceil(float64(patLen) * (1 - l.threshold)))
		if slack < 1 {
			slack = 1
		}
		minLen := patLen - slack
		if minLen < 1 {
			minLen = 1
		}
		maxLen := patLen + slack

		if l.anySpanMeetsThreshold(runes, pat, patLen, minLen, maxLen) {
			hits = append(hits, Hit{Word: pat})
		}
	}
	return hits, nil
}

func (l *Levenshtein) anySpanMeetsThreshold(runes []rune, pat string, patLen, minLen, maxLen int) bool {
	n := len(runes)
	for start := 0; start < n; start++ {
		for spanLen := minLen; spanLen <= maxLen; spanLen++ {
			end := start + spanLen
			if end > n {
				break
			}
			candidate := string(runes[start:end])
			dist := matchr.Levenshtein(candidate, pat)
			if ratio(dist, spanLen, patLen) >= l.threshold {
				return true
			}
		}
	}
	return false
}
