// Package simple implements SimpleMatcher: a single combined Aho-Corasick
// automaton keyed across every active ProcessType, with inverse mapping
// from matched substrings back to original (word_id, word) entries, per
// §4.2.
package simple

import (
	"sort"

	"github.com/coregx/textguard/internal/automaton"
	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
	"github.com/coregx/textguard/transform"
)

// Config is the build-time input: process.Type -> {word_id -> word}.
type Config map[process.Type]map[uint32]string

// Result is one de-duplicated hit, emitted at most once per distinct
// word_id no matter how many process types or occurrences matched it.
type Result struct {
	WordID uint32
	Word   string
}

type tag struct {
	pt     process.Type
	wordID uint32
	word   string
}

// Matcher is an immutable, concurrency-safe SimpleMatcher built from a
// Config. The zero value is not usable; construct with Build.
type Matcher struct {
	auto      *automaton.Automaton
	tags      []tag
	activePTs []process.Type
}

// Build compiles cfg into a Matcher. Every word is transformed once (its
// first, and for today's deterministic transforms only, variant) under
// its owning process.Type and fed into one shared automaton tagged with
// (process.Type, word_id, original word). Empty words are ignored
// silently. An invalid ProcessType bit fails the whole build with
// ErrInvalidConfig.
func Build(cfg Config) (*Matcher, error) {
	var patterns []string
	var tags []tag
	ptSeen := make(map[process.Type]bool)

	for pt, words := range cfg {
		if !pt.Valid() {
			return nil, &textguarderr.ConfigError{Field: "process_type", Err: textguarderr.ErrInvalidConfig}
		}
		normalized := pt.Normalized()
		for id, word := range words {
			if word == "" {
				continue
			}
			variant, err := transform.First(pt, word)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, variant.Text)
			tags = append(tags, tag{pt: normalized, wordID: id, word: word})
		}
		ptSeen[normalized] = true
	}

	activePTs := make([]process.Type, 0, len(ptSeen))
	for pt := range ptSeen {
		activePTs = append(activePTs, pt)
	}
	sort.Slice(activePTs, func(i, j int) bool { return activePTs[i] < activePTs[j] })

	return &Matcher{
		auto:      automaton.Build(patterns),
		tags:      tags,
		activePTs: activePTs,
	}, nil
}

type rawHit struct {
	start, end int
	wordID     uint32
	word       string
}

// Process matches text against every active process.Type bucket and
// returns the de-duplicated, leftmost-ordered hits: leftmost occurrence
// first, ties broken by longer match, then by ascending word_id.
func (m *Matcher) Process(text string) ([]Result, error) {
	var raw []rawHit

	for _, pt := range m.activePTs {
		variants, err := transform.Transform(pt, text)
		if err != nil {
			return nil, err
		}
		for _, v := range variants {
			for _, h := range m.auto.FindAll(v.Text) {
				tg := m.tags[h.Pattern]
				if tg.pt != pt {
					continue
				}
				origStart, origEnd := v.OriginalSpan(h.Start, h.End)
				raw = append(raw, rawHit{start: origStart, end: origEnd, wordID: tg.wordID, word: tg.word})
			}
		}
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].start != raw[j].start {
			return raw[i].start < raw[j].start
		}
		li, lj := raw[i].end-raw[i].start, raw[j].end-raw[j].start
		if li != lj {
			return li > lj
		}
		return raw[i].wordID < raw[j].wordID
	})

	seen := make(map[uint32]bool, len(raw))
	results := make([]Result, 0, len(raw))
	for _, h := range raw {
		if seen[h.wordID] {
			continue
		}
		seen[h.wordID] = true
		results = append(results, Result{WordID: h.wordID, Word: h.word})
	}
	return results, nil
}

// IsMatch reports whether text matches any configured word under any
// active process.Type, short-circuiting on the first hit.
func (m *Matcher) IsMatch(text string) (bool, error) {
	for _, pt := range m.activePTs {
		variants, err := transform.Transform(pt, text)
		if err != nil {
			return false, err
		}
		for _, v := range variants {
			for _, h := range m.auto.FindAll(v.Text) {
				if m.tags[h.Pattern].pt == pt {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
