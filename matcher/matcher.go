// Package matcher implements the §4.4 orchestrator: it layers per-table
// exemption rules over the strategy matchers (SimpleMatcher, Regex,
// SimilarChar, Acrostic, Levenshtein) and aggregates MatchResults by
// table_id. Build-time errors from every offending table are collected
// with go.uber.org/multierr and reported together via
// github.com/pkg/errors, rather than failing fast on the first bad table.
package matcher

import (
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/coregx/textguard/internal/obslog"
	"github.com/coregx/textguard/simple"
	"github.com/coregx/textguard/strategy"
	"github.com/coregx/textguard/table"
	"github.com/coregx/textguard/textguarderr"
)

// tableMatcher is the common shape every strategy adapter exposes to the
// orchestrator: the original word_list entries (or matched substrings,
// for SimilarChar) that hit against text.
type tableMatcher interface {
	Match(text string) ([]string, error)
}

type simpleAdapter struct{ m *simple.Matcher }

func (a simpleAdapter) Match(text string) ([]string, error) {
	results, err := a.m.Process(text)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(results))
	for i, r := range results {
		words[i] = r.Word
	}
	return words, nil
}

type regexAdapter struct{ r *strategy.Regex }

func (a regexAdapter) Match(text string) ([]string, error) { return hitsToWords(a.r.Match(text)) }

type similarCharAdapter struct{ s *strategy.SimilarChar }

func (a similarCharAdapter) Match(text string) ([]string, error) { return hitsToWords(a.s.Match(text)) }

type acrosticAdapter struct{ a *strategy.Acrostic }

func (a acrosticAdapter) Match(text string) ([]string, error) { return hitsToWords(a.a.Match(text)) }

type levenshteinAdapter struct{ l *strategy.Levenshtein }

func (a levenshteinAdapter) Match(text string) ([]string, error) { return hitsToWords(a.l.Match(text)) }

func hitsToWords(hits []strategy.Hit, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	words := make([]string, len(hits))
	for i, h := range hits {
		words[i] = h.Word
	}
	return words, nil
}

// compiledTable is one built MatchTable: its strategy adapter plus an
// optional exemption matcher.
type compiledTable struct {
	tableID   uint32
	matcher   tableMatcher
	exemption *simple.Matcher // nil when the table has no exemption set
}

// Matcher is the immutable, concurrency-safe orchestrator built from a
// table.MatchTableMap. The zero value is not usable; construct with Build.
type Matcher struct {
	tables  []compiledTable
	buildID string
	log     *zap.Logger
}

// Build compiles every MatchTable in cfg. Every per-table build error is
// collected (not just the first) and returned together, wrapped with the
// offending table_id, via go.uber.org/multierr + github.com/pkg/errors.
func Build(cfg table.MatchTableMap) (*Matcher, error) {
	m := &Matcher{buildID: uuid.NewString(), log: obslog.L()}

	var buildErr error
	for tableID, entries := range cfg {
		for _, mt := range entries {
			ct, err := buildTable(tableID, mt)
			if err != nil {
				buildErr = multierr.Append(buildErr, errors.Wrapf(err, "table_id=%d", tableID))
				continue
			}
			m.tables = append(m.tables, ct)
		}
	}
	if buildErr != nil {
		m.log.Error("matcher build failed", zap.String("build_id", m.buildID), zap.Error(buildErr))
		return nil, &textguarderr.ConfigError{Err: buildErr}
	}

	m.log.Info("matcher built", zap.String("build_id", m.buildID), zap.Int("tables", len(m.tables)))
	return m, nil
}

func buildTable(tableID uint32, mt table.MatchTable) (compiledTable, error) {
	ct := compiledTable{tableID: tableID}

	tm, err := buildStrategy(tableID, mt)
	if err != nil {
		return ct, err
	}
	ct.matcher = tm

	if len(mt.ExemptionWordList) > 0 {
		cfg := simple.Config{mt.ExemptionProcessType: {}}
		for i, w := range mt.ExemptionWordList {
			cfg[mt.ExemptionProcessType][uint32(i)] = w
		}
		exemption, err := simple.Build(cfg)
		if err != nil {
			return ct, &textguarderr.ConfigError{TableID: tableID, Field: "exemption_word_list", Err: err}
		}
		ct.exemption = exemption
	}
	return ct, nil
}

func buildStrategy(tableID uint32, mt table.MatchTable) (tableMatcher, error) {
	switch tt := mt.Type.(type) {
	case table.SimpleType:
		cfg := simple.Config{tt.ProcessType: {}}
		for i, w := range mt.WordList {
			cfg[tt.ProcessType][uint32(i)] = w
		}
		m, err := simple.Build(cfg)
		if err != nil {
			return nil, &textguarderr.ConfigError{TableID: tableID, Field: "word_list", Err: err}
		}
		return simpleAdapter{m}, nil

	case table.RegexType:
		switch tt.RegexMatchType {
		case table.Regex:
			r, err := strategy.NewRegex(tt.ProcessType, mt.WordList)
			if err != nil {
				return nil, withTableID(tableID, err)
			}
			return regexAdapter{r}, nil
		case table.SimilarChar:
			s, err := strategy.NewSimilarChar(tt.ProcessType, mt.WordList)
			if err != nil {
				return nil, withTableID(tableID, err)
			}
			return similarCharAdapter{s}, nil
		case table.Acrostic:
			a, err := strategy.NewAcrostic(tt.ProcessType, mt.WordList)
			if err != nil {
				return nil, withTableID(tableID, err)
			}
			return acrosticAdapter{a}, nil
		default:
			return nil, &textguarderr.ConfigError{TableID: tableID, Field: "regex_match_type", Err: textguarderr.ErrInvalidConfig}
		}

	case table.SimilarType:
		if tt.SimMatchType != table.Levenshtein {
			return nil, &textguarderr.ConfigError{
				TableID: tableID,
				Field:   "sim_match_type:" + tt.SimMatchType.String(),
				Err:     textguarderr.ErrInvalidConfig,
			}
		}
		l, err := strategy.NewLevenshtein(tt.ProcessType, mt.WordList, tt.Threshold)
		if err != nil {
			return nil, withTableID(tableID, err)
		}
		return levenshteinAdapter{l}, nil

	default:
		return nil, &textguarderr.ConfigError{TableID: tableID, Field: "match_table_type", Err: textguarderr.ErrInvalidConfig}
	}
}

func withTableID(tableID uint32, err error) error {
	var ce *textguarderr.ConfigError
	if errors.As(err, &ce) {
		ce.TableID = tableID
		return ce
	}
	return &textguarderr.ConfigError{TableID: tableID, Err: err}
}

// IsMatch reports whether any table produces at least one non-exempted
// hit, short-circuiting on the first.
func (m *Matcher) IsMatch(text string) (bool, error) {
	for _, ct := range m.tables {
		words, err := ct.matcher.Match(text)
		if err != nil {
			return false, err
		}
		if len(words) == 0 {
			continue
		}
		exempted, err := ct.isExempted(text)
		if err != nil {
			return false, err
		}
		if !exempted {
			return true, nil
		}
	}
	return false, nil
}

func (ct compiledTable) isExempted(text string) (bool, error) {
	if ct.exemption == nil {
		return false, nil
	}
	return ct.exemption.IsMatch(text)
}

// WordMatch returns every non-exempted hit grouped by table_id, with
// (table_id, word) pairs deduplicated.
func (m *Matcher) WordMatch(text string) (map[uint32][]table.MatchResult, error) {
	out := make(map[uint32][]table.MatchResult)
	seen := make(map[uint32]map[string]bool)
	for _, ct := range m.tables {
		words, err := ct.matcher.Match(text)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			continue
		}
		exempted, err := ct.isExempted(text)
		if err != nil {
			return nil, err
		}
		if exempted {
			continue
		}

		if seen[ct.tableID] == nil {
			seen[ct.tableID] = make(map[string]bool, len(words))
		}
		for _, w := range words {
			if seen[ct.tableID][w] {
				continue
			}
			seen[ct.tableID][w] = true
			out[ct.tableID] = append(out[ct.tableID], table.MatchResult{TableID: ct.tableID, Word: w})
		}
	}
	for id := range out {
		sort.Slice(out[id], func(i, j int) bool { return out[id][i].Word < out[id][j].Word })
	}
	return out, nil
}

// BatchWordMatch applies WordMatch to every text independently and in
// parallel: no state carries across elements, each goroutine owns its own
// result slot, and results preserve input order regardless of completion
// order. Concurrency is capped at runtime.GOMAXPROCS(0) workers via a
// buffered-channel semaphore, so a large batch can't spin up one goroutine
// per text.
func (m *Matcher) BatchWordMatch(texts []string) ([]map[uint32][]table.MatchResult, error) {
	results := make([]map[uint32][]table.MatchResult, len(texts))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var batchErr error

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i, text := range texts {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			r, err := m.WordMatch(text)
			if err != nil {
				mu.Lock()
				batchErr = multierr.Append(batchErr, errors.Wrapf(err, "text[%d]", i))
				mu.Unlock()
				return
			}
			results[i] = r
		}(i, text)
	}
	wg.Wait()

	return results, batchErr
}
