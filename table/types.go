// Package table defines the configuration-level data model shared by
// config and matcher: the MatchTableType tagged union, MatchTable,
// MatchTableMap and MatchResult, per §3.
package table

import "github.com/coregx/textguard/process"

// RegexMatchType selects which regex-shaped strategy a Regex-variant
// MatchTableType uses.
type RegexMatchType int

const (
	Regex RegexMatchType = iota
	SimilarChar
	Acrostic
)

func (t RegexMatchType) String() string {
	switch t {
	case Regex:
		return "Regex"
	case SimilarChar:
		return "SimilarChar"
	case Acrostic:
		return "Acrostic"
	default:
		return "Unknown"
	}
}

// SimMatchType selects which similarity metric a Similar-variant
// MatchTableType uses. Only Levenshtein is implemented; the rest are
// reserved names that MUST fail construction rather than silently
// degrade to Levenshtein.
type SimMatchType int

const (
	Levenshtein SimMatchType = iota
	DamerauLevenshtein
	Indel
	Jaro
	JaroWinkler
)

func (t SimMatchType) String() string {
	switch t {
	case Levenshtein:
		return "Levenshtein"
	case DamerauLevenshtein:
		return "DamerauLevenshtein"
	case Indel:
		return "Indel"
	case Jaro:
		return "Jaro"
	case JaroWinkler:
		return "JaroWinkler"
	default:
		return "Unknown"
	}
}

// MatchTableType is the tagged union over a table's matching strategy:
// exactly one of SimpleType, RegexType or SimilarType. The marker method
// keeps this a closed sum type: no fourth implementation may appear
// outside this package.
type MatchTableType interface {
	isMatchTableType()
}

// SimpleType routes a table through SimpleMatcher: word_list entries are
// literal text, matched via the single shared Aho-Corasick automaton.
type SimpleType struct {
	ProcessType process.Type
}

func (SimpleType) isMatchTableType() {}

// RegexType routes a table through one of the three regex-shaped
// strategies named by RegexMatchType.
type RegexType struct {
	ProcessType    process.Type
	RegexMatchType RegexMatchType
}

func (RegexType) isMatchTableType() {}

// SimilarType routes a table through a similarity-metric strategy.
// Threshold must be in (0, 1].
type SimilarType struct {
	ProcessType  process.Type
	SimMatchType SimMatchType
	Threshold    float64
}

func (SimilarType) isMatchTableType() {}

// MatchTable is the per-rule unit: a table_id, the strategy it runs under,
// its word_list, and an optional exemption set that suppresses the
// table's hits entirely when any exemption word matches.
type MatchTable struct {
	TableID              uint32
	Type                 MatchTableType
	WordList             []string
	ExemptionProcessType process.Type
	ExemptionWordList    []string
}

// MatchTableMap is the full configuration: table_id -> its MatchTables.
// A table_id is not required to be unique across the map's values; tables
// sharing an id have their hits aggregated by the Matcher.
type MatchTableMap map[uint32][]MatchTable

// MatchResult is one de-duplicated hit reported by the Matcher: the
// original word text (never the transformed match substring, except for
// SimilarChar per its own documented semantics).
type MatchResult struct {
	TableID uint32 `json:"table_id"`
	Word    string `json:"word"`
}
