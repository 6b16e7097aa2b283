package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/table"
)

func TestExemptionAcrossTables(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{
			TableID:              1,
			Type:                 table.SimpleType{ProcessType: process.None},
			WordList:             []string{"helloworld"},
			ExemptionProcessType: process.None,
			ExemptionWordList:    []string{"worldwide"},
		}},
		2: {{
			TableID:              2,
			Type:                 table.RegexType{ProcessType: process.None, RegexMatchType: table.Regex},
			WordList:             []string{"hello"},
			ExemptionProcessType: process.None,
			ExemptionWordList:    []string{"worldwide"},
		}},
	}

	m, err := Build(cfg)
	require.NoError(t, err)

	isMatch, err := m.IsMatch("helloworldwide")
	require.NoError(t, err)
	assert.False(t, isMatch, "both tables should be exempted")

	results, err := m.WordMatch("helloworldwide")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWordMatchWithoutExemptionStillHits(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{
			TableID:  1,
			Type:     table.SimpleType{ProcessType: process.None},
			WordList: []string{"helloworld"},
		}},
	}
	m, err := Build(cfg)
	require.NoError(t, err)

	results, err := m.WordMatch("say helloworld now")
	require.NoError(t, err)
	require.Len(t, results[1], 1)
	assert.Equal(t, "helloworld", results[1][0].Word)
}

func TestWordMatchDeduplicatesPerTable(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{
			TableID:  1,
			Type:     table.SimpleType{ProcessType: process.None},
			WordList: []string{"hi"},
		}},
	}
	m, err := Build(cfg)
	require.NoError(t, err)

	results, err := m.WordMatch("hi there, hi again")
	require.NoError(t, err)
	assert.Len(t, results[1], 1)
}

func TestReservedSimMatchTypeFailsConstruction(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{
			TableID:  1,
			Type:     table.SimilarType{ProcessType: process.None, SimMatchType: table.JaroWinkler, Threshold: 0.8},
			WordList: []string{"x"},
		}},
	}
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildAggregatesMultipleTableErrors(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{TableID: 1, Type: table.RegexType{ProcessType: process.None, RegexMatchType: table.Regex}, WordList: []string{"(unclosed"}}},
		2: {{TableID: 2, Type: table.SimilarType{ProcessType: process.None, SimMatchType: table.Jaro, Threshold: 0.5}, WordList: []string{"x"}}},
	}
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestIsMatchAgreesWithWordMatch(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{TableID: 1, Type: table.SimpleType{ProcessType: process.None}, WordList: []string{"forbidden"}}},
	}
	m, err := Build(cfg)
	require.NoError(t, err)

	for _, text := range []string{"this is forbidden", "this is fine"} {
		isMatch, err := m.IsMatch(text)
		require.NoError(t, err)

		results, err := m.WordMatch(text)
		require.NoError(t, err)

		total := 0
		for _, rs := range results {
			total += len(rs)
		}
		assert.Equal(t, total > 0, isMatch, "text=%q", text)
	}
}

func TestBatchWordMatchIsElementWise(t *testing.T) {
	cfg := table.MatchTableMap{
		1: {{TableID: 1, Type: table.SimpleType{ProcessType: process.None}, WordList: []string{"cat"}}},
	}
	m, err := Build(cfg)
	require.NoError(t, err)

	results, err := m.BatchWordMatch([]string{"a cat sat", "no match here", "cat cat"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Len(t, results[0][1], 1)
	assert.Empty(t, results[1])
	assert.Len(t, results[2][1], 1)
}
