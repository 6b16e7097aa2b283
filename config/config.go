// Package config decodes a MatcherConfig from its two accepted wire
// encodings, per §6: a self-describing binary form
// (github.com/vmihailenco/msgpack/v5, the Go counterpart of the original
// implementation's msgspec-based wire format) and a textual form
// (encoding/json), auto-detected from the buffer's first significant
// byte. The JSON path is optionally pre-validated against a JSON Schema
// with github.com/santhosh-tekuri/jsonschema/v5 before decoding.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/table"
	"github.com/coregx/textguard/textguarderr"
)

// matchTableTypeDTO mirrors the §6 tagged-union wire shape: exactly one
// of Simple/Regex/Similar is non-nil.
type matchTableTypeDTO struct {
	Simple *struct {
		ProcessType uint32 `json:"process_type" msgpack:"process_type"`
	} `json:"simple,omitempty" msgpack:"simple,omitempty"`
	Regex *struct {
		ProcessType    uint32 `json:"process_type" msgpack:"process_type"`
		RegexMatchType string `json:"regex_match_type" msgpack:"regex_match_type"`
	} `json:"regex,omitempty" msgpack:"regex,omitempty"`
	Similar *struct {
		ProcessType  uint32  `json:"process_type" msgpack:"process_type"`
		SimMatchType string  `json:"sim_match_type" msgpack:"sim_match_type"`
		Threshold    float64 `json:"threshold" msgpack:"threshold"`
	} `json:"similar,omitempty" msgpack:"similar,omitempty"`
}

// matchTableDTO mirrors one §6 MatchTable entry on the wire.
type matchTableDTO struct {
	TableID              uint32            `json:"table_id" msgpack:"table_id"`
	MatchTableType       matchTableTypeDTO `json:"match_table_type" msgpack:"match_table_type"`
	WordList             []string          `json:"word_list" msgpack:"word_list"`
	ExemptionProcessType uint32            `json:"exemption_process_type" msgpack:"exemption_process_type"`
	ExemptionWordList    []string          `json:"exemption_word_list" msgpack:"exemption_word_list"`
}

// matcherConfigDTO mirrors §6's `MatcherConfig = { table_id(u32) : [MatchTable] }`.
type matcherConfigDTO map[uint32][]matchTableDTO

// Schema, when non-nil, pre-validates the JSON encoding before it is
// unmarshaled. Binary (msgpack) input is never schema-validated, since the
// format is already self-describing and structurally typed.
type Schema struct {
	compiled *jsonschema.Schema
}

// CompileSchema compiles a JSON Schema document (as raw bytes) for later
// use with Decode.
func CompileSchema(name string, schemaJSON []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(schemaJSON)); err != nil {
		return nil, &textguarderr.ConfigError{Field: "schema", Err: err}
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, &textguarderr.ConfigError{Field: "schema", Err: err}
	}
	return &Schema{compiled: compiled}, nil
}

// Decode auto-detects the encoding of data and decodes it into a
// table.MatchTableMap. If schema is non-nil and the buffer is JSON, the
// buffer is validated against it before decoding. Undecodable bytes fail
// with ErrInvalidInput; a structurally valid but semantically invalid
// config (unknown process_type bit, reserved sim_match_type, ...) is
// caught downstream at matcher.Build, not here.
func Decode(data []byte, schema *Schema) (table.MatchTableMap, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return decodeJSON(trimmed, schema)
	}
	return decodeMsgpack(data)
}

func decodeJSON(data []byte, schema *Schema) (table.MatchTableMap, error) {
	if schema != nil {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, &textguarderr.InputError{Reason: "malformed JSON", Err: err}
		}
		if err := schema.compiled.Validate(v); err != nil {
			return nil, &textguarderr.InputError{Reason: "config failed schema validation", Err: err}
		}
	}

	var dto matcherConfigDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, &textguarderr.InputError{Reason: "malformed JSON config", Err: err}
	}
	return dtoToMatchTableMap(dto)
}

func decodeMsgpack(data []byte) (table.MatchTableMap, error) {
	var dto matcherConfigDTO
	if err := msgpack.Unmarshal(data, &dto); err != nil {
		return nil, &textguarderr.InputError{Reason: "malformed msgpack config", Err: err}
	}
	return dtoToMatchTableMap(dto)
}

func dtoToMatchTableMap(dto matcherConfigDTO) (table.MatchTableMap, error) {
	out := make(table.MatchTableMap, len(dto))
	for tableID, entries := range dto {
		for _, e := range entries {
			mt, err := dtoToMatchTable(tableID, e)
			if err != nil {
				return nil, err
			}
			out[tableID] = append(out[tableID], mt)
		}
	}
	return out, nil
}

func dtoToMatchTable(tableID uint32, e matchTableDTO) (table.MatchTable, error) {
	tt, err := dtoToMatchTableType(tableID, e.MatchTableType)
	if err != nil {
		return table.MatchTable{}, err
	}
	return table.MatchTable{
		TableID:              tableID,
		Type:                 tt,
		WordList:             e.WordList,
		ExemptionProcessType: process.Type(e.ExemptionProcessType),
		ExemptionWordList:    e.ExemptionWordList,
	}, nil
}

func dtoToMatchTableType(tableID uint32, dto matchTableTypeDTO) (table.MatchTableType, error) {
	switch {
	case dto.Simple != nil:
		return table.SimpleType{ProcessType: process.Type(dto.Simple.ProcessType)}, nil
	case dto.Regex != nil:
		rmt, err := parseRegexMatchType(dto.Regex.RegexMatchType)
		if err != nil {
			return nil, &textguarderr.ConfigError{TableID: tableID, Field: "regex_match_type", Err: err}
		}
		return table.RegexType{ProcessType: process.Type(dto.Regex.ProcessType), RegexMatchType: rmt}, nil
	case dto.Similar != nil:
		smt, err := parseSimMatchType(dto.Similar.SimMatchType)
		if err != nil {
			return nil, &textguarderr.ConfigError{TableID: tableID, Field: "sim_match_type", Err: err}
		}
		return table.SimilarType{
			ProcessType:  process.Type(dto.Similar.ProcessType),
			SimMatchType: smt,
			Threshold:    dto.Similar.Threshold,
		}, nil
	default:
		return nil, &textguarderr.ConfigError{TableID: tableID, Field: "match_table_type", Err: textguarderr.ErrInvalidConfig}
	}
}

func parseRegexMatchType(s string) (table.RegexMatchType, error) {
	switch s {
	case "regex", "Regex":
		return table.Regex, nil
	case "similar_char", "SimilarChar":
		return table.SimilarChar, nil
	case "acrostic", "Acrostic":
		return table.Acrostic, nil
	default:
		return 0, fmt.Errorf("%w: unknown regex_match_type %q", textguarderr.ErrInvalidConfig, s)
	}
}

func parseSimMatchType(s string) (table.SimMatchType, error) {
	switch s {
	case "levenshtein", "Levenshtein", "similar_text_levenshtein":
		return table.Levenshtein, nil
	case "damerau_levenshtein", "DamerauLevenshtein":
		return table.DamerauLevenshtein, nil
	case "indel", "Indel":
		return table.Indel, nil
	case "jaro", "Jaro":
		return table.Jaro, nil
	case "jaro_winkler", "JaroWinkler":
		return table.JaroWinkler, nil
	default:
		return 0, fmt.Errorf("%w: unknown sim_match_type %q", textguarderr.ErrInvalidConfig, s)
	}
}
