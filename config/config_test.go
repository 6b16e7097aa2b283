package config

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/table"
)

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{
		"1": [{
			"table_id": 1,
			"match_table_type": {"simple": {"process_type": 1}},
			"word_list": ["hello"],
			"exemption_process_type": 0,
			"exemption_word_list": []
		}]
	}`)

	cfg, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	entries, ok := cfg[1]
	if !ok || len(entries) != 1 {
		t.Fatalf("Decode() = %+v, want one table under id 1", cfg)
	}
	st, ok := entries[0].Type.(table.SimpleType)
	if !ok || st.ProcessType != process.None {
		t.Errorf("Decode() Type = %+v, want SimpleType{None}", entries[0].Type)
	}
	if len(entries[0].WordList) != 1 || entries[0].WordList[0] != "hello" {
		t.Errorf("Decode() WordList = %+v", entries[0].WordList)
	}
}

func TestDecodeJSONRegexVariant(t *testing.T) {
	data := []byte(`{"7": [{
		"table_id": 7,
		"match_table_type": {"regex": {"process_type": 1, "regex_match_type": "acrostic"}},
		"word_list": ["h,e,l,l,o"],
		"exemption_process_type": 0,
		"exemption_word_list": []
	}]}`)
	cfg, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rt, ok := cfg[7][0].Type.(table.RegexType)
	if !ok || rt.RegexMatchType != table.Acrostic {
		t.Errorf("Decode() Type = %+v, want RegexType{Acrostic}", cfg[7][0].Type)
	}
}

func TestDecodeJSONUnknownRegexMatchType(t *testing.T) {
	data := []byte(`{"1": [{
		"table_id": 1,
		"match_table_type": {"regex": {"process_type": 1, "regex_match_type": "bogus"}},
		"word_list": ["x"],
		"exemption_process_type": 0,
		"exemption_word_list": []
	}]}`)
	if _, err := Decode(data, nil); err == nil {
		t.Fatal("expected error for unknown regex_match_type")
	}
}

func TestDecodeMsgpackRoundTrip(t *testing.T) {
	data, err := msgpack.Marshal(map[uint32][]matchTableDTO{
		1: {{
			TableID: 1,
			MatchTableType: matchTableTypeDTO{
				Similar: &struct {
					ProcessType  uint32  `json:"process_type" msgpack:"process_type"`
					SimMatchType string  `json:"sim_match_type" msgpack:"sim_match_type"`
					Threshold    float64 `json:"threshold" msgpack:"threshold"`
				}{ProcessType: 1, SimMatchType: "levenshtein", Threshold: 0.8},
			},
			WordList: []string{"helloworld"},
		}},
	})
	if err != nil {
		t.Fatalf("msgpack.Marshal() error = %v", err)
	}

	cfg, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	sim, ok := cfg[1][0].Type.(table.SimilarType)
	if !ok || sim.SimMatchType != table.Levenshtein || sim.Threshold != 0.8 {
		t.Errorf("Decode() Type = %+v, want SimilarType{Levenshtein, 0.8}", cfg[1][0].Type)
	}
}

func TestDecodeInvalidBytes(t *testing.T) {
	if _, err := Decode([]byte{0xff, 0xfe, 0xfd}, nil); err == nil {
		t.Fatal("expected error for undecodable bytes")
	}
}
