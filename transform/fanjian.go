package transform

import (
	"strings"
	"unicode/utf8"
)

// fanjian maps every codepoint in v through the embedded traditional->
// simplified lookup table, passing non-CJK and unmapped codepoints through
// unchanged. The back-map is recomputed so byte offsets in the (possibly
// multi-byte-shifted) output still resolve to the original input.
func fanjian(v Variant) Variant {
	table := loadFanjian()

	var out strings.Builder
	out.Grow(len(v.Text))
	var backMap []int

	for i, r := range v.Text {
		repl, ok := table[r]
		if !ok {
			repl = string(r)
		}
		orig, last := v.BackMap[i], v.BackMap[i+utf8.RuneLen(r)-1]
		for j := 0; j < len(repl); j++ {
			if j == len(repl)-1 {
				backMap = append(backMap, last)
			} else {
				backMap = append(backMap, orig)
			}
		}
		out.WriteString(repl)
	}
	return Variant{Text: out.String(), BackMap: backMap}
}
