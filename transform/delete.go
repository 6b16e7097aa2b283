package transform

import (
	"unicode"
	"unicode/utf8"
)

// noiseRanges covers the characters dropped by the Delete transform:
// Unicode punctuation (unicode.Punct, which includes ASCII punctuation)
// and white space (unicode.Space), plus the CJK symbols and punctuation
// block, fullwidth punctuation forms and zero-width/format characters.
var noiseRanges = []*unicode.RangeTable{
	unicode.Punct,
	unicode.Space,
	{R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x303F, Stride: 1}, // CJK symbols and punctuation
		{Lo: 0xFF00, Hi: 0xFF0F, Stride: 1}, // fullwidth punctuation (part 1)
		{Lo: 0xFF1A, Hi: 0xFF20, Stride: 1}, // fullwidth punctuation (part 2)
		{Lo: 0xFF3B, Hi: 0xFF40, Stride: 1}, // fullwidth punctuation (part 3)
		{Lo: 0xFF5B, Hi: 0xFF65, Stride: 1}, // fullwidth punctuation (part 4)
		{Lo: 0x200B, Hi: 0x200F, Stride: 1}, // zero-width space/joiners, directional marks
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // zero-width no-break space / BOM
	}},
}

func isNoise(r rune) bool {
	return unicode.In(r, noiseRanges...)
}

// deleteNoise drops every rune belonging to the noise set, keeping the
// back-map pointed at the surviving runes' original offsets.
func deleteNoise(v Variant) Variant {
	var out []byte
	var backMap []int
	for i, r := range v.Text {
		if isNoise(r) {
			continue
		}
		var tmp [utf8.UTFMax]byte
		n := utf8.EncodeRune(tmp[:], r)
		for j := 0; j < n; j++ {
			backMap = append(backMap, v.BackMap[i+j])
		}
		out = append(out, tmp[:n]...)
	}
	return Variant{Text: string(out), BackMap: backMap}
}
