package transform

import (
	"strings"
	"unicode/utf8"
)

// pinyinSeparator delimits adjacent syllables in the PinYin variant so the
// shared automaton matches on whole-syllable boundaries instead of
// accidentally matching a prefix of one syllable concatenated with the
// next (e.g. "xi" + "an" must not look like "xia" + "n").
const pinyinSeparator = " "

// pinyin expands each Han codepoint to its canonical Hanyu Pinyin syllable,
// separated by pinyinSeparator; non-Han codepoints pass through unchanged.
func pinyin(v Variant) Variant {
	return expandPinyin(v, true)
}

// pinyinChar expands each Han codepoint to its concatenated Pinyin letters
// without separators, enabling e.g. "xian" to match 西安.
func pinyinChar(v Variant) Variant {
	return expandPinyin(v, false)
}

func expandPinyin(v Variant, delimited bool) Variant {
	table := loadPinyin()

	var out strings.Builder
	var backMap []int
	prevWasSyllable := false
	for i, r := range v.Text {
		orig, last := v.BackMap[i], v.BackMap[i+utf8.RuneLen(r)-1]
		syllable, isHan := table[r]
		if !isHan {
			syllable = string(r)
		}

		if delimited && isHan && prevWasSyllable {
			out.WriteString(pinyinSeparator)
			for range pinyinSeparator {
				backMap = append(backMap, orig)
			}
		}

		for j := 0; j < len(syllable); j++ {
			if j == len(syllable)-1 {
				backMap = append(backMap, last)
			} else {
				backMap = append(backMap, orig)
			}
		}
		out.WriteString(syllable)
		prevWasSyllable = isHan
	}
	return Variant{Text: out.String(), BackMap: backMap}
}
