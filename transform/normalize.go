package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// normalize case-folds to lower, folds fullwidth ASCII to halfwidth (via
// golang.org/x/text/width, the same package the reference corpus uses for
// East-Asian width handling), maps stylistic Unicode letters/digits to
// their ASCII nominal via the embedded confusables table, and decomposes
// + strips combining marks for anything left over (golang.org/x/text/
// unicode/norm: NFD decomposition with unicode.Mn marks stripped; no NFC
// recomposition step follows).
func normalize(v Variant) Variant {
	table := loadNormalize()

	var out strings.Builder
	var backMap []int
	for i, r := range v.Text {
		orig, last := v.BackMap[i], v.BackMap[i+utf8.RuneLen(r)-1]
		repl := normalizeRune(r, table)
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

// normalizeRune reduces a single rune to its plain-ASCII nominal where one
// is known, otherwise to its width-folded, lowercased, mark-stripped form.
func normalizeRune(r rune, table map[rune]string) string {
	if repl, ok := table[r]; ok {
		return strings.ToLower(repl)
	}

	folded := width.Fold.String(string(r))
	if folded != string(r) {
		return strings.ToLower(folded)
	}

	decomposed := norm.NFD.String(string(r))
	var base strings.Builder
	for _, dr := range decomposed {
		if unicode.Is(unicode.Mn, dr) {
			continue
		}
		base.WriteRune(dr)
	}
	if base.Len() == 0 {
		return ""
	}
	return strings.ToLower(base.String())
}
