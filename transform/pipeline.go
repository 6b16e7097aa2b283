// Package transform implements the canonicalization pipeline: given a
// process.Type bitmask and an input text, it produces one or more
// canonical variants together with an offset map back to the original
// text, per §4.1.
package transform

import (
	"unicode/utf8"

	"github.com/coregx/textguard/process"
	"github.com/coregx/textguard/textguarderr"
)

// Transform applies pt to text in the fixed composition order Fanjian ->
// Delete -> Normalize -> (PinYin | PinYinChar), regardless of the order
// the bits happen to be set in. It returns one Variant for every mask
// except those containing PinYin/PinYinChar, which may return more than
// one when future syllable-ambiguity support is added; today both Pinyin
// transforms are deterministic and always return exactly one variant.
//
// MatchNone (pt == process.None) returns the input unchanged with an
// identity back-map.
func Transform(pt process.Type, text string) ([]Variant, error) {
	if !utf8.ValidString(text) {
		return nil, &textguarderr.InputError{Reason: "text is not valid UTF-8"}
	}
	if !pt.Valid() {
		return nil, &textguarderr.ConfigError{Field: "process_type", Err: textguarderr.ErrInvalidConfig}
	}
	pt = pt.Normalized()

	v := identity(text)
	if pt.Has(process.Fanjian) {
		v = fanjian(v)
	}
	if pt.Has(process.Delete) {
		v = deleteNoise(v)
	}
	if pt.Has(process.Normalize) {
		v = normalize(v)
	}
	switch {
	case pt.Has(process.PinYinChar):
		v = pinyinChar(v)
	case pt.Has(process.PinYin):
		v = pinyin(v)
	}
	return []Variant{v}, nil
}

// First is a convenience wrapper returning only the first variant, used
// wherever the caller (e.g. pattern compilation at build time) knows only
// one variant can ever be produced for stored patterns.
func First(pt process.Type, text string) (Variant, error) {
	variants, err := Transform(pt, text)
	if err != nil {
		return Variant{}, err
	}
	return variants[0], nil
}
