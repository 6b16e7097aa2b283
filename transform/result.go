package transform

// Variant is one canonicalized form of an input text, together with a
// back-map from each byte offset in Text to the byte offset in the
// original input it was derived from. BackMap has one entry per byte of
// Text; translating a transformed span [start,end) back to the original
// text is BackMap[start] and BackMap[end-1]+1 (end-exclusive): each
// transform maps the last byte it emits for a source rune to that rune's
// last original byte.
//
// Text and BackMap are built together by each transform and are only ever
// used together; they are ordinary per-call allocations.
type Variant struct {
	Text    string
	BackMap []int
}

// OriginalSpan translates a half-open byte span [start,end) in Text back to
// the corresponding half-open byte span in the original input.
func (v Variant) OriginalSpan(start, end int) (int, int) {
	if start >= end || start < 0 || end > len(v.BackMap) {
		return start, end
	}
	return v.BackMap[start], v.BackMap[end-1] + 1
}

// identity returns the MatchNone variant: text unchanged, back-map is the
// identity permutation.
func identity(text string) Variant {
	backMap := make([]int, len(text))
	for i := range backMap {
		backMap[i] = i
	}
	return Variant{Text: text, BackMap: backMap}
}
