package automaton

import "testing"

func TestFindAllBasic(t *testing.T) {
	a := Build([]string{"he", "she", "his", "hers"})
	hits := a.FindAll("ushers")
	if len(hits) == 0 {
		t.Fatal("expected hits")
	}
	got := map[string]bool{}
	for _, h := range hits {
		got["ushers"[h.Start:h.End]] = true
	}
	for _, want := range []string{"she", "he", "hers"} {
		if !got[want] {
			t.Errorf("missing expected match %q in %v", want, got)
		}
	}
}

func TestFindAllCJKNoBoundaryStraddle(t *testing.T) {
	a := Build([]string{"你好"})
	hits := a.FindAll("你好世界")
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Start != 0 || hits[0].End != len("你好") {
		t.Errorf("hit = %+v, want span covering 你好", hits[0])
	}
}

func TestFindAllEmptyPatternIgnored(t *testing.T) {
	a := Build([]string{"", "ok"})
	if a.NumPatterns() != 2 {
		t.Fatalf("NumPatterns() = %d, want 2 (empty slot reserved, not matchable)", a.NumPatterns())
	}
	hits := a.FindAll("it's ok")
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Pattern != 1 {
		t.Fatalf("hits[0].Pattern = %d, want 1 (index-aligned with input slice)", hits[0].Pattern)
	}
}

// TestFindAllPreservesIndexAfterEmptyPattern is the regression case the
// review flagged: a pattern that transformed down to "" earlier in the
// slice (e.g. "!!!" under a noise-stripping transform) must not shift the
// index of a later, non-empty pattern out from under its caller-owned tag.
func TestFindAllPreservesIndexAfterEmptyPattern(t *testing.T) {
	a := Build([]string{"", "你好"})
	hits := a.FindAll("你好")
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Pattern != 1 {
		t.Fatalf("hits[0].Pattern = %d, want 1 (the 你好 entry, not the empty entry at index 0)", hits[0].Pattern)
	}
}

func TestIsMatchShortCircuits(t *testing.T) {
	a := Build([]string{"needle"})
	if a.IsMatch("no match here") {
		t.Error("IsMatch() = true, want false")
	}
	if !a.IsMatch("a needle in a haystack") {
		t.Error("IsMatch() = false, want true")
	}
}

func TestFindAllOrdering(t *testing.T) {
	a := Build([]string{"a", "ab", "abc"})
	hits := a.FindAll("abc")
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	// All three start at byte 0; longest ("abc") must sort first.
	if hits[0].End-hits[0].Start != 3 {
		t.Errorf("first hit span = %d, want 3 (longest-first tie-break)", hits[0].End-hits[0].Start)
	}
}
