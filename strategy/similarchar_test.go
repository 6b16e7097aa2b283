package strategy

import (
	"testing"

	"github.com/coregx/textguard/process"
)

func TestSimilarCharMatchesConcatenatedSlots(t *testing.T) {
	sc, err := NewSimilarChar(process.None, []string{
		"hello,hi,H,你好",
		"world,word,🌍,世界",
	})
	if err != nil {
		t.Fatalf("NewSimilarChar() error = %v", err)
	}

	hits, err := sc.Match("say helloworld to everyone")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Word != "helloworld" {
		t.Fatalf("Match() = %+v, want one hit with matched substring", hits)
	}
}

func TestSimilarCharMatchedWordIsSubstringNotPattern(t *testing.T) {
	sc, err := NewSimilarChar(process.None, []string{"hi,H", "world,世界"})
	if err != nil {
		t.Fatalf("NewSimilarChar() error = %v", err)
	}
	hits, err := sc.Match("Hworld now")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Word != "Hworld" {
		t.Errorf("Match() = %+v, want matched substring \"Hworld\"", hits)
	}
}

func TestSimilarCharNoMatch(t *testing.T) {
	sc, err := NewSimilarChar(process.None, []string{"foo,bar"})
	if err != nil {
		t.Fatalf("NewSimilarChar() error = %v", err)
	}
	hits, err := sc.Match("nothing relevant here")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("Match() = %+v, want none", hits)
	}
}

func TestSimilarCharEmptyRowsRejected(t *testing.T) {
	if _, err := NewSimilarChar(process.None, nil); err == nil {
		t.Fatal("expected error for empty rows")
	}
}
