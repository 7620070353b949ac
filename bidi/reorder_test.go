package bidi

import "testing"

func TestClampRangeDefaultsToWholeString(t *testing.T) {
	start, end := clampRange(10, -1, -1)
	if start != 0 || end != 10 {
		t.Errorf("clampRange(10,-1,-1) = (%d,%d), want (0,10)", start, end)
	}
}

func TestClampRangeClampsOutOfBounds(t *testing.T) {
	start, end := clampRange(5, -3, 100)
	if start != 0 || end != 5 {
		t.Errorf("clampRange(5,-3,100) = (%d,%d), want (0,5)", start, end)
	}
}

func TestClampRangeStartPastEndCollapses(t *testing.T) {
	start, end := clampRange(5, 8, 3)
	if start != end {
		t.Errorf("clampRange(5,8,3) = (%d,%d), want start==end", start, end)
	}
}

func TestGetReorderSegmentsPlainLTRHasNoSegments(t *testing.T) {
	s := "abc"
	result := GetEmbeddingLevels(s, LTR)
	if segs := GetReorderSegments(s, result, -1, -1); len(segs) != 0 {
		t.Errorf("expected no reorder segments for all-level-0 text, got %v", segs)
	}
}

func TestGetReorderSegmentsWholeRTLParagraphReversesOnce(t *testing.T) {
	s := "אבג" // three Hebrew letters
	result := GetEmbeddingLevels(s, RTL)
	segs := GetReorderSegments(s, result, -1, -1)
	if len(segs) != 1 || segs[0] != [2]int{0, 2} {
		t.Errorf("segments = %v, want a single [0,2] reversal", segs)
	}
}

func TestGetReorderedIndicesIsIdentityForPlainLTR(t *testing.T) {
	s := "abc"
	result := GetEmbeddingLevels(s, LTR)
	indices := GetReorderedIndices(s, result, -1, -1)
	for i, idx := range indices {
		if idx != i {
			t.Errorf("indices[%d] = %d, want %d (identity permutation)", i, idx, i)
		}
	}
}

func TestGetReorderedIndicesReversesRTLParagraph(t *testing.T) {
	s := "אבג"
	result := GetEmbeddingLevels(s, RTL)
	indices := GetReorderedIndices(s, result, -1, -1)
	want := []int{2, 1, 0}
	for i, idx := range indices {
		if idx != want[i] {
			t.Errorf("indices = %v, want %v", indices, want)
			break
		}
	}
}

func TestGetReorderedStringMirrorsBracketsUnderRTL(t *testing.T) {
	s := "א(x)"
	result := GetEmbeddingLevels(s, RTL)
	out := GetReorderedString(s, result, -1, -1)
	if len([]rune(out)) != len([]rune(s)) {
		t.Fatalf("reordered string %q has a different rune count than input %q", out, s)
	}
	if want := "(x)א"; out != want {
		t.Errorf("reordered string = %q, want %q (brackets mirrored)", out, want)
	}
}

func TestGetReorderedIndicesHandlesSurrogatePairsAsUnits(t *testing.T) {
	s := "a\U0001F600b" // EMOJI is a surrogate pair in UTF-16
	result := GetEmbeddingLevels(s, LTR)
	indices := GetReorderedIndices(s, result, -1, -1)
	if len(indices) != len(scanString(s)) {
		t.Fatalf("got %d indices, want %d code units", len(indices), len(scanString(s)))
	}
}
