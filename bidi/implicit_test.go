package bidi

import "testing"

func TestI1EvenLevelBumpsRByOneAndNumbersByTwo(t *testing.T) {
	levels := []byte{0, 0, 0, 0}
	classes := []CharType{L, R, EN, AN}
	seq := seqOf(classes, 0, L, L)
	resolveImplicitLevelsFor(levels, classes, seq)
	want := []byte{0, 1, 2, 2}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("position %d level = %d, want %d (%v)", i, levels[i], want[i], levels)
		}
	}
}

func TestI2OddLevelBumpsLEN_ANOnly(t *testing.T) {
	levels := []byte{1, 1, 1, 1}
	classes := []CharType{L, R, EN, AN}
	seq := seqOf(classes, 1, R, R)
	resolveImplicitLevelsFor(levels, classes, seq)
	want := []byte{2, 1, 2, 2}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("position %d level = %d, want %d (%v)", i, levels[i], want[i], levels)
		}
	}
}

func TestPropagateBNLevelsTakesPrecedingLevel(t *testing.T) {
	levels := []byte{0, 5, 5, 5}
	original := []CharType{L, RLE, R, BN}
	propagateBNLevels(levels, original, 0)
	if levels[1] != 0 {
		t.Errorf("BN-like level = %d, want 0 (preceding L)", levels[1])
	}
	if levels[3] != 5 {
		t.Errorf("trailing BN level = %d, want 5 (preceding R)", levels[3])
	}
}

func TestPropagateBNLevelsUsesParagraphBaseAtHead(t *testing.T) {
	levels := []byte{9}
	original := []CharType{BN}
	propagateBNLevels(levels, original, 1)
	if levels[0] != 1 {
		t.Errorf("leading BN level = %d, want paragraph base 1", levels[0])
	}
}

func TestL1ResetsSegmentSeparatorAndPrecedingWhitespace(t *testing.T) {
	levels := []byte{1, 1, 1, 1}
	original := []CharType{R, WS, WS, S}
	resetTrailingWhitespace(levels, original, 0)
	for i, lvl := range levels[1:] {
		if lvl != 0 {
			t.Errorf("position %d level = %d, want paragraph base 0", i+1, lvl)
		}
	}
	if levels[0] != 1 {
		t.Errorf("non-trailing R level changed to %d", levels[0])
	}
}

func TestL1ResetsTrailingWhitespaceAtParagraphEnd(t *testing.T) {
	levels := []byte{1, 1, 1}
	original := []CharType{R, WS, WS}
	resetTrailingWhitespace(levels, original, 0)
	if levels[1] != 0 || levels[2] != 0 {
		t.Errorf("trailing whitespace levels = %v, want [_,0,0]", levels)
	}
}

func TestL1SkipsTransparentlyThroughBNLikeCharacters(t *testing.T) {
	// R, RLE (BN-like), WS, WS at paragraph end: the RLE sits inside the
	// trailing run and must not stop the backward walk.
	levels := []byte{1, 1, 1, 1}
	original := []CharType{R, RLE, WS, WS}
	resetTrailingWhitespace(levels, original, 0)
	if levels[2] != 0 || levels[3] != 0 {
		t.Errorf("trailing whitespace past BN-like = %v, want both reset to 0", levels)
	}
	if levels[0] != 1 {
		t.Errorf("leading R level changed to %d", levels[0])
	}
}
