package bidi

import "testing"

func TestGetMirroredCharactersMapOnlyMarksOddLevels(t *testing.T) {
	s := "(a)"
	result := GetEmbeddingLevels(s, RTL) // brackets resolve to level 1 (see resolver_test.go)
	mirrors := GetMirroredCharactersMap(s, result, -1, -1)
	if m, ok := mirrors[0]; !ok || m != ')' {
		t.Errorf("mirrors[0] = %q, %v, want ')'", m, ok)
	}
	if m, ok := mirrors[2]; !ok || m != '(' {
		t.Errorf("mirrors[2] = %q, %v, want '('", m, ok)
	}
	if _, ok := mirrors[1]; ok {
		t.Error("the enclosed 'a' sits at an even level and should not be mirrored")
	}
}

func TestGetMirroredCharactersMapEmptyWhenAllLTR(t *testing.T) {
	s := "(a)"
	result := GetEmbeddingLevels(s, LTR)
	mirrors := GetMirroredCharactersMap(s, result, -1, -1)
	if len(mirrors) != 0 {
		t.Errorf("expected no mirrored characters for an all-level-0 string, got %v", mirrors)
	}
}
