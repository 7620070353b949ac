package bidi

import "unicode/utf16"

// GetMirroredCharactersMap implements §4.10: walk the code points of s
// over [start, end), and wherever a code point's own resolved level is
// odd and it has a mirror glyph (GetMirroredCharacter), record its
// code-unit index mapped to the replacement character.
func GetMirroredCharactersMap(s string, result EmbeddingResult, start, end int) map[int]rune {
	units := scanString(s)
	n := len(units)
	start, end = clampRange(n, start, end)

	out := make(map[int]rune)
	T().Debugf("computing mirrored characters over code units [%d,%d)", start, end)
	for i := start; i < end; {
		r := runeAt(units, i)
		width := 1
		if utf16.IsSurrogate(rune(units[i])) && r > 0xFFFF {
			width = 2
		}
		if i < len(result.Levels) && result.Levels[i]%2 == 1 {
			if m, ok := GetMirroredCharacter(r); ok {
				out[i] = m
			}
		}
		i += width
	}
	return out
}
