package bidi

import "unicode/utf16"

// clampRange normalizes a caller-supplied [start, end) code-unit range
// against a string of length n, per §7: out-of-range bounds are clamped
// to [0, n-1] rather than rejected. A negative start selects from the
// beginning, and an end that is negative or beyond n selects through the
// end of the string, matching
// "defaulting to the whole string" in §4.9.
func clampRange(n, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end < 0 || end > n {
		end = n
	}
	if start > n {
		start = n
	}
	if start > end {
		start = end
	}
	return start, end
}

// reorderSegments implements the reversal procedure shared by
// GetReorderSegments and GetReorderedIndices: find the maximum level
// present in [start, end), then for every threshold from that maximum
// down to one above the effective base level (the lowest odd level
// present, minus one — so an RTL sub-range reorders relative to its own
// base rather than always 0), reverse every maximal contiguous run
// whose level is at least that threshold.
//
// A trailing run of whitespace or isolate-formatting characters (by
// original character class, not the resolved one, since by the time a
// caller is reordering an arbitrary sub-range L1 may not have applied
// to it — see the package doc comment on per-line L1) sitting at the
// very end of range is excluded from every reversal whose run reaches
// that end (a run made up only of such characters is still reversed):
// otherwise it would visually jump to the line's opposite edge, which
// L1 exists specifically to prevent for whole paragraphs.
func reorderSegments(s string, result EmbeddingResult, start, end int) [][2]int {
	n := len(result.Levels)
	start, end = clampRange(n, start, end)
	T().Debugf("computing reorder segments over code units [%d,%d)", start, end)
	if start >= end {
		return nil
	}
	levels := result.Levels[start:end]

	maxLevel, minOddLevel := levels[0], byte(255)
	for _, lvl := range levels {
		if lvl > maxLevel {
			maxLevel = lvl
		}
		if lvl%2 == 1 && lvl < minOddLevel {
			minOddLevel = lvl
		}
	}
	baseLevel := byte(0)
	if minOddLevel < 255 {
		baseLevel = minOddLevel - 1
	}

	trailingWSFrom := end
	units := scanString(s)
	for i := end - 1; i >= start; i-- {
		if GetBidiCharType(runeAt(units, i)).In(WS | ISOLATE_INITIATORS | PDI) {
			trailingWSFrom = i
			continue
		}
		break
	}

	var segments [][2]int
	for threshold := maxLevel; threshold > baseLevel; threshold-- {
		i := start
		for i < end {
			if levels[i-start] < threshold {
				i++
				continue
			}
			j := i
			for j < end && levels[j-start] >= threshold {
				j++
			}
			segEnd := j
			if j == end && trailingWSFrom < j && trailingWSFrom > i {
				segEnd = trailingWSFrom
			}
			if segEnd > i {
				segments = append(segments, [2]int{i, segEnd - 1})
			}
			i = j
		}
	}
	return segments
}

// runeAt decodes the code point starting at UTF-16 code unit index i,
// handling a valid surrogate pair; it never advances past i+1.
func runeAt(units []uint16, i int) rune {
	r := rune(units[i])
	if utf16.IsSurrogate(r) && i+1 < len(units) {
		if combined := utf16.DecodeRune(r, rune(units[i+1])); combined != 0xFFFD {
			return combined
		}
	}
	return r
}

// GetReorderSegments implements §4.9's getReorderSegments: the set of
// (from, to) inclusive code-unit segments that the reversal procedure
// reverses to go from logical to visual order over [start, end).
func GetReorderSegments(s string, result EmbeddingResult, start, end int) [][2]int {
	return reorderSegments(s, result, start, end)
}

// GetReorderedIndices implements §4.9's getReorderedIndices: an index
// array whose i-th entry is the logical code-unit index that appears at
// visual position i. It is always a permutation of [start, end).
func GetReorderedIndices(s string, result EmbeddingResult, start, end int) []int {
	n := len(result.Levels)
	start, end = clampRange(n, start, end)
	indices := make([]int, end-start)
	for i := range indices {
		indices[i] = start + i
	}
	if start >= end {
		return indices
	}
	for _, seg := range reorderSegments(s, result, start, end) {
		lo, hi := seg[0]-start, seg[1]-start
		for lo < hi {
			indices[lo], indices[hi] = indices[hi], indices[lo]
			lo++
			hi--
		}
	}
	return indices
}

// GetReorderedString implements §4.9's getReorderedString: reorder the
// code units of s over [start, end) and substitute the mirrored glyph
// (§4.10) for any code point whose resolved level is odd. Surrogate
// pairs always carry equal levels (§8) and are moved as a unit.
func GetReorderedString(s string, result EmbeddingResult, start, end int) string {
	units := scanString(s)
	indices := GetReorderedIndices(s, result, start, end)
	mirrors := GetMirroredCharactersMap(s, result, start, end)
	T().Debugf("assembling reordered string over %d code unit(s), %d mirrored", len(indices), len(mirrors))

	out := make([]uint16, 0, len(indices))
	visited := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if visited[idx] {
			continue
		}
		if isHighSurrogateAt(units, idx) && idx+1 < len(units) && isLowSurrogateAt(units, idx+1) {
			visited[idx], visited[idx+1] = true, true
			out = append(out, units[idx], units[idx+1])
			continue
		}
		if isLowSurrogateAt(units, idx) && idx > 0 && isHighSurrogateAt(units, idx-1) {
			// a reversed pair reaches its low half first
			visited[idx-1], visited[idx] = true, true
			out = append(out, units[idx-1], units[idx])
			continue
		}
		visited[idx] = true
		if r, ok := mirrors[idx]; ok {
			out = append(out, uint16(r))
			continue
		}
		out = append(out, units[idx])
	}
	return string(utf16.Decode(out))
}

func isHighSurrogateAt(units []uint16, i int) bool {
	return units[i] >= 0xD800 && units[i] <= 0xDBFF
}

func isLowSurrogateAt(units []uint16, i int) bool {
	return units[i] >= 0xDC00 && units[i] <= 0xDFFF
}
