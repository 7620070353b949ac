package bidi

import "unicode/utf16"

// codePointRun is the result of scanning a string once: one bidi class
// per code point, plus the two index maps needed to reconcile code-point
// indexing (what the resolver operates on) with code-unit indexing (what
// every external API speaks), per §3's "Index maps" and §9's note on the
// surrogate-indexing asymmetry.
type codePointRun struct {
	runes    []rune     // decoded code points, in order
	class    []CharType // original (pre-resolution) bidi class per code point
	cpToCu   []int      // code-point index -> code-unit offset where it starts
	cuToCp   []int      // code-unit index -> code-point index it belongs to
	cuLength int        // length of the source string in UTF-16 code units
}

// scanCodePoints walks s once, decoding UTF-16 code units into code
// points and classifying each with GetBidiCharType. Unpaired surrogate
// halves are treated as individual code points carrying their own
// (normally ON) class, matching §7's "Surrogate halves that do not form
// a pair are treated as individual code points".
func scanCodePoints(s []uint16) *codePointRun {
	run := &codePointRun{
		runes:    make([]rune, 0, len(s)),
		class:    make([]CharType, 0, len(s)),
		cpToCu:   make([]int, 0, len(s)),
		cuToCp:   make([]int, 0, len(s)),
		cuLength: len(s),
	}
	i := 0
	cp := 0
	for i < len(s) {
		r := rune(s[i])
		width := 1
		if utf16.IsSurrogate(r) && i+1 < len(s) {
			if combined := utf16.DecodeRune(r, rune(s[i+1])); combined != 0xFFFD {
				r = combined
				width = 2
			}
		}
		run.runes = append(run.runes, r)
		run.class = append(run.class, GetBidiCharType(r))
		run.cpToCu = append(run.cpToCu, i)
		for w := 0; w < width; w++ {
			run.cuToCp = append(run.cuToCp, cp)
		}
		i += width
		cp++
	}
	return run
}

// scanString is a convenience wrapper around scanCodePoints for callers
// working with native Go strings (UTF-8); it re-encodes to UTF-16 first
// since every external offset in this package (per §3/§6) is a UTF-16
// code unit, matching golang.org/x/text/unicode/bidi's convention.
func scanString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// numCodePoints returns the number of decoded code points.
func (r *codePointRun) numCodePoints() int {
	return len(r.runes)
}

// cuWidth returns the code-unit width (1 or 2) of code point cp.
func (r *codePointRun) cuWidth(cp int) int {
	if cp == len(r.cpToCu)-1 {
		return r.cuLength - r.cpToCu[cp]
	}
	return r.cpToCu[cp+1] - r.cpToCu[cp]
}
