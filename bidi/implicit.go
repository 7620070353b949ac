package bidi

// resolveImplicitLevelsFor implements rules I1/I2 over one isolating run
// sequence: by now every position named in seq.positions holds one of
// L, R, EN, or AN (N0–N2 leave nothing else behind), so the rule is a
// straight per-character level bump keyed on the character's resolved
// class and the parity of its own (not the sequence's nominal) level —
// a sequence can itself contain several distinct embedding levels only
// if BN-like characters were collapsed out of what would otherwise have
// been separate runs, so parity is read from each position directly.
func resolveImplicitLevelsFor(levels []byte, classes []CharType, seq isolatingRunSequence) {
	T().Debugf("resolving implicit levels (I1-I2) over %d position(s) at level %d", len(seq.positions), seq.level)
	for _, i := range seq.positions {
		even := levels[i]%2 == 0
		switch classes[i] {
		case R:
			if even {
				levels[i]++
			}
		case EN, AN:
			if even {
				levels[i] += 2
			} else {
				levels[i]++
			}
		case L:
			if !even {
				levels[i]++
			}
		}
	}
}

// propagateBNLevels implements rule 5.2's level side effect for the
// "retaining BNs" variant this package follows (§3, §9): every BN-like
// position (identified via the untouched originalClasses array, since
// the working class array collapsed them to a uniform BN earlier) takes
// the level of the nearest preceding non-BN-like code point in the
// paragraph, or the paragraph's base level if none precedes it.
func propagateBNLevels(levels []byte, originalClasses []CharType, paraLevel byte) {
	T().Debugf("propagating BN-like levels (rule 5.2) over %d position(s), paragraph base %d", len(originalClasses), paraLevel)
	last := paraLevel
	for i, ct := range originalClasses {
		if ct.In(BN_LIKE) {
			levels[i] = last
		} else {
			last = levels[i]
		}
	}
}

// resetTrailingWhitespace implements rule L1. It consults
// originalClasses (the pre-resolution class array) since by this point
// the working class array has been completely overwritten by W1–N2 and
// no longer remembers which positions were whitespace, a segment or
// paragraph separator, or isolate formatting characters.
//
// Call this *before* propagateBNLevels, not after. A naive
// implementation runs 5.2's BN-level propagation first and then walks
// backward for L1, stopping as soon as it meets a position whose
// original class isn't in TRAILING — which includes BN-like positions,
// so a formatting character sitting inside an otherwise-trailing
// whitespace run incorrectly truncates the reset and leaves it at a
// stale embedding level. Treating BN-like positions as transparent here
// (skip over them without resetting, without stopping) and only
// propagating their level from neighbors afterward gives every
// BN-like position the level its final, L1-corrected neighbor ends up
// with, rather than the level that neighbor happened to have before L1
// ran.
//
// This package does not perform line breaking (§4 Non-goals), so it
// applies L1 once across the whole paragraph, treating the paragraph
// end as the line end; a caller doing its own line layout should re-run
// L1 per visual line using the exported level array and the original
// text, per the guidance in the package doc comment.
func resetTrailingWhitespace(levels []byte, originalClasses []CharType, paraLevel byte) {
	T().Debugf("resetting trailing whitespace (rule L1) over %d position(s), paragraph base %d", len(levels), paraLevel)
	n := len(levels)
	resetRun := func(from int) {
		for j := from; j >= 0; j-- {
			ct := originalClasses[j]
			switch {
			case ct.In(TRAILING):
				levels[j] = paraLevel
			case ct.In(BN_LIKE):
				continue
			default:
				return
			}
		}
	}
	for k := 0; k < n; k++ {
		if originalClasses[k] == S || originalClasses[k] == B {
			levels[k] = paraLevel
			resetRun(k - 1)
		}
	}
	resetRun(n - 1)
}
