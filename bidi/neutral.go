package bidi

// bracketPairPos is one matched bracket pair located by BD16, as
// paragraph-relative code-point offsets.
type bracketPairPos struct {
	open, close int
}

// locateBracketPairs implements BD16: scan the sequence left to right,
// pushing opening bracket positions onto a fixed-capacity stack (at most
// MaxBracketPairs deep, per §9's "no unbounded allocation for bracket
// tracking"). A closing bracket is matched against the nearest
// still-open entry whose rune forms a pair (exactly or canonically,
// BD16 step 2); any entries above that point are discarded unmatched.
// If an opening bracket is found with no room left on the stack, BD16
// itself says to stop processing for the remainder of the sequence —
// not just skip that one opener — so no further opening or closing
// bracket in this sequence is considered a bracket at all past that
// point.
func locateBracketPairs(classes []CharType, runes []rune, seq isolatingRunSequence) []bracketPairPos {
	type stackEntry struct {
		pos int
		r   rune
	}
	var stack []stackEntry
	var pairs []bracketPairPos

	for _, i := range seq.positions {
		if classes[i] != ON {
			continue
		}
		r := runes[i]
		if isOpeningBracket(r) {
			if len(stack) >= MaxBracketPairs {
				break
			}
			stack = append(stack, stackEntry{pos: i, r: r})
			continue
		}
		if isClosingBracket(r) {
			for k := len(stack) - 1; k >= 0; k-- {
				if bracketsMatch(stack[k].r, r) {
					pairs = append(pairs, bracketPairPos{open: stack[k].pos, close: i})
					stack = stack[:k]
					break
				}
			}
		}
	}

	for a := 1; a < len(pairs); a++ {
		for b := a; b > 0 && pairs[b-1].open > pairs[b].open; b-- {
			pairs[b-1], pairs[b] = pairs[b], pairs[b-1]
		}
	}
	return pairs
}

// strongDirection collapses a resolved class to the strong direction it
// counts as for N0/N1 purposes: EN and AN count as R (having already
// passed through W1–W7, no AL should remain by this point).
func strongDirection(ct CharType) (CharType, bool) {
	switch ct {
	case L:
		return L, true
	case R, EN, AN:
		return R, true
	default:
		return 0, false
	}
}

// resolveBracketPairs implements rule N0. classes is mutated in place;
// originalClasses is the pre-W1 class array, consulted only to find NSM
// runs trailing a bracket that N0 just resolved.
func resolveBracketPairs(classes, originalClasses []CharType, runes []rune, seq isolatingRunSequence) {
	e := boolToLevelClass(seq.level)
	o := oppositeDirection(e)

	pairs := locateBracketPairs(classes, runes, seq)
	T().Debugf("resolving bracket pairs (BD16, N0) over %d position(s) at level %d: %d pair(s) found", len(seq.positions), seq.level, len(pairs))
	posIndex := make(map[int]int, len(seq.positions))
	for k, p := range seq.positions {
		posIndex[p] = k
	}

	for _, pair := range pairs {
		openK, closeK := posIndex[pair.open], posIndex[pair.close]

		foundE, foundO := false, false
		for k := openK + 1; k < closeK; k++ {
			if dir, ok := strongDirection(classes[seq.positions[k]]); ok {
				if dir == e {
					foundE = true
				} else {
					foundO = true
				}
			}
		}

		var resolved CharType
		switch {
		case foundE:
			resolved = e
		case foundO:
			resolved = contextBeforeBracket(classes, seq, openK, e, o)
		default:
			continue // no strong type enclosed: leave for N1/N2
		}

		classes[pair.open] = resolved
		classes[pair.close] = resolved
		propagateNSMAfterBracket(classes, originalClasses, seq, posIndex[pair.open], resolved)
		propagateNSMAfterBracket(classes, originalClasses, seq, posIndex[pair.close], resolved)
	}
}

// contextBeforeBracket implements N0(c): when the bracket pair encloses
// only the opposite-of-embedding strong type, look further back in the
// sequence (to sos) for the nearest strong type; if it's the opposite
// direction too, the brackets take that direction, else they take e.
func contextBeforeBracket(classes []CharType, seq isolatingRunSequence, openK int, e, o CharType) CharType {
	for k := openK - 1; k >= 0; k-- {
		if dir, ok := strongDirection(classes[seq.positions[k]]); ok {
			if dir == o {
				return o
			}
			return e
		}
	}
	if seq.sos == o {
		return o
	}
	return e
}

func propagateNSMAfterBracket(classes, originalClasses []CharType, seq isolatingRunSequence, bracketK int, resolved CharType) {
	for k := bracketK + 1; k < len(seq.positions); k++ {
		i := seq.positions[k]
		if originalClasses[i] != NSM {
			break
		}
		classes[i] = resolved
	}
}

func boolToLevelClass(level byte) CharType {
	if level%2 == 1 {
		return R
	}
	return L
}

func oppositeDirection(d CharType) CharType {
	if d == L {
		return R
	}
	return L
}

// resolveNeutralTypes implements N1/N2 over the remaining neutral-or-
// isolate-formatting characters (NEUTRAL_ISOLATES) of one isolating run
// sequence.
func resolveNeutralTypes(classes []CharType, seq isolatingRunSequence) {
	pos := seq.positions
	n := len(pos)
	e := boolToLevelClass(seq.level)
	T().Debugf("resolving neutral types (N1-N2) over %d position(s) at level %d", n, seq.level)

	for k := 0; k < n; {
		if !classes[pos[k]].In(NEUTRAL_ISOLATES) {
			k++
			continue
		}
		start := k
		for k < n && classes[pos[k]].In(NEUTRAL_ISOLATES) {
			k++
		}
		end := k - 1

		before := seq.sos
		if start > 0 {
			if dir, ok := strongDirection(classes[pos[start-1]]); ok {
				before = dir
			}
		}
		after := seq.eos
		if end < n-1 {
			if dir, ok := strongDirection(classes[pos[end+1]]); ok {
				after = dir
			}
		}

		var resolved CharType
		if before == after && (before == L || before == R) {
			resolved = before // N1
		} else {
			resolved = e // N2
		}
		for j := start; j <= end; j++ {
			classes[pos[j]] = resolved
		}
	}
}
