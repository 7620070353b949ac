package bidi

// resolveWeakTypes implements rules W1–W7. It operates in place on
// classes, restricted to the positions named by seq.positions, in
// sequence order; seq.sos/seq.eos stand in for the fictitious boundary
// characters the rules reference ("the start/end of sequence").
//
// Rules W4–W6 need to look at the class a neighbor has *after* the
// earlier rules rewrote it to decide whether a rewrite propagates (e.g.
// a run of ET immediately following a just-resolved EN), so this
// operates on the single
// mutable classes array throughout — exactly as UAX#9 describes each
// rule consuming the previous rule's output.
func resolveWeakTypes(classes []CharType, seq isolatingRunSequence) {
	T().Debugf("resolving weak types (W1-W7) over %d position(s) at level %d", len(seq.positions), seq.level)
	pos := seq.positions

	// W1: each NSM takes the class of the previous character, or sos if
	// it is the first; isolate initiators and PDI immediately before an
	// NSM resolve it to ON instead of being inherited verbatim.
	prev := seq.sos
	for _, i := range pos {
		if classes[i] == NSM {
			if prev.In(ISOLATE_INITIATORS) || prev == PDI {
				classes[i] = ON
			} else {
				classes[i] = prev
			}
		}
		prev = classes[i]
	}

	// W2: each EN takes AN if the nearest preceding strong type (L, R,
	// AL, or sos) is AL.
	lastStrong := seq.sos
	for _, i := range pos {
		switch classes[i] {
		case L, R, AL:
			lastStrong = classes[i]
		case EN:
			if lastStrong == AL {
				classes[i] = AN
			}
		}
	}

	// W3: every AL becomes R.
	for _, i := range pos {
		if classes[i] == AL {
			classes[i] = R
		}
	}

	// W4: a single ES between two EN becomes EN; a single CS between two
	// numbers of the same type (EN-EN or AN-AN) becomes that type.
	for k, i := range pos {
		if classes[i] != ES && classes[i] != CS {
			continue
		}
		if k == 0 || k == len(pos)-1 {
			continue
		}
		before, after := classes[pos[k-1]], classes[pos[k+1]]
		if classes[i] == ES {
			if before == EN && after == EN {
				classes[i] = EN
			}
		} else { // CS
			if before == EN && after == EN {
				classes[i] = EN
			} else if before == AN && after == AN {
				classes[i] = AN
			}
		}
	}

	// W5: a run of ET adjacent to EN (on either side, before this rule
	// runs) becomes EN.
	n := len(pos)
	for k := 0; k < n; {
		if classes[pos[k]] != ET {
			k++
			continue
		}
		start := k
		for k < n && classes[pos[k]] == ET {
			k++
		}
		end := k - 1
		before := seq.sos
		if start > 0 {
			before = classes[pos[start-1]]
		}
		after := seq.eos
		if end < n-1 {
			after = classes[pos[end+1]]
		}
		if before == EN || after == EN {
			for j := start; j <= end; j++ {
				classes[pos[j]] = EN
			}
		}
	}

	// W6: all remaining ES, ET, CS become ON.
	for _, i := range pos {
		switch classes[i] {
		case ES, ET, CS:
			classes[i] = ON
		}
	}

	// W7: an EN takes L if the nearest preceding strong type (L, R, or
	// sos) is L.
	lastStrong = seq.sos
	for _, i := range pos {
		switch classes[i] {
		case L, R:
			lastStrong = classes[i]
		case EN:
			if lastStrong == L {
				classes[i] = L
			}
		}
	}
}
