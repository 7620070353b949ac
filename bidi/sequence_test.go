package bidi

import "testing"

func TestBuildLevelRunsSkipsBN(t *testing.T) {
	// levels:  0 0 1 1 0 0, with position 1 being a BN-collapsed control
	levels := []byte{0, 0, 1, 1, 0, 0}
	classes := []CharType{L, BN, R, R, BN, L}
	runs := buildLevelRuns(levels, classes)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].level != 0 || runs[1].level != 1 || runs[2].level != 0 {
		t.Errorf("run levels = %d,%d,%d", runs[0].level, runs[1].level, runs[2].level)
	}
	for _, r := range runs {
		for _, p := range r.positions {
			if classes[p] == BN {
				t.Errorf("BN position %d leaked into a level run", p)
			}
		}
	}
}

func TestAssembleSequenceSkipsChainedExplicitFormattingCharacters(t *testing.T) {
	// RLE RLE a PDF PDF b: the first RLE pushes to level 1, the second to
	// level 3, "a" resolves at level 3, both PDFs pop back down to level
	// 0, and "b" resolves at level 0. "a" and "b" land in separate level
	// runs (level 3 and level 0) with a chain of four explicit-formatting
	// characters between them. The sequence containing "b" must skip all
	// of RLE,RLE,PDF,PDF when walking backward for sos, landing on "a"'s
	// level (3, odd) rather than stopping at the nearest PDF's own
	// (post-pop, level 0) assigned level.
	s := "‫‫a‬‬b"
	cu := scanString(s)
	run := scanCodePoints(cu)
	para := splitParagraphs(run, LTR)[0]
	levels, classes, pairs, _ := resolveExplicitLevels(run, para)
	working := make([]CharType, len(classes))
	copy(working, classes)
	collapseBNLike(working)

	runs := buildLevelRuns(levels, working)
	seqs := buildIsolatingRunSequences(runs, classes, levels, pairs, para.Level)

	var bSeq *isolatingRunSequence
	for i := range seqs {
		for _, p := range seqs[i].positions {
			if classes[p] == L && levels[p] == 0 {
				bSeq = &seqs[i]
			}
		}
	}
	if bSeq == nil {
		t.Fatalf("could not find the sequence containing 'b' among %+v", seqs)
	}
	if bSeq.sos != R {
		t.Errorf("sos for 'b's sequence = %s, want R (from 'a's level 3, skipping the RLE/PDF chain)",
			GetBidiCharTypeName(bSeq.sos))
	}
}

func TestIsolatingRunSequencesChainAcrossIsolate(t *testing.T) {
	// A LRI B PDI C, all at base level 0: A and the LRI are one run at
	// level 0, B is its own run at level 2, the PDI and C close back out
	// at level 0 and must chain to the first run, not start a new one.
	s := "A⁦B⁩C"
	cu := scanString(s)
	run := scanCodePoints(cu)
	para := splitParagraphs(run, LTR)[0]
	levels, classes, pairs, _ := resolveExplicitLevels(run, para)
	working := make([]CharType, len(classes))
	copy(working, classes)
	collapseBNLike(working)

	runs := buildLevelRuns(levels, working)
	seqs := buildIsolatingRunSequences(runs, classes, levels, pairs, para.Level)

	found := false
	for _, seq := range seqs {
		if len(seq.positions) == 4 { // A, LRI, PDI, C chained together
			found = true
			want := []int{0, 1, 3, 4}
			for i, p := range want {
				if seq.positions[i] != p {
					t.Errorf("chained sequence positions = %v, want %v", seq.positions, want)
					break
				}
			}
		}
	}
	if !found {
		t.Errorf("expected a 4-position chained sequence, got sequences %+v", seqs)
	}
}
