package bidi

// resolvedParagraph is one paragraph's internal resolution result:
// code-point-indexed levels plus the isolate/PDI pairs found within it,
// both still relative to the paragraph's own cpStart.
type resolvedParagraph struct {
	Paragraph
	levels []byte
	pairs  map[int]int
}

// EmbeddingResult is the public result of GetEmbeddingLevels (§6): a
// per-code-unit level array covering the whole input string, the
// paragraphs it was split into, and the isolate-initiator/PDI pairing
// BD9 found, keyed by code-unit offset for downstream consumers (the
// reordering and mirroring helpers take an EmbeddingResult as input
// rather than recomputing it).
type EmbeddingResult struct {
	Levels         []byte        // one entry per UTF-16 code unit of the source string
	Paragraphs     []Paragraph   // code-unit offsets, in source order
	IsolationPairs map[int]int   // code-unit offset -> paired code-unit offset, both directions
	run            *codePointRun // retained for reordering/mirroring; not part of the public contract
}

// GetEmbeddingLevels implements §6's getEmbeddingLevels: it runs the
// full core algorithm (P1–P3, X1–X8, X10/BD13, W1–W7, N0–N2, I1/I2, L1)
// over s and returns one resolved embedding level per UTF-16 code unit,
// plus the paragraph boundaries and isolate pairing needed by the
// reordering and mirroring helpers. dir selects Auto, LTR, or RTL;
// anything else is treated as Auto.
func GetEmbeddingLevels(s string, dir BaseDirection) EmbeddingResult {
	cu := scanString(s)
	run := scanCodePoints(cu)
	paras := splitParagraphs(run, dir)
	T().Debugf("resolving %d paragraph(s), %d code units", len(paras), run.cuLength)

	levels := make([]byte, run.cuLength)
	pairs := make(map[int]int)
	pubParas := make([]Paragraph, 0, len(paras))

	for _, para := range paras {
		resolved := resolveParagraph(run, para)
		for cp, lvl := range resolved.levels {
			cuStart := run.cpToCu[para.cpStart+cp]
			for w := 0; w < run.cuWidth(para.cpStart+cp); w++ {
				levels[cuStart+w] = lvl
			}
		}
		for a, b := range resolved.pairs {
			cuA := run.cpToCu[para.cpStart+a]
			cuB := run.cpToCu[para.cpStart+b]
			pairs[cuA] = cuB
		}
		pubParas = append(pubParas, resolved.Paragraph)
	}

	return EmbeddingResult{
		Levels:         levels,
		Paragraphs:     pubParas,
		IsolationPairs: pairs,
		run:            run,
	}
}

func resolveParagraph(run *codePointRun, para Paragraph) resolvedParagraph {
	levels, classes, pairs, histogram := resolveExplicitLevels(run, para)
	n := len(classes)

	originalClasses := make([]CharType, n)
	copy(originalClasses, classes)

	runes := run.runes[para.cpStart : para.cpEnd+1]

	workingClasses := make([]CharType, n)
	copy(workingClasses, classes)
	collapseBNLike(workingClasses)

	runs := buildLevelRuns(levels, workingClasses)
	sequences := buildIsolatingRunSequences(runs, classes, levels, pairs, para.Level)
	T().Debugf("paragraph base level %d: %d level run(s), %d isolating run sequence(s)", para.Level, len(runs), len(sequences))
	runNeutrals := needsWeakOrNeutralResolution(histogram)
	for _, seq := range sequences {
		if runNeutrals {
			resolveWeakTypes(workingClasses, seq)
			resolveBracketPairs(workingClasses, originalClasses, runes, seq)
			resolveNeutralTypes(workingClasses, seq)
		}
		resolveImplicitLevelsFor(levels, workingClasses, seq)
	}

	resetTrailingWhitespace(levels, originalClasses, para.Level)
	propagateBNLevels(levels, originalClasses, para.Level)

	return resolvedParagraph{Paragraph: para, levels: levels, pairs: pairs}
}

// needsWeakOrNeutralResolution implements the §9 fast path: when a
// paragraph contains nothing but L and R (no digits, no weak types, no
// neutrals or brackets, no explicit formatting to collapse), W1–W7 and
// N0–N2 have nothing to do for any of its sequences; I1/I2 still run
// regardless — they are what actually raise R's level in an LTR
// paragraph and L's level in an RTL one.
func needsWeakOrNeutralResolution(histogram map[CharType]int) bool {
	for ct, count := range histogram {
		if count == 0 || ct == L || ct == R {
			continue
		}
		return true
	}
	return false
}
