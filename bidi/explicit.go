package bidi

// statusFrame is one entry of the directional status stack (§3).
type statusFrame struct {
	level     byte
	override  CharType // 0 (none), L, or R
	isolate   bool
	initiator int // paragraph-relative cp offset of the isolate initiator, if isolate
}

// explicitState carries everything rules X1–X8 need for one paragraph:
// the directional status stack (a fixed-capacity array per §9, never a
// heap-allocated generic container), the three overflow/valid counters,
// and the isolate/PDI pairing built up along the way (BD9).
type explicitState struct {
	stack           [MaxDepth + 2]statusFrame
	top             int
	overflowIsolate int
	overflowEmbed   int
	validIsolate    int

	pairs map[int]int // paragraph-relative cp offset of initiator/PDI -> its pair, both directions
}

func newExplicitState(baseLevel byte) *explicitState {
	st := &explicitState{pairs: make(map[int]int)}
	st.stack[0] = statusFrame{level: baseLevel}
	st.top = 0
	return st
}

func (st *explicitState) cur() statusFrame {
	return st.stack[st.top]
}

func (st *explicitState) push(f statusFrame) {
	st.top++
	st.stack[st.top] = f
}

func (st *explicitState) pop() {
	if st.top > 0 {
		st.top--
	}
}

func nextOddLevel(level byte) byte {
	if level%2 == 0 {
		return level + 1
	}
	return level + 2
}

func nextEvenLevel(level byte) byte {
	if level%2 == 0 {
		return level + 2
	}
	return level + 1
}

// resolveExplicitLevels implements rules X1–X8 for one paragraph. It
// returns a level array and a (possibly rewritten, for overridden
// characters) class array, both indexed by position within the
// paragraph (0 == para.cpStart), plus the isolate/PDI pair map and a
// histogram of surviving classes used to skip later passes that have
// nothing to do (§9).
func resolveExplicitLevels(run *codePointRun, para Paragraph) ([]byte, []CharType, map[int]int, map[CharType]int) {
	n := para.cpEnd - para.cpStart + 1
	levels := make([]byte, n)
	classes := make([]CharType, n)
	copy(classes, run.class[para.cpStart:para.cpEnd+1])
	histogram := make(map[CharType]int, 23)

	st := newExplicitState(para.Level)
	for i := 0; i < n; i++ {
		ct := classes[i]
		switch {
		case ct == RLE || ct == LRE || ct == RLO || ct == LRO:
			levels[i] = st.cur().level
			var newLevel byte
			if ct == RLE || ct == RLO {
				newLevel = nextOddLevel(st.cur().level)
			} else {
				newLevel = nextEvenLevel(st.cur().level)
			}
			if newLevel <= MaxDepth && st.overflowIsolate == 0 && st.overflowEmbed == 0 {
				override := CharType(0)
				if ct == RLO {
					override = R
				} else if ct == LRO {
					override = L
				}
				st.push(statusFrame{level: newLevel, override: override})
			} else if st.overflowIsolate == 0 {
				st.overflowEmbed++
				T().Debugf("embedding overflow at cp offset %d: overflowEmbedding=%d", i, st.overflowEmbed)
			}

		case ct.In(ISOLATE_INITIATORS):
			levels[i] = st.cur().level
			if ov := st.cur().override; ov != 0 {
				classes[i] = ov
			}
			resolvedAsRLI := ct == RLI
			if ct == FSI {
				resolvedAsRLI = resolveFSIDirection(run, para, i)
			}
			var newLevel byte
			if resolvedAsRLI {
				newLevel = nextOddLevel(st.cur().level)
			} else {
				newLevel = nextEvenLevel(st.cur().level)
			}
			if newLevel <= MaxDepth && st.overflowIsolate == 0 && st.overflowEmbed == 0 {
				st.validIsolate++
				st.push(statusFrame{level: newLevel, isolate: true, initiator: i})
			} else {
				st.overflowIsolate++
				T().Debugf("isolate overflow at cp offset %d: overflowIsolate=%d", i, st.overflowIsolate)
			}

		case ct == PDI:
			if st.overflowIsolate > 0 {
				st.overflowIsolate--
				T().Debugf("isolate underflow absorbed at cp offset %d: overflowIsolate=%d", i, st.overflowIsolate)
			} else if st.validIsolate > 0 {
				// pop frames until and including the topmost isolate frame
				for st.top > 0 {
					top := st.cur()
					st.pop()
					if top.isolate {
						st.pairs[top.initiator] = i
						st.pairs[i] = top.initiator
						break
					}
				}
				st.overflowEmbed = 0
				st.validIsolate--
			}
			levels[i] = st.cur().level
			if ov := st.cur().override; ov != 0 {
				classes[i] = ov
			}

		case ct == PDF:
			if st.overflowIsolate == 0 {
				if st.overflowEmbed > 0 {
					st.overflowEmbed--
				} else if !st.cur().isolate && st.top > 0 {
					st.pop()
				}
			}
			levels[i] = st.cur().level

		case ct == B:
			levels[i] = para.Level

		default:
			levels[i] = st.cur().level
			if ov := st.cur().override; ov != 0 && ct != BN {
				classes[i] = ov
			}
		}
		histogram[classes[i]]++
	}

	T().Debugf("explicit levels resolved for paragraph base %d: %d isolate pair(s), overflowIsolate=%d overflowEmbedding=%d", para.Level, len(st.pairs)/2, st.overflowIsolate, st.overflowEmbed)
	return levels, classes, st.pairs, histogram
}

// resolveFSIDirection implements the FSI case of X5c: apply P2–P3
// starting just after the FSI, stopping at its own matching PDI (or the
// paragraph end if unmatched), and report whether the resolved
// direction is RTL (true, resolve as RLI) or LTR (false, resolve as LRI).
func resolveFSIDirection(run *codePointRun, para Paragraph, fsiOffset int) bool {
	cpFSI := para.cpStart + fsiOffset
	pdi := indexOfMatchingPDI(run, cpFSI, para.cpEnd)
	scanEnd := para.cpEnd
	if pdi >= 0 {
		scanEnd = pdi - 1
	}
	if cpFSI+1 > scanEnd {
		return false // empty isolate content defaults to LTR, i.e. LRI
	}
	return computeBaseLevel(run, cpFSI+1, scanEnd) == 1
}
