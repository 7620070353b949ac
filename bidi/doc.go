/*
Package bidi implements the core of the Unicode Bidirectional Algorithm
(UAX#9): given a logical-order string and an optional base direction, it
resolves an embedding level for every character, reports paragraph
boundaries, and derives visual reordering indices and mirrored-bracket
replacements from those levels.

The package is deliberately narrow. It does not ship Unicode data table
generation, a public façade tailored to any particular caller, a CLI, or
line-wrapping/shaping logic — those are callers' concerns. It also does
not attempt line-break-aware re-resolution: a caller that segments
resolved text into display lines is expected to re-apply rule L1 itself
per line, the same way it would with golang.org/x/text/unicode/bidi.

Resolution pipeline

	scanCodePoints              — classify every rune, build code-point/code-unit maps
	splitParagraphs             — P1–P3
	resolveExplicitLevels       — X1–X8 (directional status stack)
	buildIsolatingRunSequences  — X10, BD13 (level runs joined by isolate/PDI pairs)
	resolveWeakTypes            — W1–W7
	resolveBracketPairs         — BD16, N0
	resolveNeutralTypes         — N1–N2
	resolveImplicitLevelsFor    — I1, I2
	resetTrailingWhitespace     — L1
	propagateBNLevels           — rule 5.2

Everything above operates on a mutable per-code-point class array and a
level array; invariants such as unmatched isolate initiators, BN-like
level propagation, and overflow counters are documented alongside the
corresponding phase.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"

// MaxDepth is the maximum embedding level / directional status stack
// depth permitted by UAX#9 rule X1.
const MaxDepth = 125

// MaxBracketPairs is the maximum bracket-pair stack depth permitted by
// rule BD16.
const MaxBracketPairs = 63
