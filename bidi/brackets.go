package bidi

import (
	utext "golang.org/x/text/unicode/bidi"
)

// Brackets require a disproportionate amount of work in UAX#9 (rule
// BD16/N0). A bracket pair is a pair of characters consisting of an
// opening paired bracket and a closing paired bracket such that the
// Bidi_Paired_Bracket property value of the former or its canonical
// equivalent equals the latter or its canonical equivalent.
//
// golang.org/x/text/unicode/bidi can tell us *that* a rune is a bracket
// (Properties.IsBracket/IsOpeningBracket), but it does not expose the
// paired rune, the canonical-equivalence mapping, or the mirror glyph
// through its public API. Those three tables are therefore authored
// here directly, as a representative subset of the full UCD
// BidiBrackets.txt / BidiMirroring.txt data (see SPEC_FULL.md §10.3).
// Code points are written as literal glyphs; each entry's comment names
// the characters, since look-alike brackets (e.g. U+2329 vs U+3008) are
// hard to tell apart by glyph alone.

type bracketPair struct {
	open, close rune
}

// bracketPairs lists the UAX#9 paired-bracket characters this package
// recognizes for rule N0/BD16.
var bracketPairs = []bracketPair{
	{'(', ')'}, // ( )
	{'[', ']'}, // [ ]
	{'{', '}'}, // { }
	{'༺', '༻'}, // TIBETAN MARK GUG RTAGS GYON / GYAS
	{'༼', '༽'}, // TIBETAN MARK ANG KHANG GYON / GYAS
	{'᚛', '᚜'}, // OGHAM FEATHER MARK / REVERSED FEATHER MARK
	{'⁅', '⁆'}, // LEFT/RIGHT SQUARE BRACKET WITH QUILL
	{'⁽', '⁾'}, // SUPERSCRIPT LEFT/RIGHT PARENTHESIS
	{'₍', '₎'}, // SUBSCRIPT LEFT/RIGHT PARENTHESIS
	{'⌈', '⌉'}, // LEFT/RIGHT CEILING
	{'⌊', '⌋'}, // LEFT/RIGHT FLOOR
	{'〈', '〉'}, // LEFT/RIGHT-POINTING ANGLE BRACKET (canonical dup of 3008/3009)
	{'❨', '❩'}, // MEDIUM LEFT/RIGHT PARENTHESIS ORNAMENT
	{'❪', '❫'}, // MEDIUM FLATTENED LEFT/RIGHT PARENTHESIS ORNAMENT
	{'❬', '❭'}, // MEDIUM LEFT/RIGHT-POINTING ANGLE BRACKET ORNAMENT
	{'❰', '❱'}, // HEAVY LEFT/RIGHT-POINTING ANGLE BRACKET ORNAMENT
	{'❲', '❳'}, // LIGHT LEFT/RIGHT TORTOISE SHELL BRACKET ORNAMENT
	{'❴', '❵'}, // MEDIUM LEFT/RIGHT CURLY BRACKET ORNAMENT
	{'⟦', '⟧'}, // MATHEMATICAL LEFT/RIGHT WHITE SQUARE BRACKET
	{'⟨', '⟩'}, // MATHEMATICAL LEFT/RIGHT ANGLE BRACKET
	{'⟪', '⟫'}, // MATHEMATICAL LEFT/RIGHT DOUBLE ANGLE BRACKET
	{'⟬', '⟭'}, // MATHEMATICAL LEFT/RIGHT WHITE TORTOISE SHELL BRACKET
	{'⟮', '⟯'}, // MATHEMATICAL LEFT/RIGHT FLATTENED PARENTHESIS
	{'⦃', '⦄'}, // LEFT/RIGHT WHITE CURLY BRACKET
	{'⦅', '⦆'}, // LEFT/RIGHT WHITE PARENTHESIS
	{'⦇', '⦈'}, // Z NOTATION LEFT/RIGHT IMAGE BRACKET
	{'⦉', '⦊'}, // Z NOTATION LEFT/RIGHT BINDING BRACKET
	{'⦋', '⦌'}, // LEFT/RIGHT SQUARE BRACKET WITH UNDERBAR
	{'⦑', '⦒'}, // LEFT/RIGHT ANGLE BRACKET WITH DOT
	{'⦓', '⦔'}, // LEFT/RIGHT ARC LESS-THAN BRACKET
	{'⦗', '⦘'}, // LEFT/RIGHT BLACK TORTOISE SHELL BRACKET
	{'⧘', '⧙'}, // LEFT/RIGHT WIGGLY FENCE
	{'⧚', '⧛'}, // LEFT/RIGHT DOUBLE WIGGLY FENCE
	{'⧼', '⧽'}, // LEFT/RIGHT-POINTING CURVED ANGLE BRACKET
	{'⸢', '⸣'}, // TOP LEFT/RIGHT HALF BRACKET
	{'⸤', '⸥'}, // BOTTOM LEFT/RIGHT HALF BRACKET
	{'⸦', '⸧'}, // LEFT/RIGHT SIDEWAYS U BRACKET
	{'⸨', '⸩'}, // LEFT/RIGHT DOUBLE PARENTHESIS
	{'〈', '〉'}, // LEFT/RIGHT ANGLE BRACKET
	{'《', '》'}, // LEFT/RIGHT DOUBLE ANGLE BRACKET
	{'「', '」'}, // LEFT/RIGHT CORNER BRACKET
	{'『', '』'}, // LEFT/RIGHT WHITE CORNER BRACKET
	{'【', '】'}, // LEFT/RIGHT BLACK LENTICULAR BRACKET
	{'〔', '〕'}, // LEFT/RIGHT TORTOISE SHELL BRACKET
	{'〖', '〗'}, // LEFT/RIGHT WHITE LENTICULAR BRACKET
	{'〘', '〙'}, // LEFT/RIGHT WHITE TORTOISE SHELL BRACKET
	{'〚', '〛'}, // LEFT/RIGHT WHITE SQUARE BRACKET
	{'﹙', '﹚'}, // SMALL LEFT/RIGHT PARENTHESIS
	{'﹛', '﹜'}, // SMALL LEFT/RIGHT CURLY BRACKET
	{'﹝', '﹞'}, // SMALL LEFT/RIGHT TORTOISE SHELL BRACKET
	{'（', '）'}, // FULLWIDTH LEFT/RIGHT PARENTHESIS
	{'［', '］'}, // FULLWIDTH LEFT/RIGHT SQUARE BRACKET
	{'｛', '｝'}, // FULLWIDTH LEFT/RIGHT CURLY BRACKET
	{'｟', '｠'}, // FULLWIDTH LEFT/RIGHT WHITE PARENTHESIS
	{'｢', '｣'}, // HALFWIDTH LEFT/RIGHT CORNER BRACKET
}

var openToClose = make(map[rune]rune, len(bracketPairs))
var closeToOpen = make(map[rune]rune, len(bracketPairs))

func init() {
	for _, p := range bracketPairs {
		openToClose[p.open] = p.close
		closeToOpen[p.close] = p.open
	}
}

// canonicalEquivalents maps a bracket rune to the canonical representative
// used when matching bracket pairs in rule N0 ("or its canonical
// equivalent"). UAX#9's own worked example is the angle bracket pair
// U+2329/U+232A, which is canonically equivalent to U+3008/U+3009.
var canonicalEquivalents = map[rune]rune{
	'〈': '〈',
	'〉': '〉',
}

// OpeningToClosingBracket returns the paired closing bracket for an
// opening bracket rune, and whether r is a recognized opening bracket.
func OpeningToClosingBracket(r rune) (rune, bool) {
	c, ok := openToClose[r]
	return c, ok
}

// ClosingToOpeningBracket returns the paired opening bracket for a
// closing bracket rune, and whether r is a recognized closing bracket.
func ClosingToOpeningBracket(r rune) (rune, bool) {
	o, ok := closeToOpen[r]
	return o, ok
}

// GetCanonicalBracket returns the canonical-equivalence representative
// for a bracket rune, or r unchanged if it has none.
func GetCanonicalBracket(r rune) rune {
	if c, ok := canonicalEquivalents[r]; ok {
		return c
	}
	return r
}

// isOpeningBracket and isClosingBracket consult x/text/unicode/bidi for
// the Bidi_Paired_Bracket_Type property, then fall back to our own table
// for runes x/text doesn't classify as brackets but that this package
// still wants to treat as such (none currently; kept for symmetry with
// the property-based check UAX#9 actually specifies).
func isOpeningBracket(r rune) bool {
	props, _ := utext.LookupRune(r)
	if props.IsBracket() {
		return props.IsOpeningBracket()
	}
	_, ok := openToClose[r]
	return ok
}

func isClosingBracket(r rune) bool {
	props, _ := utext.LookupRune(r)
	if props.IsBracket() {
		return !props.IsOpeningBracket()
	}
	_, ok := closeToOpen[r]
	return ok
}

// bracketsMatch reports whether open/close form a bracket pair, either
// exactly or through canonical equivalence, per rule BD16 step 2.
func bracketsMatch(open, close rune) bool {
	if c, ok := openToClose[open]; ok && c == close {
		return true
	}
	canonOpen := GetCanonicalBracket(open)
	canonClose := GetCanonicalBracket(close)
	if c, ok := openToClose[canonOpen]; ok && c == canonClose {
		return true
	}
	return false
}

// extraMirrors and bracketPairs list characters for which the mirror glyph substitution
// (§4.10) applies. Every bracket pair is implicitly mirrored (opening
// mirrors to closing and vice versa); a handful of additional
// non-bracket mirrored punctuation and math operators are added
// explicitly, matching the shape of UAX#9's BidiMirroring.txt.
var extraMirrors = map[rune]rune{
	'<': '>', // < >
	'≤': '≥', // ≤ ≥
	'≦': '≧', // ≦ ≧
	'≪': '≫', // ≪ ≫
	'‹': '›', // SINGLE LEFT/RIGHT-POINTING ANGLE QUOTATION MARK
	'«': '»', // LEFT/RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK («»)
	'←': '→', // LEFTWARDS / RIGHTWARDS ARROW
	'∈': '∋', // ELEMENT OF / CONTAINS AS MEMBER
	'⊂': '⊃', // SUBSET OF / SUPERSET OF
	'⊆': '⊇', // SUBSET OF OR EQUAL TO / SUPERSET OF OR EQUAL TO
}

var mirrorMap map[rune]rune

func init() {
	mirrorMap = make(map[rune]rune, 2*len(bracketPairs)+2*len(extraMirrors))
	for _, p := range bracketPairs {
		mirrorMap[p.open] = p.close
		mirrorMap[p.close] = p.open
	}
	for a, b := range extraMirrors {
		mirrorMap[a] = b
		mirrorMap[b] = a
	}
}

// GetMirroredCharacter returns the glyph r should be replaced by when it
// appears inside a right-to-left run, and whether r has one.
func GetMirroredCharacter(r rune) (rune, bool) {
	m, ok := mirrorMap[r]
	return m, ok
}
