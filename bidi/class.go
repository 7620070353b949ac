package bidi

import (
	utext "golang.org/x/text/unicode/bidi"
)

// CharType is a bidi character class, encoded as a single-bit flag so that
// sets of classes ("unions") can be tested with a plain bitwise AND. This
// is the representation every resolution phase in this package operates
// on; golang.org/x/text/unicode/bidi.Class (a small integer enumeration)
// is only ever consulted at the table boundary, in GetBidiCharType and
// fromUnicodeBidiClass below.
type CharType uint32

// The 23 UAX#9 bidi classes.
const (
	L CharType = 1 << iota
	R
	AL
	EN
	ES
	ET
	AN
	CS
	NSM
	BN
	B
	S
	WS
	ON
	LRE
	LRO
	RLE
	RLO
	PDF
	LRI
	RLI
	FSI
	PDI
)

// Named unions used throughout the resolver.
const (
	STRONG             = L | R | AL
	ISOLATE_INITIATORS = LRI | RLI | FSI
	NEUTRAL_ISOLATES   = B | S | WS | ON | FSI | LRI | RLI | PDI
	BN_LIKE            = BN | RLE | LRE | RLO | LRO | PDF
	TRAILING           = WS | ISOLATE_INITIATORS | PDI | S | B
)

// Is reports whether ct carries every flag in mask.
func (ct CharType) Is(mask CharType) bool {
	return ct&mask == mask
}

// In reports whether ct is a member of the union mask (at least one
// common flag).
func (ct CharType) In(mask CharType) bool {
	return ct&mask != 0
}

var classNames = map[CharType]string{
	L: "L", R: "R", AL: "AL", EN: "EN", ES: "ES", ET: "ET", AN: "AN",
	CS: "CS", NSM: "NSM", BN: "BN", B: "B", S: "S", WS: "WS", ON: "ON",
	LRE: "LRE", LRO: "LRO", RLE: "RLE", RLO: "RLO", PDF: "PDF",
	LRI: "LRI", RLI: "RLI", FSI: "FSI", PDI: "PDI",
}

// fromUnicodeBidiClass translates an x/text/unicode/bidi.Class value
// (the external per-rune table this package consumes, per the package
// doc) into our own bit-flag CharType.
func fromUnicodeBidiClass(c utext.Class) CharType {
	switch c {
	case utext.L:
		return L
	case utext.R:
		return R
	case utext.AL:
		return AL
	case utext.EN:
		return EN
	case utext.ES:
		return ES
	case utext.ET:
		return ET
	case utext.AN:
		return AN
	case utext.CS:
		return CS
	case utext.NSM:
		return NSM
	case utext.BN:
		return BN
	case utext.B:
		return B
	case utext.S:
		return S
	case utext.WS:
		return WS
	case utext.ON:
		return ON
	case utext.LRO:
		return LRO
	case utext.RLO:
		return RLO
	case utext.LRE:
		return LRE
	case utext.RLE:
		return RLE
	case utext.PDF:
		return PDF
	case utext.LRI:
		return LRI
	case utext.RLI:
		return RLI
	case utext.FSI:
		return FSI
	case utext.PDI:
		return PDI
	}
	return ON // unreachable for a conformant table, but total rather than panicky
}

// GetBidiCharType returns the bidi class of r as a bit-flag CharType.
func GetBidiCharType(r rune) CharType {
	props, _ := utext.LookupRune(r)
	return fromUnicodeBidiClass(props.Class())
}

// GetBidiCharTypeName returns the short UAX#9 name for a class, e.g. "L" or "AN".
func GetBidiCharTypeName(ct CharType) string {
	if name, ok := classNames[ct]; ok {
		return name
	}
	return "?"
}
