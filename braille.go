package dotcanvas

// brailleBase is U+2800, the empty braille pattern. Every 8-dot mask maps to
// exactly one codepoint in U+2800..U+28FF.
const brailleBase = '⠀'

// dotIndex maps an (x,y) position inside a 2x4 cell to its dot number.
// Dots follow the braille pattern ordering:
//
//	+------+
//	|(0)(3)|
//	|(1)(4)|
//	|(2)(5)|
//	|(6)(7)|
//	+------+
//
// Bit i of a cell mask is 1 iff dot i is set, so the unicode codepoint for a
// cell is simply 0x2800 + mask.
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
func dotIndex(x, y int) uint {
	if y < 3 {
		return uint(x*3 + y)
	}
	return uint(6 + x)
}

// BrailleRune converts an 8-dot mask to its unicode braille character.
func BrailleRune(mask uint8) rune {
	return brailleBase + rune(mask)
}

// MaskForRune is the inverse of BrailleRune. It reports false for runes
// outside the braille patterns block.
func MaskForRune(r rune) (uint8, bool) {
	if r < brailleBase || r > brailleBase+0xFF {
		return 0, false
	}
	return uint8(r - brailleBase), true
}
