// Package font renders text with a built-in 5x7 bitmap font. Glyphs are
// blitted at integer scales with a fixed advance of 6*scale pixels per
// character, so string widths are exact and centering is pixel-accurate.
package font

// glyphs covers printable ASCII 32..126. Each glyph is 7 rows of 5 column
// bits, most significant bit leftmost (mask 0x10).
var glyphs = [95][7]byte{
	/* 32 ' ' */ {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	/* 33 '!' */ {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	/* 34 '"' */ {0x0A, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00},
	/* 35 '#' */ {0x0A, 0x1F, 0x0A, 0x0A, 0x1F, 0x0A, 0x00},
	/* 36 '$' */ {0x04, 0x0F, 0x14, 0x0E, 0x05, 0x1E, 0x04},
	/* 37 '%' */ {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03},
	/* 38 '&' */ {0x08, 0x14, 0x14, 0x08, 0x15, 0x12, 0x0D},
	/* 39 ''' */ {0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00},
	/* 40 '(' */ {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02},
	/* 41 ')' */ {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08},
	/* 42 '*' */ {0x00, 0x04, 0x15, 0x0E, 0x15, 0x04, 0x00},
	/* 43 '+' */ {0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00},
	/* 44 ',' */ {0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x08},
	/* 45 '-' */ {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	/* 46 '.' */ {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04},
	/* 47 '/' */ {0x01, 0x01, 0x02, 0x04, 0x08, 0x10, 0x10},
	/* 48 '0' */ {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	/* 49 '1' */ {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	/* 50 '2' */ {0x0E, 0x11, 0x01, 0x06, 0x08, 0x10, 0x1F},
	/* 51 '3' */ {0x0E, 0x11, 0x01, 0x06, 0x01, 0x11, 0x0E},
	/* 52 '4' */ {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	/* 53 '5' */ {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	/* 54 '6' */ {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	/* 55 '7' */ {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	/* 56 '8' */ {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	/* 57 '9' */ {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	/* 58 ':' */ {0x00, 0x00, 0x04, 0x00, 0x00, 0x04, 0x00},
	/* 59 ';' */ {0x00, 0x00, 0x04, 0x00, 0x00, 0x04, 0x08},
	/* 60 '<' */ {0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02},
	/* 61 '=' */ {0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00},
	/* 62 '>' */ {0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08},
	/* 63 '?' */ {0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04},
	/* 64 '@' */ {0x0E, 0x11, 0x17, 0x15, 0x17, 0x10, 0x0E},
	/* 65 'A' */ {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	/* 66 'B' */ {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	/* 67 'C' */ {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	/* 68 'D' */ {0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E},
	/* 69 'E' */ {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	/* 70 'F' */ {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	/* 71 'G' */ {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	/* 72 'H' */ {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	/* 73 'I' */ {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	/* 74 'J' */ {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	/* 75 'K' */ {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	/* 76 'L' */ {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	/* 77 'M' */ {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	/* 78 'N' */ {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	/* 79 'O' */ {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	/* 80 'P' */ {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	/* 81 'Q' */ {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	/* 82 'R' */ {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	/* 83 'S' */ {0x0E, 0x11, 0x10, 0x0E, 0x01, 0x11, 0x0E},
	/* 84 'T' */ {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	/* 85 'U' */ {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	/* 86 'V' */ {0x11, 0x11, 0x11, 0x11, 0x0A, 0x0A, 0x04},
	/* 87 'W' */ {0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11},
	/* 88 'X' */ {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	/* 89 'Y' */ {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	/* 90 'Z' */ {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	/* 91 '[' */ {0x0E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0E},
	/* 92 '\' */ {0x10, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01},
	/* 93 ']' */ {0x0E, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0E},
	/* 94 '^' */ {0x04, 0x0A, 0x11, 0x00, 0x00, 0x00, 0x00},
	/* 95 '_' */ {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1F},
	/* 96 '`' */ {0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00},
	/* 97 'a' */ {0x00, 0x00, 0x0E, 0x01, 0x0F, 0x11, 0x0F},
	/* 98 'b' */ {0x10, 0x10, 0x1E, 0x11, 0x11, 0x11, 0x1E},
	/* 99 'c' */ {0x00, 0x00, 0x0E, 0x11, 0x10, 0x11, 0x0E},
	/*100 'd' */ {0x01, 0x01, 0x0F, 0x11, 0x11, 0x11, 0x0F},
	/*101 'e' */ {0x00, 0x00, 0x0E, 0x11, 0x1F, 0x10, 0x0E},
	/*102 'f' */ {0x06, 0x08, 0x1E, 0x08, 0x08, 0x08, 0x08},
	/*103 'g' */ {0x00, 0x00, 0x0F, 0x11, 0x0F, 0x01, 0x0E},
	/*104 'h' */ {0x10, 0x10, 0x1E, 0x11, 0x11, 0x11, 0x11},
	/*105 'i' */ {0x04, 0x00, 0x0C, 0x04, 0x04, 0x04, 0x0E},
	/*106 'j' */ {0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0C},
	/*107 'k' */ {0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12},
	/*108 'l' */ {0x0C, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	/*109 'm' */ {0x00, 0x00, 0x1A, 0x15, 0x15, 0x15, 0x15},
	/*110 'n' */ {0x00, 0x00, 0x1E, 0x11, 0x11, 0x11, 0x11},
	/*111 'o' */ {0x00, 0x00, 0x0E, 0x11, 0x11, 0x11, 0x0E},
	/*112 'p' */ {0x00, 0x00, 0x1E, 0x11, 0x1E, 0x10, 0x10},
	/*113 'q' */ {0x00, 0x00, 0x0F, 0x11, 0x0F, 0x01, 0x01},
	/*114 'r' */ {0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10},
	/*115 's' */ {0x00, 0x00, 0x0F, 0x10, 0x0E, 0x01, 0x1E},
	/*116 't' */ {0x08, 0x08, 0x1E, 0x08, 0x08, 0x09, 0x06},
	/*117 'u' */ {0x00, 0x00, 0x11, 0x11, 0x11, 0x11, 0x0F},
	/*118 'v' */ {0x00, 0x00, 0x11, 0x11, 0x0A, 0x0A, 0x04},
	/*119 'w' */ {0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0A},
	/*120 'x' */ {0x00, 0x00, 0x11, 0x0A, 0x04, 0x0A, 0x11},
	/*121 'y' */ {0x00, 0x00, 0x11, 0x11, 0x0F, 0x01, 0x0E},
	/*122 'z' */ {0x00, 0x00, 0x1F, 0x02, 0x04, 0x08, 0x1F},
	/*123 '{' */ {0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02},
	/*124 '|' */ {0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	/*125 '}' */ {0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08},
	/*126 '~' */ {0x00, 0x00, 0x08, 0x15, 0x02, 0x00, 0x00},
}

// degreeMark is a 3x3 ring used as a superscript degree symbol next to
// large temperature digits.
var degreeMark = [3]byte{0x02, 0x05, 0x02}

// Glyph returns the 7-row bitmap for ch. Characters outside 32..126 fall
// back to the space glyph.
func Glyph(ch byte) [7]byte {
	idx := int(ch) - 32
	if idx < 0 || idx >= len(glyphs) {
		idx = 0
	}
	return glyphs[idx]
}
