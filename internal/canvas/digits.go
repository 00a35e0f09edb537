package canvas

// glyphs is a 3x5 block font for the year numeral.
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'-': {"...", "...", "###", "...", "..."},
}

const (
	glyphW = 3
	glyphH = 5
)

// numeralSize returns the width and height, in half-cell units, of s drawn
// with each font pixel scaled to px x px.
func numeralSize(s string, px int) (w, h int) {
	n := len([]rune(s))
	if n == 0 {
		return 0, 0
	}
	return n*glyphW*px + (n-1)*px, glyphH * px
}
