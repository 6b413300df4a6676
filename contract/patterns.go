package contract

// Winning line definitions.
//
// The board is a 5x5 card with the center cell removed as a permanent
// free space, leaving 24 addressable cells:
//
//	 0  1  2  3  4
//	 5  6  7  8  9
//	10 11  *  12 13
//	14 15 16 17 18
//	19 20 21 22 23
//
// The twelve lines are fixed lookup tables, not derived geometry. Rows
// and columns are slices over the flat 24-cell array, so with the free
// center removed the bottom row and the outer columns share cell 19.
// The two corner diagonals touch the free center and therefore hold
// only four distinct cells; the fifth slot repeats the last index as
// padding, which the set-membership check absorbs.

type lineKind uint8

const (
	line5 lineKind = 5 // five distinct cells
	line4 lineKind = 4 // four distinct cells plus padding slot
)

type line struct {
	kind  lineKind
	cells [5]uint8
}

// lines is checked in priority order: rows, columns, then the two
// padded corner diagonals.
var lines = [12]line{
	{line5, [5]uint8{0, 1, 2, 3, 4}},
	{line5, [5]uint8{5, 6, 7, 8, 9}},
	{line5, [5]uint8{10, 11, 12, 13, 14}},
	{line5, [5]uint8{15, 16, 17, 18, 19}},
	{line5, [5]uint8{19, 20, 21, 22, 23}},
	{line5, [5]uint8{0, 5, 10, 15, 19}},
	{line5, [5]uint8{1, 6, 11, 16, 20}},
	{line5, [5]uint8{2, 7, 12, 17, 21}},
	{line5, [5]uint8{3, 8, 13, 18, 22}},
	{line5, [5]uint8{4, 9, 14, 19, 23}},
	{line4, [5]uint8{0, 6, 17, 23, 23}},
	{line4, [5]uint8{4, 8, 15, 19, 19}},
}

// checkWin reports whether any line on the board is fully covered by
// the drawn-value set. A pure predicate: identical inputs always yield
// the identical result. Returns on the first covered line.
func checkWin(b *Board, drawn *DrawnSet) bool {
	for li := range lines {
		covered := true
		for _, idx := range lines[li].cells {
			if !drawn.Has(b[idx]) {
				covered = false
				break
			}
		}
		if covered {
			return true
		}
	}
	return false
}
