package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sequentialBoard returns a board where cell i holds value i+1, so
// line indices map to unique, predictable values.
func sequentialBoard() Board {
	var b Board
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func drawnFor(values ...byte) DrawnSet {
	var d DrawnSet
	for _, v := range values {
		d.Insert(v)
	}
	return d
}

func TestCheckWinEachLine(t *testing.T) {
	b := sequentialBoard()
	for li, ln := range lines {
		var d DrawnSet
		for _, idx := range ln.cells {
			d.Insert(b[idx])
		}
		require.True(t, checkWin(&b, &d), "line %d should win", li)
	}
}

func TestCheckWinNoLine(t *testing.T) {
	b := sequentialBoard()

	var empty DrawnSet
	require.False(t, checkWin(&b, &empty))

	// Four cells of the top row are not enough for a 5-cell line.
	d := drawnFor(b[0], b[1], b[2], b[3])
	require.False(t, checkWin(&b, &d))

	// Scattered cells that complete no line.
	d = drawnFor(b[0], b[6], b[11], b[18], b[22])
	require.False(t, checkWin(&b, &d))
}

func TestCheckWinCornerDiagonalsNeedOnlyFourCells(t *testing.T) {
	b := sequentialBoard()

	d := drawnFor(b[0], b[6], b[17], b[23])
	require.True(t, checkWin(&b, &d))

	d = drawnFor(b[4], b[8], b[15], b[19])
	require.True(t, checkWin(&b, &d))
}

func TestCheckWinIsPure(t *testing.T) {
	b := sequentialBoard()
	d := drawnFor(b[5], b[6], b[7], b[8], b[9])

	for i := 0; i < 5; i++ {
		require.True(t, checkWin(&b, &d))
	}
	require.Equal(t, sequentialBoard(), b, "board must not be mutated")
}

// Boards are not deduplicated, so a repeated cell value lets one drawn
// value cover several line positions at once. Intentional behavior.
func TestCheckWinDuplicateCellValues(t *testing.T) {
	var b Board
	for i := range b {
		b[i] = 7
	}
	d := drawnFor(7)
	require.True(t, checkWin(&b, &d))
}

func TestLineTableShape(t *testing.T) {
	covered := make(map[uint8]bool)
	for li, ln := range lines {
		distinct := make(map[uint8]bool)
		for _, idx := range ln.cells {
			require.Less(t, idx, uint8(BoardCells))
			distinct[idx] = true
			covered[idx] = true
		}
		require.Len(t, distinct, int(ln.kind), "line %d", li)
	}
	require.Len(t, covered, BoardCells, "every cell belongs to a line")

	// Ten full lines first, the two padded diagonals last.
	for li := 0; li < 10; li++ {
		require.Equal(t, line5, lines[li].kind)
	}
	require.Equal(t, line4, lines[10].kind)
	require.Equal(t, line4, lines[11].kind)
}
