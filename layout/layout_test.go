package layout_test

import (
	"slices"
	"testing"

	"deedles.dev/xvec"
	"deedles.dev/xvec/layout"
	"github.com/stretchr/testify/require"
)

func TestTiledRightThenDown(t *testing.T) {
	r := xvec.R2(100, 80, 0, 0)
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 50, 80),
		xvec.R2(50, 0, 100, 40),
		xvec.R2(50, 40, 75, 80),
		xvec.R2(75, 40, 100, 80),
	}, slices.Collect(layout.TiledRightThenDown(4, r)))

	require.Equal(t, []xvec.Rect2[int]{xvec.R2(0, 0, 100, 80)}, slices.Collect(layout.TiledRightThenDown(1, r)))
	require.Empty(t, slices.Collect(layout.TiledRightThenDown(0, r)))

	var got []xvec.Rect2[int]
	for tile := range layout.TiledRightThenDown(4, r) {
		got = append(got, tile)
		if len(got) == 2 {
			break
		}
	}
	require.Len(t, got, 2)
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]xvec.Rect2[float64], 3)
	layout.TileRightThenDown(tiles, xvec.R2FromSize(10.0, 10))
	require.Equal(t, []xvec.Rect2[float64]{
		xvec.R2(0, 0, 5, 10.0),
		xvec.R2(5, 0, 10, 5.0),
		xvec.R2(5, 5, 10, 10.0),
	}, tiles)
}

func TestTiledTwoThirdsSidebar(t *testing.T) {
	r := xvec.R2(0, 0, 90, 60)
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 60, 60),
		xvec.R2(60, 0, 90, 30),
		xvec.R2(60, 30, 90, 60),
	}, slices.Collect(layout.TiledTwoThirdsSidebar(3, r)))

	tiles := make([]xvec.Rect2[int], 1)
	layout.TileTwoThirdsSidebar(tiles, r)
	require.Equal(t, []xvec.Rect2[int]{r}, tiles)
}

func TestTiledEven(t *testing.T) {
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 30, 10),
		xvec.R2(30, 0, 60, 10),
		xvec.R2(60, 0, 90, 10),
	}, slices.Collect(layout.TiledEvenHorizontally(3, xvec.R2(0, 0, 90, 10))))

	tiles := make([]xvec.Rect2[int], 3)
	layout.TileEvenVertically(tiles, xvec.R2(5, 0, 15, 30))
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(5, 0, 15, 10),
		xvec.R2(5, 10, 15, 20),
		xvec.R2(5, 20, 15, 30),
	}, tiles)

	tiles = make([]xvec.Rect2[int], 2)
	layout.TileEvenHorizontally(tiles, xvec.R2(10, 10, 0, 0))
	require.Equal(t, []xvec.Rect2[int]{xvec.R2(0, 0, 5, 10), xvec.R2(5, 0, 10, 10)}, tiles)

	require.Empty(t, slices.Collect(layout.TiledEvenVertically(0, xvec.R2(0, 0, 1, 1))))
}

func TestTiledNarrowScalar(t *testing.T) {
	r := xvec.R2[uint8](0, 0, 10, 200)
	require.NotPanics(t, func() {
		require.Empty(t, slices.Collect(layout.TiledEvenVertically(256, r)))
		require.Empty(t, slices.Collect(layout.TiledEvenHorizontally(256, r)))
		require.Empty(t, slices.Collect(layout.TiledRows(256, r, 256)))
		require.Equal(t, []xvec.Rect2[uint8]{xvec.R2[uint8](0, 0, 6, 200)}, slices.Collect(layout.TiledTwoThirdsSidebar(257, r)))
	})

	require.Len(t, slices.Collect(layout.TiledEvenVertically(255, r)), 255)
}

func TestTiledRows(t *testing.T) {
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 20, 10),
		xvec.R2(20, 0, 40, 10),
		xvec.R2(0, 10, 20, 20),
		xvec.R2(20, 10, 40, 20),
		xvec.R2(0, 20, 40, 30),
	}, slices.Collect(layout.TiledRows(5, xvec.R2(0, 0, 40, 30), 2)))

	tiles := make([]xvec.Rect2[int], 2)
	layout.TileRows(tiles, xvec.R2(0, 0, 40, 30), 3)
	require.Equal(t, []xvec.Rect2[int]{xvec.R2(0, 0, 20, 30), xvec.R2(20, 0, 40, 30)}, tiles)

	require.Empty(t, slices.Collect(layout.TiledRows(3, xvec.R2(0, 0, 40, 30), 0)))
}

func TestVerticalStack(t *testing.T) {
	var got []xvec.Rect2[int]
	for r := range layout.VerticalStack(xvec.R2(0, 10, 5, 0)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 5, 10),
		xvec.R2(0, 10, 5, 20),
		xvec.R2(0, 20, 5, 30),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []xvec.Rect2[int]{
		xvec.R2(0, 0, 10, 5),
		xvec.R2(100, 100, 120, 103),
		xvec.R2(7, 7, 3, 9),
	}
	layout.ArrangeVerticalStack(rects)
	require.Equal(t, []xvec.Rect2[int]{
		xvec.R2(0, 0, 20, 5),
		xvec.R2(0, 5, 20, 8),
		xvec.R2(0, 8, 20, 10),
	}, rects)

	layout.ArrangeVerticalStack([]xvec.Rect2[int](nil))
}

func TestAlign(t *testing.T) {
	outer, inner := xvec.R2(0, 0, 100, 100), xvec.R2(0, 0, 20, 10)

	tests := []struct {
		edges layout.Edges
		r     xvec.Rect2[int]
	}{
		{edges: layout.EdgeNone, r: xvec.R2(40, 45, 60, 55)},
		{edges: layout.EdgeTop, r: xvec.R2(40, 0, 60, 10)},
		{edges: layout.EdgeLeft, r: xvec.R2(0, 45, 20, 55)},
		{edges: layout.EdgeBottom | layout.EdgeRight, r: xvec.R2(80, 90, 100, 100)},
		{edges: layout.EdgeTop | layout.EdgeBottom, r: xvec.R2(40, 0, 60, 100)},
		{edges: layout.EdgeAll, r: outer},
	}

	for _, test := range tests {
		t.Run(test.edges.String(), func(t *testing.T) {
			require.Equal(t, test.r, layout.Align(outer, inner, test.edges))
		})
	}
}

func TestEdgesString(t *testing.T) {
	require.Equal(t, "none", layout.EdgeNone.String())
	require.Equal(t, "top|left", (layout.EdgeTop | layout.EdgeLeft).String())
	require.Equal(t, "top|bottom|left|right", layout.EdgeAll.String())
}
