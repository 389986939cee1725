// Package layout arranges rectangles inside of other rectangles. It
// tiles an area into smaller pieces, stacks rectangles, and aligns one
// rectangle against the edges of another.
//
// Every function canonicalizes its input rectangles with
// [xvec.Rect2.Ordered] before using them, so the corners of the
// arguments may be given in any order. Results are always ordered.
package layout

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xvec"
	"deedles.dev/xvec/num"
)

// resize returns a rectangle with the same P0 as r and the given
// size.
func resize[T num.Scalar](r xvec.Rect2[T], size xvec.Vec2[T]) xvec.Rect2[T] {
	return xvec.Rect2[T]{P0: r.P0, P1: r.P0.Add(size)}
}

func center[T num.Scalar](r xvec.Rect2[T]) xvec.Vec2[T] {
	return r.P0.Add(r.Size().DivScalar(2))
}

func centerAt[T num.Scalar](r xvec.Rect2[T], c xvec.Vec2[T]) xvec.Rect2[T] {
	return r.Add(c.Sub(center(r)))
}

// tileCount converts numtiles to T. It reports false if numtiles is
// not positive or if T cannot represent it.
func tileCount[T num.Scalar](numtiles int) (T, bool) {
	if numtiles <= 0 {
		return 0, false
	}
	n, err := num.TryConvert[T](numtiles)
	return n, err == nil
}

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T num.Scalar](r xvec.Rect2[T], w T) (left, right xvec.Rect2[T]) {
	left = resize(r, xvec.V2(w, r.Height()))
	right = resize(r, xvec.V2(r.Width()-w, r.Height())).Add(xvec.V2(w, 0))
	return left, right
}

func hsplitHalf[T num.Scalar](r xvec.Rect2[T]) (left, right xvec.Rect2[T]) {
	return hsplit(r, r.Width()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T num.Scalar](r xvec.Rect2[T], h T) (top, bottom xvec.Rect2[T]) {
	top = resize(r, xvec.V2(r.Width(), h))
	bottom = resize(r, xvec.V2(r.Width(), r.Height()-h)).Add(xvec.V2(0, h))
	return top, bottom
}

func vsplitHalf[T num.Scalar](r xvec.Rect2[T]) (top, bottom xvec.Rect2[T]) {
	return vsplit(r, r.Height()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]xvec.Rect2[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T num.Scalar](tiles []xvec.Rect2[T], r xvec.Rect2[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice.
func TiledRightThenDown[T num.Scalar](numtiles int, r xvec.Rect2[T]) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]
		rem := r.Ordered()
		for range numtiles - 1 {
			var c xvec.Rect2[T]
			c, rem = split(rem)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(rem)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space. A single tile fills all of r.
func TileTwoThirdsSidebar[T num.Scalar](tiles []xvec.Rect2[T], r xvec.Rect2[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T num.Scalar](numtiles int, r xvec.Rect2[T]) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		r := r.Ordered()
		switch {
		case numtiles <= 0:
			return
		case numtiles == 1:
			yield(r)
			return
		}

		first, rem := hsplit(r, 2*r.Width()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]xvec.Rect2[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T num.Scalar](tiles []xvec.Rect2[T], r xvec.Rect2[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. It yields nothing if numtiles
// cannot be represented by T.
func TiledEvenVertically[T num.Scalar](numtiles int, r xvec.Rect2[T]) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		n, ok := tileCount[T](numtiles)
		if !ok {
			return
		}

		r := r.Ordered()
		size := xvec.V2(0, r.Height()/n)
		c, _ := vsplit(r, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]xvec.Rect2[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T num.Scalar](tiles []xvec.Rect2[T], r xvec.Rect2[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T num.Scalar](numtiles int, r xvec.Rect2[T]) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		n, ok := tileCount[T](numtiles)
		if !ok {
			return
		}

		r := r.Ordered()
		size := xvec.V2(r.Width()/n, 0)
		c, _ := hsplit(r, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T num.Scalar](tiles []xvec.Rect2[T], r xvec.Rect2[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator. It yields nothing if cols is not positive.
func TiledRows[T num.Scalar](numtiles int, r xvec.Rect2[T], cols int) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		if cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T num.Scalar](first xvec.Rect2[T]) iter.Seq[xvec.Rect2[T]] {
	return func(yield func(xvec.Rect2[T]) bool) {
		r := first.Ordered()
		shift := xvec.V2(0, r.Height())
		for {
			if !yield(r) {
				return
			}
			r = r.Add(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// The height of each rectangle is kept.
func ArrangeVerticalStack[T num.Scalar](rects []xvec.Rect2[T]) {
	if len(rects) == 0 {
		return
	}

	prev := rects[0].Ordered()
	for _, rect := range rects {
		rect = rect.Ordered()
		if rect.Width() > prev.Width() {
			prev.P1.X = prev.P0.X + rect.Width()
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = xvec.R2(
			prev.P0.X,
			prev.P1.Y,
			prev.P1.X,
			prev.P1.Y+rects[i].Ordered().Height(),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Along an axis with
// neither edge specified, inner is centered in outer.
func Align[T num.Scalar](outer, inner xvec.Rect2[T], edges Edges) xvec.Rect2[T] {
	outer = outer.Ordered()
	inner = centerAt(inner.Ordered(), center(outer))
	switch {
	case edges&EdgeTop != 0:
		inner.P0.Y, inner.P1.Y = outer.P0.Y, outer.P0.Y+inner.Height()
		if edges&EdgeBottom != 0 {
			inner.P1.Y = outer.P1.Y
		}
	case edges&EdgeBottom != 0:
		inner.P0.Y, inner.P1.Y = outer.P1.Y-inner.Height(), outer.P1.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.P0.X, inner.P1.X = outer.P0.X, outer.P0.X+inner.Width()
		if edges&EdgeRight != 0 {
			inner.P1.X = outer.P1.X
		}
	case edges&EdgeRight != 0:
		inner.P0.X, inner.P1.X = outer.P1.X-inner.Width(), outer.P1.X
	}

	return inner
}

func insertTilesFromSeq[T num.Scalar](tiles []xvec.Rect2[T], s iter.Seq[xvec.Rect2[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
