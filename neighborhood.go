package pixelkernel

import "image"

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rankSample resolves sample (j, i) of a mask×mask window whose top-left corner
// is the output pixel. The policy is asymmetric:
//
//   - a sample past the far edge is clamped to the last row/column, per axis;
//   - otherwise a sample inside the first mask rows/columns is shifted by mask/2
//     away from the near edge;
//   - otherwise it is read directly.
//
// The result is biased toward the interior near the top/left edges. A shift that
// would leave a buffer narrower than the mask is clamped back inside.
//
// TODO: replace with a symmetric reflect or clamp extension once callers no
// longer need parity with the legacy filter output.
func rankSample(w, h, mask, j, i int) (int, int) {
	half := mask / 2
	farX, farY := j > w-1, i > h-1
	switch {
	case farX && farY:
		j, i = w-1, h-1
	case farX:
		j = w - 1
	case farY:
		i = h - 1
	case i < mask && j < mask:
		j, i = j+half, i+half
	case i < mask:
		i += half
	case j < mask:
		j += half
	}
	return clampInt(j, 0, w-1), clampInt(i, 0, h-1)
}

// maskOffsets lists, for every set cell of se, its offset from the element's
// center. Rows come first, then columns, both ascending.
func maskOffsets(se *StructElement) []image.Point {
	offs := make([]image.Point, 0, se.rows*se.cols)
	cy, cx := se.rows/2, se.cols/2
	for r := range se.rows {
		for c := range se.cols {
			if se.cells[r*se.cols+c] != 0 {
				offs = append(offs, image.Point{X: c - cx, Y: r - cy})
			}
		}
	}
	return offs
}

// marginRect is the region erosion and dilation write to: pixels whose whole
// mask window, plus one extra row/column on the near side and half a mask on
// the far side, lies inside the buffer. Everything outside stays black.
// The rectangle is built literally so a too-small buffer gives an empty range
// instead of a canonicalized one.
func marginRect(w, h int, se *StructElement) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: se.cols/2 + 1, Y: se.rows/2 + 1},
		Max: image.Point{X: w - se.cols, Y: h - se.rows},
	}
}
