package pixelkernel

import "slices"

// OrderFilter replaces every pixel of a monochromatic buffer with the
// order-th smallest intensity (1-based) of its mask×mask window. The window
// starts at the pixel and extends right and down; see rankSample for edges.
func OrderFilter(b *Buffer, maskSize, order int) (*Buffer, error) {
	const op = "OrderFilter"
	if err := checkRankArgs(op, b, maskSize, order); err != nil {
		return nil, err
	}
	if !IsMonochromatic(b) {
		return nil, precondition(op, "buffer is not monochromatic")
	}
	out := newBuffer(b.w, b.h)
	values := make([]uint8, 0, maskSize*maskSize)
	for y := range b.h {
		for x := range b.w {
			values = values[:0]
			for i := y; i < y+maskSize; i++ {
				for j := x; j < x+maskSize; j++ {
					sx, sy := rankSample(b.w, b.h, maskSize, j, i)
					values = append(values, b.pix[pixOffset(b.w, sx, sy)])
				}
			}
			slices.Sort(values)
			out.set(x, y, Gray(values[order-1]))
		}
	}
	return out, nil
}

// OrderFilterRGB applies the same rank selection to each channel separately.
func OrderFilterRGB(b *Buffer, maskSize, order int) (*Buffer, error) {
	if err := checkRankArgs("OrderFilterRGB", b, maskSize, order); err != nil {
		return nil, err
	}
	out := newBuffer(b.w, b.h)
	n := maskSize * maskSize
	rs, gs, bs := make([]uint8, 0, n), make([]uint8, 0, n), make([]uint8, 0, n)
	for y := range b.h {
		for x := range b.w {
			rs, gs, bs = rs[:0], gs[:0], bs[:0]
			for i := y; i < y+maskSize; i++ {
				for j := x; j < x+maskSize; j++ {
					sx, sy := rankSample(b.w, b.h, maskSize, j, i)
					off := pixOffset(b.w, sx, sy)
					rs = append(rs, b.pix[off])
					gs = append(gs, b.pix[off+1])
					bs = append(bs, b.pix[off+2])
				}
			}
			slices.Sort(rs)
			slices.Sort(gs)
			slices.Sort(bs)
			out.set(x, y, RGB{rs[order-1], gs[order-1], bs[order-1]})
		}
	}
	return out, nil
}

func checkRankArgs(op string, b *Buffer, maskSize, order int) error {
	if b.empty() {
		return invalidArg(op, "empty buffer")
	}
	if maskSize <= 0 || maskSize%2 == 0 {
		return invalidArg(op, "mask size %d must be odd and positive", maskSize)
	}
	if order < 1 || order > maskSize*maskSize {
		return invalidArg(op, "order %d outside 1..%d", order, maskSize*maskSize)
	}
	return nil
}
