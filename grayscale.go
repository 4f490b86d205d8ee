package pixelkernel

// Luma returns the 0.3R + 0.6G + 0.1B luminance, truncated. Integer weights
// keep gray pixels fixed: Luma(Gray(v)) == v.
func Luma(c RGB) uint8 {
	return uint8((3*int(c.R) + 6*int(c.G) + int(c.B)) / 10)
}

// Grayscale returns a monochromatic copy of b.
func Grayscale(b *Buffer) (*Buffer, error) {
	if b.empty() {
		return nil, invalidArg("Grayscale", "empty buffer")
	}
	out := newBuffer(b.w, b.h)
	for y := range b.h {
		for x := range b.w {
			out.set(x, y, Gray(Luma(b.at(x, y))))
		}
	}
	return out, nil
}

// Binarize maps pixels whose luminance is at least threshold to white and the
// rest to black.
func Binarize(b *Buffer, threshold int) (*Buffer, error) {
	const op = "Binarize"
	if b.empty() {
		return nil, invalidArg(op, "empty buffer")
	}
	if threshold < 1 || threshold > 255 {
		return nil, invalidArg(op, "threshold %d outside 1..255", threshold)
	}
	out := newBuffer(b.w, b.h)
	for y := range b.h {
		for x := range b.w {
			if int(Luma(b.at(x, y))) >= threshold {
				out.set(x, y, White)
			}
		}
	}
	return out, nil
}
