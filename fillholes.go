package pixelkernel

// FillBinaryHoles turns every black region that cannot be reached from the border
// through 4-connected black pixels white. Border-connected black stays black,
// white stays white. The buffer must already be binary.
func FillBinaryHoles(b *Buffer) (*Buffer, error) {
	const op = "FillBinaryHoles"
	if b.empty() {
		return nil, invalidArg(op, "empty buffer")
	}
	if !IsBinary(b) {
		return nil, precondition(op, "buffer is not binary black/white")
	}

	w, h := b.w, b.h
	reached := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))

	seed := func(x, y int) {
		idx := y*w + x
		if !reached[idx] && b.at(x, y) == Black {
			reached[idx] = true
			queue = append(queue, idx)
		}
	}
	for x := range w {
		seed(x, 0)
		seed(x, h-1)
	}
	for y := range h {
		seed(0, y)
		seed(w-1, y)
	}

	dx4 := []int{-1, 0, 1, 0}
	dy4 := []int{0, -1, 0, 1}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		cx, cy := cur%w, cur/w
		for k := range 4 {
			nx, ny := cx+dx4[k], cy+dy4[k]
			if nx >= 0 && nx < w && ny >= 0 && ny < h {
				seed(nx, ny)
			}
		}
	}

	out := b.Clone()
	for y := range h {
		for x := range w {
			switch {
			case reached[y*w+x]:
				out.set(x, y, Black)
			case b.at(x, y) == Black:
				out.set(x, y, White)
			}
		}
	}
	return out, nil
}

// IsBinary reports whether every pixel is pure black or pure white.
// An empty buffer is not binary.
func IsBinary(b *Buffer) bool {
	if b.empty() {
		return false
	}
	for i := 0; i+2 < len(b.pix); i += 3 {
		v := b.pix[i]
		if (v != 0 && v != 255) || b.pix[i+1] != v || b.pix[i+2] != v {
			return false
		}
	}
	return true
}
