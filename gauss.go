package pixelkernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MaxColorClasses bounds the class count: a class needs at least one intensity.
const MaxColorClasses = 256

const densityStep = 1 / 255.0

// ============ TARGET DENSITY ============

// GaussianDensity samples a normal density with mean 0.5 and the given standard
// deviation at i/255 for every intensity i.
func GaussianDensity(stdDeviation float64) ([256]float64, error) {
	var g [256]float64
	if err := checkStdDeviation("GaussianDensity", stdDeviation); err != nil {
		return g, err
	}
	normal := distuv.Normal{Mu: 0.5, Sigma: stdDeviation}
	for i := range g {
		g[i] = normal.Prob(float64(i) / 255.0)
	}
	return g, nil
}

// ClassBoundaries splits the target density into classes equal-area bins and
// returns the upper cut of each bin as intensity/255. The table is strictly
// increasing and its last entry is 1.
func ClassBoundaries(stdDeviation float64, classes int) ([]float64, error) {
	const op = "ClassBoundaries"
	if err := checkStdDeviation(op, stdDeviation); err != nil {
		return nil, err
	}
	if err := checkClasses(op, classes); err != nil {
		return nil, err
	}
	g, _ := GaussianDensity(stdDeviation)
	totalArea := floats.Sum(g[:]) * densityStep

	cut := make([]int, classes)
	k := 0
	area := 0.0
	for i := range g {
		area += g[i] * densityStep
		for k < classes-1 && area >= totalArea*float64(k+1)/float64(classes) {
			cut[k] = i
			k++
		}
	}
	// Cuts the running area never reached sit at the top intensity.
	for ; k < classes; k++ {
		cut[k] = 255
	}

	// Narrow densities put several cuts on one intensity; spread them so every
	// class owns at least one intensity.
	for k := 1; k < classes; k++ {
		cut[k] = max(cut[k], cut[k-1]+1)
	}
	cut[classes-1] = 255
	for k := classes - 2; k >= 0; k-- {
		cut[k] = min(cut[k], cut[k+1]-1)
	}

	bounds := make([]float64, classes)
	for k, c := range cut {
		bounds[k] = float64(c) / 255.0
	}
	bounds[classes-1] = 1
	return bounds, nil
}

// ============ REMAP ============

// RemapTable maps source intensities onto classes. Intensities are walked in
// increasing order; each one joins the current class while cdf[i] stays at or
// below the class boundary and takes the first intensity of that class as its
// new value. Intensities left over after the last class keep the last value
// assigned.
func RemapTable(bounds []float64, cdf CDF) ([256]uint8, error) {
	var table [256]uint8
	if len(bounds) == 0 || len(bounds) > MaxColorClasses {
		return table, invalidArg("RemapTable", "%d class boundaries, want 1..%d", len(bounds), MaxColorClasses)
	}
	for k, v := range bounds {
		if !(v >= 0 && v <= 1) {
			return table, invalidArg("RemapTable", "boundary %d = %v outside [0,1]", k, v)
		}
	}

	index := 0
	var last uint8
	for _, bound := range bounds {
		if index > 255 {
			break
		}
		value := uint8(index)
		for index < 256 && cdf[index] <= bound {
			table[index] = value
			last = value
			index++
		}
	}
	for ; index < 256; index++ {
		table[index] = last
	}
	return table, nil
}

// ============ EQUALIZATION ============

// EqualizeGaussian remaps a monochromatic buffer so its histogram approaches a
// Gaussian of the given spread quantized into classes levels.
func EqualizeGaussian(b *Buffer, stdDeviation float64, classes int) (*Buffer, error) {
	const op = "EqualizeGaussian"
	if err := checkEqualizeArgs(op, b, stdDeviation, classes); err != nil {
		return nil, err
	}
	if !IsMonochromatic(b) {
		return nil, precondition(op, "buffer is not monochromatic")
	}
	table, err := channelTable(b, R, stdDeviation, classes)
	if err != nil {
		return nil, err
	}
	out := newBuffer(b.w, b.h)
	for y := range b.h {
		for x := range b.w {
			out.set(x, y, Gray(table[b.at(x, y).R]))
		}
	}
	return out, nil
}

// EqualizeGaussianRGB equalizes each channel independently against the same
// class boundaries.
func EqualizeGaussianRGB(b *Buffer, stdDeviation float64, classes int) (*Buffer, error) {
	if err := checkEqualizeArgs("EqualizeGaussianRGB", b, stdDeviation, classes); err != nil {
		return nil, err
	}
	var tables [3][256]uint8
	for _, ch := range []Channel{R, G, B} {
		t, err := channelTable(b, ch, stdDeviation, classes)
		if err != nil {
			return nil, err
		}
		tables[ch] = t
	}
	out := newBuffer(b.w, b.h)
	for y := range b.h {
		for x := range b.w {
			c := b.at(x, y)
			out.set(x, y, RGB{tables[R][c.R], tables[G][c.G], tables[B][c.B]})
		}
	}
	return out, nil
}

func channelTable(b *Buffer, ch Channel, stdDeviation float64, classes int) ([256]uint8, error) {
	hist, err := ComputeHistogram(b, ch)
	if err != nil {
		return [256]uint8{}, err
	}
	cdf, err := Cumulative(hist, float64(b.w*b.h))
	if err != nil {
		return [256]uint8{}, err
	}
	bounds, err := ClassBoundaries(stdDeviation, classes)
	if err != nil {
		return [256]uint8{}, err
	}
	return RemapTable(bounds, cdf)
}

func checkEqualizeArgs(op string, b *Buffer, stdDeviation float64, classes int) error {
	if b.empty() {
		return invalidArg(op, "empty buffer")
	}
	if err := checkStdDeviation(op, stdDeviation); err != nil {
		return err
	}
	return checkClasses(op, classes)
}

func checkStdDeviation(op string, s float64) error {
	if !(s > 0) || math.IsInf(s, 1) {
		return invalidArg(op, "standard deviation %v must be positive and finite", s)
	}
	return nil
}

func checkClasses(op string, n int) error {
	if n <= 0 || n > MaxColorClasses {
		return invalidArg(op, "color classes %d outside 1..%d", n, MaxColorClasses)
	}
	return nil
}
