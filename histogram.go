package pixelkernel

import (
	"gonum.org/v1/gonum/floats"
)

// Histogram holds one bucket per 8-bit intensity.
type Histogram [256]int

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// CDF is a running sum of histogram buckets, optionally divided by a normalizer.
type CDF [256]float64

// ComputeHistogram counts the intensities of channel ch over the full buffer.
func ComputeHistogram(b *Buffer, ch Channel) (Histogram, error) {
	var hist Histogram
	if b.empty() {
		return hist, invalidArg("ComputeHistogram", "empty buffer")
	}
	if ch < R || ch > B {
		return hist, invalidArg("ComputeHistogram", "unknown channel %d", int(ch))
	}
	for y := range b.h {
		for x := range b.w {
			hist[b.at(x, y).channel(ch)]++
		}
	}
	return hist, nil
}

// IsMonochromatic reports whether every pixel has r == g == b.
// It stops at the first mismatch. An empty buffer is not monochromatic.
func IsMonochromatic(b *Buffer) bool {
	if b.empty() {
		return false
	}
	for i := 0; i+2 < len(b.pix); i += 3 {
		if b.pix[i] != b.pix[i+1] || b.pix[i] != b.pix[i+2] {
			return false
		}
	}
	return true
}

// Cumulative returns the running sum of hist divided by divisor.
// Pass 1 for raw counts or the pixel total for a normalized distribution.
func Cumulative(hist Histogram, divisor float64) (CDF, error) {
	var cdf CDF
	if !(divisor > 0) {
		return cdf, invalidArg("Cumulative", "divisor %v must be positive", divisor)
	}
	counts := make([]float64, len(hist))
	for i, v := range hist {
		counts[i] = float64(v)
	}
	floats.CumSum(counts, counts)
	// cdf[255] must come out as exactly 1 when divisor is the pixel total.
	for i, v := range counts {
		cdf[i] = v / divisor
	}
	return cdf, nil
}
