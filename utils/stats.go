package utils

import (
	"github.com/setanarut/pixelkernel"
	"gonum.org/v1/gonum/stat"
)

// ChannelStats summarizes one channel's histogram.
type ChannelStats struct {
	Channel pixelkernel.Channel
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
}

var intensities = func() []float64 {
	v := make([]float64, 256)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}()

// HistogramStats computes mean, standard deviation and range of hist.
// An empty histogram yields zeros.
func HistogramStats(ch pixelkernel.Channel, hist pixelkernel.Histogram) ChannelStats {
	s := ChannelStats{Channel: ch, Min: -1, Max: -1}
	weights := make([]float64, 256)
	for i, n := range hist {
		weights[i] = float64(n)
		if n > 0 {
			if s.Min < 0 {
				s.Min = i
			}
			s.Max = i
		}
	}
	if s.Min < 0 {
		return ChannelStats{Channel: ch}
	}
	s.Mean, s.StdDev = stat.MeanStdDev(intensities, weights)
	if hist.Total() < 2 {
		s.StdDev = 0
	}
	return s
}

// BufferStats returns HistogramStats for R, G and B.
func BufferStats(b *pixelkernel.Buffer) ([]ChannelStats, error) {
	out := make([]ChannelStats, 0, 3)
	for _, ch := range []pixelkernel.Channel{pixelkernel.R, pixelkernel.G, pixelkernel.B} {
		hist, err := pixelkernel.ComputeHistogram(b, ch)
		if err != nil {
			return nil, err
		}
		out = append(out, HistogramStats(ch, hist))
	}
	return out, nil
}
