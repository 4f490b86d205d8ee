package utils

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/rs/zerolog/log"
	"github.com/setanarut/pixelkernel"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// ParsePaletteMethod accepts the names printed by PaletteMethod.String.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "", "dominantcolor":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// SortPaletteByBrightness orders colors from darkest to brightest using the
// same luma weights as pixelkernel.Grayscale.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ya := 0.3*a.R + 0.6*a.G + 0.1*a.B
		yb := 0.3*b.R + 0.6*b.G + 0.1*b.B
		if ya < yb {
			return -1
		}
		if ya > yb {
			return 1
		}
		return 0
	})
}

// HexPalette formats each color as #rrggbb.
func HexPalette(palette []colorful.Color) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		out[i] = c.Clamped().Hex()
	}
	return out
}

func ExtractDominantPalette(b *pixelkernel.Buffer, k int) []colorful.Color {
	if k <= 0 || b.Width() == 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(b.Image(), nCandidates)
	if len(candidates) == 0 {
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, weightedColor{Col: col.Clamped(), Weight: max(c.Weight, 1e-6)})
	}
	return selectDiverse(weighted, k)
}

// selectDiverse greedily picks k colors: the heaviest candidate first, then
// repeatedly the one whose Lab distance to its nearest pick, scaled by its
// weight, is largest.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	k = min(k, len(cands))
	if k <= 0 {
		return nil
	}
	labs := make([][3]float64, len(cands))
	maxW := 0.0
	seed := 0
	for i, c := range cands {
		l, a, bb := c.Col.Lab()
		labs[i] = [3]float64{l, a, bb}
		maxW = max(maxW, c.Weight)
		if c.Weight > cands[seed].Weight {
			seed = i
		}
	}

	// nearest[i] is the squared Lab distance from candidate i to its closest
	// pick; -1 marks picked candidates.
	nearest := make([]float64, len(cands))
	for i := range nearest {
		nearest[i] = math.MaxFloat64
	}
	out := make([]colorful.Color, 0, k)
	next := seed
	for next >= 0 && len(out) < k {
		out = append(out, cands[next].Col)
		nearest[next] = -1
		picked := labs[next]

		next = -1
		bestScore := -1.0
		for i := range cands {
			if nearest[i] < 0 {
				continue
			}
			d0, d1, d2 := labs[i][0]-picked[0], labs[i][1]-picked[1], labs[i][2]-picked[2]
			nearest[i] = min(nearest[i], d0*d0+d1*d1+d2*d2)
			score := math.Sqrt(nearest[i]) * (0.55 + 0.45*math.Sqrt(cands[i].Weight/maxW))
			if score > bestScore {
				next, bestScore = i, score
			}
		}
	}
	return out
}

const kmeansMaxSamples = 12000

// ExtractKMeansPalette clusters an evenly strided sample of the buffer's
// pixels in RGB and picks k diverse cluster centers, weighted by cluster size.
func ExtractKMeansPalette(b *pixelkernel.Buffer, k int) []colorful.Color {
	n := b.Width() * b.Height()
	if k <= 0 || n == 0 {
		return nil
	}
	stride := (n + kmeansMaxSamples - 1) / kmeansMaxSamples
	dataset := make(clusters.Observations, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		c, _ := b.At(i%b.Width(), i/b.Width())
		dataset = append(dataset, clusters.Coordinates{
			float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255,
		})
	}

	cc, err := kmeans.New().Partition(dataset, min(max(4*k, k+2), len(dataset)))
	if err != nil {
		return nil
	}
	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		weighted = append(weighted, weightedColor{
			Col:    colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped(),
			Weight: float64(len(c.Observations)),
		})
	}
	return selectDiverse(weighted, k)
}

func ExtractPalette(b *pixelkernel.Buffer, k int, method PaletteMethod) []colorful.Color {
	switch method {
	case PaletteMethodKMeans:
		p := ExtractKMeansPalette(b, k)
		if len(p) != 0 {
			return p
		}
		log.Warn().Int("k", k).Msg("kmeans returned empty palette, falling back to dominantcolor")
		return ExtractDominantPalette(b, k)
	default:
		return ExtractDominantPalette(b, k)
	}
}

// PaletteImage renders the palette as a row of square tiles.
func PaletteImage(palette []colorful.Color, tileSize int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	img := image.NewRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		x0 := i * tileSize
		for y := range tileSize {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}
	return img, nil
}

func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	img, err := PaletteImage(palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
