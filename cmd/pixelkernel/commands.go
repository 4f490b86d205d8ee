package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/setanarut/pixelkernel"
	"github.com/setanarut/pixelkernel/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newEqualizeCmd(a *app) *cobra.Command {
	var sigma float64
	var classes int
	cmd := &cobra.Command{
		Use:   "equalize FILE...",
		Short: "Equalize the histogram toward a quantized Gaussian",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := a.cfg.EqualizeOp()
			if cmd.Flags().Changed("sigma") {
				op.StdDeviation = sigma
			}
			if cmd.Flags().Changed("classes") {
				op.Classes = classes
			}
			return a.processAll(args, op)
		},
	}
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "standard deviation of the target density (intensity scale 0..1)")
	cmd.Flags().IntVar(&classes, "classes", 0, "number of output color classes")
	return cmd
}

func newRankCmd(a *app) *cobra.Command {
	var mask, order int
	cmd := &cobra.Command{
		Use:   "rank FILE...",
		Short: "Replace each pixel with the k-th smallest value of its window",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := a.cfg.RankOp()
			if cmd.Flags().Changed("mask") {
				op.MaskSize = mask
			}
			if cmd.Flags().Changed("order") {
				op.Order = order
			}
			return a.processAll(args, op)
		},
	}
	cmd.Flags().IntVar(&mask, "mask", 0, "odd window size")
	cmd.Flags().IntVar(&order, "order", 0, "1-based rank, at most mask*mask")
	return cmd
}

func newOpenCmd(a *app) *cobra.Command {
	var angle, length int
	cmd := &cobra.Command{
		Use:   "open FILE...",
		Short: "Morphological opening with a line structuring element",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := a.cfg.OpeningOp()
			if cmd.Flags().Changed("angle") {
				op.Angle = angle
			}
			if cmd.Flags().Changed("length") {
				op.Length = length
			}
			return a.processAll(args, op)
		},
	}
	cmd.Flags().IntVar(&angle, "angle", 0, "line angle in degrees")
	cmd.Flags().IntVar(&length, "length", 0, "line length in pixels")
	return cmd
}

func newFillCmd(a *app) *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "fill FILE...",
		Short: "Fill black regions not connected to the image border",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := a.cfg.FillOp()
			if cmd.Flags().Changed("threshold") {
				op.Threshold = threshold
			}
			return a.processAll(args, op)
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0, "binarization level, 0 if the input is already black/white")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var colors int
	var method, paletteOut string
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print size, mode, channel statistics and dominant colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := utils.ParsePaletteMethod(method)
			if err != nil {
				return err
			}
			b, err := utils.LoadBuffer(args[0])
			if err != nil {
				return err
			}
			palette := utils.ExtractPalette(b, colors, pm)
			utils.SortPaletteByBrightness(palette)
			if err := writeReport(cmd.OutOrStdout(), args[0], b, utils.HexPalette(palette)); err != nil {
				return err
			}
			if paletteOut != "" {
				return utils.SavePalette(palette, 64, paletteOut)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&colors, "colors", 6, "number of dominant colors to report")
	cmd.Flags().StringVar(&method, "palette-method", "dominantcolor", "dominantcolor or kmeans")
	cmd.Flags().StringVar(&paletteOut, "palette-out", "", "write a palette swatch image here")
	return cmd
}

// processAll runs op on every file, at most cfg.Workers at a time. Each file
// gets its own session, so no buffer is shared between goroutines.
func (a *app) processAll(files []string, op pixelkernel.Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for _, f := range files {
		g.Go(func() error {
			return a.processFile(f, op)
		})
	}
	return g.Wait()
}

func (a *app) processFile(path string, op pixelkernel.Operation) error {
	log := a.log.With().Str("file", path).Logger()
	b, err := utils.LoadBuffer(path)
	if err != nil {
		return err
	}
	s := pixelkernel.NewSession(log)
	if err := s.Load(b); err != nil {
		return err
	}
	out, err := s.Apply(op)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dst := utils.OutputPath(path, a.outDir, op.Name())
	if err := utils.SaveBuffer(out, dst); err != nil {
		return err
	}
	s.MarkSaved()
	log.Info().Str("out", dst).Stringer("op", op).Msg("wrote")
	return nil
}

func writeReport(w io.Writer, path string, b *pixelkernel.Buffer, palette []string) error {
	stats, err := utils.BufferStats(b)
	if err != nil {
		return err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "file:    %s\n", path)
	fmt.Fprintf(&sb, "size:    %dx%d\n", b.Width(), b.Height())
	fmt.Fprintf(&sb, "mode:    %s\n", pixelkernel.DetectMode(b))
	fmt.Fprintf(&sb, "binary:  %t\n", pixelkernel.IsBinary(b))
	for _, s := range stats {
		fmt.Fprintf(&sb, "%s:       mean %.2f  std %.2f  range %d..%d\n", s.Channel, s.Mean, s.StdDev, s.Min, s.Max)
	}
	fmt.Fprintf(&sb, "palette: %s\n", strings.Join(palette, " "))
	_, err = io.WriteString(w, sb.String())
	return err
}
