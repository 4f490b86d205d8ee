package pixelkernel

import "fmt"

// Mode tells whether an operation runs on the shared gray channel or on each
// RGB channel separately.
type Mode int

const (
	Monochromatic Mode = iota
	Color
)

func (m Mode) String() string {
	if m == Monochromatic {
		return "monochromatic"
	}
	return "rgb"
}

// DetectMode picks Monochromatic when every pixel is gray.
func DetectMode(b *Buffer) Mode {
	if IsMonochromatic(b) {
		return Monochromatic
	}
	return Color
}

// Operation is one of EqualizeTowardGaussian, RankFilter, LineOpening or
// FillHoles. Each carries its own parameters and validates them before any
// pixel is touched.
type Operation interface {
	fmt.Stringer
	Name() string
	Validate() error
	// grayOnly reports whether color input is converted to gray first.
	grayOnly() bool
	apply(b *Buffer, mode Mode) (*Buffer, error)
}

// Apply validates op, chooses the mode from b and runs op on it.
// b is never modified.
func Apply(b *Buffer, op Operation) (*Buffer, error) {
	if op == nil {
		return nil, invalidArg("Apply", "nil operation")
	}
	if b.empty() {
		return nil, invalidArg(op.Name(), "empty buffer")
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op.apply(b, DetectMode(b))
}

// EqualizeTowardGaussian remaps intensities toward a quantized Gaussian.
type EqualizeTowardGaussian struct {
	StdDeviation float64
	Classes      int
}

func (o EqualizeTowardGaussian) Name() string { return "equalize" }

func (o EqualizeTowardGaussian) String() string {
	return fmt.Sprintf("equalize(sigma=%g, classes=%d)", o.StdDeviation, o.Classes)
}

func (o EqualizeTowardGaussian) Validate() error {
	if err := checkStdDeviation(o.Name(), o.StdDeviation); err != nil {
		return err
	}
	return checkClasses(o.Name(), o.Classes)
}

func (o EqualizeTowardGaussian) grayOnly() bool { return false }

func (o EqualizeTowardGaussian) apply(b *Buffer, mode Mode) (*Buffer, error) {
	if mode == Monochromatic {
		return EqualizeGaussian(b, o.StdDeviation, o.Classes)
	}
	return EqualizeGaussianRGB(b, o.StdDeviation, o.Classes)
}

// RankFilter selects the Order-th smallest value of a MaskSize×MaskSize window.
type RankFilter struct {
	MaskSize int
	Order    int
}

func (o RankFilter) Name() string { return "rank" }

func (o RankFilter) String() string {
	return fmt.Sprintf("rank(mask=%d, order=%d)", o.MaskSize, o.Order)
}

func (o RankFilter) Validate() error {
	if o.MaskSize <= 0 || o.MaskSize%2 == 0 {
		return invalidArg(o.Name(), "mask size %d must be odd and positive", o.MaskSize)
	}
	if o.Order < 1 || o.Order > o.MaskSize*o.MaskSize {
		return invalidArg(o.Name(), "order %d outside 1..%d", o.Order, o.MaskSize*o.MaskSize)
	}
	return nil
}

func (o RankFilter) grayOnly() bool { return false }

func (o RankFilter) apply(b *Buffer, mode Mode) (*Buffer, error) {
	if mode == Monochromatic {
		return OrderFilter(b, o.MaskSize, o.Order)
	}
	return OrderFilterRGB(b, o.MaskSize, o.Order)
}

// LineOpening opens the gray image with a line structuring element.
type LineOpening struct {
	Angle  int
	Length int
}

func (o LineOpening) Name() string { return "open" }

func (o LineOpening) String() string {
	return fmt.Sprintf("open(angle=%d, length=%d)", o.Angle, o.Length)
}

func (o LineOpening) Validate() error {
	if o.Angle <= 0 {
		return invalidArg(o.Name(), "angle %d must be positive", o.Angle)
	}
	if o.Length <= 0 {
		return invalidArg(o.Name(), "length %d must be positive", o.Length)
	}
	return nil
}

func (o LineOpening) grayOnly() bool { return true }

func (o LineOpening) apply(b *Buffer, mode Mode) (*Buffer, error) {
	src, err := grayInput(b, mode)
	if err != nil {
		return nil, err
	}
	return OpenByLine(src, o.Angle, o.Length)
}

// FillHoles fills enclosed black regions. With Threshold > 0 the gray image is
// binarized at that level first; with 0 the input must already be binary.
type FillHoles struct {
	Threshold int
}

func (o FillHoles) Name() string { return "fill" }

func (o FillHoles) String() string {
	return fmt.Sprintf("fill(threshold=%d)", o.Threshold)
}

func (o FillHoles) Validate() error {
	if o.Threshold < 0 || o.Threshold > 255 {
		return invalidArg(o.Name(), "threshold %d outside 0..255", o.Threshold)
	}
	return nil
}

func (o FillHoles) grayOnly() bool { return true }

func (o FillHoles) apply(b *Buffer, mode Mode) (*Buffer, error) {
	src, err := grayInput(b, mode)
	if err != nil {
		return nil, err
	}
	if o.Threshold > 0 {
		if src, err = Binarize(src, o.Threshold); err != nil {
			return nil, err
		}
	}
	return FillBinaryHoles(src)
}

func grayInput(b *Buffer, mode Mode) (*Buffer, error) {
	if mode == Monochromatic {
		return b, nil
	}
	return Grayscale(b)
}
