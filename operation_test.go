package pixelkernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMode(t *testing.T) {
	assert.Equal(t, Monochromatic, DetectMode(filled(t, 2, 2, Gray(9))))
	assert.Equal(t, Color, DetectMode(filled(t, 2, 2, RGB{9, 9, 8})))
	assert.Equal(t, "monochromatic", Monochromatic.String())
	assert.Equal(t, "rgb", Color.String())
}

func TestOperationValidate(t *testing.T) {
	valid := []Operation{
		EqualizeTowardGaussian{StdDeviation: 0.15, Classes: 8},
		RankFilter{MaskSize: 3, Order: 9},
		LineOpening{Angle: 45, Length: 9},
		FillHoles{Threshold: 0},
		FillHoles{Threshold: 255},
	}
	for _, op := range valid {
		assert.NoError(t, op.Validate(), op.String())
	}

	invalid := []Operation{
		EqualizeTowardGaussian{StdDeviation: 0, Classes: 8},
		EqualizeTowardGaussian{StdDeviation: 0.1, Classes: 300},
		RankFilter{MaskSize: 4, Order: 1},
		RankFilter{MaskSize: 3, Order: 10},
		LineOpening{Angle: 0, Length: 9},
		LineOpening{Angle: 45, Length: -1},
		FillHoles{Threshold: 256},
		FillHoles{Threshold: -1},
	}
	for _, op := range invalid {
		requireKind(t, op.Validate(), InvalidArgument)
	}
}

func TestApplyPicksMode(t *testing.T) {
	gray := ramp(t, 10, 10)
	out, err := Apply(gray, RankFilter{MaskSize: 3, Order: 1})
	require.NoError(t, err)
	want, err := OrderFilter(gray, 3, 1)
	require.NoError(t, err)
	assert.True(t, want.Equal(out))

	color := filled(t, 10, 10, RGB{5, 6, 7})
	out, err = Apply(color, RankFilter{MaskSize: 3, Order: 1})
	require.NoError(t, err)
	assert.True(t, out.Equal(color))
}

func TestApplyGrayOnlyConvertsColor(t *testing.T) {
	color := filled(t, 12, 12, RGB{255, 0, 0})
	out, err := Apply(color, LineOpening{Angle: 90, Length: 3})
	require.NoError(t, err)
	assert.True(t, IsMonochromatic(out))
	c, _ := out.At(5, 5)
	assert.Equal(t, Gray(76), c)
}

func TestApplyFillHoles(t *testing.T) {
	b := filled(t, 10, 10, Gray(200))
	paintRect(b, 4, 4, 6, 6, Gray(30))

	out, err := Apply(b, FillHoles{Threshold: 128})
	require.NoError(t, err)
	assert.True(t, out.Equal(filled(t, 10, 10, White)))

	_, err = Apply(b, FillHoles{Threshold: 0})
	requireKind(t, err, PreconditionViolation)
}

func TestApplyRejects(t *testing.T) {
	_, err := Apply(ramp(t, 4, 4), nil)
	requireKind(t, err, InvalidArgument)
	_, err = Apply(nil, RankFilter{MaskSize: 3, Order: 1})
	requireKind(t, err, InvalidArgument)
	_, err = Apply(ramp(t, 4, 4), RankFilter{MaskSize: 2, Order: 1})
	requireKind(t, err, InvalidArgument)
}
