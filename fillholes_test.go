package pixelkernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillBinaryHolesEnclosed(t *testing.T) {
	b := filled(t, 10, 10, White)
	paintRect(b, 4, 4, 6, 6, Black)

	out, err := FillBinaryHoles(b)
	require.NoError(t, err)
	assert.True(t, out.Equal(filled(t, 10, 10, White)))
	// Input untouched.
	c, _ := b.At(4, 4)
	assert.Equal(t, Black, c)
}

func TestFillBinaryHolesBorderConnected(t *testing.T) {
	b := filled(t, 8, 8, White)
	// An L shape touching the left border, 4-connected to it.
	paintRect(b, 0, 3, 4, 4, Black)
	paintRect(b, 3, 3, 4, 7, Black)

	out, err := FillBinaryHoles(b)
	require.NoError(t, err)
	assert.True(t, out.Equal(b))
}

func TestFillBinaryHolesDiagonalIsNotConnected(t *testing.T) {
	b := grid(t, [][]uint8{
		{0, 255, 255, 255},
		{255, 0, 255, 255},
		{255, 255, 255, 255},
		{255, 255, 255, 255},
	})
	out, err := FillBinaryHoles(b)
	require.NoError(t, err)
	c, _ := out.At(0, 0)
	assert.Equal(t, Black, c)
	c, _ = out.At(1, 1)
	assert.Equal(t, White, c)
}

func TestFillBinaryHolesRing(t *testing.T) {
	// Black background, a white ring, black inside the ring.
	b := filled(t, 9, 9, Black)
	paintRect(b, 2, 2, 7, 7, White)
	paintRect(b, 3, 3, 6, 6, Black)

	out, err := FillBinaryHoles(b)
	require.NoError(t, err)
	want := filled(t, 9, 9, Black)
	paintRect(want, 2, 2, 7, 7, White)
	assert.True(t, want.Equal(out))
}

func TestFillBinaryHolesRequiresBinary(t *testing.T) {
	b := filled(t, 4, 4, White)
	require.NoError(t, b.Set(1, 1, Gray(128)))
	_, err := FillBinaryHoles(b)
	requireKind(t, err, PreconditionViolation)

	_, err = FillBinaryHoles(nil)
	requireKind(t, err, InvalidArgument)
}

func TestIsBinary(t *testing.T) {
	assert.True(t, IsBinary(grid(t, [][]uint8{{0, 255}})))
	assert.False(t, IsBinary(grid(t, [][]uint8{{0, 254}})))
	b := filled(t, 2, 1, White)
	require.NoError(t, b.Set(0, 0, RGB{255, 0, 255}))
	assert.False(t, IsBinary(b))
}
