package pixelkernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineElementShapes(t *testing.T) {
	tests := []struct {
		angle, length int
		want          string
	}{
		{0, 5, "#####"},
		{0, 4, "#####"},
		{180, 3, "###"},
		{90, 5, "#\n#\n#\n#\n#"},
		{90, 4, "#\n#\n#\n#\n#"},
		{45, 3, "..#\n.#.\n#.."},
		{45, 4, "..#\n.#.\n#.."},
		{135, 3, "#..\n.#.\n..#"},
		{45, 1, "#"},
	}
	for _, tt := range tests {
		se, err := LineElement(tt.angle, tt.length)
		require.NoError(t, err)
		assert.Equal(t, tt.want, se.String(), "angle %d length %d", tt.angle, tt.length)
	}
}

func TestLineElementEveryRowSet(t *testing.T) {
	for angle := 1; angle < 180; angle++ {
		for length := 1; length <= 20; length++ {
			se, err := LineElement(angle, length)
			require.NoError(t, err)
			require.Equal(t, 1, se.Rows()%2, "angle %d length %d", angle, length)
			require.Equal(t, 1, se.Cols()%2, "angle %d length %d", angle, length)
			for r := range se.Rows() {
				require.False(t, se.rowEmpty(r), "angle %d length %d row %d\n%s", angle, length, r, se)
			}
		}
	}
}

func TestLineElementMirror(t *testing.T) {
	for _, angle := range []int{100, 120, 150, 170} {
		se, err := LineElement(angle, 7)
		require.NoError(t, err)
		base, err := LineElement(angle%91, 7)
		require.NoError(t, err)
		require.Equal(t, base.Rows(), se.Rows())
		require.Equal(t, base.Cols(), se.Cols())
		for r := range se.Rows() {
			for c := range se.Cols() {
				assert.Equal(t, base.At(r, c), se.At(r, se.Cols()-1-c), "angle %d cell (%d,%d)", angle, r, c)
			}
		}
	}
}

func TestLineElementErrors(t *testing.T) {
	_, err := LineElement(-1, 5)
	requireKind(t, err, InvalidArgument)
	_, err = LineElement(30, 0)
	requireKind(t, err, InvalidArgument)
}

func TestNewStructElement(t *testing.T) {
	se, err := NewStructElement([][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, ".#.\n###\n.#.", se.String())
	assert.True(t, se.At(1, 0))
	assert.False(t, se.At(0, 0))
	assert.False(t, se.At(5, 5))

	for _, mask := range [][][]uint8{
		nil,
		{{}},
		{{1, 1}},
		{{1}, {1}},
		{{1, 1, 1}, {1}, {1, 1, 1}},
		{{2}},
		{{0, 0, 0}},
	} {
		_, err := NewStructElement(mask)
		requireKind(t, err, InvalidArgument)
	}
}

func box3(t *testing.T) *StructElement {
	t.Helper()
	se, err := NewStructElement([][]uint8{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	return se
}

func TestErodeMargin(t *testing.T) {
	b := filled(t, 20, 20, White)
	out, err := Erode(b, box3(t))
	require.NoError(t, err)

	want := filled(t, 20, 20, Black)
	paintRect(want, 2, 2, 17, 17, White)
	assert.True(t, want.Equal(out))
}

func TestErodeDilatePerChannel(t *testing.T) {
	b := filled(t, 12, 12, RGB{100, 100, 100})
	require.NoError(t, b.Set(5, 5, RGB{0, 200, 100}))
	se := box3(t)

	eroded, err := Erode(b, se)
	require.NoError(t, err)
	c, _ := eroded.At(6, 6)
	assert.Equal(t, RGB{0, 100, 100}, c)

	dilated, err := Dilate(b, se)
	require.NoError(t, err)
	c, _ = dilated.At(4, 4)
	assert.Equal(t, RGB{100, 200, 100}, c)
	c, _ = dilated.At(8, 8)
	assert.Equal(t, RGB{100, 100, 100}, c)
}

func TestErodeErrors(t *testing.T) {
	se := box3(t)
	_, err := Erode(filled(t, 2, 5, White), se)
	requireKind(t, err, InvalidArgument)
	_, err = Dilate(nil, se)
	requireKind(t, err, InvalidArgument)
	_, err = Erode(filled(t, 5, 5, White), &StructElement{rows: 2, cols: 1, cells: []uint8{1, 1}})
	requireKind(t, err, InvalidArgument)
}

func TestOpenByLine(t *testing.T) {
	b := filled(t, 40, 40, Black)
	paintRect(b, 15, 15, 25, 25, White)
	// A one pixel tall strip a vertical line cannot fit into.
	paintRect(b, 15, 10, 25, 11, White)

	once, err := OpenByLine(b, 90, 5)
	require.NoError(t, err)
	want := filled(t, 40, 40, Black)
	paintRect(want, 15, 15, 25, 25, White)
	assert.True(t, want.Equal(once))

	twice, err := OpenByLine(once, 90, 5)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestOpenByLineErrors(t *testing.T) {
	b := filled(t, 10, 10, Gray(50))
	_, err := OpenByLine(b, 0, 5)
	requireKind(t, err, InvalidArgument)
	_, err = OpenByLine(b, 45, 0)
	requireKind(t, err, InvalidArgument)
	_, err = OpenByLine(b, 90, 20)
	requireKind(t, err, InvalidArgument)
	_, err = OpenByLine(filled(t, 10, 10, RGB{1, 2, 3}), 45, 3)
	requireKind(t, err, PreconditionViolation)
}

func TestOpenByLineUsesUnreflectedElement(t *testing.T) {
	se, err := LineElement(60, 7)
	require.NoError(t, err)
	assert.Equal(t, "....#\n....#\n...#.\n..#..\n.#...\n.#...\n#....", se.String())

	symmetric := true
	for r := range se.Rows() {
		for c := range se.Cols() {
			if se.At(r, c) != se.At(se.Rows()-1-r, se.Cols()-1-c) {
				symmetric = false
			}
		}
	}
	require.False(t, symmetric)

	b := filled(t, 30, 30, Black)
	paintRect(b, 8, 6, 20, 24, White)
	paintRect(b, 12, 2, 14, 10, Gray(140))

	opened, err := OpenByLine(b, 60, 7)
	require.NoError(t, err)
	eroded, err := Erode(b, se)
	require.NoError(t, err)
	want, err := Dilate(eroded, se)
	require.NoError(t, err)
	assert.True(t, want.Equal(opened))
}
