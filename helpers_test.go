package pixelkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// grid builds a buffer from rows of gray values.
func grid(t *testing.T, rows [][]uint8) *Buffer {
	t.Helper()
	b, err := NewBuffer(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, v := range row {
			require.NoError(t, b.Set(x, y, Gray(v)))
		}
	}
	return b
}

func filled(t *testing.T, w, h int, c RGB) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			b.set(x, y, c)
		}
	}
	return b
}

func paintRect(b *Buffer, x0, y0, x1, y1 int, c RGB) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.set(x, y, c)
		}
	}
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "error: %v", err)
}
