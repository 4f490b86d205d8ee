package pixelkernel

import (
	"math"
	"strings"
)

// StructElement is a binary mask with odd dimensions, anchored at its center.
type StructElement struct {
	rows, cols int
	cells      []uint8 // len = rows*cols, values 0 or 1
}

// NewStructElement builds a mask from rows of 0/1 values. All rows must have
// the same odd length, the row count must be odd and at least one cell must
// be set.
func NewStructElement(mask [][]uint8) (*StructElement, error) {
	const op = "NewStructElement"
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, invalidArg(op, "empty mask")
	}
	rows, cols := len(mask), len(mask[0])
	if rows%2 == 0 || cols%2 == 0 {
		return nil, invalidArg(op, "mask %dx%d must have odd dimensions", rows, cols)
	}
	se := &StructElement{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
	set := 0
	for r, row := range mask {
		if len(row) != cols {
			return nil, invalidArg(op, "row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, v := range row {
			if v > 1 {
				return nil, invalidArg(op, "cell (%d,%d) = %d, want 0 or 1", r, c, v)
			}
			se.cells[r*cols+c] = v
			set += int(v)
		}
	}
	if set == 0 {
		return nil, invalidArg(op, "mask has no set cell")
	}
	return se, nil
}

func (se *StructElement) Rows() int { return se.rows }
func (se *StructElement) Cols() int { return se.cols }

// At reports whether cell (row, col) is set. Cells outside the mask are unset.
func (se *StructElement) At(row, col int) bool {
	if row < 0 || row >= se.rows || col < 0 || col >= se.cols {
		return false
	}
	return se.cells[row*se.cols+col] != 0
}

// String draws the mask with '#' for set cells, one line per row.
func (se *StructElement) String() string {
	var sb strings.Builder
	for r := range se.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range se.cols {
			if se.At(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (se *StructElement) valid() bool {
	return se != nil && se.rows > 0 && se.cols > 0 && se.rows%2 == 1 && se.cols%2 == 1 &&
		len(se.cells) == se.rows*se.cols
}

func (se *StructElement) rowEmpty(r int) bool {
	for c := range se.cols {
		if se.cells[r*se.cols+c] != 0 {
			return false
		}
	}
	return true
}

// firstSet returns the first set column of row r, or 0 when r is outside the
// mask or empty.
func (se *StructElement) firstSet(r int) int {
	if r < 0 || r >= se.rows {
		return 0
	}
	for c := range se.cols {
		if se.cells[r*se.cols+c] != 0 {
			return c
		}
	}
	return 0
}

// ============ LINE ELEMENT ============

// LineElement rasterizes a line of the given length and angle (degrees) into
// an odd-sized mask. Angles are taken modulo 180; angles above 90 are built
// as (angle mod 91) and mirrored horizontally. Every row of the result holds
// at least one set cell.
func LineElement(angle, length int) (*StructElement, error) {
	const op = "LineElement"
	if angle < 0 {
		return nil, invalidArg(op, "angle %d must not be negative", angle)
	}
	if length <= 0 {
		return nil, invalidArg(op, "length %d must be positive", length)
	}

	angle %= 180
	above90Deg := angle > 90
	angle %= 91

	alpha := float64(angle) * math.Pi / 180
	cols := int(math.Ceil(float64(length)*math.Cos(alpha))) + 1
	rows := int(math.Ceil(float64(length)*math.Sin(alpha))) + 1
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}

	se := &StructElement{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
	if cols == 1 {
		for r := range rows {
			se.cells[r*cols] = 1
		}
	} else {
		gradient := float64(rows-1) / float64(cols-1)
		for c := range cols {
			r := int(math.Round(float64(rows)-gradient*float64(c))) - 1
			se.cells[clampInt(r, 0, rows-1)*cols+c] = 1
		}
	}

	// Steep lines skip rows. Each gap copies a cell from the neighbour row
	// nearer its edge, walking from the edge toward the middle.
	for r := 0; r <= rows/2; r++ {
		if se.rowEmpty(r) {
			se.cells[r*cols+se.firstSet(r-1)] = 1
		}
	}
	for r := rows - 1; r > rows/2; r-- {
		if se.rowEmpty(r) {
			se.cells[r*cols+se.firstSet(r+1)] = 1
		}
	}

	if above90Deg {
		for r := range rows {
			row := se.cells[r*cols : (r+1)*cols]
			for c := range cols / 2 {
				row[c], row[cols-1-c] = row[cols-1-c], row[c]
			}
		}
	}
	return se, nil
}

// ============ EROSION / DILATION ============

// Erode writes, for every pixel inside the margin (see marginRect), the
// per-channel minimum over the set cells of se centered on that pixel.
// Pixels in the margin are left black.
func Erode(b *Buffer, se *StructElement) (*Buffer, error) {
	return morph("Erode", b, se, false)
}

// Dilate is Erode with the maximum in place of the minimum.
func Dilate(b *Buffer, se *StructElement) (*Buffer, error) {
	return morph("Dilate", b, se, true)
}

// OpenByLine erodes a monochromatic buffer with a line element and dilates the
// result with the same element. The dilation does not reflect the element, so
// for lines that are not point-symmetric (angle 60, length 7 for one) this is
// not a true morphological opening and applying it twice can change the image
// again.
func OpenByLine(b *Buffer, angle, length int) (*Buffer, error) {
	const op = "OpenByLine"
	if b.empty() {
		return nil, invalidArg(op, "empty buffer")
	}
	if angle <= 0 {
		return nil, invalidArg(op, "angle %d must be positive", angle)
	}
	if length <= 0 {
		return nil, invalidArg(op, "length %d must be positive", length)
	}
	se, err := LineElement(angle, length)
	if err != nil {
		return nil, err
	}
	if err := checkFits(op, b, se); err != nil {
		return nil, err
	}
	if !IsMonochromatic(b) {
		return nil, precondition(op, "buffer is not monochromatic")
	}
	eroded, err := Erode(b, se)
	if err != nil {
		return nil, err
	}
	return Dilate(eroded, se)
}

func checkFits(op string, b *Buffer, se *StructElement) error {
	if b.w < se.cols || b.h < se.rows {
		return invalidArg(op, "buffer %dx%d smaller than mask %dx%d", b.w, b.h, se.cols, se.rows)
	}
	return nil
}

func morph(op string, b *Buffer, se *StructElement, dilate bool) (*Buffer, error) {
	if b.empty() {
		return nil, invalidArg(op, "empty buffer")
	}
	if !se.valid() {
		return nil, invalidArg(op, "malformed structuring element")
	}
	if err := checkFits(op, b, se); err != nil {
		return nil, err
	}
	offs := maskOffsets(se)
	if len(offs) == 0 {
		return nil, invalidArg(op, "structuring element has no set cell")
	}

	out := newBuffer(b.w, b.h)
	area := marginRect(b.w, b.h, se)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			acc := b.at(x+offs[0].X, y+offs[0].Y)
			for _, o := range offs[1:] {
				c := b.at(x+o.X, y+o.Y)
				if dilate {
					acc = RGB{max(acc.R, c.R), max(acc.G, c.G), max(acc.B, c.B)}
				} else {
					acc = RGB{min(acc.R, c.R), min(acc.G, c.G), min(acc.B, c.B)}
				}
			}
			out.set(x, y, acc)
		}
	}
	return out, nil
}
