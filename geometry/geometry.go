// Package geometry holds the fixed key placement of the YIVU40 split keyboard.
package geometry

// 键帽尺寸与间距（像素）。
const (
	KeyWidth  = 78.0
	KeyHeight = 60.0
	KeyGap    = 4.0

	UnitX = KeyWidth + KeyGap
	UnitY = KeyHeight + KeyGap

	// 右半区相对左半区的水平偏移；最内侧一列只偏移一半。
	splitOffset = 30.0
	innerOffset = 15.0

	Rows    = 8
	Columns = 7
)

// DefaultMargin is the uniform padding around the keyboard.
const DefaultMargin = 10.0

// Rect is one key's placement. Rotation is reserved for angled thumb keys
// and is currently always zero.
type Rect struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// Grid is indexed by [row][column]; nil marks a cell with no physical key.
type Grid [][]*Rect

// At returns the rect at (row, col), or nil when out of range or absent.
func (g Grid) At(row, col int) *Rect {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}

// Positions 返回以 margin 为外边距的固定布局表。
// 行 0-3 为左半区（3 为拇指行），行 4-7 为右半区，右半区列序镜像。
func Positions(margin float64) Grid {
	key := func(ux, uy, dx float64) *Rect {
		return &Rect{
			X:      margin + UnitX*ux + dx,
			Y:      margin + UnitY*uy,
			Width:  KeyWidth,
			Height: KeyHeight,
		}
	}
	wide := func(r *Rect, dx float64) *Rect {
		r.X += dx
		r.Width = KeyWidth * 1.5
		return r
	}

	left := func(uy float64) []*Rect {
		return []*Rect{
			key(0, uy, 0), key(1, uy, 0), key(2, uy, 0), key(3, uy, 0),
			key(4, uy, 0), key(5, uy, 0), key(6, uy, innerOffset),
		}
	}
	right := func(uy float64) []*Rect {
		return []*Rect{
			key(14, uy, splitOffset), key(13, uy, splitOffset), key(12, uy, splitOffset),
			key(11, uy, splitOffset), key(10, uy, splitOffset), key(9, uy, splitOffset),
			key(8, uy, innerOffset),
		}
	}

	row2 := left(2)
	row2[6] = nil
	row6 := right(2)
	row6[6] = nil

	return Grid{
		left(0),
		left(1),
		row2,
		{nil, nil, nil, key(2, 3, 0), key(3, 3, 0), wide(key(4, 3, 0), 0), nil},
		right(0),
		right(1),
		row6,
		{nil, nil, nil, key(11, 3, splitOffset), key(10, 3, splitOffset), wide(key(9, 3, splitOffset), -KeyWidth*0.5), nil},
	}
}

// ContentSize is the extent of the key area without margins.
func ContentSize() (width, height float64) {
	return UnitX*14 + splitOffset + KeyWidth, UnitY*3 + KeyHeight
}

// CanvasSize returns the image size in whole pixels for the given margin.
func CanvasSize(margin float64) (width, height int) {
	w, h := ContentSize()
	return int(w + margin*2), int(h + margin*2)
}
