package viz

import (
	"strconv"

	"github.com/san-kum/bsviz/internal/field"
)

const (
	defaultWidth  = 120
	defaultHeight = 36

	inputTop     = 2
	inputHeight  = 3
	bannerLine   = 5
	blocksTop    = 7
	blockHeight  = 3
	blockPitch   = blockHeight + 1
	targetWidth  = 16
	buttonWidth  = 12
	sidePanelW   = 42
	minMainWidth = 48
	minArrayW    = 12
)

// layout places every clickable element in terminal cells. The main column
// starts at the left edge so mouse coordinates map onto it directly.
type layout struct {
	width, height int
	main          int
	side          bool

	array  field.Rect
	target field.Rect
	button field.Rect

	blockW int
	perRow int
}

func computeLayout(width, height int, values []int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	l := layout{width: width, height: height, main: width}
	if width-sidePanelW >= minMainWidth {
		l.main = width - sidePanelW
		l.side = true
	}

	arrayW := l.main - targetWidth - buttonWidth - 2
	if arrayW < minArrayW {
		arrayW = minArrayW
	}
	l.array = field.Rect{X: 0, Y: inputTop, W: arrayW, H: inputHeight}
	l.target = field.Rect{X: arrayW + 1, Y: inputTop, W: targetWidth, H: inputHeight}
	l.button = field.Rect{X: arrayW + targetWidth + 2, Y: inputTop, W: buttonWidth, H: inputHeight}

	l.blockW = maxDigits(values) + 4
	l.perRow = l.main / l.blockW
	if l.perRow < 1 {
		l.perRow = 1
	}
	return l
}

// block returns the bounds of the i-th value block.
func (l layout) block(i int) field.Rect {
	row, col := i/l.perRow, i%l.perRow
	return field.Rect{
		X: col * l.blockW,
		Y: blocksTop + row*blockPitch,
		W: l.blockW,
		H: blockHeight,
	}
}

func (l layout) rows(n int) int {
	if n == 0 {
		return 0
	}
	return (n + l.perRow - 1) / l.perRow
}

func maxDigits(values []int) int {
	w := 1
	for _, v := range values {
		if n := len(strconv.Itoa(v)); n > w {
			w = n
		}
	}
	return w
}
