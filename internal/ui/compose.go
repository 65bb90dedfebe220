package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/nestedmenu/internal/geometry"
)

// layer is a block of pre-rendered lines placed at an absolute cell.
type layer struct {
	x, y  int
	lines []string
}

type segment struct {
	x    int
	text string
}

// compose flattens layers into a frame of exactly size.Height lines. Layers
// are painted in order, so a later layer covers the cells of earlier ones.
func compose(size geometry.Size, layers []layer) string {
	rows := make([][]segment, size.Height)
	for _, l := range layers {
		for i, line := range l.lines {
			y := l.y + i
			if y < 0 || y >= size.Height {
				continue
			}
			rows[y] = append(rows[y], segment{x: l.x, text: line})
		}
	}
	out := make([]string, size.Height)
	for y, segs := range rows {
		out[y] = composeRow(segs, size.Width)
	}
	return strings.Join(out, "\n")
}

// composeRow paints segs onto an empty row one after another. A width of
// zero or less leaves the row unbounded.
func composeRow(segs []segment, width int) string {
	row := ""
	for _, seg := range segs {
		text, x := seg.text, seg.x
		if x < 0 {
			text = ansi.TruncateLeft(text, -x, "")
			x = 0
		}
		if width > 0 {
			if x >= width {
				continue
			}
			if ansi.StringWidth(text) > width-x {
				text = ansi.Truncate(text, width-x, "")
			}
		}
		textWidth := ansi.StringWidth(text)
		if textWidth == 0 {
			continue
		}

		left := ansi.Truncate(row, x, "")
		if gap := x - ansi.StringWidth(left); gap > 0 {
			left += strings.Repeat(" ", gap)
		}
		right := ""
		if ansi.StringWidth(row) > x+textWidth {
			right = ansi.TruncateLeft(row, x+textWidth, "")
		}
		row = left + text + right
	}
	return row
}
