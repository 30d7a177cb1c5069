package components

import "strings"

const (
	scrollTrack = "│"
	scrollThumb = "█"
)

// RenderScrollbar renders a 1-column vertical scrollbar for a view of
// viewHeight lines over contentHeight lines scrolled to yOffset. When the
// content fits, it renders a blank gutter so the layout width stays stable.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	rows := make([]string, viewHeight)
	if contentHeight <= viewHeight {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	thumbRange := viewHeight - thumbSize
	maxOffset := contentHeight - viewHeight
	thumbTop := min(max(yOffset*thumbRange/maxOffset, 0), thumbRange)

	for i := range rows {
		if i >= thumbTop && i < thumbTop+thumbSize {
			rows[i] = scrollThumb
		} else {
			rows[i] = scrollTrack
		}
	}
	return strings.Join(rows, "\n")
}
