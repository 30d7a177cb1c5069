package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScrollViewport wraps bubbles/viewport.Model with a scrollbar column. It
// holds pre-rendered lines and can be asked to bring a line range into view.
type ScrollViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewScrollViewport creates a viewport. The width includes 1 column for the
// scrollbar.
func NewScrollViewport(width, height int) ScrollViewport {
	vp := viewport.New(max(width-1, 0), height)
	vp.SetContent("")

	return ScrollViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (s *ScrollViewport) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}

	s.width = width
	s.height = height
	s.viewport.Width = max(width-1, 0)
	s.viewport.Height = height

	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content, keeping the scroll offset where possible.
func (s *ScrollViewport) SetLines(lines []string) {
	s.lines = append(s.lines[:0:0], lines...)
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// Update forwards mouse wheel and paging keys to the viewport.
func (s ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the visible lines with the scrollbar on the right.
func (s ScrollViewport) View() string {
	if s.height <= 0 {
		return ""
	}

	contentLines := strings.Split(s.viewport.View(), "\n")
	scrollbarLines := strings.Split(RenderScrollbar(s.height, len(s.lines), s.viewport.YOffset), "\n")
	contentWidth := max(s.width-1, 0)

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		b.WriteString(cl)
		if pad := contentWidth - lipgloss.Width(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(scrollbarLines) {
			b.WriteString(scrollbarLines[i])
		}
	}
	return b.String()
}

// ShowRange scrolls the minimum amount needed for lines top..bottom
// (inclusive) to be visible. A range taller than the view is aligned to top.
func (s *ScrollViewport) ShowRange(top, bottom int) {
	if top < 0 || top >= len(s.lines) {
		return
	}
	first := s.viewport.YOffset
	last := first + s.height - 1

	switch {
	case top < first || bottom-top+1 > s.height:
		s.viewport.SetYOffset(top)
	case bottom > last:
		s.viewport.SetYOffset(bottom - s.height + 1)
	}
}

// GotoTop scrolls back to the first line.
func (s *ScrollViewport) GotoTop() {
	s.viewport.GotoTop()
}

// YOffset returns the index of the first visible line.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// ContentWidth returns the width available for content.
func (s ScrollViewport) ContentWidth() int {
	return max(s.width-1, 0)
}

// Height returns the number of visible lines.
func (s ScrollViewport) Height() int {
	return s.height
}
