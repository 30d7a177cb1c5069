package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Completion renders how much of the collection is done, like:
// 3/8 completed ■■■□□□□□ 37%
type Completion struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewCompletion creates a new Completion instance.
func NewCompletion(done, total, width int) Completion {
	return Completion{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View returns the rendered bar, or an empty string when there is nothing to
// measure.
func (c Completion) View() string {
	if c.Total <= 0 || c.Width <= 0 {
		return ""
	}

	done := min(max(c.Done, 0), c.Total)
	percent := (done * 100) / c.Total
	filled := (done * c.Width) / c.Total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, c.Width-filled)

	return fmt.Sprintf("%d/%d completed %s %d%%", done, c.Total, bar, percent)
}
