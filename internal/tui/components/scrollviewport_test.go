package components

import (
	"fmt"
	"strings"
	"testing"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestRenderScrollbar_ZeroHeight(t *testing.T) {
	if got := RenderScrollbar(0, 100, 0); got != "" {
		t.Errorf("expected empty string for zero height, got %q", got)
	}
}

func TestRenderScrollbar_ContentFits(t *testing.T) {
	lines := strings.Split(RenderScrollbar(5, 5, 0), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line != " " {
			t.Errorf("line %d: expected blank gutter, got %q", i, line)
		}
	}
}

func TestRenderScrollbar_ThumbPosition(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		thumbRow int
	}{
		{"top", 0, 0},
		{"bottom", 90, 9},
		{"middle", 45, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(RenderScrollbar(10, 100, tt.offset), "\n")
			if len(lines) != 10 {
				t.Fatalf("expected 10 lines, got %d", len(lines))
			}
			for i, line := range lines {
				want := scrollTrack
				if i == tt.thumbRow {
					want = scrollThumb
				}
				if line != want {
					t.Errorf("line %d: expected %q, got %q", i, want, line)
				}
			}
		})
	}
}

func TestScrollViewport_ViewHeightAndWidth(t *testing.T) {
	sv := NewScrollViewport(20, 4)
	sv.SetLines(numberedLines(2))

	lines := strings.Split(sv.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := len([]rune(line)); w != 20 {
			t.Errorf("row %d: expected width 20, got %d (%q)", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "line 0") {
		t.Errorf("expected first line rendered, got %q", lines[0])
	}
}

func TestScrollViewport_ShowRange(t *testing.T) {
	sv := NewScrollViewport(20, 5)
	sv.SetLines(numberedLines(30))

	sv.ShowRange(10, 12)
	if sv.YOffset() != 8 {
		t.Errorf("expected offset 8 to reveal lines 10-12, got %d", sv.YOffset())
	}

	sv.ShowRange(9, 9)
	if sv.YOffset() != 8 {
		t.Errorf("expected no scroll for visible line, got %d", sv.YOffset())
	}

	sv.ShowRange(2, 4)
	if sv.YOffset() != 2 {
		t.Errorf("expected offset 2 when scrolling up, got %d", sv.YOffset())
	}

	sv.ShowRange(20, 29)
	if sv.YOffset() != 20 {
		t.Errorf("expected tall range aligned to top, got %d", sv.YOffset())
	}
}

func TestScrollViewport_SetLinesClampsOffset(t *testing.T) {
	sv := NewScrollViewport(20, 5)
	sv.SetLines(numberedLines(30))
	sv.ShowRange(25, 29)

	sv.SetLines(numberedLines(6))

	if sv.YOffset() != 1 {
		t.Errorf("expected offset clamped to 1, got %d", sv.YOffset())
	}
}

func TestScrollViewport_GotoTop(t *testing.T) {
	sv := NewScrollViewport(20, 5)
	sv.SetLines(numberedLines(30))
	sv.ShowRange(25, 29)

	sv.GotoTop()

	if sv.YOffset() != 0 {
		t.Errorf("expected offset 0, got %d", sv.YOffset())
	}
}
