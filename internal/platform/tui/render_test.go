package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blobblab/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorRed)
	s.SetColored(3, 0, '▌', core.ColorRed)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "█▌", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen lost %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
