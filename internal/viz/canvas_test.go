package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	if c.String() != "⠀⠀" {
		t.Fatalf("new canvas not blank: %q", c.String())
	}

	c.Set(0, 0)
	c.Set(3, 3)
	if !c.On(0, 0) || !c.On(3, 3) || c.On(1, 0) {
		t.Error("On() disagrees with Set()")
	}
	if got := c.String(); got != "⠁⢀" {
		t.Errorf("String() = %q", got)
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	c.Clear()
	if c.On(0, 0) {
		t.Error("Clear() left pixels set")
	}
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(3, 2)
	c.VLine(1, 7, 0)
	for y := 0; y < 8; y++ {
		if !c.On(1, y) {
			t.Errorf("VLine missing pixel y=%d", y)
		}
	}
	c.HLine(5, 0, 2)
	for x := 0; x < 6; x++ {
		if !c.On(x, 2) {
			t.Errorf("HLine missing pixel x=%d", x)
		}
	}
	if rows := strings.Split(c.String(), "\n"); len(rows) != 2 {
		t.Errorf("rows = %d, want 2", len(rows))
	}
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(120, 40, []int{5, -100, 20})
	if !l.side || l.main != 120-sidePanelW {
		t.Fatalf("wide layout = %+v", l)
	}
	if l.array.X != 0 || l.target.X != l.array.W+1 || l.button.X != l.target.X+targetWidth+1 {
		t.Errorf("inputs overlap: %+v %+v %+v", l.array, l.target, l.button)
	}
	if l.button.X+l.button.W != l.main {
		t.Errorf("button ends at %d, want %d", l.button.X+l.button.W, l.main)
	}
	if l.blockW != len("-100")+4 {
		t.Errorf("blockW = %d", l.blockW)
	}

	b := l.block(l.perRow + 1)
	if b.X != l.blockW || b.Y != blocksTop+blockPitch {
		t.Errorf("block(perRow+1) = %+v", b)
	}

	narrow := computeLayout(60, 20, nil)
	if narrow.side || narrow.main != 60 {
		t.Errorf("narrow layout = %+v", narrow)
	}
	if narrow.rows(0) != 0 || narrow.rows(1) != 1 {
		t.Error("rows() miscounted")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if NextTheme(ThemeSunset.Name).Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
	names := ThemeNames()
	if len(names) != len(Themes) || names[1] != "retro" {
		t.Errorf("ThemeNames() = %v", names)
	}
}
