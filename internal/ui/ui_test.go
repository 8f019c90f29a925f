package ui

import (
	"image"
	"testing"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{20, "XX"},
		{49, "XLIX"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.n); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTowerBarHitTest(t *testing.T) {
	b := NewTowerBar(10, 410, DefaultFace())
	if len(b.buttons) != 4 {
		t.Fatalf("buttons = %d", len(b.buttons))
	}
	first := b.buttons[0].Rect
	if tt, ok := b.TypeAt(first.Min.X+1, first.Min.Y+1); !ok || tt != b.types[0] {
		t.Fatalf("TypeAt first = %v %v", tt, ok)
	}
	gap := image.Pt(first.Max.X+towerButtonGap/2, first.Min.Y+1)
	if _, ok := b.TypeAt(gap.X, gap.Y); ok {
		t.Fatal("gap between buttons must not hit")
	}
}
