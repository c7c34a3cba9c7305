package tui

import (
	"testing"

	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/view"
)

func TestBodyHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		desc   bool
		want   int
	}{
		{"roomy", 40, true, 40 - ChromeHeight},
		{"tiny falls back to one card", 5, true, view.CardHeight(true)},
		{"tiny without descriptions", 5, false, view.CardHeight(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyHeight(tt.height, tt.desc); got != tt.want {
				t.Errorf("BodyHeight(%d, %v) = %d, want %d", tt.height, tt.desc, got, tt.want)
			}
		})
	}
}

func TestGridWidth(t *testing.T) {
	if got := GridWidth(120, false, false); got != 120 {
		t.Errorf("GridWidth() = %d, want 120", got)
	}
	if got := GridWidth(120, true, true); got != 120-view.MenuWidth-view.CartPanelWidth {
		t.Errorf("GridWidth() with panels = %d", got)
	}
	if got := GridWidth(30, true, true); got != view.MinCardWidth+2 {
		t.Errorf("GridWidth() on a narrow terminal = %d, want %d", got, view.MinCardWidth+2)
	}
}

func TestCycle(t *testing.T) {
	order := []int{authEmail, authPassword}
	if got := cycle(order, authEmail, 1); got != authPassword {
		t.Errorf("cycle forward = %d", got)
	}
	if got := cycle(order, authEmail, -1); got != authPassword {
		t.Errorf("cycle backward should wrap, got %d", got)
	}
	if got := cycle(order, authName, 0); got != authEmail {
		t.Errorf("a field outside the order should snap to the first, got %d", got)
	}
}
