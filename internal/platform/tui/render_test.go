package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestPainterPlainTerminal(t *testing.T) {
	// A renderer writing to a buffer has no color support.
	p := NewPainter(lipgloss.NewRenderer(&bytes.Buffer{}))

	screen := core.NewScreen(12, 3)
	screen.DrawTextColor(1, 0, "Score: 10", core.ColorBrightYellow)
	screen.SetColor(5, 1, '▲', core.ColorBrightGreen)
	screen.DrawHLine(0, 2, 12, '═')

	if got, want := p.Paint(screen), screen.String(); got != want {
		t.Errorf("Paint() = %q, expected %q", got, want)
	}
}

func TestPainterUnknownColorIsPlain(t *testing.T) {
	p := NewPainter(lipgloss.NewRenderer(&bytes.Buffer{}))

	screen := core.NewScreen(4, 1)
	screen.SetColor(0, 0, 'x', core.Color(99))

	if got := p.Paint(screen); got != "x   " {
		t.Errorf("Paint() = %q, expected %q", got, "x   ")
	}
}
