package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Display is a terminal screen that can flush its cell buffer.
// *uv.Terminal satisfies it.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalSurface draws into a framebuffer twice as tall as the terminal
// and presents it with upper half-block cells, two pixels per cell.
type TerminalSurface struct {
	*Framebuffer
	term       Display
	cols, rows int
}

// NewTerminalSurface creates a surface covering cols x rows cells.
func NewTerminalSurface(term Display, cols, rows int) *TerminalSurface {
	return &TerminalSurface{
		Framebuffer: NewFramebuffer(cols, rows*2),
		term:        term,
		cols:        cols,
		rows:        rows,
	}
}

// Resize adapts the surface to a new terminal size.
func (s *TerminalSurface) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.Framebuffer.Resize(cols, rows*2)
}

// PixelSize returns the framebuffer size in pixels.
func (s *TerminalSurface) PixelSize() (width, height int) {
	return s.Width, s.Height
}

// Present converts the framebuffer to cells and flushes the terminal.
func (s *TerminalSurface) Present() error {
	s.Draw(s.term, uv.Rect(0, 0, s.cols, s.rows))
	if err := s.term.Display(); err != nil {
		return fmt.Errorf("display terminal: %w", err)
	}
	return nil
}

// Draw converts the framebuffer to terminal cells within area.
// Each row of cells covers two framebuffer rows: ▀ with fg=top, bg=bottom.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor maps fully transparent pixels to the terminal default.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
