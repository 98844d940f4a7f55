// Package render turns a registry of wireframe meshes into frames: culling,
// depth ordering, per-face Phong shading and projection onto a Surface.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/taigrr/wireview/pkg/math3d"
)

// coordLimit bounds coordinates handed to the float32 rasterizer.
const coordLimit = 1 << 20

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Framebuffer is an in-memory RGBA Surface. Filled shapes and lines are
// anti-aliased by coverage.
type Framebuffer struct {
	Width  int
	Height int

	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
	}
}

// Resize reallocates the pixel buffer. Contents are discarded.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
	fb.raster.Reset(width, height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	pix := fb.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
}

// SetPixel sets a pixel at (x, y). Out of bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// GetPixel returns the color at (x, y), or transparent black out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// FillPolygon fills the closed polygon pts. Fewer than three points draw
// nothing.
func (fb *Framebuffer) FillPolygon(pts []math3d.Vec2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	fb.raster.Reset(fb.Width, fb.Height)
	fb.raster.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		fb.raster.LineTo(f32(p.X), f32(p.Y))
	}
	fb.raster.ClosePath()
	fb.paint(c)
}

// DrawLine draws a one pixel wide anti-aliased line as a thin quad.
func (fb *Framebuffer) DrawLine(a, b math3d.Vec2, c color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		fb.FillPolygon([]math3d.Vec2{
			{X: a.X - 0.5, Y: a.Y - 0.5},
			{X: a.X + 0.5, Y: a.Y - 0.5},
			{X: a.X + 0.5, Y: a.Y + 0.5},
			{X: a.X - 0.5, Y: a.Y + 0.5},
		}, c)
		return
	}
	// Half-width offset perpendicular to the line.
	nx, ny := -dy/l*0.5, dx/l*0.5
	fb.FillPolygon([]math3d.Vec2{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, c)
}

// FillCircle fills a disc of the given radius.
func (fb *Framebuffer) FillCircle(centre math3d.Vec2, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	cx, cy, r := centre.X, centre.Y, radius
	k := r * kappa

	fb.raster.Reset(fb.Width, fb.Height)
	fb.raster.MoveTo(f32(cx+r), f32(cy))
	fb.raster.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	fb.raster.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	fb.raster.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	fb.raster.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	fb.raster.ClosePath()
	fb.paint(c)
}

// Present is a no-op: an in-memory framebuffer is always up to date.
func (fb *Framebuffer) Present() error {
	return nil
}

// Image returns the backing image. It is reused across frames.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

func (fb *Framebuffer) paint(c color.RGBA) {
	fb.raster.DrawOp = draw.Over
	fb.raster.Draw(fb.img, fb.img.Bounds(), image.NewUniform(c), image.Point{})
}

func f32(v float64) float32 {
	return float32(math.Max(-coordLimit, math.Min(coordLimit, v)))
}
