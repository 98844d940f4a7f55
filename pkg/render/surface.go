package render

import (
	"image/color"

	"github.com/taigrr/wireview/pkg/math3d"
)

// Surface is the minimal raster target a frame is drawn onto. Coordinates
// are in pixels with the origin at the top-left corner.
type Surface interface {
	// Clear fills the whole surface.
	Clear(c color.RGBA)
	// FillPolygon fills a closed polygon.
	FillPolygon(pts []math3d.Vec2, c color.RGBA)
	// DrawLine draws an anti-aliased one pixel wide line.
	DrawLine(a, b math3d.Vec2, c color.RGBA)
	// FillCircle fills a disc.
	FillCircle(centre math3d.Vec2, radius float64, c color.RGBA)
	// Present publishes the completed frame.
	Present() error
}
