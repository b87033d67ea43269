// pkg/render/surface.go
package render

import (
	"image/color"
	"math"
)

// Surface is a 2D line-drawing target. Backends exist for windowed
// output (engoview, raylibview), terminals (tcell) and offscreen
// images (WebP export).
type Surface interface {
	Size() (width, height int)
	Clear()
	DrawLine(from, to ScreenPoint, lineColor color.RGBA)
	Present()
}

// plotLine rasterizes a segment with Bresenham's algorithm, calling
// plot for every cell. Callers clip out-of-bounds cells themselves.
func plotLine(from, to ScreenPoint, plot func(x, y int)) {
	x0, y0 := int(math.Round(from.X)), int(math.Round(from.Y))
	x1, y1 := int(math.Round(to.X)), int(math.Round(to.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
