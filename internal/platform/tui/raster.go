package tui

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Braille cells hold a 2x4 grid of dots. dotBits[row][col] is the bit for
// that dot in the U+2800 block.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

type textRun struct {
	col, row int
	text     string
	color    core.Color
}

// Raster is a core.VectorSurface drawing onto a braille canvas.
// The playfield is scaled uniformly to fit the canvas and centered.
type Raster struct {
	fieldW, fieldH float64
	cols, rows     int
	dots           []uint8
	colors         []core.Color
	texts          []textRun

	scale      float64 // Dots per world unit
	offX, offY float64 // Dot offset of the world origin
}

// NewRaster creates a canvas of cols x rows cells showing a fieldW x fieldH world.
func NewRaster(cols, rows int, fieldW, fieldH float64) *Raster {
	r := &Raster{fieldW: fieldW, fieldH: fieldH}
	r.Resize(cols, rows)
	return r
}

// Resize changes the canvas size and clears it.
func (r *Raster) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.dots = make([]uint8, r.cols*r.rows)
	r.colors = make([]core.Color, r.cols*r.rows)
	r.texts = r.texts[:0]

	dotW, dotH := float64(r.cols*2), float64(r.rows*4)
	r.scale = 0
	if r.fieldW > 0 && r.fieldH > 0 {
		r.scale = math.Min(dotW/r.fieldW, dotH/r.fieldH)
	}
	r.offX = (dotW - r.fieldW*r.scale) / 2
	r.offY = (dotH - r.fieldH*r.scale) / 2
}

// SetField changes the world size shown on the canvas.
func (r *Raster) SetField(fieldW, fieldH float64) {
	r.fieldW, r.fieldH = fieldW, fieldH
	r.Resize(r.cols, r.rows)
}

// Size returns the canvas size in cells.
func (r *Raster) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Clear erases the whole surface.
func (r *Raster) Clear() {
	clear(r.dots)
	clear(r.colors)
	r.texts = r.texts[:0]
}

// toDots maps a world point to fractional dot coordinates.
func (r *Raster) toDots(x, y float64) (float64, float64) {
	return x*r.scale + r.offX, y*r.scale + r.offY
}

func (r *Raster) plot(px, py int, c core.Color) {
	if px < 0 || py < 0 || px >= r.cols*2 || py >= r.rows*4 {
		return
	}
	i := (py/4)*r.cols + px/2
	r.dots[i] |= dotBits[py%4][px%2]
	r.colors[i] = c
}

// DrawLine draws a straight line with Bresenham's algorithm after clipping
// it to the canvas.
func (r *Raster) DrawLine(x1, y1, x2, y2 float64, c core.Color) {
	ax, ay := r.toDots(x1, y1)
	bx, by := r.toDots(x2, y2)
	ax, ay, bx, by, ok := r.clip(ax, ay, bx, by)
	if !ok {
		return
	}

	x0, y0 := int(math.Round(ax)), int(math.Round(ay))
	xe, ye := int(math.Round(bx)), int(math.Round(by))
	dx, dy := abs(xe-x0), -abs(ye-y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	err := dx + dy
	for {
		r.plot(x0, y0, c)
		if x0 == xe && y0 == ye {
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

// clip trims a dot-space segment to the canvas (Liang-Barsky).
// It rejects segments with non-finite ends.
func (r *Raster) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	for _, v := range [...]float64{x0, y0, x1, y1} {
		if !core.IsFinite(v) {
			return 0, 0, 0, 0, false
		}
	}
	maxX, maxY := float64(r.cols*2-1), float64(r.rows*4-1)
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}

	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// DrawPolygon connects points in order, closing the outline when closed is true.
func (r *Raster) DrawPolygon(points []core.Point, c core.Color, closed bool) {
	if len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		r.DrawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, c)
	}
	if closed {
		last := points[len(points)-1]
		r.DrawLine(last.X, last.Y, points[0].X, points[0].Y, c)
	}
}

// DrawCircle draws a circle outline from short chords.
func (r *Raster) DrawCircle(x, y, radius float64, c core.Color) {
	rd := radius * r.scale
	if !core.IsFinite(rd) || rd <= 0 {
		return
	}
	n := max(12, int(2*math.Pi*rd/2))
	prev := core.Pt(x+radius, y)
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := core.Pt(x+radius*math.Cos(a), y+radius*math.Sin(a))
		r.DrawLine(prev.X, prev.Y, p.X, p.Y, c)
		prev = p
	}
}

// DrawDot draws a filled disc of at least one dot.
func (r *Raster) DrawDot(x, y, radius float64, c core.Color) {
	cx, cy := r.toDots(x, y)
	if !core.IsFinite(cx) || !core.IsFinite(cy) {
		return
	}
	rd := radius * r.scale
	if rd < 1 {
		r.plot(int(math.Round(cx)), int(math.Round(cy)), c)
		return
	}
	for py := int(cy - rd); py <= int(cy+rd); py++ {
		for px := int(cx - rd); px <= int(cx+rd); px++ {
			fx, fy := float64(px)-cx, float64(py)-cy
			if fx*fx+fy*fy <= rd*rd {
				r.plot(px, py, c)
			}
		}
	}
}

// DrawText places text so that its baseline-left corner sits at (x, y).
// Glyph size is fixed by the terminal; size only nudges the row upward.
func (r *Raster) DrawText(text string, x, y, size float64, c core.Color) {
	px, py := r.toDots(x, y-size/2)
	if !core.IsFinite(px) || !core.IsFinite(py) {
		return
	}
	r.texts = append(r.texts, textRun{
		col:   int(px) / 2,
		row:   int(py) / 4,
		text:  text,
		color: c,
	})
}

// DrawShape rotates, scales and translates local points, then draws the
// closed outline.
func (r *Raster) DrawShape(local []core.Point, x, y, rotation, scale float64, c core.Color) {
	at := core.Pt(x, y)
	pts := make([]core.Point, len(local))
	for i, p := range local {
		pts[i] = p.Rotate(rotation).Scale(scale).Add(at)
	}
	r.DrawPolygon(pts, c, true)
}

// Flush copies the canvas into dst starting at row top. Text is drawn over dots.
func (r *Raster) Flush(dst *core.Screen, top int) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			i := row*r.cols + col
			if r.dots[i] == 0 {
				continue
			}
			dst.SetCell(col, top+row, core.Cell{
				Rune:  rune(brailleBase + int(r.dots[i])),
				Color: r.colors[i],
			})
		}
	}
	for _, t := range r.texts {
		if t.row < 0 || t.row >= r.rows {
			continue
		}
		dst.DrawText(t.col, top+t.row, t.text, t.color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
