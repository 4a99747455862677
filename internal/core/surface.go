package core

// VectorSurface is the drawing capability a stage paints on.
// Coordinates are playfield units; implementations scale them to whatever
// device they target. Calls are synchronous and never touch simulation state.
type VectorSurface interface {
	// Clear erases the whole surface.
	Clear()

	DrawLine(x1, y1, x2, y2 float64, c Color)

	// DrawPolygon connects points in order, closing the outline back to the
	// first point when closed is true. Fewer than two points draw nothing.
	DrawPolygon(points []Point, c Color, closed bool)

	// DrawCircle draws the outline of a circle.
	DrawCircle(x, y, r float64, c Color)

	// DrawDot draws a filled disc.
	DrawDot(x, y, r float64, c Color)

	// DrawText writes text with its baseline-left at (x, y).
	DrawText(text string, x, y, size float64, c Color)

	// DrawShape rotates local points by rotation, scales them by scale,
	// translates them to (x, y) and draws the closed outline.
	DrawShape(local []Point, x, y, rotation, scale float64, c Color)
}

// HudUpdate is a partial update of the score/fuel/altitude display.
// Nil fields leave the displayed value unchanged.
type HudUpdate struct {
	Score    *int
	Fuel     *float64
	Altitude *float64

	// AltitudeUnknown shows the altitude placeholder. It wins over Altitude.
	AltitudeUnknown bool
}

// Hud is the numeric readout sink a stage pushes updates to.
type Hud interface {
	Update(u HudUpdate)
}

// Ptr returns a pointer to v. Handy for building HudUpdate literals.
func Ptr[T any](v T) *T {
	return &v
}
