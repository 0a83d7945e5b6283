package polycurve

// DefaultAlpha is the handle length of auto-smooth nodes, relative to the
// distance to the neighbouring node.
const DefaultAlpha = 1.0 / 3.0

// AutoSmoothHandles computes the handles of node b, given its previous node a
// and next node c. Both handles lie on a line perpendicular to the bisector
// of the angle a-b-c. The incoming handle has length alpha·|ab| and the
// outgoing one alpha·|bc|. Handles are returned as offsets from b.
//
// If b coincides with one of its neighbours, both handles are zero.
func AutoSmoothHandles(a, b, c Point, alpha float64) (in, out Vec2) {
	vNext := c.Sub(b)
	vPrev := a.Sub(b)
	lNext := vNext.Hypot()
	lPrev := vPrev.Hypot()
	if lNext == 0 || lPrev == 0 {
		return Vec2{}, Vec2{}
	}
	u := vNext.Mul(lPrev / lNext).Sub(vPrev)
	if u.Hypot() == 0 {
		return Vec2{}, Vec2{}
	}
	u = u.Normalize()
	return u.Mul(-alpha * lPrev), u.Mul(alpha * lNext)
}

// AutoSmooth returns a chain of cubic Béziers passing through points, with
// every interior node auto-smoothed. If the first and last points are equal,
// the shape is treated as closed and its start node is smoothed as well.
//
// A non-positive alpha selects [DefaultAlpha].
func AutoSmooth(points []Point, alpha float64) (Path, error) {
	if len(points) <= 2 {
		return nil, &DegenerateInputError{What: "smoothing points", Have: len(points), Need: 3}
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}

	path := make(Path, len(points)-1)
	for i := range path {
		path[i] = CubicBez{points[i], points[i], points[i+1], points[i+1]}
	}
	for i := 1; i < len(points)-1; i++ {
		in, out := AutoSmoothHandles(points[i-1], points[i], points[i+1], alpha)
		path[i-1].P2 = path[i-1].P2.Translate(in)
		path[i].P1 = path[i].P1.Translate(out)
	}

	if points[0] == points[len(points)-1] {
		in, out := AutoSmoothHandles(points[len(points)-2], points[0], points[1], alpha)
		last := len(path) - 1
		path[last].P2 = path[last].P2.Translate(in)
		path[0].P1 = path[0].P1.Translate(out)
	}
	Logger().Debug("auto-smoothed points", "points", len(points), "alpha", alpha)
	return path, nil
}
