// Package collision holds the axis-aligned overlap tests used to keep the
// player out of static obstacles.
package collision

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports strict AABB overlap. Rects that only share an edge do not
// overlap.
func Overlaps(a, b Rect) bool {
	return a.Right() > b.X &&
		a.X < b.Right() &&
		a.Bottom() > b.Y &&
		a.Y < b.Bottom()
}

// Blocked reports whether candidate overlaps any obstacle. Obstacle counts
// are small and static, so this is a plain linear scan.
func Blocked(candidate Rect, obstacles []Rect) bool {
	for _, o := range obstacles {
		if Overlaps(candidate, o) {
			return true
		}
	}
	return false
}
