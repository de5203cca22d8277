package warp

import (
	"math"

	"github.com/bradbohme-sys/meshwarp/mesh"
)

// PinKind tags the closed set of pin variants. Constraint injection
// switches exhaustively over this set; an unknown kind there is a
// programmer error and panics.
type PinKind int

const (
	// Anchor pins a neighborhood to a target position.
	Anchor PinKind = iota
	// Pose pins a neighborhood to a target position and rotation angle.
	Pose
	// Rail constrains the nearest mesh vertex to lie on a polyline.
	Rail
)

// Pin is one user-placed constraint. Pos is where the pin was placed on
// the rest shape; Radius bounds the influence neighborhood. The
// remaining fields are kind-specific: Target (Anchor, Pose), Angle in
// radians (Pose), Path (Rail).
//
// Build pins with NewAnchor, NewPose, or NewRail; hand-rolled values are
// validated at solve time.
type Pin struct {
	ID     string
	Kind   PinKind
	Pos    mesh.Vec2
	Radius float64

	Target mesh.Vec2
	Angle  float64
	Path   []mesh.Vec2
}

// NewAnchor builds a positional pin: vertices near pos are pulled so the
// neighborhood translates by target−pos.
func NewAnchor(id string, pos, target mesh.Vec2, radius float64) Pin {
	return Pin{ID: id, Kind: Anchor, Pos: pos, Target: target, Radius: radius}
}

// NewPose builds a position+rotation pin: the neighborhood is carried to
// target and rotated by angle (radians) about it.
func NewPose(id string, pos, target mesh.Vec2, angle, radius float64) Pin {
	return Pin{ID: id, Kind: Pose, Pos: pos, Target: target, Angle: angle, Radius: radius}
}

// NewRail builds a path pin: each global step, the mesh vertex currently
// nearest to path is projected onto it and pulled toward the projection.
func NewRail(id string, pos mesh.Vec2, path []mesh.Vec2, radius float64) Pin {
	return Pin{ID: id, Kind: Rail, Pos: pos, Path: path, Radius: radius}
}

// validate checks one pin's fields for structural sanity.
func (p Pin) validate() error {
	if p.ID == "" {
		return ErrBadPin
	}
	if !finite(p.Pos) || p.Radius <= 0 || math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) {
		return ErrBadPin
	}
	switch p.Kind {
	case Anchor:
		if !finite(p.Target) {
			return ErrBadPin
		}
	case Pose:
		if !finite(p.Target) || math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
			return ErrBadPin
		}
	case Rail:
		if len(p.Path) < 2 {
			return ErrBadPin
		}
		for _, q := range p.Path {
			if !finite(q) {
				return ErrBadPin
			}
		}
	default:
		return ErrBadPin
	}

	return nil
}

// validatePins checks the whole pin list: the two-pin minimum, per-pin
// structure, and ID uniqueness.
func validatePins(pins []Pin) error {
	if len(pins) < 2 {
		return ErrTooFewPins
	}
	seen := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		if err := p.validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return ErrDuplicatePin
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// finite reports whether both components of v are finite.
func finite(v mesh.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// closestOnSegment returns the point on segment [a, b] nearest to q —
// perpendicular projection clamped to the endpoints.
func closestOnSegment(a, b, q mesh.Vec2) mesh.Vec2 {
	d := b.Sub(a)
	den := d.Dot(d)
	if den == 0 {
		return a // degenerate segment
	}
	t := q.Sub(a).Dot(d) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return a.Add(d.Scale(t))
}

// closestOnPath returns the point on the polyline nearest to q and its
// distance, scanning every segment.
func closestOnPath(path []mesh.Vec2, q mesh.Vec2) (mesh.Vec2, float64) {
	best := path[0]
	bestDist := q.Sub(best).Len()
	for i := 0; i+1 < len(path); i++ {
		c := closestOnSegment(path[i], path[i+1], q)
		if d := q.Sub(c).Len(); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist
}
