package warp_test

import (
	"math"
	"testing"

	"github.com/bradbohme-sys/meshwarp/mesh"
	"github.com/bradbohme-sys/meshwarp/warp"
	"github.com/stretchr/testify/assert"
)

// TestValidatePins_TooFew verifies the two-pin minimum.
func TestValidatePins_TooFew(t *testing.T) {
	assert.ErrorIs(t, warp.ValidatePins(nil), warp.ErrTooFewPins)

	one := []warp.Pin{warp.NewAnchor("a", mesh.Vec2{}, mesh.Vec2{}, 1)}
	assert.ErrorIs(t, warp.ValidatePins(one), warp.ErrTooFewPins)
}

// TestValidatePins_BadPin walks the malformed-pin cases.
func TestValidatePins_BadPin(t *testing.T) {
	ok := warp.NewAnchor("ok", mesh.Vec2{}, mesh.Vec2{X: 1}, 1)

	for _, tc := range []struct {
		name string
		pin  warp.Pin
	}{
		{"empty id", warp.NewAnchor("", mesh.Vec2{}, mesh.Vec2{}, 1)},
		{"nan position", warp.NewAnchor("p", mesh.Vec2{X: math.NaN()}, mesh.Vec2{}, 1)},
		{"inf target", warp.NewAnchor("p", mesh.Vec2{}, mesh.Vec2{X: math.Inf(1)}, 1)},
		{"zero radius", warp.NewAnchor("p", mesh.Vec2{}, mesh.Vec2{}, 0)},
		{"negative radius", warp.NewAnchor("p", mesh.Vec2{}, mesh.Vec2{}, -2)},
		{"nan angle", warp.NewPose("p", mesh.Vec2{}, mesh.Vec2{}, math.NaN(), 1)},
		{"short rail", warp.NewRail("p", mesh.Vec2{}, []mesh.Vec2{{X: 1}}, 1)},
		{"nan rail point", warp.NewRail("p", mesh.Vec2{}, []mesh.Vec2{{}, {Y: math.NaN()}}, 1)},
		{"unknown kind", warp.Pin{ID: "p", Kind: warp.PinKind(99), Radius: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, warp.ValidatePins([]warp.Pin{ok, tc.pin}), warp.ErrBadPin)
		})
	}
}

// TestValidatePins_DuplicateID verifies ID uniqueness.
func TestValidatePins_DuplicateID(t *testing.T) {
	pins := []warp.Pin{
		warp.NewAnchor("same", mesh.Vec2{}, mesh.Vec2{}, 1),
		warp.NewAnchor("same", mesh.Vec2{X: 1}, mesh.Vec2{X: 1}, 1),
	}
	assert.ErrorIs(t, warp.ValidatePins(pins), warp.ErrDuplicatePin)
}

// TestClosestOnSegment verifies interior projection and endpoint clamping.
func TestClosestOnSegment(t *testing.T) {
	a := mesh.Vec2{X: 0, Y: 0}
	b := mesh.Vec2{X: 4, Y: 0}

	got := warp.ClosestOnSegment(a, b, mesh.Vec2{X: 1, Y: 3})
	assert.Equal(t, mesh.Vec2{X: 1, Y: 0}, got, "perpendicular foot inside the segment")

	got = warp.ClosestOnSegment(a, b, mesh.Vec2{X: -2, Y: 1})
	assert.Equal(t, a, got, "clamped to the start endpoint")

	got = warp.ClosestOnSegment(a, b, mesh.Vec2{X: 9, Y: -1})
	assert.Equal(t, b, got, "clamped to the end endpoint")

	got = warp.ClosestOnSegment(a, a, mesh.Vec2{X: 5, Y: 5})
	assert.Equal(t, a, got, "degenerate segment collapses to its point")
}

// TestClosestOnPath verifies the per-segment minimum over a polyline.
func TestClosestOnPath(t *testing.T) {
	// An L-shaped path: down the y axis, then along x.
	path := []mesh.Vec2{{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 3, Y: 0}}

	p, d := warp.ClosestOnPath(path, mesh.Vec2{X: 2, Y: 1})
	assert.Equal(t, mesh.Vec2{X: 2, Y: 0}, p, "second segment wins")
	assert.InDelta(t, 1.0, d, 1e-12)

	p, d = warp.ClosestOnPath(path, mesh.Vec2{X: -1, Y: 2})
	assert.Equal(t, mesh.Vec2{X: 0, Y: 2}, p, "clamped to the first path point")
	assert.InDelta(t, 1.0, d, 1e-12)
}
