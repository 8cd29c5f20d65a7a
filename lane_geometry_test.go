package road2gpkg

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestBuildLaneGeometryLine(t *testing.T) {
	ref := LineReference{From: orb.Point{0, 0}, To: orb.Point{100, 0}}
	geometry, err := BuildLaneGeometry(ref, 3.5, 1.75, 5)
	if err != nil {
		t.Error(err)
		return
	}
	correctCenter := orb.LineString{{0, 1.75}, {25, 1.75}, {50, 1.75}, {75, 1.75}, {100, 1.75}}
	correctLeft := orb.LineString{{0, 3.5}, {25, 3.5}, {50, 3.5}, {75, 3.5}, {100, 3.5}}
	correctRight := orb.LineString{{0, 0}, {25, 0}, {50, 0}, {75, 0}, {100, 0}}
	for i := range correctCenter {
		if geometry.Centerline[i] != correctCenter[i] {
			t.Errorf("Centerline point %d must be %v, but got %v", i, correctCenter[i], geometry.Centerline[i])
		}
		if geometry.LeftBoundary[i] != correctLeft[i] {
			t.Errorf("Left boundary point %d must be %v, but got %v", i, correctLeft[i], geometry.LeftBoundary[i])
		}
		if geometry.RightBoundary[i] != correctRight[i] {
			t.Errorf("Right boundary point %d must be %v, but got %v", i, correctRight[i], geometry.RightBoundary[i])
		}
	}
}

func TestBuildLaneGeometryLineSouthbound(t *testing.T) {
	// The south road reference runs north; left of travel points to negative X,
	// so a lane centered at x=51.75 carries a negative lateral offset.
	ref := LineReference{From: orb.Point{50, -50}, To: orb.Point{50, -3.5}}
	geometry, err := BuildLaneGeometry(ref, 3.5, -1.75, 10)
	if err != nil {
		t.Error(err)
		return
	}
	for i, pt := range geometry.Centerline {
		if pt.X() != 51.75 {
			t.Errorf("Centerline point %d must sit at x=51.75, but got %f", i, pt.X())
		}
	}
	for i, pt := range geometry.LeftBoundary {
		if pt.X() != 50 {
			t.Errorf("Left boundary point %d must sit at x=50, but got %f", i, pt.X())
		}
	}
	for i, pt := range geometry.RightBoundary {
		if pt.X() != 53.5 {
			t.Errorf("Right boundary point %d must sit at x=53.5, but got %f", i, pt.X())
		}
	}
}

func TestBuildLaneGeometryArc(t *testing.T) {
	ref := ArcReference{Center: orb.Point{54, -3.5}, Radius: 2.25, StartAngle: math.Pi, EndAngle: math.Pi / 2}
	geometry, err := BuildLaneGeometry(ref, 3.5, 0, 8)
	if err != nil {
		t.Error(err)
		return
	}
	// Clockwise traversal: left of travel is radially outward
	for i, pt := range geometry.LeftBoundary {
		if r := findDistance(pt, ref.Center); math.Abs(r-4.0) > 1e-12 {
			t.Errorf("Left boundary point %d must be 4.0 away from center, but got %f", i, r)
		}
	}
	for i, pt := range geometry.RightBoundary {
		if r := findDistance(pt, ref.Center); math.Abs(r-0.5) > 1e-12 {
			t.Errorf("Right boundary point %d must be 0.5 away from center, but got %f", i, r)
		}
	}
}

func TestLaneGeometryInvariants(t *testing.T) {
	references := map[string]CurveReference{
		"line": LineReference{From: orb.Point{0, 0}, To: orb.Point{46, 0}},
		"arc":  ArcReference{Center: orb.Point{46, -3.5}, Radius: 2.25, StartAngle: math.Pi / 2, EndAngle: 0},
	}
	const width = 3.5
	for name, ref := range references {
		geometry, err := BuildLaneGeometry(ref, width, 0, 8)
		if err != nil {
			t.Error(err)
			return
		}
		for i := range geometry.Centerline {
			mid := middlePointSegment(geometry.LeftBoundary[i], geometry.RightBoundary[i])
			if findDistance(mid, geometry.Centerline[i]) > 1e-9 {
				t.Errorf("%s: centerline point %d must be the boundary midpoint, got %v instead of %v", name, i, geometry.Centerline[i], mid)
			}
			if w := findDistance(geometry.LeftBoundary[i], geometry.RightBoundary[i]); math.Abs(w-width) > 1e-9 {
				t.Errorf("%s: boundary separation at point %d must be %f, but got %f", name, i, width, w)
			}
		}
	}
}

func TestBuildLaneGeometryBadWidth(t *testing.T) {
	ref := LineReference{From: orb.Point{0, 0}, To: orb.Point{1, 0}}
	if _, err := BuildLaneGeometry(ref, 0, 0, 2); err == nil {
		t.Error("Zero width must be rejected")
	}
	if _, err := BuildLaneGeometry(ref, -1, 0, 2); err == nil {
		t.Error("Negative width must be rejected")
	}
}

func TestArcReferenceCollapsedRadius(t *testing.T) {
	ref := ArcReference{Center: orb.Point{0, 0}, Radius: 1, StartAngle: math.Pi, EndAngle: 0}
	if _, err := ref.Sample(-1.5, 4); err == nil {
		t.Error("Lateral offset beyond the radius must be rejected")
	}
}
