package road2gpkg

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// CurveReference is a parametric baseline a lane is built around. Sample
// produces the curve shifted by the given lateral distance, where positive
// lateral points left of the direction of travel (the sampling order).
type CurveReference interface {
	Sample(lateral float64, n int) (orb.LineString, error)
}

// LineReference is a straight baseline between two endpoints.
type LineReference struct {
	From orb.Point
	To   orb.Point
}

func (ref LineReference) Sample(lateral float64, n int) (orb.LineString, error) {
	p0, p1 := ref.From, ref.To
	if lateral != 0 {
		normal := leftNormal(p0, p1)
		p0 = shiftPoint(p0, normal, lateral)
		p1 = shiftPoint(p1, normal, lateral)
	}
	return SampleLine(p0, p1, n)
}

// ArcReference is a circular baseline about Center, traversed from StartAngle
// to EndAngle (radians, not normalized).
type ArcReference struct {
	Center     orb.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (ref ArcReference) Sample(lateral float64, n int) (orb.LineString, error) {
	// The perpendicular to an arc is radial. Traversing clockwise (decreasing
	// angle) the left of travel points radially outward, so a positive lateral
	// grows the radius; counter-clockwise it shrinks it.
	radialSign := 1.0
	if ref.EndAngle > ref.StartAngle {
		radialSign = -1.0
	}
	radius := ref.Radius + radialSign*lateral
	if radius <= 0 {
		return nil, errors.Errorf("lateral %f collapses arc radius %f", lateral, ref.Radius)
	}
	return SampleArc(ref.Center, radius, ref.StartAngle, ref.EndAngle, n)
}

// LaneGeometry is the boundary/centerline triple of one lane. All three lines
// share point count and parameterization; at every index the centerline is the
// midpoint of the boundaries and the boundaries are exactly width apart.
type LaneGeometry struct {
	LeftBoundary  orb.LineString
	RightBoundary orb.LineString
	Centerline    orb.LineString
}

// BuildLaneGeometry computes the geometry of a lane whose centerline runs at
// the given signed lateral offset from the reference, with the left boundary
// at offset+width/2 and the right boundary at offset-width/2.
func BuildLaneGeometry(ref CurveReference, width, offset float64, n int) (LaneGeometry, error) {
	if width <= 0 {
		return LaneGeometry{}, errors.Errorf("lane width must be positive, got %f", width)
	}
	half := width / 2.0
	left, err := ref.Sample(offset+half, n)
	if err != nil {
		return LaneGeometry{}, errors.Wrap(err, "Can't sample left boundary")
	}
	right, err := ref.Sample(offset-half, n)
	if err != nil {
		return LaneGeometry{}, errors.Wrap(err, "Can't sample right boundary")
	}
	center, err := ref.Sample(offset, n)
	if err != nil {
		return LaneGeometry{}, errors.Wrap(err, "Can't sample centerline")
	}
	return LaneGeometry{
		LeftBoundary:  left,
		RightBoundary: right,
		Centerline:    center,
	}, nil
}
