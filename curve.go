package road2gpkg

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// SampleLine returns n points linearly interpolated between p0 and p1 inclusive.
// The i-th point sits at parameter t = i/(n-1), so the first point is exactly p0
// and the last is exactly p1. n must be at least 2.
func SampleLine(p0, p1 orb.Point, n int) (orb.LineString, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "line needs at least 2 points, got %d", n)
	}
	line := make(orb.LineString, n)
	line[0] = p0
	line[n-1] = p1
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		line[i] = orb.Point{
			p0.X() + t*(p1.X()-p0.X()),
			p0.Y() + t*(p1.Y()-p0.Y()),
		}
	}
	return line, nil
}

// SampleArc returns n points on the circle of given radius about center, with the
// angle linearly interpolated from theta0 to theta1. The rotational sense follows
// the sign of (theta1 - theta0); angles are not normalized, so callers must pass
// them in the intended sense. n must be at least 2.
func SampleArc(center orb.Point, radius, theta0, theta1 float64, n int) (orb.LineString, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "arc needs at least 2 points, got %d", n)
	}
	line := make(orb.LineString, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		angle := theta0 + t*(theta1-theta0)
		line[i] = orb.Point{
			center.X() + radius*math.Cos(angle),
			center.Y() + radius*math.Sin(angle),
		}
	}
	return line, nil
}
