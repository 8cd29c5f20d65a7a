package road2gpkg

import (
	"math"

	"github.com/paulmach/orb"
)

// findDistance returns Euclidean distance between two points
func findDistance(p, q orb.Point) float64 {
	xdistance := p.X() - q.X()
	ydistance := p.Y() - q.Y()
	return math.Sqrt(xdistance*xdistance + ydistance*ydistance)
}

// middlePointSegment returns middle point for given segment
func middlePointSegment(p, q orb.Point) orb.Point {
	return orb.Point{(p.X() + q.X()) / 2.0, (p.Y() + q.Y()) / 2.0}
}

// leftNormal returns the unit normal pointing left of travel for the segment p -> q
func leftNormal(p, q orb.Point) orb.Point {
	vec := [2]float64{q.X() - p.X(), q.Y() - p.Y()}
	vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
	return orb.Point{-vec[1] / vecLen, vec[0] / vecLen}
}

// shiftPoint returns point moved by distance along given unit direction
func shiftPoint(p, dir orb.Point, distance float64) orb.Point {
	return orb.Point{p.X() + dir.X()*distance, p.Y() + dir.Y()*distance}
}

// getLength returns length for given line
func getLength(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += findDistance(line[i-1], line[i])
	}
	return totalLength
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts orb.LineString) orb.LineString {
	inputLen := len(pts)
	output := make(orb.LineString, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}

// copyLine copies points of given line. Returns new slice
func copyLine(pts orb.LineString) orb.LineString {
	output := make(orb.LineString, len(pts))
	copy(output, pts)
	return output
}
