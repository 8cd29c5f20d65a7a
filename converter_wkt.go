package road2gpkg

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// The persisted schema stores Z-suffixed WKT (LINESTRINGZ / POINTZ) with the
// z-coordinate fixed at 0. Coordinates are rendered with the shortest decimal
// representation that round-trips, which keeps the output byte-deterministic
// and locale independent.

// PrepareWKTLinestringZ returns WKT representation of LineString (Z fixed at 0)
func PrepareWKTLinestringZ(pts orb.LineString) string {
	ptsStr := make([]string, len(pts))
	for i := range pts {
		ptsStr[i] = formatCoord(pts[i].X()) + " " + formatCoord(pts[i].Y()) + " 0"
	}
	return "LINESTRINGZ(" + strings.Join(ptsStr, ", ") + ")"
}

// PrepareWKTPointZ returns WKT representation of Point (Z fixed at 0)
func PrepareWKTPointZ(pt orb.Point) string {
	return "POINTZ(" + formatCoord(pt.X()) + " " + formatCoord(pt.Y()) + " 0)"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseWKTLinestringZ parses a LINESTRINGZ (or LINESTRING Z) string back into a
// line. The construction is planar, so the z-coordinate is validated as a number
// and dropped.
func ParseWKTLinestringZ(wktStr string) (orb.LineString, error) {
	if !strings.Contains(strings.ToUpper(wktStr), "LINESTRING") {
		return nil, errors.Errorf("WKT string is not a LINESTRING: '%s'", wktStr)
	}
	content, err := extractParenthesesContent(wktStr)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(content, ",")
	if len(parts) < 2 {
		return nil, errors.Errorf("LINESTRING must have at least 2 points, got %d", len(parts))
	}
	line := make(orb.LineString, len(parts))
	for i, part := range parts {
		pt, err := parseSinglePoint(part)
		if err != nil {
			return nil, err
		}
		line[i] = pt
	}
	return line, nil
}

// ParseWKTPointZ parses a POINTZ (or POINT Z) string back into a point
func ParseWKTPointZ(wktStr string) (orb.Point, error) {
	if !strings.Contains(strings.ToUpper(wktStr), "POINT") {
		return orb.Point{}, errors.Errorf("WKT string is not a POINT: '%s'", wktStr)
	}
	content, err := extractParenthesesContent(wktStr)
	if err != nil {
		return orb.Point{}, err
	}
	return parseSinglePoint(content)
}

// extractParenthesesContent returns the content between the outermost parentheses
func extractParenthesesContent(wktStr string) (string, error) {
	openParen := strings.Index(wktStr, "(")
	closeParen := strings.LastIndex(wktStr, ")")
	if openParen < 0 || closeParen < 0 || openParen >= closeParen {
		return "", errors.Errorf("malformed WKT: missing or mismatched parentheses in '%s'", wktStr)
	}
	return wktStr[openParen+1 : closeParen], nil
}

// parseSinglePoint parses a space-separated "x y z" coordinate group
func parseSinglePoint(pointStr string) (orb.Point, error) {
	fields := strings.Fields(strings.TrimSpace(pointStr))
	if len(fields) != 3 {
		return orb.Point{}, errors.Errorf("malformed WKT point: '%s'", pointStr)
	}
	coords := make([]float64, 3)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return orb.Point{}, errors.Wrapf(err, "malformed WKT point: '%s'", pointStr)
		}
		coords[i] = v
	}
	return orb.Point{coords[0], coords[1]}, nil
}
