package road2gpkg

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// PrepareGeoJSONLinestring returns GeoJSON geometry for given line
func PrepareGeoJSONLinestring(pts orb.LineString) *geojson.Geometry {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].X(), pts[i].Y()}
	}
	return geojson.NewLineStringGeometry(pts2d)
}

// PrepareGeoJSONPoint returns GeoJSON geometry for given point
func PrepareGeoJSONPoint(pt orb.Point) *geojson.Geometry {
	return geojson.NewPointGeometry([]float64{pt.X(), pt.Y()})
}

// NetworkToGeoJSON renders a network as a FeatureCollection for visual
// inspection: one LineString feature per lane geometry plus one Point feature
// per branch point. Centerlines are emitted in travel order so arrow styling
// in viewers shows the declared direction.
func NetworkToGeoJSON(net *Network) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, lane := range net.Lanes {
		centerline := lane.Geometry.Centerline
		if lane.Direction == DIRECTION_BACKWARD {
			centerline = reverseLine(centerline)
		}
		for _, part := range []struct {
			role string
			line orb.LineString
		}{
			{role: "left_boundary", line: lane.Geometry.LeftBoundary},
			{role: "right_boundary", line: lane.Geometry.RightBoundary},
			{role: "centerline", line: centerline},
		} {
			feature := geojson.NewFeature(PrepareGeoJSONLinestring(part.line))
			feature.SetProperty("lane_id", lane.ID)
			feature.SetProperty("segment_id", lane.SegmentID)
			feature.SetProperty("role", part.role)
			feature.SetProperty("lane_type", lane.LaneType.String())
			feature.SetProperty("direction", lane.Direction.String())
			if part.role == "centerline" {
				feature.SetProperty("length_m", getLength(part.line))
			}
			fc.AddFeature(feature)
		}
	}
	for _, bp := range net.BranchPoints {
		feature := geojson.NewFeature(PrepareGeoJSONPoint(bp.Location))
		feature.SetProperty("branch_point_id", bp.ID)
		fc.AddFeature(feature)
	}
	return fc
}
