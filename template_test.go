package road2gpkg

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMetadata(t *testing.T) {
	expected := map[string]string{
		"schema_version":                        "1.0",
		"linear_tolerance":                      "0.01",
		"angular_tolerance":                     "0.01",
		"scale_length":                          "1.0",
		"inertial_to_backend_frame_translation": "0.0,0.0,0.0",
	}
	entries := defaultMetadata()
	require.Len(t, entries, len(expected))
	for _, entry := range entries {
		assert.Equal(t, expected[entry.Key], entry.Value, entry.Key)
	}
}

func TestTwoLaneTemplateSpeedLimit(t *testing.T) {
	template := TwoLaneRoadTemplate()
	for _, lane := range template.Lanes {
		assert.Equal(t, 13.89, lane.SpeedLimitMPS, lane.ID)
	}
}

func TestTShapeTemplateSpeedLimit(t *testing.T) {
	template := TShapeRoadTemplate()
	for _, lane := range template.Lanes {
		assert.Equal(t, 17.88, lane.SpeedLimitMPS, lane.ID)
	}
}

func TestTShapeThroughLaneGeometry(t *testing.T) {
	net, err := Assemble(TShapeRoadTemplate())
	require.NoError(t, err)

	southL1 := net.FindLane("south_l1")
	require.NotNil(t, southL1)
	center := southL1.Geometry.Centerline
	assert.Equal(t, orb.Point{51.75, -50}, center[0])
	assert.Equal(t, orb.Point{51.75, -3.5}, center[len(center)-1])

	southL2 := net.FindLane("south_l2")
	require.NotNil(t, southL2)
	center = southL2.Geometry.Centerline
	assert.Equal(t, orb.Point{48.25, -50}, center[0])
	assert.Equal(t, orb.Point{48.25, -3.5}, center[len(center)-1])
}

func TestTShapeRightTurnGeometry(t *testing.T) {
	net, err := Assemble(TShapeRoadTemplate())
	require.NoError(t, err)

	// South-to-east turn: quarter arc about (54, -3.5) with radius 2.25. It
	// departs the south lane centerline and stops half a lane width below the
	// receiving east lane centerline.
	turnSE := net.FindLane("int_south_east")
	require.NotNil(t, turnSE)
	center := turnSE.Geometry.Centerline
	require.Len(t, center, 8)
	assert.Equal(t, 51.75, center[0].X())
	assert.InDelta(t, -3.5, center[0].Y(), 1e-12)
	assert.InDelta(t, 54, center[len(center)-1].X(), 1e-12)
	assert.InDelta(t, -1.25, center[len(center)-1].Y(), 1e-12)
	for i, pt := range center {
		assert.InDelta(t, 2.25, findDistance(pt, orb.Point{54, -3.5}), 1e-12, "point %d", i)
	}

	// West-to-south turn: mirror arc about (46, -3.5)
	turnWS := net.FindLane("int_west_south")
	require.NotNil(t, turnWS)
	center = turnWS.Geometry.Centerline
	require.Len(t, center, 8)
	assert.InDelta(t, 46, center[0].X(), 1e-12)
	assert.InDelta(t, -1.25, center[0].Y(), 1e-12)
	assert.InDelta(t, 48.25, center[len(center)-1].X(), 1e-12)
	assert.InDelta(t, -3.5, center[len(center)-1].Y(), 1e-12)
}

func TestTShapeLeftTurnGeometry(t *testing.T) {
	net, err := Assemble(TShapeRoadTemplate())
	require.NoError(t, err)

	// Left turns are straight connectors between the exact lane endpoints
	turnES := net.FindLane("int_east_south")
	require.NotNil(t, turnES)
	center := turnES.Geometry.Centerline
	assert.Equal(t, orb.Point{54, 1.75}, center[0])
	assert.Equal(t, orb.Point{48.25, -3.5}, center[len(center)-1])

	turnSW := net.FindLane("int_south_west")
	require.NotNil(t, turnSW)
	center = turnSW.Geometry.Centerline
	assert.Equal(t, orb.Point{51.75, -3.5}, center[0])
	assert.Equal(t, orb.Point{46, 1.75}, center[len(center)-1])
}

func TestTShapeJunctionConnectivity(t *testing.T) {
	net, err := Assemble(TShapeRoadTemplate())
	require.NoError(t, err)

	// Each junction-side cluster gathers a road lane end plus its connectors
	lanesAt := make(map[string][]string)
	for _, bpl := range net.BranchPointLanes {
		lanesAt[bpl.BranchPointID] = append(lanesAt[bpl.BranchPointID], bpl.LaneID)
	}
	assert.ElementsMatch(t, []string{"west_l1", "int_straight_l1", "int_south_west"}, lanesAt["bp_west_jct_n"])
	assert.ElementsMatch(t, []string{"west_l2", "int_straight_l2"}, lanesAt["bp_west_jct_s"])
	assert.ElementsMatch(t, []string{"east_l1", "int_straight_l1", "int_east_south"}, lanesAt["bp_east_jct_n"])
	assert.ElementsMatch(t, []string{"east_l2", "int_straight_l2"}, lanesAt["bp_east_jct_s"])
	assert.ElementsMatch(t, []string{"south_l1", "int_south_east", "int_south_west"}, lanesAt["bp_south_jct_e"])
	assert.ElementsMatch(t, []string{"south_l2", "int_east_south", "int_west_south"}, lanesAt["bp_south_jct_w"])

	// Road lanes register on side a, connectors on side b
	sides := map[BranchSide][]string{}
	for _, bpl := range net.BranchPointLanes {
		sides[bpl.Side] = append(sides[bpl.Side], bpl.LaneID)
	}
	for _, laneID := range sides[BRANCH_SIDE_B] {
		lane := net.FindLane(laneID)
		require.NotNil(t, lane)
		assert.Equal(t, "j_intersection", net.Segments[segmentIndex(net, lane.SegmentID)].JunctionID, laneID)
	}
}

func segmentIndex(net *Network, segmentID string) int {
	for i, segment := range net.Segments {
		if segment.ID == segmentID {
			return i
		}
	}
	return -1
}

func TestTShapeBoundaryWidths(t *testing.T) {
	net, err := Assemble(TShapeRoadTemplate())
	require.NoError(t, err)
	for _, lane := range net.Lanes {
		for i := range lane.Geometry.Centerline {
			w := findDistance(lane.Geometry.LeftBoundary[i], lane.Geometry.RightBoundary[i])
			assert.InDelta(t, 3.5, w, 1e-9, "%s point %d", lane.ID, i)
			mid := middlePointSegment(lane.Geometry.LeftBoundary[i], lane.Geometry.RightBoundary[i])
			assert.LessOrEqual(t, findDistance(mid, lane.Geometry.Centerline[i]), 1e-9, "%s point %d", lane.ID, i)
		}
	}
}

func TestTShapeArcOvershootTerminals(t *testing.T) {
	template := TShapeRoadTemplate()
	var seEnd, wsStart *BranchPointSpec
	for i := range template.BranchPoints {
		switch template.BranchPoints[i].ID {
		case "bp_turn_se_end":
			seEnd = &template.BranchPoints[i]
		case "bp_turn_ws_start":
			wsStart = &template.BranchPoints[i]
		}
	}
	require.NotNil(t, seEnd)
	require.NotNil(t, wsStart)
	// The fixed-radius arcs stop 0.5 short of the receiving lane centerline (y=-1.75)
	assert.Equal(t, orb.Point{54, -1.25}, seEnd.Location)
	assert.Equal(t, orb.Point{46, -1.25}, wsStart.Location)
	assert.InDelta(t, 0.5, math.Abs(seEnd.Location.Y()-(-1.75)), 1e-12)
}
