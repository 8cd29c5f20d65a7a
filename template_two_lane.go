package road2gpkg

import (
	"github.com/paulmach/orb"
)

// TwoLaneRoadTemplate describes a simple 2-lane straight road (100m).
//
// Road layout:
//	y = 3.5  ════════════════════════════════  Left edge
//	              Lane 1 (forward)             ───►
//	y = 0.0  ┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈  Center line
//	              Lane 2 (backward)            ◄───
//	y = -3.5 ════════════════════════════════  Right edge
//	x = 0                               x = 100
func TwoLaneRoadTemplate() *RoadTemplate {
	const (
		laneWidth  = 3.5
		halfLane   = laneWidth / 2.0
		roadLength = 100.0
		samples    = 5
		speedLimit = 13.89
	)

	reference := LineReference{From: orb.Point{0, 0}, To: orb.Point{roadLength, 0}}

	return &RoadTemplate{
		Name:     "two_lane_road",
		Metadata: defaultMetadata(),
		Junctions: []JunctionSpec{
			{ID: "j1", Name: "Main Road Junction"},
		},
		Segments: []SegmentSpec{
			{ID: "j1_s1", JunctionID: "j1", Name: "Main Road Segment"},
		},
		Lanes: []LaneSpec{
			{
				ID:                 "j1_s1_lane1",
				SegmentID:          "j1_s1",
				LaneType:           LANE_TYPE_DRIVING,
				Direction:          DIRECTION_FORWARD,
				SpeedLimitMPS:      speedLimit,
				LeftBoundaryStyle:  BOUNDARY_STYLE_SOLID_YELLOW,
				RightBoundaryStyle: BOUNDARY_STYLE_DASHED_YELLOW,
				Reference:          reference,
				Width:              laneWidth,
				CenterOffset:       halfLane,
				Samples:            samples,
			},
			{
				ID:                 "j1_s1_lane2",
				SegmentID:          "j1_s1",
				LaneType:           LANE_TYPE_DRIVING,
				Direction:          DIRECTION_BACKWARD,
				SpeedLimitMPS:      speedLimit,
				LeftBoundaryStyle:  BOUNDARY_STYLE_DASHED_YELLOW,
				RightBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW,
				Reference:          reference,
				Width:              laneWidth,
				CenterOffset:       -halfLane,
				Samples:            samples,
			},
		},
		// One branch point per lane centerline endpoint: the opposing lanes'
		// centerlines never coincide, so each road end carries two of them.
		BranchPoints: []BranchPointSpec{
			{ID: "bp_start_lane1", Location: orb.Point{0, halfLane}},
			{ID: "bp_start_lane2", Location: orb.Point{0, -halfLane}},
			{ID: "bp_end_lane1", Location: orb.Point{roadLength, halfLane}},
			{ID: "bp_end_lane2", Location: orb.Point{roadLength, -halfLane}},
		},
		BranchPointLanes: []BranchPointLaneSpec{
			{BranchPointID: "bp_start_lane1", LaneID: "j1_s1_lane1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_start_lane2", LaneID: "j1_s1_lane2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_end_lane1", LaneID: "j1_s1_lane1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_end_lane2", LaneID: "j1_s1_lane2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
		},
		AdjacentLanes: []AdjacencySpec{
			{LaneID: "j1_s1_lane1", AdjacentLaneID: "j1_s1_lane2", Side: ADJACENCY_RIGHT},
			{LaneID: "j1_s1_lane2", AdjacentLaneID: "j1_s1_lane1", Side: ADJACENCY_LEFT},
		},
	}
}
