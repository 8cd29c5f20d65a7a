package road2gpkg

import (
	"math"

	"github.com/paulmach/orb"
)

// TShapeRoadTemplate describes a T-intersection with through and turning lanes.
//
// Layout (top view):
//	y=3.5   ═══════════════════════════════════════════════════
//	        │  west_l1 (◄─)    │  junction  │  east_l1 (◄─)    │
//	y=0     ───────────────────┼────────────┼───────────────────
//	        │  west_l2 (─►)    │            │  east_l2 (─►)    │
//	y=-3.5  ═══════════╗       │            │       ╔═══════════
//	            x=46   ║   south_l2 (▼) │ south_l1 (▲)   x=54
//	y=-50              ║       ═════════╧═════════  ║
//
// West road spans x 0..46, east road x 54..100, both referenced on y=0. The
// south road is referenced on x=50 and spans y -50..-3.5. The junction box
// holds one straight connector per through lane and four turn connectors.
//
// Right turns are fixed-radius arcs about the junction corners; left turns are
// straight-line interpolations between the lane endpoints. Both are legacy
// approximations of curvature-matched connectors and are kept exactly as the
// fixtures always produced them; where an arc ends short of the receiving
// lane (half a lane width), the connector terminates at its own branch point.
func TShapeRoadTemplate() *RoadTemplate {
	const (
		laneWidth    = 3.5
		halfLane     = laneWidth / 2.0
		westEnd      = 46.0
		eastStart    = 54.0
		southEnd     = -3.5
		southStartY  = -50.0
		southCenterX = 50.0
		roadSamples  = 10
		jctSamples   = 5
		turnSamples  = 8
		speedLimit   = 17.88
	)

	westRef := LineReference{From: orb.Point{0, 0}, To: orb.Point{westEnd, 0}}
	eastRef := LineReference{From: orb.Point{eastStart, 0}, To: orb.Point{100, 0}}
	southRef := LineReference{From: orb.Point{southCenterX, southStartY}, To: orb.Point{southCenterX, southEnd}}
	straightRef := LineReference{From: orb.Point{westEnd, 0}, To: orb.Point{eastStart, 0}}

	// Right turn south_l1 -> east_l2: arc about the junction SE corner
	turnSouthEastRef := ArcReference{
		Center:     orb.Point{eastStart, southEnd},
		Radius:     eastStart - (southCenterX + halfLane), // 2.25
		StartAngle: math.Pi,
		EndAngle:   math.Pi / 2,
	}
	// Right turn west_l2 -> south_l2: arc about the junction SW corner
	turnWestSouthRef := ArcReference{
		Center:     orb.Point{westEnd, southEnd},
		Radius:     (southCenterX - halfLane) - westEnd, // 2.25
		StartAngle: math.Pi / 2,
		EndAngle:   0,
	}
	// Left turn east_l1 -> south_l2: straight connector
	turnEastSouthRef := LineReference{
		From: orb.Point{eastStart, halfLane},
		To:   orb.Point{southCenterX - halfLane, southEnd},
	}
	// Left turn south_l1 -> west_l1: straight connector
	turnSouthWestRef := LineReference{
		From: orb.Point{southCenterX + halfLane, southEnd},
		To:   orb.Point{westEnd, halfLane},
	}

	return &RoadTemplate{
		Name:     "t_shape_road",
		Metadata: defaultMetadata(),
		Junctions: []JunctionSpec{
			{ID: "j_west", Name: "West Road Junction"},
			{ID: "j_east", Name: "East Road Junction"},
			{ID: "j_south", Name: "South Road Junction"},
			{ID: "j_intersection", Name: "T-Intersection Junction"},
		},
		Segments: []SegmentSpec{
			{ID: "j_west_s1", JunctionID: "j_west", Name: "West Road Segment"},
			{ID: "j_east_s1", JunctionID: "j_east", Name: "East Road Segment"},
			{ID: "j_south_s1", JunctionID: "j_south", Name: "South Road Segment"},
			// Each turn connector gets its own segment since they share no boundaries
			{ID: "j_int_straight", JunctionID: "j_intersection", Name: "Straight West-East"},
			{ID: "j_int_south_east", JunctionID: "j_intersection", Name: "Turn South to East"},
			{ID: "j_int_east_south", JunctionID: "j_intersection", Name: "Turn East to South"},
			{ID: "j_int_west_south", JunctionID: "j_intersection", Name: "Turn West to South"},
			{ID: "j_int_south_west", JunctionID: "j_intersection", Name: "Turn South to West"},
		},
		Lanes: []LaneSpec{
			{
				ID: "west_l1", SegmentID: "j_west_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW,
				Reference: westRef, Width: laneWidth, CenterOffset: halfLane, Samples: roadSamples,
			},
			{
				ID: "west_l2", SegmentID: "j_west_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE,
				Reference: westRef, Width: laneWidth, CenterOffset: -halfLane, Samples: roadSamples,
			},
			{
				ID: "east_l1", SegmentID: "j_east_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW,
				Reference: eastRef, Width: laneWidth, CenterOffset: halfLane, Samples: roadSamples,
			},
			{
				ID: "east_l2", SegmentID: "j_east_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE,
				Reference: eastRef, Width: laneWidth, CenterOffset: -halfLane, Samples: roadSamples,
			},
			{
				// Travels north along the reference, centerline at x=51.75
				ID: "south_l1", SegmentID: "j_south_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE,
				Reference: southRef, Width: laneWidth, CenterOffset: -halfLane, Samples: roadSamples,
			},
			{
				// Travels south against the reference, centerline at x=48.25
				ID: "south_l2", SegmentID: "j_south_s1",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_SOLID_WHITE, RightBoundaryStyle: BOUNDARY_STYLE_SOLID_YELLOW,
				Reference: southRef, Width: laneWidth, CenterOffset: halfLane, Samples: roadSamples,
			},
			{
				ID: "int_straight_l1", SegmentID: "j_int_straight",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: straightRef, Width: laneWidth, CenterOffset: halfLane, Samples: jctSamples,
			},
			{
				ID: "int_straight_l2", SegmentID: "j_int_straight",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: straightRef, Width: laneWidth, CenterOffset: -halfLane, Samples: jctSamples,
			},
			{
				ID: "int_south_east", SegmentID: "j_int_south_east",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: turnSouthEastRef, Width: laneWidth, CenterOffset: 0, Samples: turnSamples,
			},
			{
				ID: "int_east_south", SegmentID: "j_int_east_south",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: turnEastSouthRef, Width: laneWidth, CenterOffset: 0, Samples: turnSamples,
			},
			{
				ID: "int_west_south", SegmentID: "j_int_west_south",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_FORWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: turnWestSouthRef, Width: laneWidth, CenterOffset: 0, Samples: turnSamples,
			},
			{
				ID: "int_south_west", SegmentID: "j_int_south_west",
				LaneType: LANE_TYPE_DRIVING, Direction: DIRECTION_BACKWARD, SpeedLimitMPS: speedLimit,
				LeftBoundaryStyle: BOUNDARY_STYLE_NONE, RightBoundaryStyle: BOUNDARY_STYLE_NONE,
				Reference: turnSouthWestRef, Width: laneWidth, CenterOffset: 0, Samples: turnSamples,
			},
		},
		BranchPoints: []BranchPointSpec{
			// Dead ends, one per lane centerline endpoint
			{ID: "bp_west_end_l1", Location: orb.Point{0, halfLane}},
			{ID: "bp_west_end_l2", Location: orb.Point{0, -halfLane}},
			{ID: "bp_east_end_l1", Location: orb.Point{100, halfLane}},
			{ID: "bp_east_end_l2", Location: orb.Point{100, -halfLane}},
			{ID: "bp_south_end_l1", Location: orb.Point{southCenterX + halfLane, southStartY}},
			{ID: "bp_south_end_l2", Location: orb.Point{southCenterX - halfLane, southStartY}},
			// Junction clusters
			{ID: "bp_west_jct_n", Location: orb.Point{westEnd, halfLane}},
			{ID: "bp_west_jct_s", Location: orb.Point{westEnd, -halfLane}},
			{ID: "bp_east_jct_n", Location: orb.Point{eastStart, halfLane}},
			{ID: "bp_east_jct_s", Location: orb.Point{eastStart, -halfLane}},
			{ID: "bp_south_jct_e", Location: orb.Point{southCenterX + halfLane, southEnd}},
			{ID: "bp_south_jct_w", Location: orb.Point{southCenterX - halfLane, southEnd}},
			// Arc overshoot terminals: the legacy fixed-radius right turns end
			// half a lane width short of the receiving lane centerline
			{ID: "bp_turn_se_end", Location: orb.Point{eastStart, southEnd + 2.25}},
			{ID: "bp_turn_ws_start", Location: orb.Point{westEnd, southEnd + 2.25}},
		},
		BranchPointLanes: []BranchPointLaneSpec{
			// Dead ends
			{BranchPointID: "bp_west_end_l1", LaneID: "west_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_west_end_l2", LaneID: "west_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_east_end_l1", LaneID: "east_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_east_end_l2", LaneID: "east_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_south_end_l1", LaneID: "south_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_south_end_l2", LaneID: "south_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			// West side of the junction
			{BranchPointID: "bp_west_jct_n", LaneID: "west_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_west_jct_n", LaneID: "int_straight_l1", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_west_jct_n", LaneID: "int_south_west", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_west_jct_s", LaneID: "west_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_west_jct_s", LaneID: "int_straight_l2", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
			// East side of the junction
			{BranchPointID: "bp_east_jct_n", LaneID: "east_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_east_jct_n", LaneID: "int_straight_l1", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_east_jct_n", LaneID: "int_east_south", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_east_jct_s", LaneID: "east_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_east_jct_s", LaneID: "int_straight_l2", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			// South side of the junction
			{BranchPointID: "bp_south_jct_e", LaneID: "south_l1", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_south_jct_e", LaneID: "int_south_east", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_south_jct_e", LaneID: "int_south_west", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_south_jct_w", LaneID: "south_l2", Side: BRANCH_SIDE_A, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_south_jct_w", LaneID: "int_east_south", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
			{BranchPointID: "bp_south_jct_w", LaneID: "int_west_south", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			// Arc overshoot terminals
			{BranchPointID: "bp_turn_se_end", LaneID: "int_south_east", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_FINISH},
			{BranchPointID: "bp_turn_ws_start", LaneID: "int_west_south", Side: BRANCH_SIDE_B, LaneEnd: LANE_END_START},
		},
		AdjacentLanes: []AdjacencySpec{
			{LaneID: "west_l1", AdjacentLaneID: "west_l2", Side: ADJACENCY_RIGHT},
			{LaneID: "west_l2", AdjacentLaneID: "west_l1", Side: ADJACENCY_LEFT},
			{LaneID: "east_l1", AdjacentLaneID: "east_l2", Side: ADJACENCY_RIGHT},
			{LaneID: "east_l2", AdjacentLaneID: "east_l1", Side: ADJACENCY_LEFT},
			{LaneID: "south_l1", AdjacentLaneID: "south_l2", Side: ADJACENCY_LEFT},
			{LaneID: "south_l2", AdjacentLaneID: "south_l1", Side: ADJACENCY_RIGHT},
			{LaneID: "int_straight_l1", AdjacentLaneID: "int_straight_l2", Side: ADJACENCY_RIGHT},
			{LaneID: "int_straight_l2", AdjacentLaneID: "int_straight_l1", Side: ADJACENCY_LEFT},
			// Turn connectors sit in their own segments, no adjacency
		},
	}
}
