package road2gpkg

import (
	"github.com/paulmach/orb"
)

// A RoadTemplate is the declarative input of the assembler: ordered descriptors
// for every entity plus explicit branch point and adjacency wiring. Nothing is
// inferred — the template must spell out all of it, the assembler only
// validates consistency and computes geometry.

type JunctionSpec struct {
	ID   string
	Name string
}

type SegmentSpec struct {
	ID         string
	JunctionID string
	Name       string
}

type LaneSpec struct {
	ID                 string
	SegmentID          string
	LaneType           LaneType
	Direction          LaneDirection
	SpeedLimitMPS      float64
	LeftBoundaryStyle  BoundaryStyle
	RightBoundaryStyle BoundaryStyle
	// Reference plus lateral placement of the lane within the segment's
	// boundary system. CenterOffset is the signed lateral offset of the lane
	// centerline from the reference, positive to the left of travel along the
	// reference's sampling order.
	Reference    CurveReference
	Width        float64
	CenterOffset float64
	Samples      int
}

type BranchPointSpec struct {
	ID       string
	Location orb.Point
}

type BranchPointLaneSpec struct {
	BranchPointID string
	LaneID        string
	Side          BranchSide
	LaneEnd       LaneEnd
}

type AdjacencySpec struct {
	LaneID         string
	AdjacentLaneID string
	Side           AdjacencySide
}

type RoadTemplate struct {
	Name             string
	Metadata         []MetadataEntry
	Junctions        []JunctionSpec
	Segments         []SegmentSpec
	Lanes            []LaneSpec
	BranchPoints     []BranchPointSpec
	BranchPointLanes []BranchPointLaneSpec
	AdjacentLanes    []AdjacencySpec
}

// defaultMetadata returns the metadata entries every generated fixture carries
func defaultMetadata() []MetadataEntry {
	return []MetadataEntry{
		{Key: "schema_version", Value: "1.0"},
		{Key: "linear_tolerance", Value: "0.01"},
		{Key: "angular_tolerance", Value: "0.01"},
		{Key: "scale_length", Value: "1.0"},
		{Key: "inertial_to_backend_frame_translation", Value: "0.0,0.0,0.0"},
	}
}
