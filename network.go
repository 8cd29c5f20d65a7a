package road2gpkg

import (
	"github.com/paulmach/orb"
)

// LinearTolerance is the maximum allowed coordinate discrepancy between a lane
// endpoint and the location of the branch point it is registered against.
const LinearTolerance = 0.01

type Junction struct {
	ID   string
	Name string
}

type Segment struct {
	ID         string
	JunctionID string
	Name       string
}

type Lane struct {
	ID                 string
	SegmentID          string
	LaneType           LaneType
	Direction          LaneDirection
	SpeedLimitMPS      float64
	LeftBoundaryStyle  BoundaryStyle
	RightBoundaryStyle BoundaryStyle
	Geometry           LaneGeometry
}

// Endpoint returns the physical coordinate of the given lane end, resolved
// against the lane's centerline by its declared direction.
func (lane *Lane) Endpoint(end LaneEnd) orb.Point {
	return lane.Direction.Endpoint(lane.Geometry.Centerline, end)
}

type BranchPoint struct {
	ID       string
	Location orb.Point
}

type BranchPointLane struct {
	BranchPointID string
	LaneID        string
	Side          BranchSide
	LaneEnd       LaneEnd
}

type AdjacentLane struct {
	LaneID         string
	AdjacentLaneID string
	Side           AdjacencySide
}

type MetadataEntry struct {
	Key   string
	Value string
}

// Network is a fully assembled and validated entity set. Entities are kept in
// declaration order so that emission is bit-stable across runs.
type Network struct {
	Metadata         []MetadataEntry
	Junctions        []*Junction
	Segments         []*Segment
	Lanes            []*Lane
	BranchPoints     []*BranchPoint
	BranchPointLanes []*BranchPointLane
	AdjacentLanes    []*AdjacentLane
}

// FindLane returns the lane with given identifier or nil
func (net *Network) FindLane(laneID string) *Lane {
	for _, lane := range net.Lanes {
		if lane.ID == laneID {
			return lane
		}
	}
	return nil
}

// FindBranchPoint returns the branch point with given identifier or nil
func (net *Network) FindBranchPoint(branchPointID string) *BranchPoint {
	for _, bp := range net.BranchPoints {
		if bp.ID == branchPointID {
			return bp
		}
	}
	return nil
}
