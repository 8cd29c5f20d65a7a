package road2gpkg

import (
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Assemble turns a declarative road template into a fully validated entity set.
// It is a single synchronous pass: lane geometry is computed via the lane
// geometry builder, start/finish endpoints are resolved from the declared
// direction, and every cross-reference is checked before anything is handed to
// an emitter. On any violation the whole assembly fails — there is no partial
// output.
func Assemble(template *RoadTemplate) (*Network, error) {
	net := &Network{
		Metadata:         template.Metadata,
		Junctions:        make([]*Junction, 0, len(template.Junctions)),
		Segments:         make([]*Segment, 0, len(template.Segments)),
		Lanes:            make([]*Lane, 0, len(template.Lanes)),
		BranchPoints:     make([]*BranchPoint, 0, len(template.BranchPoints)),
		BranchPointLanes: make([]*BranchPointLane, 0, len(template.BranchPointLanes)),
		AdjacentLanes:    make([]*AdjacentLane, 0, len(template.AdjacentLanes)),
	}
	if net.Metadata == nil {
		net.Metadata = defaultMetadata()
	}

	junctions := make(map[string]*Junction, len(template.Junctions))
	for _, spec := range template.Junctions {
		if _, ok := junctions[spec.ID]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "duplicate junction id '%s'", spec.ID)
		}
		junction := &Junction{ID: spec.ID, Name: spec.Name}
		junctions[spec.ID] = junction
		net.Junctions = append(net.Junctions, junction)
	}

	segments := make(map[string]*Segment, len(template.Segments))
	for _, spec := range template.Segments {
		if _, ok := segments[spec.ID]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "duplicate segment id '%s'", spec.ID)
		}
		if _, ok := junctions[spec.JunctionID]; !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "segment '%s' references undeclared junction '%s'", spec.ID, spec.JunctionID)
		}
		segment := &Segment{ID: spec.ID, JunctionID: spec.JunctionID, Name: spec.Name}
		segments[spec.ID] = segment
		net.Segments = append(net.Segments, segment)
	}

	lanes := make(map[string]*Lane, len(template.Lanes))
	for _, spec := range template.Lanes {
		if _, ok := lanes[spec.ID]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "duplicate lane id '%s'", spec.ID)
		}
		if _, ok := segments[spec.SegmentID]; !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "lane '%s' references undeclared segment '%s'", spec.ID, spec.SegmentID)
		}
		if spec.Reference == nil {
			return nil, errors.Wrapf(ErrInvalidTopology, "lane '%s' has no curve reference", spec.ID)
		}
		geometry, err := BuildLaneGeometry(spec.Reference, spec.Width, spec.CenterOffset, spec.Samples)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't build geometry for lane '%s'", spec.ID)
		}
		lane := &Lane{
			ID:                 spec.ID,
			SegmentID:          spec.SegmentID,
			LaneType:           spec.LaneType,
			Direction:          spec.Direction,
			SpeedLimitMPS:      spec.SpeedLimitMPS,
			LeftBoundaryStyle:  spec.LeftBoundaryStyle,
			RightBoundaryStyle: spec.RightBoundaryStyle,
			Geometry:           geometry,
		}
		lanes[spec.ID] = lane
		net.Lanes = append(net.Lanes, lane)
	}

	branchPoints := make(map[string]*BranchPoint, len(template.BranchPoints))
	for _, spec := range template.BranchPoints {
		if _, ok := branchPoints[spec.ID]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "duplicate branch point id '%s'", spec.ID)
		}
		branchPoint := &BranchPoint{ID: spec.ID, Location: spec.Location}
		branchPoints[spec.ID] = branchPoint
		net.BranchPoints = append(net.BranchPoints, branchPoint)
	}

	// A given lane end belongs to exactly one branch point
	type laneEndKey struct {
		laneID  string
		laneEnd LaneEnd
	}
	registeredEnds := make(map[laneEndKey]string, len(template.BranchPointLanes))
	for _, spec := range template.BranchPointLanes {
		branchPoint, ok := branchPoints[spec.BranchPointID]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "branch point lane references undeclared branch point '%s'", spec.BranchPointID)
		}
		lane, ok := lanes[spec.LaneID]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "branch point '%s' references undeclared lane '%s'", spec.BranchPointID, spec.LaneID)
		}
		key := laneEndKey{laneID: spec.LaneID, laneEnd: spec.LaneEnd}
		if prevBP, ok := registeredEnds[key]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "lane end ('%s', %s) already registered at branch point '%s'", spec.LaneID, spec.LaneEnd, prevBP)
		}
		endpoint := lane.Endpoint(spec.LaneEnd)
		if distance := planar.Distance(endpoint, branchPoint.Location); distance > LinearTolerance {
			return nil, errors.Wrapf(ErrGeometryMismatch,
				"lane '%s' %s endpoint (%s) is %f away from branch point '%s' location (%s), tolerance %f",
				spec.LaneID, spec.LaneEnd, PrepareWKTPointZ(endpoint), distance,
				spec.BranchPointID, PrepareWKTPointZ(branchPoint.Location), LinearTolerance)
		}
		registeredEnds[key] = spec.BranchPointID
		net.BranchPointLanes = append(net.BranchPointLanes, &BranchPointLane{
			BranchPointID: spec.BranchPointID,
			LaneID:        spec.LaneID,
			Side:          spec.Side,
			LaneEnd:       spec.LaneEnd,
		})
	}

	// A lane has at most one declared neighbor per side
	type adjacencyKey struct {
		laneID string
		side   AdjacencySide
	}
	declaredAdjacency := make(map[adjacencyKey]string, len(template.AdjacentLanes))
	for _, spec := range template.AdjacentLanes {
		if _, ok := lanes[spec.LaneID]; !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "adjacency references undeclared lane '%s'", spec.LaneID)
		}
		if _, ok := lanes[spec.AdjacentLaneID]; !ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "adjacency of lane '%s' references undeclared lane '%s'", spec.LaneID, spec.AdjacentLaneID)
		}
		if spec.LaneID == spec.AdjacentLaneID {
			return nil, errors.Wrapf(ErrInvalidTopology, "lane '%s' declared adjacent to itself", spec.LaneID)
		}
		key := adjacencyKey{laneID: spec.LaneID, side: spec.Side}
		if prev, ok := declaredAdjacency[key]; ok {
			return nil, errors.Wrapf(ErrInvalidTopology, "lane '%s' already has %s neighbor '%s'", spec.LaneID, spec.Side, prev)
		}
		declaredAdjacency[key] = spec.AdjacentLaneID
		net.AdjacentLanes = append(net.AdjacentLanes, &AdjacentLane{
			LaneID:         spec.LaneID,
			AdjacentLaneID: spec.AdjacentLaneID,
			Side:           spec.Side,
		})
	}

	return net, nil
}
