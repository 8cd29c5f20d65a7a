package road2gpkg

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// ReadGeoPackage loads a generated fixture back into a Network. Rows come back
// in insertion order (rowid), so a read-back of a freshly written file mirrors
// the emitted entity order.
func ReadGeoPackage(fname string) (*Network, error) {
	db, err := sql.Open("sqlite", fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open input file")
	}
	defer db.Close()

	net := &Network{}
	if err := readMetadata(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read metadata")
	}
	if err := readJunctions(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read junctions")
	}
	if err := readSegments(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read segments")
	}
	if err := readLanes(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read lanes")
	}
	if err := readBranchPoints(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read branch points")
	}
	if err := readBranchPointLanes(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read branch point lanes")
	}
	if err := readAdjacentLanes(db, net); err != nil {
		return nil, errors.Wrap(err, "Can't read adjacent lanes")
	}
	return net, nil
}

func readMetadata(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT key, value FROM maliput_metadata ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var entry MetadataEntry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return err
		}
		net.Metadata = append(net.Metadata, entry)
	}
	return rows.Err()
}

func readJunctions(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT junction_id, name FROM junctions ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		junction := &Junction{}
		if err := rows.Scan(&junction.ID, &junction.Name); err != nil {
			return err
		}
		net.Junctions = append(net.Junctions, junction)
	}
	return rows.Err()
}

func readSegments(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT segment_id, junction_id, name FROM segments ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		segment := &Segment{}
		if err := rows.Scan(&segment.ID, &segment.JunctionID, &segment.Name); err != nil {
			return err
		}
		net.Segments = append(net.Segments, segment)
	}
	return rows.Err()
}

func readLanes(db *sql.DB, net *Network) error {
	rows, err := db.Query(`
		SELECT lane_id, segment_id, lane_type, direction, speed_limit_mps,
		       left_boundary_type, right_boundary_type,
		       left_boundary, right_boundary, centerline
		FROM lanes ORDER BY rowid
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var laneType, direction, leftStyle, rightStyle string
		var leftWKT, rightWKT, centerWKT string
		lane := &Lane{}
		if err := rows.Scan(&lane.ID, &lane.SegmentID, &laneType, &direction, &lane.SpeedLimitMPS,
			&leftStyle, &rightStyle, &leftWKT, &rightWKT, &centerWKT); err != nil {
			return err
		}
		if lane.LaneType, err = ParseLaneType(laneType); err != nil {
			return errors.Wrapf(err, "lane '%s'", lane.ID)
		}
		if lane.Direction, err = ParseLaneDirection(direction); err != nil {
			return errors.Wrapf(err, "lane '%s'", lane.ID)
		}
		if lane.LeftBoundaryStyle, err = ParseBoundaryStyle(leftStyle); err != nil {
			return errors.Wrapf(err, "lane '%s'", lane.ID)
		}
		if lane.RightBoundaryStyle, err = ParseBoundaryStyle(rightStyle); err != nil {
			return errors.Wrapf(err, "lane '%s'", lane.ID)
		}
		if lane.Geometry.LeftBoundary, err = ParseWKTLinestringZ(leftWKT); err != nil {
			return errors.Wrapf(err, "lane '%s' left boundary", lane.ID)
		}
		if lane.Geometry.RightBoundary, err = ParseWKTLinestringZ(rightWKT); err != nil {
			return errors.Wrapf(err, "lane '%s' right boundary", lane.ID)
		}
		if lane.Geometry.Centerline, err = ParseWKTLinestringZ(centerWKT); err != nil {
			return errors.Wrapf(err, "lane '%s' centerline", lane.ID)
		}
		net.Lanes = append(net.Lanes, lane)
	}
	return rows.Err()
}

func readBranchPoints(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT branch_point_id, location FROM branch_points ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var locationWKT string
		bp := &BranchPoint{}
		if err := rows.Scan(&bp.ID, &locationWKT); err != nil {
			return err
		}
		if bp.Location, err = ParseWKTPointZ(locationWKT); err != nil {
			return errors.Wrapf(err, "branch point '%s'", bp.ID)
		}
		net.BranchPoints = append(net.BranchPoints, bp)
	}
	return rows.Err()
}

func readBranchPointLanes(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT branch_point_id, lane_id, side, lane_end FROM branch_point_lanes ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var side, laneEnd string
		bpl := &BranchPointLane{}
		if err := rows.Scan(&bpl.BranchPointID, &bpl.LaneID, &side, &laneEnd); err != nil {
			return err
		}
		if bpl.Side, err = ParseBranchSide(side); err != nil {
			return errors.Wrapf(err, "branch point '%s'", bpl.BranchPointID)
		}
		if bpl.LaneEnd, err = ParseLaneEnd(laneEnd); err != nil {
			return errors.Wrapf(err, "branch point '%s'", bpl.BranchPointID)
		}
		net.BranchPointLanes = append(net.BranchPointLanes, bpl)
	}
	return rows.Err()
}

func readAdjacentLanes(db *sql.DB, net *Network) error {
	rows, err := db.Query(`SELECT lane_id, adjacent_lane_id, side FROM adjacent_lanes ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var side string
		adj := &AdjacentLane{}
		if err := rows.Scan(&adj.LaneID, &adj.AdjacentLaneID, &side); err != nil {
			return err
		}
		if adj.Side, err = ParseAdjacencySide(side); err != nil {
			return errors.Wrapf(err, "adjacency of lane '%s'", adj.LaneID)
		}
		net.AdjacentLanes = append(net.AdjacentLanes, adj)
	}
	return rows.Err()
}
