package road2gpkg

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// gpkgSchema is the persisted schema of the fixture files. The storage layer
// keeps its own uniqueness/foreign-key belt, but the assembler has already
// validated everything before a network reaches the writer.
const gpkgSchema = `
CREATE TABLE IF NOT EXISTS maliput_metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS junctions (
	junction_id TEXT PRIMARY KEY,
	name TEXT
);

CREATE TABLE IF NOT EXISTS segments (
	segment_id TEXT PRIMARY KEY,
	junction_id TEXT NOT NULL,
	name TEXT,
	FOREIGN KEY (junction_id) REFERENCES junctions(junction_id)
);

CREATE TABLE IF NOT EXISTS lanes (
	lane_id TEXT PRIMARY KEY,
	segment_id TEXT NOT NULL,
	lane_type TEXT DEFAULT 'driving',
	direction TEXT DEFAULT 'forward',
	speed_limit_mps REAL,
	left_boundary_type TEXT DEFAULT 'solid_white',
	right_boundary_type TEXT DEFAULT 'dashed_white',
	left_boundary TEXT NOT NULL,
	right_boundary TEXT NOT NULL,
	centerline TEXT,
	FOREIGN KEY (segment_id) REFERENCES segments(segment_id)
);

CREATE TABLE IF NOT EXISTS branch_points (
	branch_point_id TEXT PRIMARY KEY,
	location TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS branch_point_lanes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	branch_point_id TEXT NOT NULL,
	lane_id TEXT NOT NULL,
	side TEXT NOT NULL CHECK(side IN ('a', 'b')),
	lane_end TEXT NOT NULL CHECK(lane_end IN ('start', 'finish')),
	FOREIGN KEY (branch_point_id) REFERENCES branch_points(branch_point_id),
	FOREIGN KEY (lane_id) REFERENCES lanes(lane_id),
	UNIQUE (branch_point_id, lane_id, lane_end)
);

CREATE TABLE IF NOT EXISTS adjacent_lanes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lane_id TEXT NOT NULL,
	adjacent_lane_id TEXT NOT NULL,
	side TEXT NOT NULL CHECK(side IN ('left', 'right')),
	FOREIGN KEY (lane_id) REFERENCES lanes(lane_id),
	FOREIGN KEY (adjacent_lane_id) REFERENCES lanes(lane_id),
	UNIQUE (lane_id, side)
);
`

// WriteGeoPackage persists an assembled network into a GeoPackage-style SQLite
// file. All rows of one network go in inside a single transaction, so a file
// never holds a partially emitted fixture.
func WriteGeoPackage(net *Network, fname string) error {
	db, err := sql.Open("sqlite", fname)
	if err != nil {
		return errors.Wrap(err, "Can't open output file")
	}
	defer db.Close()

	if _, err := db.Exec(gpkgSchema); err != nil {
		return errors.Wrap(err, "Can't create schema")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "Can't begin transaction")
	}
	if err := emitNetwork(tx, net); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "Can't commit transaction")
	}
	return nil
}

func emitNetwork(tx *sql.Tx, net *Network) error {
	for _, entry := range net.Metadata {
		if _, err := tx.Exec(`INSERT INTO maliput_metadata (key, value) VALUES (?, ?)`, entry.Key, entry.Value); err != nil {
			return errors.Wrapf(err, "Can't write metadata entry '%s'", entry.Key)
		}
	}
	for _, junction := range net.Junctions {
		if _, err := tx.Exec(`INSERT INTO junctions (junction_id, name) VALUES (?, ?)`, junction.ID, junction.Name); err != nil {
			return errors.Wrapf(err, "Can't write junction '%s'", junction.ID)
		}
	}
	for _, segment := range net.Segments {
		if _, err := tx.Exec(`INSERT INTO segments (segment_id, junction_id, name) VALUES (?, ?, ?)`, segment.ID, segment.JunctionID, segment.Name); err != nil {
			return errors.Wrapf(err, "Can't write segment '%s'", segment.ID)
		}
	}
	laneStmt, err := tx.Prepare(`
		INSERT INTO lanes (lane_id, segment_id, lane_type, direction, speed_limit_mps,
		                   left_boundary_type, right_boundary_type,
		                   left_boundary, right_boundary, centerline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "Can't prepare lane insert")
	}
	defer laneStmt.Close()
	for _, lane := range net.Lanes {
		_, err := laneStmt.Exec(
			lane.ID,
			lane.SegmentID,
			lane.LaneType.String(),
			lane.Direction.String(),
			lane.SpeedLimitMPS,
			lane.LeftBoundaryStyle.String(),
			lane.RightBoundaryStyle.String(),
			PrepareWKTLinestringZ(lane.Geometry.LeftBoundary),
			PrepareWKTLinestringZ(lane.Geometry.RightBoundary),
			PrepareWKTLinestringZ(lane.Geometry.Centerline),
		)
		if err != nil {
			return errors.Wrapf(err, "Can't write lane '%s'", lane.ID)
		}
	}
	for _, bp := range net.BranchPoints {
		if _, err := tx.Exec(`INSERT INTO branch_points (branch_point_id, location) VALUES (?, ?)`, bp.ID, PrepareWKTPointZ(bp.Location)); err != nil {
			return errors.Wrapf(err, "Can't write branch point '%s'", bp.ID)
		}
	}
	for _, bpl := range net.BranchPointLanes {
		_, err := tx.Exec(
			`INSERT INTO branch_point_lanes (branch_point_id, lane_id, side, lane_end) VALUES (?, ?, ?, ?)`,
			bpl.BranchPointID, bpl.LaneID, bpl.Side.String(), bpl.LaneEnd.String(),
		)
		if err != nil {
			return errors.Wrapf(err, "Can't write branch point lane ('%s', '%s')", bpl.BranchPointID, bpl.LaneID)
		}
	}
	for _, adj := range net.AdjacentLanes {
		_, err := tx.Exec(
			`INSERT INTO adjacent_lanes (lane_id, adjacent_lane_id, side) VALUES (?, ?, ?)`,
			adj.LaneID, adj.AdjacentLaneID, adj.Side.String(),
		)
		if err != nil {
			return errors.Wrapf(err, "Can't write adjacency ('%s', %s)", adj.LaneID, adj.Side)
		}
	}
	return nil
}
