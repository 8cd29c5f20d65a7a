package road2gpkg

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// LaneDirection defines which physical extremity of a lane is its "start".
// A forward lane starts at the first sampled point of its geometry; a backward
// lane starts at the last one. This is the single place that mapping lives.
type LaneDirection uint16

const (
	DIRECTION_FORWARD = LaneDirection(iota)
	DIRECTION_BACKWARD
)

func (iotaIdx LaneDirection) String() string {
	return [...]string{"forward", "backward"}[iotaIdx]
}

var laneDirectionTxt = map[string]LaneDirection{
	"forward":  DIRECTION_FORWARD,
	"backward": DIRECTION_BACKWARD,
}

func ParseLaneDirection(s string) (LaneDirection, error) {
	if v, ok := laneDirectionTxt[s]; ok {
		return v, nil
	}
	return DIRECTION_FORWARD, errors.Errorf("unknown lane direction: '%s'", s)
}

// Endpoint returns the physical coordinate of the given lane end for a line
// sampled in parameterization order.
func (iotaIdx LaneDirection) Endpoint(line orb.LineString, end LaneEnd) orb.Point {
	first, last := line[0], line[len(line)-1]
	if iotaIdx == DIRECTION_BACKWARD {
		first, last = last, first
	}
	if end == LANE_END_START {
		return first
	}
	return last
}
