package road2gpkg

import "github.com/pkg/errors"

type LaneEnd uint16

const (
	LANE_END_START = LaneEnd(iota)
	LANE_END_FINISH
)

func (iotaIdx LaneEnd) String() string {
	return [...]string{"start", "finish"}[iotaIdx]
}

var laneEndTxt = map[string]LaneEnd{
	"start":  LANE_END_START,
	"finish": LANE_END_FINISH,
}

func ParseLaneEnd(s string) (LaneEnd, error) {
	if v, ok := laneEndTxt[s]; ok {
		return v, nil
	}
	return LANE_END_START, errors.Errorf("unknown lane end: '%s'", s)
}
