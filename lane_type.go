package road2gpkg

import "github.com/pkg/errors"

type LaneType uint16

const (
	LANE_TYPE_DRIVING = LaneType(iota)
	LANE_TYPE_SHOULDER
)

func (iotaIdx LaneType) String() string {
	return [...]string{"driving", "shoulder"}[iotaIdx]
}

var laneTypeTxt = map[string]LaneType{
	"driving":  LANE_TYPE_DRIVING,
	"shoulder": LANE_TYPE_SHOULDER,
}

func ParseLaneType(s string) (LaneType, error) {
	if v, ok := laneTypeTxt[s]; ok {
		return v, nil
	}
	return LANE_TYPE_DRIVING, errors.Errorf("unknown lane type: '%s'", s)
}
