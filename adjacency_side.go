package road2gpkg

import "github.com/pkg/errors"

type AdjacencySide uint16

const (
	ADJACENCY_LEFT = AdjacencySide(iota)
	ADJACENCY_RIGHT
)

func (iotaIdx AdjacencySide) String() string {
	return [...]string{"left", "right"}[iotaIdx]
}

var adjacencySideTxt = map[string]AdjacencySide{
	"left":  ADJACENCY_LEFT,
	"right": ADJACENCY_RIGHT,
}

func ParseAdjacencySide(s string) (AdjacencySide, error) {
	if v, ok := adjacencySideTxt[s]; ok {
		return v, nil
	}
	return ADJACENCY_LEFT, errors.Errorf("unknown adjacency side: '%s'", s)
}
