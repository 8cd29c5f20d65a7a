package road2gpkg

import "github.com/pkg/errors"

type BoundaryStyle uint16

const (
	BOUNDARY_STYLE_NONE = BoundaryStyle(iota)
	BOUNDARY_STYLE_SOLID_WHITE
	BOUNDARY_STYLE_DASHED_WHITE
	BOUNDARY_STYLE_SOLID_YELLOW
	BOUNDARY_STYLE_DASHED_YELLOW
)

func (iotaIdx BoundaryStyle) String() string {
	return [...]string{"none", "solid_white", "dashed_white", "solid_yellow", "dashed_yellow"}[iotaIdx]
}

var boundaryStyleTxt = map[string]BoundaryStyle{
	"none":          BOUNDARY_STYLE_NONE,
	"solid_white":   BOUNDARY_STYLE_SOLID_WHITE,
	"dashed_white":  BOUNDARY_STYLE_DASHED_WHITE,
	"solid_yellow":  BOUNDARY_STYLE_SOLID_YELLOW,
	"dashed_yellow": BOUNDARY_STYLE_DASHED_YELLOW,
}

func ParseBoundaryStyle(s string) (BoundaryStyle, error) {
	if v, ok := boundaryStyleTxt[s]; ok {
		return v, nil
	}
	return BOUNDARY_STYLE_NONE, errors.Errorf("unknown boundary style: '%s'", s)
}
