package road2gpkg

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSampleCount is returned when a curve sampler is asked for fewer than two points
	ErrInvalidSampleCount = errors.New("invalid sample count")
	// ErrInvalidTopology is returned for dangling references and duplicate keys in a road template
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrGeometryMismatch is returned when a registered lane endpoint diverges from its branch point location beyond the linear tolerance
	ErrGeometryMismatch = errors.New("geometry mismatch")
)
