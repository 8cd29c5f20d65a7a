package road2gpkg

import "github.com/pkg/errors"

// BranchSide is the grouping label of a lane end at a branch point. The split
// is a convention, not geometry: road lanes register on side "a", junction
// connector lanes on side "b".
type BranchSide uint16

const (
	BRANCH_SIDE_A = BranchSide(iota)
	BRANCH_SIDE_B
)

func (iotaIdx BranchSide) String() string {
	return [...]string{"a", "b"}[iotaIdx]
}

var branchSideTxt = map[string]BranchSide{
	"a": BRANCH_SIDE_A,
	"b": BRANCH_SIDE_B,
}

func ParseBranchSide(s string) (BranchSide, error) {
	if v, ok := branchSideTxt[s]; ok {
		return v, nil
	}
	return BRANCH_SIDE_A, errors.Errorf("unknown branch side: '%s'", s)
}
