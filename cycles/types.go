package cycles

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/amazing/grid"
)

// Cycle is one closed loop of cells. Cells starts and ends with the same
// cell. From→To is the back-edge that closed it during detection.
type Cycle struct {
	Cells    []grid.Index
	From, To grid.Index
}

// Members returns the distinct cells of the cycle as a set.
func (c Cycle) Members() mapset.Set[grid.Index] {
	set := mapset.New[grid.Index]()
	for _, i := range c.Cells {
		set.Put(i)
	}
	return set
}

// Len returns the number of distinct cells in the cycle.
func (c Cycle) Len() int {
	return c.Members().Size()
}
