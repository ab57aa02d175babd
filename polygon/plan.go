package polygon

import (
	"github.com/npillmayer/brickpath/transform"
)

// AllRows selects every row in Plan.
const AllRows = -1

// Plan unites the footprints of the bricks in a row into an outline on the
// ground plane. With row set to AllRows every brick contributes.
func Plan(transforms []transform.Transform, row int) *Polygon {
	pgs := make([]*Polygon, 0, len(transforms))
	for _, t := range transforms {
		if row == AllRows || t.Row == row {
			pgs = append(pgs, FromPairs(t.Footprint()))
		}
	}
	return Union(pgs...)
}
