package course

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// RowSummary compares the nominal brick count of a row with the number of
// bricks which survived thinning.
type RowSummary struct {
	Row     int
	Nominal int
	Kept    int
}

// Fraction is Kept/Nominal, or 0 for an empty row.
func (rs RowSummary) Fraction() float64 {
	if rs.Nominal == 0 {
		return 0
	}
	return float64(rs.Kept) / float64(rs.Nominal)
}

// ByRow groups placements by row. The map is ordered by row index; each
// value is a []Placement in input order.
func ByRow(placements []Placement) *treemap.Map {
	rows := treemap.NewWithIntComparator()
	for _, pl := range placements {
		var group []Placement
		if g, found := rows.Get(pl.Row); found {
			group = g.([]Placement)
		}
		rows.Put(pl.Row, append(group, pl))
	}
	return rows
}

// Summarize counts placements per row for rows 0 … rows-1, before (all)
// and after (kept) thinning.
func Summarize(all, kept []Placement, rows int) []RowSummary {
	rows = max(rows, 0)
	summary := make([]RowSummary, rows)
	for r := range summary {
		summary[r].Row = r
	}
	for it := ByRow(all).Iterator(); it.Next(); {
		if r := it.Key().(int); r >= 0 && r < rows {
			summary[r].Nominal = len(it.Value().([]Placement))
		}
	}
	for it := ByRow(kept).Iterator(); it.Next(); {
		if r := it.Key().(int); r >= 0 && r < rows {
			summary[r].Kept = len(it.Value().([]Placement))
		}
	}
	return summary
}
