package export

import (
	"fmt"
	"io"

	"github.com/npillmayer/brickpath/course"
	"github.com/xuri/excelize/v2"
)

// ScheduleSheet is the name of the worksheet written by WriteSchedule.
const ScheduleSheet = "Courses"

var scheduleHeader = []interface{}{"Row", "Nominal", "Kept", "Fraction"}

// WriteSchedule writes the course schedule as an XLSX workbook: one line per
// row with its nominal and kept brick count, followed by a total line.
func WriteSchedule(w io.Writer, rows []course.RowSummary) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), ScheduleSheet); err != nil {
		return fmt.Errorf("schedule sheet: %w", err)
	}
	if err := f.SetSheetRow(ScheduleSheet, "A1", &scheduleHeader); err != nil {
		return fmt.Errorf("schedule header: %w", err)
	}
	total := course.RowSummary{Row: -1}
	for i, rs := range rows {
		line := []interface{}{rs.Row, rs.Nominal, rs.Kept, rs.Fraction()}
		if err := setRow(f, i+2, line); err != nil {
			return err
		}
		total.Nominal += rs.Nominal
		total.Kept += rs.Kept
	}
	line := []interface{}{"Total", total.Nominal, total.Kept, total.Fraction()}
	if err := setRow(f, len(rows)+2, line); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	tracer().Debugf("wrote course schedule with %d rows", len(rows))
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("schedule row %d: %w", row, err)
	}
	if err := f.SetSheetRow(ScheduleSheet, cell, &values); err != nil {
		return fmt.Errorf("schedule row %d: %w", row, err)
	}
	return nil
}
