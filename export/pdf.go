package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/polygon"
	"github.com/npillmayer/brickpath/transform"
)

// rowColor is an RGB fill for the bricks of a row.
type rowColor struct {
	R, G, B int
}

// Brick tones, cycled through by row.
var rowColors = []rowColor{
	{R: 178, G: 84, B: 60},
	{R: 196, G: 110, B: 78},
	{R: 160, G: 72, B: 54},
	{R: 210, G: 140, B: 100},
	{R: 140, G: 64, B: 50},
	{R: 220, G: 168, B: 130},
}

// A4 landscape, in mm.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	margin       = 15.0
	headerHeight = 12.0
	drawAreaTop  = margin + headerHeight + 5.0
)

// PlanSheet describes the title block of a PDF plan.
type PlanSheet struct {
	Title string
	Notes string // second header line, may be empty
}

// WritePDF draws a plan of the wall on an A4 landscape page: bricks are
// filled by row, the outline is stroked on top. The plan is scaled to fit
// the page. The outline may be nil.
func WritePDF(w io.Writer, transforms []transform.Transform, outline *polygon.Polygon,
	sheet PlanSheet) error {
	//
	if len(transforms) == 0 {
		return ErrNothingToExport
	}
	fps := footprints(transforms)
	m := fitToPage(bounds(fps, outline))
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageWidth-2*margin, headerHeight, sheet.Title, "", 0, "L", false, 0, "")
	if sheet.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(margin, margin+headerHeight)
		pdf.CellFormat(pageWidth-2*margin, 5, sheet.Notes, "", 0, "L", false, 0, "")
	}
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.1)
	for i, fp := range fps {
		col := rowColors[transforms[i].Row%len(rowColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Polygon(pagePoints(m, fp), "FD")
	}
	if !outline.IsEmpty() {
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.4)
		for _, contour := range outline.Contours() {
			pdf.Polygon(pagePoints(m, contour), "D")
		}
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// fitToPage returns a transform from plan coordinates to the drawing area of
// the page, preserving the aspect ratio and centering the plan.
func fitToPage(ll, ur brickpath.Pair) brickpath.AT {
	areaW := pageWidth - 2*margin
	areaH := pageHeight - drawAreaTop - margin
	w, h := ur.X()-ll.X(), ur.Y()-ll.Y()
	scale := 1.0
	if w > 0 || h > 0 {
		scale = math.Min(areaW/math.Max(w, brickpath.Epsilon), areaH/math.Max(h, brickpath.Epsilon))
	}
	offset := brickpath.P(margin+(areaW-w*scale)/2, drawAreaTop+(areaH-h*scale)/2)
	return brickpath.Translation(ll.Scaled(-1)).
		Combine(brickpath.Scaling(scale, scale)).
		Combine(brickpath.Translation(offset))
}

func pagePoints(m brickpath.AT, pts []brickpath.Pair) []fpdf.PointType {
	page := make([]fpdf.PointType, len(pts))
	for i, p := range m.TransformAll(pts) {
		page[i] = fpdf.PointType{X: p.X(), Y: p.Y()}
	}
	return page
}
