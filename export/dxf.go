package export

import (
	"fmt"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/polygon"
	"github.com/npillmayer/brickpath/transform"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerBricks  = "bricks"
	LayerOutline = "outline"
)

// WriteDXF writes a plan drawing to path. Every brick footprint becomes a
// closed run of LINE entities on layer "bricks", every contour of the
// outline one on layer "outline". The outline may be nil.
func WriteDXF(path string, transforms []transform.Transform, outline *polygon.Polygon) error {
	if len(transforms) == 0 {
		return ErrNothingToExport
	}
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerBricks, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("DXF layer: %w", err)
	}
	lines := 0
	for _, fp := range footprints(transforms) {
		n, err := closedRun(d, fp)
		if err != nil {
			return err
		}
		lines += n
	}
	if !outline.IsEmpty() {
		if _, err := d.AddLayer(LayerOutline, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("DXF layer: %w", err)
		}
		for _, contour := range outline.Contours() {
			n, err := closedRun(d, contour)
			if err != nil {
				return err
			}
			lines += n
		}
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("writing DXF: %w", err)
	}
	tracer().Debugf("wrote %d lines to %s", lines, path)
	return nil
}

// closedRun draws lines through pts and back to the first one.
func closedRun(d *drawing.Drawing, pts []brickpath.Pair) (int, error) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		if _, err := d.Line(p.X(), p.Y(), 0, q.X(), q.Y(), 0); err != nil {
			return i, fmt.Errorf("DXF line: %w", err)
		}
	}
	return len(pts), nil
}
