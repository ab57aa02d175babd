/*
Package export writes brick walls to files for other tools.

Meshes go to Wavefront OBJ, transform lists to JSON, plan drawings to DXF
and PDF, and the per-row course schedule to an XLSX workbook. Plan views
look down onto the ground plane, with world X to the right. World Z maps to
the y coordinate of a DXF drawing, and points down the page of a PDF.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/polygon"
	"github.com/npillmayer/brickpath/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'export'
func tracer() tracing.Trace {
	return tracing.Select("export")
}

// ErrNothingToExport is returned for plan drawings without any bricks.
var ErrNothingToExport = errors.New("no bricks to export")

// Output formats.
const (
	FormatJSON = "json"
	FormatOBJ  = "obj"
	FormatDXF  = "dxf"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatOBJ:  true,
	FormatDXF:  true,
	FormatPDF:  true,
	FormatXLSX: true,
}

// ParseFormats splits a comma separated list of formats. Names are case
// insensitive; duplicates are dropped.
func ParseFormats(list string) ([]string, error) {
	seen := map[string]bool{}
	var formats []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if !ValidFormats[f] {
			return nil, fmt.Errorf("unknown export format %q", f)
		}
		seen[f] = true
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats, nil
}

// footprints collects the plan corners of every brick.
func footprints(transforms []transform.Transform) [][]brickpath.Pair {
	fps := make([][]brickpath.Pair, len(transforms))
	for i, t := range transforms {
		fps[i] = t.Footprint()
	}
	return fps
}

// bounds returns the corners of the box enclosing all footprints and the
// outline.
func bounds(fps [][]brickpath.Pair, outline *polygon.Polygon) (brickpath.Pair, brickpath.Pair) {
	var all []brickpath.Pair
	for _, fp := range fps {
		all = append(all, fp...)
	}
	if !outline.IsEmpty() {
		ll, ur := outline.BoundingBox()
		all = append(all, ll, ur)
	}
	if len(all) == 0 {
		return brickpath.Origin, brickpath.Origin
	}
	minx, miny := all[0].X(), all[0].Y()
	maxx, maxy := minx, miny
	for _, p := range all[1:] {
		minx, maxx = min(minx, p.X()), max(maxx, p.X())
		miny, maxy = min(miny, p.Y()), max(maxy, p.Y())
	}
	return brickpath.P(minx, miny), brickpath.P(maxx, maxy)
}
