/*
Package config reads brick wall designs from TOML files.

A design file holds everything one run of the pipeline needs:

	target_length = 20.0
	world_width = 10.0
	world_height = 10.0
	points = [[0.1, 0.5], [0.5, 0.3], [0.9, 0.5]]

	[brick]
	length = 2.0
	width = 1.0
	height = 0.6
	rows = 8
	gap = 0.05
	falloff = 0.7
	flip = false

	[anchor]
	x = 0.0
	y = 0.0
	z = 0.0

	[curve]
	kind = "centripetal"
	closed = false
	divisions = 200

Keys missing from a file keep their value from Default. The [anchor] table
is optional; without it no falloff is applied.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/brickpath/curve"
	"github.com/npillmayer/brickpath/pipeline"
	"github.com/npillmayer/brickpath/spline"
)

// ErrInvalidDesign is returned for design files which cannot be turned into
// a pipeline snapshot.
var ErrInvalidDesign = errors.New("invalid design")

// Design is the content of a design file.
type Design struct {
	TargetLength float64     `toml:"target_length"`
	WorldWidth   float64     `toml:"world_width"`
	WorldHeight  float64     `toml:"world_height"`
	Points       [][]float64 `toml:"points"`
	Brick        Brick       `toml:"brick"`
	Anchor       *Anchor     `toml:"anchor"`
	Curve        Curve       `toml:"curve"`
}

// Brick holds the brick parameters.
type Brick struct {
	Length  float64 `toml:"length"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Rows    int     `toml:"rows"`
	Gap     float64 `toml:"gap"`
	Falloff float64 `toml:"falloff"`
	Flip    bool    `toml:"flip"`
}

// Anchor is the falloff anchor in world space.
type Anchor struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// Curve selects the interpolation.
type Curve struct {
	Kind      string `toml:"kind"`
	Closed    bool   `toml:"closed"`
	Divisions int    `toml:"divisions"`
}

// Default returns a fresh design: a gentle arc through three points,
// default bricks, and no anchor.
func Default() *Design {
	p := course.DefaultParams()
	return &Design{
		WorldWidth:  pipeline.DefaultWorldWidth,
		WorldHeight: pipeline.DefaultWorldHeight,
		Points:      [][]float64{{0.1, 0.5}, {0.5, 0.3}, {0.9, 0.5}},
		Brick: Brick{
			Length:  p.Length,
			Width:   p.Width,
			Height:  p.Height,
			Rows:    p.Rows,
			Gap:     p.Gap,
			Falloff: p.Falloff,
			Flip:    p.Flip,
		},
		Curve: Curve{
			Kind:      spline.Centripetal.String(),
			Divisions: curve.DefaultDivisions,
		},
	}
}

// Load reads and validates a design file.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Decode parses and validates a design in TOML format. Unknown keys are
// rejected.
func Decode(data string) (*Design, error) {
	d := Default()
	d.Points = nil
	md, err := toml.Decode(data, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDesign, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidDesign, strings.Join(keys, ", "))
	}
	if !md.IsDefined("points") {
		d.Points = Default().Points
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Encode writes the design in TOML format.
func (d *Design) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(d)
}

// Params returns the brick parameters.
func (d *Design) Params() course.Params {
	return course.Params{
		Length:  d.Brick.Length,
		Width:   d.Brick.Width,
		Height:  d.Brick.Height,
		Rows:    d.Brick.Rows,
		Gap:     d.Brick.Gap,
		Falloff: d.Brick.Falloff,
		Flip:    d.Brick.Flip,
	}
}

// Validate checks a design. All errors wrap ErrInvalidDesign.
func (d *Design) Validate() error {
	if len(d.Points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, have %d", ErrInvalidDesign, len(d.Points))
	}
	for i, pt := range d.Points {
		if len(pt) != 2 {
			return fmt.Errorf("%w: point #%d has %d coordinates", ErrInvalidDesign, i, len(pt))
		}
		for _, x := range pt {
			if !(x >= 0 && x <= 1) {
				return fmt.Errorf("%w: point #%d is outside the unit square", ErrInvalidDesign, i)
			}
		}
	}
	if !(d.WorldWidth > 0 && d.WorldHeight > 0) || !brickpath.IsFinite(d.WorldWidth*d.WorldHeight) {
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidDesign, d.WorldWidth, d.WorldHeight)
	}
	if !(d.TargetLength >= 0) || !brickpath.IsFinite(d.TargetLength) {
		return fmt.Errorf("%w: target length %g", ErrInvalidDesign, d.TargetLength)
	}
	if err := d.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDesign, err)
	}
	if _, err := spline.ParseKind(d.Curve.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDesign, err)
	}
	if d.Curve.Divisions < 0 {
		return fmt.Errorf("%w: negative curve divisions", ErrInvalidDesign)
	}
	return nil
}

// Snapshot converts a design into pipeline input.
func (d *Design) Snapshot() (pipeline.Snapshot, error) {
	if err := d.Validate(); err != nil {
		return pipeline.Snapshot{}, err
	}
	kind, _ := spline.ParseKind(d.Curve.Kind)
	s := pipeline.Snapshot{
		Points:       make([]brickpath.Pair, len(d.Points)),
		Params:       d.Params(),
		TargetLength: d.TargetLength,
		WorldWidth:   d.WorldWidth,
		WorldHeight:  d.WorldHeight,
		Curve: curve.Options{
			Kind:      kind,
			Closed:    d.Curve.Closed,
			Divisions: d.Curve.Divisions,
		},
	}
	for i, pt := range d.Points {
		s.Points[i] = brickpath.P(pt[0], pt[1])
	}
	if d.Anchor != nil {
		a := brickpath.V(d.Anchor.X, d.Anchor.Y, d.Anchor.Z)
		s.Anchor = &a
	}
	return s, nil
}
