package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/transform"
)

// Faces of a box, as indices into transform.Transform.Corners, counter-
// clockwise seen from outside. The order matches boxNormals.
var boxFaces = [6][4]int{
	{0, 4, 6, 2}, // -X
	{1, 3, 7, 5}, // +X
	{0, 1, 5, 4}, // -Y
	{2, 6, 7, 3}, // +Y
	{0, 2, 3, 1}, // -Z
	{4, 5, 7, 6}, // +Z
}

var boxNormals = [6]brickpath.Vec3{
	{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {Z: -1}, {Z: 1},
}

// WriteOBJ writes every brick as a box to a Wavefront OBJ stream. Each brick
// is a group brick_<i> with 8 vertices, 6 normals and 6 quads.
func WriteOBJ(w io.Writer, transforms []transform.Transform, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# brickpath: %d bricks\n", len(transforms))
	fmt.Fprintf(bw, "o %s\n", name)
	for i, t := range transforms {
		fmt.Fprintf(bw, "g brick_%d\n", i)
		for _, c := range t.Corners() {
			fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", c.X, c.Y, c.Z)
		}
		for _, n := range boxNormals {
			n = t.Rotation.Rotate(n)
			fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", n.X, n.Y, n.Z)
		}
		vbase, nbase := 8*i+1, 6*i+1
		for f, face := range boxFaces {
			n := nbase + f
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d %d//%d\n",
				vbase+face[0], n, vbase+face[1], n, vbase+face[2], n, vbase+face[3], n)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	tracer().Debugf("wrote %d bricks as OBJ", len(transforms))
	return nil
}
