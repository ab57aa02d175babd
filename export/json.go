package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/npillmayer/brickpath/transform"
)

// Brick is the JSON form of a transform.
type Brick struct {
	Position [3]float64 `json:"position"`
	Rotation [4]float64 `json:"rotation"` // quaternion x, y, z, w
	Size     [3]float64 `json:"size"`     // length, height, width
	Row      int        `json:"row"`
	Distance float64    `json:"distance"`
}

// Wall is the document written by WriteJSON.
type Wall struct {
	ID     string  `json:"id"`
	Bricks []Brick `json:"bricks"`
}

// WriteJSON writes the transforms, in order, as an indented JSON document.
func WriteJSON(w io.Writer, id uuid.UUID, transforms []transform.Transform) error {
	wall := Wall{ID: id.String(), Bricks: make([]Brick, len(transforms))}
	for i, t := range transforms {
		wall.Bricks[i] = Brick{
			Position: [3]float64{t.Position.X, t.Position.Y, t.Position.Z},
			Rotation: [4]float64{t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W},
			Size:     [3]float64{t.Size.X, t.Size.Y, t.Size.Z},
			Row:      t.Row,
			Distance: t.Distance,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wall); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
