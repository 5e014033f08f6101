package model

import (
	"encoding/json"
	"fmt"
)

// ShapeType discriminates the shape variants on the wire
type ShapeType string

const (
	ShapeDot  ShapeType = "Dot"
	ShapeLine ShapeType = "Line"
)

// Point is a coordinate pair in the drawing canvas space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is one element of a drawing: a Dot carries Point, a Line
// carries Start and End. Color is optional for both.
type Shape struct {
	Type  ShapeType
	Color string
	Point Point
	Start Point
	End   Point
}

type dotJSON struct {
	Type  ShapeType `json:"type"`
	Color string    `json:"color,omitempty"`
	Point Point     `json:"point"`
}

type lineJSON struct {
	Type  ShapeType `json:"type"`
	Color string    `json:"color,omitempty"`
	Start Point     `json:"start"`
	End   Point     `json:"end"`
}

// MarshalJSON encodes the shape with its type discriminator and only
// the coordinate fields that variant carries.
func (s Shape) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case ShapeDot:
		return json.Marshal(dotJSON{Type: s.Type, Color: s.Color, Point: s.Point})
	case ShapeLine:
		return json.Marshal(lineJSON{Type: s.Type, Color: s.Color, Start: s.Start, End: s.End})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeType, s.Type)
	}
}

// UnmarshalJSON decodes a shape, rejecting unknown discriminators
// before any room state can be touched.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var head struct {
		Type ShapeType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case ShapeDot:
		var d dotJSON
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*s = Shape{Type: ShapeDot, Color: d.Color, Point: d.Point}
		return nil
	case ShapeLine:
		var l lineJSON
		if err := json.Unmarshal(data, &l); err != nil {
			return err
		}
		*s = Shape{Type: ShapeLine, Color: l.Color, Start: l.Start, End: l.End}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShapeType, head.Type)
	}
}

// Drawing is an ordered sequence of shapes. Immutable once submitted.
type Drawing struct {
	Shapes []Shape `json:"shapes"`
}
