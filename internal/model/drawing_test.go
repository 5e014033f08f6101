package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DrawingSuite struct {
	suite.Suite
}

func TestDrawingSuite(t *testing.T) {
	suite.Run(t, new(DrawingSuite))
}

func (s *DrawingSuite) TestDotRoundTrip() {
	shape := Shape{Type: ShapeDot, Color: "#ff0000", Point: Point{X: 1.5, Y: 2}}

	data, err := json.Marshal(shape)
	s.Require().NoError(err)
	s.JSONEq(`{"type":"Dot","color":"#ff0000","point":{"x":1.5,"y":2}}`, string(data))

	var decoded Shape
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(shape, decoded)
}

func (s *DrawingSuite) TestLineRoundTrip() {
	shape := Shape{Type: ShapeLine, Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 5}}

	data, err := json.Marshal(shape)
	s.Require().NoError(err)
	s.JSONEq(`{"type":"Line","start":{"x":0,"y":0},"end":{"x":10,"y":5}}`, string(data))

	var decoded Shape
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(shape, decoded)
}

func (s *DrawingSuite) TestDotOmitsLineFields() {
	data, err := json.Marshal(Shape{Type: ShapeDot, Point: Point{X: 3, Y: 4}})
	s.Require().NoError(err)
	s.NotContains(string(data), "start")
	s.NotContains(string(data), "end")
}

func (s *DrawingSuite) TestUnknownShapeTypeRejected() {
	var shape Shape
	err := json.Unmarshal([]byte(`{"type":"Circle","point":{"x":1,"y":1}}`), &shape)
	s.ErrorIs(err, ErrUnknownShapeType)
}

func (s *DrawingSuite) TestMarshalUnknownShapeTypeRejected() {
	_, err := json.Marshal(Shape{Type: "Triangle"})
	s.ErrorIs(err, ErrUnknownShapeType)
}

func (s *DrawingSuite) TestDrawingRoundTrip() {
	drawing := Drawing{Shapes: []Shape{
		{Type: ShapeDot, Point: Point{X: 1, Y: 1}},
		{Type: ShapeLine, Color: "blue", Start: Point{X: 1, Y: 1}, End: Point{X: 2, Y: 2}},
	}}

	data, err := json.Marshal(drawing)
	s.Require().NoError(err)

	var decoded Drawing
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(drawing, decoded)
}

func (s *DrawingSuite) TestDrawingWithBadShapeRejectedWholesale() {
	var drawing Drawing
	err := json.Unmarshal([]byte(`{"shapes":[{"type":"Dot","point":{"x":1,"y":1}},{"type":"Blob"}]}`), &drawing)
	s.ErrorIs(err, ErrUnknownShapeType)
}
