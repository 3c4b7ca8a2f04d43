package source

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It parses the SVG, finds
// the one polygon element in it, and reads its points attribute. Anything else
// in the document is ignored.

func ReadSVG(r io.Reader) ([]advanced.Point, error) {
	// Element validation is off. Only the points attribute matters here.
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found in svg")
	}
	if len(polygons) > 1 {
		return nil, errors.Errorf("found %d polygon elements in svg, expected one", len(polygons))
	}

	return ParseSVGPoints(polygons[0].Attributes["points"])
}

// Parse an SVG points attribute, such as "0,0 4,0 4,4". Commas and whitespace
// are interchangeable separators, so "0 0, 4 0" reads the same way.
func ParseSVGPoints(attribute string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d) in points attribute", len(fields))
	}

	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, &ParseError{Token: fields[i], Err: err}
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, &ParseError{Token: fields[i+1], Err: err}
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, ErrNoVertices
	}
	return points, nil
}
