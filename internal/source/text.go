package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/pkg/errors"
)

var ErrNoVertices = errors.New("no polygon vertices found")

// A whole polygon may sit on one line, so lines may be far longer than
// bufio's default token limit.
const maxLineLength = 1 << 30

// A token that could not be read as a coordinate. Line is 1-based, and zero
// when the input has no notion of lines (SVG attributes, command line args).
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid coordinate %q", e.Line, e.Token)
	}
	return fmt.Sprintf("invalid coordinate %q", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read whitespace separated numbers, taking them in pairs as x and y. Layout is
// free: one pair per line is conventional, but pairs may share lines or be
// split across them.
func ReadText(r io.Reader) ([]advanced.Point, error) {
	var (
		points  []advanced.Point
		pending []float64
		line    = 1
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineLength)
	for ; scanner.Scan(); line++ {
		for _, token := range strings.Fields(scanner.Text()) {
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Token: token, Err: err}
			}
			pending = append(pending, value)
			if len(pending) == 2 {
				points = append(points, advanced.Point{X: pending[0], Y: pending[1]})
				pending = pending[:0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read polygon")
	}

	if len(pending) != 0 {
		return nil, errors.Errorf("x coordinate %v has no matching y", pending[0])
	}
	if len(points) == 0 {
		return nil, ErrNoVertices
	}
	return points, nil
}

// Parse a single coordinate, such as a command line argument.
func ParseCoordinate(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Token: s, Err: err}
	}
	return value, nil
}
