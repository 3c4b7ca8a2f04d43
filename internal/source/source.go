// Package source reads polygon vertices from files.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/pkg/errors"
)

type Format string

const (
	Auto Format = "auto"
	Text Format = "text"
	SVG  Format = "svg"
)

// Formats accepted on the command line, in the order they are listed in help.
var Formats = []string{string(Auto), string(Text), string(SVG)}

// Resolve Auto into a concrete format by file extension.
func (f Format) For(path string) Format {
	if f != Auto {
		return f
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return SVG
	}
	return Text
}

func Read(r io.Reader, format Format) ([]advanced.Point, error) {
	switch format {
	case Text, Auto:
		return ReadText(r)
	case SVG:
		return ReadSVG(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

func ReadFile(path string, format Format) ([]advanced.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file %s", path)
	}
	defer file.Close()

	points, err := Read(file, format.For(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return points, nil
}
