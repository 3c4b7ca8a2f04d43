// Command pointinpolygon reads a polygon from a file and reports whether a
// point lies inside it.
//
// The polygon file is either plain text, holding whitespace separated x y
// pairs, or an svg file holding a single polygon element. Points on the
// boundary are reported as inside. Negative coordinates must follow "--" so
// that they are not read as flags:
//
//	pointinpolygon square.txt -- -1 2.5
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/osuushi/pointinpolygon"
	"github.com/osuushi/pointinpolygon/internal/source"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	polygonFile string
	x, y        string
	format      string
	input       string
	verbose     bool
	color       bool
	draw        string
	imgcat      bool
	scale       float64
}

func main() {
	// Settings may come from a .env file in the working directory. It is fine
	// for there to be none.
	_ = godotenv.Load(".env")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("pointinpolygon", "Test whether a point lies inside a polygon.")
	app.Arg("polygon-file", "Polygon vertices, as text x y pairs or an svg polygon.").Required().StringVar(&opts.polygonFile)
	app.Arg("x", "X coordinate of the point to test.").Required().StringVar(&opts.x)
	app.Arg("y", "Y coordinate of the point to test.").Required().StringVar(&opts.y)
	app.Flag("format", "Output format.").Default("text").Envar("PIP_FORMAT").EnumVar(&opts.format, "text", "json")
	app.Flag("input", "Polygon file format. Auto picks svg for .svg files and text otherwise.").Default(string(source.Auto)).Envar("PIP_INPUT").EnumVar(&opts.input, source.Formats...)
	app.Flag("verbose", "Log each crossing of the ray cast from the point.").Short('v').Envar("PIP_VERBOSE").BoolVar(&opts.verbose)
	app.Flag("color", "Colour the verdict in text output.").Envar("PIP_COLOR").BoolVar(&opts.color)
	app.Flag("draw", "Render the polygon and point to a PNG file.").PlaceHolder("PNG").StringVar(&opts.draw)
	app.Flag("imgcat", "Render the polygon and point inline in the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64Var(&opts.scale)
	return app
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.WarnLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

// Returns the process exit code: zero whenever a verdict was reached, inside
// or not, and one for bad usage or bad input.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: error: %v, try --help\n", app.Name, err)
		return 1
	}

	log := newLogger(stderr, opts.verbose)
	if err := query(opts, log, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func query(opts options, log *logrus.Logger, stdout, stderr io.Writer) error {
	points, err := source.ReadFile(opts.polygonFile, source.Format(opts.input))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":     opts.polygonFile,
		"vertices": len(points),
	}).Debug("Read polygon")

	x, err := source.ParseCoordinate(opts.x)
	if err != nil {
		return errors.Wrap(err, "x")
	}
	y, err := source.ParseCoordinate(opts.y)
	if err != nil {
		return errors.Wrap(err, "y")
	}
	point := pointinpolygon.Point{X: x, Y: y}

	location, err := pointinpolygon.Classify(point, points)
	if err != nil {
		return err
	}

	poly := pointinpolygon.Polygon{Points: points}
	r := report{X: x, Y: y, Inside: location.Contained(), Location: location.String()}
	if location == pointinpolygon.OnBoundary {
		log.WithField("point", fmt.Sprintf("(%v, %v)", x, y)).Debug("Point is on the boundary")
	} else {
		crossings := poly.Crossings(point)
		for _, edge := range crossings {
			log.WithField("edge", edge.String()).Debugf("Ray crosses %s", edge.DbgName())
		}
		log.Debugf("Found %d intersections", len(crossings))
		count := len(crossings)
		r.Crossings = &count
	}

	if opts.draw != "" {
		if err := poly.DrawPNG(opts.draw, point, opts.scale); err != nil {
			return err
		}
		log.WithField("file", opts.draw).Debug("Rendered polygon")
	}
	if opts.imgcat {
		// Keep stdout parseable when it carries JSON
		terminal := stdout
		if opts.format == "json" {
			terminal = stderr
		}
		if err := poly.DrawToTerminal(terminal, point, opts.scale); err != nil {
			return err
		}
	}

	switch opts.format {
	case "json":
		return r.writeJSON(stdout)
	default:
		return r.writeText(stdout, opts.color)
	}
}
