package advanced

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape so that points just outside it are still visible
const drawPadding = 40

// Largest width or height Draw will allocate, in pixels
const maxDrawSize = 8192

// Render the polygon and a query point. The polygon is filled green, the query
// point is drawn as a dot coloured by its location (yellow on the boundary,
// blue inside, red outside), and the ray cast from it is drawn in grey out to
// the edge of the image. Scale is pixels per unit.
func (poly Polygon) Draw(p Point, scale float64) (image.Image, error) {
	if len(poly.Points) == 0 {
		return nil, errors.New("cannot draw an empty polygon")
	}
	if scale <= 0 {
		return nil, errors.Errorf("invalid scale: %v", scale)
	}

	minPoint, maxPoint := poly.Bounds()
	minX := math.Min(minPoint.X, p.X)
	minY := math.Min(minPoint.Y, p.Y)
	maxX := math.Max(maxPoint.X, p.X)
	maxY := math.Max(maxPoint.Y, p.Y)

	// Check the size as floats so that huge extents can't overflow the ints
	fullWidth := scale*(maxX-minX) + drawPadding*2
	fullHeight := scale*(maxY-minY) + drawPadding*2
	if !(fullWidth <= maxDrawSize && fullHeight <= maxDrawSize) {
		return nil, errors.Errorf("image would be %.0fx%.0f px, lower --scale", fullWidth, fullHeight)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, vertex := range poly.Points[1:] {
		c.LineTo(vertex.X, vertex.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// The ray, out past the right edge of the image
	c.SetRGBA(1, 1, 1, 0.5)
	c.SetLineWidth(1)
	c.DrawLine(p.X, p.Y, maxX+drawPadding/scale, p.Y)
	c.Stroke()

	switch poly.Classify(p) {
	case OnBoundary:
		c.SetRGB(1, 1, 0)
	case Inside:
		c.SetRGB(0.3, 0.2, 1)
	default:
		c.SetRGB(1, 0, 0)
	}
	c.DrawCircle(p.X, p.Y, 4/scale)
	c.Fill()

	return c.Image(), nil
}

// Draw to a PNG file.
func (poly Polygon) DrawPNG(path string, p Point, scale float64) error {
	img, err := poly.Draw(p, scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "could not save %q", path)
	}
	return nil
}

// Draw and print inline in the terminal (iTerm only). The image goes through a
// temporary PNG since that is what imgcat reads.
func (poly Polygon) DrawToTerminal(w io.Writer, p Point, scale float64) error {
	file, err := os.CreateTemp("", "polygon-*.png")
	if err != nil {
		return errors.Wrap(err, "could not create temporary image")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := poly.DrawPNG(path, p, scale); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "could not print image")
}
