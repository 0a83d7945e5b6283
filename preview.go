package polycurve

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// PreviewOptions configures [RenderPreview]. The zero value renders a
// 1024×1024 canvas for points in [DefaultClamp].
type PreviewOptions struct {
	// Size is the width and height of the canvas in pixels.
	Size int
	// Space is the region of point space that is mapped onto the canvas.
	Space Rect
	// LineWidth is the stroke width in pixels.
	LineWidth float64
	// Caption, if not empty, is drawn in the top left corner.
	Caption string
}

// RenderPreview draws the points as a closed polyline, black on white.
func RenderPreview(pts []Point, opts PreviewOptions) *image.Gray {
	size := opts.Size
	if size <= 0 {
		size = DefaultCanvasSize
	}
	space := opts.Space
	if space == (Rect{}) {
		space = DefaultClamp
	}
	width := opts.LineWidth
	if width <= 0 {
		width = 2
	}

	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	aff := RectToRect(space, Rect{0, 0, float64(size), float64(size)})
	r := vector.NewRasterizer(size, size)
	for i := range pts {
		// The last line closes the curve.
		a := pts[i].Transform(aff)
		b := pts[(i+1)%len(pts)].Transform(aff)
		strokeLine(r, a, b, width)
	}
	r.Draw(img, img.Bounds(), image.Black, image.Point{})

	if opts.Caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Gray{Y: 96}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 8+basicfont.Face7x13.Ascent),
		}
		d.DrawString(opts.Caption)
	}
	return img
}

// strokeLine adds the rectangle covering the line from a to b with the given
// width. All rectangles share one orientation, so overlapping strokes add up
// instead of cancelling.
func strokeLine(r *vector.Rasterizer, a, b Point, width float64) {
	d := b.Sub(a)
	if d.Hypot() == 0 {
		return
	}
	n := d.Normalize().Turn90().Mul(width / 2)
	p0 := a.Translate(n)
	p1 := b.Translate(n)
	p2 := b.Translate(n.Negate())
	p3 := a.Translate(n.Negate())
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
