// Package plot draws samples to images.
package plot

import (
	"image"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/Nathan-M-code/dynamic-poisson-sampling/internal/voronoi"
)

// ErrBadBounds implies the plotted domain is degenerate
var ErrBadBounds = errors.New("plot bounds need at least 2 axes with max > min")

// ColourScheme defines how the plot should be coloured.
type ColourScheme struct {
	Background color.Color
	Cells      color.Color
	// points are shaded from Near (low z) to Far (high z); 2D points use Near
	Near color.Color
	Far  color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Cells:      colornames.Dimgray,
		Near:       colornames.Limegreen,
		Far:        colornames.Darkgreen,
	}
}

// Options for a plot. Min & Max give the domain that is stretched over the
// Width x Height image; only the first two axes are projected, a third (if
// present) is used for depth shading.
type Options struct {
	Width, Height int
	Min, Max      []float64

	// PointRadius in pixels
	PointRadius float64

	// Background is stretched over the whole image if set
	Background image.Image

	// Cells are outlined beneath the points if set, in domain units
	Cells voronoi.Diagram

	Scheme *ColourScheme
}

// Render draws pts & returns the image.
func Render(pts [][]float64, opts *Options) (image.Image, error) {
	dc, err := draw(pts, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders pts & writes them to fpath.
func SavePNG(fpath string, pts [][]float64, opts *Options) error {
	dc, err := draw(pts, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(dc.SavePNG(fpath), "writing %s", fpath)
}

// projector maps domain co-ords to pixels
type projector struct {
	min, max []float64
	w, h     float64
}

func (p *projector) xy(pos []float64) (float64, float64) {
	x := (pos[0] - p.min[0]) / (p.max[0] - p.min[0]) * p.w
	y := (pos[1] - p.min[1]) / (p.max[1] - p.min[1]) * p.h
	return x, y
}

// depth returns pos' z in [0, 1], 0 for 2D
func (p *projector) depth(pos []float64) float64 {
	if len(pos) < 3 || len(p.min) < 3 || p.max[2] <= p.min[2] {
		return 0
	}
	t := (pos[2] - p.min[2]) / (p.max[2] - p.min[2])
	if t < 0 {
		return 0
	} else if t > 1 {
		return 1
	}
	return t
}

func draw(pts [][]float64, opts *Options) (*gg.Context, error) {
	if len(opts.Min) < 2 || len(opts.Max) < 2 || opts.Max[0] <= opts.Min[0] || opts.Max[1] <= opts.Min[1] {
		return nil, ErrBadBounds
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	scheme := opts.Scheme
	if scheme == nil {
		scheme = DefaultScheme()
	}
	proj := &projector{min: opts.Min, max: opts.Max, w: float64(opts.Width), h: float64(opts.Height)}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(scheme.Background)
	dc.Clear()

	if opts.Background != nil {
		b := opts.Background.Bounds()
		dc.Push()
		dc.Scale(proj.w/float64(b.Dx()), proj.h/float64(b.Dy()))
		dc.DrawImage(opts.Background, -b.Min.X, -b.Min.Y)
		dc.Pop()
	}

	if opts.Cells != nil {
		dc.SetColor(scheme.Cells)
		dc.SetLineWidth(1)
		for _, cell := range opts.Cells {
			for _, e := range cell.Edges {
				ax, ay := proj.xy([]float64{e[0].X, e[0].Y})
				bx, by := proj.xy([]float64{e[1].X, e[1].Y})
				dc.DrawLine(ax, ay, bx, by)
			}
		}
		dc.Stroke()
	}

	// far points first so near ones are drawn on top
	order := make([]int, 0, len(pts))
	for i, p := range pts {
		if len(p) >= 2 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return proj.depth(pts[order[a]]) > proj.depth(pts[order[b]])
	})

	radius := opts.PointRadius
	if radius <= 0 {
		radius = 2
	}
	for _, i := range order {
		x, y := proj.xy(pts[i])
		dc.SetColor(blend(scheme.Near, scheme.Far, proj.depth(pts[i])))
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}

	return dc, nil
}

// blend linearly interpolates a -> b
func blend(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8((float64(x)*(1-t) + float64(y)*t) / 257)
	}
	return color.RGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}
