package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"math"

	"github.com/layerviz/layersvg/pkg/colormap"
	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Image converts an image (or labels) layer into a single SVG image
// element carrying the raster as a base64 PNG data URI.
//
// For multiscale data only the last, lowest-resolution pyramid level is
// rendered. Scalar data is windowed by the contrast limits, normalized,
// and pushed through the layer's colormap; RGB(A) data is embedded as-is.
func Image(il *layer.ImageLayer) (*svg.Element, Extrema, error) {
	meta := il.Meta

	if len(il.Levels) == 0 {
		return nil, Empty(), errors.New(errors.ErrCodeDimensionality, "image layer has no data")
	}
	grid := il.Levels[0]
	if meta.Multiscale {
		grid = il.Levels[len(il.Levels)-1]
	}

	if meta.RGB {
		if grid.Channels != 3 && grid.Channels != 4 {
			return nil, Empty(), errors.New(errors.ErrCodeDimensionality,
				"rgb image must have 3 or 4 channels, got %d", grid.Channels)
		}
	} else if grid.Channels != 1 {
		return nil, Empty(), errors.New(errors.ErrCodeDimensionality,
			"image must be 2 dimensional to save as svg, got %d channels", grid.Channels)
	}

	ext := extremaCoords(layer.NewMatrix([][]float64{
		{0, 0},
		{float64(grid.Rows), float64(grid.Cols)},
	}), meta.Transform)

	var raster *image.NRGBA
	if meta.RGB {
		raster = rgbRaster(grid)
	} else {
		cmap, err := colormap.Get(meta.Colormap)
		if err != nil {
			return nil, Empty(), err
		}
		raster = mappedRaster(grid, meta.ContrastLimits, cmap)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, raster); err != nil {
		return nil, Empty(), errors.Wrap(errors.ErrCodeInternal, err, "png encoding failed")
	}
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	el := svg.New("image",
		svg.Attr{Name: "width", Value: svg.Num(float64(grid.Cols))},
		svg.Attr{Name: "height", Value: svg.Num(float64(grid.Rows))},
		svg.Attr{Name: "opacity", Value: svg.Num(meta.Opacity)},
		svg.Attr{Name: "transform", Value: composeTransform(meta.Transform)},
		svg.Attr{Name: "xlink:href", Value: href},
	)
	return el, ext, nil
}

// rgbRaster copies 0-255 RGB(A) samples into an NRGBA image.
func rgbRaster(g layer.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			i := img.PixOffset(c, r)
			img.Pix[i+0] = sampleByte(g.At(r, c, 0))
			img.Pix[i+1] = sampleByte(g.At(r, c, 1))
			img.Pix[i+2] = sampleByte(g.At(r, c, 2))
			if g.Channels == 4 {
				img.Pix[i+3] = sampleByte(g.At(r, c, 3))
			} else {
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}

// mappedRaster windows scalar intensities by the contrast limits,
// normalizes to [0, 1], and applies the colormap. A zero-width window
// skips the normalization divide.
func mappedRaster(g layer.Grid, limits [2]float64, cmap colormap.Colormap) *image.NRGBA {
	lo, hi := limits[0], limits[1]
	span := hi - lo

	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := g.At(r, c, 0)
			v = math.Min(math.Max(v, lo), hi) - lo
			if span != 0 {
				v /= span
			}
			rgba := cmap.Map(v)
			i := img.PixOffset(c, r)
			img.Pix[i+0] = sampleByte(255 * rgba[0])
			img.Pix[i+1] = sampleByte(255 * rgba[1])
			img.Pix[i+2] = sampleByte(255 * rgba[2])
			img.Pix[i+3] = sampleByte(255 * rgba[3])
		}
	}
	return img
}

func sampleByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
