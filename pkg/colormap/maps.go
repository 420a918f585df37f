package colormap

import "github.com/layerviz/layersvg/pkg/layer"

// Perceptually uniform maps sampled at evenly spaced control points.
// Linear interpolation between these stops stays visually close to the
// reference tables while keeping the package table-free.

var viridis = Gradient{
	Stops: []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1},
	Colors: []layer.RGBA{
		{0.267, 0.005, 0.329, 1},
		{0.275, 0.194, 0.496, 1},
		{0.213, 0.359, 0.552, 1},
		{0.164, 0.471, 0.558, 1},
		{0.128, 0.567, 0.551, 1},
		{0.135, 0.659, 0.518, 1},
		{0.267, 0.749, 0.441, 1},
		{0.478, 0.821, 0.318, 1},
		{0.993, 0.906, 0.144, 1},
	},
}

var magma = Gradient{
	Stops: []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1},
	Colors: []layer.RGBA{
		{0.001, 0.000, 0.014, 1},
		{0.078, 0.054, 0.212, 1},
		{0.232, 0.060, 0.438, 1},
		{0.390, 0.100, 0.502, 1},
		{0.550, 0.161, 0.506, 1},
		{0.716, 0.215, 0.475, 1},
		{0.868, 0.317, 0.407, 1},
		{0.967, 0.490, 0.398, 1},
		{0.987, 0.991, 0.750, 1},
	},
}

var inferno = Gradient{
	Stops: []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1},
	Colors: []layer.RGBA{
		{0.001, 0.000, 0.014, 1},
		{0.087, 0.044, 0.224, 1},
		{0.258, 0.039, 0.406, 1},
		{0.416, 0.090, 0.433, 1},
		{0.578, 0.148, 0.404, 1},
		{0.735, 0.216, 0.330, 1},
		{0.866, 0.317, 0.226, 1},
		{0.955, 0.479, 0.084, 1},
		{0.988, 0.998, 0.645, 1},
	},
}
