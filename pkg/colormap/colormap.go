// Package colormap maps normalized scalar intensities to RGBA colors.
//
// The rendering core depends only on the Colormap capability interface,
// not on any particular provider. A registry of built-in maps covers the
// common host colormap names; custom maps can be registered or passed
// directly as Gradient values.
package colormap

import (
	"sort"
	"sync"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

// Colormap converts a normalized intensity in [0, 1] to an RGBA color
// with channels in [0, 1]. Implementations must clamp out-of-range input.
type Colormap interface {
	Map(t float64) layer.RGBA
}

// Gradient is a piecewise-linear colormap over ordered control points.
type Gradient struct {
	Stops  []float64    // ascending positions in [0, 1]
	Colors []layer.RGBA // one color per stop
}

// Map interpolates linearly between the two stops bracketing t.
func (g Gradient) Map(t float64) layer.RGBA {
	if len(g.Colors) == 0 {
		return layer.RGBA{0, 0, 0, 1}
	}
	t = clamp01(t)
	if t <= g.Stops[0] {
		return g.Colors[0]
	}
	last := len(g.Stops) - 1
	if t >= g.Stops[last] {
		return g.Colors[last]
	}
	i := sort.SearchFloat64s(g.Stops, t)
	lo, hi := i-1, i
	span := g.Stops[hi] - g.Stops[lo]
	if span == 0 {
		return g.Colors[hi]
	}
	f := (t - g.Stops[lo]) / span
	var out layer.RGBA
	for c := 0; c < 4; c++ {
		out[c] = g.Colors[lo][c] + f*(g.Colors[hi][c]-g.Colors[lo][c])
	}
	return out
}

// ramp builds a two-stop gradient from black to the given color.
func ramp(r, g, b float64) Gradient {
	return Gradient{
		Stops:  []float64{0, 1},
		Colors: []layer.RGBA{{0, 0, 0, 1}, {r, g, b, 1}},
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Colormap{
		"gray":    ramp(1, 1, 1),
		"red":     ramp(1, 0, 0),
		"green":   ramp(0, 1, 0),
		"blue":    ramp(0, 0, 1),
		"cyan":    ramp(0, 1, 1),
		"magenta": ramp(1, 0, 1),
		"yellow":  ramp(1, 1, 0),
		"viridis": viridis,
		"magma":   magma,
		"inferno": inferno,
	}
)

// Get resolves a colormap by name.
func Get(name string) (Colormap, error) {
	mu.RLock()
	defer mu.RUnlock()
	if cm, ok := registry[name]; ok {
		return cm, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColormap, "unknown colormap %q", name)
}

// Register adds or replaces a named colormap.
func Register(name string, cm Colormap) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = cm
}

// Names returns the registered colormap names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
