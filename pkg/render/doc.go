// Package render is the conversion core: it turns typed layers into SVG
// fragments, computes their transformed bounding extrema, and assembles
// the final document.
//
// # Pipeline
//
// Each layer kind has one converter producing an (element, extrema) pair:
//
//	frag, ext, err := render.Convert(l)
//
// Converters validate dimensionality, fill metadata defaults, compute the
// layer extent under the composed transform, and emit elements with
// resolved style attributes. Extrema from multiple layers merge with
// [Merge] (NaN-ignoring, so empty layers stay neutral) and [Document]
// wraps the fragments into a standalone SVG string whose viewbox fits the
// merged extent.
//
// # Coordinate conventions
//
// Layer data is (row, col); SVG is (x=col, y=row). The axis flip happens
// at the emission boundary: element coordinates and the composed
// transform string are in SVG order, while extrema stay in (row, col)
// order until [Document] converts the corner translation.
//
// Conversion is a pure function of its inputs. No state crosses calls.
package render
