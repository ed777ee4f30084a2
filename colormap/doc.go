// Package colormap maps scalar values to colors for graph rendering.
//
// A Map is either list-backed (an ordered sequence of color stops, looked
// up stepped or smoothly blended) or function-backed (an arbitrary
// function over [0,1]). Every lookup first runs the map's Filter
// predicate; values that fail it resolve to the map's sentinel color, so
// Lookup is a total function with no error path.
//
// Presets (Jet, Viridis, Plasma) return fresh, independent instances and
// may be cloned freely: maps are value objects shared between graph
// entities without ownership.
//
// Adapters are provided for gonum.org/v1/plot: Ranged yields a
// palette.ColorMap over an arbitrary data interval and Palette discretizes
// a map into n swatches.
package colormap
