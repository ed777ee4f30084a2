// Package plotkit is the numeric core of an embedded plotting stack:
// queryable graph entities, axis math and hierarchical bounds aggregation —
// everything a renderer needs except the pixels.
//
// 🚀 What is plotkit?
//
//	A pure in-memory library that brings together:
//		• colormap/   — value→color lookup with filtering, presets & gonum adapters
//		• axis/       — "nice number" tick units, bound rounding, axis controller
//		• graphable/  — Series, MetaSeries, Surface, Line3, ContourMask entities
//		                with interpolating value queries and change notification
//		• collection/ — ordered, nestable collections with visible-only bounds
//		                aggregation and dominant color-map tracking
//
// ✨ Why choose plotkit?
//
//   - Total queries – every cursor lookup returns a defined value, never an error
//   - Exact interpolation semantics – knot hits, ties and clamps are pinned by tests
//   - Renderer-agnostic – integrates with gonum.org/v1/plot via small adapters
//   - Pure Go – synchronous, allocation-light, no hidden goroutines
//
// Data flows leaf to root: an entity mutates → its collection recomputes
// aggregate bounds → an axis.Controller derives fresh tick scales → the
// rendering layer (not part of this module) reads axes and issues ValueAt
// queries for cursor reporting.
//
//	go get github.com/katalvlaran/plotkit
package plotkit
