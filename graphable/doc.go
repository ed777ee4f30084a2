// Package graphable provides the queryable data entities of plotkit.
//
// 🚀 What is a graphable?
//
//	Anything that owns a value buffer and can answer cursor queries:
//		• Series      — 2-D line; equal-step, sorted-irregular or scattered
//		• MetaSeries  — a Series plus named per-point metadata channels
//		• Surface     — regularly gridded samples with bilinear lookup
//		• Line3       — 3-D polyline queried by nearest-segment projection
//		• ContourMask — boolean mask derived from an external scalar field
//
// ✨ Guarantees:
//
//   - Every query is total: empty buffers answer 0, degenerate ranges
//     collapse to well-defined sentinels, nothing panics on NaN input
//   - Bound scans skip non-finite samples; interpolation does not, so
//     interpolating across a NaN legitimately yields NaN
//   - Exact tie-breaks: knot hits return stored samples verbatim, the
//     first minimal segment wins a projection tie
//
// Entities are constructed with their buffer and immediately derive
// bounds and lookup flags. Each entity has exactly one bulk mutation
// entry point (SetValues) inside which all derived state is refreshed
// synchronously before listeners are notified via the embedded Notifier.
//
// The package is single-threaded by contract: one logical owner mutates
// an entity at a time and no internal locking is provided.
package graphable
