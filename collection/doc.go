// Package collection aggregates graphable entities into hierarchies.
//
// A Collection owns an ordered list of entities, keeps an aggregated
// x/y extent over the visible ones, and re-exposes the Graphable
// contract so collections nest like any other entity. Collection3 adds
// a third, color-mapped axis: a z extent aggregated from visible
// ZBounder members and a dominant color map for members without one.
//
// Aggregation modes:
//
//   - auto-fit (default): each member contributes its per-kind
//     AutoBounds — filtered samples excluded, surfaces trimmed to their
//     unfiltered core, contour masks skipped entirely.
//   - verbatim: each member contributes its declared Bounds, scaled by
//     its display scale factors.
//
// Change propagation is synchronous and parent-owned: a collection
// subscribes to each member on Add, cancels on Remove, and re-raises a
// change only when re-aggregation actually moved the bounds.
//
// Like the rest of the module, collections are single-threaded.
package collection
