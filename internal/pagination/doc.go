// Package pagination slices a virtual item range into pages and derives the
// navigation commands for adjacent pages. The cursor is pure arithmetic over
// (total, page, per_page): identical inputs always produce identical bounds,
// so results are reproducible without a cache, and the full virtual range is
// never materialized.
package pagination
