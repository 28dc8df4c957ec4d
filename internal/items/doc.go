// Package items defines the node model for list-shaped results. Each item is
// self-describing: the consuming UI decides how to render it and whether it
// can be expanded purely from the item's own fields. Branch items carry a
// derived command string that the caller re-invokes to fetch children; the
// core keeps no parent/child object graph.
package items
