// Package render produces the human-readable form of a payload. Commands may
// register a custom renderer; everything else falls back to the generic
// key/value representation here.
package render
