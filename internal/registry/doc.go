// Package registry maps command names to their handlers, schemas, and
// rendering rules. A Registry is populated once at process startup by an
// explicit registration routine and is read-only afterwards, which makes
// concurrent lookups safe without locking.
package registry
