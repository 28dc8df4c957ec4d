// Package schema declares per-command field constraints and validates raw
// arguments and handler outputs against them. Each schema is translated into
// a JSON Schema document and compiled once on first use; validation failures
// are reported per field with the violated constraint keyword.
package schema
