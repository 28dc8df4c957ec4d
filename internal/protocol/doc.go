// Package protocol defines the wire envelope a command invocation produces
// and the versioning rules hosts use to check compatibility. stdout carries
// JSON Lines: zero or more progress lines followed by exactly one envelope.
package protocol
