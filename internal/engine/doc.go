// Package engine executes invocations: it resolves the command, validates
// raw arguments against the declared input schema, runs the handler with a
// sequenced progress emitter, and wraps the result in an envelope. Handlers
// run synchronously and are never timed out or cancelled; a failure inside a
// handler is normalized into an ok:false envelope at this boundary.
package engine
