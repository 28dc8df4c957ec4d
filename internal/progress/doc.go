// Package progress delivers the ordered side-channel stream of events a
// handler emits while executing. Events are delivered synchronously within
// the emitting invocation's call stack; the stream for an invocation is
// implicitly terminated by its result envelope.
package progress
