// Package demo registers the example command set: greetings, sums, settings
// echoes, paginated and lazily-expanded lists, and simulated long-running
// tasks with progress. The commands are trivial on purpose; they exist to
// exercise every part of the result protocol from a consuming UI.
package demo
