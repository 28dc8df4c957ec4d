// Package cli builds the Cobra command tree. Unlike a hand-written tree,
// every subcommand is generated from the command registry at startup: flags
// come from the registered input schema, execution goes through the
// invocation engine, and results print as protocol envelopes (JSON Lines for
// a consuming UI) or as human-readable text.
package cli
