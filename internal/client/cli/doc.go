// Package cli provides the interactive LoveSurprise command-line client.
//
// It wires configuration, the local SQLite store, the gRPC client, the
// handoff sequencer and the application services behind a small REPL.
// Typical flow: create a draft (plan, couple, date, message, photos), then
// register or log in, which hands the draft off to the server; pay to
// activate it and export its link as a QR code or PDF.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// NewRootCommand wraps it in a cobra command for cmd/client.
package cli
