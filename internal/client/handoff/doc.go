// Package handoff turns a locally staged draft into a persisted surprise
// once the user's account exists.
//
// A run walks the states
//
//	Start -> AwaitingSession -> ResolvingFiles -> Submitting -> Verifying -> Cleanup -> Done
//
// strictly in order. Any step may end the run in Failed; a failed run keeps
// the draft slot and the staged files so the user can retry without
// re-entering anything. Cleanup problems are logged but do not fail the run,
// since the record already exists at that point.
package handoff
