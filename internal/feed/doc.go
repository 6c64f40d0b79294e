// Package feed owns the gist retrieval pipeline: fetch, sort, store.
//
// The Controller is a three-state machine (loading → ready | errored) whose
// only outputs are immutable Snapshot values. Starting a cycle clears the
// previous cycle's data so stale gists are never shown while a request is
// in flight. Each cycle carries an identifier; Complete and Fail ignore
// results tagged with a superseded identifier, which makes overlapping
// refreshes safe without request cancellation.
//
// Matches is the pure predicate the UI applies per visible row on every
// filter keystroke. Filtering never triggers a re-fetch.
package feed
