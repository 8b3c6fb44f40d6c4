// Package storage provides a thin JSON-over-BadgerDB key/value layer used
// for chat pantry state.
package storage
