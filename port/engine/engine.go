// Package engine is the storage port behind a sequence.
//
// An Engine stores the payloads of one nominal collection type.
// Every positional method takes an already resolved absolute index
// and reports false instead of mutating when the index is out of range.
package engine

import (
	"iter"

	"go.llib.dev/sequential/pkg/tag"
)

type Engine[T any] interface {
	// Len is the number of stored payloads.
	Len() int
	// Supports reports whether the engine implements the operation selected by the tag.
	Supports(t tag.Tag) bool

	Append(v T)
	Prepend(v T)
	// InsertBefore places v immediately in front of the element at index i.
	InsertBefore(i int, v T) bool
	// InsertAfter places v immediately behind the element at index i.
	InsertAfter(i int, v T) bool

	Lookup(i int) (T, bool)
	// Swap installs v at index i and returns the payload it displaced.
	Swap(i int, v T) (T, bool)
	// Delete unlinks the element at index i and returns its payload.
	Delete(i int) (T, bool)

	Iter() iter.Seq2[int, T]
}
