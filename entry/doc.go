// Package entry defines the hashable-entry abstraction shared by the
// directory walker, the archive decoders, and the dispatcher.
//
// An Entry is a locatable, readable unit of bytes with a logical path and a
// size hint. Two variants exist: File for ordinary filesystem files and
// Member for files inside archive containers. Consumers stay decoupled from
// the concrete source: a worker opens the entry's reader, streams it through
// the hash engine, and moves on.
//
// The package also carries the run's error taxonomy (AccessError,
// DecodeError, ReadError) so every layer classifies failures the same way.
package entry
