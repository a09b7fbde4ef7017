// Package walk enumerates filesystem entries under one or more roots.
//
// Enumeration is lazy and pull-driven: each discovered entry is handed to a
// callback as it is found, so hashing can interleave with discovery instead
// of materializing the whole tree first. Directory listings come from
// os.ReadDir, which yields a stable sorted order per directory; ordering
// across roots or with concurrent hashing is up to the consumer.
package walk
