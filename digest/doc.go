// Package digest implements the streaming hash engine for djsum.
//
// The engine is stateless: Sum maps a byte stream and an Algorithm to a
// fixed-width lowercase hex digest, reading through a caller-supplied buffer
// so memory stays bounded regardless of input size. The algorithm set is a
// closed registry; there is no plugin surface.
package digest
