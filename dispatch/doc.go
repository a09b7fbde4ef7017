// Package dispatch fans discovered entries out to a bounded pool of hashing
// workers.
//
// One producer goroutine walks the roots into a bounded jobs channel while a
// fixed pool of workers consumes it, so discovery and hashing interleave.
// The jobs channel and results channel are the only shared state; workers
// hold no locks and share nothing else. Exactly one Result leaves the pool
// per discovered entry, digest or error, and the results channel closes only
// after every in-flight job has been delivered.
package dispatch
