// Package sink renders completed hash results as text or CSV.
//
// Sinks receive only successful results; failures go to the diagnostic
// stream instead. Records arrive in completion order, which is unspecified
// under concurrency — sort downstream if a stable order matters.
package sink
