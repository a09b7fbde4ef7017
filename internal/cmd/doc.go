// Package cmd provides the command-line interface implementation for djsum.
//
// It uses the Cobra library for command structure and Fang for styling. The
// root command runs the hashing pipeline; the algorithms subcommand lists
// the digest registry. All result records go to stdout, all diagnostics to
// stderr, so the result stream stays pipeable.
package cmd
