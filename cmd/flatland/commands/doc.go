// Package commands defines the flatland CLI and wires dependencies for subcommands.
//
// Commands
//
//   - flatland [file]   Read a document and print the total shadow length
//   - fingerprint       Print the document's fingerprint
//   - generate          Write a synthetic document to stdout
//   - version           Print the build version
//
// # Implementation
//
// The root command builds the dependency graph (logger, metrics, survey
// service) from flags and FLATLAND_* environment variables before any
// subcommand runs. The first error stops the run; it is printed to stderr
// as a single line and the process exits non-zero.
package commands
