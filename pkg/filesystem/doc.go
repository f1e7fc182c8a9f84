// Package filesystem provides filesystem implementations for gitig.
//
// Every component that touches disk takes an afero.Fs so tests can run
// against an in-memory filesystem. This package builds those filesystems
// and holds the write helper used for the output file.
package filesystem
