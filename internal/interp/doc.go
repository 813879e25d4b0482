// Package interp implements the execution engine and compiler described by
// this repository's specification: a classical stack-based concatenative
// interpreter in the Forth tradition. It owns the dictionary, the
// data/return/branch stacks, the threaded-code representation of
// user-defined words, and the interpreter loop dispatching between
// immediate execution and compilation.
//
// The line-reading front end, the choice of host output stream, and any
// session/packaging concerns are deliberately outside this package: callers
// feed it one input line at a time via EvalLine and supply an io.Writer for
// printed output.
package interp
