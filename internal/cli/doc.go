// Package cli implements the tasklog command tree.
//
// This is the only layer that talks to a terminal or chooses exit
// codes. Each command follows the same shape: load config and log,
// run one engine or report operation, persist the log if it changed,
// and print the result in text or JSON. Core errors surface with
// their kind intact so the exit code and the machine-readable error
// code both reflect the failure category.
package cli
