// Package memory provides in-memory implementations of driven port interfaces.
//
// The record store is the only place donor and patient records live; it is
// created once per process and discarded on exit. The config store serves
// tests and callers that run without a config file.
package memory
