// Package script parses and replays textual vector operations such as
// "push:1" or "insert:1:9" against a vector of ints, logging every step
// with zap.
package script
