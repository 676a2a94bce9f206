// Package heuristic implements driven.Detector by scoring code-point
// patterns that only occur in Zawgyi-encoded or Unicode-encoded Myanmar
// text.
package heuristic
