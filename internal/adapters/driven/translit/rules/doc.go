// Package rules implements driven.Transliterator with ordered regular
// expression rule tables. Each table is a YAML file of from/to pairs
// applied top to bottom; later rules see the output of earlier ones.
//
// The built-in tables (zg2uni and uni2zg) are embedded in the binary.
package rules
