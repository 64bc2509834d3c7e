// Package note synthesizes short etymology and usage notes for OWS
// vocabulary words from a fixed, ordered set of lexical heuristics.
// The rule evaluation order is an observable contract: fragments are
// never reordered or deduplicated.
package note
