// Package wordlist reads OWS (One Word Substitution) source files and
// flattens their page-keyed structure into a single ordered record
// sequence. Missing optional fields default to empty values.
package wordlist
