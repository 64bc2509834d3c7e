// Package merge assembles enriched word records into the consolidated
// output format: a JSON array of entries carrying a sequential id, the
// run's source metadata, a difficulty/status block and the enriched
// word content.
package merge
