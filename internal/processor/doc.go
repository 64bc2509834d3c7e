// Package processor contains the core business logic for merging OWS
// word lists. It loads the tier files in fixed order, drives POS
// resolution and note generation for each record, and writes the
// consolidated output. This package serves as the main coordinator
// between all other components.
package processor
