// Package pos resolves part-of-speech labels for vocabulary words using
// an external tagging provider. The provider returns per-token surface
// text, lemma and coarse tag; the resolver picks the tag of the word as
// used in its example sentence and maps it to a display label. An
// optional SQLite cache avoids repeated API calls across runs.
package pos
