package note

import "strings"

// Generate produces an educational note for a word from fixed lexical
// heuristics. Every matching rule contributes its fragment and the
// fragments are joined in rule order, so the result is deterministic
// for a given (word, meaning, origin) triple. Returns "" when no rule
// applies.
func Generate(word, meaning, origin string) string {
	var parts []string
	wordLower := strings.ToLower(word)
	meaningLower := strings.ToLower(meaning)
	originLower := strings.ToLower(origin)

	// Etymological root and affix rules
	if strings.Contains(wordLower, "phobia") {
		parts = append(parts, "Suffix '-phobia' denotes an extreme or irrational fear.")
	}
	if strings.Contains(wordLower, "cide") {
		parts = append(parts, "Suffix '-cide' refers to the act of killing (e.g., suicide, homicide).")
	}
	if strings.Contains(wordLower, "cracy") || strings.Contains(wordLower, "arch") {
		parts = append(parts, "Suffixes like '-cracy' or '-archy' typically refer to forms of government or rule.")
	}
	if strings.Contains(wordLower, "logy") {
		parts = append(parts, "Suffix '-logy' usually means 'the study of'.")
	}
	if strings.Contains(wordLower, "theist") || strings.Contains(wordLower, "theism") {
		parts = append(parts, "Root 'theos' refers to God.")
	}
	if strings.Contains(wordLower, "vorous") {
		parts = append(parts, "Suffix '-vorous' indicates feeding habits (e.g., carnivorous).")
	}
	if strings.Contains(wordLower, "ambi") {
		parts = append(parts, "Prefix 'ambi-' means 'both' or 'around'.")
	}
	if strings.Contains(wordLower, "bene") {
		parts = append(parts, "Prefix 'bene-' means 'good' or 'well'.")
	}
	// "male"/"female" are not mal- words
	if strings.Contains(wordLower, "mal") && !strings.HasPrefix(wordLower, "male") {
		parts = append(parts, "Prefix 'mal-' typically means 'bad' or 'evil'.")
	}
	if strings.Contains(wordLower, "somn") {
		parts = append(parts, "Root 'somnus' relates to sleep.")
	}
	if strings.Contains(wordLower, "bell") && strings.Contains(meaningLower, "war") {
		parts = append(parts, "Root 'bellum' means war.")
	}
	if strings.Contains(wordLower, "greg") {
		parts = append(parts, "Root 'grex' or 'greg-' refers to a flock or herd.")
	}

	// Origin rules; Greek wins over Latin
	if strings.Contains(originLower, "greek") {
		parts = append(parts, "This term has its roots in Greek mythology or language.")
	} else if strings.Contains(originLower, "latin") {
		parts = append(parts, "Derived from Latin.")
	}

	// Usage-context rules
	if strings.Contains(meaningLower, "med.") || strings.Contains(meaningLower, "medicine") ||
		strings.Contains(meaningLower, "disease") {
		parts = append(parts, "Often used in medical contexts.")
	}
	if strings.Contains(meaningLower, "law") || strings.Contains(meaningLower, "legal") {
		parts = append(parts, "Frequently used in legal terminology.")
	}

	// Commonly confused OWS pairs
	if wordLower == "egoist" {
		parts = append(parts, "Don't confuse with 'egotist' (someone who talks excessively about themselves).")
	}
	if wordLower == "immigrant" {
		parts = append(parts, "Compare with 'emigrant' (one who leaves a country).")
	}
	if wordLower == "emigrant" {
		parts = append(parts, "Compare with 'immigrant' (one who enters a country).")
	}
	if strings.Contains(wordLower, "stationary") {
		parts = append(parts, "Not to be confused with 'stationery' (writing materials).")
	}
	if strings.Contains(wordLower, "stationery") {
		parts = append(parts, "Not to be confused with 'stationary' (not moving).")
	}

	return strings.Join(parts, " ")
}
