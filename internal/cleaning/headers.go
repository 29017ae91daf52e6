package cleaning

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceholderLabel is substituted for labels that normalize to nothing.
const PlaceholderLabel = "unnamed_column"

var (
	fullWidthParens = strings.NewReplacer("（", "(", "）", ")")
	parenthesized   = regexp.MustCompile(`\(.*?\)`)
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9_\s-]`)
	whitespaceRun   = regexp.MustCompile(`\s`)
	underscoreRun   = regexp.MustCompile(`_+`)
	nonASCII        = regexp.MustCompile(`[^\x00-\x7F]`)
)

// NormalizeHeaders maps raw column labels to clean, unique identifiers of the
// same length and order. Each label goes through an ordered series of textual
// transforms; duplicates are then resolved by suffixing an incrementing
// counter, scoped per distinct label, with the first occurrence keeping the
// bare name. Parenthesis removal runs before character filtering so full-width
// parenthesis variants are normalized first, and duplicate resolution runs
// last so it only ever sees fully normalized labels.
func NormalizeHeaders(labels []string) []string {
	cleaned := make([]string, len(labels))
	for i, label := range labels {
		cleaned[i] = normalizeLabel(label)
	}

	final := make([]string, len(cleaned))
	counts := make(map[string]int)
	used := make(map[string]bool)
	for i, label := range cleaned {
		candidate := label
		if used[candidate] {
			// Suffix with a per-label counter, skipping names an earlier
			// label already claimed.
			for {
				counts[label]++
				candidate = fmt.Sprintf("%s_%d", label, counts[label])
				if !used[candidate] {
					break
				}
			}
		}
		used[candidate] = true
		final[i] = candidate
	}
	return final
}

func normalizeLabel(label string) string {
	s := fullWidthParens.Replace(label)
	s = parenthesized.ReplaceAllString(s, "")
	s = disallowedChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = nonASCII.ReplaceAllString(s, "")
	if s == "" {
		return PlaceholderLabel
	}
	return s
}
