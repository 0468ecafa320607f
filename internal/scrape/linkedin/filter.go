package linkedin

import "strings"

// Title heuristics for keeping only dev/engineering internship postings.
// Matching is case-insensitive substring matching, so "internal" hits
// "intern" too; the lists were tuned with that in mind.
var (
	positionTerms = []string{"intern", "apprentice", "internship"}

	includedTerms = []string{
		"backend",
		"cloud",
		"devops",
		"engineering",
		"platform",
		"site reliability",
		"software",
		"developer",
		"engineer",
	}

	excludedTerms = []string{
		"marketing",
		"sales",
		"business",
		"finance",
		"accounting",
		"hr",
		"human resources",
		"recruiter",
		"customer",
		"support",
		"service",
		"content",
		"design",
		"product manager",
		"project manager",
		"operations",
	}
)

// keepTitle reports whether a posting title looks like a dev internship:
// at least one position term, at least one included term, and no excluded
// term. An empty title is rejected.
func keepTitle(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}
	return containsAny(t, positionTerms) &&
		containsAny(t, includedTerms) &&
		!containsAny(t, excludedTerms)
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
