package normalize

import (
	"regexp"
)

// languageRules maps content signals to fence tags, first match wins.
// The ordering is deliberate and load-bearing: cpp signals beat bash,
// bash beats ts, ts beats python. A blob matching none gets no tag.
var languageRules = []struct {
	tag string
	re  *regexp.Regexp
}{
	{"cpp", regexp.MustCompile(`#include|std::|int main\s*\(`)},
	{"bash", regexp.MustCompile(`(?m)^\s*(g\+\+|\./|bash\b)`)},
	{"ts", regexp.MustCompile(`(?m)^(import\s|export\s)|=>`)},
	{"python", regexp.MustCompile(`(?m)^(def\s|class\s)|:[ \t]*$`)},
}

// SniffLanguage guesses a fence language tag for a code blob.
// Returns "" when no signal matches.
func SniffLanguage(blob string) string {
	for _, rule := range languageRules {
		if rule.re.MatchString(blob) {
			return rule.tag
		}
	}
	return ""
}
