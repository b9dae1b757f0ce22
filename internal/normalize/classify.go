package normalize

import (
	"regexp"
	"strings"
)

// codeSignals is the ordered rule table behind IsCodeLine. A line is
// code-like if any rule matches. Adding a language signal is a new table
// entry, not new control flow.
var codeSignals = []*regexp.Regexp{
	regexp.MustCompile(`[;{}]`),                     // statement punctuation
	regexp.MustCompile(`#include`),                  // C/C++ preprocessor
	regexp.MustCompile(`std::`),                     // C++ namespace
	regexp.MustCompile(`^\s{2}`),                    // indentation
	regexp.MustCompile(`^\s*(//|#)`),                // comment
	regexp.MustCompile(`^\s*(g\+\+|\./|npm |yarn |pnpm )`), // shell invocation
}

// IsCodeLine reports whether a single line looks like source code.
// The verdict depends only on the line itself, never on its neighbors.
// Blank lines are never code.
func IsCodeLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	for _, re := range codeSignals {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
