// Package normalize repairs model reply text before markdown rendering.
//
// Generative models frequently return code without fences, with paste-UI
// artifacts embedded, or as bare indented snippets. This package is a pure
// string -> string pass that strips known artifacts, finds runs of code-like
// lines, wraps them in fenced blocks with a guessed language tag, and leaves
// prose and already-fenced content alone. It performs no I/O and never fails.
package normalize

import (
	"strings"
)

const fence = "```"

// Normalize converts raw model reply text into well-formed markdown.
//
// The pass is total and idempotent: any string in, a string out, and
// feeding the output back in yields the same output. Text that already
// contains a triple-backtick fence is trusted as intentional markdown and
// passed through untouched (after artifact stripping), so fenced content
// is never re-wrapped or re-classified.
func Normalize(text string) string {
	cleaned := StripArtifacts(text)

	if strings.Contains(cleaned, fence) {
		return cleaned
	}

	out := groupBlocks(cleaned)

	// Fallback: the whole reply may be code that never formed a
	// classifiable run (e.g. single-space indentation). If nothing got
	// fenced but the reply as a whole looks like code, fence all of it.
	if !strings.Contains(out, fence) && looksLikeCode(cleaned) {
		body := strings.TrimSpace(cleaned)
		return fence + SniffLanguage(cleaned) + "\n" + body + "\n" + fence
	}

	return out
}

// looksLikeCode reports whether an unfenced reply is code-shaped overall:
// strictly more than two lines and at least two code hints anywhere.
func looksLikeCode(text string) bool {
	if len(strings.Split(text, "\n")) <= 2 {
		return false
	}
	return countCodeHints(text) >= 2
}

var codeHints = []string{";", "{", "}", "#include", "std::"}

func countCodeHints(text string) int {
	n := 0
	for _, hint := range codeHints {
		n += strings.Count(text, hint)
	}
	return n
}
