package normalize

import (
	"regexp"
	"strings"
)

// Paste-UI noise that web frontends leak into copied model output: the
// "Copy" button label and highlight.js badge text ("Copyhljs ...").
var (
	copyBadgeLineRe  = regexp.MustCompile(`(?i)^copyhljs\b`)
	copyBadgeTrailRe = regexp.MustCompile(`(?i)\s+copyhljs\b.*$`)
)

// StripArtifacts removes copy-button and syntax-highlighter badge lines
// from reply text. It runs before classification: artifact lines carry
// enough stray punctuation to be mistaken for code.
func StripArtifacts(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "Copy" || copyBadgeLineRe.MatchString(trimmed) {
			continue
		}
		kept = append(kept, copyBadgeTrailRe.ReplaceAllString(line, ""))
	}
	return strings.Join(kept, "\n")
}
