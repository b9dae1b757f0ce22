package normalize

import (
	"strings"
)

// groupBlocks scans lines in order, wraps each maximal run of code-like
// lines in a sniffed fence, and passes prose lines through verbatim.
// Stripping the emitted fence markers reproduces the input exactly.
func groupBlocks(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	var out []string

	for i := 0; i < len(lines); {
		if !IsCodeLine(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}

		j := i + 1
		for j < len(lines) && IsCodeLine(lines[j]) {
			j++
		}

		out = append(out, fence+SniffLanguage(strings.Join(lines[i:j], "\n")))
		out = append(out, lines[i:j]...)
		out = append(out, fence)
		i = j
	}

	return strings.Join(out, "\n")
}
