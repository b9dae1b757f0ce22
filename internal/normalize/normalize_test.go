package normalize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_ProseUnchanged(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"greeting", "Hello, how are you?"},
		{"multi-line prose", "The answer depends on context.\n\nIn general you should prefer clarity."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.in {
				t.Errorf("Normalize altered prose:\n%s", cmp.Diff(tt.in, got))
			}
		})
	}
}

func TestNormalize_MixedProseAndCode(t *testing.T) {
	in := "Here is code:\nint main() {\n    return 0;\n}\nDone."
	want := "Here is code:\n```cpp\nint main() {\n    return 0;\n}\n```\nDone."

	got := Normalize(in)
	if got != want {
		t.Errorf("unexpected output:\n%s", cmp.Diff(want, got))
	}
}

func TestNormalize_FallbackWrapsWholeReply(t *testing.T) {
	in := "x = 1;\ny = 2;\nz = 3;"
	got := Normalize(in)

	if n := strings.Count(got, fence); n != 2 {
		t.Fatalf("want exactly one fenced block (2 markers), got %d in %q", n, got)
	}
	if !strings.Contains(got, "x = 1;\ny = 2;\nz = 3;") {
		t.Errorf("fenced content mangled: %q", got)
	}
}

func TestNormalize_ShortSnippetNotWrapped(t *testing.T) {
	// Two lines only: below the fallback threshold, and neither line
	// trips the classifier.
	in := "x = 1\ny = 2"
	if got := Normalize(in); got != in {
		t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
	}
}

func TestNormalize_ExistingFencePassesThrough(t *testing.T) {
	in := "Use this:\n```go\nfunc main() {}\n```\nThat's all."
	if got := Normalize(in); got != in {
		t.Errorf("pre-fenced input was altered:\n%s", cmp.Diff(in, got))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Here is code:\nint main() {\n    return 0;\n}\nDone.",
		"x = 1;\ny = 2;\nz = 3;",
		"plain prose only",
		"#include <iostream>\nstd::cout << 1;\n",
		"Try:\n./configure\nnpm install\nthen read the docs.",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n%s", in, cmp.Diff(once, twice))
		}
	}
}

// Removing the emitted fence markers must reproduce the artifact-stripped
// input exactly, whatever the input was.
func TestNormalize_PartitionInvariant(t *testing.T) {
	inputs := []string{
		"",
		"prose only",
		"Here is code:\nint main() {\n    return 0;\n}\nDone.",
		"mixed\n  indented code\nprose again\n// comment\nend",
		"Copy\nint x = 1;\ntrailing prose",
		"a;\n",
	}

	for _, in := range inputs {
		stripped := StripArtifacts(in)
		got := unfence(Normalize(in))
		if got != stripped {
			t.Errorf("partition broken for %q:\n%s", in, cmp.Diff(stripped, got))
		}
	}
}

func TestLooksLikeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"two lines is below threshold", "a;\nb;", false},
		{"three lines two hints", "x = 1;\ny = 2;\nz = 3", true},
		{"three lines one hint", "x = 1;\ny = 2\nz = 3", false},
		{"prose", "one\ntwo\nthree\nfour", false},
		{"includes count as hints", "#include <a>\n#include <b>\nint x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeCode(tt.in); got != tt.want {
				t.Errorf("looksLikeCode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_ArtifactsNeverSurvive(t *testing.T) {
	in := "Copy\nint main() {  Copyhljs language-cpp\n    return 0;\n}\nCopyhljs badge"
	got := Normalize(in)

	if strings.Contains(strings.ToLower(got), "copyhljs") {
		t.Errorf("hljs badge in output: %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) == "Copy" {
			t.Errorf("Copy line in output: %q", got)
		}
	}
}

// unfence drops fence marker lines, leaving prose and unwrapped code.
func unfence(doc string) string {
	var kept []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, fence) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
