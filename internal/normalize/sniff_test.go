package normalize

import (
	"testing"
)

func TestSniffLanguage(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want string
	}{
		{"empty", "", ""},
		{"plain prose", "just some words", ""},
		{"include header", "#include <iostream>\nint x;", "cpp"},
		{"std namespace", "std::vector<int> v;", "cpp"},
		{"main signature", "int main() {\n}", "cpp"},
		{"main with space before paren", "int main () {", "cpp"},
		{"compiler line", "g++ -O2 main.cpp", "bash"},
		{"relative invocation", "./a.out", "bash"},
		{"bash word", "bash build.sh", "bash"},
		{"indented bash", "  ./scripts/setup.sh", "bash"},
		{"bashful is not bash", "bashful greeting", ""},
		{"import statement", "import fs from 'fs'", "ts"},
		{"export statement", "export const x = 1", "ts"},
		{"arrow function", "const f = (a) => a + 1", "ts"},
		{"def statement", "def handler(req):\n    pass", "python"},
		{"class statement", "class Widget:\n    pass", "python"},
		{"trailing colon", "for item in items:", "python"},
		{"second line signal", "first line\nimport os", "ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffLanguage(tt.blob); got != tt.want {
				t.Errorf("SniffLanguage(%q) = %q, want %q", tt.blob, got, tt.want)
			}
		})
	}
}

// Earlier table entries win even when a later entry also matches.
func TestSniffLanguage_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want string
	}{
		{"cpp beats ts", "#include <iostream>\nimport something", "cpp"},
		{"cpp beats bash", "g++ main.cpp\nstd::string s;", "cpp"},
		{"bash beats ts", "./run.sh\nexport PATH=1", "bash"},
		{"ts beats python", "import os\ndef main():", "ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffLanguage(tt.blob); got != tt.want {
				t.Errorf("SniffLanguage(%q) = %q, want %q", tt.blob, got, tt.want)
			}
		})
	}
}
