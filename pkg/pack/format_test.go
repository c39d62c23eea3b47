package pack

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 1},
		{"abc", 1},
		{"abcd", 1},
		{"abcdefgh", 2},
		{strings.Repeat("x", 400), 100},
	}

	for _, tt := range tests {
		if got := EstimateTokens(tt.content); got != tt.want {
			t.Errorf("EstimateTokens(%d bytes) = %d, want %d", len(tt.content), got, tt.want)
		}
	}
}

func TestLanguageTag(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.ts", "typescript"},
		{"a.tsx", "typescript"},
		{"a.jsx", "javascript"},
		{"a.rs", "rust"},
		{"a.py", "python"},
		{"a.go", "go"},
		{"a.yml", "yaml"},
		{"a.sh", "bash"},
		{"a.unknown", "text"},
		{"Makefile", "text"},
	}

	for _, tt := range tests {
		if got := languageTag(tt.path); got != tt.want {
			t.Errorf("languageTag(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRenderFile_Markdown(t *testing.T) {
	f := SourceFile{Path: "src/a.ts", Content: "const x = 1;"}

	got := renderFile(f, FormatMarkdown)
	want := "```typescript\n// src/a.ts\nconst x = 1;\n```"
	if got != want {
		t.Errorf("renderFile() = %q, want %q", got, want)
	}
}

func TestRenderFile_Plaintext(t *testing.T) {
	f := SourceFile{Path: "src/a.ts", Content: "const x = 1;"}

	got := renderFile(f, FormatPlaintext)
	want := "// ===== src/a.ts =====\nconst x = 1;"
	if got != want {
		t.Errorf("renderFile() = %q, want %q", got, want)
	}
}

func TestRenderFile_XML(t *testing.T) {
	f := SourceFile{Path: "src/a.ts", Content: "const x = 1;"}

	got := renderFile(f, FormatXML)
	want := "<document path=\"src/a.ts\">\nconst x = 1;\n</document>"
	if got != want {
		t.Errorf("renderFile() = %q, want %q", got, want)
	}
}

func TestRenderPack_Separators(t *testing.T) {
	files := []SourceFile{
		{Path: "a.go", Content: "package a"},
		{Path: "b.go", Content: "package b"},
	}

	md := renderPack(files, []int{0, 1}, FormatMarkdown)
	if !strings.Contains(md, "```\n\n```go") {
		t.Errorf("markdown pack missing blank-line separator:\n%s", md)
	}

	xml := renderPack(files, []int{0, 1}, FormatXML)
	if !strings.HasPrefix(xml, "<documents>\n") || !strings.HasSuffix(xml, "\n</documents>") {
		t.Errorf("xml pack missing wrapper:\n%s", xml)
	}
	if strings.Contains(xml, "</document>\n\n<document") {
		t.Errorf("xml members must join with a single newline:\n%s", xml)
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"markdown", "plaintext", "xml"} {
		if _, ok := ParseFormat(valid); !ok {
			t.Errorf("ParseFormat(%q) not ok, want ok", valid)
		}
	}
	if _, ok := ParseFormat("pdf"); ok {
		t.Error("ParseFormat(pdf) ok, want not ok")
	}
}
