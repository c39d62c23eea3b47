package pack

import (
	"sort"
	"strings"
	"testing"
)

func TestBuild_EmptyInput(t *testing.T) {
	resp := Build(Request{Files: nil, PackCount: 5, Format: FormatMarkdown})

	if len(resp.Packs) != 0 {
		t.Errorf("len(Packs) = %d, want 0", len(resp.Packs))
	}
	if resp.TotalTokens != 0 {
		t.Errorf("TotalTokens = %d, want 0", resp.TotalTokens)
	}
}

func TestBuild_TokenConservation(t *testing.T) {
	files := []SourceFile{
		{Path: "a.go", Content: strings.Repeat("a", 100)},
		{Path: "b.go", Content: strings.Repeat("b", 999), TokenCount: 42},
		{Path: "README.md", Content: strings.Repeat("r", 80)},
	}
	resp := Build(Request{Files: files, PackCount: 2})

	sum := 0
	for _, p := range resp.Packs {
		sum += p.TokenCount
	}
	if sum != resp.TotalTokens {
		t.Errorf("sum(pack tokens) = %d, TotalTokens = %d; want equal", sum, resp.TotalTokens)
	}
	// Explicit count wins over the estimate.
	want := 25 + 42 + 20
	if resp.TotalTokens != want {
		t.Errorf("TotalTokens = %d, want %d", resp.TotalTokens, want)
	}
}

func TestBuild_EveryFileInExactlyOnePack(t *testing.T) {
	files := []SourceFile{
		{Path: "a.ts", Content: `import { b } from "./b";`},
		{Path: "b.ts", Content: "export const b = 1;"},
		{Path: "README.md", Content: "# hello"},
		{Path: "c.py", Content: "print('c')"},
	}
	resp := Build(Request{Files: files, PackCount: 3})

	var got []string
	for _, p := range resp.Packs {
		if p.FileCount != len(p.FilePaths) {
			t.Errorf("FileCount = %d, len(FilePaths) = %d", p.FileCount, len(p.FilePaths))
		}
		got = append(got, p.FilePaths...)
	}
	want := []string{"README.md", "a.ts", "b.ts", "c.py"}
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("packed paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("packed paths = %v, want %v", got, want)
		}
	}
}

func TestBuild_DependencyPrecedesDependent(t *testing.T) {
	files := []SourceFile{
		{Path: "a.ts", Content: `import { b } from "./b";`},
		{Path: "b.ts", Content: "export const b = 1;"},
	}
	resp := Build(Request{Files: files, PackCount: 1, Format: FormatPlaintext})

	if len(resp.Packs) != 1 {
		t.Fatalf("len(Packs) = %d, want 1", len(resp.Packs))
	}
	paths := resp.Packs[0].FilePaths
	if len(paths) != 2 || paths[0] != "b.ts" || paths[1] != "a.ts" {
		t.Errorf("order = %v, want [b.ts a.ts]", paths)
	}
}

func TestBuild_TwoCycleTerminates(t *testing.T) {
	files := []SourceFile{
		{Path: "a.ts", Content: `import { b } from "./b";`},
		{Path: "b.ts", Content: `import { a } from "./a";`},
	}
	resp := Build(Request{Files: files, PackCount: 1})

	if len(resp.Packs) != 1 {
		t.Fatalf("len(Packs) = %d, want 1", len(resp.Packs))
	}
	if resp.Packs[0].FileCount != 2 {
		t.Errorf("FileCount = %d, want 2 (each cycle member exactly once)", resp.Packs[0].FileCount)
	}
}

func TestBuild_EvenSplit(t *testing.T) {
	files := []SourceFile{
		{Path: "a.go", Content: "x", TokenCount: 100},
		{Path: "b.go", Content: "x", TokenCount: 100},
		{Path: "c.go", Content: "x", TokenCount: 100},
		{Path: "d.go", Content: "x", TokenCount: 100},
	}
	resp := Build(Request{Files: files, PackCount: 2})

	if len(resp.Packs) != 2 {
		t.Fatalf("len(Packs) = %d, want 2", len(resp.Packs))
	}
	for i, p := range resp.Packs {
		if p.FileCount != 2 {
			t.Errorf("pack %d FileCount = %d, want 2", i, p.FileCount)
		}
		if p.TokenCount != 200 {
			t.Errorf("pack %d TokenCount = %d, want 200", i, p.TokenCount)
		}
	}
	// Order preserved across the boundary.
	if resp.Packs[0].FilePaths[0] != "a.go" || resp.Packs[1].FilePaths[1] != "d.go" {
		t.Errorf("packs out of order: %v / %v", resp.Packs[0].FilePaths, resp.Packs[1].FilePaths)
	}
}

func TestBuild_OnePackPerFileWhenRequestedExceedsCount(t *testing.T) {
	files := []SourceFile{
		{Path: "a.go", Content: "aaaa"},
		{Path: "b.go", Content: "bbbb"},
	}
	resp := Build(Request{Files: files, PackCount: 9})

	if len(resp.Packs) != 2 {
		t.Fatalf("len(Packs) = %d, want 2", len(resp.Packs))
	}
	for i, p := range resp.Packs {
		if p.FileCount != 1 {
			t.Errorf("pack %d FileCount = %d, want 1", i, p.FileCount)
		}
		if p.Index != i {
			t.Errorf("pack %d Index = %d, want %d", i, p.Index, i)
		}
	}
}

func TestBuild_DocsPrecedeCode(t *testing.T) {
	files := []SourceFile{
		{Path: "main.go", Content: "package main"},
		{Path: "README.md", Content: "# readme"},
		{Path: "docs/usage.md", Content: "usage"},
	}
	resp := Build(Request{Files: files, PackCount: 1})

	paths := resp.Packs[0].FilePaths
	want := []string{"README.md", "docs/usage.md", "main.go"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("order = %v, want %v", paths, want)
		}
	}
}

func TestBuild_GroupsConnectedFiles(t *testing.T) {
	// app imports util; standalone sits between them alphabetically
	// but must not break up the connected pair.
	files := []SourceFile{
		{Path: "app.ts", Content: `import { u } from "./util";`},
		{Path: "standalone.ts", Content: "export const s = 1;"},
		{Path: "util.ts", Content: "export const u = 1;"},
	}
	resp := Build(Request{Files: files, PackCount: 1})

	paths := resp.Packs[0].FilePaths
	appAt := indexOf(paths, "app.ts")
	utilAt := indexOf(paths, "util.ts")
	if appAt < 0 || utilAt < 0 {
		t.Fatalf("missing files in %v", paths)
	}
	if diff := appAt - utilAt; diff != 1 && diff != -1 {
		t.Errorf("connected files not contiguous: %v", paths)
	}
}

func TestBuild_AliasResolution(t *testing.T) {
	files := []SourceFile{
		{Path: "src/App.tsx", Content: `import { cn } from "@/lib/utils";`},
		{Path: "src/lib/utils.ts", Content: "export const cn = () => '';"},
	}
	resp := Build(Request{Files: files, PackCount: 1})

	paths := resp.Packs[0].FilePaths
	if paths[0] != "src/lib/utils.ts" || paths[1] != "src/App.tsx" {
		t.Errorf("order = %v, want utils before App", paths)
	}
}

func TestBuild_WindowsSeparators(t *testing.T) {
	files := []SourceFile{
		{Path: `src\a.ts`, Content: `import { b } from "./b";`},
		{Path: `src\b.ts`, Content: "export const b = 1;"},
	}
	resp := Build(Request{Files: files, PackCount: 1})

	paths := resp.Packs[0].FilePaths
	if paths[0] != `src\b.ts` || paths[1] != `src\a.ts` {
		t.Errorf("order = %v, want b before a (original paths preserved)", paths)
	}
}

func TestBuild_MarkdownContent(t *testing.T) {
	files := []SourceFile{{Path: "a.go", Content: "package a"}}
	resp := Build(Request{Files: files, PackCount: 1, Format: FormatMarkdown})

	want := "```go\n// a.go\npackage a\n```"
	if resp.Packs[0].Content != want {
		t.Errorf("Content = %q, want %q", resp.Packs[0].Content, want)
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
