package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFiles_Basic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# readme")
	writeFile(t, root, "src/app.ts", "import './util';")
	writeFile(t, root, "src/util.ts", "export const x = 1;")

	files, err := Files(root, Options{})
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		got[f.Path] = true
	}
	for _, want := range []string{"README.md", "src/app.ts", "src/util.ts"} {
		if !got[want] {
			t.Errorf("Files() missing %q, got %v", want, files)
		}
	}
}

func TestFiles_SkipsExcludedDirsAndBinaries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = 1")
	writeFile(t, root, "logo.png", "not really a png")
	writeFile(t, root, "data.bin", "\x00\x01\x02binary")
	writeFile(t, root, ".DS_Store", "junk")

	files, err := Files(root, Options{})
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	if len(files) != 1 || files[0].Path != "main.go" {
		t.Errorf("Files() = %v, want only main.go", files)
	}
}

func TestFiles_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "generated/\n*.log\n")
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "generated/out.go", "package gen")
	writeFile(t, root, "debug.log", "noise")

	files, err := Files(root, Options{RespectGitignore: true})
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	for _, f := range files {
		if f.Path == "generated/out.go" || f.Path == "debug.log" {
			t.Errorf("Files() included ignored path %q", f.Path)
		}
	}
}

func TestFiles_CustomIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go", "package main")
	writeFile(t, root, "skip.gen.go", "package main")

	files, err := Files(root, Options{IgnorePatterns: []string{"*.gen.go"}})
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	if len(files) != 1 || files[0].Path != "keep.go" {
		t.Errorf("Files() = %v, want only keep.go", files)
	}
}

func TestWalk_Order(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "zdir/inner.txt", "z")

	nodes, err := Walk(root, Options{})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	var names []string
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	want := []string{"zdir", "a.txt", "b.txt"}
	if len(names) != len(want) {
		t.Fatalf("Walk() names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk() order[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWalk_NotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")

	if _, err := Walk(filepath.Join(root, "file.txt"), Options{}); err == nil {
		t.Error("Walk(file) = nil error, want error")
	}
}

func TestWalk_AssignsIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	nodes, err := Walk(root, Options{})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID == "" {
		t.Errorf("Walk() node ID empty: %+v", nodes)
	}
}
