package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestPackCommand_WritesFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ts": `import { b } from "./b";`,
		"b.ts": "export const b = 1;",
	})
	out := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "pack", dir, "--output", out, "--packs", "1", "--format", "plaintext"); err != nil {
		t.Fatalf("pack: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "pack-1.txt"))
	if err != nil {
		t.Fatalf("read pack: %v", err)
	}
	content := string(data)
	bAt := strings.Index(content, "// ===== b.ts =====")
	aAt := strings.Index(content, "// ===== a.ts =====")
	if bAt < 0 || aAt < 0 {
		t.Fatalf("missing file headers in pack:\n%s", content)
	}
	if bAt > aAt {
		t.Errorf("b.ts should precede a.ts in pack output")
	}
}

func TestPackCommand_ConfigDefaults(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".contextpack.toml": "packs = 2\nformat = \"plaintext\"\n",
		"a.go":              "package a",
		"b.go":              "package b",
	})
	out := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "pack", dir, "--output", out); err != nil {
		t.Fatalf("pack: %v", err)
	}

	for _, name := range []string{"pack-1.txt", "pack-2.txt"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestPackCommand_FlagBeatsConfig(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".contextpack.toml": "format = \"xml\"\n",
		"a.go":              "package a",
	})
	out := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "pack", dir, "--output", out, "--format", "markdown"); err != nil {
		t.Fatalf("pack: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "pack-1.md")); err != nil {
		t.Errorf("expected markdown pack: %v", err)
	}
}

func TestPackCommand_IgnorePattern(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"keep.go":    "package keep",
		"scratch.go": "package scratch",
	})
	out := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "pack", dir, "--output", out, "--format", "plaintext", "--ignore", "scratch.go"); err != nil {
		t.Fatalf("pack: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "pack-1.txt"))
	if err != nil {
		t.Fatalf("read pack: %v", err)
	}
	if strings.Contains(string(data), "scratch.go") {
		t.Errorf("ignored file leaked into pack")
	}
}

func TestPackCommand_InvalidFormat(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.go": "package a"})

	if err := runCommand(t, "pack", dir, "--format", "docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPackCommand_InvalidPackCount(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.go": "package a"})

	if err := runCommand(t, "pack", dir, "--packs", "0"); err == nil {
		t.Error("expected error for pack count 0")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".contextpack.toml": "packs = 3\nformat = \"xml\"\nignore = [\"*.log\"]\ngitignore = false\n",
	})

	cfg, found, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if cfg.Packs != 3 {
		t.Errorf("Packs = %d, want 3", cfg.Packs)
	}
	if cfg.Format != "xml" {
		t.Errorf("Format = %q, want xml", cfg.Format)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "*.log" {
		t.Errorf("Ignore = %v, want [*.log]", cfg.Ignore)
	}
	if cfg.respectGitignore() {
		t.Error("respectGitignore() = true, want false")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, found, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if found {
		t.Error("found = true, want false")
	}
	if !cfg.respectGitignore() {
		t.Error("default respectGitignore() = false, want true")
	}
}

func TestCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", "contextpack")
	if dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
}
