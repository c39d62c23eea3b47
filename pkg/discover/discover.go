// Package discover finds packable source files under a directory
// root. It is the file-discovery collaborator the packing engine is
// fed from: binaries and ignored directories are filtered out here so
// the engine only ever sees a flat list of text files.
package discover

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/contextpack/contextpack/pkg/pack"
)

// binaryExtensions are skipped without opening the file.
var binaryExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "ico": {},
	"webp": {}, "avif": {}, "tiff": {}, "pdf": {}, "doc": {}, "docx": {},
	"xls": {}, "xlsx": {}, "ppt": {}, "pptx": {}, "zip": {}, "tar": {},
	"gz": {}, "bz2": {}, "7z": {}, "rar": {}, "exe": {}, "dll": {},
	"so": {}, "dylib": {}, "a": {}, "lib": {}, "bin": {}, "wasm": {},
	"mp3": {}, "mp4": {}, "wav": {}, "ogg": {}, "flac": {}, "avi": {},
	"mov": {}, "mkv": {}, "webm": {}, "ttf": {}, "otf": {}, "woff": {},
	"woff2": {}, "eot": {}, "class": {}, "pyc": {}, "pyo": {}, "o": {},
	"obj": {},
}

// excludedDirs are never descended into, gitignore or not.
var excludedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"target":       {},
	"__pycache__":  {},
	".next":        {},
	".nuxt":        {},
	"coverage":     {},
	".turbo":       {},
	".cache":       {},
}

// junkFiles are OS droppings excluded by name.
var junkFiles = map[string]struct{}{
	".DS_Store": {},
	"Thumbs.db": {},
}

// FileNode is one discovered file or directory. Directories carry
// their children; files carry size and extension. The shape matches
// what the HTTP tree endpoint serves.
type FileNode struct {
	ID           string      `json:"id"`
	Path         string      `json:"path"`
	RelativePath string      `json:"relativePath"`
	Name         string      `json:"name"`
	Extension    string      `json:"extension"`
	Size         int64       `json:"size"`
	IsDir        bool        `json:"isDir"`
	Children     []*FileNode `json:"children,omitempty"`
}

// Options configures a walk.
type Options struct {
	// RespectGitignore loads .gitignore from the root and applies it.
	RespectGitignore bool

	// IgnorePatterns are additional gitignore-style patterns.
	IgnorePatterns []string
}

// Walk builds the file tree under root, excluding binaries, ignored
// directories, and anything matched by the ignore patterns. Entries
// are ordered directories first, then files, each alphabetically, so
// repeated walks over an unchanged tree are identical apart from the
// generated IDs.
func Walk(root string, opts Options) ([]*FileNode, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "walk", Path: root, Err: fs.ErrInvalid}
	}

	matcher := buildMatcher(root, opts)
	return walkDir(root, root, matcher)
}

// Files walks root and loads the contents of every discovered file,
// producing the flat input list the packing engine consumes. Paths
// are relative to root with forward slashes.
func Files(root string, opts Options) ([]pack.SourceFile, error) {
	nodes, err := Walk(root, opts)
	if err != nil {
		return nil, err
	}

	var files []pack.SourceFile
	var load func(nodes []*FileNode) error
	load = func(nodes []*FileNode) error {
		for _, n := range nodes {
			if n.IsDir {
				if err := load(n.Children); err != nil {
					return err
				}
				continue
			}
			content, err := os.ReadFile(n.Path)
			if err != nil {
				return err
			}
			files = append(files, pack.SourceFile{
				Path:    filepath.ToSlash(n.RelativePath),
				Content: string(content),
			})
		}
		return nil
	}
	if err := load(nodes); err != nil {
		return nil, err
	}
	return files, nil
}

func buildMatcher(root string, opts Options) *ignore.GitIgnore {
	var lines []string
	if opts.RespectGitignore {
		if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
			lines = append(lines, strings.Split(string(data), "\n")...)
		}
	}
	lines = append(lines, opts.IgnorePatterns...)
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}

func walkDir(root, dir string, matcher *ignore.GitIgnore) ([]*FileNode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	// Directories first, then files, each alphabetically.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	var nodes []*FileNode
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		isDir := entry.IsDir()

		if isDir {
			if _, excluded := excludedDirs[name]; excluded {
				continue
			}
		} else {
			if _, junk := junkFiles[name]; junk {
				continue
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if matcher != nil && matcher.MatchesPath(rel) {
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if !isDir && isBinary(path, ext) {
			continue
		}

		node := &FileNode{
			ID:           uuid.NewString(),
			Path:         path,
			RelativePath: rel,
			Name:         name,
			Extension:    ext,
			IsDir:        isDir,
		}

		if isDir {
			children, err := walkDir(root, path, matcher)
			if err != nil {
				return nil, err
			}
			node.Children = children
		} else if info, err := entry.Info(); err == nil {
			node.Size = info.Size()
		}

		nodes = append(nodes, node)
	}
	return nodes, nil
}

// isBinary reports whether the file should be treated as binary,
// either by extension or by a NUL byte in the first 8 KiB.
func isBinary(path, ext string) bool {
	if _, known := binaryExtensions[ext]; known {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 8192)
	n, _ := f.Read(buf)
	return bytes.IndexByte(buf[:n], 0) >= 0
}
