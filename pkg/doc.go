// Package pkg provides the core libraries for contextpack.
//
// # Overview
//
// Contextpack turns a source tree into token-balanced "packs": ordered
// concatenations of files sized to fit a model context window. The pkg
// directory is organized into four main areas:
//
//  1. [pack] - The packing engine (import extraction, ordering, binning, rendering)
//  2. [depgraph] - Directed file dependency graph with deterministic topological order
//  3. [discover] - Filesystem discovery (binary filtering, gitignore handling)
//  4. [graphio] - Graph export (JSON, DOT, SVG)
//
// # Architecture
//
// The typical data flow through contextpack:
//
//	Source Tree
//	         ↓
//	    [discover] package (walk, filter binaries, apply ignores)
//	         ↓
//	    [pack] package (extract imports → order → group → distribute)
//	         ↓
//	    Markdown/Plaintext/XML packs
//
// # Quick Start
//
// Pack a set of files already in memory:
//
//	import "github.com/contextpack/contextpack/pkg/pack"
//
//	resp := pack.Build(pack.Request{
//	    Files: []pack.SourceFile{
//	        {Path: "a.ts", Content: `import { b } from "./b";`},
//	        {Path: "b.ts", Content: "export const b = 1;"},
//	    },
//	    PackCount: 2,
//	    Format:    pack.FormatMarkdown,
//	})
//
// Or discover files from disk first:
//
//	files, err := discover.Files("./src", discover.Options{RespectGitignore: true})
//	if err != nil {
//	    return err
//	}
//	resp := pack.Build(pack.Request{Files: files, PackCount: 4})
//
// # Main Packages
//
// [pack] - The pure packing engine. Extracts import specifiers with a
// language-agnostic line scan, resolves them against the input file set,
// orders files so dependencies come before dependents, separates
// documentation from code, groups import-connected files, and splits the
// result into token-balanced packs. The engine never touches the
// filesystem and never fails on well-formed input.
//
// [depgraph] - The directed dependency graph behind the engine. Provides
// deduplicated edges, an undirected "related" adjacency for grouping,
// deterministic Kahn topological ordering with a cycle fallback, and
// connected-component extraction over arbitrary node subsets.
//
// [discover] - Filesystem collaborator. Walks a directory tree, skips
// binaries (by extension or NUL sniff), excluded directories such as
// node_modules, and anything matched by .gitignore or custom patterns.
//
// [graphio] - Serializes a dependency graph as JSON or Graphviz DOT,
// and renders SVG through goccy/go-graphviz.
//
// ## Infrastructure
//
// [cache] - Response cache with null, in-memory LRU, file, and Redis
// backends, plus SHA-256 request keying for memoizing pack responses.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP adapter, plus request validation helpers.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/pack/...      # Engine only
//
// [pack]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/pack
// [depgraph]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/depgraph
// [discover]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/discover
// [graphio]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/graphio
// [cache]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/cache
// [errors]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/contextpack/contextpack/pkg/buildinfo
package pkg
