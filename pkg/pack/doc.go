// Package pack turns a flat collection of source files into an ordered
// sequence of token-bounded bundles ("packs") suitable for a
// context-limited consumer.
//
// # Pipeline
//
// Build runs a fixed pipeline, each stage a pure function of the
// previous stage's output:
//
//  1. Specifier extraction: heuristic, line-based scanning for
//     import-like references in each file.
//  2. Path resolution: mapping extracted specifiers onto the known
//     file set. Unresolved specifiers are treated as external
//     references, never as errors.
//  3. Graph construction: a directed dependency graph plus an
//     undirected "related" adjacency (see [depgraph.Graph]).
//  4. Deterministic topological ordering, cycle-safe.
//  5. Documentation/code separation with README-first prioritization.
//  6. Import-connected grouping of the code subsequence.
//  7. Order-preserving, token-balanced distribution into packs.
//  8. Rendering in markdown, plaintext, or XML form.
//
// # Purity
//
// The package performs no I/O and holds no state between calls. Two
// concurrent Build invocations never interfere. Callers on a
// latency-sensitive thread should still schedule Build elsewhere: it
// is CPU-bound and runs to completion synchronously.
//
// # Heuristics
//
// Specifier extraction is a lexical best-effort scan, not a parser.
// It may under- or over-match unusual syntax; that is the intended
// tradeoff. Resolution likewise performs no package-manager
// semantics: a bare specifier resolves only if a matching path exists
// in the input set, so genuine third-party package names fall out
// naturally.
package pack
