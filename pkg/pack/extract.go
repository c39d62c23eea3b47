package pack

import (
	"strings"
)

// lineMarkers flag a line for quoted-literal extraction. A line is
// only inspected when it contains at least one marker; everything
// else is skipped wholesale.
var lineMarkers = []string{
	"import ",
	"export ",
	" from ",
	"require(",
	"import(",
	"use ",
}

// commentPrefixes start lines that are never inspected. The "*"
// prefix catches the continuation lines of block comments.
var commentPrefixes = []string{"//", "#", "*"}

// ExtractSpecifiers scans source text line by line and collects the
// unique literal module references it can find, in order of first
// appearance.
//
// Quoted literals (single- or double-quoted, honoring backslash
// escapes) are collected from any line containing an import-like
// marker. Three unquoted forms are recognized independently of the
// marker check: Python-style "from a.b import x" and "import a, b",
// and Rust-style "mod name;" declarations.
//
// This is a lexical heuristic, not a parser. Malformed text degrades
// to fewer specifiers rather than an error.
func ExtractSpecifiers(content string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isComment(line) {
			continue
		}

		if hasMarker(line) {
			for _, lit := range quotedLiterals(line) {
				add(lit)
			}
		}

		for _, spec := range unquotedForms(line) {
			add(spec)
		}
	}
	return out
}

func isComment(line string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func hasMarker(line string) bool {
	for _, m := range lineMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// quotedLiterals returns every complete quoted string on the line.
// A backslash escapes the following character; a quote still open at
// end of line is discarded.
func quotedLiterals(line string) []string {
	var (
		out     []string
		buf     strings.Builder
		quote   byte
		escaped bool
		open    bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !open {
			if c == '\'' || c == '"' {
				open = true
				quote = c
				buf.Reset()
			}
			continue
		}
		if escaped {
			buf.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case quote:
			out = append(out, buf.String())
			open = false
		default:
			buf.WriteByte(c)
		}
	}
	return out
}

// unquotedForms recognizes module references written without quotes:
//
//	from a.b import x   -> a/b
//	import a.b, c       -> a/b, c
//	mod name;           -> ./name
//	pub mod name;       -> ./name
func unquotedForms(line string) []string {
	if strings.ContainsAny(line, `'"`) {
		return modDecl(line)
	}

	if rest, ok := strings.CutPrefix(line, "from "); ok {
		if mod, _, found := strings.Cut(rest, " import "); found {
			mod = strings.TrimSpace(mod)
			if mod != "" && !strings.ContainsAny(mod, " \t") {
				return append([]string{dottedToPath(mod)}, modDecl(line)...)
			}
		}
		return modDecl(line)
	}

	if rest, ok := strings.CutPrefix(line, "import "); ok && !strings.Contains(line, " from ") {
		var out []string
		for _, part := range strings.Split(rest, ",") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			out = append(out, dottedToPath(fields[0]))
		}
		return append(out, modDecl(line)...)
	}

	return modDecl(line)
}

// modDecl matches Rust module declarations: "mod name;" with an
// optional "pub " prefix. The referenced module lives next to the
// declaring file, hence the "./" form.
func modDecl(line string) []string {
	rest, ok := strings.CutPrefix(strings.TrimPrefix(line, "pub "), "mod ")
	if !ok {
		return nil
	}
	name, ok := strings.CutSuffix(strings.TrimSpace(rest), ";")
	if !ok {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t{}") {
		return nil
	}
	return []string{"./" + name}
}

func dottedToPath(mod string) string {
	return strings.ReplaceAll(mod, ".", "/")
}
