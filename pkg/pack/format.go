package pack

import (
	"fmt"
	"path"
	"strings"
)

// langForExt is the closed extension→language table used for markdown
// fences. Unknown extensions fall back to "text".
var langForExt = map[string]string{
	"ts":   "typescript",
	"tsx":  "typescript",
	"js":   "javascript",
	"jsx":  "javascript",
	"rs":   "rust",
	"py":   "python",
	"go":   "go",
	"md":   "markdown",
	"json": "json",
	"css":  "css",
	"html": "html",
	"toml": "toml",
	"yaml": "yaml",
	"yml":  "yaml",
	"sh":   "bash",
	"bash": "bash",
}

// EstimateTokens approximates the token weight of content as one
// token per four bytes, with a floor of one.
func EstimateTokens(content string) int {
	if n := len(content) / 4; n > 1 {
		return n
	}
	return 1
}

func languageTag(filePath string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filePath)), ".")
	if lang, ok := langForExt[ext]; ok {
		return lang
	}
	return "text"
}

// renderFile produces the textual form of one file in the given
// format. The rendering contract is bit-exact: callers rely on it for
// stable downstream diffs.
func renderFile(f SourceFile, format Format) string {
	switch format {
	case FormatMarkdown:
		return fmt.Sprintf("```%s\n// %s\n%s\n```", languageTag(f.Path), f.Path, f.Content)
	case FormatXML:
		return fmt.Sprintf("<document path=%q>\n%s\n</document>", f.Path, f.Content)
	default:
		return fmt.Sprintf("// ===== %s =====\n%s", f.Path, f.Content)
	}
}

// renderPack joins the member files of one pack. Markdown and
// plaintext members are separated by a blank line; XML members by a
// newline, wrapped in a <documents> element.
func renderPack(files []SourceFile, indices []int, format Format) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = renderFile(files[idx], format)
	}
	if format == FormatXML {
		return "<documents>\n" + strings.Join(parts, "\n") + "\n</documents>"
	}
	return strings.Join(parts, "\n\n")
}
