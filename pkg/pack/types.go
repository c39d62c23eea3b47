package pack

// Format selects the textual representation of rendered packs.
type Format string

const (
	// FormatMarkdown renders each file as a fenced code block with a
	// language tag and a path comment line.
	FormatMarkdown Format = "markdown"

	// FormatPlaintext renders each file as a path banner followed by
	// the raw content, no fencing.
	FormatPlaintext Format = "plaintext"

	// FormatXML renders each file as a <document path="..."> element
	// inside a <documents> wrapper.
	FormatXML Format = "xml"
)

// ParseFormat maps a format name to a Format. Unknown names report false.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatMarkdown, FormatPlaintext, FormatXML:
		return Format(s), true
	}
	return "", false
}

// SourceFile is one input file handed to the engine. Path may use
// either directory-separator convention; it is normalized internally.
// TokenCount is optional: zero means "estimate from content".
type SourceFile struct {
	Path       string `json:"path"`
	Content    string `json:"content"`
	TokenCount int    `json:"tokenCount,omitempty"`
}

// Request describes one packing run. The engine treats a PackCount
// below one as one and an empty Format as plaintext; stricter
// validation belongs to the calling adapter.
type Request struct {
	Files     []SourceFile `json:"files"`
	PackCount int          `json:"numPacks"`
	Format    Format       `json:"outputFormat"`
}

// Pack is one rendered bundle of files.
type Pack struct {
	Index      int      `json:"index"`
	Content    string   `json:"content"`
	TokenCount int      `json:"estimatedTokens"`
	FileCount  int      `json:"fileCount"`
	FilePaths  []string `json:"filePaths"`
}

// Response holds every pack produced for a request. Each input file
// appears in exactly one pack, and pack token counts sum to
// TotalTokens.
type Response struct {
	Packs       []Pack `json:"packs"`
	TotalTokens int    `json:"totalTokens"`
}
