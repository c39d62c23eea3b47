package pack

// Build runs the packing pipeline over a request and returns the
// rendered packs. It never fails on well-formed input: malformed
// source text degrades to fewer extracted references, unresolved
// specifiers are treated as external, and dependency cycles fall back
// to a deterministic path ordering. An empty file list yields an
// empty pack list and zero total tokens.
func Build(req Request) Response {
	files := req.Files
	if len(files) == 0 {
		return Response{Packs: []Pack{}, TotalTokens: 0}
	}

	requested := req.PackCount
	if requested < 1 {
		requested = 1
	}
	format := req.Format
	if format == "" {
		format = FormatPlaintext
	}

	// Token weights are fixed once per file and reused everywhere so
	// pack totals always sum to the input total.
	tokens := make([]int, len(files))
	total := 0
	for i, f := range files {
		tokens[i] = f.TokenCount
		if tokens[i] <= 0 {
			tokens[i] = EstimateTokens(f.Content)
		}
		total += tokens[i]
	}

	g := BuildGraph(files)
	order := g.TopoOrder()
	docs, code := splitDocs(order, normalizedPaths(files))
	code = groupComponents(code, g)
	bins := distribute(docs, code, tokens, requested)

	packs := make([]Pack, 0, len(bins))
	for _, bin := range bins {
		if len(bin) == 0 {
			continue
		}
		packTokens := 0
		filePaths := make([]string, len(bin))
		for i, idx := range bin {
			packTokens += tokens[idx]
			filePaths[i] = files[idx].Path
		}
		packs = append(packs, Pack{
			Index:      len(packs),
			Content:    renderPack(files, bin, format),
			TokenCount: packTokens,
			FileCount:  len(bin),
			FilePaths:  filePaths,
		})
	}

	return Response{Packs: packs, TotalTokens: total}
}
