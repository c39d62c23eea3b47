package pack

import "math"

// distribute splits the documentation and code subsequences into up
// to requested order-preserving bins.
//
// When both subsequences are non-empty, more than one pack was asked
// for, and there are tokens to balance, each subsequence gets its own
// share of bins proportional to its token weight (documentation bins
// first). In every other case the subsequences are concatenated and
// distributed as one.
func distribute(docs, code []int, tokens []int, requested int) [][]int {
	docTokens := sumTokens(docs, tokens)
	codeTokens := sumTokens(code, tokens)
	total := docTokens + codeTokens

	if len(docs) == 0 || len(code) == 0 || requested <= 1 || total == 0 {
		merged := make([]int, 0, len(docs)+len(code))
		merged = append(merged, docs...)
		merged = append(merged, code...)
		return distributeSeq(merged, tokens, requested)
	}

	docPacks := int(math.Round(float64(requested) * float64(docTokens) / float64(total)))
	if docPacks < 1 {
		docPacks = 1
	}
	if docPacks > requested-1 {
		docPacks = requested - 1
	}

	bins := distributeSeq(docs, tokens, docPacks)
	return append(bins, distributeSeq(code, tokens, requested-docPacks)...)
}

// distributeSeq partitions seq into contiguous slices approximating
// equal token shares. The b-th boundary closes once the running token
// sum reaches ceil(total*(b+1)/P), provided enough files remain to
// fill the packs still open; when the remaining files exactly match
// the remaining packs the boundary closes regardless, so a request
// for at least len(seq) packs yields one file per pack.
func distributeSeq(seq []int, tokens []int, requested int) [][]int {
	if len(seq) == 0 {
		return nil
	}
	p := requested
	if p > len(seq) {
		p = len(seq)
	}
	if p <= 1 {
		return [][]int{seq}
	}

	total := sumTokens(seq, tokens)
	bins := make([][]int, 0, p)
	var current []int
	running := 0
	boundary := 0

	for i, idx := range seq {
		current = append(current, idx)
		running += tokens[idx]
		if boundary >= p-1 {
			continue
		}
		filesLeft := len(seq) - i - 1
		packsLeft := p - boundary - 1
		if filesLeft < packsLeft {
			continue
		}
		target := ceilDiv(total*(boundary+1), p)
		if running >= target || filesLeft == packsLeft {
			bins = append(bins, current)
			current = nil
			boundary++
		}
	}
	if len(current) > 0 {
		bins = append(bins, current)
	}
	return bins
}

func sumTokens(seq []int, tokens []int) int {
	total := 0
	for _, idx := range seq {
		total += tokens[idx]
	}
	return total
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
