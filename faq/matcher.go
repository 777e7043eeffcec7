package faq

import (
	"regexp"
	"strings"
)

// DefaultMatchThreshold is the minimum fuzzy-phase score the composer
// treats as usable. Below it the bot says "I don't know" rather than risk
// answering with an unrelated entry. Empirical; override via Config.
const DefaultMatchThreshold = 0.35

// FindBestMatch returns the best candidate for an utterance using two
// phases. The exact phase walks the catalog in order and returns the
// first entry whose keyword (or whole question) is contained in the
// lowercased utterance, score 1.0. Catalog order is the tie-break: the
// first satisfying entry wins even if a later one would score higher.
// The fuzzy phase blends edit-distance similarity with token overlap
// against both question and answer and keeps the highest-scoring entry,
// first seen winning ties.
//
// Total over its inputs: an empty utterance or empty catalog yields a
// zero-value Match.
func FindBestMatch(utterance string, catalog []Entry) Match {
	text := strings.ToLower(utterance)

	for i := range catalog {
		entry := &catalog[i]
		for _, kw := range entry.KeywordList() {
			if strings.Contains(text, kw) {
				return Match{Entry: entry, Score: 1.0}
			}
		}
		question := strings.ToLower(strings.TrimSpace(entry.Question))
		if question != "" && strings.Contains(text, question) {
			return Match{Entry: entry, Score: 1.0}
		}
	}

	var best Match
	for i := range catalog {
		entry := &catalog[i]
		question := strings.ToLower(entry.Question)
		answer := strings.ToLower(entry.Answer)

		qScore := 0.6*Similarity(text, question) + 0.4*TokenOverlap(text, question)
		aScore := 0.5*Similarity(text, answer) + 0.5*TokenOverlap(text, answer)

		score := qScore
		if aScore > score {
			score = aScore
		}
		if score > best.Score {
			best = Match{Entry: entry, Score: score}
		}
	}
	return best
}

// Similarity is a length-normalized Levenshtein similarity:
// 1 - editDistance(a,b)/max(len(a),len(b)). Symmetric; identical nonempty
// strings score 1.0; any empty input scores 0. Case-sensitive, callers
// normalize first.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return 1 - float64(editDistance(ra, rb))/float64(longer)
}

// editDistance computes Levenshtein distance with a single-row DP table.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

var nonWord = regexp.MustCompile(`\W+`)

// TokenOverlap is the fraction of distinct shared tokens between two
// strings, normalized by the larger token count. Tokens are runs of word
// characters; either side tokenizing to nothing yields 0.
func TokenOverlap(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	inA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		inA[t] = struct{}{}
	}

	shared := 0
	counted := make(map[string]struct{})
	for _, t := range tokensB {
		if _, ok := inA[t]; !ok {
			continue
		}
		if _, dup := counted[t]; dup {
			continue
		}
		counted[t] = struct{}{}
		shared++
	}

	return float64(shared) / float64(max(len(tokensA), len(tokensB)))
}

func tokenize(s string) []string {
	parts := nonWord.Split(s, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
