package grading

import (
	"sort"
	"strings"
	"unicode"
)

// normalize lowercases the string and turns every non-alphanumeric rune
// into a token separator, so punctuation and case never affect the score.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		default:
			space = true
		}
	}
	return string(out)
}

// tokenSet returns the sorted set of unique whitespace-delimited tokens.
func tokenSet(s string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, tok := range strings.Fields(s) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// TokenSetRatio scores the similarity of two strings in [0, 100], tolerant
// of token order, repeated tokens, case and punctuation. Each string is
// reduced to its token set; the score is the best character ratio among the
// pairings of the shared tokens with each side's remainder, so a submission
// containing all expected tokens in any order scores 100.
func TokenSetRatio(a, b string) int {
	setA := tokenSet(normalize(a))
	setB := tokenSet(normalize(b))

	inB := make(map[string]struct{}, len(setB))
	for _, tok := range setB {
		inB[tok] = struct{}{}
	}
	inA := make(map[string]struct{}, len(setA))
	for _, tok := range setA {
		inA[tok] = struct{}{}
	}

	var shared, onlyA, onlyB []string
	for _, tok := range setA {
		if _, ok := inB[tok]; ok {
			shared = append(shared, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for _, tok := range setB {
		if _, ok := inA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}

	base := strings.Join(shared, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	score := ratio(base, combinedA)
	if r := ratio(base, combinedB); r > score {
		score = r
	}
	if r := ratio(combinedA, combinedB); r > score {
		score = r
	}
	return score
}

// ratio is the classic similarity percentage of two strings: edit distance
// with substitutions costing two, normalized by the combined length.
func ratio(a, b string) int {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	dist := editDistance(ar, br)
	return int(float64(total-dist)/float64(total)*100 + 0.5)
}

// editDistance computes edit distance with insertion and deletion cost 1
// and substitution cost 2, which keeps the ratio symmetric with treating a
// substitution as a delete plus an insert.
func editDistance(ar, br []rune) int {
	n, m := len(ar), len(br)
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 2
			}
			dp[j] = min3(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
