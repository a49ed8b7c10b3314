package statblock

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyConfidence is the fixed confidence of every fuzzy hit
const FuzzyConfidence = 0.7

var (
	fuzzyTokenSplit = regexp.MustCompile(`[\s:,\-()]+`)
	numericToken    = regexp.MustCompile(`^\d+(?:/\d+)?$`)
)

// FuzzyMatch is a value recovered near a misspelled keyword
type FuzzyMatch struct {
	Value      string  `json:"value"`
	Keyword    string  `json:"keyword"`
	Token      string  `json:"token"`
	Line       int     `json:"line"`
	Confidence float64 `json:"confidence"`
}

// keywordLimit is the threshold, except that keywords of two letters or
// fewer like "ac" must match exactly
func keywordLimit(keyword string, threshold int) int {
	if len(keyword) <= 2 {
		return 0
	}
	return threshold
}

// closestKeyword returns the first keyword within its limit of token
func closestKeyword(token string, keywords []string, threshold int) (string, bool) {
	token = strings.ToLower(token)
	if token == "" || numericToken.MatchString(token) {
		return "", false
	}
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if levenshtein.ComputeDistance(token, kw) <= keywordLimit(kw, threshold) {
			return keyword, true
		}
	}
	return "", false
}

// adjacentNumber returns the numeric token nearest after index i, else before it
func adjacentNumber(tokens []string, i int) (string, bool) {
	for j := i + 1; j < len(tokens); j++ {
		if numericToken.MatchString(tokens[j]) {
			return tokens[j], true
		}
	}
	for j := i - 1; j >= 0; j-- {
		if numericToken.MatchString(tokens[j]) {
			return tokens[j], true
		}
	}
	return "", false
}

// Match scans lines for a token within threshold edit distance of one of the
// keywords and returns the numeric token on the same line. Only the lines
// given are scanned; callers bound the window.
func Match(keywords []string, lines []string, threshold int) (FuzzyMatch, bool) {
	for lineNo, line := range lines {
		tokens := fuzzyTokenSplit.Split(line, -1)
		for i, token := range tokens {
			keyword, ok := closestKeyword(token, keywords, threshold)
			if !ok {
				continue
			}
			value, ok := adjacentNumber(tokens, i)
			if !ok {
				continue
			}
			return FuzzyMatch{
				Value:      value,
				Keyword:    keyword,
				Token:      token,
				Line:       lineNo,
				Confidence: FuzzyConfidence,
			}, true
		}
	}
	return FuzzyMatch{}, false
}

// MatchKeyword returns the candidate closest to some token in lines; the
// candidate itself is the value.
func MatchKeyword(candidates []string, lines []string, threshold int) (FuzzyMatch, bool) {
	for lineNo, line := range lines {
		for _, token := range fuzzyTokenSplit.Split(line, -1) {
			keyword, ok := closestKeyword(token, candidates, threshold)
			if !ok {
				continue
			}
			return FuzzyMatch{
				Value:      keyword,
				Keyword:    keyword,
				Token:      token,
				Line:       lineNo,
				Confidence: FuzzyConfidence,
			}, true
		}
	}
	return FuzzyMatch{}, false
}

// window returns at most n leading lines
func window(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
