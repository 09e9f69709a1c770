package match

import (
	"sort"
)

// DefaultMinScore is the similarity a known name needs to be suggested.
const DefaultMinScore = 0.6

// maxSuggestions bounds how many names Suggest returns.
const maxSuggestions = 3

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name     string
	Score    float64 // 0-1, higher is closer
	Distance int     // edit distance between the normalized names
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against unknown and returns them
// best first. Ties are broken by name so the order is deterministic.
func RankCandidates(unknown string, known []string) CandidateList {
	norm := NormalizeIdent(unknown)
	words := Words(unknown)

	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		knownNorm := NormalizeIdent(name)

		score := LevenshteinNormalized(norm, knownNorm)
		if overlap := wordOverlap(words, Words(name)); overlap > score {
			score = overlap
		}

		candidates = append(candidates, Candidate{
			Name:     name,
			Score:    score,
			Distance: Levenshtein(norm, knownNorm),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// wordOverlap is the share of words two identifiers have in common, with a
// trailing plural s ignored: accessor_return_copy vs accessors_return_copy.
func wordOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	seen := make(map[string]int, len(a))
	for _, w := range a {
		seen[singular(w)]++
	}

	common := 0

	for _, w := range b {
		if seen[singular(w)] > 0 {
			seen[singular(w)]--
			common++
		}
	}

	// Weighted below an exact spelling match.
	return 0.9 * float64(common) / float64(max(len(a), len(b)))
}

func singular(w string) string {
	if len(w) > 1 && w[len(w)-1] == 's' {
		return w[:len(w)-1]
	}

	return w
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns up to three known names close enough to unknown to be
// worth a "did you mean" hint.
func Suggest(unknown string, known []string) []string {
	return RankCandidates(unknown, known).AboveThreshold(DefaultMinScore).Top(maxSuggestions).Names()
}
