// Package match ranks known names against a misspelled one.
//
// It backs the "did you mean" suggestions attached to unknown attribute and
// unknown derive diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names by similarity
//   - Suggest: the best few names worth showing to a user
package match
