// Package diagnostic provides the fatal error taxonomy of a single expansion
// and the aggregated diagnostics of a batch run.
//
// Key types:
//   - Error: one fatal failure (unsupported item, unknown attribute,
//     malformed attribute value, invalid flatten target, unsupported
//     Display strategy, syntax). Error() is the exact message text.
//   - Diagnostics: errors, warnings and infos collected across many files
//     by the CLI driver, where one bad item must not hide the others.
package diagnostic
