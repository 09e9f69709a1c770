// Package analyze reads annotated Rust type declarations.
//
// It works on token trees from internal/syntax and builds a small syntactic
// model of structs and enums; there is no name resolution and no type
// checking.
//
// Key types:
//   - Declaration: a struct or enum with attributes, visibility and generics
//   - Shape: named fields, positional fields or unit
//   - Variant: one enum case with its own Shape and attributes
//   - Type: a field type classified as path, tuple, reference or other
package analyze
