// Package plan resolves the helper attributes of one declaration into a
// per-derive plan consumed by code generation.
//
// Resolution pipeline:
//  1. Parse the container attribute against the derive's container key table
//  2. Parse every field or variant attribute against its own key table
//  3. Fold each feature as a Toggle: built-in default, then container, then item
//     (an item-level skip always wins over a container-level enable)
//  4. Validate what only makes sense per field: flatten targets, Display strategies
//
// Every failure is fatal for the declaration; there is no partial plan.
package plan
