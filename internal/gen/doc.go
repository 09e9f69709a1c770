// Package gen renders Rust source text from resolved plans.
//
// Generation approach uses text/template for the fixed impl skeletons and
// small per-shape builders for bodies. Output is deterministic: fields and
// variants are emitted in declaration order.
//
// Emission per derive:
//   - Constructor: impl T { fn new(..) -> Self }
//   - Display: impl ::core::fmt::Display for T, one match arm per variant
//   - Error: impl ::core::error::Error for T {}
//   - From: one impl ::std::convert::From<..> per enabled conversion
//   - Method: impl T { accessors, mutators, setters }
//   - Inner / Record: a sibling type plus impl T { fn into_inner / into_record }
package gen
