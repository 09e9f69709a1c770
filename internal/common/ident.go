package common

import (
	"strconv"
	"strings"
)

// UnknownStr is the String() value of enum members outside their range.
const UnknownStr = "unknown"

const rawPrefix = "r#"

// TrimRaw strips the raw-identifier prefix: r#type -> type.
func TrimRaw(ident string) string {
	return strings.TrimPrefix(ident, rawPrefix)
}

// WithSuffix appends suffix to an identifier, dropping the raw prefix since
// the result is never a keyword: r#type + Record -> typeRecord.
func WithSuffix(ident, suffix string) string {
	return TrimRaw(ident) + suffix
}

// PositionalName synthesises the binding for a positional field: value0,
// value1 and so on.
func PositionalName(index int) string {
	return "value" + strconv.Itoa(index)
}
