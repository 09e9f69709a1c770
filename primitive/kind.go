package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a Rust primitive type recognised by name.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindIsize
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindUsize
	KindF32
	KindF64
	KindChar
	KindBool
	KindStr

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var idents = map[string]KindEnum{
	"i8":    KindI8,
	"i16":   KindI16,
	"i32":   KindI32,
	"i64":   KindI64,
	"i128":  KindI128,
	"isize": KindIsize,
	"u8":    KindU8,
	"u16":   KindU16,
	"u32":   KindU32,
	"u64":   KindU64,
	"u128":  KindU128,
	"usize": KindUsize,
	"f32":   KindF32,
	"f64":   KindF64,
	"char":  KindChar,
	"bool":  KindBool,
	"str":   KindStr,
}

// FromIdent maps a bare type name to its kind, or 0 when the name is not a
// primitive.
func FromIdent(name string) KindEnum {
	return idents[name]
}

// IsCopy reports whether values of the kind are trivially copyable.
func (k KindEnum) IsCopy() bool {
	c := k.Category()

	return c != CategoryNone && CategoryCopy.Has(c)
}
