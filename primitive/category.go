package primitive

type CategoryEnum int

const (
	CategorySigned   CategoryEnum = 1 << iota // i8 .. i128, isize
	CategoryUnsigned                          // u8 .. u128, usize
	CategoryFloat                             // f32, f64
	CategoryChar                              // char
	CategoryBool                              // bool
	CategoryText                              // str: unsized, never copied

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryCopy holds the categories whose values are returned by copy.
	CategoryCopy = CategorySigned | CategoryUnsigned | CategoryFloat | CategoryChar | CategoryBool
)

// Category returns the single category the kind belongs to.
func (k KindEnum) Category() CategoryEnum {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize:
		return CategorySigned
	case KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize:
		return CategoryUnsigned
	case KindF32, KindF64:
		return CategoryFloat
	case KindChar:
		return CategoryChar
	case KindBool:
		return CategoryBool
	case KindStr:
		return CategoryText
	default:
		return CategoryNone
	}
}

// Has reports whether every category in other is selected in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}
