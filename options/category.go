package options

// CategoryEnum selects shape categories of enum variants (or of a struct)
// that a container-level From attribute enables.
type CategoryEnum int

const (
	CategoryNamed   CategoryEnum = 1 << iota // variants with named fields: V { a: A }
	CategoryUnnamed                          // variants with positional fields: V(A, B)
	CategoryUnit                             // variants without fields: V

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

// Has reports whether c selects every category in other.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return other != CategoryNone && c&other == other
}

func (c CategoryEnum) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAll:
		return "all"
	}

	var s string
	for _, it := range []struct {
		cat  CategoryEnum
		name string
	}{{CategoryNamed, "named"}, {CategoryUnnamed, "unnamed"}, {CategoryUnit, "unit"}} {
		if c&it.cat == 0 {
			continue
		}

		if s != "" {
			s += "|"
		}

		s += it.name
	}

	return s
}
