package plan

//go:generate go tool stringer -type=DeriveEnum -trimprefix=Derive -output=derive_string.go

// DeriveEnum is one supported derive.
type DeriveEnum int

const (
	_ DeriveEnum = iota // zero value is not a derive

	DeriveConstructor
	DeriveDisplay
	DeriveError
	DeriveFrom
	DeriveMethod
	DeriveInner
	DeriveRecord
)

// AllDerives lists every supported derive in a fixed order.
func AllDerives() []DeriveEnum {
	return []DeriveEnum{
		DeriveConstructor,
		DeriveDisplay,
		DeriveError,
		DeriveFrom,
		DeriveMethod,
		DeriveInner,
		DeriveRecord,
	}
}

// ParseDerive looks a derive up by the name used in #[derive(..)].
func ParseDerive(name string) (DeriveEnum, bool) {
	for _, d := range AllDerives() {
		if d.String() == name {
			return d, true
		}
	}

	return 0, false
}

// Names returns the derive names, in AllDerives order.
func Names() []string {
	all := AllDerives()
	names := make([]string, 0, len(all))

	for _, d := range all {
		names = append(names, d.String())
	}

	return names
}

// Helper returns the helper attribute path the derive reads; Error has none.
func (d DeriveEnum) Helper() string {
	if d == DeriveError {
		return ""
	}

	return d.String()
}

// StructOnly reports whether the derive rejects enums.
func (d DeriveEnum) StructOnly() bool {
	switch d {
	case DeriveConstructor, DeriveMethod, DeriveInner, DeriveRecord:
		return true
	default:
		return false
	}
}
