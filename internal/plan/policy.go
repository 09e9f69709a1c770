package plan

import "derive-generator/internal/common"

// Toggle is a three-valued feature decision. Inherited defers to the next
// level down: item to container, container to the built-in default.
type Toggle int

const (
	// ToggleInherited - nothing was said at this level.
	ToggleInherited Toggle = iota
	// ToggleEnabled - explicitly turned on.
	ToggleEnabled
	// ToggleSkipped - explicitly turned off.
	ToggleSkipped
)

// String returns a human-readable toggle name.
func (t Toggle) String() string {
	switch t {
	case ToggleInherited:
		return "inherited"
	case ToggleEnabled:
		return "enabled"
	case ToggleSkipped:
		return "skipped"
	default:
		return common.UnknownStr
	}
}

// Merge applies a later decision at the same level. An explicit next wins.
func (t Toggle) Merge(next Toggle) Toggle {
	if next == ToggleInherited {
		return t
	}

	return next
}

// Resolve yields the final decision given what the level below decided.
func (t Toggle) Resolve(fallback bool) bool {
	switch t {
	case ToggleEnabled:
		return true
	case ToggleSkipped:
		return false
	default:
		return fallback
	}
}
