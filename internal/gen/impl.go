package gen

import (
	"strings"

	"derive-generator/internal/analyze"
)

// indent is one level of Rust indentation.
const indent = "    "

// implHead renders impl headers with generics split the way an impl needs
// them: bounds on the impl, bare names on the type, where clause after.
type implHead struct {
	ImplGenerics string
	Name         string
	TypeGenerics string
	Where        string // " where ..." or empty
}

func newImplHead(decl *analyze.Declaration) implHead {
	h := implHead{
		ImplGenerics: decl.Generics.ImplGenerics(),
		Name:         decl.Name,
		TypeGenerics: decl.Generics.TypeGenerics(),
	}

	if w := decl.Generics.WhereClause(); w != "" {
		h.Where = " " + w
	}

	return h
}

// Type renders the implementing type: Name<T>.
func (h implHead) Type() string {
	return h.Name + h.TypeGenerics
}

// Inherent renders "impl<..> Name<..> where ..".
func (h implHead) Inherent() string {
	return "impl" + h.ImplGenerics + " " + h.Type() + h.Where
}

// For renders "impl<..> Trait for Name<..> where ..".
func (h implHead) For(trait string) string {
	return "impl" + h.ImplGenerics + " " + trait + " for " + h.Type() + h.Where
}

// lines indents every non-empty line of block by depth levels.
func lines(block string, depth int) string {
	prefix := strings.Repeat(indent, depth)

	parts := strings.Split(block, "\n")
	for i, p := range parts {
		if p != "" {
			parts[i] = prefix + p
		}
	}

	return strings.Join(parts, "\n")
}

// joinFields renders one item per line, each followed by a comma.
func joinFields(items []string, depth int) string {
	var sb strings.Builder

	prefix := strings.Repeat(indent, depth)
	for _, it := range items {
		sb.WriteString(prefix)
		sb.WriteString(it)
		sb.WriteString(",\n")
	}

	return sb.String()
}
