package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derive-generator/internal/source"
)

func TestError_MessageIsVerbatim(t *testing.T) {
	err := Errorf(KindUnknownAttribute, source.Span{}, "Unknown attribute")

	assert.Equal(t, "Unknown attribute", err.Error())
	assert.Equal(t, "unknown_attribute", err.Kind.Code())
}

func TestError_IsMatchesSentinelThroughWrapping(t *testing.T) {
	err := fmt.Errorf("expanding Point: %w", Errorf(KindInvalidFlatten, source.Span{}, "Cannot flatten &str"))

	assert.ErrorIs(t, err, ErrInvalidFlatten)
	assert.NotErrorIs(t, err, ErrUnsupportedItem)

	de, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidFlatten, de.Kind)
}

func TestError_Diagnostic(t *testing.T) {
	file := source.NewFileString("lib.rs", "struct A;\n#[Method(acessors)]\nstruct B;")
	err := Errorf(KindUnknownAttribute, source.Span{Start: 19, End: 27}, "Unknown attribute").
		WithSuggestions("accessors")

	d := err.Diagnostic("B", file)

	assert.Equal(t, DiagnosticError, d.Severity)
	assert.Equal(t, "lib.rs:2:10", d.Location)
	assert.Equal(t, []string{"accessors"}, d.Suggestions)
	assert.Equal(t, "lib.rs:2:10 [B]: [unknown_attribute] Unknown attribute", d.String())
}

func TestDiagnostics_Aggregate(t *testing.T) {
	var diags Diagnostics

	assert.True(t, diags.IsValid())
	require.NoError(t, diags.Error())

	diags.AddWarning("no_derive", "nothing to expand", "", "a.rs")
	diags.AddError("unsupported_item", "Unsupported item", "U", "b.rs:1:1")
	diags.AddInfo("expanded", "2 items", "", "c.rs")

	assert.True(t, diags.HasErrors())
	assert.Len(t, diags.All(), 3)
	assert.Equal(t, DiagnosticError, diags.All()[0].Severity)
	assert.EqualError(t, diags.Error(), "b.rs:1:1 [U]: [unsupported_item] Unsupported item")

	var other Diagnostics
	other.AddError("syntax", "unterminated string literal", "", "")
	diags.Merge(other)

	assert.Len(t, diags.Errors, 2)
	assert.True(t, errors.Is(Errorf(KindSyntax, source.Span{}, "x"), ErrSyntax))
}
