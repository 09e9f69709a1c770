package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derive-generator/internal/diagnostic"
	"derive-generator/internal/lexer"
	"derive-generator/internal/source"
	"derive-generator/internal/token"
)

type tok struct {
	kind token.Kind
	text string
}

func lex(t *testing.T, src string) []tok {
	t.Helper()

	toks, err := lexer.Tokenize(source.NewFileString("test.rs", src))
	require.NoError(t, err)

	out := make([]tok, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tok{kind: tk.Kind, text: tk.Text})
	}

	return out
}

func TestTokenize_StructDeclaration(t *testing.T) {
	got := lex(t, "pub struct Point<'a> { x: &'a str }")

	assert.Equal(t, []tok{
		{token.Ident, "pub"},
		{token.Ident, "struct"},
		{token.Ident, "Point"},
		{token.Punct, "<"},
		{token.Lifetime, "'a"},
		{token.Punct, ">"},
		{token.LBrace, "{"},
		{token.Ident, "x"},
		{token.Punct, ":"},
		{token.Punct, "&"},
		{token.Lifetime, "'a"},
		{token.Ident, "str"},
		{token.RBrace, "}"},
		{token.EOF, ""},
	}, got)
}

func TestTokenize_Literals(t *testing.T) {
	got := lex(t, `"a \" b" r#"raw "quoted""# b"bytes" 'c' '\n' b'x' 12_u32 1.5 r#type`)

	assert.Equal(t, []tok{
		{token.StringLit, `"a \" b"`},
		{token.StringLit, `r#"raw "quoted""#`},
		{token.ByteStringLit, `b"bytes"`},
		{token.CharLit, `'c'`},
		{token.CharLit, `'\n'`},
		{token.ByteLit, `b'x'`},
		{token.NumberLit, "12_u32"},
		{token.NumberLit, "1.5"},
		{token.Ident, "r#type"},
		{token.EOF, ""},
	}, got)
}

func TestTokenize_CommentsSetSpaced(t *testing.T) {
	toks, err := lexer.Tokenize(source.NewFileString("", "a/* outer /* nested */ */b // tail\nc"))
	require.NoError(t, err)
	require.Len(t, toks, 4)

	assert.False(t, toks[0].Spaced)
	assert.True(t, toks[1].Spaced)
	assert.Equal(t, "b", toks[1].Text)
	assert.True(t, toks[2].Spaced)
	assert.Equal(t, "c", toks[2].Text)
}

func TestTokenize_DocCommentsBecomeAttributes(t *testing.T) {
	got := lex(t, "/// Doc \"q\"\n//! crate\n/** block */ a //// plain\n/**/ b")

	assert.Equal(t, []tok{
		{token.Punct, "#"},
		{token.LBracket, "["},
		{token.Ident, "doc"},
		{token.Punct, "="},
		{token.StringLit, `" Doc \"q\""`},
		{token.RBracket, "]"},
		{token.Punct, "#"},
		{token.Punct, "!"},
		{token.LBracket, "["},
		{token.Ident, "doc"},
		{token.Punct, "="},
		{token.StringLit, `" crate"`},
		{token.RBracket, "]"},
		{token.Punct, "#"},
		{token.LBracket, "["},
		{token.Ident, "doc"},
		{token.Punct, "="},
		{token.StringLit, `" block "`},
		{token.RBracket, "]"},
		{token.Ident, "a"},
		{token.Ident, "b"},
		{token.EOF, ""},
	}, got)
}

func TestTokenize_DocCommentUnterminated(t *testing.T) {
	_, err := lexer.Tokenize(source.NewFileString("", "/** open"))
	assert.ErrorIs(t, err, diagnostic.ErrSyntax)
}

func TestTokenize_JointPunct(t *testing.T) {
	toks, err := lexer.Tokenize(source.NewFileString("", "a::b -> c : :"))
	require.NoError(t, err)

	assert.True(t, toks[1].Joint, "first ':' of '::'")
	assert.False(t, toks[2].Joint)
	assert.True(t, toks[4].Joint, "'-' of '->'")
	assert.False(t, toks[7].Joint, "spaced colons are not joint")
}

func TestTokenize_Errors(t *testing.T) {
	cases := map[string]string{
		"unterminated string": `"abc`,
		"unterminated raw":    `r##"abc"#`,
		"unterminated block":  "/* never closed",
		"unknown character":   "a ` b",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lexer.Tokenize(source.NewFileString("", src))
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.ErrSyntax)
		})
	}
}
