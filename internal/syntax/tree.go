// Package syntax groups a flat token list into delimited token trees.
//
// A Stream is a sequence of Trees; a Tree is either a single token or a
// Group delimited by (), [] or {}. Everything above the lexer (declaration
// reading, attribute parsing, rendering of copied type text) works on streams.
package syntax

import (
	"strings"

	"derive-generator/internal/source"
	"derive-generator/internal/token"
)

// Tree is a leaf token or a delimited group.
type Tree struct {
	Token token.Token // leaf token, or the opening delimiter of Group
	Group *Group
}

// Group is a delimited sub-stream.
type Group struct {
	Delim  token.Kind // LParen, LBracket or LBrace
	Open   token.Token
	Close  token.Token
	Stream Stream
}

// Stream is an ordered sequence of token trees.
type Stream []Tree

// IsGroup reports whether the tree is a group opened by delim.
func (t Tree) IsGroup(delim token.Kind) bool {
	return t.Group != nil && t.Group.Delim == delim
}

// IsPunct reports whether the tree is the punctuation character ch.
func (t Tree) IsPunct(ch byte) bool {
	return t.Group == nil && t.Token.IsPunct(ch)
}

// IsIdent reports whether the tree is the identifier name.
func (t Tree) IsIdent(name string) bool {
	return t.Group == nil && t.Token.IsIdent(name)
}

// Kind returns the leaf token kind, or the group delimiter.
func (t Tree) Kind() token.Kind {
	if t.Group != nil {
		return t.Group.Delim
	}

	return t.Token.Kind
}

// Span returns the source range of the whole tree.
func (t Tree) Span() source.Span {
	if t.Group != nil {
		return t.Group.Open.Span.Cover(t.Group.Close.Span)
	}

	return t.Token.Span
}

// Span returns the range covered by the stream, or an empty span.
func (s Stream) Span() source.Span {
	if len(s) == 0 {
		return source.Span{}
	}

	return s[0].Span().Cover(s[len(s)-1].Span())
}

// String renders the stream as source text. Tokens that were separated by
// whitespace or comments get exactly one space; glued tokens stay glued.
func (s Stream) String() string {
	var sb strings.Builder
	s.write(&sb, false)

	return sb.String()
}

func (s Stream) write(sb *strings.Builder, spaceFirst bool) {
	for i, t := range s {
		if t.Token.Spaced && (i > 0 || spaceFirst) {
			sb.WriteByte(' ')
		}

		if t.Group == nil {
			sb.WriteString(t.Token.Text)
			continue
		}

		sb.WriteString(t.Group.Open.Text)
		t.Group.Stream.write(sb, true)

		if t.Group.Close.Spaced {
			sb.WriteByte(' ')
		}

		sb.WriteString(t.Group.Close.Text)
	}
}

// String renders a single tree.
func (t Tree) String() string {
	return Stream{t}.String()
}
