package plan

import (
	"derive-generator/internal/analyze"
	"derive-generator/internal/attr"
	"derive-generator/internal/common"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
	"derive-generator/internal/token"
)

//go:generate go tool stringer -type=StrategyKind -trimprefix=Strategy -output=strategy_string.go

// StrategyKind describes how a Display implementation renders one struct or
// variant.
type StrategyKind int

const (
	// StrategyDump - no attribute; field-labelled debug-style rendering.
	StrategyDump StrategyKind = iota
	// StrategyMessage - #[Display("x = {x}")], fields interpolated by name.
	StrategyMessage
	// StrategyClosure - #[Display(|| expr)], called with no arguments.
	StrategyClosure
	// StrategyBlock - #[Display({ expr })].
	StrategyBlock
	// StrategyCall - #[Display(f(args))].
	StrategyCall
	// StrategyPath - #[Display(f)], called with every field binding.
	StrategyPath
)

// Strategy is the resolved Display strategy of one struct or variant.
type Strategy struct {
	Kind StrategyKind
	Expr syntax.Stream // the attribute argument as written; empty for StrategyDump
	Span source.Span
}

// IsDump reports whether no strategy attribute applies.
func (s Strategy) IsDump() bool {
	return s.Kind == StrategyDump
}

// readStrategy reads the #[Display(..)] attribute among attrs. Without one the
// fallback applies. A second attribute on the same item is rejected.
func readStrategy(attrs []analyze.Attribute, fallback Strategy) (Strategy, error) {
	found := attr.Find(attrs, DeriveDisplay.Helper())
	if common.IsMultiple(found) {
		return Strategy{}, unsupportedStrategy(found[1].Span)
	}

	a, ok := common.First(found)
	if !ok {
		return fallback, nil
	}

	return ParseStrategy(a)
}

// ParseStrategy classifies the argument of a Display helper attribute. The
// forms are tried in a fixed order: string literal, closure, block, call,
// path.
func ParseStrategy(a analyze.Attribute) (Strategy, error) {
	kind, ok := classifyStrategy(a.Args)
	if !ok || !a.HasArgs() {
		return Strategy{}, unsupportedStrategy(a.Span)
	}

	return Strategy{Kind: kind, Expr: a.Args, Span: a.Span}, nil
}

func unsupportedStrategy(span source.Span) error {
	return diagnostic.Errorf(diagnostic.KindUnsupportedStrategy, span, "Unsupported strategy")
}

func classifyStrategy(s syntax.Stream) (StrategyKind, bool) {
	switch {
	case len(s) == 1 && s[0].Kind() == token.StringLit:
		return StrategyMessage, true
	case isClosure(s):
		return StrategyClosure, true
	case len(s) == 1 && s[0].IsGroup(token.LBrace):
		return StrategyBlock, true
	case isCall(s):
		return StrategyCall, true
	case isExprPath(s):
		return StrategyPath, true
	default:
		return StrategyDump, false
	}
}

var closurePrefixes = map[string]struct{}{"move": {}, "async": {}, "static": {}}

// isClosure matches [move] |args| body, including || body.
func isClosure(s syntax.Stream) bool {
	i := 0
	for i < len(s) && s[i].Group == nil && s[i].Token.Kind == token.Ident {
		if _, ok := closurePrefixes[s[i].Token.Text]; !ok {
			return false
		}

		i++
	}

	if i >= len(s) || !s[i].IsPunct('|') {
		return false
	}

	for j := i + 1; j < len(s); j++ {
		if s[j].IsPunct('|') {
			return j+1 < len(s)
		}
	}

	return false
}

// isCall matches a callee followed by a parenthesised argument list. The
// callee is a path, a parenthesised expression or itself a call.
func isCall(s syntax.Stream) bool {
	if len(s) < 2 || !s[len(s)-1].IsGroup(token.LParen) {
		return false
	}

	callee := s[:len(s)-1]

	return (len(callee) == 1 && callee[0].IsGroup(token.LParen)) || isExprPath(callee) || isCall(callee)
}

// isExprPath matches a path expression: [::]a::b, a::<T>::f or <T as U>::f.
func isExprPath(s syntax.Stream) bool {
	if len(s) == 0 {
		return false
	}

	i := 0

	switch {
	case s.HasPrefixPunct("::"):
		i = 2
	case s[0].IsPunct('<'):
		end, ok := s.SkipAngle(0)
		if !ok || !s[end:].HasPrefixPunct("::") {
			return false
		}

		i = end + 2
	}

	for {
		if i >= len(s) || !isPathSegment(s[i]) {
			return false
		}

		i++

		if i < len(s) && s[i:].HasPrefixPunct("::") && i+2 < len(s) && s[i+2].IsPunct('<') {
			end, ok := s.SkipAngle(i + 2)
			if !ok {
				return false
			}

			i = end
		}

		if i == len(s) {
			return true
		}

		if !s[i:].HasPrefixPunct("::") {
			return false
		}

		i += 2
	}
}

var pathKeywords = map[string]struct{}{"self": {}, "Self": {}, "super": {}, "crate": {}}

func isPathSegment(t syntax.Tree) bool {
	if t.Group != nil || t.Token.Kind != token.Ident {
		return false
	}

	if _, ok := pathKeywords[t.Token.Text]; ok {
		return true
	}

	return !t.Token.IsKeyword()
}
