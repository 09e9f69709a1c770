package syntax

// Split cuts the stream at every top-level sep punctuation. Commas inside
// generic argument lists (Map<K, V>) are not top level; the arrows -> and =>
// never close an angle bracket. After a top-level '=' the segment is an
// expression, where << and <= are operators and never open a bracket. A
// trailing separator yields no empty tail.
func (s Stream) Split(sep byte) []Stream {
	var (
		out   []Stream
		start int
		depth int
		expr  bool
	)

	for i := 0; i < len(s); i++ {
		t := s[i]

		switch {
		case t.IsPunct('<') && expr && s.isOperatorHead(i):
			i++
		case t.IsPunct('<'):
			depth++
		case t.IsPunct('>') && depth > 0 && !s.isArrowTail(i):
			depth--
		case t.IsPunct(sep) && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
			expr = false
		case t.IsPunct('=') && depth == 0 && s.isAssign(i):
			expr = true
		}
	}

	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}

// isOperatorHead reports whether the '<' at i starts << or <=.
func (s Stream) isOperatorHead(i int) bool {
	if !s[i].Token.Joint || i+1 >= len(s) {
		return false
	}

	return s[i+1].IsPunct('<') || s[i+1].IsPunct('=')
}

// isAssign reports whether the '=' at i stands alone, not as part of
// ==, =>, <=, >= or !=.
func (s Stream) isAssign(i int) bool {
	if s[i].Token.Joint && i+1 < len(s) && (s[i+1].IsPunct('=') || s[i+1].IsPunct('>')) {
		return false
	}

	if i > 0 && s[i-1].Token.Joint {
		switch prev := s[i-1]; {
		case prev.IsPunct('='), prev.IsPunct('<'), prev.IsPunct('>'), prev.IsPunct('!'):
			return false
		}
	}

	return true
}

// isArrowTail reports whether the '>' at i is the second half of -> or =>.
func (s Stream) isArrowTail(i int) bool {
	if i == 0 {
		return false
	}

	prev := s[i-1]

	return prev.Token.Joint && (prev.IsPunct('-') || prev.IsPunct('='))
}

// TrimPunct drops one leading ch and returns the rest.
func (s Stream) TrimPunct(ch byte) (Stream, bool) {
	if len(s) > 0 && s[0].IsPunct(ch) {
		return s[1:], true
	}

	return s, false
}

// HasPrefixPunct reports whether the stream starts with the joint
// punctuation sequence seq, e.g. "::" or "->".
func (s Stream) HasPrefixPunct(seq string) bool {
	if len(s) < len(seq) {
		return false
	}

	for i := range len(seq) {
		if !s[i].IsPunct(seq[i]) {
			return false
		}

		if i < len(seq)-1 && !s[i].Token.Joint {
			return false
		}
	}

	return true
}

// SkipAngle returns the index just past the '>' matching the '<' at i.
func (s Stream) SkipAngle(i int) (int, bool) {
	depth := 0

	for ; i < len(s); i++ {
		switch {
		case s[i].IsPunct('<'):
			depth++
		case s[i].IsPunct('>') && !s.isArrowTail(i):
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}

	return 0, false
}
