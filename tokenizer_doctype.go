package superhtml

// Doctype states (WHATWG §12.2.5.53-58). The tokenizer only captures the
// name span and the unparsed "extra" content between the name and '>' —
// PUBLIC/SYSTEM identifier structure is left to the AST builder's doctype
// parsing (doctype.go).
func (t *Tokenizer) nextDoctype() Token {
	for {
		switch t.state {
		case stateDoctype:
			if tok, done := t.stepDoctype(); done {
				return tok
			}
		case stateBeforeDoctypeName:
			if tok, done := t.stepBeforeDoctypeName(); done {
				return tok
			}
		case stateDoctypeName:
			if tok, done := t.stepDoctypeName(); done {
				return tok
			}
		case stateAfterDoctypeName:
			if tok, done := t.stepAfterDoctypeName(); done {
				return tok
			}
		default:
			t.state = stateData
			return t.Next()
		}
	}
}

func (t *Tokenizer) stepDoctype() (Token, bool) {
	t.state = stateBeforeDoctypeName
	return Token{}, false
}

func (t *Tokenizer) stepBeforeDoctypeName() (Token, bool) {
	b, ok := t.peek()
	if !ok {
		t.state = stateEOF
		return t.eofInDoctype(false), true
	}
	if isWhitespace(b) {
		t.advance()
		return Token{}, false
	}
	if !isWhitespace(b) && t.pos == t.doctypeStart+9 {
		// "<!DOCTYPE" immediately followed by the name with no space.
	}
	if b == '>' {
		t.advance()
		t.state = stateData
		err := t.errTok(MissingWhitespaceBeforeDoctypeName, t.pos-1, t.pos)
		t.deferred = ptrTok(t.finishDoctype(false))
		return err, true
	}
	t.doctypeNameStart = t.pos
	t.state = stateDoctypeName
	return Token{}, false
}

func (t *Tokenizer) stepDoctypeName() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.doctypeNameEnd = t.pos
			t.state = stateEOF
			return t.eofInDoctype(true), true
		}
		if isWhitespace(b) {
			t.doctypeNameEnd = t.pos
			t.advance()
			t.state = stateAfterDoctypeName
			return Token{}, false
		}
		if b == '>' {
			t.doctypeNameEnd = t.pos
			t.advance()
			t.state = stateData
			return t.finishDoctype(true), true
		}
		t.advance()
	}
}

func (t *Tokenizer) stepAfterDoctypeName() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			return t.eofInDoctype(true), true
		}
		if isWhitespace(b) {
			t.advance()
			continue
		}
		if b == '>' {
			t.advance()
			t.state = stateData
			return t.finishDoctype(true), true
		}
		// Unparsed "extra" content (e.g. PUBLIC/SYSTEM identifiers): scan
		// to '>' and hand it back as an opaque span for the AST builder.
		start := t.pos
		for {
			b, ok := t.peek()
			if !ok {
				t.state = stateEOF
				t.doctypeExtra = Span{Start: start, End: t.pos}
				return t.eofInDoctype(true), true
			}
			if b == '>' {
				t.doctypeExtra = Span{Start: start, End: t.pos}
				t.advance()
				t.state = stateData
				return t.finishDoctype(true), true
			}
			t.advance()
		}
	}
}

func (t *Tokenizer) finishDoctype(hasName bool) Token {
	tok := Token{
		Kind:           TokenDoctype,
		Span:           Span{Start: t.doctypeStart, End: t.pos},
		HasDoctypeName: hasName,
		DoctypeExtra:   t.doctypeExtra,
	}
	if hasName {
		tok.DoctypeName = Span{Start: t.doctypeNameStart, End: t.doctypeNameEnd}
	}
	t.doctypeExtra = Span{}
	return tok
}

func (t *Tokenizer) eofInDoctype(hasName bool) Token {
	err := t.errTok(EOFInDoctype, t.doctypeStart, t.pos)
	t.deferred = ptrTok(t.finishDoctype(hasName))
	return err
}
