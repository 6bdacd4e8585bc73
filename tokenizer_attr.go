package superhtml

// Attribute sub-states (WHATWG §12.2.5.32-40). Driven incrementally by
// stepAttribute, called in a loop by the coalesced path and one step at a
// time (returning between steps once a full attr is ready) by the
// ReturnAttrs path — same code serves both, per tokenizer_tag.go's doc
// comment.
//
// stepAttribute returns (tok, true) when it has a token ready to hand back
// to the caller, and (_, false) to keep looping internally. Parse errors
// always stop the loop and are surfaced regardless of ReturnAttrs; `attr`
// tokens only stop the loop (and only exist at all) when ReturnAttrs is
// set — flushAttr is the single place that decides this.
func (t *Tokenizer) stepAttribute() (Token, bool) {
	switch t.state {
	case stateBeforeAttributeName:
		return t.stepBeforeAttributeName()
	case stateAttributeName:
		return t.stepAttributeName()
	case stateAfterAttributeName:
		return t.stepAfterAttributeName()
	case stateBeforeAttributeValue:
		return t.stepBeforeAttributeValue()
	case stateAttributeValueDouble:
		return t.stepAttributeValueQuoted('"', QuoteDouble)
	case stateAttributeValueSingle:
		return t.stepAttributeValueQuoted('\'', QuoteSingle)
	case stateAttributeValueUnquoted:
		return t.stepAttributeValueUnquoted()
	case stateAfterAttributeValue:
		return t.stepAfterAttributeValue()
	}
	return Token{}, false
}

// flushAttr finalizes the attribute currently being scanned (name already
// set in t.attrName, t.attrHasName true) with the given value and clears
// the pending-attribute state. It reports hasAttr=true only in
// ReturnAttrs mode, since that's the only mode in which `attr` is a real
// token the caller should see.
func (t *Tokenizer) flushAttr(val AttrValue) (tok Token, hasAttr bool) {
	if !t.attrHasName {
		return Token{}, false
	}
	t.attrHasName = false
	if !t.ReturnAttrs {
		return Token{}, false
	}
	return Token{Kind: TokenAttr, AttrName: t.attrName, AttrValue: val, Span: Span{Start: t.attrName.Start, End: t.pos}}, true
}

func (t *Tokenizer) stepBeforeAttributeName() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			return t.errTok(EOFInTag, t.tagStart, t.pos), true
		}
		switch {
		case isWhitespace(b):
			t.advance()
			continue
		case b == '/' || b == '>':
			t.state = stateAfterAttributeName
			return Token{}, false
		case b == '=':
			// unexpected-equals-sign-before-attribute-name: the '=' is
			// folded into the attribute name per WHATWG.
			start := t.pos
			t.attrName = Span{Start: t.pos, End: t.pos}
			t.attrHasName = true
			t.advance()
			t.state = stateAttributeName
			return t.errTok(UnexpectedEqualsSignBeforeAttributeName, start, start+1), true
		default:
			t.attrName = Span{Start: t.pos, End: t.pos}
			t.attrHasName = true
			t.state = stateAttributeName
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepAttributeName() (Token, bool) {
	start := t.attrName.Start
	for {
		b, ok := t.peek()
		if !ok {
			t.attrName.End = t.pos
			t.state = stateEOF
			return t.errTok(EOFInTag, t.tagStart, t.pos), true
		}
		switch {
		case isWhitespace(b):
			t.attrName = Span{Start: start, End: t.pos}
			t.advance()
			t.state = stateAfterAttributeName
			return Token{}, false
		case b == '/' || b == '>':
			t.attrName = Span{Start: start, End: t.pos}
			t.state = stateAfterAttributeName
			return Token{}, false
		case b == '=':
			t.attrName = Span{Start: start, End: t.pos}
			t.advance()
			t.state = stateBeforeAttributeValue
			return Token{}, false
		case b == '"' || b == '\'' || b == '<':
			// unexpected-character-in-attribute-name: consume as part of
			// the (malformed) name and keep scanning.
			t.advance()
			return t.errTok(UnexpectedCharacterInAttributeName, t.pos-1, t.pos), true
		default:
			t.advance()
		}
	}
}

func (t *Tokenizer) stepAfterAttributeName() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			return t.errTok(EOFInTag, t.tagStart, t.pos), true
		}
		switch {
		case isWhitespace(b):
			t.advance()
			continue
		case b == '/':
			t.advance()
			t.state = stateSelfClosingStartTag
			if tok, ok := t.flushAttr(AttrValue{Present: false}); ok {
				return tok, true
			}
			return Token{}, false
		case b == '=':
			t.advance()
			t.state = stateBeforeAttributeValue
			return Token{}, false
		case b == '>':
			t.advance()
			t.state = stateData
			if tok, ok := t.flushAttr(AttrValue{Present: false}); ok {
				t.deferred = ptrTok(t.finishTag(false))
				return tok, true
			}
			return t.finishTag(false), true
		default:
			// The previous attribute (boolean, no '=' seen) ends here and
			// a new one begins.
			prevTok, hadPrev := t.flushAttr(AttrValue{Present: false})
			t.attrName = Span{Start: t.pos, End: t.pos}
			t.attrHasName = true
			t.state = stateAttributeName
			if hadPrev {
				return prevTok, true
			}
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepBeforeAttributeValue() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			return t.errTok(EOFInAttributeValue, t.tagStart, t.pos), true
		}
		switch {
		case isWhitespace(b):
			t.advance()
			continue
		case b == '"':
			t.advance()
			t.valueStart = t.pos
			t.state = stateAttributeValueDouble
			return Token{}, false
		case b == '\'':
			t.advance()
			t.valueStart = t.pos
			t.state = stateAttributeValueSingle
			return Token{}, false
		case b == '>':
			missingAt := t.pos
			t.advance()
			t.state = stateData
			tok, hadAttr := t.flushAttr(AttrValue{Present: false})
			err := t.errTok(MissingAttributeValue, missingAt, missingAt+1)
			if hadAttr {
				t.deferred = ptrTok(err)
				return tok, true
			}
			t.deferred = ptrTok(t.finishTag(false))
			return err, true
		default:
			t.valueStart = t.pos
			t.state = stateAttributeValueUnquoted
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepAttributeValueQuoted(quote byte, q AttrQuote) (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			return t.errTok(EOFInAttributeValue, t.tagStart, t.pos), true
		}
		if b == quote {
			end := t.pos
			t.advance()
			t.state = stateAfterAttributeValue
			tok, ok := t.flushAttr(AttrValue{Span: Span{Start: t.valueStart, End: end}, Quote: q, Present: true})
			if ok {
				return tok, true
			}
			return Token{}, false
		}
		if b == 0 {
			t.advance()
			return t.errTok(UnexpectedNullCharacter, t.pos-1, t.pos), true
		}
		t.advance()
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			end := t.pos
			t.state = stateEOF
			tok, hadAttr := t.flushAttr(AttrValue{Span: Span{Start: t.valueStart, End: end}, Present: true})
			if hadAttr {
				return tok, true
			}
			return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}, true
		}
		switch {
		case isWhitespace(b):
			end := t.pos
			t.advance()
			t.state = stateBeforeAttributeName
			if tok, ok := t.flushAttr(AttrValue{Span: Span{Start: t.valueStart, End: end}, Present: true}); ok {
				return tok, true
			}
			return Token{}, false
		case b == '>':
			end := t.pos
			t.advance()
			t.state = stateData
			tok, hadAttr := t.flushAttr(AttrValue{Span: Span{Start: t.valueStart, End: end}, Present: true})
			if hadAttr {
				t.deferred = ptrTok(t.finishTag(false))
				return tok, true
			}
			return t.finishTag(false), true
		case b == '"', b == '\'', b == '<', b == '=', b == '`':
			t.advance()
			return t.errTok(UnexpectedCharacterInUnquotedAttributeValue, t.pos-1, t.pos), true
		default:
			t.advance()
		}
	}
}

func (t *Tokenizer) stepAfterAttributeValue() (Token, bool) {
	b, ok := t.peek()
	if !ok {
		t.state = stateEOF
		return t.errTok(EOFInTag, t.tagStart, t.pos), true
	}
	switch {
	case isWhitespace(b):
		t.advance()
		t.state = stateBeforeAttributeName
		return Token{}, false
	case b == '/':
		t.advance()
		t.state = stateSelfClosingStartTag
		return Token{}, false
	case b == '>':
		t.advance()
		t.state = stateData
		return t.finishTag(false), true
	default:
		// missing-whitespace-between-attributes
		t.state = stateBeforeAttributeName
		return t.errTok(MissingWhitespaceBetweenAttributes, t.pos, t.pos+1), true
	}
}
