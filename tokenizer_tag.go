package superhtml

// This file implements the tag-open through after-attribute-value states
// (WHATWG §12.2.5.6 through §12.2.5.43). A single Tokenizer.nextTag drives
// all of them; which tokens it surfaces depends on ReturnAttrs:
//
//   - ReturnAttrs == false: the whole tag (name + all attributes) is
//     consumed in one call and a single coalesced `tag` token is returned —
//     the fast path the AST builder uses.
//   - ReturnAttrs == true: the tokenizer stops after the tag name (`tag_name`
//     token), then once per attribute (`attr` token), then emits the final
//     `tag` token — used when a caller (typically the attribute validator)
//     re-scans an already-identified start tag for its attributes.
//
// Both paths share the same per-attribute scanning code in
// tokenizer_attr.go; the coalesced path just calls it in a loop instead of
// returning between attributes.

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// nextTag is the entry point for every tag-related state. It is called both
// right after '<' has been seen (state == stateTagOpen) and on resumption
// mid-tag when ReturnAttrs has paused between tokens.
func (t *Tokenizer) nextTag() Token {
	for {
		switch t.state {
		case stateTagOpen:
			return t.stateTagOpenStep()
		case stateEndTagOpen:
			return t.stateEndTagOpenStep()
		case stateMarkupDeclarationOpen:
			return t.stateMarkupDeclarationOpenStep()
		case stateTagName:
			if tok, done := t.stateTagNameStep(); done {
				return tok
			}
		case stateBeforeAttributeName, stateAttributeName, stateAfterAttributeName,
			stateBeforeAttributeValue, stateAttributeValueDouble, stateAttributeValueSingle,
			stateAttributeValueUnquoted, stateAfterAttributeValue:
			if tok, done := t.stepAttribute(); done {
				return tok
			}
		case stateSelfClosingStartTag:
			return t.stateSelfClosingStartTagStep()
		default:
			// Unreachable from nextTag's caller switch, but keep the
			// state machine total.
			t.state = stateData
			return t.Next()
		}
	}
}

func (t *Tokenizer) stateTagOpenStep() Token {
	ltPos := t.pos
	t.advance() // consume '<'
	b, ok := t.peek()
	if !ok {
		t.state = stateEOF
		return t.errTok(EOFBeforeTagName, ltPos, t.pos)
	}
	switch {
	case b == '!':
		t.advance()
		t.state = stateMarkupDeclarationOpen
		t.tagStart = ltPos
		return t.nextTag()
	case b == '/':
		t.advance()
		t.tagStart = ltPos
		t.state = stateEndTagOpen
		return t.nextTag()
	case isASCIIAlpha(b):
		t.tagStart = ltPos
		t.tagKind = TagStart
		t.nameStart = t.pos
		t.tagNameSent = false
		t.state = stateTagName
		return t.nextTag()
	default:
		// invalid first character: WHATWG falls back to bogus comment;
		// we additionally flag the named error and continue as a bogus
		// comment / text run depending on caller policy. Treat the rest of
		// the construct as a bogus comment so the cursor makes forward
		// progress deterministically.
		t.tagStart = ltPos
		t.state = stateBogusComment
		t.bogusStart = t.pos
		err := t.errTok(InvalidFirstCharacterOfTagName, ltPos, t.pos+1)
		t.deferred = ptrTok(t.nextComment())
		return err
	}
}

func (t *Tokenizer) stateEndTagOpenStep() Token {
	b, ok := t.peek()
	if !ok {
		t.state = stateEOF
		return t.errTok(EOFBeforeTagName, t.tagStart, t.pos)
	}
	switch {
	case isASCIIAlpha(b):
		t.tagKind = TagEnd
		t.nameStart = t.pos
		t.tagNameSent = false
		t.state = stateTagName
		return t.nextTag()
	case b == '>':
		// missing-end-tag-name: `</>`
		t.advance()
		t.state = stateData
		err := t.errTok(MissingEndTagName, t.tagStart, t.pos)
		return err
	default:
		t.state = stateBogusComment
		t.bogusStart = t.pos
		return t.nextComment()
	}
}

func (t *Tokenizer) stateMarkupDeclarationOpenStep() Token {
	if hasPrefixAt(t.src, t.pos, "--") {
		t.pos += 2
		t.state = stateCommentStart
		t.commentStart = t.tagStart
		return t.nextComment()
	}
	if hasPrefixCIAt(t.src, t.pos, "DOCTYPE") {
		t.pos += 7
		t.state = stateBeforeDoctypeName
		t.doctypeStart = t.tagStart
		return t.nextDoctype()
	}
	// CDATA and anything else not recognized: treat as bogus comment
	// (WHATWG: "incorrectly-opened-comment").
	t.state = stateBogusComment
	t.bogusStart = t.pos
	err := t.errTok(IncorrectlyOpenedComment, t.tagStart, t.pos)
	t.deferred = ptrTok(t.nextComment())
	return err
}

func (t *Tokenizer) stateTagNameStep() (Token, bool) {
	for {
		b, ok := t.peek()
		if !ok {
			t.state = stateEOF
			t.name = Span{Start: t.nameStart, End: t.pos}
			return t.errTok(EOFInTag, t.tagStart, t.pos), true
		}
		switch {
		case isWhitespace(b):
			t.name = Span{Start: t.nameStart, End: t.pos}
			t.advance()
			t.state = stateBeforeAttributeName
			if tok, ok := t.emitTagNameIfNeeded(); ok {
				return tok, true
			}
			return Token{}, false
		case b == '/':
			t.name = Span{Start: t.nameStart, End: t.pos}
			t.advance()
			t.state = stateSelfClosingStartTag
			if tok, ok := t.emitTagNameIfNeeded(); ok {
				return tok, true
			}
			return Token{}, false
		case b == '>':
			t.name = Span{Start: t.nameStart, End: t.pos}
			t.advance()
			t.state = stateData
			if tok, ok := t.emitTagNameIfNeeded(); ok {
				t.deferred = ptrTok(t.finishTag(false))
				return tok, true
			}
			return t.finishTag(false), true
		default:
			t.advance()
		}
	}
}

// emitTagNameIfNeeded hands back the tag_name token once per tag, only in
// ReturnAttrs mode: tag_name and attr tokens are only emitted when the
// tokenizer is in attribute-returning mode.
func (t *Tokenizer) emitTagNameIfNeeded() (Token, bool) {
	if !t.ReturnAttrs || t.tagNameSent {
		return Token{}, false
	}
	t.tagNameSent = true
	return Token{Kind: TokenTagName, Span: Span{Start: t.tagStart, End: t.pos}, Name: t.name, TagKindVal: t.tagKind}, true
}

func (t *Tokenizer) stateSelfClosingStartTagStep() Token {
	b, ok := t.peek()
	if !ok {
		t.state = stateEOF
		return t.errTok(EOFInTag, t.tagStart, t.pos)
	}
	if b == '>' {
		t.advance()
		t.state = stateData
		return t.finishTag(true)
	}
	// unexpected-solidus-in-tag: the '/' wasn't immediately followed by
	// '>'; WHATWG reconsumes in before-attribute-name.
	errSpan := Span{Start: t.pos - 1, End: t.pos}
	t.state = stateBeforeAttributeName
	err := t.errTok(UnexpectedSolidusInTag, errSpan.Start, errSpan.End)
	t.deferred = ptrTok(t.nextTag())
	return err
}

// finishTag builds the final tag/tag_name token once the tag's '>' (or
// self-closing '/>') has been consumed. selfClosingSlash is whether a
// trailing '/' preceded '>'.
func (t *Tokenizer) finishTag(selfClosingSlash bool) Token {
	kind := t.tagKind
	if selfClosingSlash {
		if kind == TagStart {
			kind = TagStartSelfClosing
		} else {
			kind = TagEndSelfClosing
		}
	}
	tok := Token{
		Kind:       TokenTag,
		Span:       Span{Start: t.tagStart, End: t.pos},
		Name:       t.name,
		TagKindVal: kind,
	}
	return tok
}

func ptrTok(t Token) *Token { return &t }

func hasPrefixAt(src []byte, pos uint32, prefix string) bool {
	if uint32(len(src))-pos < uint32(len(prefix)) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if src[pos+uint32(i)] != prefix[i] {
			return false
		}
	}
	return true
}

func hasPrefixCIAt(src []byte, pos uint32, prefix string) bool {
	if uint32(len(src))-pos < uint32(len(prefix)) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toASCIILower(src[pos+uint32(i)]) != toASCIILower(prefix[i]) {
			return false
		}
	}
	return true
}
