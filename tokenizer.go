package superhtml

// Tokenizer implements the WHATWG HTML5 tokenization state machine
// (https://html.spec.whatwg.org/multipage/parsing.html#tokenization) closely
// enough that the named parse errors it emits match the standard's own
// names. It holds a cursor, a state variant, a one-token lookahead slot and
// the scratch fields of the tag being scanned; every span it hands back
// points directly into src. Tokens are returned by value, but a transition
// that yields two tokens at once heap-allocates the deferred one, and
// GotoRawText/GotoRcData allocate a lowercased copy of the end-tag name.
//
// States are grouped across this file, tokenizer_tag.go (tag open/name),
// tokenizer_attr.go (attribute sub-states), tokenizer_comment.go,
// tokenizer_doctype.go and tokenizer_text.go (raw text/RCDATA/script-data
// sub-modes), matching the sectioning of the WHATWG spec itself.
type Tokenizer struct {
	src []byte
	pos uint32

	state tokenizerState

	// ReturnAttrs selects coalesced-tag mode (false, the default, used when
	// building the AST) or attr-by-attr mode (true, used by callers that
	// need to inspect attributes — e.g. the validator re-scanning a start
	// tag it was just handed).
	ReturnAttrs bool

	// deferred holds a second token for the handful of transitions that
	// produce two at once: typically a parse_error alongside the token
	// that triggered it.
	deferred *Token

	// rawEndName is the lowercase tag name the tokenizer is scanning for
	// when in raw text/RCDATA/script-data mode (e.g. "script"); empty means
	// state == data.
	rawEndName string
	rawKind    rawTextKind

	// scriptEscaped/scriptDoubleEscaped track the script-data escape
	// sub-states (WHATWG §13.2.5.20-27) at design-level granularity: the
	// tokenizer recognizes the escape boundaries structurally so that a
	// literal "</script>" inside a double-escaped block is not mistaken for
	// the real closing tag, but it does not interpret the escaped content.
	scriptEscaped       bool
	scriptDoubleEscaped bool

	// In-progress tag/comment/doctype scan state. These are scratch fields
	// reused across tokens rather than a fresh allocation per tag, kept on
	// the Tokenizer itself so a ReturnAttrs scan can resume across Next()
	// calls mid-tag.
	tagStart     uint32
	nameStart    uint32
	name         Span
	tagKind      TagKind
	tagNameSent  bool // ReturnAttrs only: whether tag_name was already handed back for this tag
	bogusStart   uint32
	commentStart uint32
	doctypeStart uint32
	doctypeNameStart uint32
	doctypeNameEnd   uint32
	doctypeExtra     Span

	// attribute sub-state, see tokenizer_attr.go.
	attrName    Span
	attrHasName bool
	valueStart  uint32
}

type tokenizerState uint8

const (
	stateData tokenizerState = iota
	stateTagOpen
	stateEndTagOpen
	stateMarkupDeclarationOpen
	stateTagName
	stateSelfClosingStartTag
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDouble
	stateAttributeValueSingle
	stateAttributeValueUnquoted
	stateAfterAttributeValue
	stateBogusComment
	stateCommentStart
	stateComment
	stateCommentEndDash
	stateCommentEnd
	stateDoctype
	stateBeforeDoctypeName
	stateDoctypeName
	stateAfterDoctypeName
	stateText // raw text / RCDATA / script data, see tokenizer_text.go
	stateEOF
)

type rawTextKind uint8

const (
	rawNone rawTextKind = iota
	rawScriptData
	rawRawText // <script> uses rawScriptData; <style>/<textarea>.../<xmp> use rawRawText or rawRcData
	rawRcData
)

// NewTokenizer returns a tokenizer positioned at the start of src. src is
// never copied or mutated; every emitted Span indexes into it directly.
func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, state: stateData}
}

// NewTokenizerAt returns a tokenizer positioned at pos, which must be the
// index of a '<' that opens a tag, so a caller can re-scan an
// already-identified tag for its attributes. Used by both the attribute
// validator and the formatter to recover per-attribute spans the
// coalesced AST-building pass discarded.
func NewTokenizerAt(src []byte, pos uint32) *Tokenizer {
	return &Tokenizer{src: src, pos: pos, state: stateTagOpen}
}

const whitespace = " \t\n\f\r"

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isASCIIUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func toASCIILower(b byte) byte {
	if isASCIIUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}

func (t *Tokenizer) peek() (byte, bool) {
	if t.pos >= uint32(len(t.src)) {
		return 0, false
	}
	return t.src[t.pos], true
}

func (t *Tokenizer) peekAt(off uint32) (byte, bool) {
	p := t.pos + off
	if p >= uint32(len(t.src)) {
		return 0, false
	}
	return t.src[p], true
}

func (t *Tokenizer) advance() {
	t.pos++
}

func (t *Tokenizer) eof() bool {
	return t.pos >= uint32(len(t.src))
}

// errTok builds a parse_error token anchored at [start,end).
func (t *Tokenizer) errTok(kind ParseErrorKind, start, end uint32) Token {
	return Token{Kind: TokenParseError, ErrorKind: kind, Span: Span{Start: start, End: end}}
}

// GotoScriptData switches the tokenizer into script-data mode after the
// caller (the AST builder) has observed a start tag for <script>.
func (t *Tokenizer) GotoScriptData() {
	t.state = stateText
	t.rawEndName = "script"
	t.rawKind = rawScriptData
	t.scriptEscaped = false
	t.scriptDoubleEscaped = false
}

// GotoRawText switches into raw-text mode (style, xmp, iframe, noembed,
// noframes, noscript) for the named element.
func (t *Tokenizer) GotoRawText(name string) {
	t.state = stateText
	t.rawEndName = lowerASCII(name)
	t.rawKind = rawRawText
}

// GotoRcData switches into RCDATA mode (textarea, title).
func (t *Tokenizer) GotoRcData(name string) {
	t.state = stateText
	t.rawEndName = lowerASCII(name)
	t.rawKind = rawRcData
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = toASCIILower(c)
	}
	return string(b)
}

// Next returns the next token. At end of input it returns a TokenEOF token
// on every subsequent call (the terminal "eof" state).
func (t *Tokenizer) Next() Token {
	if t.deferred != nil {
		tok := *t.deferred
		t.deferred = nil
		return tok
	}

	if t.state == stateText {
		return t.nextText()
	}

	switch t.state {
	case stateData:
		return t.nextData()
	case stateTagOpen, stateEndTagOpen, stateMarkupDeclarationOpen, stateTagName,
		stateSelfClosingStartTag, stateBeforeAttributeName, stateAttributeName,
		stateAfterAttributeName, stateBeforeAttributeValue, stateAttributeValueDouble,
		stateAttributeValueSingle, stateAttributeValueUnquoted, stateAfterAttributeValue:
		return t.nextTag()
	case stateBogusComment, stateCommentStart, stateComment, stateCommentEndDash, stateCommentEnd:
		return t.nextComment()
	case stateDoctype, stateBeforeDoctypeName, stateDoctypeName, stateAfterDoctypeName:
		return t.nextDoctype()
	case stateEOF:
		return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}
	}
	t.state = stateEOF
	return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}
}

// nextData implements the "data" state (§12.2.5.1): text up to the next '<',
// or dispatch into tag/markup-declaration parsing. A purely whitespace-only
// run is never emitted as a token at all — callers that need to know
// whether whitespace separated two tags (the formatter's layout and
// blank-line decisions) read the source bytes between the surrounding spans
// directly instead of relying on a token for it.
func (t *Tokenizer) nextData() Token {
	if t.eof() {
		t.state = stateEOF
		return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}
	}

	start := t.pos
	for {
		b, ok := t.peek()
		if !ok || b == '<' {
			break
		}
		t.advance()
	}

	if t.pos == start {
		return t.nextTagOpenDispatch()
	}
	if isAllWhitespace(t.src[start:t.pos]) {
		return t.nextTagOpenDispatch()
	}
	return Token{Kind: TokenText, Span: Span{Start: start, End: t.pos}}
}

func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}

// nextTagOpenDispatch is invoked once nextData has consumed up to (and
// stopped at) a '<', or at EOF. It is also the re-entry point the outer data
// loop uses when the whole run was whitespace.
func (t *Tokenizer) nextTagOpenDispatch() Token {
	if t.eof() {
		t.state = stateEOF
		return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}
	}
	t.state = stateTagOpen
	return t.nextTag()
}
