package superhtml

// TokenKind discriminates the Token tagged union.
type TokenKind uint8

const (
	TokenDoctype TokenKind = iota
	TokenTag
	TokenTagName // attribute-returning mode only
	TokenAttr    // attribute-returning mode only
	TokenText
	TokenComment
	TokenParseError
	TokenEOF
)

// TagKind distinguishes the four tag shapes the tokenizer can emit.
type TagKind uint8

const (
	TagStart TagKind = iota
	TagStartSelfClosing
	TagEnd
	TagEndSelfClosing
)

// AttrQuote records how an attribute value was quoted in the source. The
// value Span excludes the quotes in every style; neither the formatter nor
// the validator reads Quote.
type AttrQuote uint8

const (
	QuoteNone AttrQuote = iota
	QuoteSingle
	QuoteDouble
)

// AttrValue is the payload of an attr token/field.
type AttrValue struct {
	Span  Span
	Quote AttrQuote
	// Present is false when the attribute has no value at all (e.g. the
	// bare `disabled` in `<input disabled>`), as opposed to Span being a
	// zero-length value (e.g. `alt=""`).
	Present bool
}

// Token is a tagged union over every lexical unit the tokenizer emits. Only
// the fields relevant to Kind are populated: a single struct with
// Kind-gated fields (golang.org/x/net/html does the same for html.Token)
// rather than an interface, since the tokenizer must not allocate per
// token.
type Token struct {
	Kind TokenKind

	Span Span // full token span (bracket-to-bracket for tags/doctype/comment)

	// Doctype
	DoctypeName  Span
	DoctypeExtra Span
	HasDoctypeName bool

	// Tag / TagName
	TagKindVal TagKind
	Name       Span

	// Attr
	AttrName  Span
	AttrValue AttrValue

	// ParseError
	ErrorKind ParseErrorKind
}

// ParseErrorKind enumerates the tokenizer's named syntax errors, mirrored
// 1:1 from the WHATWG named parse errors the tool commits to matching.
type ParseErrorKind uint8

const (
	AbruptClosingOfEmptyComment ParseErrorKind = iota
	EOFBeforeTagName
	EOFInAttributeValue
	EOFInComment
	EOFInDoctype
	EOFInTag
	IncorrectlyOpenedComment
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingEndTagName
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedSolidusInTag
)

func (k ParseErrorKind) String() string {
	switch k {
	case AbruptClosingOfEmptyComment:
		return "abrupt-closing-of-empty-comment"
	case EOFBeforeTagName:
		return "eof-before-tag-name"
	case EOFInAttributeValue:
		return "eof-in-attribute-value"
	case EOFInComment:
		return "eof-in-comment"
	case EOFInDoctype:
		return "eof-in-doctype"
	case EOFInTag:
		return "eof-in-tag"
	case IncorrectlyOpenedComment:
		return "incorrectly-opened-comment"
	case InvalidFirstCharacterOfTagName:
		return "invalid-first-character-of-tag-name"
	case MissingAttributeValue:
		return "missing-attribute-value"
	case MissingEndTagName:
		return "missing-end-tag-name"
	case MissingWhitespaceBeforeDoctypeName:
		return "missing-whitespace-before-doctype-name"
	case MissingWhitespaceBetweenAttributes:
		return "missing-whitespace-between-attributes"
	case UnexpectedCharacterInAttributeName:
		return "unexpected-character-in-attribute-name"
	case UnexpectedCharacterInUnquotedAttributeValue:
		return "unexpected-character-in-unquoted-attribute-value"
	case UnexpectedEqualsSignBeforeAttributeName:
		return "unexpected-equals-sign-before-attribute-name"
	case UnexpectedNullCharacter:
		return "unexpected-null-character"
	case UnexpectedSolidusInTag:
		return "unexpected-solidus-in-tag"
	default:
		return "unknown-parse-error"
	}
}
