package superhtml

import "fmt"

// DiagnosticKind enumerates every diagnostic surfaced to callers beyond raw
// tokenizer parse errors.
type DiagnosticKind uint8

const (
	DiagUnsupportedDoctype DiagnosticKind = iota
	DiagInvalidAttr
	DiagInvalidAttrNesting
	DiagInvalidAttrValue
	DiagIntOutOfBounds
	DiagMissingAttrValue
	DiagBooleanAttr
	DiagInvalidAttrCombination
	DiagDuplicateClass
	DiagMissingRequiredAttr
	DiagWrongPosition
	DiagMissingAncestor
	DiagMissingChild
	DiagDuplicateChild
	DiagWrongSiblingSequence
	DiagInvalidNesting
	DiagInvalidHTMLTagName
	DiagHTMLElementsCantSelfClose
	DiagMissingEndTag
	DiagErroneousEndTag
	DiagVoidEndTag
	DiagDuplicateAttributeName
	DiagDuplicateSiblingAttr
	DiagDeprecatedAndUnsupported
)

var diagnosticNames = [...]string{
	"unsupported-doctype", "invalid-attr", "invalid-attr-nesting", "invalid-attr-value",
	"int-out-of-bounds", "missing-attr-value", "boolean-attr", "invalid-attr-combination",
	"duplicate-class", "missing-required-attr", "wrong-position", "missing-ancestor",
	"missing-child", "duplicate-child", "wrong-sibling-sequence", "invalid-nesting",
	"invalid-html-tag-name", "html-elements-cant-self-close", "missing-end-tag",
	"erroneous-end-tag", "void-end-tag", "duplicate-attribute-name",
	"duplicate-sibling-attr", "deprecated-and-unsupported",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticNames) {
		return diagnosticNames[k]
	}
	return "unknown-diagnostic"
}

// Diagnostic is the structured error type produced by tokenization, tree
// building, and content validation alike. Syntax errors (class 1) carry
// IsSyntaxError and a SyntaxKind instead of a Kind — in practice the AST
// builder converts every tokenizer parse_error token into a Diagnostic via
// NewSyntaxDiagnostic, and builds every structural/attribute error as a
// Diagnostic literal, so callers only ever deal with one type.
type Diagnostic struct {
	Kind DiagnosticKind

	// MainLocation is the primary span this diagnostic is anchored to.
	MainLocation Span

	// NodeIdx is 0 (root/"pre-structural", e.g. a tokenizer error before
	// any element exists) or refers to an existing Ast.Nodes entry, for IDE
	// navigation.
	NodeIdx uint32

	// Secondary is set for kinds that reference a second location: the
	// original attribute for DiagDuplicateAttributeName, the rejecting
	// ancestor for DiagInvalidNesting, etc.
	Secondary Span

	// Reason is a short human-readable explanation, e.g. "interactive" or
	// "no href". Empty when not applicable.
	Reason string

	// IsSyntaxError marks a tokenizer-level syntax error: these disable
	// strict content validation and the formatter.
	IsSyntaxError bool
	// SyntaxKind is populated when IsSyntaxError is true.
	SyntaxKind ParseErrorKind

	// Bounds, for IntOutOfBounds.
	Min, Max int
}

func (d Diagnostic) Error() string {
	if d.IsSyntaxError {
		return d.SyntaxKind.String()
	}
	msg := d.Kind.String()
	if d.Reason != "" {
		msg += ": " + d.Reason
	}
	if d.Kind == DiagIntOutOfBounds {
		msg += fmt.Sprintf(" (must be between %d and %d)", d.Min, d.Max)
	}
	return msg
}

// NewSyntaxDiagnostic converts a tokenizer parse_error token into a
// Diagnostic.
func NewSyntaxDiagnostic(kind ParseErrorKind, span Span) Diagnostic {
	return Diagnostic{IsSyntaxError: true, SyntaxKind: kind, MainLocation: span}
}
