package superhtml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hasDiagKind(a *Ast, kind DiagnosticKind) bool {
	for _, e := range a.Errors {
		if !e.IsSyntaxError && e.Kind == kind {
			return true
		}
	}
	return false
}

func TestValidateDuplicateMain(t *testing.T) {
	a := Parse([]byte(`<body><main>a</main><main>b</main></body>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagDuplicateChild), "expected DiagDuplicateChild for a second main element")
}

func TestValidateMainInsideSectioningRejected(t *testing.T) {
	a := Parse([]byte(`<article><main>a</main></article>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagWrongPosition), "expected DiagWrongPosition for main nested inside article")
}

func TestValidateSelectAcceptsOption(t *testing.T) {
	a := Parse([]byte(`<select><option>a</option></select>`), LangHTML)
	require.False(t, hasDiagKind(a, DiagInvalidNesting), "option is an explicit extra child of select and must not be rejected")
}

func TestValidateInvalidNestingRejected(t *testing.T) {
	// <table> only accepts table-related content; its custom validator
	// allows caption, colgroup, thead, tbody, tfoot and tr, not <p>.
	a := Parse([]byte(`<table><p>not allowed</p></table>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagInvalidNesting), "expected DiagInvalidNesting for a <p> directly inside <table>")
}

func TestValidateNestedAnchorForbiddenDescendant(t *testing.T) {
	a := Parse([]byte(`<a href="/"><span><a href="/x">nested</a></span></a>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagInvalidNesting), "expected DiagInvalidNesting for an <a> nested inside another <a>")
}

func TestValidateDeprecatedElementFlagged(t *testing.T) {
	a := Parse([]byte(`<center>old</center>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagDeprecatedAndUnsupported), "expected DiagDeprecatedAndUnsupported for a deprecated element")
}

func TestValidateSkipsForeignContentSubtree(t *testing.T) {
	// <table><p>...</p></table> would normally trip DiagInvalidNesting (see
	// TestValidateInvalidNestingRejected), but inside an <svg> subtree every
	// descendant resolves opaque and never reaches content validation.
	a := Parse([]byte(`<svg><table><p>not allowed</p></table></svg>`), LangHTML)
	require.False(t, hasDiagKind(a, DiagInvalidNesting), "content inside a foreign-content subtree must not be structurally validated")
}

func TestValidateImgMissingAltReported(t *testing.T) {
	a := Parse([]byte(`<img src="x.png">`), LangHTML)
	require.True(t, hasDiagKind(a, DiagMissingRequiredAttr), "expected DiagMissingRequiredAttr for an img with no alt")
}

func TestValidateImgWithAltAccepted(t *testing.T) {
	a := Parse([]byte(`<img src="x.png" alt="">`), LangHTML)
	require.False(t, hasDiagKind(a, DiagMissingRequiredAttr), "alt=\"\" still satisfies the required-attribute pass")
}

func TestValidateAreaWithHrefMissingAltReported(t *testing.T) {
	a := Parse([]byte(`<map name="m"><area href="/x" shape="default"></map>`), LangHTML)
	require.True(t, hasDiagKind(a, DiagMissingRequiredAttr), "expected DiagMissingRequiredAttr for a hyperlink area with no alt")
}

func TestValidateAreaWithoutHrefDoesNotRequireAlt(t *testing.T) {
	a := Parse([]byte(`<map name="m"><area shape="default"></map>`), LangHTML)
	require.False(t, hasDiagKind(a, DiagMissingRequiredAttr), "an area with no href isn't a hyperlink and doesn't require alt")
}

func TestValidateSkippedWhenSyntaxErrorsPresent(t *testing.T) {
	// A tokenizer-level syntax error disables the strict content pass
	// entirely, even for content that would otherwise be rejected.
	a := Parse([]byte(`<table><p>bad nesting</p></table><!bogus>`), LangHTML)
	require.True(t, a.HasSyntaxErrors, "expected this input to record a syntax error")
	require.False(t, hasDiagKind(a, DiagInvalidNesting), "content validation must not run once HasSyntaxErrors is set")
}
