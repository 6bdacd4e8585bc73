package superhtml

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func findChild(a *Ast, parent uint32, kind ElementKind) uint32 {
	for c := a.Nodes[parent].FirstChild; c != 0; c = a.Nodes[c].NextSib {
		if a.Nodes[c].Kind == kind {
			return c
		}
	}
	return 0
}

func hasErrKind(a *Ast, kind DiagnosticKind, nodeIdx uint32) bool {
	for _, e := range a.Errors {
		if e.Kind == kind && e.NodeIdx == nodeIdx {
			return true
		}
	}
	return false
}

func TestParseBasicTree(t *testing.T) {
	a := Parse([]byte(`<div><p>hello</p></div>`), LangHTML)

	div := findChild(a, 0, KindDiv)
	require.NotZero(t, div, "expected a div child of root")
	p := findChild(a, div, KindP)
	require.NotZero(t, p, "expected a p child of div")
	text := findChild(a, p, KindText)
	require.NotZero(t, text, "expected a text child of p")
	require.Equal(t, "hello", a.Nodes[text].Open.String(a.Src))
	require.False(t, a.Nodes[div].Close.IsZero())
	require.False(t, a.Nodes[p].Close.IsZero())
}

func TestParseVoidElementNeedsNoClose(t *testing.T) {
	a := Parse([]byte(`<div><img src="a.png"></div>`), LangHTML)
	div := findChild(a, 0, KindDiv)
	img := findChild(a, div, KindImg)
	require.NotZero(t, img, "expected img child")
	require.True(t, a.Nodes[img].Close.IsZero(), "void element should never record a close span")
	require.False(t, hasErrKind(a, DiagMissingEndTag, img), "void element must not be reported as a missing end tag")
}

func TestParseSelfClosingVoidToleratesTrailingSlash(t *testing.T) {
	a := Parse([]byte(`<br/>`), LangHTML)
	br := findChild(a, 0, KindBr)
	require.NotZero(t, br, "expected br node")
	for _, e := range a.Errors {
		require.Falsef(t, !e.IsSyntaxError && e.Kind == DiagHTMLElementsCantSelfClose,
			"a void element's trailing slash is not an error")
	}
}

func TestParseHTMLElementCannotSelfClose(t *testing.T) {
	a := Parse([]byte(`<div/>x`), LangHTML)
	div := findChild(a, 0, KindDiv)
	require.NotZero(t, div, "expected div node")
	require.True(t, hasErrKind(a, DiagHTMLElementsCantSelfClose, div),
		"expected DiagHTMLElementsCantSelfClose for a non-void element")
}

func TestParseMissingEndTagAtEOF(t *testing.T) {
	a := Parse([]byte(`<div><span>unterminated`), LangHTML)
	div := findChild(a, 0, KindDiv)
	span := findChild(a, div, KindSpan)
	require.NotZero(t, span, "expected span node")
	require.True(t, hasErrKind(a, DiagMissingEndTag, span), "expected DiagMissingEndTag for the unclosed span")
}

func TestParseInnermostEndTagMatch(t *testing.T) {
	// </div> should close div by matching the innermost open element with
	// that name, flagging the still-open span as a missing end tag.
	a := Parse([]byte(`<div><span>text</div>`), LangHTML)
	div := findChild(a, 0, KindDiv)
	span := findChild(a, div, KindSpan)
	require.False(t, a.Nodes[div].Close.IsZero(), "div should have been closed by the </div>")
	require.True(t, a.Nodes[span].Close.IsZero(), "span was never explicitly closed")
	require.True(t, hasErrKind(a, DiagMissingEndTag, span), "expected DiagMissingEndTag for the dangling span")
}

func TestParseErroneousEndTag(t *testing.T) {
	a := Parse([]byte(`<div>hi</span></div>`), LangHTML)
	var found bool
	for _, e := range a.Errors {
		if e.Kind == DiagErroneousEndTag {
			found = true
		}
	}
	require.True(t, found, "expected DiagErroneousEndTag for an end tag with no matching open element")
}

func TestParseVoidEndTagIsFlaggedDifferently(t *testing.T) {
	a := Parse([]byte(`<div></br></div>`), LangHTML)
	var found bool
	for _, e := range a.Errors {
		if e.Kind == DiagVoidEndTag {
			found = true
		}
	}
	require.True(t, found, "expected DiagVoidEndTag for </br> with no matching open element")
}

func TestParseDuplicateAttributeName(t *testing.T) {
	a := Parse([]byte(`<div id="a" id="b"></div>`), LangHTML)
	var found bool
	for _, e := range a.Errors {
		if e.Kind == DiagDuplicateAttributeName {
			found = true
		}
	}
	require.True(t, found, "expected DiagDuplicateAttributeName for the repeated id attribute")
}

func TestParseUnknownElementResolvesToOpaque(t *testing.T) {
	a := Parse([]byte(`<my-widget>hi</my-widget>`), LangHTML)
	widget := findChild(a, 0, KindOpaque)
	require.NotZero(t, widget, "expected the custom element to resolve to KindOpaque")
}

func TestParseWithLoggerRecordsOpaqueResolution(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Parse([]byte(`<my-widget>hi</my-widget>`), LangHTML, WithLogger(logger))
	require.Contains(t, buf.String(), "my-widget")
}

func TestParseWithoutLoggerDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		Parse([]byte(`<my-widget>hi</my-widget>`), LangHTML)
	})
}

func TestParseSvgDescendantsResolveOpaque(t *testing.T) {
	a := Parse([]byte(`<svg><a href="#"><button>x</button></a></svg>`), LangHTML)
	svg := findChild(a, 0, KindSvg)
	require.NotZero(t, svg, "expected svg node")
	anchor := a.Nodes[svg].FirstChild
	require.NotZero(t, anchor, "expected a child of svg")
	require.Equal(t, KindOpaque, a.Nodes[anchor].Kind, "svg descendants must resolve opaque even when their name matches a real element")
	button := a.Nodes[anchor].FirstChild
	require.NotZero(t, button, "expected a nested child")
	require.Equal(t, KindOpaque, a.Nodes[button].Kind, "nested svg descendants stay opaque regardless of depth")
}

func TestParseSvgSelfClosesBackToHTMLContent(t *testing.T) {
	a := Parse([]byte(`<div><svg><rect/></svg><button>ok</button></div>`), LangHTML)
	div := findChild(a, 0, KindDiv)
	svg := findChild(a, div, KindSvg)
	require.NotZero(t, svg, "expected svg node")
	rect := a.Nodes[svg].FirstChild
	require.NotZero(t, rect, "expected a child of svg")
	require.Equal(t, KindOpaque, a.Nodes[rect].Kind, "svg children resolve opaque")
	button := findChild(a, div, KindButton)
	require.NotZero(t, button, "expected a real button node once back outside the svg subtree")
}

func TestParseWhitespaceOnlyRunsAreSuppressed(t *testing.T) {
	a := Parse([]byte("<div>\n\n</div>"), LangHTML)
	div := findChild(a, 0, KindDiv)
	text := findChild(a, div, KindText)
	require.Zero(t, text, "a purely whitespace-only run between tags must not produce a text node")
}
