package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	sh "github.com/kristoff-it/superhtml-core"
)

func formatSrc(t *testing.T, src string) string {
	t.Helper()
	a := sh.Parse([]byte(src), sh.LangHTML)
	require.Falsef(t, a.HasSyntaxErrors, "unexpected syntax errors parsing %q: %v", src, a.Errors)
	return string(Format(a, Options{}))
}

func TestFormatHorizontalAttrs(t *testing.T) {
	got := formatSrc(t, `<div id="a" class="b">hello</div>`)
	require.Equal(t, "<div id=\"a\" class=\"b\">hello</div>\n", got)
}

func TestFormatVerticalAttrs(t *testing.T) {
	got := formatSrc(t, "<div\n  id=\"a\"\n  class=\"b\"\n>hello</div>")
	require.Equal(t, "<div\n    id=\"a\"\n    class=\"b\"\n>hello</div>\n", got)
}

func TestFormatPreVerbatim(t *testing.T) {
	src := "<pre>  line1\n   line2  </pre>"
	got := formatSrc(t, src)
	require.Equal(t, "<pre>  line1\n   line2  </pre>\n", got)
}

func TestFormatDoctypeNormalized(t *testing.T) {
	got := formatSrc(t, "<!doctype   HTML >")
	require.Equal(t, "<!DOCTYPE html>\n", got)
}

func TestFormatHorizontalWhenNoWhitespaceBeforeFirstChild(t *testing.T) {
	got := formatSrc(t, "<div><p>x</p></div>")
	require.Equal(t, "<div><p>x</p></div>\n", got)
}

func TestFormatVerticalWhenWhitespaceBeforeFirstChild(t *testing.T) {
	got := formatSrc(t, "<div>\n<p>x</p></div>")
	require.Equal(t, "<div>\n    <p>x</p>\n</div>\n", got)
}

func TestFormatBlankLineCollapsedBetweenBlockSiblings(t *testing.T) {
	got := formatSrc(t, "<div>\n<p>a</p>\n\n\n<p>b</p></div>")
	require.Equal(t, "<div>\n    <p>a</p>\n\n    <p>b</p>\n</div>\n", got)
}

func TestFormatScriptReindented(t *testing.T) {
	src := "<script>\nfunction f() {\nconsole.log('a');\n}\n</script>"
	got := formatSrc(t, src)
	require.Equal(t, "<script>\n    function f() {\n        console.log('a');\n    }\n</script>\n", got)
}
