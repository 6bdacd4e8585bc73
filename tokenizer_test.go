package superhtml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectTokens(src string) []Token {
	tz := NewTokenizer([]byte(src))
	var out []Token
	for {
		tok := tz.Next()
		out = append(out, tok)
		if tok.Kind == TokenEOF {
			return out
		}
	}
}

func TestTokenizerSimpleStartTag(t *testing.T) {
	toks := collectTokens("<div>")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (tag, eof); got %+v", len(toks), toks)
	}
	if toks[0].Kind != TokenTag || toks[0].TagKindVal != TagStart {
		t.Errorf("token0 = %+v, want a TagStart tag", toks[0])
	}
	if got := toks[0].Name.String([]byte("<div>")); got != "div" {
		t.Errorf("tag name = %q, want %q", got, "div")
	}
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	toks := collectTokens("<br/>")
	if toks[0].Kind != TokenTag || toks[0].TagKindVal != TagStartSelfClosing {
		t.Errorf("token0 = %+v, want a TagStartSelfClosing tag", toks[0])
	}
}

func TestTokenizerEndTag(t *testing.T) {
	toks := collectTokens("</div>")
	if toks[0].Kind != TokenTag || toks[0].TagKindVal != TagEnd {
		t.Errorf("token0 = %+v, want a TagEnd tag", toks[0])
	}
}

func TestTokenizerTextBeforeTag(t *testing.T) {
	src := "hello<div>"
	toks := collectTokens(src)
	if toks[0].Kind != TokenText {
		t.Fatalf("token0 = %+v, want TokenText", toks[0])
	}
	if got := toks[0].Span.String([]byte(src)); got != "hello" {
		t.Errorf("text span = %q, want %q", got, "hello")
	}
	if toks[1].Kind != TokenTag {
		t.Errorf("token1 = %+v, want TokenTag", toks[1])
	}
}

func TestTokenizerWhitespaceOnlyRunIsSuppressed(t *testing.T) {
	src := "<div>\n\n<p>"
	toks := collectTokens(src)
	// tag, tag, eof — the whitespace-only run between them is never tokenized.
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3; got %+v", len(toks), toks)
	}
	if toks[0].Kind != TokenTag || toks[1].Kind != TokenTag {
		t.Fatalf("toks[0:2] = %+v, want two TokenTag", toks[0:2])
	}
}

func TestTokenizerMixedWhitespaceAndTextIsKept(t *testing.T) {
	src := "<p>  hi  </p>"
	toks := collectTokens(src)
	if toks[1].Kind != TokenText {
		t.Fatalf("token1 = %+v, want TokenText", toks[1])
	}
	if got := toks[1].Span.String([]byte(src)); got != "  hi  " {
		t.Errorf("text span = %q, want %q", got, "  hi  ")
	}
}

func TestTokenizerDoctype(t *testing.T) {
	toks := collectTokens("<!doctype html>")
	if toks[0].Kind != TokenDoctype {
		t.Fatalf("token0 = %+v, want TokenDoctype", toks[0])
	}
	if !toks[0].HasDoctypeName {
		t.Error("expected HasDoctypeName to be true")
	}
}

func TestTokenizerComment(t *testing.T) {
	src := "<!-- hi -->"
	toks := collectTokens(src)
	if toks[0].Kind != TokenComment {
		t.Fatalf("token0 = %+v, want TokenComment", toks[0])
	}
}

func TestTokenizerIncorrectlyOpenedComment(t *testing.T) {
	toks := collectTokens("<!bogus>")
	var found bool
	for _, tok := range toks {
		if tok.Kind == TokenParseError && tok.ErrorKind == IncorrectlyOpenedComment {
			found = true
		}
	}
	if !found {
		t.Error("expected an incorrectly-opened-comment parse error")
	}
}

func TestTokenizerEOFBeforeTagName(t *testing.T) {
	toks := collectTokens("<")
	var found bool
	for _, tok := range toks {
		if tok.Kind == TokenParseError && tok.ErrorKind == EOFBeforeTagName {
			found = true
		}
	}
	if !found {
		t.Error("expected an eof-before-tag-name parse error")
	}
}

func TestTokenizerMissingAttributeValue(t *testing.T) {
	toks := collectTokens("<div a=>")
	var found bool
	for _, tok := range toks {
		if tok.Kind == TokenParseError && tok.ErrorKind == MissingAttributeValue {
			found = true
		}
	}
	if !found {
		t.Error("expected a missing-attribute-value parse error")
	}
}

func TestTokenizerAttrModeEmitsEachAttribute(t *testing.T) {
	src := `<div id="a" class="b">`
	tz := NewTokenizerAt([]byte(src), 0)
	tz.ReturnAttrs = true
	var names []string
	for {
		tok := tz.Next()
		switch tok.Kind {
		case TokenAttr:
			names = append(names, tok.AttrName.String([]byte(src)))
		case TokenTag, TokenEOF:
			goto done
		}
	}
done:
	if diff := cmp.Diff([]string{"id", "class"}, names); diff != "" {
		t.Errorf("attribute names mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerEOFInAttributeValue(t *testing.T) {
	toks := collectTokens(`<div id="unterminated`)
	var found bool
	for _, tok := range toks {
		if tok.Kind == TokenParseError && tok.ErrorKind == EOFInAttributeValue {
			found = true
		}
	}
	if !found {
		t.Error("expected an eof-in-attribute-value parse error")
	}
	if toks[len(toks)-1].Kind != TokenEOF {
		t.Error("expected the tokenizer to still terminate at EOF")
	}
}
