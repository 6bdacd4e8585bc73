// Package format implements the opinionated HTML pretty-printer. It only
// runs on trees that built without syntax errors; callers are expected to
// check Ast.HasSyntaxErrors before calling Format.
package format

import (
	"bytes"
	"strings"

	sh "github.com/kristoff-it/superhtml-core"
)

const indentUnit = "    "

// Options controls formatting knobs the CLI exposes.
type Options struct {
	// IndentWidth overrides indentUnit's width when positive.
	IndentWidth int
}

// Format renders a into canonical source form.
func Format(a *sh.Ast, opts Options) []byte {
	f := &formatter{a: a, opts: opts}
	if opts.IndentWidth <= 0 {
		f.indent = indentUnit
	} else {
		f.indent = strings.Repeat(" ", opts.IndentWidth)
	}

	var buf bytes.Buffer
	f.buf = &buf
	for _, c := range a.Children(0) {
		f.writeNode(c, 0, false)
	}
	out := buf.Bytes()
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}

type formatter struct {
	a      *sh.Ast
	opts   Options
	indent string
	buf    *bytes.Buffer
}

func (f *formatter) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		f.buf.WriteString(f.indent)
	}
}

// writeNode renders one node. inline suppresses the leading indent and
// trailing newline a block-positioned node would otherwise get, for a node
// that continues on the same line as whatever came before it — used when
// its parent chose horizontal layout (isInlineBody).
func (f *formatter) writeNode(idx uint32, depth int, inline bool) {
	n := &f.a.Nodes[idx]
	switch n.Kind {
	case sh.KindDoctype:
		if !inline {
			f.writeIndent(depth)
		}
		f.buf.WriteString(normalizeDoctype(n.Open.Slice(f.a.Src)))
		if !inline {
			f.buf.WriteString("\n")
		}
	case sh.KindComment:
		if !inline {
			f.writeIndent(depth)
		}
		f.buf.Write(n.Open.Slice(f.a.Src))
		if !inline {
			f.buf.WriteString("\n")
		}
	case sh.KindText:
		text := collapseWhitespace(n.Open.Slice(f.a.Src))
		if text == "" {
			return
		}
		if !inline {
			f.writeIndent(depth)
		}
		f.buf.WriteString(text)
		if !inline {
			f.buf.WriteString("\n")
		}
	case sh.KindOpaque:
		if !inline {
			f.writeIndent(depth)
		}
		f.buf.Write(f.a.Src[n.Open.Start:nodeEnd(f.a, idx)])
		if !inline {
			f.buf.WriteString("\n")
		}
	default:
		f.writeElement(idx, depth, inline)
	}
}

// normalizeDoctype reformats a raw "<!doctype   HTML >" span into canonical
// "<!DOCTYPE html>" form, preserving any PUBLIC/SYSTEM tail verbatim so an
// (already-flagged) legacy doctype still round-trips recognizably.
func normalizeDoctype(raw []byte) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(string(raw), "<!"), ">")
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return "<!DOCTYPE>"
	}
	out := "<!DOCTYPE"
	if len(fields) > 1 {
		out += " " + strings.ToLower(fields[1])
		fields = fields[2:]
	} else {
		fields = nil
	}
	for _, extra := range fields {
		out += " " + extra
	}
	return out + ">"
}

func nodeEnd(a *sh.Ast, idx uint32) uint32 {
	n := &a.Nodes[idx]
	if !n.Close.IsZero() {
		return n.Close.End
	}
	return n.Open.End
}

// writeElement renders one element. inline has the same meaning as in
// writeNode: suppress this element's own leading indent/trailing newline
// because its parent already decided to keep it on the current line. The
// element's *own* children get their own, independent horizontal/vertical
// decision via isInlineBody regardless of inline.
func (f *formatter) writeElement(idx uint32, depth int, inline bool) {
	n := &f.a.Nodes[idx]
	name := strings.ToLower(string(n.NameSpan(f.a.Src).Slice(f.a.Src)))

	if !inline {
		f.writeIndent(depth)
	}
	f.buf.WriteByte('<')
	f.buf.WriteString(name)
	f.writeAttrs(idx, depth)
	f.buf.WriteByte('>')

	if n.Close.IsZero() && n.FirstChild == 0 {
		// void or self-closed element with no body
		if !inline {
			f.buf.WriteString("\n")
		}
		return
	}

	if name == "pre" || name == "textarea" {
		f.buf.Write(f.a.Src[n.Open.End:closeStart(n)])
		f.writeCloseTag(n, name, inline)
		return
	}

	if name == "script" || name == "style" {
		f.writeRawReformatted(n, depth)
		f.writeCloseTag(n, name, inline)
		return
	}

	children := f.a.Children(idx)
	if isInlineBody(f.a, n, children) {
		for _, c := range children {
			f.writeNode(c, depth, true)
		}
		f.writeCloseTag(n, name, inline)
		return
	}

	f.buf.WriteString("\n")
	prevEnd := n.Open.End
	for _, c := range children {
		if countNewlines(f.a.Src[prevEnd:f.a.Nodes[c].Open.Start]) >= 2 {
			f.buf.WriteString("\n")
		}
		f.writeNode(c, depth+1, false)
		prevEnd = nodeEnd(f.a, c)
	}
	f.writeIndent(depth)
	f.writeCloseTag(n, name, inline)
}

func closeStart(n *sh.Node) uint32 {
	if !n.Close.IsZero() {
		return n.Close.Start
	}
	return n.Open.End
}

func (f *formatter) writeCloseTag(n *sh.Node, name string, inline bool) {
	if n.Close.IsZero() {
		return
	}
	f.buf.WriteString("</")
	f.buf.WriteString(name)
	f.buf.WriteByte('>')
	if !inline {
		f.buf.WriteString("\n")
	}
}

// writeAttrs renders an element's attribute list, going one-per-line when
// there are 2+ attributes and the source already had a line break before
// the closing '>' — attribute layout follows the author's own choice to
// break before '>'.
func (f *formatter) writeAttrs(idx uint32, depth int) {
	n := &f.a.Nodes[idx]
	attrs := scanAttrs(f.a, idx)
	if len(attrs) == 0 {
		return
	}
	vertical := len(attrs) >= 2 && hasNewlineBeforeClose(n.Open.Slice(f.a.Src))
	if !vertical {
		for _, at := range attrs {
			f.buf.WriteByte(' ')
			f.writeOneAttr(at)
		}
		return
	}
	for _, at := range attrs {
		f.buf.WriteString("\n")
		f.writeIndent(depth + 1)
		f.writeOneAttr(at)
	}
	f.buf.WriteString("\n")
	f.writeIndent(depth)
}

func (f *formatter) writeOneAttr(at scannedAttr) {
	f.buf.WriteString(at.name)
	if at.present {
		f.buf.WriteByte('=')
		f.buf.WriteByte('"')
		f.buf.WriteString(strings.ReplaceAll(at.value, `"`, "&quot;"))
		f.buf.WriteByte('"')
	}
}

type scannedAttr struct {
	name    string
	value   string
	present bool
}

// scanAttrs re-scans idx's start tag with a fresh attribute-returning
// tokenizer, exactly like the validator does, since the coalesced
// tree-building tokenizer never retains per-attribute spans.
func scanAttrs(a *sh.Ast, idx uint32) []scannedAttr {
	n := &a.Nodes[idx]
	tz := sh.NewTokenizerAt(a.Src, n.Open.Start)
	tz.ReturnAttrs = true
	var out []scannedAttr
	for {
		tok := tz.Next()
		switch tok.Kind {
		case sh.TokenAttr:
			name := strings.ToLower(tok.AttrName.String(a.Src))
			val := ""
			if tok.AttrValue.Present {
				val = tok.AttrValue.Span.String(a.Src)
			}
			out = append(out, scannedAttr{name: name, value: val, present: tok.AttrValue.Present})
		case sh.TokenTag:
			return out
		case sh.TokenParseError, sh.TokenTagName:
			continue
		default:
			return out
		}
	}
}

func hasNewlineBeforeClose(tagSrc []byte) bool {
	i := len(tagSrc) - 1
	for i >= 0 && (tagSrc[i] == '>' || tagSrc[i] == '/') {
		i--
	}
	for ; i >= 0; i-- {
		switch tagSrc[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return false
}

// isInlineBody reports whether n renders its children on the same line as
// its open tag: true unless source whitespace separates '>' from the first
// child, in which case the element goes vertical (its children break onto
// their own, indented lines) regardless of what kind that first child is.
func isInlineBody(a *sh.Ast, n *sh.Node, children []uint32) bool {
	if len(children) == 0 {
		return true
	}
	gap := a.Src[n.Open.End:a.Nodes[children[0]].Open.Start]
	for _, b := range gap {
		switch b {
		case ' ', '\t', '\n', '\r', '\f':
			return false
		}
	}
	return true
}

func countNewlines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}

func collapseWhitespace(b []byte) string {
	fields := strings.Fields(string(b))
	return strings.Join(fields, " ")
}

// writeRawReformatted re-indents a <script>/<style> body line by line,
// tracking brace depth so nested blocks pick up one extra indent level —
// a lightweight approximation of a real CSS/JS formatter, not full
// reparsing.
func (f *formatter) writeRawReformatted(n *sh.Node, depth int) {
	body := f.a.Src[n.Open.End:closeStart(n)]
	lines := strings.Split(strings.Trim(string(body), "\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return
	}
	f.buf.WriteString("\n")
	braceDepth := depth + 1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		thisDepth := braceDepth
		if strings.HasPrefix(trimmed, "}") {
			thisDepth--
		}
		if trimmed == "" {
			f.buf.WriteString("\n")
		} else {
			f.writeIndent(thisDepth)
			f.buf.WriteString(trimmed)
			f.buf.WriteString("\n")
		}
		braceDepth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
	}
	f.writeIndent(depth)
}
