package superhtml

import (
	"log/slog"
	"strings"
)

// ParseOption configures optional, non-semantic behavior of Parse.
type ParseOption func(*builder)

// WithLogger attaches a logger for recoverable, non-diagnostic internal
// events — currently, resolving an unrecognized tag name to KindOpaque.
// Diagnostics always go through the returned Ast's Errors field regardless
// of whether a logger is attached; this is strictly supplementary
// observability rather than a replacement for Errors.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(b *builder) { b.logger = logger }
}

// Parse tokenizes src and builds it into an Ast. Node 0 is always the
// synthetic root; every other node is reachable from it via
// FirstChild/NextSib. Parse never returns an error: malformed input
// produces diagnostics in the returned Ast.Errors instead, following the
// "errors are data, not control flow" discipline the tokenizer already
// uses (tokenizer.go).
func Parse(src []byte, lang Language, opts ...ParseOption) *Ast {
	b := &builder{
		a:  &Ast{Src: src, Lang: lang, Nodes: make([]Node, 1, 64)},
		tz: NewTokenizer(src),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.a.Nodes[0] = Node{Kind: KindRoot}
	b.stack = append(b.stack, stackEntry{idx: 0})

	for {
		tok := b.tz.Next()
		switch tok.Kind {
		case TokenEOF:
			b.finish()
			if !b.a.HasSyntaxErrors && b.a.Lang == LangHTML {
				validateContent(b.a)
			}
			return b.a
		case TokenParseError:
			b.a.Errors = append(b.a.Errors, NewSyntaxDiagnostic(tok.ErrorKind, tok.Span))
			b.a.HasSyntaxErrors = true
		case TokenDoctype:
			b.handleDoctype(tok)
		case TokenComment:
			b.appendLeaf(KindComment, tok.Span, Span{})
		case TokenText:
			b.appendLeaf(KindText, tok.Span, Span{})
		case TokenTag:
			if tok.TagKindVal == TagStart || tok.TagKindVal == TagStartSelfClosing {
				b.handleStartTag(tok)
			} else {
				b.handleEndTag(tok)
			}
		}
	}
}

// stackEntry is one open element on the builder's stack. name is the
// lowercase tag text used for end-tag matching — end tags match by tag
// name text, not by resolved kind, which lets foreign-content subtrees
// close correctly even though their contents aren't looked up in the
// element table.
type stackEntry struct {
	idx  uint32
	name string
}

type builder struct {
	a      *Ast
	tz     *Tokenizer
	stack  []stackEntry
	logger *slog.Logger

	// foreignDepth counts open <svg>/<math> scopes on the stack. While
	// non-zero, every start tag resolves to KindOpaque regardless of name.
	foreignDepth int
}

func (b *builder) top() uint32 { return b.stack[len(b.stack)-1].idx }

func (b *builder) pushNode(n Node, name string) uint32 {
	idx := uint32(len(b.a.Nodes))
	n.Parent = b.top()
	b.a.Nodes = append(b.a.Nodes, n)
	b.link(idx)
	return idx
}

// link attaches node idx as the last child of its parent.
func (b *builder) link(idx uint32) {
	p := b.a.Nodes[idx].Parent
	if b.a.Nodes[p].FirstChild == 0 {
		b.a.Nodes[p].FirstChild = idx
		return
	}
	c := b.a.Nodes[p].FirstChild
	for b.a.Nodes[c].NextSib != 0 {
		c = b.a.Nodes[c].NextSib
	}
	b.a.Nodes[c].NextSib = idx
}

func (b *builder) appendLeaf(kind ElementKind, open, close Span) uint32 {
	return b.pushNode(Node{Kind: kind, Open: open, Close: close}, "")
}

func (b *builder) handleDoctype(tok Token) {
	idx := b.appendLeaf(KindDoctype, tok.Span, Span{})
	if ok, reason := classifyDoctype(b.a.Src, tok); !ok {
		b.a.Errors = append(b.a.Errors, Diagnostic{
			Kind: DiagUnsupportedDoctype, MainLocation: tok.Span, NodeIdx: idx, Reason: reason,
		})
	}
}

func tagNameText(src []byte, tok Token) string {
	return strings.ToLower(tok.Name.String(src))
}

// isForeignRoot reports whether name opens an <svg>/<math> namespace scope.
// Tracked by tag-name text, like end-tag matching, so a forced-opaque nested
// <svg> still balances the counter correctly against its own end tag.
func isForeignRoot(name string) bool {
	return name == "svg" || name == "math"
}

func (b *builder) handleStartTag(tok Token) {
	name := tagNameText(b.a.Src, tok)
	rawKind := resolveKind(b.a.Lang, name)
	kind := rawKind
	selfClose := tok.TagKindVal == TagStartSelfClosing

	// Inside an <svg>/<math> subtree every descendant is opaque, regardless
	// of whether its name happens to match a real HTML5 element — content
	// and attribute validation never run on foreign-content subtrees.
	if b.foreignDepth > 0 {
		kind = KindOpaque
	}

	if kind == KindOpaque && b.foreignDepth == 0 && b.a.Lang != LangXML && b.logger != nil {
		row, col := RowCol(b.a.Src, tok.Span.Start)
		b.logger.Debug("unrecognized tag name resolved to opaque", "name", name, "row", row, "col", col)
	}

	n := Node{Kind: kind, Open: tok.Span, SelfClosing: selfClose}
	if info := lookupElement(kind); info != nil {
		n.Model = info.Model
	}
	idx := b.pushNode(n, name)

	// Void-ness and raw-text tokenizer mode are lexical properties of the
	// tag name itself, independent of whether this node's tree Kind got
	// forced to KindOpaque by foreign-content rules — a <script> inside
	// <svg> still needs script-data tokenizing, and a void <br> inside
	// <svg> still never opens a scope.
	if rawKind.IsVoid() {
		// Void elements never open a scope; a trailing '/' is legal HTML
		// but not required.
	} else if selfClose && b.a.Lang == LangHTML && !b.inForeign() {
		b.a.Errors = append(b.a.Errors, Diagnostic{
			Kind: DiagHTMLElementsCantSelfClose, MainLocation: tok.Span, NodeIdx: idx,
		})
		b.stack = append(b.stack, stackEntry{idx: idx, name: name})
		if isForeignRoot(name) {
			b.foreignDepth++
		}
	} else if selfClose {
		// Self-closing is legal XML-style syntax in foreign content/XML
		// documents: the element opens and immediately closes, so it never
		// joins the stack and never opens a foreign-nesting scope either.
	} else {
		b.stack = append(b.stack, stackEntry{idx: idx, name: name})
		if isForeignRoot(name) {
			b.foreignDepth++
		}
	}

	if mode, ok := rawTextModeOf[rawKind]; ok && !selfClose && !rawKind.IsVoid() {
		switch mode {
		case rawScriptData:
			b.tz.GotoScriptData()
		case rawRcData:
			b.tz.GotoRcData(name)
		case rawRawText:
			b.tz.GotoRawText(name)
		}
	}

	b.validateAttrs(idx, kind, tok)
}

// inForeign reports whether the current open-element stack is inside an
// <svg> or <math> subtree, where HTML's self-closing restriction doesn't
// apply.
func (b *builder) inForeign() bool {
	return b.foreignDepth > 0
}

func (b *builder) validateAttrs(nodeIdx uint32, kind ElementKind, tok Token) {
	info := lookupElement(kind)
	if info == nil || info.Attrs.Kind == AttrsManual {
		return
	}

	sub := NewTokenizerAt(b.a.Src, tok.Span.Start)
	sub.ReturnAttrs = true
	var parsed []ParsedAttr
	seen := map[string]Span{}
	for {
		t := sub.Next()
		switch t.Kind {
		case TokenAttr:
			name := strings.ToLower(t.AttrName.String(b.a.Src))
			if prior, dup := seen[name]; dup {
				b.a.Errors = append(b.a.Errors, Diagnostic{
					Kind: DiagDuplicateAttributeName, MainLocation: t.AttrName, NodeIdx: nodeIdx,
					Secondary: prior,
				})
				continue
			}
			seen[name] = t.AttrName
			val := ""
			if t.AttrValue.Present {
				val = t.AttrValue.Span.String(b.a.Src)
			}
			parsed = append(parsed, ParsedAttr{Name: name, Value: val, Present: t.AttrValue.Present})
		case TokenTag:
			// final coalesced-equivalent token in ReturnAttrs mode; done.
			goto doneScan
		case TokenParseError, TokenTagName:
			continue
		default:
			goto doneScan
		}
	}
doneScan:

	switch info.Attrs.Kind {
	case AttrsDynamic:
		model, diags := info.Attrs.Dynamic(info.Model, parsed)
		b.a.Nodes[nodeIdx].Model = model
		for _, d := range diags {
			span := seen[d.Name]
			b.a.Errors = append(b.a.Errors, Diagnostic{Kind: d.Kind, MainLocation: span, NodeIdx: nodeIdx, Reason: d.Reason})
		}
	default:
		for _, at := range parsed {
			rule, ok := resolveAttrRule(kind, at.Name)
			if !ok {
				b.a.Errors = append(b.a.Errors, Diagnostic{Kind: DiagInvalidAttr, MainLocation: seen[at.Name], NodeIdx: nodeIdx, Reason: at.Name})
				continue
			}
			if dk, reason, ok := rule.accepts(at.Value, at.Present); !ok {
				b.a.Errors = append(b.a.Errors, Diagnostic{Kind: dk, MainLocation: seen[at.Name], NodeIdx: nodeIdx, Reason: reason, Min: rule.Min, Max: rule.Max})
			}
		}
	}
	if _, ok := seen["tabindex"]; ok {
		b.a.Nodes[nodeIdx].Model.Extra.Tabindex = true
	}
}

func (b *builder) handleEndTag(tok Token) {
	name := tagNameText(b.a.Src, tok)

	matchDepth := -1
	for i := len(b.stack) - 1; i >= 1; i-- {
		if b.stack[i].name == name {
			matchDepth = i
			break
		}
	}

	if matchDepth == -1 {
		kind := resolveKind(b.a.Lang, name)
		diagKind := DiagErroneousEndTag
		if kind.IsVoid() {
			diagKind = DiagVoidEndTag
		}
		b.a.Errors = append(b.a.Errors, Diagnostic{Kind: diagKind, MainLocation: tok.Span, NodeIdx: b.top()})
		return
	}

	for i := len(b.stack) - 1; i > matchDepth; i-- {
		idx := b.stack[i].idx
		b.a.Errors = append(b.a.Errors, Diagnostic{Kind: DiagMissingEndTag, MainLocation: b.a.Nodes[idx].Open, NodeIdx: idx})
		if isForeignRoot(b.stack[i].name) {
			b.foreignDepth--
		}
	}

	if isForeignRoot(b.stack[matchDepth].name) {
		b.foreignDepth--
	}
	closedIdx := b.stack[matchDepth].idx
	b.a.Nodes[closedIdx].Close = tok.Span
	b.stack = b.stack[:matchDepth]
}

// finish force-closes every element still open at EOF.
func (b *builder) finish() {
	for i := len(b.stack) - 1; i >= 1; i-- {
		idx := b.stack[i].idx
		b.a.Errors = append(b.a.Errors, Diagnostic{Kind: DiagMissingEndTag, MainLocation: b.a.Nodes[idx].Open, NodeIdx: idx})
	}
	b.stack = b.stack[:1]
}

// resolveKind maps a tag name to its catalog ElementKind. Unknown names
// (custom elements, components in LangSuperHTML documents) resolve to
// KindOpaque: their subtree is still built and formatted, but never
// content/attribute validated. In LangXML every name resolves to
// KindOpaque.
func resolveKind(lang Language, name string) ElementKind {
	if lang == LangXML {
		return KindOpaque
	}
	if kind, ok := elementNames[name]; ok {
		return kind
	}
	return KindOpaque
}

// ResolveKind is the exported form of resolveKind, used by package ide to
// classify a tag whose start tag never finished tokenizing (and so never
// became a Node) — the common case while an editor's cursor sits inside a
// value the user is still typing.
func ResolveKind(lang Language, name string) ElementKind {
	return resolveKind(lang, name)
}
