// Package ide implements the per-offset operations an editor integration
// drives: locating the node under the cursor, completions, and hover
// descriptions. It has no knowledge of any wire protocol; a caller wiring
// this up to textDocument/completion, textDocument/hover, or similar sits
// entirely above this package and re-parses on every edit, handing this
// package a fresh *sh.Ast and a plain byte offset each time.
package ide

import (
	"strings"

	sh "github.com/kristoff-it/superhtml-core"
	"github.com/kristoff-it/superhtml-core/langtag"
)

// FindNodeAtOffset returns the index of the node whose open or close tag
// contains offset, or 0 if none. It's a DFS over the tree: at each
// sibling, if offset lands in that node's own open or close tag span, it's
// the answer; if offset lands strictly inside the node's content (between
// open.End and close.Start), recurse into its first child; otherwise move
// to the next sibling.
func FindNodeAtOffset(a *sh.Ast, offset uint32) uint32 {
	idx := a.Nodes[0].FirstChild
	for idx != 0 {
		n := &a.Nodes[idx]
		if spanContains(n.Open, offset) || spanContains(n.Close, offset) {
			return idx
		}
		if !n.Close.IsZero() && offset > n.Open.End && offset < n.Close.Start {
			idx = n.FirstChild
			continue
		}
		idx = n.NextSib
	}
	return 0
}

func spanContains(s sh.Span, offset uint32) bool {
	return !s.IsZero() && offset >= s.Start && offset < s.End
}

// Description returns the static hover text for the element or attribute
// name at offset. The second return is false when offset isn't over a
// name this catalog knows about.
func Description(a *sh.Ast, offset uint32) (string, bool) {
	idx := FindNodeAtOffset(a, offset)
	if idx == 0 {
		return "", false
	}
	n := &a.Nodes[idx]

	if name := n.NameSpan(a.Src); offset >= name.Start && offset < name.End {
		info := sh.LookupElement(n.Kind)
		if info == nil {
			return "", false
		}
		return info.Desc, true
	}

	if spanContains(n.Open, offset) {
		if attrName, ok := attrNameAtOffset(a, idx, offset); ok {
			if rule, ok := sh.ResolveAttrRule(n.Kind, attrName); ok {
				return rule.Desc, true
			}
		}
	}
	return "", false
}

// attrNameAtOffset re-scans idx's start tag with an attribute-returning
// tokenizer, the same trick format.scanAttrs uses, to find which
// attribute name span (if any) offset falls inside.
func attrNameAtOffset(a *sh.Ast, idx uint32, offset uint32) (string, bool) {
	n := &a.Nodes[idx]
	tz := sh.NewTokenizerAt(a.Src, n.Open.Start)
	tz.ReturnAttrs = true
	for {
		tok := tz.Next()
		switch tok.Kind {
		case sh.TokenAttr:
			if offset >= tok.AttrName.Start && offset < tok.AttrName.End {
				return strings.ToLower(tok.AttrName.String(a.Src)), true
			}
		case sh.TokenTag:
			return "", false
		case sh.TokenParseError, sh.TokenTagName:
			continue
		default:
			return "", false
		}
	}
}

// Completion is one candidate an editor can offer at a given offset.
type Completion struct {
	Label string
	Desc  string
}

// contextKind classifies what offset is positioned over inside a tag.
type contextKind uint8

const (
	ctxNone contextKind = iota
	ctxTagName
	ctxAttrName
	ctxAttrValue
)

type typingContext struct {
	kind     contextKind
	tagStart uint32          // offset of the '<' opening the tag being edited
	present  map[string]bool // attribute names already written in this tag
	attrName string          // ctxAttrValue only: the attribute whose value is being typed
}

// Completions returns the candidates valid at offset: child element names
// when the cursor sits right after '<' or '</' in an open tag, attribute
// names when it sits in the attribute region of a tag, or attribute
// values when it sits inside an attribute's value.
func Completions(a *sh.Ast, offset uint32) []Completion {
	ctx := classifyContext(a.Src, offset)
	switch ctx.kind {
	case ctxTagName:
		parent := enclosingElement(a, ctx.tagStart)
		return tagNameCompletions(a, parent)
	case ctxAttrName:
		parent := enclosingTagElement(a, ctx.tagStart)
		return attrNameCompletions(parent, ctx.present)
	case ctxAttrValue:
		parent := enclosingTagElement(a, ctx.tagStart)
		return attrValueCompletions(parent, ctx.attrName)
	default:
		return nil
	}
}

func tagNameCompletions(a *sh.Ast, parent uint32) []Completion {
	kinds := sh.CandidateChildren(a, parent)
	out := make([]Completion, 0, len(kinds))
	for _, k := range kinds {
		info := sh.LookupElement(k)
		if info == nil {
			continue
		}
		out = append(out, Completion{Label: info.Name, Desc: info.Desc})
	}
	return out
}

func attrNameCompletions(kind sh.ElementKind, present map[string]bool) []Completion {
	var out []Completion
	seen := map[string]bool{}
	for _, name := range sh.StaticAttrNames(kind) {
		if present[name] || seen[name] {
			continue
		}
		seen[name] = true
		if rule, ok := sh.ResolveAttrRule(kind, name); ok {
			out = append(out, Completion{Label: name, Desc: rule.Desc})
		}
	}
	for _, name := range sh.GlobalAttrNames() {
		if present[name] || seen[name] {
			continue
		}
		seen[name] = true
		if rule, ok := sh.ResolveAttrRule(kind, name); ok {
			out = append(out, Completion{Label: name, Desc: rule.Desc})
		}
	}
	out = append(out, Completion{Label: "data-", Desc: "Custom data attribute; any data-* name is accepted."})
	return out
}

func attrValueCompletions(kind sh.ElementKind, attrName string) []Completion {
	rule, ok := sh.ResolveAttrRule(kind, attrName)
	if !ok {
		return nil
	}
	switch rule.Kind {
	case sh.RuleList:
		out := make([]Completion, 0, len(rule.Set))
		for _, v := range rule.Set {
			out = append(out, Completion{Label: v})
		}
		for _, v := range rule.Completions {
			out = append(out, Completion{Label: v})
		}
		return out
	case sh.RuleCORS:
		return []Completion{
			{Label: "anonymous"},
			{Label: "use-credentials"},
		}
	case sh.RuleLang:
		tags := langtag.CommonLanguageTags()
		out := make([]Completion, 0, len(tags))
		for _, t := range tags {
			out = append(out, Completion{Label: t})
		}
		return out
	default:
		return nil
	}
}

// classifyContext scans src backward from offset to find whether offset
// sits inside an unclosed '<...>' region, and if so whether it's in the
// tag-name, attribute-name, or attribute-value position. The scan is a
// lightweight approximation: a literal '>' inside a quoted attribute
// value is enough to throw off the backward bracket match, same caveat
// format.writeRawReformatted documents for its own line-based scan.
func classifyContext(src []byte, offset uint32) typingContext {
	lt := lastUnclosedLT(src, offset)
	if lt < 0 {
		return typingContext{kind: ctxNone}
	}
	i := uint32(lt) + 1
	if i < offset && src[i] == '/' {
		i++
	}
	nameEnd := i
	for nameEnd < offset && isTagNameChar(src[nameEnd]) {
		nameEnd++
	}
	if nameEnd == offset {
		return typingContext{kind: ctxTagName, tagStart: uint32(lt)}
	}
	return scanAttrRegion(src, uint32(lt), nameEnd, offset)
}

func lastUnclosedLT(src []byte, offset uint32) int {
	depth := 0
	for i := int(offset) - 1; i >= 0; i-- {
		switch src[i] {
		case '>':
			depth++
		case '<':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func scanAttrRegion(src []byte, ltPos, nameEnd, offset uint32) typingContext {
	present := map[string]bool{}
	i := nameEnd
	for i < offset {
		for i < offset && isWhitespace(src[i]) {
			i++
		}
		if i >= offset {
			return typingContext{kind: ctxAttrName, tagStart: ltPos, present: present}
		}
		if src[i] == '>' || src[i] == '/' {
			i++
			continue
		}
		nameStart := i
		for i < offset && isAttrNameChar(src[i]) {
			i++
		}
		if i == nameStart {
			// stray byte (e.g. a lone '=' or quote with no preceding name);
			// skip it rather than looping forever.
			i++
			continue
		}
		name := strings.ToLower(string(src[nameStart:i]))
		if i >= offset {
			return typingContext{kind: ctxAttrName, tagStart: ltPos, present: present}
		}

		j := i
		for j < offset && isWhitespace(src[j]) {
			j++
		}
		if j >= offset || src[j] != '=' {
			present[name] = true
			i = j
			continue
		}
		j++
		for j < offset && isWhitespace(src[j]) {
			j++
		}
		if j >= offset {
			return typingContext{kind: ctxAttrValue, tagStart: ltPos, attrName: name}
		}
		var quote byte
		if src[j] == '"' || src[j] == '\'' {
			quote = src[j]
			j++
		}
		for j < offset {
			if quote != 0 && src[j] == quote {
				break
			}
			if quote == 0 && (isWhitespace(src[j]) || src[j] == '>') {
				break
			}
			j++
		}
		if j >= offset {
			return typingContext{kind: ctxAttrValue, tagStart: ltPos, attrName: name}
		}
		present[name] = true
		if quote != 0 {
			j++
		}
		i = j
	}
	return typingContext{kind: ctxAttrName, tagStart: ltPos, present: present}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func isTagNameChar(c byte) bool {
	return !isWhitespace(c) && c != '>' && c != '/'
}

func isAttrNameChar(c byte) bool {
	return !isWhitespace(c) && c != '=' && c != '>' && c != '/' && c != '"' && c != '\''
}

// nodeSpanEnd returns the end of idx's full span: its close tag's end if it
// has one, Open.End for a void element (which never has a content region
// regardless of how many children the caller thinks it should have), or —
// for a non-void node still open when the document ran out, with or
// without children so far — wherever its next sibling starts, walking up
// to an ancestor's own span end, or the end of the source as the final
// fallback.
func nodeSpanEnd(a *sh.Ast, idx uint32) uint32 {
	n := &a.Nodes[idx]
	if !n.Close.IsZero() {
		return n.Close.End
	}
	if n.Kind.IsVoid() {
		return n.Open.End
	}
	if n.NextSib != 0 {
		return a.Nodes[n.NextSib].Open.Start
	}
	if n.Parent != 0 {
		return nodeSpanEnd(a, n.Parent)
	}
	return uint32(len(a.Src))
}

// enclosingElement returns the deepest existing node whose content region
// contains offset, used as the completion "parent" when offset sits right
// after an opening '<' that hasn't been tokenized into a node yet.
func enclosingElement(a *sh.Ast, offset uint32) uint32 {
	parent := uint32(0)
	idx := a.Nodes[0].FirstChild
	for idx != 0 {
		n := &a.Nodes[idx]
		end := nodeSpanEnd(a, idx)
		if offset < n.Open.Start {
			break
		}
		if offset >= end {
			idx = n.NextSib
			continue
		}
		if offset < n.Open.End {
			return parent
		}
		contentEnd := end
		if !n.Close.IsZero() {
			contentEnd = n.Close.Start
		}
		if offset < contentEnd {
			parent = idx
			idx = n.FirstChild
			continue
		}
		return parent
	}
	return parent
}

// enclosingTagElement returns the element kind of the tag starting at
// tagStart. Usually that tag already tokenized into a Node (the common
// case once a name and at least one complete attribute exist); but while
// an editor's cursor sits inside an attribute value or name that hasn't
// been closed off yet, the tag itself never finished tokenizing and never
// became a Node — so this falls back to reading the tag name straight out
// of the source and resolving it the same way the parser would.
func enclosingTagElement(a *sh.Ast, tagStart uint32) sh.ElementKind {
	if idx := FindNodeAtOffset(a, tagStart); idx != 0 {
		return a.Nodes[idx].Kind
	}
	return tagKindFromSource(a, tagStart)
}

func tagKindFromSource(a *sh.Ast, tagStart uint32) sh.ElementKind {
	i := tagStart + 1
	if i < uint32(len(a.Src)) && a.Src[i] == '/' {
		i++
	}
	nameStart := i
	for i < uint32(len(a.Src)) && isTagNameChar(a.Src[i]) {
		i++
	}
	if i == nameStart {
		return sh.KindRoot
	}
	name := strings.ToLower(string(a.Src[nameStart:i]))
	return sh.ResolveKind(a.Lang, name)
}
