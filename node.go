package superhtml

// ElementKind identifies a known HTML5 element, or one of the five
// structural pseudo-kinds (root/opaque, plus the three non-element node
// kinds). Kept as a small int rather than an interned string so a Node
// stays a fixed-size, allocation-free struct — the whole Node array is one
// contiguous slice.
type ElementKind uint16

const (
	KindRoot ElementKind = iota
	KindDoctype
	KindComment
	KindText
	KindOpaque
	kindElementsStart // everything from here on is looked up in the element table
)

// Language selects which tag-name → kind resolution rules apply.
type Language uint8

const (
	LangHTML Language = iota
	LangSuperHTML
	LangXML
)

// Node is one entry in an Ast's flat node array. Relations are expressed as
// indices into that same array (0 meaning "none", since node 0 is always
// the root) rather than pointers, so the whole tree is one contiguous
// allocation with no per-node pointer chasing.
type Node struct {
	Kind ElementKind

	Open  Span
	Close Span // zero iff void/self-closing/text/comment/doctype/unclosed

	Parent     uint32
	FirstChild uint32
	NextSib    uint32

	SelfClosing bool

	// Model is this node's *runtime* model: the static baseline from the
	// element table, possibly widened/narrowed by attribute validation for
	// elements whose model depends on which attributes they carry.
	Model Model
}

// NameSpan returns the tag name span an ElementKind-looking-up consumer
// should use to slice out the element's written name, which for ordinary
// elements is the sub-span right after '<' in Open.
func (n *Node) NameSpan(src []byte) Span {
	// Open.Start is '<'; name starts immediately after it (and after '/'
	// for close tags, but Close is irrelevant here — Open always names the
	// element whether the node was built from a start or end tag).
	i := n.Open.Start + 1
	end := i
	for end < n.Open.End && !isWhitespace(src[end]) && src[end] != '>' && src[end] != '/' {
		end++
	}
	return Span{Start: i, End: end}
}

// Ast is the immutable result of building a token stream into a tree: once
// Parse returns, builders are done producing and every consumer only reads.
type Ast struct {
	Src   []byte
	Nodes []Node
	Lang  Language

	Errors []Diagnostic

	// HasSyntaxErrors is true when any tokenizer-level error was recorded;
	// it disables strict content validation and the formatter.
	HasSyntaxErrors bool
}

// Children iterates nodeIdx's direct children via FirstChild/NextSib,
// skipping nothing — callers filter comments/doctypes themselves, since
// some consumers (the formatter) need to see them.
func (a *Ast) Children(nodeIdx uint32) []uint32 {
	var out []uint32
	for c := a.Nodes[nodeIdx].FirstChild; c != 0; c = a.Nodes[c].NextSib {
		out = append(out, c)
	}
	return out
}

// Walk performs a pre-order DFS over the subtree rooted at nodeIdx,
// invoking visit(idx) for every node including nodeIdx itself. Stops early
// if visit returns false.
func (a *Ast) Walk(nodeIdx uint32, visit func(uint32) bool) {
	if !visit(nodeIdx) {
		return
	}
	for c := a.Nodes[nodeIdx].FirstChild; c != 0; c = a.Nodes[c].NextSib {
		a.Walk(c, visit)
	}
}
