package superhtml

// validateContent runs the strict content-model pass over a tree that
// parsed without any syntax errors. It only ever appends to a.Errors; it
// never mutates the tree.
func validateContent(a *Ast) {
	mainSeen := false
	walkValidate(a, 0, 0, &mainSeen)
}

func walkValidate(a *Ast, nodeIdx uint32, depth int, mainSeen *bool) {
	n := &a.Nodes[nodeIdx]

	if n.Kind == KindMain {
		if *mainSeen {
			a.Errors = append(a.Errors, Diagnostic{Kind: DiagDuplicateChild, MainLocation: n.Open, NodeIdx: nodeIdx, Reason: "a document has at most one main element"})
		}
		*mainSeen = true
		if hasSectioningAncestor(a, nodeIdx) {
			a.Errors = append(a.Errors, Diagnostic{Kind: DiagWrongPosition, MainLocation: n.Open, NodeIdx: nodeIdx, Reason: "main must not be nested inside sectioning content"})
		}
	}

	if info := lookupElement(n.Kind); info != nil && info.Deprecated {
		a.Errors = append(a.Errors, Diagnostic{Kind: DiagDeprecatedAndUnsupported, MainLocation: n.Open, NodeIdx: nodeIdx, Reason: info.Name})
	}

	for c := n.FirstChild; c != 0; c = a.Nodes[c].NextSib {
		validateParentChild(a, nodeIdx, c)
		walkValidate(a, c, depth+1, mainSeen)
	}

	validateDescendants(a, nodeIdx, nodeIdx)
}

func hasSectioningAncestor(a *Ast, nodeIdx uint32) bool {
	for p := a.Nodes[nodeIdx].Parent; p != 0; p = a.Nodes[p].Parent {
		if lookupElement(a.Nodes[p].Kind) != nil && a.Nodes[p].Model.Categories.Has(CatSectioning) {
			return true
		}
	}
	return false
}

// validateParentChild applies the four-step model check for one
// parent/child edge: comments, text and opaque (unknown-element/foreign
// content) nodes are always allowed, since this pass only constrains
// elements whose models the catalog actually knows.
func validateParentChild(a *Ast, parent, child uint32) {
	pk := a.Nodes[parent].Kind
	ck := a.Nodes[child].Kind

	switch ck {
	case KindText, KindComment, KindDoctype, KindOpaque:
		return
	}

	info := lookupElement(pk)
	if info == nil {
		return // root, or an unrecognized parent kind: nothing to check
	}

	switch info.Content.Kind {
	case ContentAnything:
		return
	case ContentCustom:
		if kind, reason, ok := info.Content.Validate(a, parent, child); !ok {
			a.Errors = append(a.Errors, Diagnostic{Kind: kind, MainLocation: a.Nodes[child].Open, NodeIdx: child, Secondary: a.Nodes[parent].Open, Reason: reason})
		}
		return
	case ContentSimple:
		if info.Content.Simple.forbidsChild(ck) {
			reject(a, parent, child, "not permitted inside "+info.Name)
			return
		}
		if info.Content.Simple.allows(ck) {
			return
		}
		fallthrough
	case ContentModel:
		childCats := elementCategories(a, child)
		if !a.Nodes[parent].Model.Overlap(childCats) {
			reject(a, parent, child, "")
		}
	}
}

func elementCategories(a *Ast, nodeIdx uint32) Categories {
	return a.Nodes[nodeIdx].Model.Categories
}

func reject(a *Ast, parent, child uint32, reason string) {
	a.Errors = append(a.Errors, Diagnostic{
		Kind: DiagInvalidNesting, MainLocation: a.Nodes[child].Open, NodeIdx: child,
		Secondary: a.Nodes[parent].Open, Reason: reason,
	})
}

// validateDescendants checks root's ForbiddenDescendants/Extra lists
// against every element already built under it; called once per node with
// that node as root so deeper elements aren't rechecked against shallower
// ancestors' lists more than once per ancestor.
func validateDescendants(a *Ast, root, nodeIdx uint32) {
	info := lookupElement(a.Nodes[root].Kind)
	if info == nil || info.Content.Kind != ContentSimple || info.Content.Simple == nil {
		return
	}
	simple := info.Content.Simple
	if len(simple.ForbiddenDescendants) == 0 && len(simple.ForbiddenDescendantsExtra) == 0 {
		return
	}
	for c := a.Nodes[nodeIdx].FirstChild; c != 0; c = a.Nodes[c].NextSib {
		ck := a.Nodes[c].Kind
		for _, f := range simple.ForbiddenDescendants {
			if ck == f {
				reject(a, root, c, "not permitted anywhere inside "+info.Name)
			}
		}
		if len(simple.ForbiddenDescendantsExtra) > 0 {
			for _, extra := range simple.ForbiddenDescendantsExtra {
				if extra == "tabindex" && a.Nodes[c].Model.Extra.Tabindex {
					reject(a, root, c, "tabindex not permitted inside "+info.Name)
				}
			}
		}
		validateDescendants(a, root, c)
	}
}
