package superhtml

// ContentKind selects how an element's Content field is interpreted.
type ContentKind uint8

const (
	// ContentModel: children are checked purely against Model.Content
	// (baseline categories), no per-kind exceptions.
	ContentModel ContentKind = iota
	// ContentAnything: no child restrictions at all (e.g. <template>,
	// foreign-content hosts).
	ContentAnything
	// ContentSimple: Model.Content plus the explicit allow/forbid lists in
	// Simple.
	ContentSimple
	// ContentCustom: Validate/Complete callbacks decide everything.
	ContentCustom
)

// SimpleContentSpec captures the common "mostly-model, plus a few named
// exceptions" shape: extra always-allowed children, always-forbidden
// children, and descendants forbidden anywhere in the subtree.
type SimpleContentSpec struct {
	// ExtraChildren are always allowed regardless of category overlap
	// (e.g. <select> accepting <option>, which is not itself flow/phrasing
	// content).
	ExtraChildren []ElementKind
	// ForbiddenChildren are always rejected with invalid_nesting even if
	// their category would otherwise be accepted.
	ForbiddenChildren []ElementKind
	// ForbiddenDescendants are rejected anywhere in the subtree, not just
	// as direct children (e.g. no nested <a> inside an <a>).
	ForbiddenDescendants []ElementKind
	// ForbiddenDescendantsExtra names Extra facts (currently only
	// "tabindex") forbidden anywhere in the subtree.
	ForbiddenDescendantsExtra []string
}

func (s *SimpleContentSpec) allows(k ElementKind) bool {
	if s == nil {
		return false
	}
	for _, e := range s.ExtraChildren {
		if e == k {
			return true
		}
	}
	return false
}

func (s *SimpleContentSpec) forbidsChild(k ElementKind) bool {
	if s == nil {
		return false
	}
	for _, e := range s.ForbiddenChildren {
		if e == k {
			return true
		}
	}
	return false
}

// CandidateChildren returns every element kind that could be inserted as
// a child of the node at parentIdx right now, used by package ide to
// build tag-name completions. It mirrors validateParentChild's dispatch
// but against each kind's baseline Model rather than an actual child
// node, since the candidate doesn't exist yet.
func CandidateChildren(a *Ast, parentIdx uint32) []ElementKind {
	info := lookupElement(a.Nodes[parentIdx].Kind)
	if info == nil {
		return nil
	}

	switch info.Content.Kind {
	case ContentAnything:
		return AllElementKinds()
	case ContentCustom:
		if info.Content.Complete == nil {
			return nil
		}
		return info.Content.Complete(a, parentIdx)
	case ContentSimple, ContentModel:
		var out []ElementKind
		for _, k := range AllElementKinds() {
			if info.Content.Kind == ContentSimple {
				if info.Content.Simple.forbidsChild(k) {
					continue
				}
				if info.Content.Simple.allows(k) {
					out = append(out, k)
					continue
				}
			}
			ci := lookupElement(k)
			if ci == nil {
				continue
			}
			if a.Nodes[parentIdx].Model.Overlap(ci.Model.Categories) {
				out = append(out, k)
			}
		}
		return out
	}
	return nil
}

// ContentSpec is the element-level content-model policy.
type ContentSpec struct {
	Kind   ContentKind
	Simple *SimpleContentSpec

	// Validate implements ContentCustom; it returns ok == true to accept,
	// or a diagnostic kind plus reason with ok == false to reject.
	Validate func(a *Ast, parent, child uint32) (DiagnosticKind, string, bool)
	// Complete implements ContentCustom completions: the list of element
	// kinds valid as children right now.
	Complete func(a *Ast, parent uint32) []ElementKind
}
