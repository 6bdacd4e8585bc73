package superhtml

import (
	"sort"
	"strings"
)

// RuleKind selects how an attribute's value is validated.
type RuleKind uint8

const (
	RuleManual RuleKind = iota // validated by an ancestor, not here
	RuleBool                   // presence-only, value forbidden
	RuleAny                    // any value, including empty/absent
	RuleNotEmpty
	RuleID // non-empty, no whitespace
	RuleClass
	RuleCORS // fixed two-item enum
	RuleMIME
	RuleLang // BCP 47, delegates to langtag
	RuleNonNegInt
	RuleHashNameRef
	RuleList
	RuleURL
	RuleCustom
)

// ListCount selects how many tokens a RuleList attribute accepts.
type ListCount uint8

const (
	ListOne ListCount = iota
	ListMany
	ListManyUnique
	ListManyUniqueComma
)

// AttrRule describes the legal shape of one attribute's value.
type AttrRule struct {
	Kind RuleKind
	Desc string

	// RuleList
	Set         []string
	Count       ListCount
	Completions []string

	// RuleNonNegInt
	Min, Max int

	// RuleURL
	URLAllowEmpty bool

	// RuleCustom
	Custom func(value string, present bool) (DiagnosticKind, string, bool)
}

// accepts validates a raw value against the rule. ok=false means reject;
// kind/reason describe the diagnostic to raise (DiagInvalidAttrValue unless
// stated otherwise).
func (r AttrRule) accepts(value string, present bool) (kind DiagnosticKind, reason string, ok bool) {
	switch r.Kind {
	case RuleManual:
		return 0, "", true
	case RuleBool:
		if present {
			return DiagBooleanAttr, "", false
		}
		return 0, "", true
	case RuleAny:
		return 0, "", true
	case RuleNotEmpty:
		if present && value == "" {
			return DiagInvalidAttrValue, "must not be empty", false
		}
		return 0, "", true
	case RuleID:
		if value == "" {
			return DiagInvalidAttrValue, "must not be empty", false
		}
		if strings.ContainsAny(value, whitespace) {
			return DiagInvalidAttrValue, "must not contain whitespace", false
		}
		return 0, "", true
	case RuleClass:
		seen := map[string]bool{}
		for _, tok := range strings.Fields(value) {
			if seen[tok] {
				return DiagDuplicateClass, tok, false
			}
			seen[tok] = true
		}
		return 0, "", true
	case RuleCORS:
		switch value {
		case "", "anonymous", "use-credentials":
			return 0, "", true
		}
		return DiagInvalidAttrValue, "must be \"anonymous\" or \"use-credentials\"", false
	case RuleMIME:
		if value == "" {
			return 0, "", true
		}
		if !strings.Contains(value, "/") {
			return DiagInvalidAttrValue, "not a valid MIME type", false
		}
		return 0, "", true
	case RuleLang:
		if value == "" {
			return 0, "", true
		}
		if err := validateLangTag(value); err != nil {
			return DiagInvalidAttrValue, err.Error(), false
		}
		return 0, "", true
	case RuleNonNegInt:
		n, err := parseNonNegInt(value)
		if err != nil {
			return DiagInvalidAttrValue, "must be a non-negative integer", false
		}
		if (r.Min != 0 || r.Max != 0) && (n < r.Min || (r.Max != 0 && n > r.Max)) {
			return DiagIntOutOfBounds, "", false
		}
		return 0, "", true
	case RuleHashNameRef:
		if value == "" || value[0] != '#' {
			return DiagInvalidAttrValue, "must start with '#'", false
		}
		return 0, "", true
	case RuleList:
		toks := splitList(value, r.Count)
		seen := map[string]bool{}
		for _, tok := range toks {
			if len(r.Set) > 0 && !containsStr(r.Set, tok) {
				return DiagInvalidAttrValue, "unrecognized value \"" + tok + "\"", false
			}
			if (r.Count == ListManyUnique || r.Count == ListManyUniqueComma) && seen[tok] {
				return DiagInvalidAttrValue, "duplicate value \"" + tok + "\"", false
			}
			seen[tok] = true
		}
		return 0, "", true
	case RuleURL:
		if value == "" && !r.URLAllowEmpty {
			return DiagInvalidAttrValue, "must not be empty", false
		}
		return 0, "", true
	case RuleCustom:
		if r.Custom != nil {
			return r.Custom(value, present)
		}
		return 0, "", true
	}
	return 0, "", true
}

func splitList(value string, count ListCount) []string {
	if count == ListManyUniqueComma {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return strings.Fields(value)
}

func containsStr(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func parseNonNegInt(s string) (int, error) {
	if s == "" {
		return 0, errNotInt
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errNotInt
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

var errNotInt = simpleErr("not an integer")

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

// AttrsKind selects how an element's attributes are validated.
type AttrsKind uint8

const (
	AttrsStatic AttrsKind = iota
	AttrsDynamic
	AttrsManual
)

// ParsedAttr is one already-deduplicated attribute handed to a dynamic
// validator.
type ParsedAttr struct {
	Name  string
	Value string
	Present bool
}

// AttrsSpec is the element-level attribute-validation policy.
type AttrsSpec struct {
	Kind AttrsKind
	// Static is consulted in addition to globalAttrs for AttrsStatic
	// elements; for AttrsDynamic elements resolveAttrRule skips it and
	// Dynamic validates the attribute set instead.
	Static map[string]AttrRule
	// Dynamic validates the full attribute set at once and derives the
	// element's runtime Model (AttrsDynamic only).
	Dynamic func(base Model, attrs []ParsedAttr) (Model, []dynamicAttrDiag)
}

type dynamicAttrDiag struct {
	Name   string
	Kind   DiagnosticKind
	Reason string
}

// globalAttrs are accepted on every element.
var globalAttrs = map[string]AttrRule{
	"id":            {Kind: RuleID, Desc: "Unique identifier for the element."},
	"class":         {Kind: RuleClass, Desc: "Space-separated list of the element's classes."},
	"style":         {Kind: RuleAny, Desc: "Inline CSS declarations."},
	"title":         {Kind: RuleAny, Desc: "Advisory information, typically shown as a tooltip."},
	"lang":          {Kind: RuleLang, Desc: "Primary language of the element's contents, as a BCP 47 tag."},
	"dir":           {Kind: RuleList, Set: []string{"ltr", "rtl", "auto"}, Desc: "Text directionality."},
	"tabindex":      {Kind: RuleCustom, Custom: validateTabindex, Desc: "Whether and how the element participates in sequential keyboard navigation."},
	"hidden":        {Kind: RuleBool, Desc: "Whether the element is relevant."},
	"contenteditable": {Kind: RuleList, Set: []string{"true", "false", "plaintext-only", ""}, Desc: "Whether the element is editable."},
	"draggable":     {Kind: RuleList, Set: []string{"true", "false"}, Desc: "Whether the element is draggable."},
	"spellcheck":    {Kind: RuleList, Set: []string{"true", "false", ""}, Desc: "Whether spell-checking is enabled."},
	"translate":     {Kind: RuleList, Set: []string{"yes", "no"}, Desc: "Whether the element's content should be translated."},
	"accesskey":     {Kind: RuleNotEmpty, Desc: "Keyboard shortcut to activate/focus the element."},
	"slot":          {Kind: RuleAny, Desc: "Name of the shadow-DOM slot this element is assigned to."},
	"autofocus":     {Kind: RuleBool, Desc: "Automatically focus the element on page load."},
	"inert":         {Kind: RuleBool, Desc: "Makes the element and its subtree inert."},
	"popover":       {Kind: RuleList, Set: []string{"auto", "manual", ""}, Desc: "Marks the element as a popover."},
	"itemscope":     {Kind: RuleBool, Desc: "Introduces a microdata item."},
	"itemtype":      {Kind: RuleURL, Desc: "Microdata item type."},
	"itemprop":      {Kind: RuleAny, Desc: "Microdata property name."},
	"role":          {Kind: RuleAny, Desc: "ARIA role override."},
}

func init() {
	for _, ev := range []string{
		"onclick", "ondblclick", "onmousedown", "onmouseup", "onmouseover", "onmousemove",
		"onmouseout", "onkeypress", "onkeydown", "onkeyup", "onload", "onunload", "onabort",
		"onerror", "onresize", "onscroll", "onselect", "onchange", "onsubmit", "onreset",
		"onfocus", "onblur", "oninput", "oncontextmenu", "ondrag", "ondrop", "onwheel",
	} {
		globalAttrs[ev] = AttrRule{Kind: RuleAny, Desc: "Event handler content attribute: " + ev[2:] + "."}
	}
}

func validateTabindex(value string, present bool) (DiagnosticKind, string, bool) {
	if !present {
		return 0, "", true
	}
	if _, err := parseSignedInt(value); err != nil {
		return DiagInvalidAttrValue, "must be an integer", false
	}
	return 0, "", true
}

func parseSignedInt(s string) (int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, err := parseNonNegInt(s)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

// isDataAttr reports whether name is a data-* attribute, unconditionally
// accepted on every element.
func isDataAttr(name string) bool {
	return strings.HasPrefix(name, "data-")
}

// resolveAttrRule looks up name's rule for kind, honoring precedence
// element-specific > global > data-*.
func resolveAttrRule(kind ElementKind, name string) (AttrRule, bool) {
	info := lookupElement(kind)
	if info != nil && info.Attrs.Kind != AttrsDynamic {
		if r, ok := info.Attrs.Static[name]; ok {
			return r, true
		}
	}
	if r, ok := globalAttrs[name]; ok {
		return r, true
	}
	if isDataAttr(name) {
		return AttrRule{Kind: RuleAny}, true
	}
	return AttrRule{}, false
}

// ResolveAttrRule is the exported form of resolveAttrRule, used by
// package ide to back attribute-value completions and hover text.
func ResolveAttrRule(kind ElementKind, name string) (AttrRule, bool) {
	return resolveAttrRule(kind, name)
}

// StaticAttrNames returns kind's element-specific attribute names, or nil
// if kind validates attributes dynamically (its names aren't enumerable
// without a concrete attribute set to run the validator against).
func StaticAttrNames(kind ElementKind) []string {
	info := lookupElement(kind)
	if info == nil || info.Attrs.Kind == AttrsDynamic {
		return nil
	}
	out := make([]string, 0, len(info.Attrs.Static))
	for name := range info.Attrs.Static {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GlobalAttrNames returns every attribute accepted on every element,
// sorted, including the "on*" event handlers registered at init time.
func GlobalAttrNames() []string {
	out := make([]string, 0, len(globalAttrs))
	for name := range globalAttrs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
