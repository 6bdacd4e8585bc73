package superhtml

import "strings"

// ElementInfo is one compile-time catalog entry. The table is built once
// at init and never mutated afterward, so every *ElementInfo returned by
// lookupElement is safe to share across concurrent validation runs.
type ElementInfo struct {
	Name string

	// Model is the element's static baseline model. Runtime validation may
	// widen/narrow a node's own Model from this starting point for elements
	// whose model depends on their attributes.
	Model Model

	Attrs   AttrsSpec
	Content ContentSpec

	Desc       string
	Deprecated bool
}

var elementTable [kindElementsEnd - kindElementsStart]*ElementInfo

// lookupElement returns kind's catalog entry, or nil for pseudo-kinds
// (root/text/comment/doctype/opaque) and any kind below kindElementsStart.
func lookupElement(kind ElementKind) *ElementInfo {
	if kind < kindElementsStart || kind >= kindElementsEnd {
		return nil
	}
	return elementTable[kind-kindElementsStart]
}

// LookupElement is the exported form of lookupElement, used by package ide
// to back hover descriptions and completions.
func LookupElement(kind ElementKind) *ElementInfo {
	return lookupElement(kind)
}

// AllElementKinds returns every named element kind the catalog knows,
// ordered the same way they're declared in elements.go.
func AllElementKinds() []ElementKind {
	out := make([]ElementKind, 0, kindElementsEnd-kindElementsStart)
	for k := kindElementsStart; k < kindElementsEnd; k++ {
		out = append(out, k)
	}
	return out
}

func define(kind ElementKind, name string, info ElementInfo) {
	if info.Name == "" {
		info.Name = name
	}
	cp := info
	elementTable[kind-kindElementsStart] = &cp
	registerElement(name, kind)
}

// category bulk-classification tables back-fill every element not given an
// explicit entry below, per category, rather than leaving gaps: every
// element the HTML Living Standard assigns to flow/phrasing/etc. content
// still gets a catalog entry even without element-specific attribute rules.
type namedKind struct {
	kind ElementKind
	name string
}

var (
	bulkSectioning = []namedKind{
		{KindArticle, "article"}, {KindSection, "section"}, {KindNav, "nav"}, {KindAside, "aside"},
	}
	bulkHeading = []namedKind{
		{KindH1, "h1"}, {KindH2, "h2"}, {KindH3, "h3"}, {KindH4, "h4"}, {KindH5, "h5"}, {KindH6, "h6"},
	}
	bulkMetadata = []namedKind{{KindNoscript, "noscript"}}
	bulkFlowOnly = []namedKind{
		{KindHeader, "header"}, {KindFooter, "footer"}, {KindAddress, "address"},
		{KindBlockquote, "blockquote"}, {KindFigure, "figure"}, {KindFigcaption, "figcaption"},
		{KindDiv, "div"}, {KindIns, "ins"}, {KindDel, "del"},
	}
	bulkPhrasingOnly = []namedKind{
		{KindEm, "em"}, {KindStrong, "strong"}, {KindSmall, "small"}, {KindS, "s"},
		{KindCite, "cite"}, {KindQ, "q"}, {KindDfn, "dfn"}, {KindAbbr, "abbr"},
		{KindData, "data"}, {KindTime, "time"}, {KindCode, "code"}, {KindVar, "var"},
		{KindSamp, "samp"}, {KindKbd, "kbd"}, {KindSub, "sub"}, {KindSup, "sup"},
		{KindI, "i"}, {KindB, "b"}, {KindU, "u"}, {KindMark, "mark"}, {KindBdi, "bdi"},
		{KindBdo, "bdo"}, {KindSpan, "span"}, {KindRuby, "ruby"}, {KindRt, "rt"}, {KindRp, "rp"},
	}
	bulkDeprecatedPhrasing = []namedKind{
		{KindApplet, "applet"}, {KindCenter, "center"}, {KindFont, "font"}, {KindNobr, "nobr"},
		{KindAcronym, "acronym"}, {KindBig, "big"}, {KindStrike, "strike"}, {KindTT, "tt"},
	}
	// bulkDeprecatedRawText: obsolete raw-text containers. Their content is
	// tokenized as raw text regardless (rawTextModeOf in elements.go), but
	// without a catalog entry resolveKind would never map their tag name to
	// the kind in the first place, so the raw-text switch would never fire.
	bulkDeprecatedRawText = []namedKind{
		{KindXmp, "xmp"}, {KindNoembed, "noembed"}, {KindNoframes, "noframes"},
	}
)

func init() {
	for _, nk := range bulkSectioning {
		define(nk.kind, nk.name, ElementInfo{
			Model:   Model{Categories: CatFlow | CatSectioning, Content: CatFlow},
			Attrs:   AttrsSpec{Kind: AttrsStatic},
			Content: ContentSpec{Kind: ContentModel},
			Desc:    "Sectioning content.",
		})
	}
	for _, nk := range bulkHeading {
		define(nk.kind, nk.name, ElementInfo{
			Model:   Model{Categories: CatFlow | CatHeading, Content: CatPhrasing},
			Attrs:   AttrsSpec{Kind: AttrsStatic},
			Content: ContentSpec{Kind: ContentModel},
			Desc:    "Heading content.",
		})
	}
	for _, nk := range bulkMetadata {
		define(nk.kind, nk.name, ElementInfo{
			Model:   Model{Categories: CatMetadata, Content: CatFlow},
			Attrs:   AttrsSpec{Kind: AttrsStatic},
			Content: ContentSpec{Kind: ContentModel},
			Desc:    "Fallback content shown when scripting is disabled.",
		})
	}
	for _, nk := range bulkFlowOnly {
		define(nk.kind, nk.name, ElementInfo{
			Model:   Model{Categories: CatFlow, Content: CatFlow},
			Attrs:   AttrsSpec{Kind: AttrsStatic},
			Content: ContentSpec{Kind: ContentModel},
			Desc:    "Flow content.",
		})
	}
	for _, nk := range bulkPhrasingOnly {
		define(nk.kind, nk.name, ElementInfo{
			Model:   Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
			Attrs:   AttrsSpec{Kind: AttrsStatic},
			Content: ContentSpec{Kind: ContentModel},
			Desc:    "Phrasing content.",
		})
	}
	for _, nk := range bulkDeprecatedPhrasing {
		define(nk.kind, nk.name, ElementInfo{
			Model:      Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
			Attrs:      AttrsSpec{Kind: AttrsStatic},
			Content:    ContentSpec{Kind: ContentModel},
			Desc:       "Deprecated presentational element.",
			Deprecated: true,
		})
	}
	for _, nk := range bulkDeprecatedRawText {
		define(nk.kind, nk.name, ElementInfo{
			Model:      Model{Categories: CatFlow, Content: CatText},
			Attrs:      AttrsSpec{Kind: AttrsStatic},
			Content:    ContentSpec{Kind: ContentModel},
			Desc:       "Deprecated raw-text container.",
			Deprecated: true,
		})
	}

	defineDocumentStructure()
	defineMetadataElements()
	defineSectioningAndHeading()
	defineGrouping()
	defineTextLevel()
	defineEmbedded()
	defineTabular()
	defineForms()
	defineInteractive()
	defineScripting()
}

func defineDocumentStructure() {
	define(KindHTML, "html", ElementInfo{
		Model: Model{Categories: 0, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"xmlns": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentCustom,
			Validate: func(a *Ast, parent, child uint32) (DiagnosticKind, string, bool) {
				k := a.Nodes[child].Kind
				if k != KindHead && k != KindBody && k != KindComment {
					return DiagInvalidNesting, "html only contains a head followed by a body", false
				}
				return 0, "", true
			},
			Complete: func(a *Ast, parent uint32) []ElementKind { return []ElementKind{KindHead, KindBody} },
		},
		Desc: "The document's root element.",
	})
	define(KindHead, "head", ElementInfo{
		Model:   Model{Categories: 0, Content: CatMetadata},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Container for the document's metadata.",
	})
	define(KindBody, "body", ElementInfo{
		Model:   Model{Categories: 0, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "The document's content.",
	})
}

func defineMetadataElements() {
	define(KindTitle, "title", ElementInfo{
		Model:   Model{Categories: CatMetadata, Content: CatText},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "The document's title, shown in the browser tab.",
	})
	define(KindBase, "base", ElementInfo{
		Model: Model{Categories: CatMetadata, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"href":   {Kind: RuleURL, URLAllowEmpty: true, Desc: "Document base URL."},
			"target": {Kind: RuleAny, Desc: "Default browsing context for hyperlinks/forms."},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Sets the document's base URL and default link target.",
	})
	define(KindLink, "link", ElementInfo{
		Model: Model{Categories: CatMetadata, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"href":        {Kind: RuleURL, Desc: "Address of the linked resource."},
			"rel":         {Kind: RuleList, Count: ListManyUnique, Desc: "Relationship to the current document."},
			"media":       {Kind: RuleAny, Desc: "Applicable media."},
			"type":        {Kind: RuleMIME, Desc: "MIME type of the linked resource."},
			"crossorigin": {Kind: RuleCORS, Desc: "CORS mode for fetching the resource."},
			"as":          {Kind: RuleAny, Desc: "Potential destination for a preload request."},
			"sizes":       {Kind: RuleAny, Desc: "Icon sizes."},
			"integrity":   {Kind: RuleAny, Desc: "Subresource integrity metadata."},
			"disabled":    {Kind: RuleBool, Desc: "Disables the linked stylesheet."},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Links the document to an external resource.",
	})
	define(KindMeta, "meta", ElementInfo{
		Model: Model{Categories: CatMetadata, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"name":       {Kind: RuleAny, Desc: "Metadata name."},
			"content":    {Kind: RuleAny, Desc: "Metadata value."},
			"charset":    {Kind: RuleAny, Desc: "Document character encoding."},
			"http-equiv": {Kind: RuleList, Set: []string{"content-type", "default-style", "refresh", "x-ua-compatible", "content-security-policy"}, Desc: "Pragma directive."},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Represents document-level metadata.",
	})
	define(KindStyle, "style", ElementInfo{
		Model: Model{Categories: CatMetadata, Content: CatText},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"media": {Kind: RuleAny, Desc: "Applicable media."},
			"title": {Kind: RuleAny, Desc: "Alternative stylesheet name."},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Embeds CSS for the document.",
	})
	define(KindTemplate, "template", ElementInfo{
		Model:   Model{Categories: CatMetadata | CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"shadowrootmode": {Kind: RuleList, Set: []string{"open", "closed"}}}},
		Content: ContentSpec{Kind: ContentAnything},
		Desc:    "Holds inert template content not rendered until cloned.",
	})
}

func defineSectioningAndHeading() {
	define(KindHgroup, "hgroup", ElementInfo{
		Model: Model{Categories: CatFlow | CatHeading, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{
			ExtraChildren: []ElementKind{KindH1, KindH2, KindH3, KindH4, KindH5, KindH6, KindP},
		}},
		Desc: "Groups a heading with its subheadings.",
	})
	define(KindMain, "main", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "The document's dominant content; at most one per document, and never nested inside sectioning content.",
	})
}

func defineGrouping() {
	define(KindP, "p", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatPhrasing},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A paragraph.",
	})
	define(KindHr, "hr", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A thematic break.",
	})
	define(KindPre, "pre", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatPhrasing},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "Preformatted text; whitespace is preserved verbatim.",
	})
	defineLists()
}

func defineLists() {
	listItem := ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindLi}}}
	define(KindOl, "ol", ElementInfo{
		Model: Model{Categories: CatFlow, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"reversed": {Kind: RuleBool, Desc: "Numbers the list backwards."},
			"start":    {Kind: RuleNonNegInt, Desc: "Starting value of the list."},
			"type":     {Kind: RuleList, Set: []string{"1", "a", "A", "i", "I"}, Desc: "Numbering style."},
		}},
		Content: listItem,
		Desc:    "An ordered list.",
	})
	define(KindUl, "ul", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: listItem,
		Desc:    "An unordered list.",
	})
	define(KindMenu, "menu", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: listItem,
		Desc:    "A list of commands; rendered like ul.",
	})
	define(KindLi, "li", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"value": {Kind: RuleNonNegInt, Desc: "Ordinal value, only meaningful inside ol."}}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A list item.",
	})
	define(KindDl, "dl", ElementInfo{
		Model: Model{Categories: CatFlow, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{
			ExtraChildren: []ElementKind{KindDt, KindDd, KindDiv},
		}},
		Desc: "A description list.",
	})
	define(KindDt, "dt", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ForbiddenDescendants: []ElementKind{KindHeader, KindFooter}}},
		Desc:    "A term in a description list.",
	})
	define(KindDd, "dd", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "The description for the preceding dt.",
	})
}

func defineTextLevel() {
	define(KindA, "a", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsDynamic, Dynamic: dynamicA},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{
			ForbiddenDescendants: []ElementKind{KindA},
		}},
		Desc: "A hyperlink, interactive only when it carries href.",
	})
	define(KindBr, "br", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A line break.",
	})
	define(KindWbr, "wbr", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A word-break opportunity.",
	})
}

func dynamicA(base Model, attrs []ParsedAttr) (Model, []dynamicAttrDiag) {
	m := base
	var diags []dynamicAttrDiag
	hasHref := false
	for _, at := range attrs {
		switch at.Name {
		case "href":
			hasHref = true
			if k, reason, ok := (AttrRule{Kind: RuleURL, URLAllowEmpty: true}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "target", "download", "ping", "rel", "referrerpolicy":
			// any value accepted; rel gets light validation below
			if at.Name == "rel" {
				if k, reason, ok := (AttrRule{Kind: RuleList, Count: ListManyUnique}).accepts(at.Value, at.Present); !ok {
					diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
				}
			}
		case "hreflang":
			if k, reason, ok := (AttrRule{Kind: RuleLang}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "type":
			if k, reason, ok := (AttrRule{Kind: RuleMIME}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		default:
			if r, ok := resolveAttrRule(KindA, at.Name); ok {
				if k, reason, ok := r.accepts(at.Value, at.Present); !ok {
					diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
				}
			} else {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: DiagInvalidAttr})
			}
		}
	}
	if hasHref {
		m.Categories = m.Categories.Merge(CatInteractive)
	}
	return m, diags
}

func defineEmbedded() {
	define(KindImg, "img", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsDynamic, Dynamic: dynamicImg},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "An embedded image; interactive only when it carries usemap.",
	})
	define(KindPicture, "picture", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{
			ExtraChildren: []ElementKind{KindSource, KindImg},
		}},
		Desc: "Container offering multiple image sources.",
	})
	define(KindSource, "source", ElementInfo{
		Model: Model{Categories: 0, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"src":    {Kind: RuleURL, Desc: "Address of the media resource."},
			"srcset": {Kind: RuleAny, Desc: "Candidate image sources."},
			"sizes":  {Kind: RuleAny, Desc: "Image sizes."},
			"media":  {Kind: RuleAny, Desc: "Applicable media."},
			"type":   {Kind: RuleMIME, Desc: "MIME type."},
			"width":  {Kind: RuleNonNegInt, Desc: "Intrinsic width."},
			"height": {Kind: RuleNonNegInt, Desc: "Intrinsic height."},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "One candidate media source for a picture/video/audio.",
	})
	define(KindTrack, "track", ElementInfo{
		Model: Model{Categories: 0, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"kind":    {Kind: RuleList, Set: []string{"subtitles", "captions", "descriptions", "chapters", "metadata"}},
			"src":     {Kind: RuleURL},
			"srclang": {Kind: RuleLang},
			"label":   {Kind: RuleAny},
			"default": {Kind: RuleBool},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A timed text track for a media element.",
	})
	media := func(name string) AttrsSpec {
		return AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"src":         {Kind: RuleURL},
			"crossorigin": {Kind: RuleCORS},
			"preload":     {Kind: RuleList, Set: []string{"none", "metadata", "auto", ""}},
			"autoplay":    {Kind: RuleBool},
			"loop":        {Kind: RuleBool},
			"muted":       {Kind: RuleBool},
			"controls":    {Kind: RuleBool},
		}}
	}
	define(KindVideo, "video", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatFlow},
		Attrs:   media("video"),
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindSource, KindTrack}}},
		Desc:    "An embedded video.",
	})
	define(KindAudio, "audio", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatFlow},
		Attrs:   media("audio"),
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindSource, KindTrack}}},
		Desc:    "An embedded audio clip.",
	})
	define(KindIframe, "iframe", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"src":             {Kind: RuleURL},
			"srcdoc":          {Kind: RuleAny},
			"name":            {Kind: RuleAny},
			"sandbox":         {Kind: RuleList, Count: ListManyUnique, Set: []string{"allow-forms", "allow-modals", "allow-popups", "allow-same-origin", "allow-scripts", "allow-top-navigation"}},
			"allow":           {Kind: RuleAny},
			"allowfullscreen": {Kind: RuleBool},
			"width":           {Kind: RuleNonNegInt},
			"height":          {Kind: RuleNonNegInt},
			"loading":         {Kind: RuleList, Set: []string{"eager", "lazy"}},
			"referrerpolicy":  {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A nested browsing context.",
	})
	define(KindEmbed, "embed", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"src": {Kind: RuleURL}, "type": {Kind: RuleMIME},
			"width": {Kind: RuleNonNegInt}, "height": {Kind: RuleNonNegInt},
		}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "An integration point for external content/plugins.",
	})
	define(KindObject, "object", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"data": {Kind: RuleURL}, "type": {Kind: RuleMIME}, "name": {Kind: RuleAny},
			"width": {Kind: RuleNonNegInt}, "height": {Kind: RuleNonNegInt}, "form": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindParam}}},
		Desc:    "A generic external resource embed.",
	})
	define(KindParam, "param", ElementInfo{
		Model:   Model{Categories: 0, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"name": {Kind: RuleNotEmpty}, "value": {Kind: RuleAny}}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A parameter for an object element.",
	})
	define(KindCanvas, "canvas", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"width": {Kind: RuleNonNegInt}, "height": {Kind: RuleNonNegInt}}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A bitmap canvas for scripted rendering.",
	})
	define(KindMapElem, "map", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"name": {Kind: RuleNotEmpty}}},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A client-side image-map definition.",
	})
	define(KindArea, "area", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsDynamic, Dynamic: dynamicArea},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "One region of an image map.",
	})
	define(KindSvg, "svg", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsManual},
		Content: ContentSpec{Kind: ContentAnything},
		Desc:    "Root of an embedded SVG subtree.",
	})
	define(KindMath, "math", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsManual},
		Content: ContentSpec{Kind: ContentAnything},
		Desc:    "Root of an embedded MathML subtree.",
	})
}

func dynamicImg(base Model, attrs []ParsedAttr) (Model, []dynamicAttrDiag) {
	m := base
	var diags []dynamicAttrDiag
	hasAlt := false
	hasUsemap := false
	hasSrcset := false
	sizesAuto := false
	for _, at := range attrs {
		switch at.Name {
		case "src":
			if k, reason, ok := (AttrRule{Kind: RuleURL}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "alt":
			hasAlt = at.Present
		case "usemap":
			hasUsemap = at.Present && at.Value != ""
		case "srcset":
			hasSrcset = at.Present && at.Value != ""
		case "sizes":
			sizesAuto = at.Present && (at.Value == "auto" || strings.HasPrefix(at.Value, "auto,"))
		case "width", "height":
			if k, reason, ok := (AttrRule{Kind: RuleNonNegInt}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "crossorigin":
			if k, reason, ok := (AttrRule{Kind: RuleCORS}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "loading":
			if k, reason, ok := (AttrRule{Kind: RuleList, Set: []string{"eager", "lazy"}}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "decoding":
			if k, reason, ok := (AttrRule{Kind: RuleList, Set: []string{"sync", "async", "auto"}}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		default:
			if r, ok := resolveAttrRule(KindImg, at.Name); ok {
				if k, reason, ok := r.accepts(at.Value, at.Present); !ok {
					diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
				}
			} else {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: DiagInvalidAttr})
			}
		}
	}
	if !hasAlt {
		diags = append(diags, dynamicAttrDiag{Name: "alt", Kind: DiagMissingRequiredAttr})
	}
	if hasUsemap {
		m.Categories = m.Categories.Merge(CatInteractive)
	}
	m.Extra.ImgAutosizesAllowed = hasSrcset && sizesAuto
	return m, diags
}

// dynamicArea validates <area>'s attributes and, since alt is only required
// of an area that's actually a hyperlink (has href), tracks both to decide
// whether to report a missing alt.
func dynamicArea(base Model, attrs []ParsedAttr) (Model, []dynamicAttrDiag) {
	m := base
	var diags []dynamicAttrDiag
	hasAlt := false
	hasHref := false
	for _, at := range attrs {
		switch at.Name {
		case "alt":
			hasAlt = at.Present
		case "href":
			hasHref = at.Present
			if k, reason, ok := (AttrRule{Kind: RuleURL}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "shape":
			if k, reason, ok := (AttrRule{Kind: RuleList, Set: []string{"rect", "circle", "poly", "default"}}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "coords", "target", "download":
			// RuleAny: nothing to reject.
		default:
			if r, ok := resolveAttrRule(KindArea, at.Name); ok {
				if k, reason, ok := r.accepts(at.Value, at.Present); !ok {
					diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
				}
			} else {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: DiagInvalidAttr})
			}
		}
	}
	if hasHref && !hasAlt {
		diags = append(diags, dynamicAttrDiag{Name: "alt", Kind: DiagMissingRequiredAttr})
	}
	return m, diags
}

func defineTabular() {
	define(KindTable, "table", ElementInfo{
		Model: Model{Categories: CatFlow, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentCustom,
			Validate: tableChildValidate,
			Complete: func(a *Ast, parent uint32) []ElementKind {
				return []ElementKind{KindCaption, KindColgroup, KindThead, KindTbody, KindTfoot, KindTr}
			},
		},
		Desc: "Tabular data.",
	})
	define(KindCaption, "caption", ElementInfo{
		Model: Model{Categories: 0, Content: CatFlow}, Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A table's title.",
	})
	define(KindColgroup, "colgroup", ElementInfo{
		Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"span": {Kind: RuleNonNegInt, Min: 1}}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindCol}}},
		Desc:    "Groups columns for styling.",
	})
	define(KindCol, "col", ElementInfo{
		Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"span": {Kind: RuleNonNegInt, Min: 1}}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "One column in a colgroup.",
	})
	rowGroup := ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindTr}}}
	define(KindThead, "thead", ElementInfo{Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic}, Content: rowGroup, Desc: "The table's header row group."})
	define(KindTbody, "tbody", ElementInfo{Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic}, Content: rowGroup, Desc: "A table body row group."})
	define(KindTfoot, "tfoot", ElementInfo{Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic}, Content: rowGroup, Desc: "The table's footer row group."})
	define(KindTr, "tr", ElementInfo{
		Model: Model{Categories: 0, Content: 0}, Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindTd, KindTh}}},
		Desc:    "A table row.",
	})
	cell := map[string]AttrRule{
		"colspan": {Kind: RuleNonNegInt, Min: 1, Max: 1000},
		"rowspan": {Kind: RuleNonNegInt, Max: 65534},
		"headers": {Kind: RuleList, Count: ListManyUnique},
	}
	define(KindTd, "td", ElementInfo{Model: Model{Categories: 0, Content: CatFlow}, Attrs: AttrsSpec{Kind: AttrsStatic, Static: cell}, Content: ContentSpec{Kind: ContentModel}, Desc: "A table data cell."})
	define(KindTh, "th", ElementInfo{
		Model: Model{Categories: 0, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: mergeAttrRules(cell, map[string]AttrRule{
			"scope": {Kind: RuleList, Set: []string{"row", "col", "rowgroup", "colgroup", ""}},
			"abbr":  {Kind: RuleAny},
		})},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A table header cell.",
	})
}

func mergeAttrRules(a, b map[string]AttrRule) map[string]AttrRule {
	out := make(map[string]AttrRule, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func tableChildValidate(a *Ast, parent, child uint32) (DiagnosticKind, string, bool) {
	switch a.Nodes[child].Kind {
	case KindCaption, KindColgroup, KindThead, KindTbody, KindTfoot, KindTr, KindComment:
		return 0, "", true
	default:
		return DiagInvalidNesting, "table only contains caption, colgroup, thead/tbody/tfoot or tr", false
	}
}

func defineForms() {
	define(KindForm, "form", ElementInfo{
		Model: Model{Categories: CatFlow, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"action":         {Kind: RuleURL, URLAllowEmpty: true},
			"method":         {Kind: RuleList, Set: []string{"get", "post", "dialog"}},
			"enctype":        {Kind: RuleMIME},
			"target":         {Kind: RuleAny},
			"name":           {Kind: RuleNotEmpty},
			"autocomplete":   {Kind: RuleList, Set: []string{"on", "off"}},
			"novalidate":     {Kind: RuleBool},
			"rel":            {Kind: RuleList, Count: ListManyUnique},
			"accept-charset": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A form for user input.",
	})
	define(KindLabel, "label", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"for": {Kind: RuleID}}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ForbiddenDescendants: []ElementKind{KindLabel}}},
		Desc:    "A caption for a form control.",
	})
	define(KindFieldset, "fieldset", ElementInfo{
		Model: Model{Categories: CatFlow, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"disabled": {Kind: RuleBool}, "form": {Kind: RuleAny}, "name": {Kind: RuleNotEmpty},
		}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindLegend}}},
		Desc:    "Groups related form controls.",
	})
	define(KindLegend, "legend", ElementInfo{
		Model: Model{Categories: 0, Content: CatPhrasing}, Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel}, Desc: "The caption for a fieldset.",
	})
	define(KindInput, "input", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsDynamic, Dynamic: dynamicInput},
		Content: ContentSpec{Kind: ContentModel},
		Desc:    "A form input control; accepted attributes depend on type.",
	})
	define(KindButton, "button", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"type":     {Kind: RuleList, Set: []string{"submit", "reset", "button"}},
			"disabled": {Kind: RuleBool}, "form": {Kind: RuleAny}, "name": {Kind: RuleAny}, "value": {Kind: RuleAny},
			"formaction": {Kind: RuleURL, URLAllowEmpty: true}, "formmethod": {Kind: RuleList, Set: []string{"get", "post"}},
			"formnovalidate": {Kind: RuleBool}, "formtarget": {Kind: RuleAny}, "popovertarget": {Kind: RuleID},
			"popovertargetaction": {Kind: RuleList, Set: []string{"toggle", "show", "hide"}},
		}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ForbiddenDescendants: []ElementKind{KindA, KindButton}}},
		Desc:    "A clickable button.",
	})
	define(KindSelect, "select", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: 0},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"multiple": {Kind: RuleBool}, "required": {Kind: RuleBool}, "disabled": {Kind: RuleBool},
			"name": {Kind: RuleAny}, "form": {Kind: RuleAny},
			"size": {Kind: RuleNonNegInt, Min: 0},
			"autocomplete": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindOption, KindOptgroup, KindHr}}},
		Desc:    "A drop-down list of options.",
	})
	define(KindDatalist, "datalist", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindOption}}},
		Desc:    "A list of suggested values for an input.",
	})
	define(KindOptgroup, "optgroup", ElementInfo{
		Model:   Model{Categories: 0, Content: 0},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"label": {Kind: RuleNotEmpty}, "disabled": {Kind: RuleBool}}},
		Content: ContentSpec{Kind: ContentSimple, Simple: &SimpleContentSpec{ExtraChildren: []ElementKind{KindOption}}},
		Desc:    "Groups related options in a select.",
	})
	define(KindOption, "option", ElementInfo{
		Model: Model{Categories: 0, Content: CatText},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"value": {Kind: RuleAny}, "selected": {Kind: RuleBool}, "disabled": {Kind: RuleBool}, "label": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "An item in a select/datalist/optgroup.",
	})
	define(KindTextarea, "textarea", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing | CatInteractive, Content: CatText},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"rows": {Kind: RuleNonNegInt, Min: 1}, "cols": {Kind: RuleNonNegInt, Min: 1},
			"maxlength": {Kind: RuleNonNegInt}, "minlength": {Kind: RuleNonNegInt},
			"placeholder": {Kind: RuleAny}, "required": {Kind: RuleBool}, "readonly": {Kind: RuleBool},
			"disabled": {Kind: RuleBool}, "name": {Kind: RuleAny}, "form": {Kind: RuleAny},
			"wrap": {Kind: RuleList, Set: []string{"soft", "hard"}},
			"autocomplete": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A multi-line plain-text edit control.",
	})
	define(KindProgress, "progress", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"value": {Kind: RuleAny}, "max": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "Progress of a task.",
	})
	define(KindMeter, "meter", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"value": {Kind: RuleAny}, "min": {Kind: RuleAny}, "max": {Kind: RuleAny},
			"low": {Kind: RuleAny}, "high": {Kind: RuleAny}, "optimum": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A scalar measurement within a known range.",
	})
	define(KindOutput, "output", ElementInfo{
		Model: Model{Categories: CatFlow | CatPhrasing, Content: CatPhrasing},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"for": {Kind: RuleList}, "form": {Kind: RuleAny}, "name": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "The result of a calculation or user action.",
	})
}

var inputTypes = []string{
	"text", "password", "email", "url", "tel", "number", "range", "date", "month",
	"week", "time", "datetime-local", "search", "color", "checkbox", "radio",
	"file", "submit", "reset", "button", "hidden", "image",
}

func dynamicInput(base Model, attrs []ParsedAttr) (Model, []dynamicAttrDiag) {
	m := base
	var diags []dynamicAttrDiag
	typ := "text"
	for _, at := range attrs {
		if at.Name == "type" && at.Present {
			typ = strings.ToLower(at.Value)
		}
	}
	typeOK := containsStr(inputTypes, typ)
	for _, at := range attrs {
		switch at.Name {
		case "type":
			if !typeOK {
				diags = append(diags, dynamicAttrDiag{Name: "type", Kind: DiagInvalidAttrValue, Reason: "unrecognized input type \"" + at.Value + "\""})
			}
		case "checked", "disabled", "readonly", "required", "multiple", "autofocus":
			if k, reason, ok := (AttrRule{Kind: RuleBool}).accepts(at.Value, at.Present); !ok {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
			}
		case "src":
			if typ != "image" {
				diags = append(diags, dynamicAttrDiag{Name: "src", Kind: DiagInvalidAttrCombination, Reason: "only valid on type=\"image\""})
			}
		case "accept", "value", "placeholder", "pattern", "name", "form", "list", "autocomplete",
			"min", "max", "step", "size", "dirname", "formaction", "formmethod", "formtarget",
			"formnovalidate", "formenctype", "alt", "maxlength", "minlength", "width", "height":
			// accepted broadly; deep per-type cross-validation (e.g. which
			// of these apply to which input type) is out of scope for this
			// catalog
		default:
			if r, ok := resolveAttrRule(KindInput, at.Name); ok {
				if k, reason, ok := r.accepts(at.Value, at.Present); !ok {
					diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: k, Reason: reason})
				}
			} else {
				diags = append(diags, dynamicAttrDiag{Name: at.Name, Kind: DiagInvalidAttr})
			}
		}
	}
	return m, diags
}

func defineInteractive() {
	define(KindDetails, "details", ElementInfo{
		Model: Model{Categories: CatFlow | CatInteractive, Content: CatFlow},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"open": {Kind: RuleBool}, "name": {Kind: RuleAny}}},
		Content: ContentSpec{Kind: ContentCustom,
			Validate: func(a *Ast, parent, child uint32) (DiagnosticKind, string, bool) {
				if a.Nodes[child].Kind == KindSummary {
					for c := a.Nodes[parent].FirstChild; c != 0; c = a.Nodes[c].NextSib {
						if c != child && a.Nodes[c].Kind == KindSummary {
							return DiagDuplicateChild, "details accepts only one summary", false
						}
					}
				}
				return 0, "", true
			},
			Complete: func(a *Ast, parent uint32) []ElementKind { return []ElementKind{KindSummary} },
		},
		Desc: "A disclosure widget.",
	})
	define(KindSummary, "summary", ElementInfo{
		Model: Model{Categories: 0, Content: CatPhrasing}, Attrs: AttrsSpec{Kind: AttrsStatic},
		Content: ContentSpec{Kind: ContentModel}, Desc: "The summary/caption for a details element.",
	})
	define(KindDialog, "dialog", ElementInfo{
		Model:   Model{Categories: CatFlow, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"open": {Kind: RuleBool}}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A dialog box or window.",
	})
	define(KindSlot, "slot", ElementInfo{
		Model:   Model{Categories: CatFlow | CatPhrasing, Content: CatFlow},
		Attrs:   AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{"name": {Kind: RuleAny}}},
		Content: ContentSpec{Kind: ContentModel}, Desc: "A shadow-DOM content placeholder.",
	})
}

func defineScripting() {
	define(KindScript, "script", ElementInfo{
		Model: Model{Categories: CatMetadata, Content: CatText},
		Attrs: AttrsSpec{Kind: AttrsStatic, Static: map[string]AttrRule{
			"src":         {Kind: RuleURL},
			"type":        {Kind: RuleMIME},
			"async":       {Kind: RuleBool},
			"defer":       {Kind: RuleBool},
			"crossorigin": {Kind: RuleCORS},
			"integrity":   {Kind: RuleAny},
			"nomodule":    {Kind: RuleBool},
			"referrerpolicy": {Kind: RuleAny},
		}},
		Content: ContentSpec{Kind: ContentAnything},
		Desc:    "Embeds or references executable script.",
	})
}
