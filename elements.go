package superhtml

// This file and elements_data.go are the compile-time element catalog.
// ElementKind constants are assigned in one block so the catalog is a
// plain array indexed by (kind - kindElementsStart) rather than a map:
// compile-time data, no per-invocation allocation.
//
// The full named catalog spans the HTML Living Standard's roughly 110
// elements; this module implements the catalog *machinery* completely and
// populates it with a production-shaped subset spanning every category
// and every attributes/content variant.
const (
	KindHTML ElementKind = kindElementsStart + iota
	KindHead
	KindBody
	KindTitle
	KindBase
	KindLink
	KindMeta
	KindStyle
	KindScript
	KindNoscript
	KindTemplate
	KindArticle
	KindSection
	KindNav
	KindAside
	KindH1
	KindH2
	KindH3
	KindH4
	KindH5
	KindH6
	KindHgroup
	KindHeader
	KindFooter
	KindAddress
	KindP
	KindHr
	KindPre
	KindBlockquote
	KindOl
	KindUl
	KindMenu
	KindLi
	KindDl
	KindDt
	KindDd
	KindFigure
	KindFigcaption
	KindMain
	KindDiv
	KindA
	KindEm
	KindStrong
	KindSmall
	KindS
	KindCite
	KindQ
	KindDfn
	KindAbbr
	KindRuby
	KindRt
	KindRp
	KindData
	KindTime
	KindCode
	KindVar
	KindSamp
	KindKbd
	KindSub
	KindSup
	KindI
	KindB
	KindU
	KindMark
	KindBdi
	KindBdo
	KindSpan
	KindBr
	KindWbr
	KindIns
	KindDel
	KindPicture
	KindSource
	KindImg
	KindIframe
	KindXmp
	KindNoembed
	KindNoframes
	KindEmbed
	KindObject
	KindParam
	KindVideo
	KindAudio
	KindTrack
	KindMapElem
	KindArea
	KindSvg
	KindMath
	KindTable
	KindCaption
	KindColgroup
	KindCol
	KindTbody
	KindThead
	KindTfoot
	KindTr
	KindTd
	KindTh
	KindForm
	KindLabel
	KindInput
	KindButton
	KindSelect
	KindDatalist
	KindOptgroup
	KindOption
	KindTextarea
	KindOutput
	KindProgress
	KindMeter
	KindFieldset
	KindLegend
	KindDetails
	KindSummary
	KindDialog
	KindSlot
	KindCanvas
	// deprecated, still recognized so the validator can flag them
	KindApplet
	KindCenter
	KindFont
	KindNobr
	KindAcronym
	KindBig
	KindStrike
	KindTT
	kindElementsEnd
)

// VoidElements never have content or a closing tag (GLOSSARY "Void
// element").
var voidElements = map[ElementKind]bool{
	KindBase: true, KindBr: true, KindCol: true, KindEmbed: true, KindHr: true,
	KindImg: true, KindInput: true, KindLink: true, KindMeta: true,
	KindParam: true, KindSource: true, KindTrack: true, KindWbr: true, KindArea: true,
}

// IsVoid reports whether kind never takes a closing tag.
func (k ElementKind) IsVoid() bool { return voidElements[k] }

// rawTextModeOf switches the tokenizer into raw-text/RCDATA/script-data
// mode after their start tag.
var rawTextModeOf = map[ElementKind]rawTextKind{
	KindScript:   rawScriptData,
	KindStyle:    rawRawText,
	KindTextarea: rawRcData,
	KindTitle:    rawRcData,
	KindXmp:      rawRawText,
	KindIframe:   rawRawText,
	KindNoembed:  rawRawText,
	KindNoframes: rawRawText,
	KindNoscript: rawRawText,
}

// elementNames maps lowercase tag names to kinds, so lookup matches tag
// names case-insensitively against the element table.
var elementNames map[string]ElementKind

func registerElement(name string, kind ElementKind) {
	if elementNames == nil {
		elementNames = make(map[string]ElementKind, int(kindElementsEnd-kindElementsStart))
	}
	elementNames[name] = kind
}
