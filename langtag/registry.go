package langtag

import "sort"

// CommonLanguageTags returns the primary language subtags this registry
// knows about, sorted, for use as completion candidates. It excludes
// deprecated subtags and says nothing about extlang/script/region/variant
// combinations a caller might append.
func CommonLanguageTags() []string {
	out := make([]string, 0, len(languageSubtags))
	for tag, info := range languageSubtags {
		if info.deprecated {
			continue
		}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// subtagInfo is the tiny metadata the registry needs: just enough to tell
// "known" from "unknown" and "deprecated" from "current".
// The real IANA registry additionally carries descriptions and
// preferred-value mappings; those aren't read by this module's validator so
// they're omitted rather than carried as dead data.
type subtagInfo struct {
	deprecated bool
}

// languageSubtags: primary language subtags (ISO 639-1/2/3), a
// hand-curated common subset rather than the full IANA registry.
var languageSubtags = map[string]subtagInfo{
	"en": {}, "fr": {}, "de": {}, "es": {}, "pt": {}, "it": {}, "nl": {}, "sv": {},
	"no": {}, "nb": {}, "nn": {}, "da": {}, "fi": {}, "is": {}, "pl": {}, "cs": {},
	"sk": {}, "hu": {}, "ro": {}, "bg": {}, "ru": {}, "uk": {}, "be": {}, "sr": {},
	"hr": {}, "bs": {}, "sl": {}, "mk": {}, "sq": {}, "el": {}, "tr": {}, "he": {},
	"ar": {}, "fa": {}, "ur": {}, "hi": {}, "bn": {}, "pa": {}, "gu": {}, "ta": {},
	"te": {}, "kn": {}, "ml": {}, "mr": {}, "ne": {}, "si": {}, "th": {}, "lo": {},
	"my": {}, "km": {}, "vi": {}, "id": {}, "ms": {}, "tl": {}, "jv": {}, "zh": {},
	"ja": {}, "ko": {}, "mn": {}, "ka": {}, "hy": {}, "az": {}, "kk": {}, "uz": {},
	"tg": {}, "ky": {}, "tk": {}, "am": {}, "ti": {}, "so": {}, "sw": {}, "ha": {},
	"yo": {}, "ig": {}, "zu": {}, "xh": {}, "af": {}, "st": {}, "sn": {}, "rw": {},
	"mg": {}, "eu": {}, "ca": {}, "gl": {}, "cy": {}, "ga": {}, "gd": {}, "br": {},
	"mt": {}, "lb": {}, "fo": {}, "kl": {}, "la": {}, "eo": {}, "vo": {}, "ia": {},
	"lt": {}, "lv": {}, "et": {}, "gv": {}, "kw": {}, "co": {}, "oc": {}, "rm": {},
	"sc": {}, "fy": {},
	// deprecated examples (ISO 639-1 codes withdrawn/merged historically)
	"in": {deprecated: true}, "iw": {deprecated: true}, "ji": {deprecated: true},
	"mo": {deprecated: true},
}

// extlangSubtags: extended language subtags (a small, widely used subset).
var extlangSubtags = map[string]subtagInfo{
	"yue": {}, "cmn": {}, "wuu": {}, "nan": {}, "hak": {}, "gan": {}, "cjy": {},
	"ayl": {deprecated: true},
}

// scriptSubtags: ISO 15924 script codes (common subset), keyed lowercase
// to match the lowercased subtag the validator looks them up with.
var scriptSubtags = map[string]subtagInfo{
	"latn": {}, "cyrl": {}, "grek": {}, "arab": {}, "hebr": {}, "deva": {},
	"beng": {}, "guru": {}, "gujr": {}, "orya": {}, "taml": {}, "telu": {},
	"knda": {}, "mlym": {}, "sinh": {}, "thai": {}, "laoo": {}, "tibt": {},
	"mymr": {}, "geor": {}, "hang": {}, "ethi": {}, "cher": {}, "mong": {},
	"hans": {}, "hant": {}, "jpan": {}, "kore": {}, "armn": {}, "brai": {},
	"zyyy": {}, "zzzz": {},
	"qaai": {deprecated: true},
}

// regionSubtags: ISO 3166-1 alpha-2 and UN M49 region codes (common
// subset), keyed uppercase.
var regionSubtags = map[string]subtagInfo{
	"US": {}, "GB": {}, "CA": {}, "AU": {}, "NZ": {}, "IE": {}, "FR": {}, "DE": {},
	"ES": {}, "PT": {}, "IT": {}, "NL": {}, "BE": {}, "CH": {}, "AT": {}, "SE": {},
	"NO": {}, "DK": {}, "FI": {}, "IS": {}, "PL": {}, "CZ": {}, "SK": {}, "HU": {},
	"RO": {}, "BG": {}, "RU": {}, "UA": {}, "BY": {}, "RS": {}, "HR": {}, "BA": {},
	"SI": {}, "MK": {}, "AL": {}, "GR": {}, "TR": {}, "IL": {}, "SA": {}, "EG": {},
	"IR": {}, "PK": {}, "IN": {}, "BD": {}, "LK": {}, "TH": {}, "LA": {}, "MM": {},
	"VN": {}, "ID": {}, "MY": {}, "PH": {}, "CN": {}, "JP": {}, "KR": {}, "MN": {},
	"GE": {}, "AM": {}, "AZ": {}, "KZ": {}, "UZ": {}, "TJ": {}, "KG": {}, "TM": {},
	"ET": {}, "SO": {}, "KE": {}, "TZ": {}, "NG": {}, "ZA": {}, "MX": {}, "BR": {},
	"AR": {}, "CL": {}, "CO": {}, "PE": {}, "VE": {}, "419": {}, "001": {},
	"UK": {deprecated: true},
}

// variantSubtags: a small set of commonly used variant subtags.
var variantSubtags = map[string]subtagInfo{
	"valencia": {}, "1996": {}, "1901": {}, "fonipa": {}, "fonupa": {},
	"scouse": {}, "biske": {}, "njiva": {}, "osojs": {}, "nedis": {},
	"boont": {deprecated: true},
}

// grandfathered tags short-circuit full-grammar validation: a tag listed
// here is accepted as-is as long as it isn't marked deprecated.
var grandfathered = map[string]subtagInfo{
	"i-klingon":  {},
	"i-lux":      {},
	"i-navajo":   {},
	"i-enochian": {deprecated: true},
	"i-mingo":    {},
	"zh-min":     {deprecated: true},
	"zh-min-nan": {},
	"zh-xiang":   {deprecated: true},
	"art-lojban":  {deprecated: true},
	"cel-gaulish": {deprecated: true},
}
