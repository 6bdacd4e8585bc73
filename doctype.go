// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
// Copyright 2024 Daniel Potapov
// Copyright 2026 adapted for superhtml-core: reworked to classify a
// tokenizer doctype token against the single supported modern form instead
// of building a node with public/system attributes.

package superhtml

import "strings"

// classifyDoctype reports whether tok (a TokenDoctype) is the one doctype
// form this module accepts: "<!DOCTYPE html>", case-insensitively, with no
// PUBLIC/SYSTEM identifiers. Legacy PUBLIC/SYSTEM doctypes are rejected as
// unsupported. On rejection it returns a human-readable reason.
func classifyDoctype(src []byte, tok Token) (ok bool, reason string) {
	if !tok.HasDoctypeName {
		return false, "missing doctype name"
	}
	name := strings.ToLower(tok.DoctypeName.String(src))
	if name != "html" {
		return false, "doctype name must be \"html\""
	}
	extra := strings.TrimSpace(tok.DoctypeExtra.String(src))
	if extra == "" {
		return true, ""
	}
	if len(extra) >= 6 {
		switch strings.ToLower(extra[:6]) {
		case "public", "system":
			return false, "legacy PUBLIC/SYSTEM doctypes are not supported"
		}
	}
	return false, "unexpected content after doctype name"
}
