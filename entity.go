package htmlhelper

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// entityRegexp matches a complete character reference. The trailing
// semicolon is required: bare legacy references such as "&amp" are left
// alone.
var entityRegexp = regexp.MustCompile(`&(?:#[xX][0-9a-fA-F]+|#[0-9]+|[a-zA-Z][a-zA-Z0-9]*);`)

// decodeEntities replaces character references with the characters they
// name. Only the names HTML 4.01 defines are decoded. Single quotes stay
// encoded, and numeric references to code points that may not appear in
// HTML 4.01 text (NUL, most C0 and C1 controls, surrogates,
// non-characters) are not decoded.
func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityRegexp.ReplaceAllStringFunc(s, decodeEntity)
}

func decodeEntity(ref string) string {
	if ref[1] == '#' {
		cp, ok := parseCodePoint(ref[2 : len(ref)-1])
		if !ok || cp == '\'' || !textCodePoint(cp) {
			return ref
		}
		return string(rune(cp))
	}

	name := ref[1 : len(ref)-1]
	if !html401Entities[name] {
		return ref
	}
	if dec, ok := html401Overrides[name]; ok {
		return dec
	}
	return html.UnescapeString(ref)
}

func parseCodePoint(num string) (uint64, bool) {
	base := 10
	if num[0] == 'x' || num[0] == 'X' {
		num, base = num[1:], 16
	}
	cp, err := strconv.ParseUint(num, base, 32)
	if err != nil {
		return 0, false
	}
	return cp, true
}

func textCodePoint(cp uint64) bool {
	switch {
	case cp == 0x09 || cp == 0x0A || cp == 0x0D:
		return true
	case cp >= 0x20 && cp <= 0x7E:
		return true
	case cp >= 0xA0 && cp <= 0xD7FF:
		return true
	case cp >= 0xE000 && cp <= 0x10FFFF:
		return cp&0xFFFF < 0xFFFE && (cp < 0xFDD0 || cp > 0xFDEF)
	}
	return false
}
