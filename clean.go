package htmlhelper

import (
	"regexp"
	"strings"
)

// stage is one rewrite of the Clean pipeline. Stages run in order and
// each one expects the normalisation done by those before it.
type stage struct {
	name    string
	rewrite func(string) string
}

var pipeline = []stage{
	{"escape-entities", escapeEntities},
	{"normalize-entities", normalizeEntities},
	{"decode-entities", decodeEntities},
	{"strip-event-attributes", stripEventAttributes},
	{"neutralize-protocols", neutralizeProtocols},
	{"strip-style-attributes", stripStyleAttributes},
	{"strip-namespaced-tags", stripNamespacedTags},
	{"strip-denied-tags", stripDeniedTags},
}

// Clean rewrites s so that common script injection vectors no longer
// execute: event handler and xmlns attributes, javascript:, vbscript:,
// -moz-binding: and data: URLs, inline styles, namespaced elements and
// a fixed list of dangerous elements such as <script> and <iframe>.
//
// Clean works on patterns, not on a parsed document. It never fails and
// does not try to repair malformed markup; input crafted to straddle its
// rewrite rules can get through.
func Clean(s string) string {
	for _, st := range pipeline {
		s = st.rewrite(s)
	}
	return s
}

// Stages returns the names of the Clean rewrites in the order they run.
func Stages() []string {
	names := make([]string, len(pipeline))
	for i, st := range pipeline {
		names[i] = st.name
	}
	return names
}

var entityEscaper = strings.NewReplacer(
	"&amp;", "&amp;amp;",
	"&lt;", "&amp;lt;",
	"&gt;", "&amp;gt;",
)

// escapeEntities doubles the three escapes that must survive decoding,
// so "&lt;script&gt;" is still text afterwards.
func escapeEntities(s string) string {
	return entityEscaper.Replace(s)
}

var (
	// "&#65  ;" -> "&#65;"
	entitySpaceRegexp = regexp.MustCompile(`(&#*\w+)[\x00-\x20]+;`)
	// "&#65", "&#x41;;" -> "&#65;", "&#x41;"
	entityTermRegexp = regexp.MustCompile(`(?i)(&#x*)([0-9A-F]+);*`)
)

func normalizeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = entitySpaceRegexp.ReplaceAllString(s, "${1};")
	return entityTermRegexp.ReplaceAllString(s, "${1}${2};")
}

// An attribute follows a blank, a quote or a slash. Leading blanks are
// removed with it; a quote or slash is kept. Its value, if any, is
// quoted or runs to the next blank.
const (
	attrHead = `(?i)(?:(["'/])|[\x00-\x20])[\x00-\x20]*`
	attrTail = `[^\x00-\x20=/>"']*(?:[\x00-\x20]*=[\x00-\x20]*(?:"[^"]*"|'[^']*'|` +
		"`[^`]*`" + `|[^\x00-\x20>]*))?`
)

var (
	tagRegexp       = regexp.MustCompile(`<[^>]+>`)
	tagHeadRegexp   = regexp.MustCompile(`^</?[A-Za-z][^\x00-\x20/>]*`)
	eventAttrRegexp = regexp.MustCompile(attrHead + `(?:on|xmlns)` + attrTail)
	styleAttrRegexp = regexp.MustCompile(attrHead + `style` + attrTail)
)

func stripEventAttributes(s string) string {
	return stripAttributes(s, eventAttrRegexp)
}

func stripStyleAttributes(s string) string {
	return stripAttributes(s, styleAttrRegexp)
}

// stripAttributes removes every attribute matched by attr from each tag
// in s. Only the part after the tag name is searched, so the slash of a
// closing tag is never taken for a separator. A removal can consume the
// separator the next match needs, so the attributes are rewritten until
// they stop changing.
func stripAttributes(s string, attr *regexp.Regexp) string {
	return tagRegexp.ReplaceAllStringFunc(s, func(tag string) string {
		n := len(tagHeadRegexp.FindString(tag))
		if n == 0 {
			n = 1
		}
		head, rest := tag[:n], tag[n:]
		for {
			out := attr.ReplaceAllString(rest, "${1}")
			if out == rest {
				return head + out
			}
			rest = out
		}
	})
}

type protocolRule struct {
	re          *regexp.Regexp
	replacement string
}

var protocolRules = []protocolRule{
	{schemeRegexp("javascript", true), "${1}=${2}nojavascript..."},
	{schemeRegexp("vbscript", true), "${1}=${2}novbscript..."},
	{schemeRegexp("-moz-binding", false), "${1}=${2}nomozbinding..."},
	{schemeRegexp("data", false), "${1}=${2}nodata..."},
}

// schemeRegexp builds the pattern for `name = quote scheme:`. Blanks and
// slashes may surround the '=', and blanks, slashes, '|', parentheses and
// numeric character references may precede the scheme. javascript and
// vbscript additionally tolerate blanks between letters.
func schemeRegexp(scheme string, spread bool) *regexp.Regexp {
	var b strings.Builder
	if spread {
		b.WriteString(`(?i)`)
	}
	b.WriteString(`([a-z]*)[\x00-\x20/]*=[\x00-\x20/]*([` + "`" + `'"]*)[\x00-\x20/|(&#\d+;)]*`)
	if spread {
		for i, r := range scheme {
			if i > 0 {
				b.WriteString(`[\x00-\x20]*`)
			}
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	} else {
		b.WriteString(regexp.QuoteMeta(scheme))
	}
	b.WriteString(`[\x00-\x20]*:`)
	return regexp.MustCompile(b.String())
}

func neutralizeProtocols(s string) string {
	for _, r := range protocolRules {
		s = r.re.ReplaceAllString(s, r.replacement)
	}
	return s
}

var namespacedTagRegexp = regexp.MustCompile(`(?i)</*\w+:\w[^>]*>`)

func stripNamespacedTags(s string) string {
	return namespacedTagRegexp.ReplaceAllString(s, "")
}

var deniedTags = []string{
	"applet", "meta", "xml", "blink", "link", "style", "script",
	"embed", "object", "iframe", "frame", "frameset", "ilayer",
	"layer", "bgsound", "title", "base",
}

var deniedTagRegexp = regexp.MustCompile(`(?i)</*(?:` + strings.Join(deniedTags, "|") + `)[^>]*>`)

// stripDeniedTags removes denied tags until a pass changes nothing;
// removing "<script>" from "<scr<script>ipt>" leaves a new one behind.
func stripDeniedTags(s string) string {
	for {
		out := deniedTagRegexp.ReplaceAllString(s, "")
		if out == s {
			return s
		}
		s = out
	}
}
