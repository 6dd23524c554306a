package htmlhelper

import (
	"strings"

	"golang.org/x/net/html"
)

var specialCharsDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&quot;", `"`,
	"&#039;", "'",
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

// Strip removes all HTML tags, comments and doctypes from s and decodes
// the special-character escapes (&amp; &quot; &#039; &lt; &gt;) in the
// remaining text. Other entity references are kept as written. The
// contents of script, style, title, textarea and similar elements are
// read as ordinary markup, so tags inside them are removed as well.
func Strip(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader produces.
			return specialCharsDecoder.Replace(buf.String())
		case html.StartTagToken:
			z.NextIsNotRawText()
		case html.TextToken:
			buf.Write(z.Raw())
		}
	}
}
