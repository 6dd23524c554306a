// Package htmlhelper provides helpers for processing HTML fragments as
// plain strings: length-bounded truncation and XSS cleaning.
//
// # Overview
//
// None of the helpers build a document tree. They scan or rewrite the
// input directly, so they accept any string, never return an error, and
// pass malformed markup through on a best-effort basis.
//
// # Truncation
//
// [Limit] and [LimitWithEnd] cut a fragment down to a number of visible
// characters while keeping its tags balanced:
//   - Tags do not count towards the length
//   - An entity (&amp;, &#65;) or a multi-byte character counts as one
//   - Tags still open at the cut are closed, innermost first
//   - The end marker is appended only when visible text was dropped
//
// # Cleaning
//
// [Clean] neutralises common XSS vectors with an ordered series of
// pattern rewrites:
//   - Entity references are normalised and decoded, keeping &lt; &gt; and
//     &amp; escaped
//   - on* and xmlns* attributes are removed
//   - javascript:, vbscript:, -moz-binding: and data: URLs are rewritten
//     to inert placeholders such as "nojavascript..."
//   - style attributes are removed
//   - Namespaced elements (<ns:name>) are removed
//   - Dangerous elements (script, iframe, object, ...) are removed until
//     none remain
//
// Clean is not a parser. Markup crafted to straddle its rules can get
// through, so pair it with a Content Security Policy.
//
// # Other helpers
//
// [Strip] removes markup and decodes the special-character escapes.
// [NameToID] and [NameToArray] convert form field names in array
// notation (user[location][city]).
//
// # Thread Safety
//
// Every function in this package is safe for concurrent use.
//
// # Example
//
//	summary := htmlhelper.Limit(htmlhelper.Clean(userInput), 200)
package htmlhelper
