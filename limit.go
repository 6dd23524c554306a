package htmlhelper

import "strings"

// DefaultEnd is the marker Limit appends when it cuts visible text.
const DefaultEnd = "..."

// Limit truncates s to at most maxLength visible characters, appending
// DefaultEnd when text is cut. See LimitWithEnd.
func Limit(s string, maxLength int) string {
	return LimitWithEnd(s, maxLength, DefaultEnd)
}

// LimitWithEnd truncates the HTML fragment s to at most maxLength
// visible characters and closes every tag still open at the cut point,
// most recently opened first.
//
// Tags do not count towards the length. An entity such as &amp; or a
// multi-byte UTF-8 character counts as one character and is never
// split. end is appended once, only when visible content is dropped.
//
// Malformed markup is passed through: a closing tag with nothing open
// is emitted as-is and ignored.
func LimitWithEnd(s string, maxLength int, end string) string {
	if maxLength <= 0 {
		return ""
	}

	var (
		b       strings.Builder
		open    []string
		printed int
	)
	b.Grow(len(s) + len(end))

	sc := scanner{src: s}
	spent := false
scan:
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}

		switch tok.kind {
		case tokenText:
			if printed+len(tok.raw) > maxLength {
				b.WriteString(tok.raw[:maxLength-printed])
				b.WriteString(end)
				break scan
			}
			b.WriteString(tok.raw)
			printed += len(tok.raw)
		case tokenEntity, tokenHighByte:
			b.WriteString(tok.raw)
			printed++
		case tokenOpenTag:
			b.WriteString(tok.raw)
			open = append(open, tok.name)
		case tokenSelfClosingTag:
			b.WriteString(tok.raw)
		case tokenCloseTag:
			b.WriteString(tok.raw)
			if n := len(open); n > 0 {
				open = open[:n-1]
			}
		}

		// Once the budget is spent the rest of the input is only
		// walked if it holds nothing but tags.
		if !spent && printed >= maxLength {
			spent = true
			if sc.remainingVisible() {
				b.WriteString(end)
				break
			}
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(open[i])
		b.WriteByte('>')
	}
	return b.String()
}
