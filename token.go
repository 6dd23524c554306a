package htmlhelper

import "strings"

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenOpenTag
	tokenSelfClosingTag
	tokenCloseTag
	tokenEntity
	tokenHighByte
)

// token is one lexical unit of an HTML fragment. raw always slices the
// source, so concatenating the raw text of every token yields the input.
type token struct {
	kind tokenKind
	raw  string
	name string // tag name, set for tag kinds only
}

func (t token) visible() bool {
	switch t.kind {
	case tokenText, tokenEntity, tokenHighByte:
		return true
	}
	return false
}

// scanner splits markup into tokens without building a tree. It makes a
// single forward pass: tags, character references and runs of bytes
// >= 0x80 are recognised, everything else is text. Text tokens never
// contain bytes >= 0x80.
type scanner struct {
	src string
	pos int

	// noGT is set once no '>' remains after pos, so unterminated '<'
	// runs cannot make the scan quadratic.
	noGT bool
}

func (s *scanner) next() (token, bool) {
	if s.pos >= len(s.src) {
		return token{}, false
	}

	start := s.pos
	switch c := s.src[start]; {
	case c == '<':
		if t, ok := s.tag(); ok {
			return t, true
		}
	case c == '&':
		if n := entityLen(s.src[start:]); n > 0 {
			s.pos += n
			return token{kind: tokenEntity, raw: s.src[start:s.pos]}, true
		}
	case c >= 0x80:
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] >= 0x80 && s.src[s.pos] <= 0xBF {
			s.pos++
		}
		return token{kind: tokenHighByte, raw: s.src[start:s.pos]}, true
	}

	// Text runs up to the next byte that could open another token. A
	// '<' or '&' that failed to start one is kept as text.
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '<' || c == '&' || c >= 0x80 {
			break
		}
		s.pos++
	}
	return token{kind: tokenText, raw: s.src[start:s.pos]}, true
}

// tag scans `<name ...>` or `</name ...>` at s.pos.
func (s *scanner) tag() (token, bool) {
	if s.noGT {
		return token{}, false
	}

	i := s.pos + 1
	closing := i < len(s.src) && s.src[i] == '/'
	if closing {
		i++
	}

	nameStart := i
	if i >= len(s.src) || !isLetter(s.src[i]) {
		return token{}, false
	}
	for i < len(s.src) && (isLetter(s.src[i]) || isDigit(s.src[i])) {
		i++
	}
	name := s.src[nameStart:i]

	gt := strings.IndexByte(s.src[i:], '>')
	if gt < 0 {
		s.noGT = true
		return token{}, false
	}
	end := i + gt + 1
	raw := s.src[s.pos:end]
	s.pos = end

	kind := tokenOpenTag
	switch {
	case closing:
		kind = tokenCloseTag
	case len(raw) >= 2 && raw[len(raw)-2] == '/':
		kind = tokenSelfClosingTag
	}
	return token{kind: kind, raw: raw, name: name}, true
}

// remainingVisible reports whether any text, entity or high byte run
// follows the current position. It does not move the scanner.
func (s *scanner) remainingVisible() bool {
	ahead := *s
	for {
		t, ok := ahead.next()
		if !ok {
			return false
		}
		if t.visible() {
			return true
		}
	}
}

// entityLen returns the length of the character reference `&#?[A-Za-z0-9]+;`
// at the start of s, or 0.
func entityLen(s string) int {
	i := 1
	if i < len(s) && s[i] == '#' {
		i++
	}
	digits := i
	for i < len(s) && (isLetter(s[i]) || isDigit(s[i])) {
		i++
	}
	if i == digits || i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}

func isLetter(c byte) bool { return c|0x20 >= 'a' && c|0x20 <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
