package ofn

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokEquals
	tokIRI     // <...>
	tokName    // keyword, CURIE or number
	tokLiteral // "..." with optional ^^datatype or @lang
)

type token struct {
	kind tokenKind
	text string
	// literal suffixes
	datatype *token
	lang     string
	pos      int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) errorf(format string, args ...any) error {
	line := 1 + strings.Count(l.src[:min(l.pos, len(l.src))], "\n")
	return fmt.Errorf("line %d: %s", line, fmt.Sprintf(format, args...))
}

func (l *lexer) skip() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '=', '<', '"', '^', '@':
		return true
	}
	return false
}

func (l *lexer) next() (token, error) {
	l.skip()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}
	switch c := l.src[l.pos]; c {
	case '(':
		l.pos++
		return token{kind: tokOpen, pos: start}, nil
	case ')':
		l.pos++
		return token{kind: tokClose, pos: start}, nil
	case '=':
		l.pos++
		return token{kind: tokEquals, pos: start}, nil
	case '<':
		end := strings.IndexByte(l.src[l.pos:], '>')
		if end < 0 {
			return token{}, l.errorf("unterminated IRI")
		}
		l.pos += end + 1
		return token{kind: tokIRI, text: l.src[start+1 : l.pos-1], pos: start}, nil
	case '"':
		return l.literal()
	}
	for l.pos < len(l.src) && !isDelim(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return token{}, l.errorf("unexpected character %q", l.src[l.pos])
	}
	return token{kind: tokName, text: l.src[start:l.pos], pos: start}, nil
}

func (l *lexer) literal() (token, error) {
	start := l.pos
	l.pos++
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, l.errorf("unterminated literal")
		}
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) {
			b.WriteByte(l.src[l.pos+1])
			l.pos += 2
			continue
		}
		l.pos++
		if c == '"' {
			break
		}
		b.WriteByte(c)
	}
	tok := token{kind: tokLiteral, text: b.String(), pos: start}
	switch {
	case strings.HasPrefix(l.src[l.pos:], "^^"):
		l.pos += 2
		dt, err := l.next()
		if err != nil {
			return token{}, err
		}
		if dt.kind != tokIRI && dt.kind != tokName {
			return token{}, l.errorf("expected datatype after ^^")
		}
		tok.datatype = &dt
	case l.pos < len(l.src) && l.src[l.pos] == '@':
		l.pos++
		s := l.pos
		for l.pos < len(l.src) && !isDelim(l.src[l.pos]) {
			l.pos++
		}
		tok.lang = l.src[s:l.pos]
	}
	return tok, nil
}
