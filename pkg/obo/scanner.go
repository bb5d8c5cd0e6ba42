package obo

import (
	"fmt"
	"strings"
)

// scanner reads the value part of a tag-value line.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

// rest returns the unread input with surrounding whitespace removed.
func (sc *scanner) rest() string {
	r := strings.TrimSpace(sc.s[sc.pos:])
	sc.pos = len(sc.s)
	return r
}

// quoted reads a double-quoted string and resolves its escapes.
func (sc *scanner) quoted() (string, error) {
	sc.skipSpace()
	if sc.peek() != '"' {
		return "", fmt.Errorf("expected quoted string at %q", sc.s[sc.pos:])
	}
	start := sc.pos + 1
	for i := start; i < len(sc.s); i++ {
		switch sc.s[i] {
		case '\\':
			i++
		case '"':
			sc.pos = i + 1
			return unescape(sc.s[start:i]), nil
		}
	}
	return "", fmt.Errorf("unterminated quoted string")
}

// token reads a run of characters up to whitespace or one of stop.
// Escaped characters never end a token. The raw text is returned.
func (sc *scanner) token(stop string) string {
	sc.skipSpace()
	start := sc.pos
	for !sc.eof() {
		c := sc.s[sc.pos]
		if c == '\\' && sc.pos+1 < len(sc.s) {
			sc.pos += 2
			continue
		}
		if c == ' ' || c == '\t' || strings.IndexByte(stop, c) >= 0 {
			break
		}
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// ident reads one identifier.
func (sc *scanner) ident() (Ident, error) {
	tok := sc.token("")
	if tok == "" {
		return nil, fmt.Errorf("expected identifier")
	}
	return ParseIdent(tok), nil
}

// xrefs reads a bracketed, comma-separated xref list.
func (sc *scanner) xrefs() (Xrefs, error) {
	sc.skipSpace()
	if sc.peek() != '[' {
		return nil, fmt.Errorf("expected xref list")
	}
	sc.pos++
	var out Xrefs
	for {
		sc.skipSpace()
		switch sc.peek() {
		case 0:
			return nil, fmt.Errorf("unterminated xref list")
		case ']':
			sc.pos++
			return out, nil
		case ',':
			sc.pos++
			continue
		}
		tok := sc.token(",]")
		if tok == "" {
			return nil, fmt.Errorf("invalid xref at %q", sc.s[sc.pos:])
		}
		x := Xref{ID: ParseIdent(tok)}
		sc.skipSpace()
		if sc.peek() == '"' {
			desc, err := sc.quoted()
			if err != nil {
				return nil, err
			}
			x.Desc = desc
		}
		out = append(out, x)
	}
}

// splitTrailing separates a raw value into its body, its {qualifier} block
// and its ! comment. Quoted strings and escapes are respected.
func splitTrailing(raw string) (body string, quals Qualifiers, comment string, err error) {
	inQuote := false
	brace := -1
	end := len(raw)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '{':
			brace = i
		case c == '!' && (i == 0 || raw[i-1] == ' ' || raw[i-1] == '\t'):
			end = i
			comment = strings.TrimSpace(raw[i+1:])
			i = len(raw)
		}
	}
	body = strings.TrimSpace(raw[:end])
	if brace >= 0 && brace < end && strings.HasSuffix(body, "}") {
		quals, err = parseQualifiers(body[brace+1 : len(body)-1])
		if err != nil {
			return "", nil, "", err
		}
		body = strings.TrimSpace(body[:brace])
	}
	return body, quals, comment, nil
}

// parseQualifiers reads the inside of a {...} block.
func parseQualifiers(s string) (Qualifiers, error) {
	sc := &scanner{s: s}
	var out Qualifiers
	for {
		sc.skipSpace()
		if sc.eof() {
			return out, nil
		}
		if sc.peek() == ',' {
			sc.pos++
			continue
		}
		key := sc.token("=,")
		sc.skipSpace()
		if key == "" || sc.peek() != '=' {
			return nil, fmt.Errorf("invalid qualifier at %q", s[sc.pos:])
		}
		sc.pos++
		sc.skipSpace()
		var value string
		if sc.peek() == '"' {
			v, err := sc.quoted()
			if err != nil {
				return nil, err
			}
			value = v
		} else {
			value = unescape(sc.token(","))
		}
		out = append(out, Qualifier{Key: unescape(key), Value: value})
	}
}

// unescape resolves OBO backslash escapes.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'W':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
