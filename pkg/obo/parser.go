package obo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/obo2owl/pkg/errors"
)

// maxLineSize bounds a single line; owl-axioms clauses can be long.
const maxLineSize = 16 << 20

// ParseFile parses the OBO file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return parse(f, path)
}

// Parse reads an OBO document from r.
func Parse(r io.Reader) (*Document, error) {
	return parse(r, "")
}

// ParseString parses an OBO document held in memory.
func ParseString(s string) (*Document, error) {
	return parse(strings.NewReader(s), "")
}

type frameKind int

const (
	frameNone frameKind = iota
	frameTerm
	frameTypedef
	frameInstance
)

type parser struct {
	path string
	line int
	doc  *Document

	kind     frameKind
	term     *TermFrame
	typedef  *TypedefFrame
	instance *InstanceFrame
	start    int
}

func parse(r io.Reader, path string) (*Document, error) {
	p := &parser{path: path, doc: &Document{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", p.name())
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func (p *parser) name() string {
	if p.path == "" {
		return "input"
	}
	return p.path
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Path: p.path, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseLine(text string) error {
	text = strings.TrimRight(text, "\r")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "!") {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		if err := p.flush(); err != nil {
			return err
		}
		end := strings.IndexByte(trimmed, ']')
		if end < 0 {
			return p.errorf("unterminated stanza header %q", trimmed)
		}
		p.start = p.line
		switch trimmed[1:end] {
		case "Term":
			p.kind, p.term = frameTerm, &TermFrame{}
		case "Typedef":
			p.kind, p.typedef = frameTypedef, &TypedefFrame{}
		case "Instance":
			p.kind, p.instance = frameInstance, &InstanceFrame{}
		default:
			return p.errorf("unknown stanza %q", trimmed[:end+1])
		}
		return nil
	}

	colon := strings.IndexByte(trimmed, ':')
	if colon <= 0 {
		return p.errorf("expected tag-value pair, got %q", trimmed)
	}
	tag := trimmed[:colon]
	value := strings.TrimSpace(trimmed[colon+1:])

	switch p.kind {
	case frameNone:
		return p.headerClause(tag, value)
	case frameTerm:
		return p.termClause(tag, value)
	case frameTypedef:
		return p.typedefClause(tag, value)
	default:
		return p.instanceClause(tag, value)
	}
}

// flush appends the frame under construction to the document.
func (p *parser) flush() error {
	var frame EntityFrame
	var id Ident
	switch p.kind {
	case frameNone:
		return nil
	case frameTerm:
		frame, id = p.term, p.term.ID
	case frameTypedef:
		frame, id = p.typedef, p.typedef.ID
	case frameInstance:
		frame, id = p.instance, p.instance.ID
	}
	p.kind, p.term, p.typedef, p.instance = frameNone, nil, nil, nil
	if id == nil {
		return &SyntaxError{Path: p.path, Line: p.start, Msg: "frame has no id clause"}
	}
	p.doc.Entities = append(p.doc.Entities, frame)
	return nil
}

// =============================================================================
// Header
// =============================================================================

var treatXrefsByTag = map[string]TreatXrefsKind{
	"treat-xrefs-as-equivalent":                TreatAsEquivalent,
	"treat-xrefs-as-genus-differentia":         TreatAsGenusDifferentia,
	"treat-xrefs-as-reverse-genus-differentia": TreatAsReverseGenusDifferentia,
	"treat-xrefs-as-relationship":              TreatAsRelationship,
	"treat-xrefs-as-is_a":                      TreatAsIsA,
	"treat-xrefs-as-has-subclass":              TreatAsHasSubclass,
}

func (p *parser) headerClause(tag, value string) error {
	if tag == "owl-axioms" {
		p.doc.Header = append(p.doc.Header, &OwlAxiomsClause{Text: unescape(value)})
		return nil
	}

	body, _, _, err := splitTrailing(value)
	if err != nil {
		return p.errorf("%s: %v", tag, err)
	}
	sc := &scanner{s: body}

	var clause HeaderClause
	switch tag {
	case "format-version":
		clause = &FormatVersionClause{Version: unescape(body)}
	case "data-version":
		clause = &DataVersionClause{Version: unescape(body)}
	case "date":
		d, err := parseNaiveDateTime(body)
		if err != nil {
			return p.errorf("date: %v", err)
		}
		clause = &DateClause{Date: d}
	case "saved-by":
		clause = &SavedByClause{Name: unescape(body)}
	case "auto-generated-by":
		clause = &AutoGeneratedByClause{Name: unescape(body)}
	case "import":
		id, err := sc.ident()
		if err != nil {
			return p.errorf("import: %v", err)
		}
		clause = &ImportClause{Import: id}
	case "subsetdef":
		id, err := sc.ident()
		if err != nil {
			return p.errorf("subsetdef: %v", err)
		}
		desc, err := sc.quoted()
		if err != nil {
			return p.errorf("subsetdef: %v", err)
		}
		clause = &SubsetdefClause{Subset: id, Desc: desc}
	case "synonymtypedef":
		id, err := sc.ident()
		if err != nil {
			return p.errorf("synonymtypedef: %v", err)
		}
		desc, err := sc.quoted()
		if err != nil {
			return p.errorf("synonymtypedef: %v", err)
		}
		c := &SynonymTypedefClause{Type: id, Desc: desc}
		if tok := sc.token(""); tok != "" {
			scope, err := ParseSynonymScope(tok)
			if err != nil {
				return p.errorf("synonymtypedef: %v", err)
			}
			c.Scope = &scope
		}
		clause = c
	case "default-namespace":
		id, err := sc.ident()
		if err != nil {
			return p.errorf("default-namespace: %v", err)
		}
		clause = &DefaultNamespaceClause{Namespace: id}
	case "namespace-id-rule":
		clause = &NamespaceIDRuleClause{Rule: unescape(body)}
	case "idspace":
		prefix := unescape(sc.token(""))
		url := sc.token("")
		if prefix == "" || url == "" {
			return p.errorf("idspace: expected prefix and URL")
		}
		c := &IdspaceClause{Prefix: prefix, URL: unescape(url)}
		if sc.skipSpace(); sc.peek() == '"' {
			if c.Desc, err = sc.quoted(); err != nil {
				return p.errorf("idspace: %v", err)
			}
		}
		clause = c
	case "property_value":
		pv, err := parsePropertyValue(sc)
		if err != nil {
			return p.errorf("property_value: %v", err)
		}
		clause = &HeaderPropertyValueClause{Value: pv}
	case "remark":
		clause = &RemarkClause{Text: unescape(body)}
	case "ontology":
		clause = &OntologyClause{Name: unescape(body)}
	default:
		kind, ok := treatXrefsByTag[tag]
		if !ok {
			clause = &UnreservedClause{Key: tag, Value: unescape(body)}
			break
		}
		c := &TreatXrefsClause{Kind: kind, Prefix: unescape(sc.token(""))}
		if c.Prefix == "" {
			return p.errorf("%s: expected idspace prefix", tag)
		}
		switch kind {
		case TreatAsRelationship, TreatAsGenusDifferentia, TreatAsReverseGenusDifferentia:
			if c.Relation, err = sc.ident(); err != nil {
				return p.errorf("%s: %v", tag, err)
			}
		}
		switch kind {
		case TreatAsGenusDifferentia, TreatAsReverseGenusDifferentia:
			if c.Filler, err = sc.ident(); err != nil {
				return p.errorf("%s: %v", tag, err)
			}
		}
		clause = c
	}
	p.doc.Header = append(p.doc.Header, clause)
	return nil
}

// =============================================================================
// Frames
// =============================================================================

func (p *parser) termClause(tag, value string) error {
	body, quals, comment, err := splitTrailing(value)
	if err != nil {
		return p.errorf("%s: %v", tag, err)
	}
	if tag == "id" {
		if p.term.ID, err = (&scanner{s: body}).ident(); err != nil {
			return p.errorf("id: %v", err)
		}
		return nil
	}

	var clause TermClause
	if tag == "intersection_of" {
		sc := &scanner{s: body}
		first, err := sc.ident()
		if err != nil {
			return p.errorf("intersection_of: %v", err)
		}
		c := &IntersectionOfClause{Target: first}
		if tok := sc.token(""); tok != "" {
			c.Relation, c.Target = first, ParseIdent(tok)
		}
		clause = c
	} else {
		shared, err := parseEntityClause(tag, body)
		if err != nil {
			return p.errorf("%s: %v", tag, err)
		}
		if shared == nil {
			return p.errorf("unknown term clause %q", tag)
		}
		clause = shared.(TermClause)
	}
	p.term.Clauses = append(p.term.Clauses, Line[TermClause]{Clause: clause, Qualifiers: quals, Comment: comment})
	return nil
}

func (p *parser) typedefClause(tag, value string) error {
	body, quals, comment, err := splitTrailing(value)
	if err != nil {
		return p.errorf("%s: %v", tag, err)
	}
	sc := &scanner{s: body}
	if tag == "id" {
		if p.typedef.ID, err = sc.ident(); err != nil {
			return p.errorf("id: %v", err)
		}
		return nil
	}

	clause, err := parseTypedefClause(tag, body, sc)
	if err != nil {
		return p.errorf("%s: %v", tag, err)
	}
	if clause == nil {
		shared, err := parseEntityClause(tag, body)
		if err != nil {
			return p.errorf("%s: %v", tag, err)
		}
		if shared == nil {
			return p.errorf("unknown typedef clause %q", tag)
		}
		clause = shared.(TypedefClause)
	}
	p.typedef.Clauses = append(p.typedef.Clauses, Line[TypedefClause]{Clause: clause, Qualifiers: quals, Comment: comment})
	return nil
}

func (p *parser) instanceClause(tag, value string) error {
	body, quals, comment, err := splitTrailing(value)
	if err != nil {
		return p.errorf("%s: %v", tag, err)
	}
	if tag == "id" {
		if p.instance.ID, err = (&scanner{s: body}).ident(); err != nil {
			return p.errorf("id: %v", err)
		}
		return nil
	}
	p.instance.Clauses = append(p.instance.Clauses, Line[RawClause]{
		Clause:     RawClause{Key: tag, Value: body},
		Qualifiers: quals,
		Comment:    comment,
	})
	return nil
}

// parseEntityClause parses the clauses shared by terms and typedefs. It
// returns nil for tags outside that set.
func parseEntityClause(tag, body string) (any, error) {
	sc := &scanner{s: body}
	switch tag {
	case "is_anonymous":
		v, err := parseBool(body)
		return &IsAnonymousClause{Value: v}, err
	case "name":
		return &NameClause{Name: unescape(body)}, nil
	case "namespace":
		id, err := sc.ident()
		return &NamespaceClause{Namespace: id}, err
	case "alt_id":
		id, err := sc.ident()
		return &AltIDClause{ID: id}, err
	case "def":
		text, err := sc.quoted()
		if err != nil {
			return nil, err
		}
		xrefs, err := sc.xrefs()
		if err != nil {
			return nil, err
		}
		return &DefClause{Definition: Definition{Text: text, Xrefs: xrefs}}, nil
	case "comment":
		return &CommentClause{Text: unescape(body)}, nil
	case "subset":
		id, err := sc.ident()
		return &SubsetClause{Subset: id}, err
	case "synonym":
		syn, err := parseSynonym(sc)
		return &SynonymClause{Synonym: syn}, err
	case "xref":
		id, err := sc.ident()
		if err != nil {
			return nil, err
		}
		x := Xref{ID: id}
		if sc.skipSpace(); sc.peek() == '"' {
			if x.Desc, err = sc.quoted(); err != nil {
				return nil, err
			}
		}
		return &XrefClause{Xref: x}, nil
	case "property_value":
		pv, err := parsePropertyValue(sc)
		return &PropertyValueClause{Value: pv}, err
	case "builtin":
		v, err := parseBool(body)
		return &BuiltinClause{Value: v}, err
	case "is_a":
		id, err := sc.ident()
		return &IsAClause{Target: id}, err
	case "union_of":
		id, err := sc.ident()
		return &UnionOfClause{Target: id}, err
	case "equivalent_to":
		id, err := sc.ident()
		return &EquivalentToClause{Target: id}, err
	case "disjoint_from":
		id, err := sc.ident()
		return &DisjointFromClause{Target: id}, err
	case "relationship":
		rel, err := sc.ident()
		if err != nil {
			return nil, err
		}
		target, err := sc.ident()
		return &RelationshipClause{Relation: rel, Target: target}, err
	case "is_obsolete":
		v, err := parseBool(body)
		return &IsObsoleteClause{Value: v}, err
	case "replaced_by":
		id, err := sc.ident()
		return &ReplacedByClause{Target: id}, err
	case "consider":
		id, err := sc.ident()
		return &ConsiderClause{Target: id}, err
	case "created_by":
		return &CreatedByClause{Name: unescape(body)}, nil
	case "creation_date":
		d, err := parseCreationDate(body)
		return &CreationDateClause{Date: d}, err
	}
	return nil, nil
}

// parseTypedefClause parses typedef-only clauses. It returns nil for other
// tags.
func parseTypedefClause(tag, body string, sc *scanner) (TypedefClause, error) {
	rel := func() (Ident, error) { return sc.ident() }
	pair := func() (Ident, Ident, error) {
		a, err := sc.ident()
		if err != nil {
			return nil, nil, err
		}
		b, err := sc.ident()
		return a, b, err
	}
	switch tag {
	case "domain":
		id, err := rel()
		return &DomainClause{Class: id}, err
	case "range":
		id, err := rel()
		return &RangeClause{Class: id}, err
	case "holds_over_chain":
		a, b, err := pair()
		return &HoldsOverChainClause{First: a, Second: b}, err
	case "equivalent_to_chain":
		a, b, err := pair()
		return &EquivalentToChainClause{First: a, Second: b}, err
	case "intersection_of":
		id, err := rel()
		return &RelationIntersectionOfClause{Relation: id}, err
	case "inverse_of":
		id, err := rel()
		return &InverseOfClause{Relation: id}, err
	case "transitive_over":
		id, err := rel()
		return &TransitiveOverClause{Relation: id}, err
	case "disjoint_over":
		id, err := rel()
		return &DisjointOverClause{Relation: id}, err
	case "expand_assertion_to", "expand_expression_to":
		text, err := sc.quoted()
		if err != nil {
			return nil, err
		}
		var xrefs Xrefs
		if sc.skipSpace(); sc.peek() == '[' {
			if xrefs, err = sc.xrefs(); err != nil {
				return nil, err
			}
		}
		if tag == "expand_assertion_to" {
			return &ExpandAssertionToClause{Text: text, Xrefs: xrefs}, nil
		}
		return &ExpandExpressionToClause{Text: text, Xrefs: xrefs}, nil
	}

	flags := map[string]func(bool) TypedefClause{
		"is_anti_symmetric":     func(v bool) TypedefClause { return &IsAntiSymmetricClause{Value: v} },
		"is_cyclic":             func(v bool) TypedefClause { return &IsCyclicClause{Value: v} },
		"is_reflexive":          func(v bool) TypedefClause { return &IsReflexiveClause{Value: v} },
		"is_symmetric":          func(v bool) TypedefClause { return &IsSymmetricClause{Value: v} },
		"is_asymmetric":         func(v bool) TypedefClause { return &IsAsymmetricClause{Value: v} },
		"is_transitive":         func(v bool) TypedefClause { return &IsTransitiveClause{Value: v} },
		"is_functional":         func(v bool) TypedefClause { return &IsFunctionalClause{Value: v} },
		"is_inverse_functional": func(v bool) TypedefClause { return &IsInverseFunctionalClause{Value: v} },
		"is_metadata_tag":       func(v bool) TypedefClause { return &IsMetadataTagClause{Value: v} },
		"is_class_level":        func(v bool) TypedefClause { return &IsClassLevelClause{Value: v} },
	}
	if mk, ok := flags[tag]; ok {
		v, err := parseBool(body)
		if err != nil {
			return nil, err
		}
		return mk(v), nil
	}
	return nil, nil
}

// =============================================================================
// Values
// =============================================================================

func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("expected true or false, got %q", s)
}

func parseSynonym(sc *scanner) (Synonym, error) {
	desc, err := sc.quoted()
	if err != nil {
		return Synonym{}, err
	}
	syn := Synonym{Desc: desc, Scope: ScopeRelated}
	if sc.skipSpace(); sc.peek() != '[' {
		tok := sc.token("[")
		if syn.Scope, err = ParseSynonymScope(tok); err != nil {
			return Synonym{}, err
		}
		if sc.skipSpace(); sc.peek() != '[' && !sc.eof() {
			syn.Type = ParseIdent(sc.token("["))
		}
	}
	if sc.skipSpace(); sc.peek() == '[' {
		if syn.Xrefs, err = sc.xrefs(); err != nil {
			return Synonym{}, err
		}
	}
	return syn, nil
}

func parsePropertyValue(sc *scanner) (PropertyValue, error) {
	rel, err := sc.ident()
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if sc.peek() == '"' {
		value, err := sc.quoted()
		if err != nil {
			return nil, err
		}
		dt := Ident(PrefixedIdent{Prefix: "xsd", Local: "string"})
		if tok := sc.token(""); tok != "" {
			dt = ParseIdent(tok)
		}
		return LiteralPropertyValue{Relation: rel, Value: value, Datatype: dt}, nil
	}
	target := sc.token("")
	if target == "" {
		return nil, fmt.Errorf("expected property value")
	}
	if tok := sc.token(""); tok != "" {
		return LiteralPropertyValue{Relation: rel, Value: unescape(target), Datatype: ParseIdent(tok)}, nil
	}
	return ResourcePropertyValue{Relation: rel, Target: ParseIdent(target)}, nil
}

func parseNaiveDateTime(s string) (NaiveDateTime, error) {
	var d NaiveDateTime
	if _, err := fmt.Sscanf(s, "%d:%d:%d %d:%d", &d.Day, &d.Month, &d.Year, &d.Hour, &d.Minute); err != nil {
		return d, fmt.Errorf("expected dd:MM:yyyy HH:mm, got %q", s)
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 || d.Hour > 23 || d.Minute > 59 {
		return d, fmt.Errorf("date out of range: %q", s)
	}
	return d, nil
}

var isoDateTime = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2})(?:\.(\d+))?)?(Z|[+-]\d{2}:?\d{2})?)?$`)

func parseCreationDate(s string) (CreationDate, error) {
	m := isoDateTime.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid ISO 8601 date %q", s)
	}
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	date := IsoDate{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
	if date.Month < 1 || date.Month > 12 || date.Day < 1 || date.Day > 31 {
		return nil, fmt.Errorf("date out of range: %q", s)
	}
	if m[4] == "" {
		return date, nil
	}
	dt := IsoDateTime{
		Date:     date,
		Hour:     atoi(m[4]),
		Minute:   atoi(m[5]),
		Second:   atoi(m[6]),
		Fraction: m[7],
		Zone:     m[8],
	}
	if len(dt.Zone) == 5 {
		dt.Zone = dt.Zone[:3] + ":" + dt.Zone[3:]
	}
	return dt, nil
}
