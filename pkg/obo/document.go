package obo

// EntityFrame is a [Term], [Typedef] or [Instance] stanza.
type EntityFrame interface {
	Identifier() Ident
	AcceptEntity(v EntityVisitor) error
}

// EntityVisitor handles every entity frame kind.
type EntityVisitor interface {
	VisitTermFrame(*TermFrame) error
	VisitTypedefFrame(*TypedefFrame) error
	VisitInstanceFrame(*InstanceFrame) error
}

// TermFrame describes a class.
type TermFrame struct {
	ID      Ident
	Clauses []Line[TermClause]
}

func (f *TermFrame) Identifier() Ident                  { return f.ID }
func (f *TermFrame) AcceptEntity(v EntityVisitor) error { return v.VisitTermFrame(f) }

// Add appends a clause without qualifiers.
func (f *TermFrame) Add(c TermClause) {
	f.Clauses = append(f.Clauses, NewLine(c))
}

// TypedefFrame describes a relation.
type TypedefFrame struct {
	ID      Ident
	Clauses []Line[TypedefClause]
}

func (f *TypedefFrame) Identifier() Ident                  { return f.ID }
func (f *TypedefFrame) AcceptEntity(v EntityVisitor) error { return v.VisitTypedefFrame(f) }

// Add appends a clause without qualifiers.
func (f *TypedefFrame) Add(c TypedefClause) {
	f.Clauses = append(f.Clauses, NewLine(c))
}

// IsMetadataTag reports whether the frame has is_metadata_tag: true.
func (f *TypedefFrame) IsMetadataTag() bool {
	for _, l := range f.Clauses {
		if c, ok := l.Clause.(*IsMetadataTagClause); ok && c.Value {
			return true
		}
	}
	return false
}

// IsClassLevel reports whether the frame has is_class_level: true.
func (f *TypedefFrame) IsClassLevel() bool {
	for _, l := range f.Clauses {
		if c, ok := l.Clause.(*IsClassLevelClause); ok && c.Value {
			return true
		}
	}
	return false
}

// RawClause is an instance frame clause kept as tag and raw value.
type RawClause struct {
	Key   string
	Value string
}

// InstanceFrame describes an individual. Its clauses are not interpreted.
type InstanceFrame struct {
	ID      Ident
	Clauses []Line[RawClause]
}

func (f *InstanceFrame) Identifier() Ident                  { return f.ID }
func (f *InstanceFrame) AcceptEntity(v EntityVisitor) error { return v.VisitInstanceFrame(f) }

// Document is a parsed OBO file.
type Document struct {
	Header   Header
	Entities []EntityFrame
}

// Terms returns the term frames in document order.
func (d *Document) Terms() []*TermFrame {
	var out []*TermFrame
	for _, e := range d.Entities {
		if f, ok := e.(*TermFrame); ok {
			out = append(out, f)
		}
	}
	return out
}

// Typedefs returns the typedef frames in document order.
func (d *Document) Typedefs() []*TypedefFrame {
	var out []*TypedefFrame
	for _, e := range d.Entities {
		if f, ok := e.(*TypedefFrame); ok {
			out = append(out, f)
		}
	}
	return out
}
