package obo

// AssignNamespaces adds a namespace clause holding the header's
// default-namespace to every entity frame that has none. A document without
// default-namespace is left unchanged; a duplicated one is an error.
func (d *Document) AssignNamespaces() error {
	ns, err := d.Header.DefaultNamespace()
	if err != nil {
		if ce, ok := err.(*CardinalityError); ok && ce.Missing {
			return nil
		}
		return err
	}
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			if !hasClause[*NamespaceClause](f.Clauses) {
				f.Add(&NamespaceClause{Namespace: ns})
			}
		case *TypedefFrame:
			if !hasClause[*NamespaceClause](f.Clauses) {
				f.Add(&NamespaceClause{Namespace: ns})
			}
		case *InstanceFrame:
			found := false
			for _, l := range f.Clauses {
				if l.Clause.Key == "namespace" {
					found = true
					break
				}
			}
			if !found {
				f.Clauses = append(f.Clauses, NewLine(RawClause{Key: "namespace", Value: ns.String()}))
			}
		}
	}
	return nil
}

func hasClause[T any, C any](lines []Line[C]) bool {
	for _, l := range lines {
		if _, ok := any(l.Clause).(T); ok {
			return true
		}
	}
	return false
}

// TreatXrefs expands the treat-xrefs-as-* header macros. Every term xref
// whose prefix is named by a macro produces the clauses the macro stands
// for. Macros asserting something about the xref target (reverse
// genus-differentia, has-subclass) append a frame for that target.
func (d *Document) TreatXrefs() {
	macros := make(map[string][]*TreatXrefsClause)
	for _, c := range d.Header {
		if m, ok := c.(*TreatXrefsClause); ok {
			macros[m.Prefix] = append(macros[m.Prefix], m)
		}
	}
	if len(macros) == 0 {
		return
	}

	var extra []EntityFrame
	for _, e := range d.Entities {
		f, ok := e.(*TermFrame)
		if !ok {
			continue
		}
		var added []TermClause
		for _, l := range f.Clauses {
			x, ok := l.Clause.(*XrefClause)
			if !ok {
				continue
			}
			p, ok := x.Xref.ID.(PrefixedIdent)
			if !ok {
				continue
			}
			for _, m := range macros[p.Prefix] {
				target := x.Xref.ID
				switch m.Kind {
				case TreatAsEquivalent:
					added = append(added, &EquivalentToClause{Target: target})
				case TreatAsGenusDifferentia:
					added = append(added,
						&IntersectionOfClause{Target: target},
						&IntersectionOfClause{Relation: m.Relation, Target: m.Filler},
					)
				case TreatAsReverseGenusDifferentia:
					nf := &TermFrame{ID: target}
					nf.Add(&IntersectionOfClause{Target: f.ID})
					nf.Add(&IntersectionOfClause{Relation: m.Relation, Target: m.Filler})
					extra = append(extra, nf)
				case TreatAsRelationship:
					added = append(added, &RelationshipClause{Relation: m.Relation, Target: target})
				case TreatAsIsA:
					added = append(added, &IsAClause{Target: target})
				case TreatAsHasSubclass:
					nf := &TermFrame{ID: target}
					nf.Add(&IsAClause{Target: f.ID})
					extra = append(extra, nf)
				}
			}
		}
		for _, c := range added {
			f.Add(c)
		}
	}
	d.Entities = append(d.Entities, extra...)
}
