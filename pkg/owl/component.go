package owl

// Kind identifies a component type. Kinds are ordered the way components
// are listed in serialized output.
type Kind int

const (
	KindOntologyID Kind = iota
	KindImport
	KindOntologyAnnotation
	KindDeclaration
	KindSubClassOf
	KindEquivalentClasses
	KindDisjointClasses
	KindSubObjectPropertyOf
	KindEquivalentObjectProperties
	KindDisjointObjectProperties
	KindInverseObjectProperties
	KindObjectPropertyDomain
	KindObjectPropertyRange
	KindFunctionalObjectProperty
	KindInverseFunctionalObjectProperty
	KindReflexiveObjectProperty
	KindIrreflexiveObjectProperty
	KindSymmetricObjectProperty
	KindAsymmetricObjectProperty
	KindTransitiveObjectProperty
	KindClassAssertion
	KindObjectPropertyAssertion
	KindSubAnnotationPropertyOf
	KindAnnotationPropertyDomain
	KindAnnotationPropertyRange
	KindAnnotationAssertion
)

var kindNames = [...]string{
	KindOntologyID:                      "OntologyID",
	KindImport:                          "Import",
	KindOntologyAnnotation:              "Annotation",
	KindDeclaration:                     "Declaration",
	KindSubClassOf:                      "SubClassOf",
	KindEquivalentClasses:               "EquivalentClasses",
	KindDisjointClasses:                 "DisjointClasses",
	KindSubObjectPropertyOf:             "SubObjectPropertyOf",
	KindEquivalentObjectProperties:      "EquivalentObjectProperties",
	KindDisjointObjectProperties:        "DisjointObjectProperties",
	KindInverseObjectProperties:         "InverseObjectProperties",
	KindObjectPropertyDomain:            "ObjectPropertyDomain",
	KindObjectPropertyRange:             "ObjectPropertyRange",
	KindFunctionalObjectProperty:        "FunctionalObjectProperty",
	KindInverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	KindReflexiveObjectProperty:         "ReflexiveObjectProperty",
	KindIrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	KindSymmetricObjectProperty:         "SymmetricObjectProperty",
	KindAsymmetricObjectProperty:        "AsymmetricObjectProperty",
	KindTransitiveObjectProperty:        "TransitiveObjectProperty",
	KindClassAssertion:                  "ClassAssertion",
	KindObjectPropertyAssertion:         "ObjectPropertyAssertion",
	KindSubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	KindAnnotationPropertyDomain:        "AnnotationPropertyDomain",
	KindAnnotationPropertyRange:         "AnnotationPropertyRange",
	KindAnnotationAssertion:             "AnnotationAssertion",
}

// String returns the functional-syntax keyword of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds lists every kind in output order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Component is an ontology element: the ontology id, an import, an
// ontology annotation or an axiom.
type Component interface {
	Kind() Kind
	// args renders the arguments of the component without the keyword.
	args() []Node
}

// OntologyID names the ontology and, optionally, its version.
type OntologyID struct {
	IRI        IRI
	VersionIRI IRI
}

type Import struct{ IRI IRI }

type OntologyAnnotation struct{ Annotation Annotation }

type Declaration struct{ Entity Entity }

type SubClassOf struct{ Sub, Super ClassExpression }

type EquivalentClasses struct{ Classes []ClassExpression }

type DisjointClasses struct{ Classes []ClassExpression }

type SubObjectPropertyOf struct {
	Sub   SubPropertyExpression
	Super ObjectPropertyExpression
}

type EquivalentObjectProperties struct{ Properties []ObjectPropertyExpression }

type DisjointObjectProperties struct{ Properties []ObjectPropertyExpression }

type InverseObjectProperties struct{ First, Second ObjectPropertyExpression }

type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Class    ClassExpression
}

type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Class    ClassExpression
}

// ObjectPropertyCharacteristic is one of the unary property axioms
// (functional, transitive, ...). Characteristic must be one of
// KindFunctionalObjectProperty through KindTransitiveObjectProperty.
type ObjectPropertyCharacteristic struct {
	Characteristic Kind
	Property       ObjectPropertyExpression
}

type ClassAssertion struct {
	Class      ClassExpression
	Individual NamedIndividual
}

type ObjectPropertyAssertion struct {
	Property       ObjectPropertyExpression
	Subject, Value NamedIndividual
}

type SubAnnotationPropertyOf struct{ Sub, Super AnnotationProperty }

type AnnotationPropertyDomain struct {
	Property AnnotationProperty
	Domain   IRI
}

type AnnotationPropertyRange struct {
	Property AnnotationProperty
	Range    IRI
}

type AnnotationAssertion struct {
	Subject    IRI
	Annotation Annotation
}

func (OntologyID) Kind() Kind                     { return KindOntologyID }
func (Import) Kind() Kind                         { return KindImport }
func (OntologyAnnotation) Kind() Kind             { return KindOntologyAnnotation }
func (Declaration) Kind() Kind                    { return KindDeclaration }
func (SubClassOf) Kind() Kind                     { return KindSubClassOf }
func (EquivalentClasses) Kind() Kind              { return KindEquivalentClasses }
func (DisjointClasses) Kind() Kind                { return KindDisjointClasses }
func (SubObjectPropertyOf) Kind() Kind            { return KindSubObjectPropertyOf }
func (EquivalentObjectProperties) Kind() Kind     { return KindEquivalentObjectProperties }
func (DisjointObjectProperties) Kind() Kind       { return KindDisjointObjectProperties }
func (InverseObjectProperties) Kind() Kind        { return KindInverseObjectProperties }
func (ObjectPropertyDomain) Kind() Kind           { return KindObjectPropertyDomain }
func (ObjectPropertyRange) Kind() Kind            { return KindObjectPropertyRange }
func (c ObjectPropertyCharacteristic) Kind() Kind { return c.Characteristic }
func (ClassAssertion) Kind() Kind                 { return KindClassAssertion }
func (ObjectPropertyAssertion) Kind() Kind        { return KindObjectPropertyAssertion }
func (SubAnnotationPropertyOf) Kind() Kind        { return KindSubAnnotationPropertyOf }
func (AnnotationPropertyDomain) Kind() Kind       { return KindAnnotationPropertyDomain }
func (AnnotationPropertyRange) Kind() Kind        { return KindAnnotationPropertyRange }
func (AnnotationAssertion) Kind() Kind            { return KindAnnotationAssertion }

func (c OntologyID) args() []Node {
	var out []Node
	if c.IRI != "" {
		out = append(out, c.IRI)
		if c.VersionIRI != "" {
			out = append(out, c.VersionIRI)
		}
	}
	return out
}
func (c Import) args() []Node             { return []Node{c.IRI} }
func (c OntologyAnnotation) args() []Node { return []Node{c.Annotation.Property, c.Annotation.Value} }
func (c Declaration) args() []Node        { return []Node{entityNode{c.Entity}} }
func (c SubClassOf) args() []Node         { return []Node{c.Sub, c.Super} }
func (c EquivalentClasses) args() []Node  { return ces(c.Classes) }
func (c DisjointClasses) args() []Node    { return ces(c.Classes) }
func (c SubObjectPropertyOf) args() []Node {
	return []Node{c.Sub, c.Super}
}
func (c EquivalentObjectProperties) args() []Node { return opes(c.Properties) }
func (c DisjointObjectProperties) args() []Node   { return opes(c.Properties) }
func (c InverseObjectProperties) args() []Node    { return []Node{c.First, c.Second} }
func (c ObjectPropertyDomain) args() []Node       { return []Node{c.Property, c.Class} }
func (c ObjectPropertyRange) args() []Node        { return []Node{c.Property, c.Class} }
func (c ObjectPropertyCharacteristic) args() []Node {
	return []Node{c.Property}
}
func (c ClassAssertion) args() []Node { return []Node{c.Class, c.Individual} }
func (c ObjectPropertyAssertion) args() []Node {
	return []Node{c.Property, c.Subject, c.Value}
}
func (c SubAnnotationPropertyOf) args() []Node  { return []Node{c.Sub, c.Super} }
func (c AnnotationPropertyDomain) args() []Node { return []Node{c.Property, c.Domain} }
func (c AnnotationPropertyRange) args() []Node  { return []Node{c.Property, c.Range} }
func (c AnnotationAssertion) args() []Node {
	return []Node{c.Annotation.Property, c.Subject, c.Annotation.Value}
}

// entityNode renders an entity wrapped in its type keyword: Class(<iri>).
type entityNode struct{ e Entity }

func (n entityNode) functional(w *fnWriter) { w.call(n.e.EntityType(), n.e) }

// Characteristic returns the unary property axiom of the given kind.
func Characteristic(k Kind, p ObjectPropertyExpression) ObjectPropertyCharacteristic {
	return ObjectPropertyCharacteristic{Characteristic: k, Property: p}
}
