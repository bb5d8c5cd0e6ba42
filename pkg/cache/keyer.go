package cache

// ConversionKeyOpts are the options that change a conversion's output.
type ConversionKeyOpts struct {
	Format       string            `json:"format"`
	ForceImport  bool              `json:"force_import"`
	ExtraIdspace map[string]string `json:"extra_idspace,omitempty"`
	Prefixes     map[string]string `json:"prefixes,omitempty"`
}

// HierarchyKeyOpts are the options that change a rendered hierarchy.
type HierarchyKeyOpts struct {
	Format       string            `json:"format"`
	Root         string            `json:"root,omitempty"`
	Depth        int               `json:"depth,omitempty"`
	ExtraIdspace map[string]string `json:"extra_idspace,omitempty"`
	Prefixes     map[string]string `json:"prefixes,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ConversionKey returns the key for a converted ontology.
	ConversionKey(inputHash string, opts ConversionKeyOpts) string

	// HierarchyKey returns the key for a rendered class hierarchy.
	HierarchyKey(inputHash string, opts HierarchyKeyOpts) string
}

// DefaultKeyer hashes the input hash together with its options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ConversionKey implements Keyer.
func (DefaultKeyer) ConversionKey(inputHash string, opts ConversionKeyOpts) string {
	return hashKey("conversion", inputHash, opts)
}

// HierarchyKey implements Keyer.
func (DefaultKeyer) HierarchyKey(inputHash string, opts HierarchyKeyOpts) string {
	return hashKey("hierarchy", inputHash, opts)
}
