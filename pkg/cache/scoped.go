package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis database without seeing each other's entries.
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ConversionKey generates a prefixed conversion key.
func (k *ScopedKeyer) ConversionKey(inputHash string, opts ConversionKeyOpts) string {
	return k.prefix + k.inner.ConversionKey(inputHash, opts)
}

// HierarchyKey generates a prefixed hierarchy key.
func (k *ScopedKeyer) HierarchyKey(inputHash string, opts HierarchyKeyOpts) string {
	return k.prefix + k.inner.HierarchyKey(inputHash, opts)
}
