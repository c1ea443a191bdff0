package util

// StringSet is a map[string]bool with a couple of convenience methods added.
// It backs the nullable/FIRST/FOLLOW fixed-point sets computed over a
// grammar's symbol alphabet (internal/grammar's first.go and follow.go),
// mirroring how the wider set of grammar-engine code in this corpus threads
// FIRST/FOLLOW through a dedicated string-set type rather than a bare map.
type StringSet map[string]bool

// NewStringSet returns an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

// Add adds value to the set. Has no effect if value is already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// AddAll adds every element of s2 to s.
func (s StringSet) AddAll(s2 StringSet) {
	for k := range s2 {
		s.Add(k)
	}
}

// Has reports whether value is in the set.
func (s StringSet) Has(value string) bool {
	return s[value]
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}
