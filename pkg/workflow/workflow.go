// Package workflow parses GitHub Actions workflow files into a generic node
// tree and extracts action references from it. Every scalar node keeps the
// line number where it appears in the source text, so diagnostics can point
// at the exact line of a `uses` entry. The package performs no I/O; callers
// read file contents and pass them in.
package workflow

// Document is the parsed form of one workflow file.
// It is only valid until the references are extracted and isn't kept around.
type Document struct {
	Body Node
}

// Node is a mapping, a sequence, or a scalar.
type Node interface {
	node()
}

// Mapping is an ordered key-value node. Keys are unique.
type Mapping struct {
	Entries []*MappingEntry
}

type MappingEntry struct {
	Key   string
	Value Node
}

// Sequence is an ordered list node.
type Sequence struct {
	Items []Node
}

// Scalar is a leaf node. Line is the 1-based line number of the scalar's
// first physical occurrence in the source text.
type Scalar struct {
	Value string
	Line  int
	Null  bool
}

func (*Mapping) node()  {}
func (*Sequence) node() {}
func (*Scalar) node()   {}

// Get returns the value of the entry with the given key, or nil.
func (m *Mapping) Get(key string) Node {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}
