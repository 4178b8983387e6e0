package workflow

import (
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ParseError is returned when a file's content isn't well-formed YAML.
// The caller decides whether to abort the run or skip the file.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse a workflow file as YAML: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a workflow file's content into a Document.
// Only the first YAML document of the file is used.
func Parse(content []byte) (*Document, error) {
	file, err := parser.ParseBytes(content, 0)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return &Document{}, nil
	}
	return &Document{Body: convert(file.Docs[0].Body)}, nil
}

func convert(n ast.Node) Node {
	switch v := n.(type) {
	case *ast.MappingNode:
		m := &Mapping{Entries: make([]*MappingEntry, 0, len(v.Values))}
		for _, value := range v.Values {
			m.Entries = append(m.Entries, convertEntry(value))
		}
		return m
	case *ast.MappingValueNode:
		// A single key-value pair is parsed as a MappingValueNode, not as a
		// MappingNode with one value.
		return &Mapping{Entries: []*MappingEntry{convertEntry(v)}}
	case *ast.SequenceNode:
		s := &Sequence{Items: make([]Node, 0, len(v.Values))}
		for _, item := range v.Values {
			s.Items = append(s.Items, convert(item))
		}
		return s
	case *ast.NullNode:
		return &Scalar{Null: true, Line: line(v)}
	case *ast.StringNode:
		return &Scalar{Value: v.Value, Line: line(v)}
	case *ast.LiteralNode:
		return &Scalar{Value: v.Value.Value, Line: line(v)}
	case *ast.AnchorNode:
		return convert(v.Value)
	case *ast.TagNode:
		return convert(v.Value)
	case *ast.AliasNode:
		// Aliases aren't resolved. The aliased value was already visited at
		// its anchor, so extraction still sees every reference once.
		return &Scalar{Null: true, Line: line(v)}
	default:
		// Integers, floats, booleans, and so on.
		return &Scalar{Value: rawValue(n), Line: line(n)}
	}
}

func convertEntry(value *ast.MappingValueNode) *MappingEntry {
	return &MappingEntry{
		Key:   keyString(value.Key),
		Value: convert(value.Value),
	}
}

func keyString(key ast.MapKeyNode) string {
	if s, ok := key.(*ast.StringNode); ok {
		return s.Value
	}
	return rawValue(key)
}

func rawValue(n ast.Node) string {
	if t := n.GetToken(); t != nil {
		return t.Value
	}
	return ""
}

func line(n ast.Node) int {
	if t := n.GetToken(); t != nil && t.Position != nil {
		return t.Position.Line
	}
	return 0
}
