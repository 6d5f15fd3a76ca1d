package schema

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key     string
	KeyNode *yaml.Node
	Value   *yaml.Node
}

// Resolve unwraps document and alias nodes. It returns nil for nil input.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// IsNull reports whether n is absent or an explicit null.
func IsNull(n *yaml.Node) bool {
	n = Resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// IsMap reports whether n is a mapping node.
func IsMap(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// Entries returns the key/value pairs of a mapping node in document order.
// Non-mapping nodes have no entries.
func Entries(n *yaml.Node) []Entry {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := Resolve(n.Content[i])
		key := ""
		if keyNode != nil && keyNode.Kind == yaml.ScalarNode {
			key = keyNode.Value
		}
		entries = append(entries, Entry{Key: key, KeyNode: n.Content[i], Value: n.Content[i+1]})
	}
	return entries
}

// Lookup returns the value stored under key in a mapping node, or nil.
// When a key is repeated the first occurrence wins.
func Lookup(n *yaml.Node, key string) *yaml.Node {
	for _, e := range Entries(n) {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Has reports whether a mapping node carries key.
func Has(n *yaml.Node, key string) bool {
	return Lookup(n, key) != nil
}

// Items returns the elements of a sequence node, or nil.
func Items(n *yaml.Node) []*yaml.Node {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	return n.Content
}

// LocationOf returns the source position of n.
func LocationOf(n *yaml.Node) types.Location {
	if n == nil {
		return types.Location{}
	}
	return types.Location{Line: n.Line, Column: n.Column}
}

// IsExtensionKey reports whether key carries the reserved extension prefix.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, types.ExtensionPrefix)
}

// describe names the shape of n for diagnostics.
func describe(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "a map"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return "'" + n.Value + "'"
	default:
		return "an unsupported node"
	}
}
