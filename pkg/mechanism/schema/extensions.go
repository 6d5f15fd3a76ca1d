package schema

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Extensions collects every "__"-prefixed key of a mapping node. Scalar
// values are stored verbatim; compound values are stored as their YAML
// serialization. It never fails: a value that cannot be serialized is stored
// as an empty string, and a node without prefixed keys yields an empty map.
func Extensions(node *yaml.Node) types.Extensions {
	ext := types.Extensions{}
	for _, e := range Entries(node) {
		if !IsExtensionKey(e.Key) {
			continue
		}
		ext[e.Key] = extensionValue(e.Value)
	}
	return ext
}

func extensionValue(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil {
		return ""
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	out, err := yaml.Marshal(stripComments(n))
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(string(out), "\n")
}

// stripComments returns a copy of n without comments, so the stored text is
// the value alone.
func stripComments(n *yaml.Node) *yaml.Node {
	c := *n
	c.HeadComment, c.LineComment, c.FootComment = "", "", ""
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = stripComments(child)
		}
	}
	return &c
}
