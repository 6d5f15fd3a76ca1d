package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
)

const (
	legacySpeciesNameKey = "species name"
)

// Rewrite renames every "species name" key to "name" in mappings that do
// not already have a "name" key. It walks the whole tree, is idempotent, and
// runs before validation so that older documents pass the current key tables.
// Values of "__" extension keys are left untouched. It reports how many keys
// were renamed.
func Rewrite(root *yaml.Node) int {
	return rewrite(root, make(map[*yaml.Node]bool))
}

func rewrite(n *yaml.Node, seen map[*yaml.Node]bool) int {
	if n == nil || seen[n] {
		return 0
	}
	seen[n] = true

	renamed := 0
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			renamed += rewrite(c, seen)
		}
	case yaml.AliasNode:
		renamed += rewrite(n.Alias, seen)
	case yaml.MappingNode:
		hasName := false
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == keyName {
				hasName = true
				break
			}
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if !hasName && k.Kind == yaml.ScalarNode && k.Value == legacySpeciesNameKey {
				k.Value = keyName
				hasName = true
				renamed++
			}
			if k.Kind == yaml.ScalarNode && schema.IsExtensionKey(k.Value) {
				continue
			}
			renamed += rewrite(n.Content[i+1], seen)
		}
	}
	return renamed
}

// clone deep-copies a node tree so that rewriting never touches the
// caller's document. Anchors always precede their aliases in document
// order, so aliases are re-pointed at the copied anchor.
func clone(n *yaml.Node) *yaml.Node {
	return cloneNode(n, make(map[*yaml.Node]*yaml.Node))
}

func cloneNode(n *yaml.Node, copies map[*yaml.Node]*yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if c, ok := copies[n]; ok {
		return c
	}
	c := *n
	copies[n] = &c
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = cloneNode(child, copies)
		}
	}
	if n.Alias != nil {
		c.Alias = cloneNode(n.Alias, copies)
	}
	return &c
}
