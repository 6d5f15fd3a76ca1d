package mechanism

import (
	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Parse is a convenience function that parses the document at path with a
// default parser.
func Parse(path string) *parser.Result {
	return parser.NewParser().Parse(path)
}

// ParseBytes parses an in-memory document. source names it in errors.
func ParseBytes(data []byte, source string) *parser.Result {
	return parser.NewParser().ParseBytes(data, source)
}

// ParseNode parses an already decoded YAML document.
func ParseNode(root *yaml.Node) *parser.Result {
	return parser.NewParser().ParseNode(root)
}

// Load parses the document at path and returns the mechanism only when the
// parse was successful; otherwise it returns the collected errors.
func Load(path string) (*types.Mechanism, error) {
	res := Parse(path)
	if !res.Successful() {
		return nil, res.Err()
	}
	return res.Mechanism, nil
}
