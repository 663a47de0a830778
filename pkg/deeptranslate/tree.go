package deeptranslate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tree is an immutable locale tree addressed by dot-delimited key paths.
// It is safe for concurrent use.
type Tree struct {
	root Branch
}

// NewTree creates a tree from the given top-level entries.
// The entries are used as-is and must not be modified afterwards.
func NewTree(entries ...Entry) *Tree {
	return &Tree{root: Branch(entries)}
}

// ParseYAML builds a tree from a YAML document whose root is a mapping.
// Mapping order is preserved. Values must be strings or mappings;
// anything else fails with ErrInvalidLocaleEntry.
func ParseYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLocaleEntry, err)
	}

	// Empty input decodes to a zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Tree{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be a mapping", ErrInvalidLocaleEntry)
	}

	branch, err := convertMapping(root, "")
	if err != nil {
		return nil, err
	}
	return &Tree{root: branch}, nil
}

// ParseJSON builds a tree from a JSON object.
// JSON is decoded with the YAML parser so that object key order survives.
func ParseJSON(data []byte) (*Tree, error) {
	return ParseYAML(data)
}

// MustParseYAML is like ParseYAML but panics on error.
func MustParseYAML(data []byte) *Tree {
	t, err := ParseYAML(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Root returns the top-level branch.
func (t *Tree) Root() Branch {
	return t.root
}

// Lookup returns the node addressed by a dot-delimited key.
// Its signature matches LookupFunc.
func (t *Tree) Lookup(key string) (Node, bool) {
	if t == nil || key == "" {
		return nil, false
	}

	var current Node = t.root
	for segment := range strings.SplitSeq(key, ".") {
		branch, ok := current.(Branch)
		if !ok {
			return nil, false
		}
		if current, ok = branch.Get(segment); !ok {
			return nil, false
		}
	}
	return current, true
}

func convertMapping(n *yaml.Node, path string) (Branch, error) {
	branch := make(Branch, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		key := keyNode.Value
		full := joinPath(path, key)

		if keyNode.Kind != yaml.ScalarNode || key == "" || strings.Contains(key, ".") {
			return nil, fmt.Errorf("%w: unaddressable key %q", ErrInvalidLocaleEntry, full)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidLocaleEntry, full)
		}
		seen[key] = struct{}{}

		node, err := convertNode(valNode, full)
		if err != nil {
			return nil, err
		}
		branch = append(branch, Entry{Key: key, Node: node})
	}

	return branch, nil
}

func convertNode(n *yaml.Node, path string) (Node, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag != "!!str" {
			return nil, fmt.Errorf("%w: %q has non-string value %s; quote it to use it as text: \"%s\"",
				ErrInvalidLocaleEntry, path, n.Value, n.Value)
		}
		return Leaf(n.Value), nil
	case yaml.MappingNode:
		return convertMapping(n, path)
	default:
		return nil, fmt.Errorf("%w: %q must be a string or a mapping", ErrInvalidLocaleEntry, path)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
