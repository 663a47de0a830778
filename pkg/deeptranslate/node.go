package deeptranslate

// Node is a value in a locale tree: either a Leaf or a Branch.
type Node interface {
	node()
}

// Leaf is a terminal translation string.
type Leaf string

// Branch is an ordered set of child entries.
// Declaration order matters: when several children match, the first declared wins.
type Branch []Entry

// Entry is a single keyed child of a Branch.
type Entry struct {
	Node Node
	Key  string
}

func (Leaf) node()   {}
func (Branch) node() {}

// Get returns the child node stored under key.
func (b Branch) Get(key string) (Node, bool) {
	for _, e := range b {
		if e.Key == key {
			return e.Node, true
		}
	}
	return nil, false
}

// Keys returns child keys in declaration order.
func (b Branch) Keys() []string {
	keys := make([]string, len(b))
	for i, e := range b {
		keys[i] = e.Key
	}
	return keys
}

// L is shorthand for a leaf entry.
func L(key, value string) Entry {
	return Entry{Key: key, Node: Leaf(value)}
}

// B is shorthand for a branch entry.
func B(key string, children ...Entry) Entry {
	return Entry{Key: key, Node: Branch(children)}
}
