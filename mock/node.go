package mock

import (
	"strings"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.Node = (*Node)(nil)

// Node is an in-memory itinerary.Node. Selectors match either a tag name
// ("tr") or a single class (".pnr-ref"); nothing else is supported.
type Node struct {
	Tag      string
	Class    string
	Content  string
	Children []*Node

	parent *Node
}

// El builds a node and links its children so Next can walk siblings.
func El(tag, class, content string, children ...*Node) *Node {
	n := &Node{Tag: tag, Class: class, Content: content, Children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// Find returns matching descendants in document order.
func (n *Node) Find(selector string) []itinerary.Node {
	var out []itinerary.Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.matches(selector) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Text concatenates the node's own content with its descendants' text.
func (n *Node) Text() string {
	var b strings.Builder
	b.WriteString(n.Content)
	for _, c := range n.Children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// Next returns the following sibling, or nil.
func (n *Node) Next() itinerary.Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children
	for i, s := range siblings {
		if s == n && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

func (n *Node) matches(selector string) bool {
	if class, ok := strings.CutPrefix(selector, "."); ok {
		for _, c := range strings.Fields(n.Class) {
			if c == class {
				return true
			}
		}
		return false
	}
	return n.Tag == selector
}
