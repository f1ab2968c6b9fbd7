package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
)

// Ensure Node implements itinerary.Node at compile time.
var _ itinerary.Node = (*Node)(nil)

// Node is an itinerary.Node backed by a goquery selection.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel}
}

// Find returns one node per matching descendant, in document order.
func (n *Node) Find(selector string) []itinerary.Node {
	matches := n.sel.Find(selector)
	nodes := make([]itinerary.Node, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Next returns the following element sibling, or nil.
func (n *Node) Next() itinerary.Node {
	next := n.sel.Next()
	if next.Length() == 0 {
		return nil
	}
	return &Node{sel: next}
}
