package input

import (
	"github.com/ja-he/timeruler/internal/control/action"
)

// Node is a node in a Tree.
// It either has child nodes or it is a leaf holding an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key or nil, if there is none.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// NewNode returns a new inner node without children.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a new leaf node for the given action.
func NewLeaf(a action.Action) *Node {
	return &Node{
		Action: a,
	}
}

// GetHelp returns the help for all sequences starting at this node, mapping
// the (remaining) sequence to the explanation of its action.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}

	for k, c := range n.Children {
		for rest, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+rest] = explanation
		}
	}
	return result
}
