package input

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/control/action"
)

// Help maps key sequences (in config representation) to the explanation of
// the action they trigger.
type Help = map[string]string

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the input applied, i.E. it either completed a sequence (and
// the action was performed) or it continued a partial one.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence, in
// which case it ought to take priority over other processors.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the help for all sequences of the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// ConstructInputTree constructs a Tree for the given mappings of key sequences
// to actions.
// If any keyspec is invalid, this returns an error.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for keyspec, a := range spec {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("error converting keyspec '%s' (%w)", keyspec, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec")
		}

		current := root
		for i, key := range sequence {
			next, ok := current.Children[key]
			switch {
			case !ok && i == len(sequence)-1:
				next = NewLeaf(a)
				current.Children[key] = next
			case !ok:
				next = NewNode()
				current.Children[key] = next
			case next.Action != nil || i == len(sequence)-1:
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping", keyspec)
			}
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// ConstructInputTreeFromConfig constructs a Tree for a mapping of keyspecs to
// action names, as found in a config file, given the available actions by
// name.
func ConstructInputTreeFromConfig(
	keys map[string]string,
	actions map[string]action.Action,
) (*Tree, error) {
	spec := make(map[Keyspec]action.Action, len(keys))
	for keyspec, name := range keys {
		a, ok := actions[name]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s' (mapped to '%s')", name, keyspec)
		}
		spec[Keyspec(keyspec)] = a
	}
	return ConstructInputTree(spec)
}

// EmptyTree returns a tree without any mappings.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
