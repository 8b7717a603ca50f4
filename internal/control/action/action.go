// Package action provides the actions that key sequences are bound to.
package action

// Action is something a key sequence can trigger.
type Action interface {
	// Do performs the action.
	Do()
	// Explain returns a short description of what Do does, e.g. for help.
	Explain() string
}
