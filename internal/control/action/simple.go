package action

// Simple implements the Action interface with a plain func() called on Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() { a.action() }

// Explain returns the current explanation of this simple action.
func (a *Simple) Explain() string { return a.explain() }

// NewSimple returns a new simple action, which calls the given action on Do
// and the given explainer on Explain.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Describe returns an explainer that always gives the same description.
func Describe(description string) func() string {
	return func() string { return description }
}
