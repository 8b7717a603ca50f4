package input

// SimpleInputProcessor can process the input it is configured for and provide
// help information for that configuration. It can also "capture" input to
// ensure its precedence over other processors, e.g. when it has partial input.
type SimpleInputProcessor interface {
	CapturesInput() bool
	ProcessInput(key Key) bool
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid with further processors, e.g. while a popup is open.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay applies an overlay and returns its index, by which all
	// overlays down to and including it can be removed later.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay.
	PopModalOverlay() error

	// PopModalOverlays removes all overlays down to and including the one at the
	// given index.
	PopModalOverlays(index uint)
}
