package vnode

// Concrete event payload types carried through listener callbacks. These
// mirror the DOM event interfaces the physical backend reports.

// MouseEvent represents a mouse event with position and modifiers.
type MouseEvent struct {
	// Position relative to viewport
	ClientX int
	ClientY int

	// Position relative to document
	PageX int
	PageY int

	// Position relative to target element
	OffsetX int
	OffsetY int

	// Button that triggered the event (0=left, 1=middle, 2=right)
	Button int

	// Bitmask of currently pressed buttons
	Buttons int

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// KeyboardEvent represents a keyboard event with key and modifiers.
type KeyboardEvent struct {
	// The key value (e.g., "Enter", "a", "Escape")
	Key string

	// The physical key code (e.g., "Enter", "KeyA", "Escape")
	Code string

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool

	// True if key is being held down (auto-repeat)
	Repeat bool
}

// InputEvent represents an input field change event.
type InputEvent struct {
	// Current value of the input
	Value string

	// Type of input change (e.g., "insertText", "deleteContentBackward")
	InputType string

	// Data being inserted (if any)
	Data string
}

// ChangeEvent represents a committed form value change.
type ChangeEvent struct {
	Value   string
	Checked bool
}

// SubmitEvent represents a form submission.
type SubmitEvent struct {
	// Form field values keyed by input name
	Fields map[string]string
}

// FocusEvent represents focus gained or lost.
type FocusEvent struct {
	// RelatedTarget is the physical node focus moved from/to, if known.
	RelatedTarget NodeRef
}

// WheelEvent represents a mouse wheel event.
type WheelEvent struct {
	// Scroll amounts
	DeltaX float64
	DeltaY float64
	DeltaZ float64

	// Delta mode: 0=pixels, 1=lines, 2=pages
	DeltaMode int

	// Position relative to viewport
	ClientX int
	ClientY int

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// ClipboardEvent represents a copy, cut, or paste.
type ClipboardEvent struct {
	Data string
}
