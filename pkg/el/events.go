package el

import "github.com/vango-dev/arbor/pkg/vnode"

// Mouse events

// OnClick handles click events.
func OnClick(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "click", handler)
}

// OnDblClick handles double-click events.
func OnDblClick(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "dblclick", handler)
}

// OnMouseDown handles mousedown events.
func OnMouseDown(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "mousedown", handler)
}

// OnMouseUp handles mouseup events.
func OnMouseUp(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "mouseup", handler)
}

// OnMouseMove handles mousemove events.
func OnMouseMove(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "mousemove", handler)
}

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "mouseenter", handler)
}

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "mouseleave", handler)
}

// OnContextMenu handles contextmenu (right-click) events.
func OnContextMenu(b *Builder, handler func(vnode.MouseEvent)) Listener {
	return vnode.On(b, "contextmenu", handler)
}

// OnWheel handles wheel (scroll wheel) events.
func OnWheel(b *Builder, handler func(vnode.WheelEvent)) Listener {
	return vnode.On(b, "wheel", handler)
}

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(b *Builder, handler func(vnode.KeyboardEvent)) Listener {
	return vnode.On(b, "keydown", handler)
}

// OnKeyUp handles keyup events.
func OnKeyUp(b *Builder, handler func(vnode.KeyboardEvent)) Listener {
	return vnode.On(b, "keyup", handler)
}

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(b *Builder, handler func(vnode.InputEvent)) Listener {
	return vnode.On(b, "input", handler)
}

// OnChange handles change events (fired when value is committed).
func OnChange(b *Builder, handler func(vnode.ChangeEvent)) Listener {
	return vnode.On(b, "change", handler)
}

// OnSubmit handles form submit events.
func OnSubmit(b *Builder, handler func(vnode.SubmitEvent)) Listener {
	return vnode.On(b, "submit", handler)
}

// OnFocus handles focus events.
func OnFocus(b *Builder, handler func(vnode.FocusEvent)) Listener {
	return vnode.On(b, "focus", handler)
}

// OnBlur handles blur events.
func OnBlur(b *Builder, handler func(vnode.FocusEvent)) Listener {
	return vnode.On(b, "blur", handler)
}

// Clipboard events

// OnCopy handles copy events.
func OnCopy(b *Builder, handler func(vnode.ClipboardEvent)) Listener {
	return vnode.On(b, "copy", handler)
}

// OnCut handles cut events.
func OnCut(b *Builder, handler func(vnode.ClipboardEvent)) Listener {
	return vnode.On(b, "cut", handler)
}

// OnPaste handles paste events.
func OnPaste(b *Builder, handler func(vnode.ClipboardEvent)) Listener {
	return vnode.On(b, "paste", handler)
}

// OnEvent handles an arbitrary event by name with a typed payload.
func OnEvent[E any](b *Builder, event string, handler func(E)) Listener {
	return vnode.On(b, event, handler)
}
