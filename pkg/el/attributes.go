package el

import (
	"strconv"
	"strings"
)

// attr creates an Attribute with the given name and value.
func attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attribute { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attribute { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) Attribute { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") sets data-id="123".
func Data(key, value string) Attribute { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attribute { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attribute { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attribute { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attribute {
	return attr("aria-expanded", strconv.FormatBool(expanded))
}

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attribute { return attr("aria-live", mode) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attribute { return attr("tabindex", strconv.Itoa(index)) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attribute { return attr("hidden", "") }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(title string) Attribute { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attribute { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attribute { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attribute { return attr("rel", rel) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attribute { return attr("name", name) }

// Value sets the value attribute. Volatile: always re-applied during
// patching regardless of the diff result.
func Value(value string) Attribute { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attribute { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attribute { return attr("placeholder", text) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() Attribute { return attr("disabled", "") }

// Readonly sets the readonly attribute.
func Readonly() Attribute { return attr("readonly", "") }

// Required sets the required attribute.
func Required() Attribute { return attr("required", "") }

// Checked sets the checked attribute. Volatile, like Value.
func Checked() Attribute { return attr("checked", "") }

// Selected sets the selected attribute. Volatile, like Value.
func Selected() Attribute { return attr("selected", "") }

// Multiple sets the multiple attribute.
func Multiple() Attribute { return attr("multiple", "") }

// Autofocus sets the autofocus attribute.
func Autofocus() Attribute { return attr("autofocus", "") }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attribute { return attr("autocomplete", value) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attribute { return attr("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) Attribute { return attr("minlength", strconv.Itoa(n)) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attribute { return attr("maxlength", strconv.Itoa(n)) }

// Min sets the min attribute.
func Min(value string) Attribute { return attr("min", value) }

// Max sets the max attribute.
func Max(value string) Attribute { return attr("max", value) }

// Step sets the step attribute.
func Step(value string) Attribute { return attr("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) Attribute { return attr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) Attribute { return attr("cols", strconv.Itoa(n)) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attribute { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attribute { return attr("method", method) }

// For sets the for attribute (for labels).
func For(id string) Attribute { return attr("for", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attribute { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attribute { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attribute { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attribute { return attr("height", strconv.Itoa(h)) }

// Loading sets the loading attribute.
func Loading(mode string) Attribute { return attr("loading", mode) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attribute { return attr("colspan", strconv.Itoa(n)) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attribute { return attr("rowspan", strconv.Itoa(n)) }

// Conditional attributes

// ClassIf adds a class conditionally. The zero Attribute is skipped by the
// tag factories.
func ClassIf(condition bool, class string) Attribute {
	if condition {
		return attr("class", class)
	}
	return Attribute{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attribute) Attribute {
	if condition {
		return a
	}
	return Attribute{}
}

// Classes merges class values from strings, slices, and set maps.
func Classes(classes ...any) Attribute {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			for class, include := range v {
				if include && class != "" {
					result = append(result, class)
				}
			}
		}
	}
	return attr("class", strings.Join(result, " "))
}

// Open sets the open attribute (for details, dialog).
func Open() Attribute { return attr("open", "") }
