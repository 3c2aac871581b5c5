package el

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Document structure elements

func Html(b *Builder, args ...any) VNode  { return element(b, "html", args) }
func Head(b *Builder, args ...any) VNode  { return element(b, "head", args) }
func Body(b *Builder, args ...any) VNode  { return element(b, "body", args) }
func Title(b *Builder, args ...any) VNode { return element(b, "title", args) }
func Meta(b *Builder, args ...any) VNode  { return element(b, "meta", args) }
func Link(b *Builder, args ...any) VNode  { return element(b, "link", args) }

// Content sectioning elements

func Header(b *Builder, args ...any) VNode  { return element(b, "header", args) }
func Footer(b *Builder, args ...any) VNode  { return element(b, "footer", args) }
func Main(b *Builder, args ...any) VNode    { return element(b, "main", args) }
func Nav(b *Builder, args ...any) VNode     { return element(b, "nav", args) }
func Section(b *Builder, args ...any) VNode { return element(b, "section", args) }
func Article(b *Builder, args ...any) VNode { return element(b, "article", args) }
func Aside(b *Builder, args ...any) VNode   { return element(b, "aside", args) }
func H1(b *Builder, args ...any) VNode      { return element(b, "h1", args) }
func H2(b *Builder, args ...any) VNode      { return element(b, "h2", args) }
func H3(b *Builder, args ...any) VNode      { return element(b, "h3", args) }
func H4(b *Builder, args ...any) VNode      { return element(b, "h4", args) }
func H5(b *Builder, args ...any) VNode      { return element(b, "h5", args) }
func H6(b *Builder, args ...any) VNode      { return element(b, "h6", args) }

// Text content elements

func Div(b *Builder, args ...any) VNode        { return element(b, "div", args) }
func P(b *Builder, args ...any) VNode          { return element(b, "p", args) }
func Span(b *Builder, args ...any) VNode       { return element(b, "span", args) }
func Pre(b *Builder, args ...any) VNode        { return element(b, "pre", args) }
func Blockquote(b *Builder, args ...any) VNode { return element(b, "blockquote", args) }
func Ul(b *Builder, args ...any) VNode         { return element(b, "ul", args) }
func Ol(b *Builder, args ...any) VNode         { return element(b, "ol", args) }
func Li(b *Builder, args ...any) VNode         { return element(b, "li", args) }
func Dl(b *Builder, args ...any) VNode         { return element(b, "dl", args) }
func Dt(b *Builder, args ...any) VNode         { return element(b, "dt", args) }
func Dd(b *Builder, args ...any) VNode         { return element(b, "dd", args) }
func Hr(b *Builder, args ...any) VNode         { return element(b, "hr", args) }
func Figure(b *Builder, args ...any) VNode     { return element(b, "figure", args) }
func Figcaption(b *Builder, args ...any) VNode { return element(b, "figcaption", args) }

// Inline text semantics

func A(b *Builder, args ...any) VNode      { return element(b, "a", args) }
func Strong(b *Builder, args ...any) VNode { return element(b, "strong", args) }
func Em(b *Builder, args ...any) VNode     { return element(b, "em", args) }
func B(b *Builder, args ...any) VNode      { return element(b, "b", args) }
func I(b *Builder, args ...any) VNode      { return element(b, "i", args) }
func U(b *Builder, args ...any) VNode      { return element(b, "u", args) }
func S(b *Builder, args ...any) VNode      { return element(b, "s", args) }
func Small(b *Builder, args ...any) VNode  { return element(b, "small", args) }
func Mark(b *Builder, args ...any) VNode   { return element(b, "mark", args) }
func Sub(b *Builder, args ...any) VNode    { return element(b, "sub", args) }
func Sup(b *Builder, args ...any) VNode    { return element(b, "sup", args) }
func Code(b *Builder, args ...any) VNode   { return element(b, "code", args) }
func Kbd(b *Builder, args ...any) VNode    { return element(b, "kbd", args) }
func Abbr(b *Builder, args ...any) VNode   { return element(b, "abbr", args) }
func Time_(b *Builder, args ...any) VNode  { return element(b, "time", args) }
func Cite(b *Builder, args ...any) VNode   { return element(b, "cite", args) }
func Q(b *Builder, args ...any) VNode      { return element(b, "q", args) }
func Br(b *Builder, args ...any) VNode     { return element(b, "br", args) }
func Wbr(b *Builder, args ...any) VNode    { return element(b, "wbr", args) }

// Form elements

func Form(b *Builder, args ...any) VNode     { return element(b, "form", args) }
func Input(b *Builder, args ...any) VNode    { return element(b, "input", args) }
func Textarea(b *Builder, args ...any) VNode { return element(b, "textarea", args) }
func Select(b *Builder, args ...any) VNode   { return element(b, "select", args) }
func Option(b *Builder, args ...any) VNode   { return element(b, "option", args) }
func Optgroup(b *Builder, args ...any) VNode { return element(b, "optgroup", args) }
func Button(b *Builder, args ...any) VNode   { return element(b, "button", args) }
func Label(b *Builder, args ...any) VNode    { return element(b, "label", args) }
func Fieldset(b *Builder, args ...any) VNode { return element(b, "fieldset", args) }
func Legend(b *Builder, args ...any) VNode   { return element(b, "legend", args) }
func Datalist(b *Builder, args ...any) VNode { return element(b, "datalist", args) }
func Output(b *Builder, args ...any) VNode   { return element(b, "output", args) }
func Progress(b *Builder, args ...any) VNode { return element(b, "progress", args) }
func Meter(b *Builder, args ...any) VNode    { return element(b, "meter", args) }

// Table elements

func Table(b *Builder, args ...any) VNode    { return element(b, "table", args) }
func Thead(b *Builder, args ...any) VNode    { return element(b, "thead", args) }
func Tbody(b *Builder, args ...any) VNode    { return element(b, "tbody", args) }
func Tfoot(b *Builder, args ...any) VNode    { return element(b, "tfoot", args) }
func Tr(b *Builder, args ...any) VNode       { return element(b, "tr", args) }
func Th(b *Builder, args ...any) VNode       { return element(b, "th", args) }
func Td(b *Builder, args ...any) VNode       { return element(b, "td", args) }
func Caption(b *Builder, args ...any) VNode  { return element(b, "caption", args) }
func Colgroup(b *Builder, args ...any) VNode { return element(b, "colgroup", args) }
func Col(b *Builder, args ...any) VNode      { return element(b, "col", args) }

// Media elements

func Img(b *Builder, args ...any) VNode    { return element(b, "img", args) }
func Video(b *Builder, args ...any) VNode  { return element(b, "video", args) }
func Audio(b *Builder, args ...any) VNode  { return element(b, "audio", args) }
func Source(b *Builder, args ...any) VNode { return element(b, "source", args) }
func Track(b *Builder, args ...any) VNode  { return element(b, "track", args) }
func Iframe(b *Builder, args ...any) VNode { return element(b, "iframe", args) }
func Canvas(b *Builder, args ...any) VNode { return element(b, "canvas", args) }

// Svg creates an svg element in the SVG namespace.
func Svg(b *Builder, args ...any) VNode {
	return element(b, "svg", append(args, SVGNamespace))
}

// Interactive elements

func Details(b *Builder, args ...any) VNode { return element(b, "details", args) }
func Summary(b *Builder, args ...any) VNode { return element(b, "summary", args) }
func Dialog(b *Builder, args ...any) VNode  { return element(b, "dialog", args) }
func Menu(b *Builder, args ...any) VNode    { return element(b, "menu", args) }

// Scripting elements

func Script(b *Builder, args ...any) VNode   { return element(b, "script", args) }
func Noscript(b *Builder, args ...any) VNode { return element(b, "noscript", args) }
func Template(b *Builder, args ...any) VNode { return element(b, "template", args) }
func Slot(b *Builder, args ...any) VNode     { return element(b, "slot", args) }
func Style(b *Builder, args ...any) VNode    { return element(b, "style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(b *Builder, tag string, args ...any) VNode {
	return element(b, tag, args)
}
