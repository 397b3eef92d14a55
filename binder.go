package specsheet

import (
	"html"
	"strings"
)

// OpKind selects how a slot operation mutates its target element. The
// values travel as JSON into the page-side applier, so they are strings.
type OpKind string

// Slot operation kinds.
const (
	OpText  OpKind = "text"  // set textContent
	OpHTML  OpKind = "html"  // set innerHTML (pre-escaped markup only)
	OpShow  OpKind = "show"  // display: block
	OpHide  OpKind = "hide"  // display: none
	OpImage OpKind = "image" // size the slot and insert an <img>
)

// Image slot layouts. Most slots bottom-align the image in a column box;
// the fit sketch left-aligns it in a row box.
const (
	layoutEnd   = "end"
	layoutStart = "start"
)

// ImageOp carries the source path and the fitted display size for an
// image slot. Width and Height are final CSS pixel values.
type ImageOp struct {
	Src    string  `json:"src"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Layout string  `json:"layout"`
}

// SlotOp is one mutation of a template slot, addressed by its data-layer
// name. Within scopes the lookup under a parent layer (repeatable list
// entries). All applies the op to every matching element instead of the
// first; a missing target is then a no-op rather than an error.
type SlotOp struct {
	Layer  string   `json:"layer"`
	Within string   `json:"within,omitempty"`
	All    bool     `json:"all,omitempty"`
	Kind   OpKind   `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Image  *ImageOp `json:"image,omitempty"`
}

// boundSection pairs a template with the op table that fills it. Sections
// come out of the family planners in render order.
type boundSection struct {
	template string
	ops      []SlotOp
}

// ops accumulates slot operations for one section.
type ops struct {
	list []SlotOp
}

func (o *ops) add(op SlotOp) {
	o.list = append(o.list, op)
}

// text sets a slot's text content, substituting fallback when the value
// is absent.
func (o *ops) text(layer string, v Value, fallback string) {
	o.add(SlotOp{Layer: layer, Kind: OpText, Text: v.Or(fallback)})
}

// literal sets a slot's text content to an already-formatted string.
func (o *ops) literal(layer, text string) {
	o.add(SlotOp{Layer: layer, Kind: OpText, Text: text})
}

// textIn is text scoped under a parent layer.
func (o *ops) textIn(within, layer string, v Value, fallback string) {
	o.add(SlotOp{Layer: layer, Within: within, Kind: OpText, Text: v.Or(fallback)})
}

// richText renders a multi-line value: HTML-escaped with newlines turned
// into <br> breaks.
func (o *ops) richText(layer string, v Value, fallback string) {
	o.add(SlotOp{Layer: layer, Kind: OpHTML, Text: richHTML(v.Or(fallback))})
}

// richTextIn is richText scoped under a parent layer.
func (o *ops) richTextIn(within, layer string, v Value, fallback string) {
	o.add(SlotOp{Layer: layer, Within: within, Kind: OpHTML, Text: richHTML(v.Or(fallback))})
}

// grid binds one measurement row: a slot per size named <prefix>_<size>,
// empty when the grid has no entry for that size.
func (o *ops) grid(prefix string, sizes []string, g SizeGrid) {
	o.gridOr(prefix, sizes, g, "")
}

// gridOr is grid with an explicit fallback for absent entries. Quantity
// grids render "0" instead of blank.
func (o *ops) gridOr(prefix string, sizes []string, g SizeGrid, fallback string) {
	for _, size := range sizes {
		o.text(prefix+"_"+size, g[size], fallback)
	}
}

// toggle drives an on/off indicator pair: the active variant's layers are
// shown, the inactive one's hidden. Both act on all matches so paired
// check marks and frames flip together.
func (o *ops) toggle(on bool, onLayer, offLayer string) {
	shown, hidden := onLayer, offLayer
	if !on {
		shown, hidden = offLayer, onLayer
	}
	o.add(SlotOp{Layer: shown, All: true, Kind: OpShow})
	o.add(SlotOp{Layer: hidden, All: true, Kind: OpHide})
}

// show makes a single required layer visible.
func (o *ops) show(layer string) {
	o.add(SlotOp{Layer: layer, Kind: OpShow})
}

// hide removes a single required layer from display.
func (o *ops) hide(layer string) {
	o.add(SlotOp{Layer: layer, Kind: OpHide})
}

// showAll / hideAll act on every match and tolerate zero matches.
func (o *ops) showAll(layer string) {
	o.add(SlotOp{Layer: layer, All: true, Kind: OpShow})
}

func (o *ops) hideAll(layer string) {
	o.add(SlotOp{Layer: layer, All: true, Kind: OpHide})
}

// hideIn hides a single layer under a parent.
func (o *ops) hideIn(within, layer string) {
	o.add(SlotOp{Layer: layer, Within: within, Kind: OpHide})
}

// image binds a resolved file to an image slot, fitted into box and
// bottom-aligned. Unresolved refs leave the slot untouched, matching the
// templates' empty-frame default.
func (o *ops) image(layer string, f *FileRef, box FitBox) {
	o.imageLayout(layer, f, box, layoutEnd)
}

// imageStart is image with the fit sketch's left-aligned row layout.
func (o *ops) imageStart(layer string, f *FileRef, box FitBox) {
	o.imageLayout(layer, f, box, layoutStart)
}

func (o *ops) imageLayout(layer string, f *FileRef, box FitBox, layout string) {
	o.imageOp("", layer, f, box, layout)
}

// imageIn is image scoped under a parent layer.
func (o *ops) imageIn(within, layer string, f *FileRef, box FitBox) {
	o.imageOp(within, layer, f, box, layoutEnd)
}

func (o *ops) imageOp(within, layer string, f *FileRef, box FitBox, layout string) {
	if !f.Resolved() {
		return
	}
	size := FitToBox(f.Width, f.Height, box)
	o.add(SlotOp{Layer: layer, Within: within, Kind: OpImage, Image: &ImageOp{
		Src:    f.LocalPath,
		Width:  size.Width,
		Height: size.Height,
		Layout: layout,
	}})
}

// richHTML escapes a plain-text value and converts newlines to <br>.
func richHTML(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
