package specsheet

import "fmt"

// tshirtSections plans the t-shirt family sheet: fit, materials (one or
// two pages), tag, care label, production points (one or two pages),
// sample and information. Every header on this family falls back to
// placeholder text.
func tshirtSections(spec *Specification) (sections []boundSection, notes []string) {
	sections = append(sections, tshirtFitSection(spec))

	materialSections, materialNotes := tshirtMaterialSections(spec)
	sections = append(sections, materialSections...)
	notes = append(notes, materialNotes...)

	sections = append(sections, tshirtTagSection(spec))
	sections = append(sections, tshirtCareLabelSection(spec))

	oemSections, oemNotes := oemPointSections(tpl(FamilyTShirt, "oem_points"), spec, false,
		[maxListPages]string{"", "No description"})
	sections = append(sections, oemSections...)
	notes = append(notes, oemNotes...)

	sections = append(sections, sampleSection(tpl(FamilyTShirt, "sample"), spec))
	sections = append(sections, informationSection(tpl(FamilyTShirt, "information"), spec))
	return sections, notes
}

// Measurement rows of the t-shirt fit grid, in template order. This
// family spans the full size range.
var tshirtFitRows = []string{
	"total_length",
	"chest_width",
	"bottom_width",
	"sleeve_length",
	"armhole",
	"sleeve_opening",
	"neck_rib_length",
	"neck_opening",
	"shoulder_to_shoulder",
}

func tshirtFitSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, true)
	for _, row := range tshirtFitRows {
		o.grid(row, sizesFull, spec.Fit.Grid(row))
	}
	o.text("description", descText(fitDescription(spec)), "")
	o.imageStart("description_image", descFile(fitDescription(spec)), boxFitSketch)
	return boundSection{template: tpl(FamilyTShirt, "fit"), ops: o.list}
}

func fitDescription(spec *Specification) *Description {
	if spec.Fit == nil {
		return nil
	}
	return spec.Fit.Description
}

// materialRow is one entry of the merged material list. Main materials
// and sub-materials share the page slots; sub marks which caption row
// stays visible.
type materialRow struct {
	row Material
	sub bool
}

func mergedMaterialRows(f Fabric) []materialRow {
	rows := make([]materialRow, 0, len(f.Materials)+len(f.SubMaterials))
	for _, m := range f.Materials {
		rows = append(rows, materialRow{row: m})
	}
	for _, m := range f.SubMaterials {
		rows = append(rows, materialRow{row: m, sub: true})
	}
	return rows
}

// tshirtMaterialSections spreads the merged material list over at most
// two pages of three row slots.
func tshirtMaterialSections(spec *Specification) (secs []boundSection, notes []string) {
	rows := mergedMaterialRows(deref(spec.Fabric))
	plan := PlanPages(len(rows), listPageCapacity)
	if plan.Truncated {
		notes = append(notes, fmt.Sprintf(
			"materials: rendering %d of %d rows", maxListPages*listPageCapacity, len(rows)))
	}

	for page := 0; page < plan.Pages; page++ {
		o := &ops{}
		header(o, spec, true)

		start, _ := pageSlice(len(rows), listPageCapacity, page)
		for slot := 1; slot <= listPageCapacity; slot++ {
			layer := fmt.Sprintf("material_%d", slot)
			idx := start + slot - 1
			if idx >= len(rows) {
				o.hide(layer)
				continue
			}
			entry := rows[idx]
			o.show(layer)
			o.textIn(layer, "row_material", entry.row.RowMaterial, "")
			o.textIn(layer, "color_name", deref(entry.row.Colourway).ColorName, "")
			o.textIn(layer, "description", descText(entry.row.Description), "")
			if entry.sub {
				o.hideIn(layer, "material")
			} else {
				o.hideIn(layer, "sub_material")
			}
			o.imageIn(layer, "description_image", descFile(entry.row.Description), boxSwatch)
		}
		secs = append(secs, boundSection{template: tpl(FamilyTShirt, "materials"), ops: o.list})
	}
	return secs, notes
}

// tshirtTagSection picks the no-label or label page. The no-label page
// applies whenever there is no brand label, and also when standard labels
// are shipped to the factory instead of sewn on a custom design.
func tshirtTagSection(spec *Specification) boundSection {
	tag := deref(spec.Tag)
	noLabel := !tag.IsLabel || (tag.SendLabels && !tag.IsCustom)
	if noLabel {
		return tshirtTagNoLabelSection(spec, tag)
	}
	return tshirtTagLabelSection(spec, tag)
}

func tshirtTagNoLabelSection(spec *Specification, tag Tag) boundSection {
	o := &ops{}
	header(o, spec, true)
	o.toggle(!tag.SendLabels, "no_label_radio_on", "no_label_radio_off")
	o.toggle(tag.SendLabels, "send_labels_radio_on", "send_labels_radio_off")
	o.text("description", descText(tag.Description), "")
	o.image("description_image", descFile(tag.Description), boxTagNoLabel)
	return boundSection{template: tpl(FamilyTShirt, "tag_nolabel"), ops: o.list}
}

func tshirtTagLabelSection(spec *Specification, tag Tag) boundSection {
	o := &ops{}
	header(o, spec, true)

	// The no-label and send-labels indicators are always off on this page.
	o.toggle(false, "no_label_radio_on", "no_label_radio_off")
	o.toggle(false, "send_labels_radio_on", "send_labels_radio_off")
	o.toggle(tag.IsCustom, "custom_radio_on", "custom_radio_off")
	o.toggle(!tag.IsCustom, "standard_radio_on", "standard_radio_off")

	// Unknown material values leave the template's default indicators.
	switch tag.Material.String() {
	case TagMaterialWovenLabel, TagMaterialPolyester, TagMaterialCottonCanvas:
		o.toggle(tag.Material == TagMaterialWovenLabel, "woven_label_radio_on", "woven_label_radio_off")
		o.toggle(tag.Material == TagMaterialPolyester, "polyester_radio_on", "polyester_radio_off")
		o.toggle(tag.Material == TagMaterialCottonCanvas, "cotton_canvas_radio_on", "cotton_canvas_radio_off")
	}

	o.text("label_color_name", deref(tag.Colourway).ColorName, "")

	// Unknown placement values likewise leave the template untouched.
	switch tag.LabelStyle.String() {
	case LabelStyleInseamLoop:
		o.toggle(true, "inseam_loop_radio_on", "inseam_loop_radio_off")
		o.toggle(false, "back_radio_on", "back_radio_off")
		o.toggle(true, "size_tag_inseam", "size_tag_back")
		o.toggle(true, "t-shirt_tag_inseam", "t-shirt_tag_back")
		o.literal("size_tag_inseam_width", centimetres(tag.LabelWidth, "3 cm"))
		o.literal("size_tag_inseam_height", centimetres(tag.LabelHeight, "10 cm"))
	case LabelStyleBack:
		o.toggle(false, "inseam_loop_radio_on", "inseam_loop_radio_off")
		o.toggle(true, "back_radio_on", "back_radio_off")
		o.toggle(false, "size_tag_inseam", "size_tag_back")
		o.toggle(false, "t-shirt_tag_inseam", "t-shirt_tag_back")
		o.literal("size_tag_back_width", centimetres(tag.LabelWidth, "4 cm"))
		o.literal("size_tag_back_height", centimetres(tag.LabelHeight, "3 cm"))
	}

	o.text("description", descText(tag.Description), "")
	o.image("description_image", descFile(tag.Description), boxSwatch)
	return boundSection{template: tpl(FamilyTShirt, "tag_label"), ops: o.list}
}

// centimetres formats a label dimension with its unit, or returns the
// placement's default when the value is absent.
func centimetres(v Value, fallback string) string {
	if v.IsZero() {
		return fallback
	}
	return v.String() + " cm"
}

// tshirtCareLabelSection binds the care label page. The logo indicator
// has three states: default logo, no logo, and an uploaded custom logo
// where neither checkbox is marked.
func tshirtCareLabelSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, true)

	care := deref(spec.CareLabel)
	switch {
	case care.DefaultLogo:
		o.toggle(true, "logo_radio_on", "logo_radio_off")
		o.toggle(false, "no_logo_radio_on", "no_logo_radio_off")
	case !care.HasLogo:
		o.toggle(false, "logo_radio_on", "logo_radio_off")
		o.toggle(true, "no_logo_radio_on", "no_logo_radio_off")
	default:
		o.toggle(false, "logo_radio_on", "logo_radio_off")
		o.toggle(false, "no_logo_radio_on", "no_logo_radio_off")
	}

	o.richText("description", descText(care.Description), "")
	o.image("description_image", descFile(care.Description), boxCareLabel)
	return boundSection{template: tpl(FamilyTShirt, "carelabel"), ops: o.list}
}
