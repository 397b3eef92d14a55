package specsheet

// topsSections plans the tops family sheet: fit, fabric, tag with care
// label, production points (one or two pages), sample and information.
// The first three sections leave blank headers blank; the rest show
// placeholder text.
func topsSections(spec *Specification) (sections []boundSection, notes []string) {
	sections = append(sections, topsFitSection(spec))
	sections = append(sections, fabricSection(tpl(FamilyTops, "fabric"), spec))
	sections = append(sections, topsTagSection(spec))

	oemSections, oemNotes := oemPointSections(tpl(FamilyTops, "oem_points"), spec, true,
		[maxListPages]string{"", ""})
	sections = append(sections, oemSections...)
	notes = append(notes, oemNotes...)

	sections = append(sections, sampleSection(tpl(FamilyTops, "sample"), spec))
	sections = append(sections, informationSection(tpl(FamilyTops, "information"), spec))
	return sections, notes
}

// Measurement rows of the tops fit grid. This family spans the core
// size range only.
var topsFitRows = []string{
	"total_length",
	"shoulder_to_shoulder",
	"chest_width",
	"sleeve_length",
}

func topsFitSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, false)
	for _, row := range topsFitRows {
		o.grid(row, sizesCore, spec.Fit.Grid(row))
	}
	return boundSection{template: tpl(FamilyTops, "fit"), ops: o.list}
}

// topsTagSection binds the combined tag and care label page.
func topsTagSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, false)

	tag := deref(spec.Tag)
	o.richText("tag_description", descText(tag.Description), "")
	o.image("tag_description_image", descFile(tag.Description), boxSwatch)

	care := deref(spec.CareLabel)
	o.richText("carelabel_description", descText(care.Description), "")
	o.image("carelabel_description_image", descFile(care.Description), boxSwatch)

	return boundSection{template: tpl(FamilyTops, "tag"), ops: o.list}
}
