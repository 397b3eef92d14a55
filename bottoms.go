package specsheet

// bottomsSections plans the bottoms family sheet: fit, fabric, combined
// tag/care-label/patch, production points (one or two pages), sample and
// information. Header fallbacks follow the tops family.
func bottomsSections(spec *Specification) (sections []boundSection, notes []string) {
	sections = append(sections, bottomsFitSection(spec))
	sections = append(sections, fabricSection(tpl(FamilyBottoms, "fabric"), spec))
	sections = append(sections, bottomsTagSection(spec))

	oemSections, oemNotes := oemPointSections(tpl(FamilyBottoms, "oem_points"), spec, true,
		[maxListPages]string{"", ""})
	sections = append(sections, oemSections...)
	notes = append(notes, oemNotes...)

	sections = append(sections, sampleSection(tpl(FamilyBottoms, "sample"), spec))
	sections = append(sections, informationSection(tpl(FamilyBottoms, "information"), spec))
	return sections, notes
}

// Measurement rows of the bottoms fit grid, core size range.
var bottomsFitRows = []string{
	"total_length",
	"waist",
	"rise",
	"inseam",
	"hip",
	"around_the_thigh",
	"around_the_knee",
	"hem_width",
	"around_the_hem",
}

// bottomsFitSection binds the measurement grid and picks the garment
// illustration variant for the record's product type. The template
// carries all three variants; the unused ones are hidden.
func bottomsFitSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, false)
	for _, row := range bottomsFitRows {
		o.grid(row, sizesCore, spec.Fit.Grid(row))
	}

	variant := "illustration_default"
	switch spec.Type {
	case "SWEATPANTS":
		variant = "illustration_sweatpants"
	case "DENIMPANTS":
		variant = "illustration_denim"
	}
	for _, layer := range []string{"illustration_default", "illustration_sweatpants", "illustration_denim"} {
		if layer == variant {
			o.show(layer)
		} else {
			o.hide(layer)
		}
	}

	return boundSection{template: tpl(FamilyBottoms, "fit"), ops: o.list}
}

// bottomsTagSection binds the combined tag, care label and patch page.
func bottomsTagSection(spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, false)

	tag := deref(spec.Tag)
	o.richText("tag_description", descText(tag.Description), "")
	o.image("tag_description_image", descFile(tag.Description), boxSwatch)

	care := deref(spec.CareLabel)
	o.richText("carelabel_description", descText(care.Description), "")
	o.image("carelabel_description_image", descFile(care.Description), boxSwatch)

	patch := deref(spec.Patch)
	o.richText("patch_description", descText(patch.Description), "")
	o.image("patch_description_image", descFile(patch.Description), boxSwatch)

	return boundSection{template: tpl(FamilyBottoms, "tag_carelabel_patch"), ops: o.list}
}
