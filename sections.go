package specsheet

import "fmt"

// sectionsFor builds the ordered, bound sections for one record. notes
// reports non-fatal drops, currently only list truncation, for the
// caller to log.
func sectionsFor(family Family, spec *Specification) (sections []boundSection, notes []string) {
	switch family {
	case FamilyTops:
		return topsSections(spec)
	case FamilyBottoms:
		return bottomsSections(spec)
	default:
		return tshirtSections(spec)
	}
}

// tpl names a section template inside its family directory.
func tpl(family Family, section string) string {
	return string(family) + "/" + section
}

// deref gives a zero-value view of an optional record block.
func deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// descText and descFile unwrap an optional description block.
func descText(d *Description) Value {
	if d == nil {
		return ""
	}
	return d.Text
}

func descFile(d *Description) *FileRef {
	if d == nil {
		return nil
	}
	return d.File
}

// header binds the product name and code slots every section carries.
// The t-shirt family and the later tops/bottoms sections substitute
// placeholder text for blank values; the early tops/bottoms sections
// leave them empty.
func header(o *ops, spec *Specification, placeholder bool) {
	nameFallback, codeFallback := "", ""
	if placeholder {
		nameFallback, codeFallback = "Product Name", "Product Code"
	}
	o.text("product_name", spec.ProductName, nameFallback)
	o.text("product_code", spec.ProductCode, codeFallback)
}

// simpleMaterialList fills the tops/bottoms plain-name rows: five fixed
// slots per list, unused rows hidden.
const simpleListSlots = 5

func simpleMaterialList(o *ops, prefix string, items []Material) {
	for i := 1; i <= simpleListSlots; i++ {
		layer := fmt.Sprintf("%s_%d", prefix, i)
		if i > len(items) {
			o.hide(layer)
			continue
		}
		o.show(layer)
		o.text(layer, items[i-1].Name, "")
	}
}

// fabricSection binds the tops/bottoms fabric page: plain material name
// rows plus a shared multi-line description with a swatch image.
func fabricSection(template string, spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, false)

	fabric := deref(spec.Fabric)
	simpleMaterialList(o, "material", fabric.Materials)
	simpleMaterialList(o, "sub_material", fabric.SubMaterials)

	o.richText("description", descText(fabric.Description), "")
	o.image("description_image", descFile(fabric.Description), boxSwatch)
	return boundSection{template: template, ops: o.list}
}

// oemPointSections binds the production points list across at most two
// pages of three slots each. rich selects escaped multi-line rendering;
// fallbacks holds the per-page text for empty descriptions.
func oemPointSections(template string, spec *Specification, rich bool, fallbacks [maxListPages]string) (secs []boundSection, notes []string) {
	points := spec.OEMPoints
	plan := PlanPages(len(points), listPageCapacity)
	if plan.Truncated {
		notes = append(notes, fmt.Sprintf(
			"oem_points: rendering %d of %d items", maxListPages*listPageCapacity, len(points)))
	}

	for page := 0; page < plan.Pages; page++ {
		o := &ops{}
		header(o, spec, true)

		start, _ := pageSlice(len(points), listPageCapacity, page)
		for slot := 1; slot <= listPageCapacity; slot++ {
			layer := fmt.Sprintf("oem_points-%d", slot)
			idx := start + slot - 1
			if idx >= len(points) {
				o.hide(layer)
				continue
			}
			point := points[idx]
			if rich {
				o.richTextIn(layer, "description", point.Description, fallbacks[page])
			} else {
				o.textIn(layer, "description", point.Description, fallbacks[page])
			}
			o.imageIn(layer, "description_image", point.File, boxSwatch)
		}
		secs = append(secs, boundSection{template: template, ops: o.list})
	}
	return secs, notes
}

// sampleSection binds the sample-production page shared by all families.
func sampleSection(template string, spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, true)

	sample := deref(spec.Sample)
	o.toggle(sample.IsSample, "yes_radio_on", "yes_radio_off")
	o.toggle(!sample.IsSample, "no_radio_on", "no_radio_off")

	if sample.IsSample {
		o.gridOr("sample", sizesFull, sample.Quantity, "0")
		o.hideAll("check_box_on")
		o.hideAll("check_box_off")
		o.hideAll("can_send_sample_text")
	} else {
		o.showAll("can_send_sample_text")
		for _, size := range sizesFull {
			o.hideAll("sample_" + size)
			o.hideAll("sample_" + size + "_frame")
			o.hideAll("sample_" + size + "_text")
		}
		o.toggle(sample.CanSendSample, "check_box_on", "check_box_off")
	}

	o.image("sample_front", sample.SampleFront, boxSamplePhoto)
	o.image("sample_back", sample.SampleBack, boxSamplePhoto)

	production := deref(spec.MainProduction)
	o.text("date", production.DeliveryDate, "")
	o.toggle(!production.DeliveryDate.IsZero(), "toggle_on", "toggle_off")
	o.gridOr("main_production", sizesFull, production.Quantity, "0")

	return boundSection{template: template, ops: o.list}
}

// informationSection binds the contact, shipping and billing page.
func informationSection(template string, spec *Specification) boundSection {
	o := &ops{}
	header(o, spec, true)

	info := deref(spec.Information)

	contact := deref(info.Contact)
	o.text("contact_name", Value(info.Contact.FullName()), "")
	o.text("contact_phone_number", contact.PhoneNumber, "")
	o.text("contact_email", contact.Email, "")

	partyBlock(o, "shipping", info.ShippingInformation)
	partyBlock(o, "billing", info.BillingInformation)

	return boundSection{template: template, ops: o.list}
}

func partyBlock(o *ops, prefix string, p *Party) {
	party := deref(p)
	o.text(prefix+"_company_name", party.CompanyName, "")
	o.text(prefix+"_name", Value(p.FullName()), "")
	o.text(prefix+"_phone_number", party.PhoneNumber, "")
	o.text(prefix+"_email", party.Email, "")
	o.text(prefix+"_zip_code", party.ZipCode, "")
	o.text(prefix+"_address_line_2", party.AddressLine2, "")
	o.text(prefix+"_address_line_1", party.AddressLine1, "")
	o.text(prefix+"_city", party.City, "")
	o.text(prefix+"_state", party.State, "")
	o.text(prefix+"_country", party.Country, "")
}
