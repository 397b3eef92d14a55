package specsheet

import (
	"encoding/json"
	"fmt"
	"time"
)

// Family identifies a template family. Each family has its own section
// templates, size range and page order.
type Family string

// Template families.
const (
	FamilyTShirt  Family = "t-shirt"
	FamilyTops    Family = "tops"
	FamilyBottoms Family = "bottoms"
)

// Product type values observed on records, grouped by template family.
var familyByType = map[string]Family{
	"T-SHIRT":       FamilyTShirt,
	"LONG_SLEEVE":   FamilyTShirt,
	"CREWNECK":      FamilyTShirt,
	"HOODIE":        FamilyTShirt,
	"ZIP_HOODIE":    FamilyTShirt,
	"HALF_ZIP":      FamilyTShirt,
	"KNIT_CREWNECK": FamilyTShirt,

	"TANK_TOP": FamilyTops,

	"SWEATPANTS1": FamilyBottoms,
	"SWEATPANTS":  FamilyBottoms,
	"DENIMPANTS":  FamilyBottoms,
}

// FamilyForType maps a record's product type to its template family.
// Returns ErrUnsupportedType for unknown values.
func FamilyForType(productType string) (Family, error) {
	f, ok := familyByType[productType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, productType)
	}
	return f, nil
}

// Size labels in display order. The t-shirt family uses the full range,
// tops and bottoms fit grids use the core range. Sample and main-production
// quantity grids always span the full range.
var (
	sizesFull = []string{"xxs", "xs", "s", "m", "l", "xl", "xxl"}
	sizesCore = []string{"xs", "s", "m", "l", "xl"}
)

// Value is a scalar record attribute. The document store does not enforce a
// type per attribute, so the same field may arrive as a JSON string or a
// number; both decode to their textual form.
type Value string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	// Number or boolean: keep the literal text.
	*v = Value(data)
	return nil
}

// MarshalJSON writes the value back as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (v Value) String() string { return string(v) }

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v == "" }

// Or returns the value, or fallback when absent.
func (v Value) Or(fallback string) string {
	if v == "" {
		return fallback
	}
	return string(v)
}

// SizeGrid maps a size label (xxs..xxl) to a measurement or quantity.
type SizeGrid map[string]Value

// FileRef points at an image in object storage. Key is relative to the
// record's storage prefix. LocalPath and the pixel dimensions are populated
// by image resolution and live only for the duration of one pipeline run.
type FileRef struct {
	Key string `json:"key,omitempty"`

	LocalPath string `json:"-"`
	Width     int    `json:"-"`
	Height    int    `json:"-"`
}

// Resolved reports whether the referenced image was fetched to disk.
func (f *FileRef) Resolved() bool {
	return f != nil && f.LocalPath != ""
}

// Description is a free-text note with an optional image attachment.
type Description struct {
	Text Value    `json:"description,omitempty"`
	File *FileRef `json:"file,omitempty"`
}

// Fit holds the measurement grid plus an optional description block. The
// record stores measurement names (total_length, chest_width, ...) as sibling
// keys of "description", so decoding splits them apart.
type Fit struct {
	Measurements map[string]SizeGrid
	Description  *Description
}

// UnmarshalJSON splits measurement grids from the description attribute.
func (f *Fit) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Measurements = make(map[string]SizeGrid, len(raw))
	for name, msg := range raw {
		if name == "description" {
			var d Description
			if err := json.Unmarshal(msg, &d); err != nil {
				return err
			}
			f.Description = &d
			continue
		}
		var g SizeGrid
		if err := json.Unmarshal(msg, &g); err != nil {
			return err
		}
		f.Measurements[name] = g
	}
	return nil
}

// MarshalJSON restores the record's flat fit object.
func (f Fit) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Measurements)+1)
	for name, g := range f.Measurements {
		out[name] = g
	}
	if f.Description != nil {
		out["description"] = f.Description
	}
	return json.Marshal(out)
}

// Grid returns the named measurement grid, which may be nil.
func (f *Fit) Grid(name string) SizeGrid {
	if f == nil {
		return nil
	}
	return f.Measurements[name]
}

// Colourway names a color choice.
type Colourway struct {
	ColorName Value `json:"color_name,omitempty"`
}

// Material is one fabric row. The t-shirt family stores structured rows
// (raw material, colourway, description with swatch image); tops and bottoms
// store plain name strings. Both decode into the same type.
type Material struct {
	Name        Value        `json:"-"`
	RowMaterial Value        `json:"row_material,omitempty"`
	Colourway   *Colourway   `json:"colourway,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// UnmarshalJSON accepts either a bare string or a structured row.
func (m *Material) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s Value
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Material{Name: s}
		return nil
	}
	type alias Material
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Material(a)
	return nil
}

// MarshalJSON writes back the form the row arrived in.
func (m Material) MarshalJSON() ([]byte, error) {
	if !m.Name.IsZero() {
		return json.Marshal(m.Name)
	}
	type alias Material
	return json.Marshal(alias(m))
}

// Fabric describes materials and sub-materials plus a shared description.
type Fabric struct {
	Materials    []Material   `json:"materials,omitempty"`
	SubMaterials []Material   `json:"sub_materials,omitempty"`
	Description  *Description `json:"description,omitempty"`
}

// Tag brand-label values for the tag material indicator.
const (
	TagMaterialWovenLabel   = "Woven label"
	TagMaterialPolyester    = "Polyester"
	TagMaterialCottonCanvas = "Cotton Canvas"
)

// Label placement values.
const (
	LabelStyleInseamLoop = "Inseam loop label"
	LabelStyleBack       = "Label on the back"
)

// Tag describes the brand tag and label options.
type Tag struct {
	IsLabel     bool         `json:"is_label,omitempty"`
	SendLabels  bool         `json:"send_labels,omitempty"`
	IsCustom    bool         `json:"is_custom,omitempty"`
	Material    Value        `json:"material,omitempty"`
	LabelStyle  Value        `json:"label_style,omitempty"`
	LabelWidth  Value        `json:"label_width,omitempty"`
	LabelHeight Value        `json:"label_height,omitempty"`
	Colourway   *Colourway   `json:"colourway,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// CareLabel describes the care label and its logo choice.
type CareLabel struct {
	HasLogo     bool         `json:"has_logo,omitempty"`
	DefaultLogo bool         `json:"default_logo,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// Patch describes the patch artwork (bottoms only).
type Patch struct {
	Description *Description `json:"description,omitempty"`
}

// OEMPoint is one production instruction with an optional reference image.
type OEMPoint struct {
	Description Value    `json:"description,omitempty"`
	File        *FileRef `json:"file,omitempty"`
}

// Sample describes sample-production options and reference photos.
type Sample struct {
	IsSample      bool     `json:"is_sample,omitempty"`
	CanSendSample bool     `json:"can_send_sample,omitempty"`
	Quantity      SizeGrid `json:"quantity,omitempty"`
	SampleFront   *FileRef `json:"sample_front,omitempty"`
	SampleBack    *FileRef `json:"sample_back,omitempty"`
}

// MainProduction holds the production order quantities and delivery date.
type MainProduction struct {
	DeliveryDate Value    `json:"delivery_date,omitempty"`
	Quantity     SizeGrid `json:"quantity,omitempty"`
}

// Party is a contact, shipping or billing block.
type Party struct {
	CompanyName  Value `json:"company_name,omitempty"`
	FirstName    Value `json:"first_name,omitempty"`
	LastName     Value `json:"last_name,omitempty"`
	PhoneNumber  Value `json:"phone_number,omitempty"`
	Email        Value `json:"email,omitempty"`
	ZipCode      Value `json:"zip_code,omitempty"`
	AddressLine1 Value `json:"address_line_1,omitempty"`
	AddressLine2 Value `json:"address_line_2,omitempty"`
	City         Value `json:"city,omitempty"`
	State        Value `json:"state,omitempty"`
	Country      Value `json:"country,omitempty"`
}

// FullName joins first and last name with a space only when both are present.
func (p *Party) FullName() string {
	if p == nil {
		return ""
	}
	first, last := p.FirstName.String(), p.LastName.String()
	if first != "" && last != "" {
		return first + " " + last
	}
	return first + last
}

// Information groups the contact, shipping and billing blocks.
type Information struct {
	Contact             *Party `json:"contact,omitempty"`
	ShippingInformation *Party `json:"shipping_information,omitempty"`
	BillingInformation  *Party `json:"billing_information,omitempty"`
}

// ArtifactRef records the rendered PDF on the specification.
type ArtifactRef struct {
	Object    string    `json:"object"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Specification is the root record driving one sheet.
type Specification struct {
	SpecificationID string          `json:"specification_id"`
	TenantID        string          `json:"tenant_id"`
	ProductName     Value           `json:"product_name,omitempty"`
	ProductCode     Value           `json:"product_code,omitempty"`
	Type            string          `json:"type,omitempty"`
	Fit             *Fit            `json:"fit,omitempty"`
	Fabric          *Fabric         `json:"fabric,omitempty"`
	Tag             *Tag            `json:"tag,omitempty"`
	CareLabel       *CareLabel      `json:"care_label,omitempty"`
	Patch           *Patch          `json:"patch,omitempty"`
	OEMPoints       []OEMPoint      `json:"oem_points,omitempty"`
	Sample          *Sample         `json:"sample,omitempty"`
	MainProduction  *MainProduction `json:"main_production,omitempty"`
	Information     *Information    `json:"information,omitempty"`

	// SpecificationFile is written by the pipeline, never read by it.
	SpecificationFile *ArtifactRef `json:"specification_file,omitempty"`
}
