package specsheet

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFamilyForType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		productType string
		want        Family
		wantErr     bool
	}{
		{productType: "T-SHIRT", want: FamilyTShirt},
		{productType: "HOODIE", want: FamilyTShirt},
		{productType: "KNIT_CREWNECK", want: FamilyTShirt},
		{productType: "TANK_TOP", want: FamilyTops},
		{productType: "SWEATPANTS", want: FamilyBottoms},
		{productType: "SWEATPANTS1", want: FamilyBottoms},
		{productType: "DENIMPANTS", want: FamilyBottoms},
		{productType: "SOCKS", wantErr: true},
		{productType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.productType, func(t *testing.T) {
			t.Parallel()

			got, err := FamilyForType(tt.productType)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedType) {
					t.Errorf("FamilyForType(%q) error = %v, want ErrUnsupportedType", tt.productType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FamilyForType(%q) error = %v", tt.productType, err)
			}
			if got != tt.want {
				t.Errorf("FamilyForType(%q) = %q, want %q", tt.productType, got, tt.want)
			}
		})
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Value
	}{
		{name: "string", data: `"52.5"`, want: "52.5"},
		{name: "number keeps literal text", data: `52.5`, want: "52.5"},
		{name: "integer", data: `7`, want: "7"},
		{name: "boolean", data: `true`, want: "true"},
		{name: "null is empty", data: `null`, want: ""},
		{name: "empty string", data: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var v Value
			if err := json.Unmarshal([]byte(tt.data), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.data, err)
			}
			if v != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.data, v, tt.want)
			}
		})
	}
}

func TestFitUnmarshalJSON(t *testing.T) {
	t.Parallel()

	data := `{
		"total_length": {"s": "68", "m": 70},
		"chest_width": {"m": "52"},
		"description": {"description": "boxy fit", "file": {"key": "sketch.png"}}
	}`

	var fit Fit
	if err := json.Unmarshal([]byte(data), &fit); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if got := fit.Grid("total_length")["m"]; got != "70" {
		t.Errorf("total_length.m = %q, want 70", got)
	}
	if got := fit.Grid("chest_width")["m"]; got != "52" {
		t.Errorf("chest_width.m = %q, want 52", got)
	}
	if fit.Grid("waist") != nil {
		t.Error("absent grid should be nil")
	}
	if fit.Description == nil || fit.Description.Text != "boxy fit" {
		t.Fatalf("description = %+v", fit.Description)
	}
	if fit.Description.File == nil || fit.Description.File.Key != "sketch.png" {
		t.Errorf("description file = %+v", fit.Description.File)
	}
}

func TestMaterialUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("bare string form", func(t *testing.T) {
		t.Parallel()

		var m Material
		if err := json.Unmarshal([]byte(`"100% cotton jersey"`), &m); err != nil {
			t.Fatalf("Unmarshal error = %v", err)
		}
		if m.Name != "100% cotton jersey" {
			t.Errorf("Name = %q", m.Name)
		}
	})

	t.Run("structured row form", func(t *testing.T) {
		t.Parallel()

		data := `{
			"row_material": "Cotton 80 / Poly 20",
			"colourway": {"color_name": "Washed black"},
			"description": {"description": "fleece-backed", "file": {"key": "swatch.jpg"}}
		}`

		var m Material
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			t.Fatalf("Unmarshal error = %v", err)
		}
		if !m.Name.IsZero() {
			t.Errorf("Name = %q, want empty for structured row", m.Name)
		}
		if m.RowMaterial != "Cotton 80 / Poly 20" {
			t.Errorf("RowMaterial = %q", m.RowMaterial)
		}
		if m.Colourway == nil || m.Colourway.ColorName != "Washed black" {
			t.Errorf("Colourway = %+v", m.Colourway)
		}
		if m.Description == nil || m.Description.File.Key != "swatch.jpg" {
			t.Errorf("Description = %+v", m.Description)
		}
	})
}

func TestPartyFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		party *Party
		want  string
	}{
		{name: "both names joined", party: &Party{FirstName: "Hana", LastName: "Sato"}, want: "Hana Sato"},
		{name: "first only no separator", party: &Party{FirstName: "Hana"}, want: "Hana"},
		{name: "last only no separator", party: &Party{LastName: "Sato"}, want: "Sato"},
		{name: "empty", party: &Party{}, want: ""},
		{name: "nil party", party: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.party.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecificationUnmarshalJSON(t *testing.T) {
	t.Parallel()

	data := `{
		"specification_id": "spec-1",
		"tenant_id": "tenant-1",
		"product_name": "Heavyweight Tee",
		"type": "T-SHIRT",
		"fit": {"total_length": {"m": "72"}},
		"fabric": {"materials": ["cotton"], "sub_materials": [{"row_material": "rib"}]},
		"oem_points": [{"description": "double stitch", "file": {"key": "oem1.png"}}],
		"sample": {"is_sample": true, "quantity": {"m": 2}}
	}`

	var spec Specification
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if spec.ProductName != "Heavyweight Tee" {
		t.Errorf("ProductName = %q", spec.ProductName)
	}
	if spec.Fit == nil || spec.Fit.Grid("total_length")["m"] != "72" {
		t.Error("fit grid not decoded")
	}
	if len(spec.Fabric.Materials) != 1 || spec.Fabric.Materials[0].Name != "cotton" {
		t.Errorf("materials = %+v", spec.Fabric.Materials)
	}
	if len(spec.Fabric.SubMaterials) != 1 || spec.Fabric.SubMaterials[0].RowMaterial != "rib" {
		t.Errorf("sub materials = %+v", spec.Fabric.SubMaterials)
	}
	if spec.Sample == nil || !spec.Sample.IsSample || spec.Sample.Quantity["m"] != "2" {
		t.Errorf("sample = %+v", spec.Sample)
	}
}
