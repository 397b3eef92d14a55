package assets

import (
	"errors"
	"strings"
	"testing"
)

var allTemplates = []string{
	"t-shirt/fit",
	"t-shirt/materials",
	"t-shirt/tag_nolabel",
	"t-shirt/tag_label",
	"t-shirt/carelabel",
	"t-shirt/oem_points",
	"t-shirt/sample",
	"t-shirt/information",
	"tops/fit",
	"tops/fabric",
	"tops/tag",
	"tops/oem_points",
	"tops/sample",
	"tops/information",
	"bottoms/fit",
	"bottoms/fabric",
	"bottoms/tag_carelabel_patch",
	"bottoms/oem_points",
	"bottoms/sample",
	"bottoms/information",
}

func TestSection(t *testing.T) {
	t.Parallel()

	for _, name := range allTemplates {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			content, err := Section(name)
			if err != nil {
				t.Fatalf("Section(%q) error = %v", name, err)
			}
			if !strings.Contains(content, "data-layer=") {
				t.Errorf("Section(%q) has no addressable slots", name)
			}
		})
	}
}

func TestSection_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Section("t-shirt/nonexistent")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid pair", input: "tops/fit"},
		{name: "hyphenated family", input: "t-shirt/tag_nolabel"},
		{name: "no separator", input: "fit", wantErr: true},
		{name: "empty family", input: "/fit", wantErr: true},
		{name: "empty section", input: "tops/", wantErr: true},
		{name: "extra separator", input: "tops/fit/extra", wantErr: true},
		{name: "dot traversal", input: "../templates/tops", wantErr: true},
		{name: "hidden extension", input: "tops/fit.html", wantErr: true},
		{name: "backslash", input: `tops\fit/x`, wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateName(%q) error = %v", tt.input, err)
			}
		})
	}
}
