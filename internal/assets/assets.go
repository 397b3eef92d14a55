// Package assets provides the embedded HTML section templates for sheet
// generation. Templates are organized by family directory, e.g.
// "t-shirt/fit" or "bottoms/sample", and addressed by that name without
// the .html extension.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates
var templates embed.FS

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the template name contains invalid
	// characters such as dots or extra path separators.
	ErrInvalidAssetName = errors.New("invalid template name")
)

// Section loads a section template by "family/section" name.
func Section(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ValidateName checks that a template name is a single family/section
// pair safe for use as an embedded path.
func ValidateName(name string) error {
	family, section, ok := strings.Cut(name, "/")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	for _, segment := range []string{family, section} {
		if segment == "" || strings.ContainsAny(segment, "/\\.") {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
