package specsheet

import "errors"

// Sentinel errors for pipeline operations.
var (
	// Input classification errors. These map to the worker's 404/400 responses.
	ErrSpecificationNotFound = errors.New("specification not found")
	ErrUnsupportedType       = errors.New("unsupported product type")

	// Stage failures. All of these surface as 500 at the trigger boundary.
	ErrImageFetch    = errors.New("image fetch failed")
	ErrBind          = errors.New("section binding failed")
	ErrMissingSlot   = errors.New("template slot not found")
	ErrPDFGeneration = errors.New("PDF generation failed")
	ErrUpload        = errors.New("artifact upload failed")
	ErrRecordUpdate  = errors.New("record update failed")

	// Browser surface errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
