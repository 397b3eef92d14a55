package specsheet

// FitBox is the maximum display area for an image slot, in CSS pixels.
// Box sizes are fixed per slot by the section templates.
type FitBox struct {
	MaxWidth  float64
	MaxHeight float64
}

// Image slot boxes used by the section templates.
var (
	boxSwatch       = FitBox{MaxWidth: 205, MaxHeight: 202}
	boxFitSketch    = FitBox{MaxWidth: 280, MaxHeight: 214}
	boxTagNoLabel   = FitBox{MaxWidth: 235, MaxHeight: 214}
	boxCareLabel    = FitBox{MaxWidth: 300, MaxHeight: 214}
	boxSamplePhoto  = FitBox{MaxWidth: 238, MaxHeight: 138}
	boxIllustration = FitBox{MaxWidth: 242.11, MaxHeight: 333}
)

// FitSize is the computed display size of an image.
type FitSize struct {
	Width  float64
	Height float64
}

// FitToBox scales an image of natural size w x h to fit inside box while
// preserving aspect ratio and preferring to fill the box. Landscape images
// (ratio > 1) bind to the height constraint when the width-constrained
// height would still exceed maxHeight; portrait and square images mirror
// the rule. The tie-break order is part of the printed-output contract.
func FitToBox(w, h int, box FitBox) FitSize {
	ratio := float64(w) / float64(h)

	if ratio > 1 {
		if box.MaxWidth/ratio > box.MaxHeight {
			return FitSize{Width: box.MaxHeight * ratio, Height: box.MaxHeight}
		}
		return FitSize{Width: box.MaxWidth, Height: box.MaxWidth / ratio}
	}

	if box.MaxHeight*ratio > box.MaxWidth {
		return FitSize{Width: box.MaxWidth, Height: box.MaxWidth / ratio}
	}
	return FitSize{Width: box.MaxHeight * ratio, Height: box.MaxHeight}
}
