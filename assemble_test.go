package specsheet

import (
	"strings"
	"testing"
)

func TestAssembleDocument(t *testing.T) {
	t.Parallel()

	sections := []string{
		`<div data-layer="one">first</div>`,
		`<div data-layer="two">second</div>`,
		`<div data-layer="three">third</div>`,
	}
	doc := assembleDocument(sections)

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("document must start with a doctype")
	}
	if !strings.Contains(doc, "page-break-after: always") {
		t.Error("page break rule missing")
	}
	if !strings.Contains(doc, ".page:last-child") {
		t.Error("last page exemption missing")
	}
	if got := strings.Count(doc, `<div class="page">`); got != len(sections) {
		t.Errorf("got %d page containers, want %d", got, len(sections))
	}
	for _, s := range sections {
		if !strings.Contains(doc, s) {
			t.Errorf("section markup %q missing from document", s)
		}
	}
	if strings.Index(doc, "first") > strings.Index(doc, "second") {
		t.Error("sections out of order")
	}
	if !strings.HasSuffix(doc, "</body>\n</html>\n") {
		t.Errorf("document tail = %q", doc[len(doc)-20:])
	}
}

func TestAssembleDocument_Empty(t *testing.T) {
	t.Parallel()

	doc := assembleDocument(nil)
	if strings.Contains(doc, `<div class="page">`) {
		t.Error("empty input must produce no page containers")
	}
	if !strings.Contains(doc, "<body>") {
		t.Error("document skeleton missing")
	}
}
