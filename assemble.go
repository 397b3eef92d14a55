package specsheet

import "strings"

const documentHeader = `<!DOCTYPE html>
<html>
<head>
<style>
.page {
	page-break-after: always;
}
.page:last-child {
	page-break-after: auto;
}
</style>
</head>
<body>
`

const documentFooter = `</body>
</html>
`

// assembleDocument concatenates bound section markup into one printable
// document. Each section gets a page container that forces a break after
// it; the last page is exempt so the PDF has exactly one page per
// section.
func assembleDocument(sections []string) string {
	var b strings.Builder
	b.Grow(len(documentHeader) + len(documentFooter) + 64*len(sections))
	b.WriteString(documentHeader)
	for _, markup := range sections {
		b.WriteString(`<div class="page">`)
		b.WriteString(markup)
		b.WriteString("</div>\n")
	}
	b.WriteString(documentFooter)
	return b.String()
}
