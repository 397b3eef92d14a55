// Package specsheet renders garment product specification sheets to PDF
// using headless Chrome.
//
// A specification record (t-shirt, hoodie, bottoms or tops family) is loaded
// from a record store, its referenced images are resolved from object storage
// into a scratch directory, and each section of the sheet is produced by
// applying a declarative table of slot operations to an embedded HTML
// template inside a reused browser page. The filled sections are concatenated
// into one paginated document and printed to PDF at a fixed 595x842 px page
// box, then uploaded back to object storage with an artifact-reference update
// on the source record.
//
// # Quick Start
//
//	svc := specsheet.New(specs, objects)
//	defer svc.Close()
//
//	err := svc.Generate(ctx, "spec-123", "tenant-1")
//	switch {
//	case errors.Is(err, specsheet.ErrSpecificationNotFound):
//	    // 404: no such record
//	case errors.Is(err, specsheet.ErrUnsupportedType):
//	    // 400: unknown product type
//	case err != nil:
//	    // 500
//	}
//
// # Pipeline
//
//  1. Record lookup by (specification_id, tenant_id)
//  2. Template family selection from the product type
//  3. Image resolution (object storage -> scratch files + pixel dimensions)
//  4. Section binding (one reused browser page, reset between sections)
//  5. Document assembly (page containers with page-break styling)
//  6. PDF rasterization and upload, record artifact update
//
// # Parallel Processing
//
// Each Service owns one browser. For concurrent invocations use Pool:
//
//	pool := specsheet.NewPool(4, specs, objects)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. go-rod downloads a managed Chromium on
// first run. Use ROD_BROWSER_BIN to point at a pre-installed binary; the
// sandbox is disabled automatically under CI or when a custom binary is set.
package specsheet
