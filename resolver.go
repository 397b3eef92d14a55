package specsheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// ObjectStore is the object storage surface the pipeline needs: image
// downloads on the way in, the finished PDF on the way out. Keys are
// bucket-relative.
type ObjectStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
}

// fetchConcurrency bounds parallel image downloads per record.
const fetchConcurrency = 4

// imageRefs collects every file reference the record's sections can
// bind. Refs belonging to sections another family owns are harmless:
// a resolved image nothing binds is never rendered.
func imageRefs(spec *Specification) []*FileRef {
	var refs []*FileRef
	add := func(f *FileRef) {
		if f != nil && f.Key != "" {
			refs = append(refs, f)
		}
	}

	if spec.Fit != nil {
		add(descFile(spec.Fit.Description))
	}
	if spec.Fabric != nil {
		for i := range spec.Fabric.Materials {
			add(descFile(spec.Fabric.Materials[i].Description))
		}
		for i := range spec.Fabric.SubMaterials {
			add(descFile(spec.Fabric.SubMaterials[i].Description))
		}
		add(descFile(spec.Fabric.Description))
	}
	if spec.Tag != nil {
		add(descFile(spec.Tag.Description))
	}
	if spec.CareLabel != nil {
		add(descFile(spec.CareLabel.Description))
	}
	if spec.Patch != nil {
		add(descFile(spec.Patch.Description))
	}
	for i := range spec.OEMPoints {
		add(spec.OEMPoints[i].File)
	}
	if spec.Sample != nil {
		add(spec.Sample.SampleFront)
		add(spec.Sample.SampleBack)
	}
	return refs
}

// resolveImages downloads every referenced image into scratchDir and
// records the local path and pixel dimensions on each ref. Object keys
// are resolved under the record's tenant/specification prefix. Any
// failed download or undecodable image fails the whole record.
func resolveImages(ctx context.Context, store ObjectStore, spec *Specification, scratchDir string) error {
	refs := imageRefs(spec)
	if len(refs) == 0 {
		return nil
	}

	prefix := spec.TenantID + "/" + spec.SpecificationID + "/"

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, ref := range refs {
		g.Go(func() error {
			return fetchImage(ctx, store, prefix+ref.Key, scratchDir, ref)
		})
	}
	return g.Wait()
}

func fetchImage(ctx context.Context, store ObjectStore, key, scratchDir string, ref *FileRef) error {
	body, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImageFetch, key, err)
	}
	defer body.Close()

	dest := filepath.Join(scratchDir, filepath.Base(ref.Key))
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImageFetch, key, err)
	}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		return fmt.Errorf("%w: %s: %v", ErrImageFetch, key, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImageFetch, key, err)
	}

	img, err := imaging.Open(dest)
	if err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrImageFetch, key, err)
	}
	bounds := img.Bounds()

	ref.LocalPath = dest
	ref.Width = bounds.Dx()
	ref.Height = bounds.Dy()
	return nil
}
