package specsheet

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/oemspec/go-specsheet/internal/assets"
)

// SpecificationStore loads records and writes back the artifact
// reference after a successful render. Get returns an error wrapping
// ErrSpecificationNotFound when no record matches.
type SpecificationStore interface {
	Get(ctx context.Context, specificationID, tenantID string) (*Specification, error)
	SetArtifact(ctx context.Context, specificationID, tenantID string, artifact ArtifactRef) error
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	scratchDir string
}

// defaultTimeout bounds each browser navigation and evaluation.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-navigation browser timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.cfg.timeout = d }
}

// WithScratchDir sets the parent directory for per-run image scratch
// space. Defaults to the system temp directory.
func WithScratchDir(dir string) Option {
	return func(s *Service) { s.cfg.scratchDir = dir }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// withSurface injects a rendering surface, used by tests to run the
// pipeline without a browser.
func withSurface(surface renderSurface) Option {
	return func(s *Service) { s.surface = surface }
}

// Service orchestrates the sheet-generation pipeline. Each Service owns
// one browser surface; use Pool for parallel processing.
type Service struct {
	cfg     serviceConfig
	specs   SpecificationStore
	objects ObjectStore
	surface renderSurface
	logger  *zap.Logger
}

// New creates a Service over the given stores with default
// configuration. Use options to customize behavior (e.g., WithTimeout).
func New(specs SpecificationStore, objects ObjectStore, opts ...Option) *Service {
	s := &Service{
		cfg:     serviceConfig{timeout: defaultTimeout, scratchDir: os.TempDir()},
		specs:   specs,
		objects: objects,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the browser surface if not injected (e.g., by tests)
	if s.surface == nil {
		s.surface = newRodSurface(s.cfg.timeout)
	}

	return s
}

// Generate renders the sheet for one record and stores the result: the
// PDF goes to object storage under the record's prefix and the record
// gets its artifact reference updated. The context is used for
// cancellation and timeout.
func (s *Service) Generate(ctx context.Context, specificationID, tenantID string) error {
	log := s.logger.With(
		zap.String("specification_id", specificationID),
		zap.String("tenant_id", tenantID),
	)

	spec, err := s.specs.Get(ctx, specificationID, tenantID)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	family, err := FamilyForType(spec.Type)
	if err != nil {
		return err
	}
	log.Info("generating specification sheet",
		zap.String("type", spec.Type),
		zap.String("family", string(family)),
	)

	scratch, err := os.MkdirTemp(s.cfg.scratchDir, "specsheet-*")
	if err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	if err := resolveImages(ctx, s.objects, spec, scratch); err != nil {
		return err
	}

	sections, notes := sectionsFor(family, spec)
	for _, note := range notes {
		log.Warn("list overflow", zap.String("detail", note))
	}

	markups := make([]string, 0, len(sections))
	for _, section := range sections {
		templateHTML, err := assets.Section(section.template)
		if err != nil {
			return fmt.Errorf("%w: loading template %s: %v", ErrBind, section.template, err)
		}
		markup, err := s.surface.BindSection(ctx, templateHTML, section.ops)
		if err != nil {
			return fmt.Errorf("binding %s: %w", section.template, err)
		}
		markups = append(markups, markup)
	}

	pdf, err := s.surface.RenderPDF(ctx, assembleDocument(markups))
	if err != nil {
		return err
	}

	artifactObject := specificationID + ".pdf"
	key := tenantID + "/" + specificationID + "/" + artifactObject
	if err := s.objects.Put(ctx, key, bytes.NewReader(pdf), int64(len(pdf)), "application/pdf"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpload, key, err)
	}

	artifact := ArtifactRef{Object: artifactObject, UpdatedAt: time.Now().UTC()}
	if err := s.specs.SetArtifact(ctx, specificationID, tenantID, artifact); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordUpdate, err)
	}

	log.Info("specification sheet stored",
		zap.String("object", key),
		zap.Int("pages", len(markups)),
		zap.Int("bytes", len(pdf)),
	)
	return nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.surface != nil {
		return s.surface.Close()
	}
	return nil
}
