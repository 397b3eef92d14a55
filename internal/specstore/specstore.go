// Package specstore persists specification records as JSONB documents in
// PostgreSQL, keyed by specification and tenant.
package specstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	specsheet "github.com/oemspec/go-specsheet"
)

// Compile-time interface check
var _ specsheet.SpecificationStore = (*Store)(nil)

// Store reads and updates specification documents.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL with the pgx stdlib driver.
func Open(url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get loads one specification document. Returns an error wrapping
// specsheet.ErrSpecificationNotFound when no row matches.
func (s *Store) Get(ctx context.Context, specificationID, tenantID string) (*specsheet.Specification, error) {
	const query = `
		SELECT document
		FROM specifications
		WHERE specification_id = $1 AND tenant_id = $2`

	var document []byte
	err := s.db.QueryRowContext(ctx, query, specificationID, tenantID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", specsheet.ErrSpecificationNotFound, tenantID, specificationID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying specification: %w", err)
	}

	var spec specsheet.Specification
	if err := json.Unmarshal(document, &spec); err != nil {
		return nil, fmt.Errorf("decoding specification document: %w", err)
	}
	spec.SpecificationID = specificationID
	spec.TenantID = tenantID
	return &spec, nil
}

// SetArtifact records the rendered PDF reference on the document.
func (s *Store) SetArtifact(ctx context.Context, specificationID, tenantID string, artifact specsheet.ArtifactRef) error {
	const query = `
		UPDATE specifications
		SET document = jsonb_set(document, '{specification_file}', $3::jsonb, true)
		WHERE specification_id = $1 AND tenant_id = $2`

	payload, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, specificationID, tenantID, payload)
	if err != nil {
		return fmt.Errorf("updating specification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating specification: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", specsheet.ErrSpecificationNotFound, tenantID, specificationID)
	}
	return nil
}
