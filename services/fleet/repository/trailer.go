package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
)

// CreateTrailer inserts a new trailer
func (r *FleetRepo) CreateTrailer(ctx context.Context, trailer *models.Trailer) error {
	trailer.ID = uuid.New()
	trailer.Plate = strings.ToUpper(trailer.Plate)
	now := time.Now()
	trailer.CreatedAt = now
	trailer.UpdatedAt = now

	query := `
		INSERT INTO trailers (id, plate, type, max_load, status, created_at, updated_at)
		VALUES (:id, :plate, :type, :max_load, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trailer); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrTrailerPlateExists
		}
		return fmt.Errorf("failed to insert trailer: %w", err)
	}
	return nil
}

// GetTrailer retrieves a trailer by id
func (r *FleetRepo) GetTrailer(ctx context.Context, id uuid.UUID) (*models.Trailer, error) {
	query := `
		SELECT id, plate, type, max_load, status, created_at, updated_at
		FROM trailers
		WHERE id = $1
	`
	var trailer models.Trailer
	if err := r.db.GetContext(ctx, &trailer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrTrailerNotFound
		}
		return nil, fmt.Errorf("failed to get trailer: %w", err)
	}
	return &trailer, nil
}

// ListTrailers returns every trailer, newest first
func (r *FleetRepo) ListTrailers(ctx context.Context) ([]models.Trailer, error) {
	query := `
		SELECT id, plate, type, max_load, status, created_at, updated_at
		FROM trailers
		ORDER BY created_at DESC
	`
	trailers := []models.Trailer{}
	if err := r.db.SelectContext(ctx, &trailers, query); err != nil {
		return nil, fmt.Errorf("failed to list trailers: %w", err)
	}
	return trailers, nil
}

// UpdateTrailer persists the mutable trailer fields
func (r *FleetRepo) UpdateTrailer(ctx context.Context, trailer *models.Trailer) error {
	trailer.UpdatedAt = time.Now()

	query := `
		UPDATE trailers SET
			type = :type,
			max_load = :max_load,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, trailer)
	if err != nil {
		return fmt.Errorf("failed to update trailer: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTrailerNotFound
	}
	return nil
}

// DeleteTrailer removes a trailer record
func (r *FleetRepo) DeleteTrailer(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trailers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trailer: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTrailerNotFound
	}
	return nil
}

// ClaimTrailer conditionally marks an available trailer as attached
func (r *FleetRepo) ClaimTrailer(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trailers SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.TrailerStatusAttached, id, models.TrailerStatusAvailable,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim trailer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim trailer: %w", err)
	}
	return affected == 1, nil
}

// ReleaseTrailer marks an attached trailer as available again
func (r *FleetRepo) ReleaseTrailer(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE trailers SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.TrailerStatusAvailable, id, models.TrailerStatusAttached,
	)
	if err != nil {
		return fmt.Errorf("failed to release trailer: %w", err)
	}
	return nil
}
