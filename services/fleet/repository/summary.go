package repository

import (
	"context"
	"fmt"
)

// CountTrucksByStatus returns truck counts grouped by status
func (r *FleetRepo) CountTrucksByStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, "trucks")
}

// CountTrailersByStatus returns trailer counts grouped by status
func (r *FleetRepo) CountTrailersByStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, "trailers")
}

func (r *FleetRepo) countByStatus(ctx context.Context, table string) (map[string]int, error) {
	query := fmt.Sprintf("SELECT status, COUNT(*) FROM %s GROUP BY status", table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan %s status count: %w", table, err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountActiveTrips counts trips that have not finished
func (r *FleetRepo) CountActiveTrips(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM trips WHERE status != 'finished'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active trips: %w", err)
	}
	return count, nil
}
