package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
// Destinations are stored as a JSONB column; everything else maps to
// plain columns.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL trip repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const tripColumns = `
	id, user_id, name,
	start_location, return_location, destinations,
	total_days, travel_style, budget_tier,
	total_budget, currency, travelers, travel_preference,
	created_at, updated_at
`

// Get retrieves a trip by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	return r.scanTrip(ctx, query, id)
}

// GetByUserAndID retrieves a trip by user ID and trip ID.
func (r *PostgresRepository) GetByUserAndID(ctx context.Context, userID, tripID string) (*Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND user_id = $2`
	return r.scanTrip(ctx, query, tripID, userID)
}

// scanTrip scans a trip from a query result.
func (r *PostgresRepository) scanTrip(ctx context.Context, query string, args ...interface{}) (*Trip, error) {
	var t Trip

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.StartLocation,
		&t.ReturnLocation,
		&t.Destinations,
		&t.TotalDays,
		&t.TravelStyle,
		&t.BudgetTier,
		&t.TotalBudget,
		&t.Currency,
		&t.Travelers,
		&t.TravelPreference,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	return &t, nil
}

// List retrieves all trips for a user with pagination.
func (r *PostgresRepository) List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results
	fetchLimit := limit + 1

	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		var t Trip
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Name,
			&t.StartLocation,
			&t.ReturnLocation,
			&t.Destinations,
			&t.TotalDays,
			&t.TravelStyle,
			&t.BudgetTier,
			&t.TotalBudget,
			&t.Currency,
			&t.Travelers,
			&t.TravelPreference,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		trips = append(trips, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &ListResult{
		Items: trips,
	}

	if len(trips) > limit {
		result.Items = trips[:limit]
		result.NextCursor = trips[limit-1].ID
	}

	return result, nil
}

// Create creates a new trip.
func (r *PostgresRepository) Create(ctx context.Context, t *Trip) error {
	query := `
		INSERT INTO trips (
			id, user_id, name,
			start_location, return_location, destinations,
			total_days, travel_style, budget_tier,
			total_budget, currency, travelers, travel_preference,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		t.ID,
		t.UserID,
		t.Name,
		t.StartLocation,
		t.ReturnLocation,
		t.Destinations,
		t.TotalDays,
		t.TravelStyle,
		t.BudgetTier,
		t.TotalBudget,
		t.Currency,
		t.Travelers,
		t.TravelPreference,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

// Update updates an existing trip.
func (r *PostgresRepository) Update(ctx context.Context, t *Trip) error {
	query := `
		UPDATE trips SET
			name = $2,
			start_location = $3,
			return_location = $4,
			destinations = $5,
			total_days = $6,
			travel_style = $7,
			budget_tier = $8,
			total_budget = $9,
			currency = $10,
			travelers = $11,
			travel_preference = $12,
			updated_at = $13
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		t.ID,
		t.Name,
		t.StartLocation,
		t.ReturnLocation,
		t.Destinations,
		t.TotalDays,
		t.TravelStyle,
		t.BudgetTier,
		t.TotalBudget,
		t.Currency,
		t.Travelers,
		t.TravelPreference,
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}

// Delete deletes a trip by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM trips WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
