package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, owner_id, location, availability_start, availability_end,
				price_per_night, notes, image_url, is_booked, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Location, l.AvailabilityStart, l.AvailabilityEnd,
		l.PricePerNight, l.Notes, l.ImageURL, l.IsBooked, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, owner_id, location, availability_start, availability_end,
					price_per_night, notes, image_url, is_booked, created_at, updated_at
			  FROM listings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}

	var l domain.Listing
	if err = row.Scan(
		&l.ID, &l.OwnerID, &l.Location, &l.AvailabilityStart, &l.AvailabilityEnd,
		&l.PricePerNight, &l.Notes, &l.ImageURL, &l.IsBooked, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return &l, nil
}

// ListAvailable returns un-booked listings, newest first. The result is a
// snapshot: flips that happen after the query are not reflected in it.
func (r *ListingRepository) ListAvailable(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT id, owner_id, location, availability_start, availability_end,
					price_per_night, notes, image_url, is_booked, created_at, updated_at
			  FROM listings
			  WHERE is_booked = FALSE
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list available listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err = rows.Scan(
			&l.ID, &l.OwnerID, &l.Location, &l.AvailabilityStart, &l.AvailabilityEnd,
			&l.PricePerNight, &l.Notes, &l.ImageURL, &l.IsBooked, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

// MarkBooked is idempotent: setting the flag on an already booked listing
// matches the row again and is not an error.
func (r *ListingRepository) MarkBooked(ctx context.Context, id string) error {
	query := `UPDATE listings
			  SET is_booked = TRUE, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("mark listing booked: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}
