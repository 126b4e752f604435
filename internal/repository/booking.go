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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`
	if err = tx.QueryRowContext(ctx, existsQuery, b.ListingID).Scan(&exists); err != nil {
		return fmt.Errorf("check listing: %w", err)
	}
	if !exists {
		return domain.ErrListingNotFound
	}

	query := `INSERT INTO bookings (id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.ListingID, b.RequesterID,
		b.CheckIn, b.CheckOut, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.ListingID, &b.RequesterID, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// Confirm promotes a pending hold to confirmed and flips the listing flag in
// one transaction. The listing row lock is the serialization point between
// racing commits: the loser finds is_booked already set, its hold is cancelled
// in the same transaction and ErrConcurrentConflict is returned. A reader can
// never observe a confirmed booking whose listing is still un-booked.
func (r *BookingRepository) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `SELECT id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at
					 FROM bookings
					 WHERE id = $1
					 FOR UPDATE`
	var b domain.Booking
	if err = tx.QueryRowContext(ctx, bookingQuery, id).Scan(
		&b.ID, &b.ListingID, &b.RequesterID, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	var isBooked bool
	listingQuery := `SELECT is_booked FROM listings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, listingQuery, b.ListingID).Scan(&isBooked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("lock listing: %w", err)
	}

	if isBooked {
		// Lost the race. Cancel the hold so no half-applied booking survives.
		cancelQuery := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
		if _, err = tx.ExecContext(ctx, cancelQuery, b.ID, domain.BookingStatusCancelled); err != nil {
			return nil, fmt.Errorf("cancel conflicting hold: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit conflict cancellation: %w", err)
		}
		return nil, domain.ErrConcurrentConflict
	}

	confirmQuery := `UPDATE bookings
					 SET status = $2, updated_at = now()
					 WHERE id = $1
					 RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, confirmQuery, b.ID, domain.BookingStatusConfirmed).Scan(&b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	flagQuery := `UPDATE listings SET is_booked = TRUE, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, flagQuery, b.ListingID); err != nil {
		return nil, fmt.Errorf("mark listing booked: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirmation: %w", err)
	}

	b.Status = domain.BookingStatusConfirmed
	return &b, nil
}

// Cancel drops a pending hold. Cancelling an already cancelled booking is a
// no-op; a confirmed booking cannot be cancelled this way.
func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCancelled, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qErr != nil {
			return fmt.Errorf("check booking: %w", qErr)
		}
		if scanErr := row.Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if status == domain.BookingStatusConfirmed {
			return domain.ErrBookingNotPending
		}
	}

	return nil
}

// CancelStale reaps holds that were never confirmed or abandoned, e.g. when
// the workflow instance holding them died with the process.
func (r *BookingRepository) CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale holds: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.ListingID, &b.RequesterID, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error) {
	query := `SELECT id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at
			  FROM bookings
			  WHERE requester_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by requester: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.ListingID, &b.RequesterID, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error) {
	query := `SELECT id, listing_id, requester_id, check_in, check_out, status, created_at, updated_at
			  FROM bookings
			  WHERE listing_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by listing: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.ListingID, &b.RequesterID, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
