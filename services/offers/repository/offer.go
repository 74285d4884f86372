package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

const offerColumns = `id, passenger_id, selected_driver_id, start_point, start_lat, start_lon,
	end_point, end_lat, end_lon, price, passenger_phone, departure_time, state, version, created_at`

// Save upserts the offer row and reconciles its bid linkages inside one
// transaction. Updates are guarded on the caller's snapshot version and
// never touch a terminal row, so a writer holding a stale snapshot (or
// racing a finalize) gets a state conflict instead of overwriting.
func (r *OfferRepo) Save(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO offers (id, passenger_id, selected_driver_id, start_point, start_lat, start_lon,
			end_point, end_lat, end_lon, price, passenger_phone, departure_time, state, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1, $14)
		ON CONFLICT (id) DO UPDATE SET
			selected_driver_id = EXCLUDED.selected_driver_id,
			price = EXCLUDED.price,
			passenger_phone = EXCLUDED.passenger_phone,
			departure_time = EXCLUDED.departure_time,
			state = EXCLUDED.state,
			version = offers.version + 1
		WHERE offers.version = $15 AND offers.state NOT IN ('VALIDATED', 'CANCELLED')
		RETURNING version`

	if err := tx.QueryRowxContext(ctx, query,
		offer.ID, offer.PassengerID, offer.SelectedDriverID,
		offer.StartPoint, offer.StartLat, offer.StartLon,
		offer.EndPoint, offer.EndLat, offer.EndLon,
		offer.Price, offer.PassengerPhone, offer.DepartureTime,
		offer.State, offer.CreatedAt, offer.Version,
	).Scan(&offer.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.StateConflictError{Current: string(offer.State), Op: "save offer"}
		}
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM offer_driver_linkages WHERE offer_id = $1`, offer.ID); err != nil {
		return nil, fmt.Errorf("failed to clear offer linkages: %w", err)
	}
	for _, bid := range offer.Bids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO offer_driver_linkages (offer_id, driver_id, position) VALUES ($1, $2, $3)`,
			offer.ID, bid.DriverID, bid.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to save offer linkage: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit offer: %w", err)
	}
	return offer, nil
}

// AddBid appends one driver's bid in its own transaction. The row lock on
// the offer serializes concurrent submissions, so interleaved bids from
// distinct drivers each land as their own linkage row. A repeat bid from
// the same driver moves to the tail and the remaining positions close up.
func (r *OfferRepo) AddBid(ctx context.Context, offerID, driverID uuid.UUID) (*models.Offer, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var state models.OfferState
	if err := tx.GetContext(ctx, &state, `SELECT state FROM offers WHERE id = $1 FOR UPDATE`, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "offer", ID: offerID.String()}
		}
		return nil, fmt.Errorf("failed to lock offer: %w", err)
	}
	if state.IsTerminal() {
		return nil, apperrors.StateConflictError{Current: string(state), Op: "submit a bid"}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM offer_driver_linkages WHERE offer_id = $1 AND driver_id = $2`,
		offerID, driverID,
	); err != nil {
		return nil, fmt.Errorf("failed to clear previous bid: %w", err)
	}
	// Close any gap left by the delete so positions stay a dense arrival
	// order, then append at the tail.
	if _, err := tx.ExecContext(ctx, `
		UPDATE offer_driver_linkages SET position = ranked.rn - 1
		FROM (
			SELECT driver_id, ROW_NUMBER() OVER (ORDER BY position) AS rn
			FROM offer_driver_linkages WHERE offer_id = $1
		) ranked
		WHERE offer_driver_linkages.offer_id = $1
		  AND offer_driver_linkages.driver_id = ranked.driver_id`,
		offerID,
	); err != nil {
		return nil, fmt.Errorf("failed to renumber bids: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO offer_driver_linkages (offer_id, driver_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM offer_driver_linkages WHERE offer_id = $1`,
		offerID, driverID,
	); err != nil {
		return nil, fmt.Errorf("failed to append bid: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE offers SET state = CASE WHEN state = $2 THEN $3 ELSE state END, version = version + 1
		WHERE id = $1`,
		offerID, models.OfferStatePending, models.OfferStateBidReceived,
	); err != nil {
		return nil, fmt.Errorf("failed to bump offer state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bid: %w", err)
	}
	return r.FindByID(ctx, offerID)
}

// FindByID loads an offer and its bids ordered by arrival position
func (r *OfferRepo) FindByID(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	query := fmt.Sprintf(`SELECT %s FROM offers WHERE id = $1`, offerColumns)
	if err := r.db.GetDB().GetContext(ctx, &offer, query, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "offer", ID: offerID.String()}
		}
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}
	if err := r.loadBids(ctx, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// FindLatestOpen returns the newest offers still accepting bids
func (r *OfferRepo) FindLatestOpen(ctx context.Context, limit int) ([]*models.Offer, error) {
	var offers []*models.Offer
	query := fmt.Sprintf(`SELECT %s FROM offers
		WHERE state IN ('PENDING', 'BID_RECEIVED')
		ORDER BY created_at DESC LIMIT $1`, offerColumns)
	if err := r.db.GetDB().SelectContext(ctx, &offers, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query open offers: %w", err)
	}
	for _, offer := range offers {
		if err := r.loadBids(ctx, offer); err != nil {
			return nil, err
		}
	}
	return offers, nil
}

// FinalizeWithRide moves the offer to VALIDATED and creates its ride in a
// single transaction. The guarded update keeps a concurrently cancelled or
// already finalized offer from being finalized twice.
func (r *OfferRepo) FinalizeWithRide(ctx context.Context, offer *models.Offer, ride *models.Ride) error {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE offers SET state = $1, selected_driver_id = $2, version = version + 1
		WHERE id = $3 AND state NOT IN ('VALIDATED', 'CANCELLED')`,
		models.OfferStateValidated, offer.SelectedDriverID, offer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize offer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read finalize result: %w", err)
	}
	if affected == 0 {
		return apperrors.StateConflictError{Current: string(offer.State), Op: "finalize offer"}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rides (id, offer_id, passenger_id, driver_id, distance, duration, time_real, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ride.ID, ride.OfferID, ride.PassengerID, ride.DriverID,
		ride.Distance, ride.Duration, ride.TimeReal, ride.State,
		ride.CreatedAt, ride.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit finalize: %w", err)
	}
	offer.State = models.OfferStateValidated
	return nil
}

func (r *OfferRepo) loadBids(ctx context.Context, offer *models.Offer) error {
	var bids []models.Bid
	if err := r.db.GetDB().SelectContext(ctx, &bids,
		`SELECT driver_id, position FROM offer_driver_linkages WHERE offer_id = $1 ORDER BY position ASC`,
		offer.ID,
	); err != nil {
		return fmt.Errorf("failed to query offer linkages: %w", err)
	}
	offer.Bids = bids
	return nil
}
