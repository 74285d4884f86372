package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/offers/mocks"
)

type offerMocks struct {
	offerRepo  *mocks.MockOfferRepo
	offerCache *mocks.MockOfferCache
	userRepo   *mocks.MockUserRepo
	paymentGW  *mocks.MockPaymentGW
	eventGW    *mocks.MockEventGW
	locationGW *mocks.MockLocationGW
}

func newTestUC(t *testing.T) (*OfferUC, *offerMocks) {
	ctrl := gomock.NewController(t)
	m := &offerMocks{
		offerRepo:  mocks.NewMockOfferRepo(ctrl),
		offerCache: mocks.NewMockOfferCache(ctrl),
		userRepo:   mocks.NewMockUserRepo(ctrl),
		paymentGW:  mocks.NewMockPaymentGW(ctrl),
		eventGW:    mocks.NewMockEventGW(ctrl),
		locationGW: mocks.NewMockLocationGW(ctrl),
	}
	cfg := &models.Config{
		Offer:   models.OfferConfig{CacheTTL: 15 * time.Minute, SearchRadiusKm: 20},
		Payment: models.PaymentConfig{CommissionRate: 0.10},
	}
	log := logger.NewAppLogger(models.AppConfig{Debug: true})
	// Notification dispatch runs detached and is exercised separately; the
	// nil gateway turns it off here.
	uc := NewOfferUC(cfg, m.offerRepo, m.offerCache, m.userRepo, nil, m.paymentGW, m.eventGW, m.locationGW, log)
	return uc, m
}

func openOffer(passengerID uuid.UUID, state models.OfferState, bids ...models.Bid) *models.Offer {
	return &models.Offer{
		ID:          uuid.New(),
		PassengerID: passengerID,
		StartPoint:  "Kemang",
		StartLat:    -6.26,
		StartLon:    106.81,
		EndPoint:    "Sudirman",
		EndLat:      -6.22,
		EndLon:      106.82,
		Price:       50000,
		State:       state,
		Bids:        bids,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateOffer(t *testing.T) {
	passengerID := uuid.New()
	req := &models.CreateOfferRequest{
		StartPoint: "Kemang",
		StartLat:   -6.26,
		StartLon:   106.81,
		EndPoint:   "Sudirman",
		EndLat:     -6.22,
		EndLon:     106.82,
		Price:      50000,
	}

	t.Run("persists a pending offer and indexes it", func(t *testing.T) {
		uc, m := newTestUC(t)

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), passengerID).
			Return(&models.User{ID: passengerID, Phone: "+628111111111", Role: models.RolePassenger}, nil)
		m.offerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *models.Offer) (*models.Offer, error) {
				o.Version = 1
				return o, nil
			})
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil)
		m.offerCache.EXPECT().SaveOfferLocation(gomock.Any(), gomock.Any(), req.StartLat, req.StartLon).Return(nil)
		m.eventGW.EXPECT().Publish(constants.TopicOfferCreated, gomock.Any()).Return(nil)

		offer, err := uc.CreateOffer(context.Background(), req, passengerID)
		require.NoError(t, err)
		assert.Equal(t, models.OfferStatePending, offer.State)
		assert.Equal(t, passengerID, offer.PassengerID)
		assert.Empty(t, offer.Bids)
		// No phone in the request, so the account phone is used
		assert.Equal(t, "+628111111111", offer.PassengerPhone)
	})

	t.Run("rejects invalid coordinates", func(t *testing.T) {
		uc, _ := newTestUC(t)

		bad := *req
		bad.StartLat = 127.0
		_, err := uc.CreateOffer(context.Background(), &bad, passengerID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		uc, _ := newTestUC(t)

		bad := *req
		bad.Price = 0
		_, err := uc.CreateOffer(context.Background(), &bad, passengerID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestSubmitBid(t *testing.T) {
	passengerID := uuid.New()
	driverID := uuid.New()
	driver := &models.User{ID: driverID, FirstName: "Budi", LastName: "S", Role: models.RoleDriver}

	t.Run("appends the first bid and moves the offer to BID_RECEIVED", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)
		afterBid := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0},
		)
		afterBid.ID = offer.ID

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), driverID).Return(driver, nil)
		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerRepo.EXPECT().AddBid(gomock.Any(), offer.ID, driverID).Return(afterBid, nil)
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil)
		m.offerCache.EXPECT().SaveOfferLocation(gomock.Any(), offer.ID, offer.StartLat, offer.StartLon).Return(nil)

		saved, err := uc.SubmitBid(context.Background(), offer.ID, driverID)
		require.NoError(t, err)
		assert.Equal(t, models.OfferStateBidReceived, saved.State)
		require.Len(t, saved.Bids, 1)
		assert.Equal(t, driverID, saved.Bids[0].DriverID)
		assert.Equal(t, 0, saved.Bids[0].Position)
	})

	t.Run("re-bidding moves the bid to the end without duplicating it", func(t *testing.T) {
		uc, m := newTestUC(t)
		otherID := uuid.New()
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0},
			models.Bid{DriverID: otherID, Position: 1},
		)
		afterBid := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: otherID, Position: 0},
			models.Bid{DriverID: driverID, Position: 1},
		)
		afterBid.ID = offer.ID

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), driverID).Return(driver, nil)
		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerRepo.EXPECT().AddBid(gomock.Any(), offer.ID, driverID).Return(afterBid, nil)
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil)
		m.offerCache.EXPECT().SaveOfferLocation(gomock.Any(), offer.ID, offer.StartLat, offer.StartLon).Return(nil)

		saved, err := uc.SubmitBid(context.Background(), offer.ID, driverID)
		require.NoError(t, err)
		require.Len(t, saved.Bids, 2)
		assert.Equal(t, otherID, saved.Bids[0].DriverID)
		assert.Equal(t, 0, saved.Bids[0].Position)
		assert.Equal(t, driverID, saved.Bids[1].DriverID)
		assert.Equal(t, 1, saved.Bids[1].Position)
	})

	t.Run("rejects bids from non-drivers", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), passengerID).
			Return(&models.User{ID: passengerID, Role: models.RolePassenger}, nil)

		_, err := uc.SubmitBid(context.Background(), offer.ID, passengerID)
		assert.Equal(t, apperrors.KindRole, apperrors.KindOf(err))
	})

	t.Run("rejects bids on a terminal offer", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateCancelled)

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), driverID).Return(driver, nil)
		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.SubmitBid(context.Background(), offer.ID, driverID)
		assert.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})

	t.Run("rejects drivers who cannot cover the commission", func(t *testing.T) {
		uc, m := newTestUC(t)
		uc.cfg.Payment.EnforceBalance = true
		offer := openOffer(passengerID, models.OfferStatePending)

		m.userRepo.EXPECT().FindUserByID(gomock.Any(), driverID).Return(driver, nil)
		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		m.paymentGW.EXPECT().GetWalletByOwnerID(gomock.Any(), driverID).
			Return(&models.Wallet{ID: uuid.New(), OwnerID: driverID, Balance: 100}, nil)

		_, err := uc.SubmitBid(context.Background(), offer.ID, driverID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

// bidLedgerRepo is an in-memory OfferRepo whose AddBid mirrors the durable
// transaction: appends serialize on a lock and never rewrite other rows.
type bidLedgerRepo struct {
	t *testing.T

	mu    sync.Mutex
	offer *models.Offer
}

func (r *bidLedgerRepo) AddBid(_ context.Context, _, driverID uuid.UUID) (*models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := make([]models.Bid, 0, len(r.offer.Bids)+1)
	for _, b := range r.offer.Bids {
		if b.DriverID != driverID {
			bids = append(bids, b)
		}
	}
	bids = append(bids, models.Bid{DriverID: driverID})
	for i := range bids {
		bids[i].Position = i
	}
	r.offer.Bids = bids
	if r.offer.State == models.OfferStatePending {
		r.offer.State = models.OfferStateBidReceived
	}
	r.offer.Version++

	snap := *r.offer
	snap.Bids = append([]models.Bid(nil), bids...)
	return &snap, nil
}

func (r *bidLedgerRepo) Save(context.Context, *models.Offer) (*models.Offer, error) {
	r.t.Error("bid submission must append a row, not rewrite the offer")
	return nil, apperrors.ValidationError{Msg: "unexpected save"}
}

func (r *bidLedgerRepo) FindByID(context.Context, uuid.UUID) (*models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := *r.offer
	snap.Bids = append([]models.Bid(nil), r.offer.Bids...)
	return &snap, nil
}

func (r *bidLedgerRepo) FindLatestOpen(context.Context, int) ([]*models.Offer, error) {
	return nil, nil
}

func (r *bidLedgerRepo) FinalizeWithRide(context.Context, *models.Offer, *models.Ride) error {
	return nil
}

func TestSubmitBidInterleaved(t *testing.T) {
	passengerID := uuid.New()
	const drivers = 8

	uc, m := newTestUC(t)
	offer := openOffer(passengerID, models.OfferStatePending)
	ledger := &bidLedgerRepo{t: t, offer: offer}
	uc.offerRepo = ledger

	// Every bidder sees the same stale PENDING snapshot from the cache;
	// each append must still land its own row.
	m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Offer, error) {
			stale := openOffer(passengerID, models.OfferStatePending)
			stale.ID = offer.ID
			return stale, nil
		}).Times(drivers)
	m.userRepo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleDriver}, nil
		}).Times(drivers)
	m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.offerCache.EXPECT().SaveOfferLocation(gomock.Any(), offer.ID, offer.StartLat, offer.StartLon).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.SubmitBid(context.Background(), offer.ID, uuid.New())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := ledger.FindByID(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStateBidReceived, final.State)
	require.Len(t, final.Bids, drivers)
	seen := make(map[uuid.UUID]struct{}, drivers)
	for i, b := range final.Bids {
		assert.Equal(t, i, b.Position)
		seen[b.DriverID] = struct{}{}
	}
	assert.Len(t, seen, drivers)
}

func TestSelectDriver(t *testing.T) {
	passengerID := uuid.New()
	driverID := uuid.New()

	t.Run("records the selection and deindexes the offer", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0})

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *models.Offer) (*models.Offer, error) { return o, nil })
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil)
		m.offerCache.EXPECT().RemoveOfferLocation(gomock.Any(), offer.ID).Return(nil)

		saved, err := uc.SelectDriver(context.Background(), offer.ID, passengerID, driverID)
		require.NoError(t, err)
		assert.Equal(t, models.OfferStateDriverSelected, saved.State)
		require.NotNil(t, saved.SelectedDriverID)
		assert.Equal(t, driverID, *saved.SelectedDriverID)
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0})

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.SelectDriver(context.Background(), offer.ID, uuid.New(), driverID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("rejects a driver who never applied", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0})

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.SelectDriver(context.Background(), offer.ID, passengerID, uuid.New())
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestFinalizeOffer(t *testing.T) {
	passengerID := uuid.New()
	driverID := uuid.New()

	t.Run("creates the ride and validates the offer", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: driverID, Position: 0})

		var createdRide *models.Ride
		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerRepo.EXPECT().FinalizeWithRide(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *models.Offer, r *models.Ride) error {
				createdRide = r
				return nil
			})
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(nil)
		m.offerCache.EXPECT().RemoveOfferLocation(gomock.Any(), offer.ID).Return(nil)
		m.eventGW.EXPECT().Publish(constants.TopicOfferFinalized, gomock.Any()).Return(nil)

		ride, err := uc.FinalizeOffer(context.Background(), offer.ID, passengerID, driverID)
		require.NoError(t, err)
		require.NotNil(t, createdRide)
		assert.Equal(t, models.RideStateCreated, ride.State)
		assert.Equal(t, offer.ID, ride.OfferID)
		assert.Equal(t, passengerID, ride.PassengerID)
		assert.Equal(t, driverID, ride.DriverID)
		assert.Equal(t, models.OfferStateValidated, offer.State)
	})

	t.Run("refuses a cancelled offer", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateCancelled,
			models.Bid{DriverID: driverID, Position: 0})

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.FinalizeOffer(context.Background(), offer.ID, passengerID, driverID)
		assert.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})

	t.Run("refuses a driver who is no longer a bidder", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateBidReceived,
			models.Bid{DriverID: uuid.New(), Position: 0})

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.FinalizeOffer(context.Background(), offer.ID, passengerID, driverID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("refuses a driver other than the selected one", func(t *testing.T) {
		uc, m := newTestUC(t)
		selected := uuid.New()
		offer := openOffer(passengerID, models.OfferStateDriverSelected,
			models.Bid{DriverID: selected, Position: 0},
			models.Bid{DriverID: driverID, Position: 1},
		)
		offer.SelectedDriverID = &selected

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.FinalizeOffer(context.Background(), offer.ID, passengerID, driverID)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestCancelOffer(t *testing.T) {
	passengerID := uuid.New()

	t.Run("cancels an open offer", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *models.Offer) (*models.Offer, error) { return o, nil })
		m.offerCache.EXPECT().EvictOffer(gomock.Any(), offer.ID).Return(nil)
		m.offerCache.EXPECT().RemoveOfferLocation(gomock.Any(), offer.ID).Return(nil)
		m.eventGW.EXPECT().Publish(constants.TopicOfferCancelled, gomock.Any()).Return(nil)

		saved, err := uc.CancelOffer(context.Background(), offer.ID, passengerID)
		require.NoError(t, err)
		assert.Equal(t, models.OfferStateCancelled, saved.State)
	})

	t.Run("cancel is one-way", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStateCancelled)

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.CancelOffer(context.Background(), offer.ID, passengerID)
		assert.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)

		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := uc.CancelOffer(context.Background(), offer.ID, uuid.New())
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestGetOffer(t *testing.T) {
	passengerID := uuid.New()

	t.Run("serves a cache hit without touching the durable store", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)

		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		got, err := uc.GetOffer(context.Background(), offer.ID)
		require.NoError(t, err)
		assert.Equal(t, offer.ID, got.ID)
	})

	t.Run("falls back to the durable store and repopulates the cache", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(passengerID, models.OfferStatePending)

		repopulated := make(chan struct{})
		m.offerCache.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(nil, nil)
		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)
		m.offerCache.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.Offer) error {
				close(repopulated)
				return nil
			})

		got, err := uc.GetOffer(context.Background(), offer.ID)
		require.NoError(t, err)
		assert.Equal(t, offer.ID, got.ID)

		select {
		case <-repopulated:
		case <-time.After(2 * time.Second):
			t.Fatal("cache was not repopulated after the miss")
		}
	})
}

func TestGetAvailableOffers(t *testing.T) {
	driverID := uuid.New()

	t.Run("uses the geo index when the driver position is known", func(t *testing.T) {
		uc, m := newTestUC(t)
		offer := openOffer(uuid.New(), models.OfferStateBidReceived)

		m.locationGW.EXPECT().GetDriverPosition(gomock.Any(), driverID).
			Return(&models.Location{Latitude: -6.25, Longitude: 106.80}, nil)
		m.offerCache.EXPECT().FindNearbyOfferIDs(gomock.Any(), -6.25, 106.80, 20.0).
			Return([]uuid.UUID{offer.ID}, nil)
		m.offerRepo.EXPECT().FindByID(gomock.Any(), offer.ID).Return(offer, nil)

		list, err := uc.GetAvailableOffers(context.Background(), driverID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, offer.ID, list[0].ID)
	})

	t.Run("falls back to the latest open offers and filters closed ones", func(t *testing.T) {
		uc, m := newTestUC(t)
		open := openOffer(uuid.New(), models.OfferStatePending)
		closed := openOffer(uuid.New(), models.OfferStateValidated)

		m.locationGW.EXPECT().GetDriverPosition(gomock.Any(), driverID).Return(nil, nil)
		m.offerRepo.EXPECT().FindLatestOpen(gomock.Any(), 20).
			Return([]*models.Offer{open, closed}, nil)

		list, err := uc.GetAvailableOffers(context.Background(), driverID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, open.ID, list[0].ID)
	})

	t.Run("fallback prefilters by geohash cell when the position is known", func(t *testing.T) {
		uc, m := newTestUC(t)
		near := openOffer(uuid.New(), models.OfferStatePending)
		far := openOffer(uuid.New(), models.OfferStatePending)
		far.StartPoint = "Yogyakarta"
		far.StartLat = -7.80
		far.StartLon = 110.36

		m.locationGW.EXPECT().GetDriverPosition(gomock.Any(), driverID).
			Return(&models.Location{Latitude: -6.25, Longitude: 106.80}, nil)
		m.offerCache.EXPECT().FindNearbyOfferIDs(gomock.Any(), -6.25, 106.80, 20.0).
			Return(nil, assert.AnError)
		m.offerRepo.EXPECT().FindLatestOpen(gomock.Any(), 20).
			Return([]*models.Offer{near, far}, nil)

		list, err := uc.GetAvailableOffers(context.Background(), driverID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, near.ID, list[0].ID)
	})
}
