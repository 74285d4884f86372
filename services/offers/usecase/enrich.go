package usecase

import (
	"context"
	"strconv"

	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
)

// enrichBids fills the display fields of each bid from the driver's
// account, vehicle profile and live position. Enrichment is best effort:
// a bid whose driver cannot be resolved keeps its bare linkage fields.
func (uc *OfferUC) enrichBids(ctx context.Context, offer *models.Offer) {
	for i := range offer.Bids {
		bid := &offer.Bids[i]

		driver, err := uc.userRepo.FindUserByID(ctx, bid.DriverID)
		if err != nil {
			uc.log.WithError(err).WithField("driver_id", bid.DriverID).Debug("bid driver lookup failed")
			continue
		}
		bid.DriverName = driver.FullName()
		bid.DriverPhone = driver.Phone
		bid.Rating = driver.Rating

		if profile, err := uc.userRepo.GetDriverProfile(ctx, bid.DriverID); err == nil {
			bid.VehicleBrand = profile.VehicleBrand
			bid.VehicleModel = profile.VehicleModel
			bid.LicensePlate = profile.LicensePlate
		}

		if uc.locationGW == nil {
			continue
		}
		pos, err := uc.locationGW.GetDriverPosition(ctx, bid.DriverID)
		if err != nil || pos == nil {
			continue
		}
		bid.Latitude = pos.Latitude
		bid.Longitude = pos.Longitude
		bid.DistanceKm = utils.CalculateDistance(
			utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude},
			utils.GeoPoint{Latitude: offer.StartLat, Longitude: offer.StartLon},
		)
		bid.EtaMinutes = utils.EstimateEtaMinutes(bid.DistanceKm)
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
