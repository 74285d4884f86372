package constants

// Redis key formats
const (
	// Offer service
	KeyOffer     = "offer:%s" // Format: offer:{offer_id}, TTL-bounded cached offer
	KeyOffersGeo = "offers:geo:pending"

	// User / fare caches
	KeyUser = "user:%s" // Format: user:{user_id}
	KeyFare = "fare:%s" // Format: fare:{fare_id}

	// Location service
	KeyDriverGeoLive    = "drivers:geo:live"   // GEO set of current driver positions
	KeyDriverHistory    = "history:driver:%s"  // Format: history:driver:{driver_id}, raw sample list
	PrefixDriverHistory = "history:driver:"    // scan prefix for the drain cycle
	PatternHistoryScan  = "history:driver:*"   // SCAN match pattern
)

// Raw location samples are stored as "lat,lon,ts" strings to keep the
// per-driver buffers compact
const SampleFieldSeparator = ","
