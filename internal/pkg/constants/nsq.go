package constants

// NSQ topics for lifecycle events. Publishing is fire-and-forget; consumers
// live outside the core.
const (
	TopicOfferCreated      = "offer.created"
	TopicOfferFinalized    = "offer.finalized"
	TopicOfferCancelled    = "offer.cancelled"
	TopicRideStatusChanged = "ride.status_changed"
)
