package entity

// Order status workflow: Pending → Preparing → Out for Delivery → Delivered,
// with Cancelled reachable from any state. Transitions are not guarded by
// source state; only membership in this set is enforced.
const (
	StatusPending        = "Pending"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var orderStatuses = map[string]bool{
	StatusPending:        true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

func ValidOrderStatus(s string) bool { return orderStatuses[s] }
