package order

import "fulfillment/internal/core/domain/model/prep"

// ShippingStatusFor maps a package prepare status onto the order shipping
// status it implies. The mapping is total and 1:1, so the two state
// machines cannot drift apart: transition handlers derive one side from
// the other instead of writing them independently.
func ShippingStatusFor(s prep.PrepareStatus) ShippingStatus {
	switch s {
	case prep.StatusPrepared:
		return Prepared
	case prep.StatusDriverClaimed:
		return DriverPickup
	case prep.StatusDriverToWarehouse:
		return DriverToWarehouse
	case prep.StatusWarehouseReceived:
		return WarehouseReceived
	case prep.StatusWarehouseShipped:
		return DriverToUser
	case prep.StatusDelivered:
		return Delivered
	case prep.StatusComplete:
		return Complete
	}
	return PendingPrepare
}

// PrepareStatusFor is the inverse of ShippingStatusFor. Transition
// handlers use it to advance the owning package in lockstep with an
// order-level move.
func PrepareStatusFor(s ShippingStatus) prep.PrepareStatus {
	switch s {
	case Prepared:
		return prep.StatusPrepared
	case DriverPickup:
		return prep.StatusDriverClaimed
	case DriverToWarehouse:
		return prep.StatusDriverToWarehouse
	case WarehouseReceived:
		return prep.StatusWarehouseReceived
	case DriverToUser:
		return prep.StatusWarehouseShipped
	case Delivered:
		return prep.StatusDelivered
	case Complete:
		return prep.StatusComplete
	}
	return prep.StatusPending
}
