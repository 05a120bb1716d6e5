package shipment

import "context"

// Repository defines the interface for shipment storage. Shipments are
// append-mostly; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByShipmentID(ctx context.Context, shipmentID string) (*Shipment, error)
	List(ctx context.Context, filter *Filter) ([]*Shipment, int64, error)
	// NextID returns the next value of the monotonic shipment sequence,
	// formatted as SHP-%06d.
	NextID(ctx context.Context) (string, error)
}

// Filter narrows and paginates shipment listings.
type Filter struct {
	Status     *ShipmentStatus
	ContractID string

	Page  int
	Limit int
}
