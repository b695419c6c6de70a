package trade

import (
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// Shipment tracks delivery of an order, 1:1. It is upserted as carrier
// details become known.
type Shipment struct {
	shared.BaseEntity
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Carrier        string     `gorm:"type:varchar(50)"`
	TrackingNumber string     `gorm:"type:varchar(50)"`
	Status         string     `gorm:"type:varchar(30)"`
	ShippedDate    *time.Time `gorm:"type:timestamptz"`
	DeliveryDate   *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment creates a shipment for an order
func NewShipment(orderID uuid.UUID) (*Shipment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID is required")
	}
	return &Shipment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
	}, nil
}

// UpdateDetails sets carrier tracking fields
func (s *Shipment) UpdateDetails(carrier, trackingNumber, status string, shippedDate, deliveryDate *time.Time) {
	s.Carrier = carrier
	s.TrackingNumber = trackingNumber
	s.Status = status
	s.ShippedDate = shippedDate
	s.DeliveryDate = deliveryDate
}

// IsShipped returns true once a tracking number and shipped date are on file.
// When it flips to true the owning order moves to SHIPPED.
func (s *Shipment) IsShipped() bool {
	return s.TrackingNumber != "" && s.ShippedDate != nil
}
