package models

import "time"

// Initial values written when an order's tracking record is created.
const (
	TrackingStatusProcessing = "Processing"
)

// TrackingInfo is the shipment-status record created once per rental order
// and mutated afterwards only by employees and managers.
type TrackingInfo struct {
	TrackingID         string    `gorm:"column:trackingid;primaryKey;size:50"`
	RentalOrderID      string    `gorm:"column:rentalorderid;size:50;not null"`
	Status             string    `gorm:"column:status;size:50"`
	CurrentLocation    string    `gorm:"column:currentlocation;size:60"`
	CourierName        string    `gorm:"column:couriername;size:60"`
	LastUpdateDate     time.Time `gorm:"column:lastupdatedate"`
	AdditionalComments string    `gorm:"column:additionalcomments;size:512"`
}

// TableName maps onto the externally created TrackingInfo table.
func (TrackingInfo) TableName() string { return "trackinginfo" }
