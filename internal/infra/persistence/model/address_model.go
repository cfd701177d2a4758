package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressModel mirrors the 'shipping_addresses' table.
type ShippingAddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PhoneNumber   string    `gorm:"type:varchar(32);not null"`
	PostalCode    string    `gorm:"type:varchar(16);not null"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	HouseNumber   string    `gorm:"type:varchar(32);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(100);not null"`
	Country       string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
