package models

import "time"

type PropertyType string

const (
	TypeHotel PropertyType = "Hotel"
	TypeVilla PropertyType = "Villa"
)

func (t PropertyType) Valid() bool {
	return t == TypeHotel || t == TypeVilla
}

type CancellationPolicy string

const (
	PolicyFree          CancellationPolicy = "Free"
	PolicyNonRefundable CancellationPolicy = "Non-refundable"
)

func (p CancellationPolicy) Valid() bool {
	return p == PolicyFree || p == PolicyNonRefundable
}

type PropertyStatus string

const (
	StatusDraft     PropertyStatus = "draft"
	StatusPublished PropertyStatus = "published"
)

// Property is the listing root. Rooms and photos hang off it and are
// dropped by the schema-level cascades when the row is deleted.
type Property struct {
	ID                 uint                `gorm:"primaryKey" json:"id"`
	UserID             uint                `gorm:"index;not null" json:"user_id"`
	PropertyType       PropertyType        `gorm:"size:20;not null" json:"property_type"`
	Name               string              `gorm:"size:200;not null" json:"name"`
	Description        string              `gorm:"size:2000" json:"description"`
	StreetAddress      string              `gorm:"size:255;not null" json:"street_address"`
	City               string              `gorm:"size:100;not null" json:"city"`
	State              string              `gorm:"size:100;not null" json:"state"`
	Amenities          AmenityMap          `gorm:"type:jsonb" json:"amenities"`
	CheckinTime        string              `gorm:"size:10" json:"checkin_time"`
	CheckoutTime       string              `gorm:"size:10" json:"checkout_time"`
	CancellationPolicy *CancellationPolicy `gorm:"size:20" json:"cancellation_policy"`
	Status             PropertyStatus      `gorm:"size:12;not null;default:draft" json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`

	Rooms  []PropertyRoom  `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Photos []PropertyPhoto `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
}
