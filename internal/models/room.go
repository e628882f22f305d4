package models

import "time"

type BedType string

const (
	BedSingle BedType = "Single"
	BedDouble BedType = "Double"
	BedTwin   BedType = "Twin"
	BedQueen  BedType = "Queen"
	BedKing   BedType = "King"
)

func (b BedType) Valid() bool {
	switch b {
	case BedSingle, BedDouble, BedTwin, BedQueen, BedKing:
		return true
	}
	return false
}

// PropertyRoom rows are not stable across edits: re-submitting a listing
// replaces them wholesale with freshly generated ids.
type PropertyRoom struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PropertyID     uint       `gorm:"index;not null" json:"property_id"`
	RoomType       string     `gorm:"size:100;not null" json:"room_type"`
	BedType        BedType    `gorm:"size:20;not null" json:"bed_type"`
	MaxGuests      int        `gorm:"not null" json:"max_guests"`
	UnitsAvailable int        `gorm:"not null" json:"units_available"`
	Facilities     StringList `gorm:"type:jsonb" json:"facilities"`
	PriceLKR       float64    `gorm:"column:price_lkr;not null" json:"price_lkr"`
	CreatedAt      time.Time  `json:"created_at"`

	Photos []RoomPhoto `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
}
