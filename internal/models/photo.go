package models

import "time"

// SortOrder is assigned by the client as the photo's position at upload
// time; display order is sort_order with id breaking ties.

type PropertyPhoto struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	PhotoURL   string    `gorm:"size:500;not null" json:"photo_url"`
	Caption    string    `gorm:"size:255" json:"caption"`
	SortOrder  int       `gorm:"not null" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomPhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	PhotoURL  string    `gorm:"size:500;not null" json:"photo_url"`
	Caption   string    `gorm:"size:255" json:"caption"`
	SortOrder int       `gorm:"not null" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
