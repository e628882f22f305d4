// Package public serves the unauthenticated browse surface. Only
// published listings are visible here; anything else looks absent rather
// than forbidden.
package public

import (
	"errors"

	"lankastay-backend/internal/authz"
	"lankastay-backend/internal/listing"
	"lankastay-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BrowseItem struct {
	ID           uint                `json:"id"`
	PropertyType models.PropertyType `json:"property_type"`
	Name         string              `json:"name"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	CoverPhoto   string              `json:"cover_photo,omitempty"`
	PriceFrom    *float64            `json:"price_from,omitempty"`
}

// GET /api/properties?type=&city=
func ListPublishedHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Where("status = ?", models.StatusPublished).
			Preload("Rooms").
			Preload("Photos", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("sort_order asc, id asc")
			}).
			Order("created_at desc")

		if t := c.Query("type"); t != "" {
			query = query.Where("property_type = ?", t)
		}
		if city := c.Query("city"); city != "" {
			query = query.Where("city ILIKE ?", city)
		}

		var properties []models.Property
		if err := query.Find(&properties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load listings")
		}

		resp := make([]BrowseItem, 0, len(properties))
		for i := range properties {
			resp = append(resp, toBrowseItem(&properties[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/properties/:id
func GetPublishedHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var property models.Property
		err := db.
			Preload("Rooms", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }).
			Preload("Rooms.Photos", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("sort_order asc, id asc")
			}).
			Preload("Photos", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("sort_order asc, id asc")
			}).
			First(&property, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Listing not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load listing")
		}

		// Unauthenticated callers only see published rows; hide the rest.
		if !authz.CanRead(0, property.UserID, property.Status) {
			return fiber.NewError(fiber.StatusNotFound, "Listing not found")
		}

		return c.JSON(fiber.Map{
			"id":         property.ID,
			"status":     property.Status,
			"listing":    listing.FormFromModel(&property),
			"created_at": property.CreatedAt,
		})
	}
}

func toBrowseItem(p *models.Property) BrowseItem {
	item := BrowseItem{
		ID:           p.ID,
		PropertyType: p.PropertyType,
		Name:         p.Name,
		City:         p.City,
		State:        p.State,
	}
	if len(p.Photos) > 0 {
		item.CoverPhoto = p.Photos[0].PhotoURL
	}
	for _, room := range p.Rooms {
		price := room.PriceLKR
		if item.PriceFrom == nil || price < *item.PriceFrom {
			item.PriceFrom = &price
		}
	}
	return item
}
