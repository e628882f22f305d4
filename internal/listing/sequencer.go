package listing

import (
	"fmt"

	"lankastay-backend/internal/models"
	"lankastay-backend/internal/wizard"

	"gorm.io/gorm"
)

// Sequencer turns a validated form aggregate into ordered writes:
// property, then rooms, then room photos, then property photos. Each step
// commits on its own; a failing step aborts the remaining ones and leaves
// the earlier writes in place.
type Sequencer struct {
	db *gorm.DB
}

func NewSequencer(db *gorm.DB) *Sequencer {
	return &Sequencer{db: db}
}

// Create inserts a brand new listing for ownerID. The property row goes in
// with status published; generated room ids come back in input order and
// photo rows reference them with sort_order matching the photo's position.
func (s *Sequencer) Create(form *wizard.Form, ownerID uint) (*models.Property, error) {
	property := buildProperty(form, ownerID)
	property.Status = models.StatusPublished

	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	if err := s.insertChildren(property.ID, form); err != nil {
		return property, err
	}
	return property, nil
}

// Replace applies an edited form to an existing listing. Scalar fields are
// overwritten in place (status untouched); rooms and photos are deleted
// and recreated, so their ids are not stable across edits.
func (s *Sequencer) Replace(property *models.Property, form *wizard.Form) error {
	updated := buildProperty(form, property.UserID)
	updates := map[string]interface{}{
		"property_type":  updated.PropertyType,
		"name":           updated.Name,
		"description":    updated.Description,
		"street_address": updated.StreetAddress,
		"city":           updated.City,
		"state":          updated.State,
		"amenities":      updated.Amenities,
		"checkin_time":   updated.CheckinTime,
		"checkout_time":  updated.CheckoutTime,
	}
	if updated.CancellationPolicy != nil {
		updates["cancellation_policy"] = *updated.CancellationPolicy
	} else {
		updates["cancellation_policy"] = nil
	}

	if err := s.db.Model(property).Updates(updates).Error; err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	// Room photos go with their rooms via the schema cascade.
	if err := s.db.Where("property_id = ?", property.ID).Delete(&models.PropertyRoom{}).Error; err != nil {
		return fmt.Errorf("delete rooms: %w", err)
	}
	if err := s.db.Where("property_id = ?", property.ID).Delete(&models.PropertyPhoto{}).Error; err != nil {
		return fmt.Errorf("delete property photos: %w", err)
	}
	return s.insertChildren(property.ID, form)
}

func (s *Sequencer) insertChildren(propertyID uint, form *wizard.Form) error {
	if len(form.Rooms) > 0 {
		rooms := make([]models.PropertyRoom, len(form.Rooms))
		for i, r := range form.Rooms {
			rooms[i] = models.PropertyRoom{
				PropertyID:     propertyID,
				RoomType:       r.RoomType,
				BedType:        models.BedType(r.BedType),
				MaxGuests:      r.MaxGuests,
				UnitsAvailable: r.UnitsAvailable,
				Facilities:     models.StringList(r.Facilities),
				PriceLKR:       *r.PriceLKR,
			}
		}
		if err := s.db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("insert rooms: %w", err)
		}
		for i, r := range form.Rooms {
			if len(r.Photos) == 0 {
				continue
			}
			photos := make([]models.RoomPhoto, len(r.Photos))
			for j, p := range r.Photos {
				photos[j] = models.RoomPhoto{
					RoomID:    rooms[i].ID,
					PhotoURL:  p.URL,
					Caption:   p.Caption,
					SortOrder: j,
				}
			}
			if err := s.db.Create(&photos).Error; err != nil {
				return fmt.Errorf("insert room photos: %w", err)
			}
		}
	}

	if len(form.Photos) > 0 {
		photos := make([]models.PropertyPhoto, len(form.Photos))
		for i, p := range form.Photos {
			photos[i] = models.PropertyPhoto{
				PropertyID: propertyID,
				PhotoURL:   p.URL,
				Caption:    p.Caption,
				SortOrder:  i,
			}
		}
		if err := s.db.Create(&photos).Error; err != nil {
			return fmt.Errorf("insert property photos: %w", err)
		}
	}
	return nil
}

func buildProperty(form *wizard.Form, ownerID uint) *models.Property {
	amenities := form.Amenities
	if amenities == nil {
		amenities = models.AmenityMap{}
	}
	property := &models.Property{
		UserID:        ownerID,
		PropertyType:  models.PropertyType(form.PropertyType),
		Name:          form.Name,
		Description:   form.Description,
		StreetAddress: form.StreetAddress,
		City:          form.City,
		State:         form.State,
		Amenities:     amenities,
		CheckinTime:   form.CheckinTime,
		CheckoutTime:  form.CheckoutTime,
	}
	if form.CancellationPolicy != "" {
		policy := models.CancellationPolicy(form.CancellationPolicy)
		property.CancellationPolicy = &policy
	}
	return property
}
