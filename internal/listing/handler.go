package listing

import (
	"errors"

	"lankastay-backend/internal/auth"
	"lankastay-backend/internal/authz"
	"lankastay-backend/internal/models"
	"lankastay-backend/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type ValidateStepRequest struct {
	Step int         `json:"step"`
	Form wizard.Form `json:"form"`
}

type ListingSummary struct {
	ID           uint                  `json:"id"`
	PropertyType models.PropertyType   `json:"property_type"`
	Name         string                `json:"name"`
	City         string                `json:"city"`
	State        string                `json:"state"`
	Status       models.PropertyStatus `json:"status"`
	RoomCount    int                   `json:"room_count"`
	CoverPhoto   string                `json:"cover_photo,omitempty"`
	CreatedAt    string                `json:"created_at"`
}

// ListingDetail is the rehydrated aggregate in the same shape the wizard
// holds, so the client can load it straight into an edit flow.
type ListingDetail struct {
	ID     uint                  `json:"id"`
	Status models.PropertyStatus `json:"status"`
	wizard.Form
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// -------------------------
// Owner listing CRUD
// -------------------------

// POST /api/owner/listings
func CreateHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form wizard.Form
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := form.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		property, err := NewSequencer(db).Create(&form, auth.CallerID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save listing: "+err.Error())
		}

		detail, err := loadDetail(db, property.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Listing saved but could not be reloaded")
		}
		return c.Status(fiber.StatusCreated).JSON(detail)
	}
}

// PUT /api/owner/listings/:id
func UpdateHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := findOwned(db, c)
		if err != nil {
			return err
		}

		var form wizard.Form
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := form.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := NewSequencer(db).Replace(property, &form); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save listing: "+err.Error())
		}

		detail, err := loadDetail(db, property.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Listing saved but could not be reloaded")
		}
		return c.JSON(detail)
	}
}

// GET /api/owner/listings
func ListOwnedHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var properties []models.Property
		err := db.Where("user_id = ?", auth.CallerID(c)).
			Preload("Rooms").
			Preload("Photos", photoOrder).
			Order("created_at desc").
			Find(&properties).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load your listings")
		}

		resp := make([]ListingSummary, 0, len(properties))
		for i := range properties {
			resp = append(resp, toSummary(&properties[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/owner/listings/:id
func GetHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := findOwned(db, c)
		if err != nil {
			return err
		}
		detail, err := loadDetail(db, property.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load listing")
		}
		return c.JSON(detail)
	}
}

// DELETE /api/owner/listings/:id
func DeleteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := findOwned(db, c)
		if err != nil {
			return err
		}
		// Rooms and photos go with the property via the schema cascades.
		if err := db.Delete(property).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete listing")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/owner/listings/validate-step
//
// Runs one step gate against the posted aggregate so the client can
// enable or disable its forward control. Never mutates anything.
func ValidateStepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ValidateStepRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		step := wizard.Step(body.Step)
		if !step.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown wizard step")
		}
		if err := body.Form.CanAdvance(step); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// -------------------------
// Helpers
// -------------------------

func findOwned(db *gorm.DB, c *fiber.Ctx) (*models.Property, error) {
	id := c.Params("id")
	var property models.Property
	if err := db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Listing not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load listing")
	}
	if !authz.CanWrite(auth.CallerID(c), property.UserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this listing")
	}
	return &property, nil
}

func photoOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("sort_order asc, id asc")
}

func roomOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("id asc")
}

func loadDetail(db *gorm.DB, id uint) (*ListingDetail, error) {
	var property models.Property
	err := db.
		Preload("Rooms", roomOrder).
		Preload("Rooms.Photos", photoOrder).
		Preload("Photos", photoOrder).
		First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return toDetail(&property), nil
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func toSummary(p *models.Property) ListingSummary {
	s := ListingSummary{
		ID:           p.ID,
		PropertyType: p.PropertyType,
		Name:         p.Name,
		City:         p.City,
		State:        p.State,
		Status:       p.Status,
		RoomCount:    len(p.Rooms),
		CreatedAt:    p.CreatedAt.Format(timeLayout),
	}
	if len(p.Photos) > 0 {
		s.CoverPhoto = p.Photos[0].PhotoURL
	}
	return s
}

func toDetail(p *models.Property) *ListingDetail {
	detail := &ListingDetail{
		ID:        p.ID,
		Status:    p.Status,
		Form:      FormFromModel(p),
		CreatedAt: p.CreatedAt.Format(timeLayout),
		UpdatedAt: p.UpdatedAt.Format(timeLayout),
	}
	return detail
}

// FormFromModel rehydrates a persisted aggregate into the wizard shape.
func FormFromModel(p *models.Property) wizard.Form {
	form := wizard.Form{
		PropertyType:  string(p.PropertyType),
		Name:          p.Name,
		Description:   p.Description,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		State:         p.State,
		Amenities:     p.Amenities,
		CheckinTime:   p.CheckinTime,
		CheckoutTime:  p.CheckoutTime,
	}
	if p.CancellationPolicy != nil {
		form.CancellationPolicy = string(*p.CancellationPolicy)
	}
	if form.Amenities == nil {
		form.Amenities = models.AmenityMap{}
	}
	for _, room := range p.Rooms {
		price := room.PriceLKR
		rf := wizard.RoomForm{
			RoomType:       room.RoomType,
			BedType:        string(room.BedType),
			MaxGuests:      room.MaxGuests,
			UnitsAvailable: room.UnitsAvailable,
			Facilities:     room.Facilities,
			PriceLKR:       &price,
		}
		for _, photo := range room.Photos {
			rf.Photos = append(rf.Photos, wizard.PhotoForm{URL: photo.PhotoURL, Caption: photo.Caption})
		}
		form.Rooms = append(form.Rooms, rf)
	}
	for _, photo := range p.Photos {
		form.Photos = append(form.Photos, wizard.PhotoForm{URL: photo.PhotoURL, Caption: photo.Caption})
	}
	return form
}
