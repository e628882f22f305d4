package wizard

import (
	"fmt"
	"strings"

	"lankastay-backend/internal/models"
)

// Step is one screen of the submission flow. The gate table below decides
// whether the forward control is enabled; going back never validates and
// never discards state.
type Step int

const (
	StepPropertyType Step = iota
	StepDetails
	StepAmenities
	StepRooms
	StepPolicies
	StepReview

	stepCount
)

func (s Step) Valid() bool {
	return s >= StepPropertyType && s < stepCount
}

// CanAdvance reports whether forward navigation from step is permitted,
// returning the blocking reason otherwise.
func (f *Form) CanAdvance(step Step) error {
	switch step {
	case StepPropertyType:
		if !models.PropertyType(f.PropertyType).Valid() {
			return fmt.Errorf("property type must be Hotel or Villa")
		}
	case StepDetails:
		for _, field := range []struct{ name, value string }{
			{"name", f.Name},
			{"street address", f.StreetAddress},
			{"city", f.City},
			{"state", f.State},
		} {
			if strings.TrimSpace(field.value) == "" {
				return fmt.Errorf("%s is required", field.name)
			}
		}
	case StepAmenities, StepRooms, StepPolicies:
		// Always passable: zero amenities and zero rooms are valid listings.
	case StepReview:
		for i, room := range f.Rooms {
			if room.PriceLKR == nil || *room.PriceLKR < 0 {
				return fmt.Errorf("room %d needs a price before submitting", i+1)
			}
		}
	default:
		return fmt.Errorf("unknown step %d", step)
	}
	return nil
}

// Validate runs every gate plus the structural checks that a trusted
// client would have enforced through the form operations. The submit
// endpoints call this before any write.
func (f *Form) Validate() error {
	for step := StepPropertyType; step < stepCount; step++ {
		if err := f.CanAdvance(step); err != nil {
			return err
		}
	}
	if f.CancellationPolicy != "" && !models.CancellationPolicy(f.CancellationPolicy).Valid() {
		return fmt.Errorf("cancellation policy must be Free or Non-refundable")
	}
	if len(f.Photos) > MaxPropertyPhotos {
		return fmt.Errorf("at most %d property photos are allowed", MaxPropertyPhotos)
	}
	for i, room := range f.Rooms {
		if !models.BedType(room.BedType).Valid() {
			return fmt.Errorf("room %d: bed type must be one of Single, Double, Twin, Queen, King", i+1)
		}
		if room.MaxGuests < MinGuests || room.MaxGuests > MaxGuests {
			return fmt.Errorf("room %d: max guests must be between %d and %d", i+1, MinGuests, MaxGuests)
		}
		if room.UnitsAvailable < MinUnits || room.UnitsAvailable > MaxUnits {
			return fmt.Errorf("room %d: units available must be between %d and %d", i+1, MinUnits, MaxUnits)
		}
		if len(room.Photos) > MaxRoomPhotos {
			return fmt.Errorf("room %d: at most %d photos are allowed", i+1, MaxRoomPhotos)
		}
	}
	return nil
}
