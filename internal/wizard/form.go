// Package wizard models the multi-step listing submission form: one
// in-progress property aggregate (details, amenities, rooms, photos)
// mutated across steps and validated before it is handed to the
// submission sequencer. Nothing here touches the network or the database.
package wizard

import (
	"fmt"

	"lankastay-backend/internal/models"
)

const (
	MaxPropertyPhotos = 20
	MaxRoomPhotos     = 15

	MinGuests = 1
	MaxGuests = 9
	MinUnits  = 1
	MaxUnits  = 9
)

type PhotoForm struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type RoomForm struct {
	RoomType       string      `json:"room_type"`
	BedType        string      `json:"bed_type"`
	MaxGuests      int         `json:"max_guests"`
	UnitsAvailable int         `json:"units_available"`
	Facilities     []string    `json:"facilities"`
	PriceLKR       *float64    `json:"price_lkr"`
	Photos         []PhotoForm `json:"photos"`
}

// Form is the in-progress listing aggregate. It serializes to the same
// shape the submit endpoints accept, so a client can hold it verbatim.
type Form struct {
	PropertyType       string            `json:"property_type"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	StreetAddress      string            `json:"street_address"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Amenities          models.AmenityMap `json:"amenities"`
	CheckinTime        string            `json:"checkin_time"`
	CheckoutTime       string            `json:"checkout_time"`
	CancellationPolicy string            `json:"cancellation_policy"`
	Rooms              []RoomForm        `json:"rooms"`
	Photos             []PhotoForm       `json:"photos"`
}

func NewForm() *Form {
	return &Form{Amenities: models.AmenityMap{}}
}

// SetField overwrites one scalar field. No validation happens here; the
// step gates decide whether the value lets the user move forward.
func (f *Form) SetField(key, value string) error {
	switch key {
	case "property_type":
		f.PropertyType = value
	case "name":
		f.Name = value
	case "description":
		f.Description = value
	case "street_address":
		f.StreetAddress = value
	case "city":
		f.City = value
	case "state":
		f.State = value
	case "checkin_time":
		f.CheckinTime = value
	case "checkout_time":
		f.CheckoutTime = value
	case "cancellation_policy":
		f.CancellationPolicy = value
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

// ToggleAmenity adds or removes one amenity name under a category.
// Removing the last name keeps the category key with an empty set; absent
// and empty are not distinguished downstream.
func (f *Form) ToggleAmenity(category, amenity string, present bool) {
	if f.Amenities == nil {
		f.Amenities = models.AmenityMap{}
	}
	current := f.Amenities[category]
	if present {
		for _, a := range current {
			if a == amenity {
				return
			}
		}
		f.Amenities[category] = append(current, amenity)
		return
	}
	kept := make([]string, 0, len(current))
	for _, a := range current {
		if a != amenity {
			kept = append(kept, a)
		}
	}
	f.Amenities[category] = kept
}

// AddRoom appends a room with default values and returns its index.
func (f *Form) AddRoom() int {
	f.Rooms = append(f.Rooms, RoomForm{
		MaxGuests:      MinGuests,
		UnitsAvailable: MinUnits,
	})
	return len(f.Rooms) - 1
}

// UpdateRoom mutates one field of the room at index. Guests and units only
// accept integers 1 through 9; no other value is constructible here.
func (f *Form) UpdateRoom(index int, field string, value interface{}) error {
	if index < 0 || index >= len(f.Rooms) {
		return fmt.Errorf("no room at index %d", index)
	}
	room := &f.Rooms[index]

	switch field {
	case "room_type":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("room_type wants a string, got %T", value)
		}
		room.RoomType = s
	case "bed_type":
		s, ok := value.(string)
		if !ok || !models.BedType(s).Valid() {
			return fmt.Errorf("bed_type must be one of Single, Double, Twin, Queen, King")
		}
		room.BedType = s
	case "max_guests":
		n, err := intInRange(value, MinGuests, MaxGuests)
		if err != nil {
			return fmt.Errorf("max_guests %v", err)
		}
		room.MaxGuests = n
	case "units_available":
		n, err := intInRange(value, MinUnits, MaxUnits)
		if err != nil {
			return fmt.Errorf("units_available %v", err)
		}
		room.UnitsAvailable = n
	case "price_lkr":
		p, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("price_lkr wants a number, got %T", value)
		}
		room.PriceLKR = &p
	default:
		return fmt.Errorf("unknown room field %q", field)
	}
	return nil
}

// RemoveRoom drops the room at index; rooms after it shift down. There is
// no stable room identity until the aggregate is persisted.
func (f *Form) RemoveRoom(index int) error {
	if index < 0 || index >= len(f.Rooms) {
		return fmt.Errorf("no room at index %d", index)
	}
	f.Rooms = append(f.Rooms[:index], f.Rooms[index+1:]...)
	return nil
}

// ToggleFacility adds or removes one facility name on the room at index.
func (f *Form) ToggleFacility(index int, facility string, present bool) error {
	if index < 0 || index >= len(f.Rooms) {
		return fmt.Errorf("no room at index %d", index)
	}
	room := &f.Rooms[index]
	if present {
		for _, fc := range room.Facilities {
			if fc == facility {
				return nil
			}
		}
		room.Facilities = append(room.Facilities, facility)
		return nil
	}
	kept := make([]string, 0, len(room.Facilities))
	for _, fc := range room.Facilities {
		if fc != facility {
			kept = append(kept, fc)
		}
	}
	room.Facilities = kept
	return nil
}

// AddPropertyPhotos appends uploaded photo URLs in selection order, up to
// the property-level limit. It returns how many were accepted; when some
// were not, the returned error is a *PhotoLimitError carrying the counts.
func (f *Form) AddPropertyPhotos(urls []string) (int, error) {
	accepted, photos, err := appendPhotos(f.Photos, urls, MaxPropertyPhotos)
	f.Photos = photos
	return accepted, err
}

// AddRoomPhotos is AddPropertyPhotos for the room at index, with the
// per-room limit.
func (f *Form) AddRoomPhotos(index int, urls []string) (int, error) {
	if index < 0 || index >= len(f.Rooms) {
		return 0, fmt.Errorf("no room at index %d", index)
	}
	room := &f.Rooms[index]
	accepted, photos, err := appendPhotos(room.Photos, urls, MaxRoomPhotos)
	room.Photos = photos
	return accepted, err
}

func (f *Form) RemovePropertyPhoto(index int) error {
	if index < 0 || index >= len(f.Photos) {
		return fmt.Errorf("no photo at index %d", index)
	}
	f.Photos = append(f.Photos[:index], f.Photos[index+1:]...)
	return nil
}

func (f *Form) RemoveRoomPhoto(roomIndex, photoIndex int) error {
	if roomIndex < 0 || roomIndex >= len(f.Rooms) {
		return fmt.Errorf("no room at index %d", roomIndex)
	}
	room := &f.Rooms[roomIndex]
	if photoIndex < 0 || photoIndex >= len(room.Photos) {
		return fmt.Errorf("no photo at index %d", photoIndex)
	}
	room.Photos = append(room.Photos[:photoIndex], room.Photos[photoIndex+1:]...)
	return nil
}

// PhotoLimitError reports a partially accepted photo add: the head of the
// batch that still fit was kept, the rest rejected.
type PhotoLimitError struct {
	Limit    int
	Accepted int
	Rejected int
}

func (e *PhotoLimitError) Error() string {
	return fmt.Sprintf("photo limit is %d: %d accepted, %d rejected", e.Limit, e.Accepted, e.Rejected)
}

func appendPhotos(existing []PhotoForm, urls []string, limit int) (int, []PhotoForm, error) {
	capacity := limit - len(existing)
	if capacity < 0 {
		capacity = 0
	}
	accepted := len(urls)
	if accepted > capacity {
		accepted = capacity
	}
	for _, url := range urls[:accepted] {
		existing = append(existing, PhotoForm{URL: url})
	}
	if accepted < len(urls) {
		return accepted, existing, &PhotoLimitError{
			Limit:    limit,
			Accepted: accepted,
			Rejected: len(urls) - accepted,
		}
	}
	return accepted, existing, nil
}

func intInRange(value interface{}, min, max int) (int, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case float64:
		// JSON numbers decode as float64.
		n = int(v)
		if float64(n) != v {
			return 0, fmt.Errorf("must be a whole number")
		}
	default:
		return 0, fmt.Errorf("wants an integer, got %T", value)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("must be between %d and %d", min, max)
	}
	return n, nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
