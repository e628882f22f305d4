package listing

import (
	"errors"
	"testing"

	"lankastay-backend/internal/models"
	"lankastay-backend/internal/wizard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gormDB, mock
}

func price(v float64) *float64 { return &v }

func seasideInnForm() *wizard.Form {
	return &wizard.Form{
		PropertyType:  "Hotel",
		Name:          "Seaside Inn",
		StreetAddress: "12 Lighthouse Street",
		City:          "Galle",
		State:         "Southern",
		Amenities:     models.AmenityMap{"Leisure": {"Pool"}},
		CheckinTime:   "14:00",
		CheckoutTime:  "11:00",
		Rooms: []wizard.RoomForm{
			{
				RoomType:       "Standard",
				BedType:        "Double",
				MaxGuests:      2,
				UnitsAvailable: 3,
				PriceLKR:       price(15000),
			},
		},
	}
}

// Create mode, one room, zero photos: exactly one property row and one
// room row, nothing else (the "Seaside Inn" scenario).
func TestCreateOneRoomNoPhotos(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "property_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	property, err := NewSequencer(db).Create(seasideInnForm(), 42)
	require.NoError(t, err)

	assert.Equal(t, uint(7), property.ID)
	assert.Equal(t, uint(42), property.UserID)
	assert.Equal(t, models.StatusPublished, property.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Full create: rooms in input order, then photos per room referencing the
// generated room id with sort_order following the local photo position,
// then property photos.
func TestCreateFullSequence(t *testing.T) {
	db, mock := newMockDB(t)

	form := seasideInnForm()
	form.Rooms = append(form.Rooms, wizard.RoomForm{
		RoomType:       "Family",
		BedType:        "King",
		MaxGuests:      4,
		UnitsAvailable: 1,
		PriceLKR:       price(24000),
		Photos: []wizard.PhotoForm{
			{URL: "https://img.example/family-1.jpg"},
			{URL: "https://img.example/family-2.jpg"},
		},
	})
	form.Photos = []wizard.PhotoForm{
		{URL: "https://img.example/front.jpg", Caption: "Front"},
		{URL: "https://img.example/garden.jpg"},
	}

	mock.ExpectQuery(`INSERT INTO "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "property_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
	mock.ExpectQuery(`INSERT INTO "room_photos"`).
		WithArgs(
			int64(12), "https://img.example/family-1.jpg", "", 0, sqlmock.AnyArg(),
			int64(12), "https://img.example/family-2.jpg", "", 1, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101).AddRow(102))
	mock.ExpectQuery(`INSERT INTO "property_photos"`).
		WithArgs(
			int64(7), "https://img.example/front.jpg", "Front", 0, sqlmock.AnyArg(),
			int64(7), "https://img.example/garden.jpg", "", 1, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(201).AddRow(202))

	_, err := NewSequencer(db).Create(form, 42)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failing step aborts the remaining steps: when the room insert fails,
// no photo insert is ever attempted and the property row stays behind.
func TestCreateAbortsAfterFailedStep(t *testing.T) {
	db, mock := newMockDB(t)

	form := seasideInnForm()
	form.Rooms[0].Photos = []wizard.PhotoForm{{URL: "https://img.example/r.jpg"}}
	form.Photos = []wizard.PhotoForm{{URL: "https://img.example/p.jpg"}}

	mock.ExpectQuery(`INSERT INTO "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "property_rooms"`).
		WillReturnError(errors.New("connection reset"))

	_, err := NewSequencer(db).Create(form, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert rooms")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Edit mode: scalar update in place, children deleted then recreated with
// fresh ids; the property id itself never changes.
func TestReplaceSequence(t *testing.T) {
	db, mock := newMockDB(t)

	form := seasideInnForm()
	form.Rooms[0].PriceLKR = price(18000)
	form.Rooms[0].Photos = []wizard.PhotoForm{{URL: "https://img.example/new-room.jpg"}}

	property := &models.Property{ID: 7, UserID: 42, Status: models.StatusPublished}

	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_rooms"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_photos"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "property_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.ExpectQuery(`INSERT INTO "room_photos"`).
		WithArgs(int64(31), "https://img.example/new-room.jpg", "", 0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(301))

	err := NewSequencer(db).Replace(property, form)
	require.NoError(t, err)

	assert.Equal(t, uint(7), property.ID)
	assert.Equal(t, models.StatusPublished, property.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure between the delete and the re-insert leaves the listing
// without rooms; nothing is compensated automatically.
func TestReplaceNoRollbackAfterDelete(t *testing.T) {
	db, mock := newMockDB(t)

	form := seasideInnForm()
	property := &models.Property{ID: 7, UserID: 42, Status: models.StatusPublished}

	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_rooms"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_photos"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "property_rooms"`).
		WillReturnError(errors.New("connection reset"))

	err := NewSequencer(db).Replace(property, form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert rooms")
	assert.NoError(t, mock.ExpectationsWereMet())
}
