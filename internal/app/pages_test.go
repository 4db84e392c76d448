package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/models"
)

func testCars() []models.Car {
	return []models.Car{
		{ID: 1, LicensePlate: "А123БВ777", Brand: "Lada", Model: "Vesta", Status: models.CarStatusAvailable, Location: "Москва"},
		{ID: 2, LicensePlate: "В456ГД777", Brand: "Kia", Model: "Rio", Status: models.CarStatusRented, Location: "Казань"},
		{ID: 3, LicensePlate: "Е789ЖЗ777", Brand: "Kia", Model: "Sportage", Status: models.CarStatusMaintenance, Location: "Москва"},
	}
}

func TestFilterCars(t *testing.T) {
	cars := testCars()

	assert.Len(t, FilterCars(cars, "", ""), 3)
	assert.Len(t, FilterCars(cars, "kia", ""), 2)
	assert.Len(t, FilterCars(cars, "", models.CarStatusRented), 1)
	assert.Len(t, FilterCars(cars, "kia", models.CarStatusRented), 1)
	assert.Len(t, FilterCars(cars, "vesta", models.CarStatusRented), 0)
	assert.Len(t, FilterCars(cars, "А123", ""), 1)
}

func TestFilterClients(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Username: "ivan", Email: "ivan@example.com", FullName: "Иван Иванов", Phone: "+79001112233"},
		{ID: 2, Username: "petr", Email: "petr@example.com", FullName: "Пётр Петров", Phone: "+79004445566"},
	}

	assert.Len(t, FilterClients(clients, ""), 2)
	assert.Len(t, FilterClients(clients, "иван"), 1)
	assert.Len(t, FilterClients(clients, "petr@"), 1)
	assert.Len(t, FilterClients(clients, "+7900444"), 1)
	assert.Len(t, FilterClients(clients, "нет такого"), 0)
}

func TestSummarizeCars(t *testing.T) {
	s := SummarizeCars(testCars())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 1, s.Rented)
	assert.Equal(t, 1, s.Maintenance)
}

func TestSummarizeBookings(t *testing.T) {
	s := SummarizeBookings([]models.Booking{
		{ID: 1, Status: models.BookingStatusActive, TotalPrice: 4500},
		{ID: 2, Status: models.BookingStatusCompleted, TotalPrice: 3000},
		{ID: 3, Status: models.BookingStatusCancelled, TotalPrice: 9000},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 7500.0, s.Revenue, "cancelled bookings are excluded from revenue")
}

func TestSummarizePayments(t *testing.T) {
	s := SummarizePayments([]models.Payment{
		{ID: 1, Status: models.PaymentStatusCompleted, Amount: 1500},
		{ID: 2, Status: models.PaymentStatusPending, Amount: 500},
		{ID: 3, Status: models.PaymentStatusCompleted, Amount: 2000},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 4000.0, s.TotalAmount)
	assert.Equal(t, 3500.0, s.CompletedAmount)
}

func TestSummarizeBackups(t *testing.T) {
	s := SummarizeBackups([]models.Backup{
		{ID: 1, FileSize: 100},
		{ID: 2, FileSize: models.BackupSmallLimit + 1},
		{ID: 3, FileSize: models.BackupMediumLimit + 1},
	})

	assert.Equal(t, 1, s.Small)
	assert.Equal(t, 1, s.Medium)
	assert.Equal(t, 1, s.Large)
	assert.Equal(t, int64(100+models.BackupSmallLimit+1+models.BackupMediumLimit+1), s.TotalSize)
}

func TestSelectOptions(t *testing.T) {
	clients := []models.Client{
		{ID: 5, FullName: "Иван Иванов", Email: "ivan@example.com"},
		{ID: 6, FullName: "", Email: "noname@example.com"},
	}
	opts := ClientOptions(clients)
	require.Len(t, opts, 2)
	assert.Equal(t, "5", opts[0].Value)
	assert.Equal(t, "Иван Иванов", opts[0].Label)
	assert.Equal(t, "noname@example.com", opts[1].Label, "email fallback when the name is empty")

	carOpts := CarOptions(testCars()[:1])
	require.Len(t, carOpts, 1)
	assert.Equal(t, "1", carOpts[0].Value)
	assert.Equal(t, "Lada Vesta (А123БВ777)", carOpts[0].Label)
}

func TestBookingFields_ForeignKeyOptions(t *testing.T) {
	clients := []models.Client{{ID: 1, FullName: "Иван Иванов"}}
	fields := BookingFields(clients, testCars())

	var userField, totalField *int
	for i, f := range fields {
		switch f.Key {
		case "user_id":
			idx := i
			userField = &idx
		case "total_price":
			idx := i
			totalField = &idx
		}
	}

	require.NotNil(t, userField)
	assert.Len(t, fields[*userField].Options, 1)
	require.NotNil(t, totalField)
	assert.True(t, fields[*totalField].ReadOnly, "computed totals are not hand-editable")
}
