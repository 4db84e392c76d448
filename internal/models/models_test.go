package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same moment", base, base, 1},
		{"partial day rounds up", base, base.Add(6 * time.Hour), 1},
		{"exactly one day", base, base.AddDate(0, 0, 1), 1},
		{"one day and an hour", base, base.AddDate(0, 0, 1).Add(time.Hour), 2},
		{"one week", base, base.AddDate(0, 0, 7), 7},
		{"end before start", base, base.AddDate(0, 0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDaysBetween(tt.start, tt.end))
		})
	}
}

func TestNewBooking_Recalculate(t *testing.T) {
	b := NewBooking{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}
	b.Recalculate(2500)

	assert.Equal(t, 3, b.TotalDays)
	assert.Equal(t, 7500.0, b.TotalPrice)
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, CarStatusAvailable.Valid())
	assert.True(t, CarStatusMaintenance.Valid())
	assert.False(t, CarStatus("parked").Valid())

	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus("").Valid())

	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("done").Valid())
}

func TestBackup_SizeBucket(t *testing.T) {
	assert.Equal(t, "small", Backup{FileSize: 0}.SizeBucket())
	assert.Equal(t, "small", Backup{FileSize: BackupSmallLimit - 1}.SizeBucket())
	assert.Equal(t, "medium", Backup{FileSize: BackupSmallLimit}.SizeBucket())
	assert.Equal(t, "medium", Backup{FileSize: BackupMediumLimit - 1}.SizeBucket())
	assert.Equal(t, "large", Backup{FileSize: BackupMediumLimit}.SizeBucket())
}

func TestGenerateTransactionID_Unique(t *testing.T) {
	a := GenerateTransactionID()
	b := GenerateTransactionID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
