package app

import "carshare/internal/models"

// Summary tiles shown at the top of the list pages.

type CarSummary struct {
	Total       int
	Available   int
	Rented      int
	Maintenance int
}

func SummarizeCars(cars []models.Car) CarSummary {
	s := CarSummary{Total: len(cars)}
	for _, c := range cars {
		switch c.Status {
		case models.CarStatusAvailable:
			s.Available++
		case models.CarStatusRented:
			s.Rented++
		case models.CarStatusMaintenance:
			s.Maintenance++
		}
	}
	return s
}

type BookingSummary struct {
	Total     int
	Pending   int
	Confirmed int
	Active    int
	Completed int
	Cancelled int
	Revenue   float64
}

func SummarizeBookings(bookings []models.Booking) BookingSummary {
	s := BookingSummary{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			s.Pending++
		case models.BookingStatusConfirmed:
			s.Confirmed++
		case models.BookingStatusActive:
			s.Active++
		case models.BookingStatusCompleted:
			s.Completed++
		case models.BookingStatusCancelled:
			s.Cancelled++
		}
		// Отменённые брони в выручку не входят
		if b.Status != models.BookingStatusCancelled {
			s.Revenue += b.TotalPrice
		}
	}
	return s
}

type PaymentSummary struct {
	Total           int
	Completed       int
	TotalAmount     float64
	CompletedAmount float64
}

func SummarizePayments(payments []models.Payment) PaymentSummary {
	s := PaymentSummary{Total: len(payments)}
	for _, p := range payments {
		s.TotalAmount += p.Amount
		if p.Status == models.PaymentStatusCompleted {
			s.Completed++
			s.CompletedAmount += p.Amount
		}
	}
	return s
}

type BackupSummary struct {
	Total     int
	Small     int
	Medium    int
	Large     int
	TotalSize int64
}

func SummarizeBackups(backups []models.Backup) BackupSummary {
	s := BackupSummary{Total: len(backups)}
	for _, b := range backups {
		s.TotalSize += b.FileSize
		switch b.SizeBucket() {
		case "small":
			s.Small++
		case "medium":
			s.Medium++
		default:
			s.Large++
		}
	}
	return s
}
