// Package app wires the store, cache, toasts and per-entity hooks into one
// back-office application object. Everything is injected; the package holds
// no global state.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"carshare/internal/cache"
	"carshare/internal/database"
	"carshare/internal/hooks"
	"carshare/internal/models"
	"carshare/internal/notify"
)

// App holds the hook for every entity the back office manages.
type App struct {
	db     *database.DB
	store  *cache.Store
	toasts *notify.Center
	logger *zerolog.Logger

	Cars        *hooks.Hook[models.Car, models.NewCar, models.CarPatch]
	Clients     *hooks.Hook[models.Client, models.NewClient, models.ClientPatch]
	Bookings    *hooks.Hook[models.Booking, models.NewBooking, models.BookingPatch]
	Maintenance *hooks.Hook[models.Maintenance, models.NewMaintenance, models.MaintenancePatch]
	Payments    *hooks.Hook[models.Payment, models.NewPayment, models.PaymentPatch]
	Points      *hooks.Hook[models.Point, models.NewPoint, models.PointPatch]
	Hijackings  *hooks.Hook[models.Hijacking, models.NewHijacking, models.HijackingPatch]
	Comments    *hooks.Hook[models.Comment, models.NewComment, models.CommentPatch]
	Backups     *hooks.Hook[models.Backup, models.NewBackup, models.BackupPatch]
}

// New builds the application over an open store. interval is the background
// cache refresh period; zero means the default.
func New(db *database.DB, store *cache.Store, toasts *notify.Center, logger *zerolog.Logger, interval time.Duration) *App {
	a := &App{
		db:     db,
		store:  store,
		toasts: toasts,
		logger: logger,
	}

	a.Cars = hooks.New("cars",
		hooks.Funcs[models.Car, models.NewCar, models.CarPatch]{
			List:   db.ListCars,
			Create: db.CreateCar,
			Update: db.UpdateCar,
			Delete: db.DeleteCar,
		},
		func(c models.Car) int64 { return c.ID },
		carMessages, interval, store, toasts, logger)

	a.Clients = hooks.New("clients",
		hooks.Funcs[models.Client, models.NewClient, models.ClientPatch]{
			List:   db.ListClients,
			Create: db.CreateClient,
			Update: db.UpdateClient,
			Delete: db.DeleteClient,
		},
		func(c models.Client) int64 { return c.ID },
		clientMessages, interval, store, toasts, logger)

	a.Bookings = hooks.New("bookings",
		hooks.Funcs[models.Booking, models.NewBooking, models.BookingPatch]{
			List:   db.ListBookings,
			Create: db.CreateBooking,
			Update: db.UpdateBooking,
			Delete: db.DeleteBooking,
		},
		func(b models.Booking) int64 { return b.ID },
		bookingMessages, interval, store, toasts, logger)

	a.Maintenance = hooks.New("maintenance",
		hooks.Funcs[models.Maintenance, models.NewMaintenance, models.MaintenancePatch]{
			List:   db.ListMaintenance,
			Create: db.CreateMaintenance,
			Update: db.UpdateMaintenance,
			Delete: db.DeleteMaintenance,
		},
		func(m models.Maintenance) int64 { return m.ID },
		maintenanceMessages, interval, store, toasts, logger)

	a.Payments = hooks.New("payments",
		hooks.Funcs[models.Payment, models.NewPayment, models.PaymentPatch]{
			List:   db.ListPayments,
			Create: db.CreatePayment,
			Update: db.UpdatePayment,
			Delete: db.DeletePayment,
		},
		func(p models.Payment) int64 { return p.ID },
		paymentMessages, interval, store, toasts, logger)

	a.Points = hooks.New("points",
		hooks.Funcs[models.Point, models.NewPoint, models.PointPatch]{
			List:   db.ListPoints,
			Create: db.CreatePoint,
			Update: db.UpdatePoint,
			Delete: db.DeletePoint,
		},
		func(p models.Point) int64 { return p.ID },
		pointMessages, interval, store, toasts, logger)

	a.Hijackings = hooks.New("hijacking",
		hooks.Funcs[models.Hijacking, models.NewHijacking, models.HijackingPatch]{
			List:   db.ListHijackings,
			Create: db.CreateHijacking,
			Update: db.UpdateHijacking,
			Delete: db.DeleteHijacking,
		},
		func(h models.Hijacking) int64 { return h.ID },
		hijackingMessages, interval, store, toasts, logger)

	a.Comments = hooks.New("comments",
		hooks.Funcs[models.Comment, models.NewComment, models.CommentPatch]{
			List:   db.ListComments,
			Create: db.CreateComment,
			Update: db.UpdateComment,
			Delete: db.DeleteComment,
		},
		func(c models.Comment) int64 { return c.ID },
		commentMessages, interval, store, toasts, logger)

	a.Backups = hooks.New("backups",
		hooks.Funcs[models.Backup, models.NewBackup, models.BackupPatch]{
			List:   db.ListBackups,
			Create: db.CreateBackup,
			Update: db.UpdateBackup,
			Delete: db.DeleteBackup,
		},
		func(b models.Backup) int64 { return b.ID },
		backupMessages, interval, store, toasts, logger)

	return a
}

// Store returns the shared cache the hooks write into.
func (a *App) Store() *cache.Store {
	return a.store
}

// Toasts returns the notification center mutations report into.
func (a *App) Toasts() *notify.Center {
	return a.toasts
}

// Start warms the caches and launches one polling loop per entity.
// It returns once the loops are running; they stop with ctx.
func (a *App) Start(ctx context.Context) {
	// Warm mirrored entries first so lists render before the first fetch.
	if m := a.store.Mirror(); m != nil {
		warmed := 0
		if cache.Warm[models.Car](ctx, a.store, m, "cars") {
			warmed++
		}
		if cache.Warm[models.Client](ctx, a.store, m, "clients") {
			warmed++
		}
		if cache.Warm[models.Booking](ctx, a.store, m, "bookings") {
			warmed++
		}
		if warmed > 0 {
			a.logger.Info().Int("entities", warmed).Msg("Cache warmed from redis")
		}
	}

	go a.Cars.Start(ctx)
	go a.Clients.Start(ctx)
	go a.Bookings.Start(ctx)
	go a.Maintenance.Start(ctx)
	go a.Payments.Start(ctx)
	go a.Points.Start(ctx)
	go a.Hijackings.Start(ctx)
	go a.Comments.Start(ctx)
	go a.Backups.Start(ctx)

	a.logger.Info().Msg("Entity pollers started")
}
