package booking

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type ListFilter struct {
	// nil = todas as reservas (admin)
	UserID   *uint
	Status   string
	DateFrom string
	DateTo   string
	Search   string
	Page     int
	PerPage  int
}

type Stats struct {
	TotalBookings   int64           `json:"total_bookings"`
	PendingBookings int64           `json:"pending_bookings"`
	TodayBookings   int64           `json:"today_bookings"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

type Repository interface {
	// -------- Transaction --------
	// fn recebe um Repository preso à mesma transação.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Studio --------
	GetStudio(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// LockStudio serializa reservas concorrentes do mesmo estúdio.
	LockStudio(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// -------- Availability --------
	ListActiveForDate(
		ctx context.Context,
		studioID uint,
		date string,
		excludeID *uint,
	) ([]models.Booking, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	LockBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	ListBookings(
		ctx context.Context,
		f ListFilter,
	) ([]models.Booking, int64, error)

	// -------- Dashboard --------
	Stats(
		ctx context.Context,
		today string,
	) (*Stats, error)

	RecentForUser(
		ctx context.Context,
		userID uint,
		limit int,
	) ([]models.Booking, error)

	UpcomingForUser(
		ctx context.Context,
		userID uint,
		today string,
		limit int,
	) ([]models.Booking, error)
}
