package studio

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type ListFilter struct {
	Search string
	// "active", "inactive" ou vazio
	Status  string
	Page    int
	PerPage int
}

type Reader interface {
	GetStudio(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)
}

// Cache é um Reader que precisa ser invalidado após escrita.
type Cache interface {
	Reader
	Invalidate(ctx context.Context, id uint)
}

type Repository interface {
	Reader

	ListStudios(
		ctx context.Context,
		f ListFilter,
	) ([]models.Studio, int64, error)

	CreateStudio(
		ctx context.Context,
		s *models.Studio,
	) error

	UpdateStudio(
		ctx context.Context,
		s *models.Studio,
	) error

	DeleteStudio(
		ctx context.Context,
		id uint,
	) error

	CountActiveBookings(
		ctx context.Context,
		studioID uint,
	) (int64, error)

	UpcomingBookings(
		ctx context.Context,
		studioID uint,
		from string,
	) ([]models.Booking, error)
}
