package booking

import (
	"context"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const PerPage = 10

type ListInput struct {
	Status   string
	DateFrom string
	DateTo   string
	Search   string
	Page     int
}

type ListResult struct {
	Bookings []models.Booking
	Total    int64
	Page     int
	PerPage  int
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	actor domain.Actor,
	in ListInput,
) (*ListResult, error) {

	f := domain.ListFilter{
		Page:    in.Page,
		PerPage: PerPage,
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	// cliente só vê as próprias reservas; busca por nome é do admin
	if !actor.IsAdmin {
		id := actor.ID
		f.UserID = &id
	} else {
		f.Search = in.Search
	}

	if in.Status != "" {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = string(s)
	}
	if in.DateFrom != "" {
		d, ok := domain.ParseDate(in.DateFrom)
		if !ok {
			return nil, httperr.ErrValidation("date_from", "invalid_date")
		}
		f.DateFrom = d
	}
	if in.DateTo != "" {
		d, ok := domain.ParseDate(in.DateTo)
		if !ok {
			return nil, httperr.ErrValidation("date_to", "invalid_date")
		}
		f.DateTo = d
	}

	rows, total, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Bookings: rows,
		Total:    total,
		Page:     f.Page,
		PerPage:  f.PerPage,
	}, nil
}
