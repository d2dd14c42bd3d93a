package studio

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

// Slot é a agenda pública: sem dados do cliente.
type Slot struct {
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

type Detail struct {
	Studio   *models.Studio `json:"studio"`
	Schedule []Slot         `json:"schedule"`
}

type GetStudio struct {
	repo   domain.Repository
	reader domain.Reader
	now    func() time.Time
}

// reader normalmente é o cache Redis na frente de repo.
func NewGetStudio(repo domain.Repository, reader domain.Reader) *GetStudio {
	if reader == nil {
		reader = repo
	}
	return &GetStudio{repo: repo, reader: reader, now: timezone.Now}
}

func (uc *GetStudio) WithClock(now func() time.Time) *GetStudio {
	uc.now = now
	return uc
}

func (uc *GetStudio) Execute(
	ctx context.Context,
	actor booking.Actor,
	id uint,
) (*Detail, error) {

	s, err := uc.reader.GetStudio(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.IsActive && !actor.IsAdmin {
		return nil, httperr.ErrNotFound("studio_not_found")
	}

	rows, err := uc.repo.UpcomingBookings(ctx, id, timezone.Today(uc.now()))
	if err != nil {
		return nil, err
	}

	schedule := make([]Slot, 0, len(rows))
	for _, b := range rows {
		schedule = append(schedule, Slot{
			BookingDate: b.BookingDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
		})
	}

	return &Detail{Studio: s, Schedule: schedule}, nil
}
