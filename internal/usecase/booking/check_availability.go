package booking

import (
	"context"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
)

type AvailabilityQuery struct {
	StudioID  uint
	Date      string
	StartTime string
	EndTime   string
	ExcludeID *uint
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute não consulta o estúdio: estúdio ou dia sem reservas está livre.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	q AvailabilityQuery,
) (bool, error) {

	slot, err := domain.NewSlot(q.Date, q.StartTime, q.EndTime)
	if err != nil {
		return false, err
	}

	return slotIsFree(ctx, uc.repo, q.StudioID, slot, q.ExcludeID)
}
