package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

const (
	recentLimit   = 5
	upcomingLimit = 3
)

type CustomerDashboard struct {
	Recent   []models.Booking `json:"recent_bookings"`
	Upcoming []models.Booking `json:"upcoming_bookings"`
}

type Dashboard struct {
	repo domain.Repository
	now  clock
}

func NewDashboard(repo domain.Repository) *Dashboard {
	return &Dashboard{repo: repo, now: defaultClock()}
}

func (uc *Dashboard) WithClock(now func() time.Time) *Dashboard {
	uc.now = now
	return uc
}

func (uc *Dashboard) Admin(ctx context.Context, actor domain.Actor) (*domain.Stats, error) {
	if !actor.IsAdmin {
		return nil, httperr.ErrForbidden("admin_only")
	}
	return uc.repo.Stats(ctx, timezone.Today(uc.now()))
}

func (uc *Dashboard) Customer(ctx context.Context, actor domain.Actor) (*CustomerDashboard, error) {
	recent, err := uc.repo.RecentForUser(ctx, actor.ID, recentLimit)
	if err != nil {
		return nil, err
	}

	upcoming, err := uc.repo.UpcomingForUser(ctx, actor.ID, timezone.Today(uc.now()), upcomingLimit)
	if err != nil {
		return nil, err
	}

	return &CustomerDashboard{Recent: recent, Upcoming: upcoming}, nil
}
