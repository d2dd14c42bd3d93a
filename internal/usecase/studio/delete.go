package studio

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
)

type DeleteStudio struct {
	repo    domain.Repository
	cache   domain.Cache
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewDeleteStudio(
	repo domain.Repository,
	cache domain.Cache,
	st storage.Storage,
	audit *audit.Dispatcher,
) *DeleteStudio {
	return &DeleteStudio{
		repo:    repo,
		cache:   cache,
		storage: st,
		audit:   audit,
	}
}

func (uc *DeleteStudio) Execute(
	ctx context.Context,
	actor booking.Actor,
	id uint,
) error {

	if !actor.IsAdmin {
		return httperr.ErrForbidden("admin_only")
	}

	current, err := uc.repo.GetStudio(ctx, id)
	if err != nil {
		return err
	}

	active, err := uc.repo.CountActiveBookings(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CanDelete(active); err != nil {
		return err
	}

	if err := uc.repo.DeleteStudio(ctx, id); err != nil {
		return err
	}

	releasePaths(ctx, uc.storage, current.Image, current.ImageThumb)
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionStudioDeleted,
		Entity:   audit.EntityStudio,
		EntityID: &id,
		Metadata: map[string]any{"name": current.Name},
	})

	return nil
}
