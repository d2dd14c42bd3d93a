package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const defaultStudiosPerPage = 12

type StudioGormRepository struct {
	db *gorm.DB
}

func NewStudioGormRepository(db *gorm.DB) *StudioGormRepository {
	return &StudioGormRepository{db: db}
}

var _ domain.Repository = (*StudioGormRepository)(nil)

func (r *StudioGormRepository) GetStudio(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var s models.Studio
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, "studio_not_found")
	}
	return &s, nil
}

func (r *StudioGormRepository) ListStudios(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Studio, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Studio{})

	switch f.Status {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := paginate(f.Page, f.PerPage, defaultStudiosPerPage)

	var rows []models.Studio
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *StudioGormRepository) CreateStudio(
	ctx context.Context,
	s *models.Studio,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StudioGormRepository) UpdateStudio(
	ctx context.Context,
	s *models.Studio,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StudioGormRepository) DeleteStudio(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Studio{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("studio_not_found")
	}
	return nil
}

func (r *StudioGormRepository) CountActiveBookings(
	ctx context.Context,
	studioID uint,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("studio_id = ? AND status IN ?", studioID, []string{
			string(booking.StatusPending),
			string(booking.StatusPaid),
		}).
		Count(&n).Error
	return n, err
}

func (r *StudioGormRepository) UpcomingBookings(
	ctx context.Context,
	studioID uint,
	from string,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Where("studio_id = ? AND booking_date >= ? AND status <> ?", studioID, from, string(booking.StatusCancelled)).
		Order("booking_date ASC").
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
