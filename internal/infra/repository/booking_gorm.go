package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const defaultBookingsPerPage = 10

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// forUpdate só trava linha no Postgres; SQLite já serializa escritas.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *BookingGormRepository) GetStudio(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var s models.Studio
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, "studio_not_found")
	}
	return &s, nil
}

func (r *BookingGormRepository) LockStudio(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var s models.Studio
	if err := forUpdate(r.db.WithContext(ctx)).First(&s, id).Error; err != nil {
		return nil, notFound(err, "studio_not_found")
	}
	return &s, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveForDate(
	ctx context.Context,
	studioID uint,
	date string,
	excludeID *uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where(
			"studio_id = ? AND booking_date = ? AND status <> ?",
			studioID,
			date,
			string(domain.StatusCancelled),
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var rows []models.Booking
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Studio").
		Preload("User").
		Preload("Verifier").
		First(&b, id).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) LockBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := forUpdate(r.db.WithContext(ctx)).First(&b, id).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return slotConflict(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error,
	)
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return slotConflict(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error,
	)
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("booking_not_found")
	}
	return nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != "" {
		q = q.Where("booking_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("booking_date <= ?", f.DateTo)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		users := r.db.Model(&models.User{}).Select("id").Where("LOWER(name) LIKE ?", like)
		studios := r.db.Model(&models.Studio{}).Select("id").Where("LOWER(name) LIKE ?", like)
		q = q.Where(r.db.Where("user_id IN (?)", users).Or("studio_id IN (?)", studios))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := paginate(f.Page, f.PerPage, defaultBookingsPerPage)

	var rows []models.Booking
	if err := q.
		Preload("Studio").
		Preload("User").
		Order("created_at DESC").
		Order("id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) Stats(
	ctx context.Context,
	today string,
) (*domain.Stats, error) {

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Booking{})
	}

	var s domain.Stats
	if err := base().Count(&s.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", string(domain.StatusPending)).Count(&s.PendingBookings).Error; err != nil {
		return nil, err
	}
	if err := base().Where("booking_date = ?", today).Count(&s.TodayBookings).Error; err != nil {
		return nil, err
	}

	var revenue decimal.NullDecimal
	if err := base().
		Select("SUM(total_amount)").
		Where("status = ?", string(domain.StatusCompleted)).
		Row().
		Scan(&revenue); err != nil {
		return nil, err
	}
	s.TotalRevenue = decimal.Zero
	if revenue.Valid {
		s.TotalRevenue = revenue.Decimal
	}

	return &s, nil
}

func (r *BookingGormRepository) RecentForUser(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Studio").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) UpcomingForUser(
	ctx context.Context,
	userID uint,
	today string,
	limit int,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Studio").
		Where("user_id = ? AND booking_date >= ? AND status <> ?", userID, today, string(domain.StatusCancelled)).
		Order("booking_date ASC").
		Order("start_time ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// slotConflict: o índice unique_studio_slot é o árbitro final.
func slotConflict(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrValidation("start_time", "slot_unavailable")
	}
	return err
}

func paginate(page, perPage, def int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = def
	}
	return page, perPage
}
