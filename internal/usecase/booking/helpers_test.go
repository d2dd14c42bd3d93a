package booking

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	dbpkg "github.com/BruksfildServices01/studio-rental/internal/db"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/infra/repository"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

// ======================================================
// FIXTURES
// ======================================================

// 2025-05-20 09:00 em Jacarta
func fixedNow() time.Time {
	return time.Date(2025, 5, 20, 9, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
}

type env struct {
	db      *gorm.DB
	repo    *repository.BookingGormRepository
	audit   *audit.Dispatcher
	storage *mockStorage

	admin    models.User
	customer models.User
	other    models.User
}

func newEnv(t *testing.T) *env {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := dbpkg.Open("file:"+name+"?mode=memory&cache=shared", &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	e := &env{
		db:      gdb,
		repo:    repository.NewBookingGormRepository(gdb),
		audit:   audit.NewDispatcher(audit.New(gdb)),
		storage: new(mockStorage),
	}
	e.admin = e.user(t, "Admin", models.RoleAdmin)
	e.customer = e.user(t, "Budi", models.RoleCustomer)
	e.other = e.user(t, "Sari", models.RoleCustomer)
	return e
}

func (e *env) user(t *testing.T, name, role string) models.User {
	t.Helper()
	u := models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, e.db.Create(&u).Error)
	return u
}

func (e *env) studio(t *testing.T, name, rate string, active bool) models.Studio {
	t.Helper()
	s := models.Studio{
		Name:       name,
		HourlyRate: decimal.RequireFromString(rate),
		IsActive:   active,
	}
	require.NoError(t, e.db.Create(&s).Error)
	return s
}

func actorOf(u models.User) domain.Actor {
	return domain.Actor{ID: u.ID, IsAdmin: u.IsAdmin()}
}

func (e *env) create() *CreateBooking {
	return NewCreateBooking(e.repo, e.audit).WithClock(fixedNow)
}

func (e *env) mustCreate(t *testing.T, by models.User, in SlotInput) *models.Booking {
	t.Helper()
	b, err := e.create().Execute(context.Background(), actorOf(by), in)
	require.NoError(t, err)
	return b
}

func (e *env) setStatus(t *testing.T, id uint, status domain.Status) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", string(status)).Error)
}

func (e *env) auditCount(t *testing.T, action string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.AuditLog{}).Where("action = ?", action).Count(&n).Error)
	return n
}

func slotInput(studioID uint, date, start, end string, hours int) SlotInput {
	return SlotInput{
		StudioID:      studioID,
		BookingDate:   date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ======================================================
// MOCKS
// ======================================================

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Put(ctx context.Context, folder, name, contentType string, data []byte) (string, error) {
	args := m.Called(folder, contentType)
	if err := args.Error(0); err != nil {
		return "", err
	}
	return folder + "/" + name, nil
}

func (m *mockStorage) Delete(ctx context.Context, path string) error {
	return m.Called(path).Error(0)
}

// staleReads simula uma leitura de disponibilidade desatualizada:
// a checagem passa e só o índice único segura o conflito.
type staleReads struct {
	domain.Repository
}

func (s staleReads) ListActiveForDate(context.Context, uint, string, *uint) ([]models.Booking, error) {
	return nil, nil
}

func (s staleReads) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return s.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(staleReads{tx})
	})
}
