package studio

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
	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/infra/repository"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

func fixedNow() time.Time {
	return time.Date(2025, 5, 20, 9, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
}

var (
	admin    = booking.Actor{ID: 1, IsAdmin: true}
	customer = booking.Actor{ID: 2}
)

type env struct {
	db      *gorm.DB
	repo    *repository.StudioGormRepository
	cache   *spyCache
	audit   *audit.Dispatcher
	storage *mockStorage
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

	repo := repository.NewStudioGormRepository(gdb)
	return &env{
		db:      gdb,
		repo:    repo,
		cache:   &spyCache{Reader: repo},
		audit:   audit.NewDispatcher(audit.New(gdb)),
		storage: new(mockStorage),
	}
}

func (e *env) studio(t *testing.T, name string, active bool) models.Studio {
	t.Helper()
	s := models.Studio{
		Name:       name,
		HourlyRate: decimal.NewFromInt(150),
		IsActive:   active,
	}
	require.NoError(t, e.db.Create(&s).Error)
	return s
}

func (e *env) booking(t *testing.T, studioID uint, date, start, status string) models.Booking {
	t.Helper()
	u := models.User{
		Name:         "Budi " + date + start,
		Email:        "budi" + strings.ReplaceAll(date+start, ":", "") + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleCustomer,
	}
	require.NoError(t, e.db.Create(&u).Error)

	b := models.Booking{
		UserID:        u.ID,
		StudioID:      studioID,
		BookingDate:   date,
		StartTime:     start,
		EndTime:       "23:00",
		DurationHours: 1,
		TotalAmount:   decimal.NewFromInt(150),
		Status:        status,
	}
	require.NoError(t, e.db.Create(&b).Error)
	return b
}

func (e *env) auditCount(t *testing.T, action string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.AuditLog{}).Where("action = ?", action).Count(&n).Error)
	return n
}

func details(name string) domain.Details {
	return domain.Details{
		Name:       name,
		HourlyRate: decimal.RequireFromString("150.50"),
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
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

type spyCache struct {
	domain.Reader
	invalidated []uint
}

func (c *spyCache) Invalidate(ctx context.Context, id uint) {
	c.invalidated = append(c.invalidated, id)
}
