package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/studio-rental/internal/db"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Record(ctx context.Context, ev Event) error {
	return m.Called(ev).Error(0)
}

func TestDispatcher_FansOutAndSwallowsErrors(t *testing.T) {
	failing := new(mockSink)
	ok := new(mockSink)

	id := uint(9)
	ev := Event{Action: ActionBookingCreated, Entity: EntityBooking, EntityID: &id}

	failing.On("Record", ev).Return(errors.New("broker down")).Once()
	ok.On("Record", ev).Return(nil).Once()

	d := NewDispatcher(failing, nil, ok)
	d.Dispatch(context.Background(), ev)

	failing.AssertExpectations(t)
	ok.AssertExpectations(t)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), Event{Action: "x"})
	})
}

func TestLogger_PersistsEvent(t *testing.T) {
	gdb, err := dbpkg.Open("file:audit_logger?mode=memory&cache=shared", &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	user := uint(2)
	entity := uint(5)
	err = New(gdb).Record(context.Background(), Event{
		UserID:   &user,
		Action:   ActionBookingStatusChanged,
		Entity:   EntityBooking,
		EntityID: &entity,
		Metadata: map[string]string{"from": "pending", "to": "paid"},
	})
	require.NoError(t, err)

	var row models.AuditLog
	require.NoError(t, gdb.Where("action = ?", ActionBookingStatusChanged).First(&row).Error)
	assert.Equal(t, uint(5), *row.EntityID)
	assert.JSONEq(t, `{"from":"pending","to":"paid"}`, row.Metadata)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.booking_deleted", RoutingKey(Event{Entity: EntityBooking, Action: ActionBookingDeleted}))
}
