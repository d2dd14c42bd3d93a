package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type countingReader struct {
	studio *models.Studio
	calls  int
}

func (r *countingReader) GetStudio(ctx context.Context, id uint) (*models.Studio, error) {
	r.calls++
	if r.studio == nil || r.studio.ID != id {
		return nil, httperr.ErrNotFound("studio_not_found")
	}
	s := *r.studio
	return &s, nil
}

func sampleStudio() *models.Studio {
	return &models.Studio{
		ID:         7,
		Name:       "Studio A",
		HourlyRate: decimal.RequireFromString("150.00"),
		IsActive:   true,
	}
}

func TestStudioCache_MissLoadsAndStores(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	src := &countingReader{studio: sampleStudio()}
	cache := NewStudioCache(src, rdb, 5*time.Minute)

	payload, err := json.Marshal(src.studio)
	require.NoError(t, err)

	rmock.ExpectGet("studio:7").RedisNil()
	rmock.ExpectSet("studio:7", payload, 5*time.Minute).SetVal("OK")

	s, err := cache.GetStudio(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Studio A", s.Name)
	assert.Equal(t, 1, src.calls)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestStudioCache_HitSkipsSource(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	src := &countingReader{studio: sampleStudio()}
	cache := NewStudioCache(src, rdb, time.Minute)

	payload, err := json.Marshal(src.studio)
	require.NoError(t, err)
	rmock.ExpectGet("studio:7").SetVal(string(payload))

	s, err := cache.GetStudio(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "150", s.HourlyRate.String())
	assert.Zero(t, src.calls)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestStudioCache_RedisErrorFallsBack(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	src := &countingReader{studio: sampleStudio()}
	cache := NewStudioCache(src, rdb, time.Minute)

	payload, err := json.Marshal(src.studio)
	require.NoError(t, err)
	rmock.ExpectGet("studio:7").SetErr(errors.New("connection refused"))
	rmock.ExpectSet("studio:7", payload, time.Minute).SetErr(errors.New("connection refused"))

	s, err := cache.GetStudio(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), s.ID)
	assert.Equal(t, 1, src.calls)
}

func TestStudioCache_NotFoundIsNotCached(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	cache := NewStudioCache(&countingReader{}, rdb, time.Minute)

	rmock.ExpectGet("studio:9").RedisNil()

	_, err := cache.GetStudio(context.Background(), 9)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestStudioCache_Invalidate(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	cache := NewStudioCache(&countingReader{}, rdb, time.Minute)

	rmock.ExpectDel("studio:7").SetVal(1)
	cache.Invalidate(context.Background(), 7)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestStudioCache_NilClientPassesThrough(t *testing.T) {
	src := &countingReader{studio: sampleStudio()}
	cache := NewStudioCache(src, nil, time.Minute)

	_, err := cache.GetStudio(context.Background(), 7)
	require.NoError(t, err)
	_, err = cache.GetStudio(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)

	cache.Invalidate(context.Background(), 7)
}
