package studio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

func TestCreateStudio_WithImage(t *testing.T) {
	e := newEnv(t)
	e.storage.On("Put", storage.FolderStudios, "image/png").Return(nil).Once()
	e.storage.On("Put", storage.FolderStudioThumbs, "image/webp").Return(nil).Once()

	uc := NewCreateStudio(e.repo, e.storage, e.audit)
	s, err := uc.Execute(context.Background(), admin, Input{
		Details: details("  Studio A  "),
		Image:   pngBytes(t, 64, 32),
	})
	require.NoError(t, err)

	assert.Equal(t, "Studio A", s.Name)
	assert.Equal(t, "150.50", s.HourlyRate.StringFixed(2))
	require.NotNil(t, s.Image)
	require.NotNil(t, s.ImageThumb)
	assert.True(t, strings.HasPrefix(*s.Image, "studios/"))
	assert.True(t, strings.HasSuffix(*s.Image, ".png"))
	assert.True(t, strings.HasPrefix(*s.ImageThumb, "studios/thumbs/"))
	assert.True(t, strings.HasSuffix(*s.ImageThumb, ".webp"))
	assert.Equal(t, int64(1), e.auditCount(t, audit.ActionStudioCreated))
	e.storage.AssertExpectations(t)
}

func TestCreateStudio_KeepsInactiveFlag(t *testing.T) {
	e := newEnv(t)
	inactive := false

	s, err := NewCreateStudio(e.repo, e.storage, e.audit).Execute(context.Background(), admin, Input{
		Details: details("Studio B"),
		Active:  &inactive,
	})
	require.NoError(t, err)

	var stored models.Studio
	require.NoError(t, e.db.First(&stored, s.ID).Error)
	assert.False(t, stored.IsActive)
	assert.Nil(t, stored.Image)
}

func TestCreateStudio_Rejects(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateStudio(e.repo, e.storage, e.audit)

	_, err := uc.Execute(context.Background(), customer, Input{Details: details("X")})
	assert.True(t, httperr.IsBusiness(err, "admin_only"))

	_, err = uc.Execute(context.Background(), admin, Input{Details: details("   ")})
	assert.True(t, httperr.IsBusiness(err, "name_required"))

	_, err = uc.Execute(context.Background(), admin, Input{
		Details: details("X"),
		Image:   []byte("%PDF-1.4"),
	})
	assert.True(t, httperr.IsBusiness(err, "unsupported_file_type"))

	var n int64
	require.NoError(t, e.db.Model(&models.Studio{}).Count(&n).Error)
	assert.Zero(t, n)
	e.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreateStudio_ThumbnailFailureReleasesOriginal(t *testing.T) {
	e := newEnv(t)
	e.storage.On("Put", storage.FolderStudios, "image/png").Return(nil).Once()
	e.storage.On("Put", storage.FolderStudioThumbs, "image/webp").Return(errors.New("bucket down")).Once()
	e.storage.On("Delete", mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "studios/") && strings.HasSuffix(p, ".png")
	})).Return(nil).Once()

	_, err := NewCreateStudio(e.repo, e.storage, e.audit).Execute(context.Background(), admin, Input{
		Details: details("Studio C"),
		Image:   pngBytes(t, 16, 16),
	})
	require.Error(t, err)
	e.storage.AssertExpectations(t)
}
