package routes

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-rental/internal/db"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

type server struct {
	t  *testing.T
	db *gorm.DB
	r  *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := dbpkg.Open("file:"+name+"?mode=memory&cache=shared", &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTTTL:          time.Hour,
		Timezone:        timezone.DefaultTimezone,
		StorageDriver:   "local",
		StorageLocalDir: t.TempDir(),
		StudioCacheTTL:  time.Minute,
	}
	st, err := storage.NewLocalStorage(cfg.StorageLocalDir)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:      gdb,
		Config:  cfg,
		Storage: st,
		Audit:   audit.NewDispatcher(audit.New(gdb)),
		Now: func() time.Time {
			return time.Date(2025, 5, 20, 9, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
		},
	})

	return &server{t: t, db: gdb, r: r}
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func (s *server) upload(path, token, field string, file []byte, fields map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(field, "proof.png")
	require.NoError(s.t, err)
	_, err = fw.Write(file)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func (s *server) admin() string {
	s.t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(s.t, err)
	require.NoError(s.t, s.db.Create(&models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}).Error)

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@example.com", "password": "secret123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	return decode(s.t, w)["token"].(string)
}

func (s *server) customer(email string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Budi",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode(s.t, w)["token"].(string)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func amount(t *testing.T, v any) string {
	t.Helper()
	d, err := decimal.NewFromString(v.(string))
	require.NoError(t, err)
	return d.StringFixed(2)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "2025-05-20T09:00:00+07:00", body["timestamp"])
}

func TestAuth_Errors(t *testing.T) {
	s := newServer(t)
	s.customer("budi@example.com")

	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Budi", "email": "BUDI@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "email_taken", decode(t, w)["error_code"])

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "budi@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/admin/audit-logs", s.customer("sari@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)
	adminToken := s.admin()
	customerToken := s.customer("budi@example.com")

	// estúdio
	w := s.do(http.MethodPost, "/api/admin/studios", adminToken, gin.H{
		"name":        "Studio A",
		"hourly_rate": "150",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	studioID := uint(decode(t, w)["id"].(float64))

	// reserva
	w = s.do(http.MethodPost, "/api/bookings", customerToken, gin.H{
		"studio_id":      studioID,
		"booking_date":   "2025-06-01",
		"start_time":     "10:00",
		"end_time":       "12:00",
		"duration_hours": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	bookingID := uint(created["id"].(float64))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "300.00", amount(t, created["total_amount"]))

	// fronteira encostada conta como conflito
	path := "/api/studios/" + itoa(studioID) + "/availability?date=2025-06-01&start_time=12:00&end_time=13:00"
	w = s.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["available"])

	w = s.do(http.MethodPost, "/api/bookings", s.customer("sari@example.com"), gin.H{
		"studio_id":      studioID,
		"booking_date":   "2025-06-01",
		"start_time":     "11:00",
		"end_time":       "13:00",
		"duration_hours": 2,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "slot_unavailable", decode(t, w)["error_code"])

	// comprovante
	w = s.upload("/api/bookings/"+itoa(bookingID)+"/payment-proof", customerToken, "payment_proof", pngBytes(t),
		map[string]string{"payment_method": "qris"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	withProof := decode(t, w)
	assert.Equal(t, "pending", withProof["status"])
	assert.Equal(t, "qris", withProof["payment_method"])
	assert.True(t, strings.HasPrefix(withProof["payment_proof"].(string), "payment-proofs/"))

	// cliente não muda status
	w = s.do(http.MethodPatch, "/api/bookings/"+itoa(bookingID)+"/status", customerToken, gin.H{"status": "paid"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, "/api/bookings/"+itoa(bookingID)+"/status", adminToken, gin.H{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	paid := decode(t, w)
	assert.Equal(t, "paid", paid["status"])
	assert.NotNil(t, paid["verified_at"])
	assert.NotNil(t, paid["verified_by"])

	// paid não pode ser apagada
	w = s.do(http.MethodDelete, "/api/bookings/"+itoa(bookingID), customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// listagem do cliente
	w = s.do(http.MethodGet, "/api/bookings", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.Equal(t, float64(1), list["total"])
	assert.Equal(t, float64(10), list["per_page"])

	// dashboard admin
	w = s.do(http.MethodGet, "/api/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total_bookings"])

	// auditoria
	w = s.do(http.MethodGet, "/api/admin/audit-logs?entity=booking", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, decode(t, w)["total"].(float64), float64(3))
}

func TestStudios_PublicSeesOnlyActive(t *testing.T) {
	s := newServer(t)
	adminToken := s.admin()

	w := s.do(http.MethodPost, "/api/admin/studios", adminToken, gin.H{"name": "Open", "hourly_rate": "100"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/admin/studios", adminToken, gin.H{"name": "Closed", "hourly_rate": "100", "is_active": false})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	closedID := uint(decode(t, w)["id"].(float64))

	w = s.do(http.MethodGet, "/api/studios", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = s.do(http.MethodGet, "/api/studios/"+itoa(closedID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/admin/studios", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["total"])

	w = s.do(http.MethodPost, "/api/admin/studios", adminToken, gin.H{"name": "Bad", "hourly_rate": "abc"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "hourly_rate", decode(t, w)["field"])
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
