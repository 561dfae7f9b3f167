package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"arogya360-portal/internal/analysis"
	"arogya360-portal/internal/config"
	"arogya360-portal/internal/repository"
	"arogya360-portal/internal/service"
	"arogya360-portal/internal/storage"
	"arogya360-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return "assessment for: " + prompt[:10], nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	logger := zerolog.Nop()
	adapter := storage.NewAdapter(storage.NewMemoryMedium(), "arogya360", logger)
	s := store.New(context.Background(), adapter,
		store.WithClock(func() time.Time { return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) }),
		store.WithPricer(store.PricerFunc(func([]string) float64 { return 300 })),
	)
	audit := repository.NewLogAuditRepo(logger)
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}}

	r := NewRouter(cfg, logger, Handlers{
		Patient:  NewPatientHandler(service.NewPatientService(s, logger)),
		Doctor:   NewDoctorHandler(service.NewDoctorService(s, analysis.NewGateway(stubGenerator{}), logger)),
		Admin:    NewAdminHandler(service.NewAdminService(s, audit, logger)),
		Pharmacy: NewPharmacyHandler(service.NewPharmacyService(s, audit, logger)),
	})
	return r, s
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(blob)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Disposition") == "" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestHealthAndNavigation(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, env = doRequest(t, r, http.MethodGet, "/nav/store", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"STORE"`)

	w, env = doRequest(t, r, http.MethodGet, "/nav/nurse", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestPatientRoutes(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/patient/hospitals?q=neuro", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)

	w, _ = doRequest(t, r, http.MethodGet, "/patient/hospitals/h9/doctors", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = doRequest(t, r, http.MethodPost, "/patient/appointments", map[string]string{
		"patientName": "Asha",
		"doctorId":    "d1",
		"symptoms":    "fever",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var booked struct {
		TokenNumber int `json:"tokenNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booked))
	assert.Equal(t, 103, booked.TokenNumber)

	w, _ = doRequest(t, r, http.MethodPost, "/patient/appointments", map[string]string{"patientName": "Asha"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/patient/appointments", map[string]string{
		"patientName": "Asha",
		"doctorId":    "d99",
		"symptoms":    "fever",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/patient/appointments?patient=Asha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)

	w, _ = doRequest(t, r, http.MethodGet, "/patient/orders", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/patient/overview?patient=Rahul%20Sharma", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDoctorRoutes(t *testing.T) {
	r, s := setupRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/select", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "assessment for")

	w, _ = doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/prescriptions", map[string]string{"medicines": " , "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/prescriptions", map[string]string{"medicines": "Paracetamol, Vitamin C"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"Paracetamol", "Vitamin C"}, s.Orders()[0].Items)

	w, _ = doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/complete", map[string]string{"diagnosis": "Bronchitis"})
	require.Equal(t, http.StatusOK, w.Code)
	a2, _ := s.AppointmentByID("a2")
	assert.Equal(t, "Bronchitis", a2.Diagnosis)

	w, _ = doRequest(t, r, http.MethodPost, "/doctor/appointments/a2/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/doctor/appointments/missing/select", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/doctor/queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"count":0`)
}

func TestAdminRoutes(t *testing.T) {
	r, s := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/admin/hospitals", map[string]any{"name": "City Care", "city": "Nagpur"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), `"tokensAvailable":50`)
	assert.Len(t, s.Hospitals(), 4)

	w, _ = doRequest(t, r, http.MethodPost, "/admin/hospitals", map[string]any{"city": "Nagpur"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodDelete, "/admin/hospitals/h2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doRequest(t, r, http.MethodDelete, "/admin/hospitals/h2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/admin/stores", map[string]any{"name": "Night Meds", "isOpen": false})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, s.Stores()[2].IsOpen)

	w, env = doRequest(t, r, http.MethodGet, "/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"activeHospitals":3`)

	w, _ = doRequest(t, r, http.MethodGet, "/admin/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="arogya360_backup.json"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"stores": [`)

	w, _ = doRequest(t, r, http.MethodPost, "/admin/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.Hospitals(), 3)
	assert.Len(t, s.Stores(), 2)
}

func TestPharmacyRoutes(t *testing.T) {
	r, s := setupRouter(t)
	order, err := s.CreateOrder(context.Background(), "a2", []string{"Syrup"}, "")
	require.NoError(t, err)

	w, env := doRequest(t, r, http.MethodGet, "/pharmacy/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"newOrders"`)

	w, _ = doRequest(t, r, http.MethodPost, "/pharmacy/orders/"+order.ID+"/dispatch", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, step := range []string{"accept", "pack", "dispatch"} {
		w, _ = doRequest(t, r, http.MethodPost, "/pharmacy/orders/"+order.ID+"/"+step, nil)
		require.Equal(t, http.StatusOK, w.Code, step)
	}

	w, _ = doRequest(t, r, http.MethodPatch, "/pharmacy/orders/"+order.ID, map[string]string{"status": "Cancelled"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(t, r, http.MethodPatch, "/pharmacy/orders/"+order.ID, map[string]string{"status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPatch, "/pharmacy/orders/"+order.ID, map[string]string{"status": "Delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/pharmacy/orders?status=Delivered", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"count":1`)

	w, _ = doRequest(t, r, http.MethodPost, "/pharmacy/orders/missing/accept", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/admin/hospitals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
