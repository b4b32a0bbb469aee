package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
	"github.com/SscSPs/certificate_registry/internal/handlers"
	"github.com/SscSPs/certificate_registry/internal/middleware"
	"github.com/SscSPs/certificate_registry/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg *config.Config, rate string) (*gin.Engine, *MockWorkOrderService) {
	gin.SetMode(gin.TestMode)
	workOrders := new(MockWorkOrderService)
	services := &portssvc.ServiceContainer{
		WorkOrder:   workOrders,
		Certificate: new(MockCertificateService),
	}
	r := gin.New()
	if rate == "" {
		handlers.RegisterRoutes(r, cfg, services, nil)
		return r, workOrders
	}
	limiter, err := middleware.NewRateLimiter(rate)
	require.NoError(t, err)
	handlers.RegisterRoutes(r, cfg, services, limiter)
	return r, workOrders
}

func TestRegisterRoutes_HealthIsPublic(t *testing.T) {
	r, _ := newTestEngine(t, &config.Config{JWTSecret: "secret", IsProduction: true}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegisterRoutes_APIRequiresAuth(t *testing.T) {
	r, _ := newTestEngine(t, &config.Config{JWTSecret: "secret", IsProduction: true}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/work-orders", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRoutes_NoSwaggerInProduction(t *testing.T) {
	r, _ := newTestEngine(t, &config.Config{JWTSecret: "secret", IsProduction: true}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRoutes_SwaggerOutsideProduction(t *testing.T) {
	r, _ := newTestEngine(t, &config.Config{JWTSecret: "secret"}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/certificates")
}

func TestRegisterRoutes_RateLimited(t *testing.T) {
	r, workOrders := newTestEngine(t, &config.Config{JWTSecret: "secret", IsProduction: true}, "2-M")
	workOrders.On("ListWorkOrders", mock.Anything).Return(nil, nil)
	token := generateTestToken(t, "secret", "operator-1")

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/work-orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
