package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
	"github.com/SscSPs/certificate_registry/internal/dto"
	"github.com/SscSPs/certificate_registry/internal/handlers"
	"github.com/SscSPs/certificate_registry/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WorkOrderService ---
type MockWorkOrderService struct {
	mock.Mock
}

func (m *MockWorkOrderService) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) GetWorkOrder(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) FindWorkOrderID(ctx context.Context, name string, code int) (int64, error) {
	args := m.Called(ctx, name, code)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.WorkOrderSvcFacade = (*MockWorkOrderService)(nil)

type WorkOrderHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	workOrderSvc   *MockWorkOrderService
	certificateSvc *MockCertificateService
	token          string
}

func (suite *WorkOrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	secret := "test-secret-key-that-is-long-enough"
	suite.token = generateTestToken(suite.T(), secret, "operator-1")
	suite.workOrderSvc = new(MockWorkOrderService)
	suite.certificateSvc = new(MockCertificateService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(secret))
	handlers.RegisterWorkOrderRoutes(v1, suite.workOrderSvc, suite.certificateSvc)
}

func (suite *WorkOrderHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WorkOrderHandlerTestSuite) TestListWorkOrders() {
	suite.workOrderSvc.On("ListWorkOrders", mock.Anything).Return([]domain.WorkOrder{
		{WorkOrderID: 5, Name: "Canal Dumois", Code: 872, ApprovalReference: "A 37-038-21"},
	}, nil).Once()

	w := suite.get("/api/v1/work-orders")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WorkOrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("87202", resp[0].WorkObjectCode)
	suite.Equal("Obra 872  Canal Dumois", resp[0].DisplayName)
}

func (suite *WorkOrderHandlerTestSuite) TestLookupWorkOrder() {
	suite.workOrderSvc.On("FindWorkOrderID", mock.Anything, "Marina Cayo Saetía", 677).Return(int64(2), nil).Once()
	suite.workOrderSvc.On("FindWorkOrderID", mock.Anything, "Marina Cayo Saetía", 759).
		Return(int64(0), apperrors.NewNotFoundError("work order not found")).Once()

	w := suite.get("/api/v1/work-orders/lookup?name=Marina%20Cayo%20Saet%C3%ADa&code=677")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"workOrderID": 2}`, w.Body.String())

	w = suite.get("/api/v1/work-orders/lookup?name=Marina%20Cayo%20Saet%C3%ADa&code=759")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.get("/api/v1/work-orders/lookup?code=677")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WorkOrderHandlerTestSuite) TestNextCertificateNumber() {
	suite.certificateSvc.On("NextCertificateNumber", mock.Anything, int64(5)).Return(1, nil).Once()
	suite.certificateSvc.On("NextCertificateNumber", mock.Anything, int64(404)).
		Return(0, apperrors.NewNotFoundError("work order not found")).Once()

	w := suite.get("/api/v1/work-orders/5/next-number")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"workOrderID": 5, "certificateNumber": 1}`, w.Body.String())

	suite.Equal(http.StatusNotFound, suite.get("/api/v1/work-orders/404/next-number").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/work-orders/0/next-number").Code)
}

func TestWorkOrderHandler(t *testing.T) {
	suite.Run(t, new(WorkOrderHandlerTestSuite))
}
