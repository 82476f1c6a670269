package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appContext "github.com/celerysoft/scholar-tool-manager/internal/app/context"
	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userUID *uuid.UUID, templateUUID uuid.UUID, password string, autoRenew bool) (*models.TradeOrder, error) {
	args := m.Called(ctx, userUID, templateUUID, password, autoRenew)
	return args.Get(0).(*models.TradeOrder), args.Error(1)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error {
	args := m.Called(ctx, userUID, orderUUID)
	return args.Error(0)
}

func (m *MockOrderService) PayOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error {
	args := m.Called(ctx, userUID, orderUUID)
	return args.Error(0)
}

func (m *MockOrderService) RenewOrder(ctx context.Context, userUID *uuid.UUID, serviceUUID uuid.UUID) error {
	args := m.Called(ctx, userUID, serviceUUID)
	return args.Error(0)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) (*models.TradeOrder, error) {
	args := m.Called(ctx, userUID, orderUUID)
	return args.Get(0).(*models.TradeOrder), args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context, userUID *uuid.UUID, query repository.OrderListQuery) (*[]repository.OrderWithTitle, int, error) {
	args := m.Called(ctx, userUID, query)
	return args.Get(0).(*[]repository.OrderWithTitle), args.Int(1), args.Error(2)
}

func withUser(req *http.Request, userUID *uuid.UUID) *http.Request {
	return req.WithContext(appContext.WithUserUID(req.Context(), userUID))
}

func withOrderUUID(req *http.Request, orderUUID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("uuid", orderUUID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	userUID := uuid.New()
	templateUUID := uuid.New()
	orderUUID := uuid.New()

	tests := []struct {
		name             string
		requestBody      string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:        "Successful Order Creation",
			requestBody: `{"template_uuid":"` + templateUUID.String() + `","password":"secret","auto_renew":true}`,
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("CreateOrder", mock.Anything, mock.Anything, templateUUID, "secret", true).
					Return(&models.TradeOrder{UUID: orderUUID}, nil)
				return m
			},
			wantStatusCode:   http.StatusCreated,
			wantResponseBody: `{"uuid":"` + orderUUID.String() + `"}`,
		},
		{
			name:        "Malformed Body",
			requestBody: `not-json`,
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Unable to parse body"}`,
		},
		{
			name:        "Invalid Template UUID",
			requestBody: `{"template_uuid":"123","password":"secret"}`,
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Invalid template_uuid field"}`,
		},
		{
			name:        "Missing Password",
			requestBody: `{"template_uuid":"` + templateUUID.String() + `","password":""}`,
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Missing password field"}`,
		},
		{
			name:        "Duplicate Order",
			requestBody: `{"template_uuid":"` + templateUUID.String() + `","password":"secret"}`,
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				err := appErrors.NewConflict("An unpaid order for Monthly Plan already exists, do not submit it again")
				m.On("CreateOrder", mock.Anything, mock.Anything, templateUUID, "secret", false).
					Return((*models.TradeOrder)(nil), err)
				return m
			},
			wantStatusCode:   http.StatusConflict,
			wantResponseBody: `{"code":409,"message":"An unpaid order for Monthly Plan already exists, do not submit it again"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(tt.requestBody)
			req, err := http.NewRequest("POST", "/api/orders", body)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			w := httptest.NewRecorder()

			oh := &OrdersHandler{
				orderService:   tt.mockOrderService(),
				contextTimeout: 5 * time.Second,
			}

			oh.CreateOrder(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}

func TestOrdersHandler_GetOrders(t *testing.T) {
	userUID := uuid.New()
	title := "Monthly Plan"

	tests := []struct {
		name             string
		target           string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
		wantBodyContains []string
	}{
		{
			name:   "Successful Retrieval of Orders",
			target: "/api/orders",
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				orders := &[]repository.OrderWithTitle{
					{
						TradeOrder: models.TradeOrder{
							UUID:      uuid.New(),
							UserUUID:  userUID,
							Amount:    decimal.RequireFromString("55.00"),
							Status:    models.OrderPaid,
							CreatedAt: time.Now(),
						},
						Title: &title,
					},
				}
				m.On("GetOrders", mock.Anything, mock.Anything, mock.Anything).Return(orders, 1, nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantBodyContains: []string{`"total":1`, `"title":"Monthly Plan"`, `"status":"PAID"`},
		},
		{
			name:   "Invalid Page",
			target: "/api/orders?page=zero",
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantBodyContains: []string{`"message":"Invalid page field"`},
		},
		{
			name:   "Invalid Status Filter",
			target: "/api/orders?status=paid",
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantBodyContains: []string{`"message":"Invalid status field"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", tt.target, nil)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			w := httptest.NewRecorder()

			oh := &OrdersHandler{
				orderService:   tt.mockOrderService(),
				contextTimeout: 5 * time.Second,
			}

			oh.GetOrders(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			for _, fragment := range tt.wantBodyContains {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}

func TestOrdersHandler_CancelOrder(t *testing.T) {
	userUID := uuid.New()
	orderUUID := uuid.New()

	tests := []struct {
		name             string
		orderUUID        string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
	}{
		{
			name:      "Successful Cancellation",
			orderUUID: orderUUID.String(),
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("CancelOrder", mock.Anything, mock.Anything, orderUUID).Return(nil)
				return m
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "Invalid Order UUID",
			orderUUID: "123",
			mockOrderService: func() *MockOrderService {
				return &MockOrderService{}
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "Already Cancelled",
			orderUUID: orderUUID.String(),
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("CancelOrder", mock.Anything, mock.Anything, orderUUID).
					Return(appErrors.NewConflict("Order is already cancelled"))
				return m
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:      "Already Paid",
			orderUUID: orderUUID.String(),
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("CancelOrder", mock.Anything, mock.Anything, orderUUID).
					Return(appErrors.NewInvalidRequest("Order has entered the payment flow and cannot be cancelled, request a refund after completing the payment"))
				return m
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("DELETE", "/api/orders/"+tt.orderUUID, nil)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			req = withOrderUUID(req, tt.orderUUID)
			w := httptest.NewRecorder()

			oh := &OrdersHandler{
				orderService:   tt.mockOrderService(),
				contextTimeout: 5 * time.Second,
			}

			oh.CancelOrder(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}

func TestOrdersHandler_PayOrder(t *testing.T) {
	userUID := uuid.New()
	orderUUID := uuid.New()

	tests := []struct {
		name             string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
	}{
		{
			name: "Successful Payment",
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("PayOrder", mock.Anything, mock.Anything, orderUUID).Return(nil)
				return m
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "Insufficient Balance",
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("PayOrder", mock.Anything, mock.Anything, orderUUID).
					Return(appErrors.NewInsufficientBalance("Insufficient balance"))
				return m
			},
			wantStatusCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/orders/"+orderUUID.String()+"/payment", nil)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			req = withOrderUUID(req, orderUUID.String())
			w := httptest.NewRecorder()

			oh := &OrdersHandler{
				orderService:   tt.mockOrderService(),
				contextTimeout: 5 * time.Second,
			}

			oh.PayOrder(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}

func TestOrdersHandler_RenewOrder(t *testing.T) {
	userUID := uuid.New()
	serviceUUID := uuid.New()

	m := &MockOrderService{}
	m.On("RenewOrder", mock.Anything, mock.Anything, serviceUUID).
		Return(appErrors.NewServiceUnavailable("Renewal is under construction"))

	body := strings.NewReader(`{"service_uuid":"` + serviceUUID.String() + `"}`)
	req, err := http.NewRequest("POST", "/api/orders/renewal", body)
	assert.NoError(t, err)
	req = withUser(req, &userUID)
	w := httptest.NewRecorder()

	oh := &OrdersHandler{
		orderService:   m,
		contextTimeout: 5 * time.Second,
	}

	oh.RenewOrder(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"code":503,"message":"Renewal is under construction"}`, w.Body.String())
}
