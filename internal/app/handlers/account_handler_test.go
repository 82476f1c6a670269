package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error {
	args := m.Called(ctx, tx, userUID)
	return args.Error(0)
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userUID *uuid.UUID) (*models.PaymentAccount, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*models.PaymentAccount), args.Error(1)
}

func (m *MockLedgerService) Apply(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, delta decimal.Decimal, purpose models.PurposeType) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, accountUUID, delta, purpose)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) Recharge(ctx context.Context, userUID *uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, userUID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetEntries(ctx context.Context, userUID *uuid.UUID) (*[]models.LedgerEntry, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*[]models.LedgerEntry), args.Error(1)
}

func TestAccountHandler_GetBalance(t *testing.T) {
	userUID := uuid.New()

	tests := []struct {
		name              string
		mockLedgerService func() *MockLedgerService
		wantStatusCode    int
		wantResponseBody  string
	}{
		{
			name: "Successful Balance Retrieval",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				account := &models.PaymentAccount{
					UUID:     uuid.New(),
					UserUUID: userUID,
					Balance:  decimal.RequireFromString("42.50"),
					Status:   models.AccountValid,
				}
				m.On("GetAccount", mock.Anything, mock.Anything).Return(account, nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"balance":42.5}`,
		},
		{
			name: "Account Not Found",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("GetAccount", mock.Anything, mock.Anything).
					Return((*models.PaymentAccount)(nil), appErrors.NewNotFound("Payment account not found"))
				return m
			},
			wantStatusCode:   http.StatusNotFound,
			wantResponseBody: `{"code":404,"message":"Payment account not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/account/balance", nil)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			w := httptest.NewRecorder()

			ah := &AccountHandler{
				ledgerService:  tt.mockLedgerService(),
				contextTimeout: 5 * time.Second,
			}

			ah.GetBalance(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}

func TestAccountHandler_Recharge(t *testing.T) {
	userUID := uuid.New()

	tests := []struct {
		name              string
		requestBody       string
		mockLedgerService func() *MockLedgerService
		wantStatusCode    int
		wantResponseBody  string
	}{
		{
			name:        "Successful Recharge",
			requestBody: `{"amount":15.5}`,
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("Recharge", mock.Anything, mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.RequireFromString("15.5"))
				})).Return(decimal.RequireFromString("25.5"), nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"balance":25.5}`,
		},
		{
			name:        "Malformed Body",
			requestBody: `not-json`,
			mockLedgerService: func() *MockLedgerService {
				return &MockLedgerService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Unable to parse body"}`,
		},
		{
			name:        "Non Positive Amount",
			requestBody: `{"amount":-5}`,
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("Recharge", mock.Anything, mock.Anything, mock.Anything).
					Return(decimal.Zero, appErrors.NewInvalidRequest("Recharge amount must be positive"))
				return m
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Recharge amount must be positive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(tt.requestBody)
			req, err := http.NewRequest("POST", "/api/account/recharge", body)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			w := httptest.NewRecorder()

			ah := &AccountHandler{
				ledgerService:  tt.mockLedgerService(),
				contextTimeout: 5 * time.Second,
			}

			ah.Recharge(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}

func TestAccountHandler_GetLedger(t *testing.T) {
	userUID := uuid.New()

	tests := []struct {
		name              string
		mockLedgerService func() *MockLedgerService
		wantStatusCode    int
		wantBodyContains  []string
	}{
		{
			name: "Successful Ledger Retrieval",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				entries := &[]models.LedgerEntry{
					{
						ID:            1,
						AccountUUID:   uuid.New(),
						FormerBalance: decimal.Zero,
						Balance:       decimal.RequireFromString("100.00"),
						Type:          models.EntryIncrease,
						PurposeType:   models.PurposeRecharge,
						Status:        models.EntryValid,
						CreatedAt:     time.Now(),
					},
					{
						ID:            2,
						AccountUUID:   uuid.New(),
						FormerBalance: decimal.RequireFromString("100.00"),
						Balance:       decimal.RequireFromString("60.00"),
						Type:          models.EntryDecrease,
						PurposeType:   models.PurposeConsume,
						Status:        models.EntryValid,
						CreatedAt:     time.Now(),
					},
				}
				m.On("GetEntries", mock.Anything, mock.Anything).Return(entries, nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantBodyContains: []string{`"purpose_type":"RECHARGE"`, `"purpose_type":"CONSUME"`, `"type":"INCREASE"`, `"type":"DECREASE"`},
		},
		{
			name: "No Entries To Display",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("GetEntries", mock.Anything, mock.Anything).Return(&[]models.LedgerEntry{}, nil)
				return m
			},
			wantStatusCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/account/ledger", nil)
			assert.NoError(t, err)
			req = withUser(req, &userUID)
			w := httptest.NewRecorder()

			ah := &AccountHandler{
				ledgerService:  tt.mockLedgerService(),
				contextTimeout: 5 * time.Second,
			}

			ah.GetLedger(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			for _, fragment := range tt.wantBodyContains {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}
