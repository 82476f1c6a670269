package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	appContext "github.com/celerysoft/scholar-tool-manager/internal/app/context"
	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service"
)

type (
	AccountHandler struct {
		ledgerService  service.LedgerService
		contextTimeout time.Duration
	}

	//easyjson:json
	BalanceDto struct {
		Balance float64 `json:"balance"`
	}
	//easyjson:json
	RechargeRequestDto struct {
		Amount float64 `json:"amount"`
	}
	//easyjson:json
	LedgerEntryDto struct {
		FormerBalance float64   `json:"former_balance"`
		Balance       float64   `json:"balance"`
		Type          string    `json:"type"`
		PurposeType   string    `json:"purpose_type"`
		CreatedAt     time.Time `json:"created_at"`
	}
	//easyjson:json
	LedgerEntryDtoSlice []LedgerEntryDto
)

func NewAccountHandler(contextTimeoutSec int, ledgerService service.LedgerService) *AccountHandler {
	return &AccountHandler{
		ledgerService:  ledgerService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBalance godoc
// @Summary Current payment account balance
// @Tags account
// @Produce json
// @Success 200 {object} BalanceDto "Balance"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/account/balance [get]
func (ah *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	account, err := ah.ledgerService.GetAccount(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	balanceDto := BalanceDto{Balance: account.Balance.InexactFloat64()}
	json, err := balanceDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal json: %w", err))
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(json)
}

// Recharge godoc
// @Summary Credit the payment account
// @Tags account
// @Accept json
// @Produce json
// @Param recharge body RechargeRequestDto true "Recharge amount"
// @Success 200 {object} BalanceDto "New balance"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/account/recharge [post]
func (ah *AccountHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := RechargeRequestDto{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}

	amount := decimal.NewFromFloat(request.Amount).Round(2)
	newBalance, err := ah.ledgerService.Recharge(ctx, userUID, amount)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	balanceDto := BalanceDto{Balance: newBalance.InexactFloat64()}
	json, err := balanceDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal json: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(json)
}

// GetLedger godoc
// @Summary Balance change history
// @Description Returns the account's ledger entries ordered oldest first.
// @Tags account
// @Produce json
// @Success 200 {array} LedgerEntryDto "Ledger entries"
// @Success 204 "No entries to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/account/ledger [get]
func (ah *AccountHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	entries, err := ah.ledgerService.GetEntries(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := mapEntriesToLedgerEntryDtoSlice(entries)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal response: %w", err))
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func mapEntriesToLedgerEntryDtoSlice(slice *[]models.LedgerEntry) LedgerEntryDtoSlice {
	var responseSlice LedgerEntryDtoSlice
	for _, item := range *slice {
		responseItem := LedgerEntryDto{
			FormerBalance: item.FormerBalance.InexactFloat64(),
			Balance:       item.Balance.InexactFloat64(),
			Type:          item.Type.String(),
			PurposeType:   item.PurposeType.String(),
			CreatedAt:     item.CreatedAt,
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
