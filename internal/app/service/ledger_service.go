package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
)

// LedgerService is the only component allowed to mutate a payment account
// balance. Every mutation appends exactly one ledger entry inside the same
// transaction, so the sequence of former_balance values per account is an
// unbroken chain of the account's historical balances.
type LedgerService interface {
	CreateAccount(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error
	GetAccount(ctx context.Context, userUID *uuid.UUID) (*models.PaymentAccount, error)
	Apply(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, delta decimal.Decimal, purpose models.PurposeType) (decimal.Decimal, error)
	Recharge(ctx context.Context, userUID *uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	GetEntries(ctx context.Context, userUID *uuid.UUID) (*[]models.LedgerEntry, error)
}

type LedgerServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
}

func NewLedgerService(accountRepo repository.AccountRepository, ledgerRepo repository.LedgerRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (ls *LedgerServiceImpl) CreateAccount(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error {
	now := time.Now()
	account := models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  *userUID,
		Balance:   decimal.Zero,
		Status:    models.AccountValid,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := ls.accountRepo.CreateAccount(ctx, tx, &account)
	if err != nil {
		return appErrors.New(err, "create payment account")
	}
	return nil
}

func (ls *LedgerServiceImpl) GetAccount(ctx context.Context, userUID *uuid.UUID) (*models.PaymentAccount, error) {
	account, err := ls.accountRepo.GetAccountByUserUID(ctx, userUID)
	if err != nil {
		return nil, appErrors.NewNotFound("Payment account not found")
	}
	return account, nil
}

// Apply adds delta to the account balance and appends the matching ledger
// entry. The caller owns the transaction; both writes commit or roll back
// together. The delta sign must match the purpose polarity, and the resulting
// balance may not go negative.
func (ls *LedgerServiceImpl) Apply(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, delta decimal.Decimal, purpose models.PurposeType) (decimal.Decimal, error) {
	if delta.IsZero() {
		return decimal.Zero, appErrors.NewInvalidRequest("Amount must not be zero")
	}
	entryType := purpose.EntryType()
	if entryType == models.EntryDecrease && delta.IsPositive() ||
		entryType == models.EntryIncrease && delta.IsNegative() {
		return decimal.Zero, appErrors.NewInvalidRequest(
			fmt.Sprintf("Amount sign does not match purpose %s", purpose))
	}

	account, err := ls.accountRepo.GetAccountForUpdate(ctx, tx, accountUUID)
	if err != nil {
		return decimal.Zero, appErrors.NewNotFound("Payment account not found")
	}
	if account.Status != models.AccountValid {
		return decimal.Zero, appErrors.NewForbidden("Payment account is not active")
	}

	formerBalance := account.Balance
	newBalance := formerBalance.Add(delta)
	if newBalance.IsNegative() {
		return decimal.Zero, appErrors.NewInsufficientBalance("Insufficient balance")
	}

	now := time.Now()
	if err := ls.accountRepo.UpdateBalance(ctx, tx, account.UUID, newBalance, now); err != nil {
		return decimal.Zero, fmt.Errorf("apply balance change: %w", err)
	}
	entry := models.LedgerEntry{
		AccountUUID:   account.UUID,
		FormerBalance: formerBalance,
		Balance:       newBalance,
		Type:          entryType,
		PurposeType:   purpose,
		Status:        models.EntryValid,
		CreatedAt:     now,
	}
	if err := ls.ledgerRepo.CreateEntry(ctx, tx, &entry); err != nil {
		return decimal.Zero, fmt.Errorf("append ledger entry: %w", err)
	}
	return newBalance, nil
}

func (ls *LedgerServiceImpl) Recharge(ctx context.Context, userUID *uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, appErrors.NewInvalidRequest("Recharge amount must be positive")
	}
	account, err := ls.GetAccount(ctx, userUID)
	if err != nil {
		return decimal.Zero, err
	}

	tx, err := ls.accountRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	newBalance, err := ls.Apply(ctx, tx, account.UUID, amount, models.PurposeRecharge)
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, tx.Commit()
}

func (ls *LedgerServiceImpl) GetEntries(ctx context.Context, userUID *uuid.UUID) (*[]models.LedgerEntry, error) {
	account, err := ls.GetAccount(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return ls.ledgerRepo.GetEntries(ctx, account.UUID)
}
