package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, tx *sqlx.Tx, account *models.PaymentAccount) error
	GetAccountByUserUID(ctx context.Context, userUID *uuid.UUID) (*models.PaymentAccount, error)
	GetAccountForUpdate(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID) (*models.PaymentAccount, error)
	UpdateBalance(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, status models.AccountStatus) error
	GetDB() *sqlx.DB
}

type AccountRepositoryImpl struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepositoryImpl {
	return &AccountRepositoryImpl{db: db}
}

func (ar *AccountRepositoryImpl) CreateAccount(ctx context.Context, tx *sqlx.Tx, account *models.PaymentAccount) error {
	query := `INSERT INTO payment_accounts (uuid, user_uuid, balance, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, account.UUID, account.UserUUID, account.Balance,
		account.Status, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (ar *AccountRepositoryImpl) GetAccountByUserUID(ctx context.Context, userUID *uuid.UUID) (*models.PaymentAccount, error) {
	query := `SELECT * FROM payment_accounts WHERE user_uuid = $1 AND status != $2;`
	account := models.PaymentAccount{}
	err := ar.db.GetContext(ctx, &account, query, userUID, models.AccountDeleted)
	if err != nil {
		return nil, fmt.Errorf("get payment account: %w", err)
	}
	return &account, nil
}

// GetAccountForUpdate reads the account row under a write lock held until the
// transaction ends, so concurrent balance mutations on the same account
// serialize.
func (ar *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID) (*models.PaymentAccount, error) {
	query := `SELECT * FROM payment_accounts WHERE uuid = $1 AND status != $2 FOR UPDATE;`
	account := models.PaymentAccount{}
	err := tx.GetContext(ctx, &account, query, accountUUID, models.AccountDeleted)
	if err != nil {
		return nil, fmt.Errorf("lock payment account: %w", err)
	}
	return &account, nil
}

func (ar *AccountRepositoryImpl) UpdateBalance(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, balance decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE payment_accounts SET balance = $1, updated_at = $2 WHERE uuid = $3;`
	res, err := tx.ExecContext(ctx, query, balance, updatedAt, accountUUID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update balance result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update balance: account %s not found", accountUUID)
	}
	return nil
}

func (ar *AccountRepositoryImpl) UpdateStatus(ctx context.Context, tx *sqlx.Tx, accountUUID uuid.UUID, status models.AccountStatus) error {
	query := `UPDATE payment_accounts SET status = $1, updated_at = $2 WHERE uuid = $3;`
	_, err := tx.ExecContext(ctx, query, status, time.Now(), accountUUID)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	return nil
}

func (ar *AccountRepositoryImpl) GetDB() *sqlx.DB {
	return ar.db
}
