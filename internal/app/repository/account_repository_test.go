package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

const initAccountDB = `
CREATE TABLE IF NOT EXISTS payment_accounts
(
    uuid VARCHAR PRIMARY KEY,
    user_uuid VARCHAR NOT NULL UNIQUE,
    balance NUMERIC NOT NULL DEFAULT 0,
    status INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (balance >= 0)
);
`

func setupInMemoryAccountDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:accountdb?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS payment_accounts;`)
	if err != nil {
		t.Fatalf("could not reset account table: %v", err)
	}
	_, err = db.Exec(initAccountDB)
	if err != nil {
		t.Fatalf("could not create account table: %v", err)
	}
	return db
}

func mustCreateAccount(t *testing.T, db *sqlx.DB, repo AccountRepository, account *models.PaymentAccount) {
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateAccount(context.Background(), tx, account))
	require.NoError(t, tx.Commit())
}

func TestAccountRepositoryImpl_CreateAccount(t *testing.T) {
	db := setupInMemoryAccountDB(t)
	defer db.Close()
	repo := NewAccountRepository(db)

	account := &models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  uuid.New(),
		Balance:   decimal.Zero,
		Status:    models.AccountValid,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mustCreateAccount(t, db, repo, account)

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM payment_accounts WHERE uuid = $1", account.UUID)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Account should be inserted")
}

func TestAccountRepositoryImpl_GetAccountByUserUID(t *testing.T) {
	db := setupInMemoryAccountDB(t)
	defer db.Close()
	repo := NewAccountRepository(db)

	userUID := uuid.New()
	account := &models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  userUID,
		Balance:   decimal.RequireFromString("42.50"),
		Status:    models.AccountValid,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mustCreateAccount(t, db, repo, account)

	deletedUserUID := uuid.New()
	deleted := &models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  deletedUserUID,
		Balance:   decimal.Zero,
		Status:    models.AccountDeleted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mustCreateAccount(t, db, repo, deleted)

	tests := []struct {
		name    string
		userUID uuid.UUID
		wantErr bool
	}{
		{
			name:    "Existing Account",
			userUID: userUID,
			wantErr: false,
		},
		{
			name:    "Deleted Account Is Invisible",
			userUID: deletedUserUID,
			wantErr: true,
		},
		{
			name:    "Unknown User",
			userUID: uuid.New(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetAccountByUserUID(context.Background(), &tt.userUID)
			if tt.wantErr {
				assert.Error(t, err, "GetAccountByUserUID should fail")
			} else {
				assert.NoError(t, err, "GetAccountByUserUID should not fail")
				assert.Equal(t, account.UUID, got.UUID, "Unexpected account")
				assert.True(t, got.Balance.Equal(account.Balance), "Unexpected balance")
			}
		})
	}
}

func TestAccountRepositoryImpl_UpdateBalance(t *testing.T) {
	db := setupInMemoryAccountDB(t)
	defer db.Close()
	repo := NewAccountRepository(db)

	account := &models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  uuid.New(),
		Balance:   decimal.RequireFromString("100.00"),
		Status:    models.AccountValid,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mustCreateAccount(t, db, repo, account)

	tests := []struct {
		name        string
		accountUUID uuid.UUID
		balance     decimal.Decimal
		wantErr     bool
	}{
		{
			name:        "Successful Balance Update",
			accountUUID: account.UUID,
			balance:     decimal.RequireFromString("55.00"),
			wantErr:     false,
		},
		{
			name:        "Unknown Account",
			accountUUID: uuid.New(),
			balance:     decimal.RequireFromString("10.00"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.Beginx()
			require.NoError(t, err)
			err = repo.UpdateBalance(context.Background(), tx, tt.accountUUID, tt.balance, time.Now())
			if tt.wantErr {
				assert.Error(t, err, "UpdateBalance should fail")
				require.NoError(t, tx.Rollback())
				return
			}
			assert.NoError(t, err, "UpdateBalance should not fail")
			require.NoError(t, tx.Commit())

			got, err := repo.GetAccountByUserUID(context.Background(), &account.UserUUID)
			require.NoError(t, err)
			assert.True(t, got.Balance.Equal(tt.balance), "Balance should be updated")
		})
	}
}

func TestAccountRepositoryImpl_UpdateStatus(t *testing.T) {
	db := setupInMemoryAccountDB(t)
	defer db.Close()
	repo := NewAccountRepository(db)

	account := &models.PaymentAccount{
		UUID:      uuid.New(),
		UserUUID:  uuid.New(),
		Balance:   decimal.Zero,
		Status:    models.AccountInitialization,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mustCreateAccount(t, db, repo, account)

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), tx, account.UUID, models.AccountValid))
	require.NoError(t, tx.Commit())

	got, err := repo.GetAccountByUserUID(context.Background(), &account.UserUUID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountValid, got.Status, "Status should be updated")
}
