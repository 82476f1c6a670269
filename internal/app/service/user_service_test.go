package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	db    *sqlx.DB
	users map[string]*models.User
}

func newFakeUserRepo(t *testing.T) *fakeUserRepo {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &fakeUserRepo{
		db:    db,
		users: map[string]*models.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return appErrors.New(fmt.Errorf("duplicate email %s", user.Email), "User already exists")
	}
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, appErrors.New(fmt.Errorf("user %s not found", email), "User not found")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetDB() *sqlx.DB {
	return f.db
}

func TestUserServiceImpl_Create(t *testing.T) {
	userRepo := newFakeUserRepo(t)
	accountRepo := newFakeAccountRepo(t)
	ledgerService := NewLedgerService(accountRepo, &fakeLedgerRepo{})
	service := NewUserService(userRepo, ledgerService)

	user, err := service.Create(context.Background(), "student@example.com", "secret")
	require.NoError(t, err, "Create should not fail")
	assert.Equal(t, "student@example.com", user.Email)
	assert.NotEqual(t, "secret", user.PasswordHash, "Password must be stored hashed")

	// Registration opens the payment account in the same step.
	account, err := ledgerService.GetAccount(context.Background(), &user.UUID)
	require.NoError(t, err, "Registration must open a payment account")
	assert.True(t, account.Balance.IsZero())

	// A second registration with the same email conflicts.
	_, err = service.Create(context.Background(), "student@example.com", "other")
	require.Error(t, err, "Duplicate email should fail")
	assert.True(t, appErrors.IsKind(err, http.StatusConflict), "Unexpected failure kind: %v", err)
}

func TestUserServiceImpl_Authenticate(t *testing.T) {
	userRepo := newFakeUserRepo(t)
	accountRepo := newFakeAccountRepo(t)
	service := NewUserService(userRepo, NewLedgerService(accountRepo, &fakeLedgerRepo{}))

	_, err := service.Create(context.Background(), "student@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantCode int
	}{
		{
			name:     "Valid Credentials",
			email:    "student@example.com",
			password: "secret",
		},
		{
			name:     "Wrong Password",
			email:    "student@example.com",
			password: "wrong",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "Unknown User",
			email:    "nobody@example.com",
			password: "secret",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantCode != 0 {
				require.Error(t, err, "Authenticate should fail")
				assert.True(t, appErrors.IsKind(err, tt.wantCode), "Unexpected failure kind: %v", err)
				return
			}
			require.NoError(t, err, "Authenticate should not fail")
			assert.Equal(t, tt.email, user.Email)
			assert.WithinDuration(t, time.Now(), user.CreatedAt, time.Minute)
		})
	}
}
